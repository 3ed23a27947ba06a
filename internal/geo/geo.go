// Package geo collects best-effort submitter metadata: host identity from
// the local system and an approximate geolocation from a public IP lookup.
// Nothing here fails a request; every lookup error degrades to empty fields.
package geo

import (
	"context"
	"encoding/json"
	"net"
	"net/http"
	"os"
	"runtime"
	"time"

	"github.com/Antwa-sensei253/testing-resume-scoring/pkg/logx"
)

// Location is the metadata recorded alongside a submission.
type Location struct {
	Hostname  string  `json:"hostname"`
	IPAddress string  `json:"ip_address"`
	OS        string  `json:"os"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	City      string  `json:"city"`
	Region    string  `json:"region"`
	Country   string  `json:"country"`
}

const defaultEndpoint = "http://ip-api.com/json/"

// Locator resolves Locations against an IP geolocation service.
type Locator struct {
	client   *http.Client
	endpoint string
}

// NewLocator builds a Locator with a short timeout so a slow geolocation
// service never stalls the analysis pipeline.
func NewLocator() *Locator {
	return &Locator{
		client:   &http.Client{Timeout: 3 * time.Second},
		endpoint: defaultEndpoint,
	}
}

// Locate gathers host metadata and, best effort, the geolocation of the
// machine's public IP. It never returns an error; whatever could not be
// resolved stays zero-valued.
func (l *Locator) Locate(ctx context.Context) Location {
	loc := Location{OS: runtime.GOOS}

	if host, err := os.Hostname(); err == nil {
		loc.Hostname = host
	}
	if ip := outboundIP(); ip != "" {
		loc.IPAddress = ip
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, l.endpoint, nil)
	if err != nil {
		return loc
	}
	resp, err := l.client.Do(req)
	if err != nil {
		logx.Warnf("geolocation lookup skipped: %v", err)
		return loc
	}
	defer resp.Body.Close()

	var payload struct {
		Status     string  `json:"status"`
		Lat        float64 `json:"lat"`
		Lon        float64 `json:"lon"`
		City       string  `json:"city"`
		RegionName string  `json:"regionName"`
		Country    string  `json:"country"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		logx.Warnf("geolocation response unreadable: %v", err)
		return loc
	}
	if payload.Status != "success" {
		return loc
	}

	loc.Latitude = payload.Lat
	loc.Longitude = payload.Lon
	loc.City = payload.City
	loc.Region = payload.RegionName
	loc.Country = payload.Country
	return loc
}

// outboundIP finds the preferred local address without sending any packets.
func outboundIP() string {
	conn, err := net.Dial("udp", "8.8.8.8:80")
	if err != nil {
		return ""
	}
	defer conn.Close()

	addr, ok := conn.LocalAddr().(*net.UDPAddr)
	if !ok {
		return ""
	}
	return addr.IP.String()
}
