package pdf

import (
	"fmt"
	"strings"

	"github.com/gen2brain/go-fitz" // Lightweight PDF renderer
)

// Document is the extracted plain text of a PDF plus its page count.
type Document struct {
	Text      string
	PageCount int
}

// Extract parses a PDF held in memory and returns its text page by page,
// joined with newlines. A PDF that opens but yields no text still reports
// its real page count.
func Extract(data []byte) (Document, error) {
	doc, err := fitz.NewFromMemory(data)
	if err != nil {
		return Document{}, fmt.Errorf("failed to open PDF: %w", err)
	}
	defer doc.Close()

	pageCount := doc.NumPage()
	pages := make([]string, 0, pageCount)
	for i := 0; i < pageCount; i++ {
		text, err := doc.Text(i)
		if err != nil {
			return Document{}, fmt.Errorf("failed to extract page %d: %w", i, err)
		}
		pages = append(pages, text)
	}

	return Document{
		Text:      strings.Join(pages, "\n"),
		PageCount: pageCount,
	}, nil
}
