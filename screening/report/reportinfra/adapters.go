package reportinfra

import (
	"github.com/Antwa-sensei253/testing-resume-scoring/internal/courses"
	"github.com/Antwa-sensei253/testing-resume-scoring/internal/heuristic"
	"github.com/Antwa-sensei253/testing-resume-scoring/internal/nlp"
	"github.com/Antwa-sensei253/testing-resume-scoring/internal/pdf"
	"github.com/Antwa-sensei253/testing-resume-scoring/pkg/logx"
	"github.com/Antwa-sensei253/testing-resume-scoring/screening/report"
)

// PDFExtractor adapts the fitz-based extractor to the TextExtractor port.
type PDFExtractor struct{}

func NewPDFExtractor() report.TextExtractor {
	return &PDFExtractor{}
}

func (e *PDFExtractor) Extract(data []byte) (heuristic.Document, error) {
	doc, err := pdf.Extract(data)
	if err != nil {
		return heuristic.Document{}, err
	}
	return heuristic.Document{Text: doc.Text, PageCount: doc.PageCount}, nil
}

// ProseTagger adapts the NLP toolkit to the Tagger port. Tagging failures
// degrade to empty results; the heuristic engine treats missing inputs as
// soft misses, not errors.
type ProseTagger struct{}

func NewProseTagger() report.Tagger {
	return &ProseTagger{}
}

func (t *ProseTagger) Skills(text string) []string {
	return nlp.ExtractSkills(text)
}

func (t *ProseTagger) PersonHints(text string) []heuristic.EntityHint {
	hints, err := nlp.PersonHints(text)
	if err != nil {
		logx.Warnf("Entity recognition skipped: %v", err)
		return nil
	}
	return hints
}

func (t *ProseTagger) CustomName(text string) string {
	return nlp.CustomNameLookup(text)
}

// StaticCatalog adapts the static course tables to the CourseCatalog port.
type StaticCatalog struct{}

func NewStaticCatalog() report.CourseCatalog {
	return &StaticCatalog{}
}

func (c *StaticCatalog) Recommend(field heuristic.Field, n int) []courses.Course {
	return courses.Recommend(field, n)
}

func (c *StaticCatalog) ResumeVideo() string {
	return courses.ResumeVideo()
}

func (c *StaticCatalog) InterviewVideo() string {
	return courses.InterviewVideo()
}
