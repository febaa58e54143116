package service

import (
	"bytes"
	"fmt"
	"log"
	"strings"

	"github.com/ledongthuc/pdf"

	"github.com/docmind-ai/docmind-be/types"
)

// PDFService extracts plain text from PDF documents.
type PDFService struct{}

// NewPDFService creates a new PDF service.
func NewPDFService() *PDFService {
	return &PDFService{}
}

// ExtractText pulls the text of every page and concatenates it in page order.
// Pages that fail to yield text are skipped; the extraction only errors when
// the document produces no text at all.
func (s *PDFService) ExtractText(data []byte) (string, error) {
	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("%w: reading pdf: %v", types.ErrInvalidInput, err)
	}

	var sb strings.Builder
	pages := reader.NumPage()
	for i := 1; i <= pages; i++ {
		page := reader.Page(i)
		if page.V.IsNull() {
			continue
		}
		fonts := make(map[string]*pdf.Font)
		text, err := page.GetPlainText(fonts)
		if err != nil {
			log.Printf("Warning: failed to extract text from page %d: %v", i, err)
			continue
		}
		sb.WriteString(text)
	}

	extracted := sb.String()
	if strings.TrimSpace(extracted) == "" {
		return "", fmt.Errorf("%w: pdf contains no extractable text", types.ErrInvalidInput)
	}
	return extracted, nil
}
