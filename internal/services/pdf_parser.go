package services

import (
	"errors"
	"fmt"
	"strings"

	"github.com/ledongthuc/pdf"
)

// ErrDocumentUnreadable marks a source document that cannot be opened or
// decoded. Field extraction must not proceed after it.
var ErrDocumentUnreadable = errors.New("document unreadable")

type PDFParserService interface {
	ExtractText(filepath string) (string, error)
}

type pdfParserService struct{}

func NewPDFParserService() PDFParserService {
	return &pdfParserService{}
}

// ExtractText returns the concatenated plain text of every page in document
// order. Pages that fail to decode individually are skipped; a document with
// no extractable text at all counts as unreadable.
func (p *pdfParserService) ExtractText(filePath string) (string, error) {
	f, r, err := pdf.Open(filePath)
	if err != nil {
		return "", fmt.Errorf("%w: failed to open PDF: %v", ErrDocumentUnreadable, err)
	}
	defer f.Close()

	var textBuilder strings.Builder
	totalPage := r.NumPage()

	for pageIndex := 1; pageIndex <= totalPage; pageIndex++ {
		page := r.Page(pageIndex)
		if page.V.IsNull() {
			continue
		}

		text, err := page.GetPlainText(nil)
		if err != nil {
			continue
		}

		textBuilder.WriteString(text)
	}

	text := textBuilder.String()
	if strings.TrimSpace(text) == "" {
		return "", fmt.Errorf("%w: no text content found in PDF", ErrDocumentUnreadable)
	}

	return text, nil
}
