// Package extract converts uploaded resume documents to plain text. This is
// the document-to-text collaborator the analysis engine sits behind: the
// engine itself only ever sees the decoded text.
package extract

import (
	"bytes"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/ledongthuc/pdf"
	"github.com/nguyenthenguyen/docx"

	"github.com/resumatch/resumatch/pkg/metrics"
)

// Supported document formats.
const (
	FormatPlain = "txt"
	FormatPDF   = "pdf"
	FormatDOCX  = "docx"
)

// SupportedExtensions lists the accepted upload extensions.
var SupportedExtensions = []string{".txt", ".pdf", ".docx", ".doc"}

// Supported reports whether the filename has an accepted extension.
func Supported(filename string) bool {
	ext := strings.ToLower(filepath.Ext(filename))
	for _, s := range SupportedExtensions {
		if ext == s {
			return true
		}
	}
	return false
}

// Text extracts plain text from a document, dispatching on the filename
// extension. The returned text is never empty: unextractable or text-free
// documents yield ErrNoText.
func Text(filename string, data []byte) (string, error) {
	format, err := formatFor(filename)
	if err != nil {
		return "", err
	}

	var text string
	switch format {
	case FormatPlain:
		text = string(data)
	case FormatPDF:
		text, err = pdfText(data)
	case FormatDOCX:
		text, err = docxText(data)
	}
	if err != nil {
		metrics.RecordExtractionError(format)
		return "", err
	}
	if strings.TrimSpace(text) == "" {
		metrics.RecordExtractionError(format)
		return "", fmt.Errorf("%w: %s", ErrNoText, filename)
	}

	metrics.RecordExtraction(format)
	return text, nil
}

func formatFor(filename string) (string, error) {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".txt":
		return FormatPlain, nil
	case ".pdf":
		return FormatPDF, nil
	case ".docx", ".doc":
		return FormatDOCX, nil
	default:
		return "", fmt.Errorf("%w: %s", ErrUnsupportedFormat, filename)
	}
}

func pdfText(data []byte) (string, error) {
	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("read pdf: %w", err)
	}

	var builder strings.Builder
	for i := 1; i <= reader.NumPage(); i++ {
		page := reader.Page(i)
		if page.V.IsNull() {
			continue
		}
		text, err := page.GetPlainText(nil)
		if err != nil {
			continue
		}
		builder.WriteString(text)
	}
	return builder.String(), nil
}

func docxText(data []byte) (string, error) {
	doc, err := docx.ReadDocxFromMemory(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("parse docx: %w", err)
	}
	defer doc.Close()

	return doc.Editable().GetContent(), nil
}
