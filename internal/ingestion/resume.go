// Package ingestion extracts plain text from uploaded resume files.
// All file handling happens here, before the analysis pipeline runs;
// the pipeline itself only ever sees text.
package ingestion

import (
	"bytes"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/ledongthuc/pdf"
	"github.com/nguyenthenguyen/docx"
)

// ErrUnsupportedFormat indicates an upload with a file extension the
// extractor cannot handle.
type ErrUnsupportedFormat struct {
	Filename string
}

func (e *ErrUnsupportedFormat) Error() string {
	return fmt.Sprintf("unsupported resume format %q: only .pdf and .docx are supported", filepath.Ext(e.Filename))
}

// ExtractText extracts plain text from a resume file. The format is
// chosen by file extension: .pdf and .docx are supported.
func ExtractText(filename string, data []byte) (string, error) {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".pdf":
		return extractPDFText(data)
	case ".docx":
		return extractDocxText(data)
	default:
		return "", &ErrUnsupportedFormat{Filename: filename}
	}
}

func extractPDFText(data []byte) (string, error) {
	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("failed to read pdf: %w", err)
	}

	var sb strings.Builder
	for i := 1; i <= reader.NumPage(); i++ {
		page := reader.Page(i)
		if page.V.IsNull() {
			continue
		}
		text, err := page.GetPlainText(nil)
		if err != nil {
			continue
		}
		sb.WriteString(text)
	}
	return sb.String(), nil
}

func extractDocxText(data []byte) (string, error) {
	doc, err := docx.ReadDocxFromMemory(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("failed to parse docx: %w", err)
	}
	defer doc.Close()

	return doc.Editable().GetContent(), nil
}
