package ingestion

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractText_UnsupportedFormat(t *testing.T) {
	_, err := ExtractText("resume.txt", []byte("plain text"))

	require.Error(t, err)
	var unsupported *ErrUnsupportedFormat
	assert.ErrorAs(t, err, &unsupported)
	assert.Contains(t, err.Error(), ".txt")
}

func TestExtractText_ExtensionIsCaseInsensitive(t *testing.T) {
	// Garbage bytes with a PDF extension reach the PDF parser and fail
	// there rather than being rejected as an unknown format.
	_, err := ExtractText("RESUME.PDF", []byte("not a pdf"))

	require.Error(t, err)
	var unsupported *ErrUnsupportedFormat
	assert.NotErrorAs(t, err, &unsupported)
}

func TestExtractText_CorruptDocx(t *testing.T) {
	_, err := ExtractText("resume.docx", []byte("not a zip archive"))

	require.Error(t, err)
	assert.Contains(t, err.Error(), "docx")
}
