package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadResume_PlainText(t *testing.T) {
	path := filepath.Join(t.TempDir(), "resume.txt")
	require.NoError(t, os.WriteFile(path, []byte("Python developer, 3 years"), 0o644))

	text, err := readResume(path)
	require.NoError(t, err)
	assert.Equal(t, "Python developer, 3 years", text)
}

func TestReadResume_MissingFile(t *testing.T) {
	_, err := readResume(filepath.Join(t.TempDir(), "missing.txt"))
	assert.Error(t, err)
}

func TestReadResume_CorruptPDF(t *testing.T) {
	path := filepath.Join(t.TempDir(), "resume.pdf")
	require.NoError(t, os.WriteFile(path, []byte("not a pdf"), 0o644))

	_, err := readResume(path)
	assert.Error(t, err)
}

func TestValidateReport_NoSchemaFound(t *testing.T) {
	cwd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(t.TempDir()))
	t.Cleanup(func() { _ = os.Chdir(cwd) })

	// Without a locatable schema the report is accepted as-is.
	assert.NoError(t, validateReport([]byte(`{}`), ""))
}

func TestValidateReport_BadSchemaPath(t *testing.T) {
	err := validateReport([]byte(`{}`), filepath.Join(t.TempDir(), "missing.schema.json"))
	assert.Error(t, err)
}
