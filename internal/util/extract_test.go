package util

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSupportedExtension(t *testing.T) {
	assert.True(t, SupportedExtension("cv.PDF"))
	assert.True(t, SupportedExtension("cv.txt"))
	assert.False(t, SupportedExtension("cv.docx"))
}

func TestExtractTextPlainFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cv.txt")
	require.NoError(t, os.WriteFile(path, []byte("\n  Jane Doe\nGo developer  \n"), 0o644))

	text, err := ExtractText(path)
	require.NoError(t, err)
	assert.Equal(t, "Jane Doe\nGo developer", text)
}

func TestExtractTextEmptyFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cv.txt")
	require.NoError(t, os.WriteFile(path, []byte("   "), 0o644))

	_, err := ExtractText(path)
	assert.ErrorIs(t, err, ErrNoText)
}

func TestExtractTextUnsupported(t *testing.T) {
	_, err := ExtractText("resume.docx")
	assert.ErrorIs(t, err, ErrUnsupportedFile)
}
