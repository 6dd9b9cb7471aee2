package loader

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSupported(t *testing.T) {
	assert.True(t, Supported("notes.txt"))
	assert.True(t, Supported("Scan.PDF"))
	assert.False(t, Supported("notes.docx"))
	assert.False(t, Supported("README"))
}

func TestRead_Text(t *testing.T) {
	text, err := Read("patient.txt", strings.NewReader("The patient has diabetes."))
	require.NoError(t, err)
	assert.Equal(t, "The patient has diabetes.", text)
}

func TestRead_InvalidUTF8(t *testing.T) {
	_, err := Read("bad.txt", strings.NewReader("\xff\xfe"))
	assert.Error(t, err)
}

func TestRead_Unsupported(t *testing.T) {
	_, err := Read("image.png", strings.NewReader("x"))
	assert.ErrorIs(t, err, ErrUnsupportedType)
}

func TestRead_EmptyPDF(t *testing.T) {
	text, err := Read("empty.pdf", strings.NewReader(""))
	require.NoError(t, err)
	assert.Equal(t, "", text)
}

func TestRead_NotAPDF(t *testing.T) {
	_, err := Read("fake.pdf", strings.NewReader("The patient has diabetes."))
	assert.Error(t, err)
}

func TestReadFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "doc.txt")
	require.NoError(t, os.WriteFile(path, []byte("Takes insulin daily."), 0o644))

	text, err := ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "Takes insulin daily.", text)

	_, err = ReadFile(filepath.Join(dir, "doc.md"))
	assert.ErrorIs(t, err, ErrUnsupportedType)

	_, err = ReadFile(filepath.Join(dir, "missing.txt"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}
