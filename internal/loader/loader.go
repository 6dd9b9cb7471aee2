package loader

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"github.com/ledongthuc/pdf"
)

// ErrUnsupportedType is returned for files that are neither .txt nor .pdf.
var ErrUnsupportedType = errors.New("only .txt or .pdf files are supported")

// Supported reports whether the file name has an extension Read can handle.
func Supported(name string) bool {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".txt", ".pdf":
		return true
	}
	return false
}

// Read extracts the text of a document, choosing the decoder by the extension of name.
func Read(name string, r io.Reader) (string, error) {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".txt":
		b, err := io.ReadAll(r)
		if err != nil {
			return "", err
		}
		if !utf8.Valid(b) {
			return "", fmt.Errorf("%s is not valid UTF-8", name)
		}
		return string(b), nil
	case ".pdf":
		return extractPDF(r)
	default:
		return "", ErrUnsupportedType
	}
}

// ReadFile opens path and extracts its text with Read.
func ReadFile(path string) (string, error) {
	if !Supported(path) {
		return "", fmt.Errorf("%s: %w", path, ErrUnsupportedType)
	}
	f, err := os.Open(path)
	if err != nil {
		return "", err
	}
	defer f.Close()
	return Read(path, f)
}

// extractPDF returns an empty string and nil error if the PDF has no extractable text.
func extractPDF(r io.Reader) (string, error) {
	b, err := io.ReadAll(r)
	if err != nil {
		return "", err
	}
	if len(b) == 0 {
		return "", nil
	}
	pdfReader, err := pdf.NewReader(bytes.NewReader(b), int64(len(b)))
	if err != nil {
		return "", fmt.Errorf("open pdf: %w", err)
	}
	plain, err := pdfReader.GetPlainText()
	if err != nil {
		return "", fmt.Errorf("extract pdf text: %w", err)
	}
	out, err := io.ReadAll(plain)
	if err != nil {
		return "", err
	}
	return string(out), nil
}
