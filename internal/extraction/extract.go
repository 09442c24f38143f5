// Package extraction converts uploaded CV documents into plain text.
// It owns format detection and the per-format readers; the matching
// engine only ever sees the extracted string.
package extraction

import (
	"path/filepath"
	"strings"
)

// AllowedExtensions lists the accepted upload formats.
var AllowedExtensions = []string{".pdf", ".docx", ".txt"}

// Allowed reports whether the filename carries an accepted extension.
func Allowed(filename string) bool {
	ext := strings.ToLower(filepath.Ext(filename))
	for _, allowed := range AllowedExtensions {
		if ext == allowed {
			return true
		}
	}
	return false
}

// Text detects the document format from the filename extension and
// extracts its plain text. Failures are reported as *Error with a kind
// of unsupported, corrupt or empty.
func Text(filename string, data []byte) (string, error) {
	ext := strings.ToLower(filepath.Ext(filename))

	var (
		text string
		err  error
	)
	switch ext {
	case ".pdf":
		text, err = pdfText(data)
	case ".docx":
		text, err = docxText(data)
	case ".txt":
		text = string(data)
	default:
		return "", &Error{Kind: KindUnsupported, Filename: filename}
	}

	if err != nil {
		return "", &Error{Kind: KindCorrupt, Filename: filename, Cause: err}
	}
	if strings.TrimSpace(text) == "" {
		return "", &Error{Kind: KindEmpty, Filename: filename}
	}
	return text, nil
}
