package extraction

import "fmt"

// ErrorKind classifies an extraction failure.
type ErrorKind string

const (
	// KindUnsupported means the file extension is not one of pdf, docx, txt.
	KindUnsupported ErrorKind = "unsupported"
	// KindCorrupt means the document could not be parsed.
	KindCorrupt ErrorKind = "corrupt"
	// KindEmpty means parsing succeeded but produced no text.
	KindEmpty ErrorKind = "empty"
)

// Error represents a document extraction failure. It distinguishes the
// failure kinds instead of returning an error message disguised as
// document text.
type Error struct {
	Kind     ErrorKind
	Filename string
	Cause    error
}

func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("extraction failed for %s (%s): %v", e.Filename, e.Kind, e.Cause)
	}
	return fmt.Sprintf("extraction failed for %s (%s)", e.Filename, e.Kind)
}

func (e *Error) Unwrap() error {
	return e.Cause
}
