package ingestion

import "fmt"

// EmptyInputError indicates a document with no non-whitespace content.
type EmptyInputError struct {
	Source string
}

func (e *EmptyInputError) Error() string {
	return fmt.Sprintf("%s is empty", e.Source)
}

// FileTooLargeError indicates a document over the configured size cap.
type FileTooLargeError struct {
	Source string
	Size   int64
	Limit  int64
}

func (e *FileTooLargeError) Error() string {
	return fmt.Sprintf("%s is %d bytes, larger than the %d byte limit", e.Source, e.Size, e.Limit)
}

// InvalidEncodingError indicates content that is not valid UTF-8 text, which
// usually means a binary document (PDF, DOCX) was supplied without extracting
// its text first.
type InvalidEncodingError struct {
	Source string
}

func (e *InvalidEncodingError) Error() string {
	return fmt.Sprintf("%s is not valid UTF-8 text; extract plain text first", e.Source)
}

// ReadError wraps a failure reading a document from disk.
type ReadError struct {
	Path  string
	Cause error
}

func (e *ReadError) Error() string {
	return fmt.Sprintf("failed to read %s: %v", e.Path, e.Cause)
}

func (e *ReadError) Unwrap() error {
	return e.Cause
}
