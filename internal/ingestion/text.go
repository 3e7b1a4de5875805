// Package ingestion loads and checks the plain-text documents handed to the
// analyzer. Text is never rewritten: the analyzer sees exactly what was read.
package ingestion

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"
)

// Document is a checked plain-text input.
type Document struct {
	Name string // base file name or caller-supplied label
	Text string
}

// CheckText validates text supplied by a caller: it must fit in maxBytes
// (0 disables the cap), be valid UTF-8 and contain something besides whitespace.
func CheckText(source, text string, maxBytes int64) error {
	if maxBytes > 0 && int64(len(text)) > maxBytes {
		return &FileTooLargeError{Source: source, Size: int64(len(text)), Limit: maxBytes}
	}
	if !utf8.ValidString(text) {
		return &InvalidEncodingError{Source: source}
	}
	if strings.TrimSpace(text) == "" {
		return &EmptyInputError{Source: source}
	}
	return nil
}

// ReadText reads a plain-text file and checks it with CheckText.
// Oversized files are rejected without reading them fully.
func ReadText(path string, maxBytes int64) (*Document, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, &ReadError{Path: path, Cause: fmt.Errorf("file not found: %w", err)}
		}
		return nil, &ReadError{Path: path, Cause: err}
	}
	defer func() { _ = f.Close() }()

	var r io.Reader = f
	if maxBytes > 0 {
		// one extra byte separates "at the limit" from "over it"
		r = io.LimitReader(f, maxBytes+1)
	}
	content, err := io.ReadAll(r)
	if err != nil {
		return nil, &ReadError{Path: path, Cause: err}
	}

	if maxBytes > 0 && int64(len(content)) > maxBytes {
		size := int64(len(content))
		if info, statErr := f.Stat(); statErr == nil {
			size = info.Size()
		}
		return nil, &FileTooLargeError{Source: path, Size: size, Limit: maxBytes}
	}

	text := string(content)
	if err := CheckText(path, text, maxBytes); err != nil {
		return nil, err
	}

	return &Document{Name: filepath.Base(path), Text: text}, nil
}

// ReadAll reads every path with ReadText, stopping at the first failure.
func ReadAll(paths []string, maxBytes int64) ([]*Document, error) {
	docs := make([]*Document, 0, len(paths))
	for _, p := range paths {
		doc, err := ReadText(p, maxBytes)
		if err != nil {
			return nil, err
		}
		docs = append(docs, doc)
	}
	return docs, nil
}
