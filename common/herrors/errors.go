// Package herrors contains the error types returned by the build pipeline.
package herrors

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidArgument is matched by errors.Is for every malformed input,
	// e.g. post metadata that is not a mapping or misses a required field.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrPathCollision is matched by errors.Is when two sources map to the
	// same output path.
	ErrPathCollision = errors.New("output path collision")
)

// MetadataError describes a post metadata document that could not be used.
type MetadataError struct {
	// The sidecar file, may be empty when the document was not read from disk.
	Filename string

	// The offending field, empty when the document as a whole is invalid.
	Field string

	Err error
}

func (e *MetadataError) Error() string {
	var prefix string
	if e.Filename != "" {
		prefix = fmt.Sprintf("%q: ", e.Filename)
	}
	if e.Field != "" {
		return fmt.Sprintf("%sfield %q: %v", prefix, e.Field, e.Err)
	}
	return fmt.Sprintf("%s%v", prefix, e.Err)
}

func (e *MetadataError) Unwrap() error {
	return e.Err
}

// WithFilename returns a copy of e with the given filename set.
func (e *MetadataError) WithFilename(filename string) *MetadataError {
	c := *e
	c.Filename = filename
	return &c
}

// NewInvalidField creates a MetadataError for field wrapping ErrInvalidArgument.
func NewInvalidField(field, format string, args ...any) *MetadataError {
	return &MetadataError{
		Field: field,
		Err:   fmt.Errorf("%w: %s", ErrInvalidArgument, fmt.Sprintf(format, args...)),
	}
}

// FileError wraps a failure to access a file the build requires.
type FileError struct {
	Op       string
	Filename string
	Err      error
}

func (e *FileError) Error() string {
	return fmt.Sprintf("%s %q: %v", e.Op, e.Filename, e.Err)
}

func (e *FileError) Unwrap() error {
	return e.Err
}

// NewFileError wraps err with the operation and filename that caused it.
func NewFileError(op, filename string, err error) error {
	if err == nil {
		return nil
	}
	return &FileError{Op: op, Filename: filename, Err: err}
}

// CollisionError is returned when two sources derive the same output path.
type CollisionError struct {
	Path   string
	First  string
	Second string
}

func (e *CollisionError) Error() string {
	return fmt.Sprintf("%s: %q is produced by both %q and %q", ErrPathCollision, e.Path, e.First, e.Second)
}

func (e *CollisionError) Is(target error) bool {
	return target == ErrPathCollision
}
