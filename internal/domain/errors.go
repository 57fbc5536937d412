package domain

import (
	"errors"
	"fmt"
)

// Domain errors
var (
	ErrNoFile          = errors.New("file is required")
	ErrEmptyFile       = errors.New("file is empty")
	ErrNotPDF          = errors.New("only PDF files are supported")
	ErrNotEnoughFiles  = errors.New("at least 2 PDF files are required to merge")
	ErrInvalidAngle    = errors.New("rotation must be 90, 180 or 270 degrees")
	ErrSinglePage      = errors.New("This PDF has only 1 page, nothing to split.")
	ErrSplitOutOfRange = errors.New("split point out of range")
	ErrPageOutOfRange  = errors.New("page number out of range")
	ErrInvalidPart     = errors.New("part must be 1 or 2")
)

// RangeError reports a numeric input outside its allowed bounds.
type RangeError struct {
	Err   error
	Value int
	Min   int
	Max   int
}

func (e *RangeError) Error() string {
	return fmt.Sprintf("%s: %d (allowed %d to %d)", e.Err, e.Value, e.Min, e.Max)
}

func (e *RangeError) Unwrap() error {
	return e.Err
}
