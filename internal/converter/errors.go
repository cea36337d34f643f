package converter

import (
	"errors"
	"fmt"
)

// ErrInvalidFileType indicates the input name does not end in ".xlsx".
var ErrInvalidFileType = errors.New("invalid file type: expected .xlsx")

// SheetNotFoundError indicates the workbook has no sheet with the expected name.
type SheetNotFoundError struct {
	Sheet string
}

func (e *SheetNotFoundError) Error() string {
	return fmt.Sprintf("sheet %q not found", e.Sheet)
}

// ProcessingError wraps any other failure together with the stage it
// happened in.
type ProcessingError struct {
	Stage Stage
	Err   error
}

func (e *ProcessingError) Error() string {
	return fmt.Sprintf("%s: %v", e.Stage, e.Err)
}

func (e *ProcessingError) Unwrap() error {
	return e.Err
}

func processingError(stage Stage, err error) error {
	var pe *ProcessingError
	if errors.As(err, &pe) {
		return err
	}
	return &ProcessingError{Stage: stage, Err: err}
}
