package model

import (
	"errors"
	"fmt"
)

// FailureKind classifies which pipeline stage a pair failed in.
type FailureKind int

const (
	// FailureDownload means a source video could not be fetched
	FailureDownload FailureKind = iota

	// FailureDurationAdjust means the bottom clip could not be reconciled
	// with the top clip's duration
	FailureDurationAdjust

	// FailureComposition means the stacked composite could not be rendered
	FailureComposition

	// FailureChunking means the combined video could not be split
	FailureChunking
)

// String returns the string representation of FailureKind
func (k FailureKind) String() string {
	switch k {
	case FailureDownload:
		return "download"
	case FailureDurationAdjust:
		return "duration-adjust"
	case FailureComposition:
		return "composition"
	case FailureChunking:
		return "chunking"
	default:
		return "unknown"
	}
}

// StageError is a pipeline stage failure. It carries the stage kind so the
// orchestrator can report which stage aborted a pair without string matching.
type StageError struct {
	Kind FailureKind
	Err  error
}

// Error implements the error interface
func (e *StageError) Error() string {
	return fmt.Sprintf("%s: %v", e.Kind, e.Err)
}

// Unwrap returns the underlying error
func (e *StageError) Unwrap() error {
	return e.Err
}

// NewStageError wraps err with a stage failure kind
func NewStageError(kind FailureKind, err error) *StageError {
	return &StageError{Kind: kind, Err: err}
}

// FailureKindOf returns the failure kind of err if it is (or wraps) a
// StageError. The second return value reports whether a kind was found.
func FailureKindOf(err error) (FailureKind, bool) {
	var se *StageError
	if errors.As(err, &se) {
		return se.Kind, true
	}
	return 0, false
}
