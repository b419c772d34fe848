package storage

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/Veraticus/kurmi-workspace/internal/model"
)

// Validation errors.
var (
	ErrNilContext    = errors.New("context cannot be nil")
	ErrEmptyString   = errors.New("string parameter cannot be empty")
	ErrNilParameter  = errors.New("parameter cannot be nil")
	ErrInvalidRun    = errors.New("invalid run")
	ErrInvalidStatus = errors.New("invalid run status")
	ErrRunNotFound   = errors.New("run not found")
)

// validateContext ensures the context is not nil.
func validateContext(ctx context.Context) error {
	if ctx == nil {
		return ErrNilContext
	}
	return nil
}

// validateString ensures a string parameter is not empty.
func validateString(s string, paramName string) error {
	if strings.TrimSpace(s) == "" {
		return fmt.Errorf("%w: %s", ErrEmptyString, paramName)
	}
	return nil
}

// validateRun checks a run before it is written. The ID may be empty; one is
// assigned on insert.
func validateRun(run *model.Run) error {
	if run == nil {
		return fmt.Errorf("%w: run", ErrNilParameter)
	}
	switch run.Kind {
	case model.RunKindExtract, model.RunKindPrune:
	default:
		return fmt.Errorf("%w: unknown kind %q", ErrInvalidRun, run.Kind)
	}
	switch run.Status {
	case model.RunStatusComplete, model.RunStatusPartial:
	default:
		return fmt.Errorf("%w: %q", ErrInvalidStatus, run.Status)
	}
	if run.Source == "" {
		return fmt.Errorf("%w: missing source", ErrInvalidRun)
	}
	if run.StartedAt.IsZero() {
		return fmt.Errorf("%w: missing start time", ErrInvalidRun)
	}
	if run.FinishedAt.Before(run.StartedAt) {
		return fmt.Errorf("%w: finished before it started", ErrInvalidRun)
	}
	if run.Total < 0 || run.Failures < 0 {
		return fmt.Errorf("%w: negative count", ErrInvalidRun)
	}
	for category, n := range run.Counts {
		if category == "" || n < 0 {
			return fmt.Errorf("%w: bad count for %q", ErrInvalidRun, category)
		}
	}
	return nil
}
