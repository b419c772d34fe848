// Package common provides shared utilities and types used across the application.
package common

import (
	"errors"
	"fmt"
)

// Common application errors.
var (
	// Input errors.
	ErrNotFound          = errors.New("not found")
	ErrUnknownCategory   = errors.New("unknown category")
	ErrInvalidSelection  = errors.New("invalid selection")
	ErrNothingToDo       = errors.New("nothing selected")
	ErrCancelled         = errors.New("cancelled by user")
	ErrNoWorkspaceExport = errors.New("no workspace export found")

	// Extraction errors.
	ErrArchiveCorrupt = errors.New("archive corrupt or unsupported")
	ErrCopyFailed     = errors.New("copy failed")

	// Pruning errors.
	ErrDeleteFailed = errors.New("delete failed")

	// Configuration errors.
	ErrInvalidConfig = errors.New("invalid configuration")
)

// UserError represents an error that should be shown to the user.
type UserError struct {
	Err         error
	UserMessage string
}

func (e *UserError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.UserMessage, e.Err)
	}
	return e.UserMessage
}

func (e *UserError) Unwrap() error {
	return e.Err
}

// NewUserError creates a new user-friendly error.
func NewUserError(userMessage string, err error) error {
	return &UserError{
		UserMessage: userMessage,
		Err:         err,
	}
}

// CopyError reports the archive entry that could not be copied into the output tree.
type CopyError struct {
	Err  error
	Path string
}

func (e *CopyError) Error() string {
	return fmt.Sprintf("failed to copy %s: %v", e.Path, e.Err)
}

// Unwrap exposes both the copy sentinel and the underlying cause.
func (e *CopyError) Unwrap() []error {
	return []error{ErrCopyFailed, e.Err}
}

// DeleteError reports a vendor directory that could not be removed completely.
type DeleteError struct {
	Err  error
	Path string
}

func (e *DeleteError) Error() string {
	return fmt.Sprintf("failed to remove %s: %v", e.Path, e.Err)
}

// Unwrap exposes both the delete sentinel and the underlying cause.
func (e *DeleteError) Unwrap() []error {
	return []error{ErrDeleteFailed, e.Err}
}

// NotFoundError builds an ErrNotFound error naming what was missing.
func NotFoundError(what, path string) error {
	return fmt.Errorf("%w: %s %s", ErrNotFound, what, path)
}
