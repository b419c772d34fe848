package common

import (
	"errors"
	"io/fs"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCopyError_Unwrap(t *testing.T) {
	err := &CopyError{Path: "a/b.widget.js", Err: fs.ErrPermission}

	assert.ErrorIs(t, err, ErrCopyFailed)
	assert.ErrorIs(t, err, fs.ErrPermission)
	assert.Contains(t, err.Error(), "a/b.widget.js")
}

func TestDeleteError_Unwrap(t *testing.T) {
	err := &DeleteError{Path: "connectors/CiscoB", Err: fs.ErrPermission}

	assert.ErrorIs(t, err, ErrDeleteFailed)
	assert.ErrorIs(t, err, fs.ErrPermission)
	assert.NotErrorIs(t, err, ErrCopyFailed)
}

func TestUserError(t *testing.T) {
	inner := errors.New("boom")
	err := NewUserError("Extraction failed", inner)

	assert.Equal(t, "Extraction failed: boom", err.Error())
	assert.ErrorIs(t, err, inner)
	assert.Equal(t, "plain", NewUserError("plain", nil).Error())
}

func TestNotFoundError(t *testing.T) {
	err := NotFoundError("archive", "/tmp/missing.zip")
	assert.ErrorIs(t, err, ErrNotFound)
	assert.Contains(t, err.Error(), "/tmp/missing.zip")
}
