package errors

import (
	"errors"
	"fmt"
	"io/fs"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAppError_Error(t *testing.T) {
	tests := []struct {
		name string
		err  *AppError
		want string
	}{
		{
			name: "without cause",
			err:  NewAppValidationError("unknown section kind"),
			want: "[VALIDATION] unknown section kind",
		},
		{
			name: "with cause",
			err:  NewStorageError("read document", fs.ErrPermission),
			want: "[STORAGE] read document: permission denied",
		},
		{
			name: "not found",
			err:  NewNotFoundError("document site_a.txt"),
			want: "[NOT_FOUND] document site_a.txt not found",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.err.Error())
		})
	}
}

func TestAppError_Constructors(t *testing.T) {
	cause := errors.New("boom")
	tests := []struct {
		err      *AppError
		wantType ErrorType
	}{
		{NewParsingError("bad row", cause), ErrTypeParsing},
		{NewStorageError("read", cause), ErrTypeStorage},
		{NewAppValidationError("bad"), ErrTypeValidation},
		{NewNotFoundError("x"), ErrTypeNotFound},
		{NewConfigError("bad", cause), ErrTypeConfig},
	}

	for _, tt := range tests {
		t.Run(string(tt.wantType), func(t *testing.T) {
			assert.Equal(t, tt.wantType, tt.err.Type)
			assert.NotNil(t, tt.err.Context)
		})
	}
}

func TestAppError_Unwrap(t *testing.T) {
	err := fmt.Errorf("export: %w", NewStorageError("read document", fs.ErrNotExist))

	assert.True(t, errors.Is(err, fs.ErrNotExist))

	var appErr *AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, ErrTypeStorage, appErr.Type)
}

func TestAppError_SentinelIdentity(t *testing.T) {
	sentinel := NewAppValidationError("unknown section kind")
	wrapped := fmt.Errorf("%w: %q", sentinel, "bogus")

	assert.ErrorIs(t, wrapped, sentinel)
	assert.NotErrorIs(t, wrapped, NewAppValidationError("unknown section kind"))
}

func TestAppError_WithContext(t *testing.T) {
	err := NewNotFoundError("document").WithContext("document", "a.txt").WithContext("kind", "mfar")
	assert.Equal(t, map[string]interface{}{"document": "a.txt", "kind": "mfar"}, err.Context)

	bare := &AppError{Type: ErrTypeParsing}
	bare.WithContext("line", 3)
	assert.Equal(t, 3, bare.Context["line"])
}
