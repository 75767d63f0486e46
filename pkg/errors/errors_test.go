// pkg/errors/errors_test.go
// TEST TYPE: Unit Test
// DEPENDENCIES: None
// PURPOSE: Test error creation, wrapping, hints and exit code mapping

package errors_test

import (
	stderrors "errors"
	"testing"

	"github.com/arthur-debert/stau/pkg/errors"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name    string
		code    errors.ErrorCode
		message string
		wantStr string
	}{
		{
			name:    "package_not_found",
			code:    errors.ErrPackageNotFound,
			message: "package not found: vim",
			wantStr: "[PACKAGE_NOT_FOUND] package not found: vim",
		},
		{
			name:    "invalid_flags",
			code:    errors.ErrInvalidFlags,
			message: "adopt does not accept --force",
			wantStr: "[INVALID_FLAG_COMBINATION] adopt does not accept --force",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := errors.New(tt.code, tt.message)

			if err.Code != tt.code {
				t.Errorf("New() code = %v, want %v", err.Code, tt.code)
			}
			if err.Details == nil {
				t.Error("New() details should be initialized")
			}
			if got := err.Error(); got != tt.wantStr {
				t.Errorf("Error() = %q, want %q", got, tt.wantStr)
			}
		})
	}
}

func TestWrap(t *testing.T) {
	baseErr := stderrors.New("permission denied")

	t.Run("wrap_non_nil_error", func(t *testing.T) {
		err := errors.Wrapf(baseErr, errors.ErrTargetUnwritable, "cannot create symlink %s", "/home/u/.vimrc")

		if err.Wrapped != baseErr {
			t.Error("Wrap() should preserve wrapped error")
		}

		wantStr := "[TARGET_UNWRITABLE] cannot create symlink /home/u/.vimrc: permission denied"
		if got := err.Error(); got != wantStr {
			t.Errorf("Error() = %q, want %q", got, wantStr)
		}
		if !stderrors.Is(err, baseErr) {
			t.Error("errors.Is should find the wrapped cause")
		}
	})

	t.Run("wrap_nil_error_returns_nil", func(t *testing.T) {
		if err := errors.Wrap(nil, errors.ErrIO, "io"); err != nil {
			t.Error("Wrap(nil) should return nil")
		}
	})
}

func TestWithDetail(t *testing.T) {
	err := errors.New(errors.ErrIO, "copy failed").
		WithDetail("path", "/test/path").
		WithDetail("action", "copy_file_back")

	if err.Details["path"] != "/test/path" {
		t.Errorf("WithDetail() path = %v", err.Details["path"])
	}
	if got := errors.GetErrorDetails(err)["action"]; got != "copy_file_back" {
		t.Errorf("GetErrorDetails() action = %v", got)
	}
}

func TestIs(t *testing.T) {
	err1 := errors.New(errors.ErrConflict, "error 1")
	err2 := errors.New(errors.ErrConflict, "error 2")
	err3 := errors.New(errors.ErrIO, "error 3")

	if !stderrors.Is(err1, err2) {
		t.Error("errors.Is() should match on code")
	}
	if err1.Is(err3) {
		t.Error("Is() should return false for different codes")
	}
}

func TestGetErrorCode(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected errors.ErrorCode
	}{
		{"stau_error", errors.New(errors.ErrAdoptSourceMissing, "missing"), errors.ErrAdoptSourceMissing},
		{"standard_error", stderrors.New("standard error"), errors.ErrUnknown},
		{"nil_error", nil, errors.ErrUnknown},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := errors.GetErrorCode(tt.err); got != tt.expected {
				t.Errorf("GetErrorCode() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestExitCode(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"nil", nil, 0},
		{"not_found", errors.New(errors.ErrPackageNotFound, "x"), 1},
		{"conflict", errors.New(errors.ErrConflict, "x"), 2},
		{"permission", errors.New(errors.ErrTargetUnwritable, "x"), 3},
		{"io", errors.New(errors.ErrIO, "x"), 3},
		{"script", errors.New(errors.ErrScriptFailed, "x"), 4},
		{"plain", stderrors.New("x"), 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := errors.ExitCode(tt.err); got != tt.want {
				t.Errorf("ExitCode() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestHint(t *testing.T) {
	conflict := errors.New(errors.ErrConflict, "conflicting file")
	if conflict.Hint() == "" {
		t.Error("conflict errors should carry a hint")
	}
	if errors.New(errors.ErrInternal, "x").Hint() != "" {
		t.Error("internal errors have no hint")
	}
}
