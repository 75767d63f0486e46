package view

import (
	stderrors "errors"

	"github.com/arthur-debert/stau/pkg/errors"
)

// ErrorInfo is the renderable form of an error
type ErrorInfo struct {
	Code    string                 `json:"code" yaml:"code"`
	Message string                 `json:"error" yaml:"error"`
	Hint    string                 `json:"hint,omitempty" yaml:"hint,omitempty"`
	Details map[string]interface{} `json:"details,omitempty" yaml:"details,omitempty"`
}

// DescribeError extracts code, message, details and hint from err
func DescribeError(err error) ErrorInfo {
	info := ErrorInfo{Code: string(errors.GetErrorCode(err)), Message: err.Error()}
	var se *errors.StauError
	if stderrors.As(err, &se) {
		info.Message = se.Message
		if se.Wrapped != nil {
			info.Message += ": " + se.Wrapped.Error()
		}
		info.Hint = se.Hint()
		info.Details = se.Details
	}
	return info
}
