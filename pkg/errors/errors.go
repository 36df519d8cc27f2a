// Package errors provides the coded error type shared by the CLI and the
// HTTP service.
//
// Codes are machine readable and stable; the server writes them as
// {"code": ..., "message": ...} and the CLI prints [UserMessage].
//
//	err := errors.New(errors.ErrCodeInvalidPreset, "invalid preset: %q", id)
//	if errors.Is(err, errors.ErrCodeInvalidPreset) {
//	    // ...
//	}
//
//	err = errors.Wrap(errors.ErrCodeTweetFetch, cause, "could not load tweet")
package errors

import (
	"errors"
	"fmt"
	"net/http"
)

// Code is a machine-readable error code.
type Code string

const (
	// Input validation
	ErrCodeInvalidInput       Code = "INVALID_INPUT"
	ErrCodeInvalidImageType   Code = "INVALID_IMAGE_TYPE"
	ErrCodeImageTooLarge      Code = "IMAGE_TOO_LARGE"
	ErrCodeInvalidPreset      Code = "INVALID_PRESET"
	ErrCodeInvalidPalette     Code = "INVALID_PALETTE"
	ErrCodeInvalidAspectRatio Code = "INVALID_ASPECT_RATIO"
	ErrCodeInvalidTitleBar    Code = "INVALID_TITLE_BAR"
	ErrCodeInvalidAnimation   Code = "INVALID_ANIMATION"
	ErrCodeInvalidFrameStyle  Code = "INVALID_FRAME_STYLE"
	ErrCodeInvalidFormat      Code = "INVALID_FORMAT"
	ErrCodeInvalidTheme       Code = "INVALID_THEME"
	ErrCodeInvalidLanguage    Code = "INVALID_LANGUAGE"
	ErrCodeInvalidColor       Code = "INVALID_COLOR"
	ErrCodeInvalidURL         Code = "INVALID_URL"
	ErrCodeInvalidPath        Code = "INVALID_PATH"
	ErrCodeInvalidConfig      Code = "INVALID_CONFIG"

	// Missing input
	ErrCodeEmptyClipboard Code = "EMPTY_CLIPBOARD"
	ErrCodeNotFound       Code = "NOT_FOUND"
	ErrCodeFileNotFound   Code = "FILE_NOT_FOUND"

	// Remote
	ErrCodeNetwork     Code = "NETWORK_ERROR"
	ErrCodeTimeout     Code = "TIMEOUT"
	ErrCodeRateLimited Code = "RATE_LIMITED"
	ErrCodeTweetFetch  Code = "TWEET_FETCH_FAILED"

	// Output
	ErrCodeRender Code = "RENDER_FAILED"
	ErrCodeExport Code = "EXPORT_FAILED"

	ErrCodeInternal    Code = "INTERNAL_ERROR"
	ErrCodeUnsupported Code = "UNSUPPORTED"
)

// Error is a coded error with an optional cause.
type Error struct {
	Code    Code
	Message string
	Cause   error
}

func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *Error) Unwrap() error { return e.Cause }

// New returns an Error with a formatted message.
func New(code Code, format string, args ...any) *Error {
	return &Error{Code: code, Message: fmt.Sprintf(format, args...)}
}

// Wrap returns an Error that wraps cause.
func Wrap(code Code, cause error, format string, args ...any) *Error {
	return &Error{Code: code, Message: fmt.Sprintf(format, args...), Cause: cause}
}

// Is reports whether the first *Error in err's chain has code.
func Is(err error, code Code) bool {
	var e *Error
	if errors.As(err, &e) {
		return e.Code == code
	}
	return false
}

// GetCode returns the code of the first *Error in err's chain, or "".
func GetCode(err error) Code {
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	return ""
}

// UserMessage returns the message without the code prefix. Plain errors are
// returned as-is.
func UserMessage(err error) string {
	var e *Error
	if errors.As(err, &e) {
		return e.Message
	}
	return err.Error()
}

// HTTPStatus maps a code onto the status the server responds with.
func HTTPStatus(code Code) int {
	switch code {
	case "":
		return http.StatusInternalServerError
	case ErrCodeImageTooLarge:
		return http.StatusRequestEntityTooLarge
	case ErrCodeInvalidImageType:
		return http.StatusUnsupportedMediaType
	case ErrCodeNotFound, ErrCodeFileNotFound:
		return http.StatusNotFound
	case ErrCodeRateLimited:
		return http.StatusTooManyRequests
	case ErrCodeNetwork, ErrCodeTweetFetch:
		return http.StatusBadGateway
	case ErrCodeTimeout:
		return http.StatusGatewayTimeout
	case ErrCodeRender, ErrCodeExport, ErrCodeInternal:
		return http.StatusInternalServerError
	case ErrCodeUnsupported:
		return http.StatusNotImplemented
	}
	return http.StatusBadRequest
}

// RateLimitedError carries the Retry-After hint of a 429 response.
type RateLimitedError struct {
	RetryAfter int
}

func (e *RateLimitedError) Error() string {
	if e.RetryAfter > 0 {
		return fmt.Sprintf("rate limited: retry after %d seconds", e.RetryAfter)
	}
	return "rate limited"
}

// Code returns ErrCodeRateLimited.
func (e *RateLimitedError) Code() Code { return ErrCodeRateLimited }
