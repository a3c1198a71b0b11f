package news

import (
	"errors"
	"fmt"
	"strings"
)

////////////////////////////////////////////////////////////////////////////////
// GLOBALS

const (
	ErrSuccess Err = iota
	ErrTransport
	ErrBodyRead
	ErrDecode
	ErrURL
	ErrBadRequest
)

////////////////////////////////////////////////////////////////////////////////
// TYPES

// Errors
type Err int

////////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

func (e Err) Error() string {
	switch e {
	case ErrSuccess:
		return "success"
	case ErrTransport:
		return "failed fetching articles"
	case ErrBodyRead:
		return "failed reading response body"
	case ErrDecode:
		return "article parsing failed"
	case ErrURL:
		return "url parsing failed"
	case ErrBadRequest:
		return "request failed"
	}
	return fmt.Sprintf("error code %d", int(e))
}

func (e Err) With(args ...interface{}) error {
	return fmt.Errorf("%w: %s", e, fmt.Sprint(args...))
}

func (e Err) Withf(format string, args ...interface{}) error {
	return fmt.Errorf("%w: %s", e, fmt.Sprintf(format, args...))
}

// Wrap returns an error of this kind which also wraps cause, so that
// errors.Is matches both.
func (e Err) Wrap(cause error) error {
	if cause == nil {
		return e
	}
	return fmt.Errorf("%w: %w", e, cause)
}

// Kind returns the Err kind carried by err, or ErrSuccess when err is nil
// or carries no kind.
func Kind(err error) Err {
	var kind Err
	if errors.As(err, &kind) {
		return kind
	}
	return ErrSuccess
}

// Message returns the message attached to an error created with With,
// Withf or Wrap, without the kind prefix. It returns an empty string when
// there is no message.
func Message(err error) string {
	kind := Kind(err)
	if err == nil || kind == ErrSuccess {
		return ""
	}
	if message, ok := strings.CutPrefix(err.Error(), kind.Error()+": "); ok {
		return message
	}
	return ""
}
