package usecases

import (
	"errors"
	"fmt"
	"strings"

	"mood_forge/internal/ai"
	"mood_forge/internal/models"
)

// Kind classifies a failure so each endpoint can pick its own status code.
type Kind int

const (
	KindValidation Kind = iota + 1
	KindStore
	KindUpstreamUnavailable
	KindUpstream
	KindInvalidUpstreamResponse
	KindNoData
	KindPersistence
	KindDuplicate
)

func (k Kind) String() string {
	switch k {
	case KindValidation:
		return "validation_error"
	case KindStore:
		return "store_error"
	case KindUpstreamUnavailable:
		return "upstream_unavailable"
	case KindUpstream:
		return "upstream_error"
	case KindInvalidUpstreamResponse:
		return "invalid_upstream_response"
	case KindNoData:
		return "no_data_available"
	case KindPersistence:
		return "persistence_error"
	case KindDuplicate:
		return "duplicate_entry"
	default:
		return "unknown"
	}
}

type Error struct {
	Kind  Kind
	Op    string
	Field string
	Msg   string
	Err   error
}

func (e *Error) Error() string {
	var b strings.Builder
	b.WriteString(e.Op)
	b.WriteString(": ")
	b.WriteString(e.Kind.String())
	if e.Msg != "" {
		b.WriteString(": ")
		b.WriteString(e.Msg)
	}
	if e.Err != nil {
		b.WriteString(": ")
		b.WriteString(e.Err.Error())
	}
	return b.String()
}

func (e *Error) Unwrap() error {
	return e.Err
}

// KindOf returns the Kind carried by err, or 0 when err is not an *Error.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return 0
}

func invalid(op, field, format string, args ...any) *Error {
	return &Error{Kind: KindValidation, Op: op, Field: field, Msg: fmt.Sprintf(format, args...)}
}

func storeError(op string, err error) *Error {
	return &Error{Kind: KindStore, Op: op, Msg: "store failure", Err: err}
}

func insertError(op string, err error) *Error {
	if errors.Is(err, models.ErrDuplicate) {
		return &Error{Kind: KindDuplicate, Op: op, Msg: "already submitted for this day", Err: err}
	}
	return storeError(op, err)
}

func gatewayError(op string, err error) *Error {
	var statusErr *ai.StatusError
	switch {
	case errors.Is(err, ai.ErrUnavailable):
		return &Error{Kind: KindUpstreamUnavailable, Op: op, Msg: "inference service unreachable", Err: err}
	case errors.As(err, &statusErr):
		return &Error{Kind: KindUpstream, Op: op, Msg: "inference service failed", Err: err}
	case errors.Is(err, ai.ErrInvalidResponse):
		return &Error{Kind: KindInvalidUpstreamResponse, Op: op, Msg: "inference service answered with an invalid payload", Err: err}
	default:
		return &Error{Kind: KindUpstream, Op: op, Msg: "inference service failed", Err: err}
	}
}
