// Package apierr maps store and input errors to JSON API responses.
//
// Three kinds reach clients: invalid input (400), missing document (404)
// and everything else (500). Internal errors are logged and replaced with a
// fixed message so driver text never leaks.
//
// Legacy mode keeps the contract older dashboard clients were written
// against: every failure is a 404 carrying the raw error text.
package apierr

import (
	"errors"
	"net/http"

	overallstatstore "github.com/dalemusser/statdeck/internal/app/store/overallstats"
	userstore "github.com/dalemusser/statdeck/internal/app/store/users"
	"github.com/dalemusser/statdeck/internal/app/system/jsonutil"
	"github.com/dalemusser/statdeck/internal/app/system/refdate"
)

// InternalMessage is the client-facing text for internal errors.
const InternalMessage = "internal server error"

// Kind is the class of a failure as seen by API clients.
type Kind int

const (
	Internal Kind = iota
	Invalid
	NotFound
)

func (k Kind) String() string {
	switch k {
	case Invalid:
		return "invalid"
	case NotFound:
		return "not_found"
	default:
		return "internal"
	}
}

// Status returns the HTTP status code for k.
func (k Kind) Status() int {
	switch k {
	case Invalid:
		return http.StatusBadRequest
	case NotFound:
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

// KindOf classifies err.
func KindOf(err error) Kind {
	switch {
	case errors.Is(err, userstore.ErrInvalidID),
		errors.Is(err, refdate.ErrInvalidDate):
		return Invalid
	case errors.Is(err, userstore.ErrNotFound),
		errors.Is(err, overallstatstore.ErrNotFound):
		return NotFound
	default:
		return Internal
	}
}

// Logger records internal errors. *errorsfeature.ErrorLogger satisfies it.
type Logger interface {
	Log(r *http.Request, msg string, err error)
}

// Responder writes error responses.
type Responder struct {
	Legacy bool
	Log    Logger
}

// Write classifies err and writes the response. op describes the failed
// operation in logs.
func (rs Responder) Write(w http.ResponseWriter, r *http.Request, err error, op string) {
	kind := KindOf(err)
	if kind == Internal && rs.Log != nil {
		rs.Log.Log(r, op, err)
	}

	if rs.Legacy {
		jsonutil.NotFound(w, err.Error())
		return
	}

	msg := err.Error()
	if kind == Internal {
		msg = InternalMessage
	}
	jsonutil.Error(w, kind.Status(), msg)
}
