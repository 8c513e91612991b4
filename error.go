package status

import (
	"context"
	"errors"
	"io/fs"
	"syscall"
)

// statusError adapts a failing Status to the error interface. It is
// private to keep the error surface minimal; FromError recovers the
// Status via errors.As.
type statusError struct {
	st Status
}

// Error returns the canonical rendering of the underlying status.
func (e *statusError) Error() string {
	return e.st.String()
}

// Err returns the status as a Go error, or nil if the status is OK.
// The returned error's message is the canonical String rendering, and the
// original Status is recoverable with FromError.
//
// Use Err at boundaries where callers expect error-shaped APIs:
//
//	func (s *Server) Start() error {
//	    return s.bind().Err()
//	}
func (s Status) Err() error {
	if s.code == CodeOK {
		return nil
	}
	return &statusError{st: s}
}

// FromError converts a Go error to a Status.
//
// A nil error converts to OK. An error produced by Status.Err, anywhere in
// the chain, yields the original Status. Otherwise the error is classified
// by inspecting the chain: fs.ErrNotExist, fs.ErrExist, and
// fs.ErrPermission map to NotFound, AlreadyPresent, and NotAuthorized;
// context.DeadlineExceeded maps to TimedOut and context.Canceled to
// Aborted; any syscall.Errno found in the chain is preserved as the POSIX
// code. Errors that match nothing become RuntimeError.
func FromError(err error) Status {
	if err == nil {
		return OK()
	}

	var se *statusError
	if errors.As(err, &se) {
		return se.st
	}

	posix := NoPosixCode
	var errno syscall.Errno
	if errors.As(err, &errno) {
		posix = int16(errno)
	}

	switch {
	case errors.Is(err, fs.ErrNotExist):
		return NotFound(err.Error(), WithPosixCode(posix))
	case errors.Is(err, fs.ErrExist):
		return AlreadyPresent(err.Error(), WithPosixCode(posix))
	case errors.Is(err, fs.ErrPermission):
		return NotAuthorized(err.Error(), WithPosixCode(posix))
	case errors.Is(err, context.DeadlineExceeded):
		return TimedOut(err.Error())
	case errors.Is(err, context.Canceled):
		return Aborted(err.Error())
	}

	if posix != NoPosixCode {
		return IOError(err.Error(), WithPosixCode(posix))
	}
	return RuntimeError(err.Error())
}

// CodeOf returns the status code carried by an error. A nil error yields
// CodeOK; errors that carry no Status are classified as FromError does.
func CodeOf(err error) Code {
	return FromError(err).Code()
}
