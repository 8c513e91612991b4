package status

// NoPosixCode is the sentinel returned by PosixCode when no POSIX error
// code is attached, and the value factories store when none is given.
const NoPosixCode int16 = -1

// Status is the result of an operation: success, or one of a fixed set of
// error codes with a human-readable message and an optional POSIX error
// code.
//
// A Status is an immutable value. The zero value is OK, and OK statuses
// allocate nothing; constructing, copying, and discarding them is free.
// Failing statuses own their message and never change after construction —
// derivation operations such as CloneAndPrepend return a new Status and
// leave the receiver untouched. Because every field is immutable, copies
// made by assignment are observably independent of the original.
//
// Any number of goroutines may call accessors on the same Status variable
// concurrently. If any goroutine reassigns the variable, all access to it
// must be externally synchronized; Status provides no locking of its own.
//
// Status intentionally defines no structural equality contract. Compare
// via Code and Message when equivalence matters.
type Status struct {
	code  Code
	posix int16
	msg   string
}

// IsOK reports whether the status represents success.
func (s Status) IsOK() bool {
	return s.code == CodeOK
}

// Code returns the code identifying the outcome.
func (s Status) Code() Code {
	return s.code
}

// CodeName returns the fixed human-readable label for the status code,
// without the message or POSIX code. Equivalent to s.Code().String().
func (s Status) CodeName() string {
	return s.code.String()
}

// Message returns the message portion of the status. This is the text
// passed to the factory, with any detail already folded in; it does not
// include the code label or POSIX code.
//
// For OK statuses the message is empty.
func (s Status) Message() string {
	return s.msg
}

// PosixCode returns the POSIX error code attached to the status, or
// NoPosixCode if there is none. OK statuses never carry a code.
func (s Status) PosixCode() int16 {
	if s.code == CodeOK {
		return NoPosixCode
	}
	return s.posix
}
