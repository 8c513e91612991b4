package status

import "strconv"

// Code identifies the outcome a Status represents.
// Ordinals are fixed and form the compatibility surface for any external
// serialization of the enumeration; new codes must only be appended.
type Code uint8

const (
	// CodeOK is the distinguished success code. It never carries a message.
	CodeOK Code = iota

	// CodeNotFound indicates a requested entity does not exist.
	CodeNotFound

	// CodeCorruption indicates stored data failed an integrity check.
	CodeCorruption

	// CodeNotSupported indicates the operation is not implemented or not
	// available in this configuration.
	CodeNotSupported

	// CodeInvalidArgument indicates a caller-supplied argument is invalid.
	CodeInvalidArgument

	// CodeIOError indicates a local I/O operation failed. Statuses with
	// this code typically carry a POSIX error code.
	CodeIOError

	// CodeAlreadyPresent indicates an entity already exists and cannot be
	// created again.
	CodeAlreadyPresent

	// CodeRuntimeError indicates a general runtime failure that fits no
	// more specific code.
	CodeRuntimeError

	// CodeNetworkError indicates a network operation failed.
	CodeNetworkError

	// CodeIllegalState indicates the operation is not valid in the current
	// state.
	CodeIllegalState

	// CodeNotAuthorized indicates the caller lacks permission for the
	// operation.
	CodeNotAuthorized

	// CodeAborted indicates the operation was aborted before completion.
	CodeAborted

	// CodeRemoteError indicates a remote peer reported a failure.
	CodeRemoteError

	// CodeServiceUnavailable indicates the service cannot handle the
	// operation right now.
	CodeServiceUnavailable

	// CodeTimedOut indicates the operation exceeded its time limit.
	CodeTimedOut

	// CodeUninitialized indicates a component was used before being
	// initialized.
	CodeUninitialized

	// CodeConfigurationError indicates invalid or missing configuration.
	CodeConfigurationError
)

// codeNames maps each code, by ordinal, to its fixed human-readable label.
// The labels are part of the rendered output contract and must not change.
var codeNames = [...]string{
	CodeOK:                 "OK",
	CodeNotFound:           "Not found",
	CodeCorruption:         "Corruption",
	CodeNotSupported:       "Not implemented",
	CodeInvalidArgument:    "Invalid argument",
	CodeIOError:            "IO error",
	CodeAlreadyPresent:     "Already present",
	CodeRuntimeError:       "Runtime error",
	CodeNetworkError:       "Network error",
	CodeIllegalState:       "Illegal state",
	CodeNotAuthorized:      "Not authorized",
	CodeAborted:            "Aborted",
	CodeRemoteError:        "Remote error",
	CodeServiceUnavailable: "Service unavailable",
	CodeTimedOut:           "Timed out",
	CodeUninitialized:      "Uninitialized",
	CodeConfigurationError: "Configuration error",
}

// errorCodes is the ordered set of error codes (CodeOK excluded).
// Unexported to avoid exposing mutable slice identity to callers.
var errorCodes = []Code{
	CodeNotFound,
	CodeCorruption,
	CodeNotSupported,
	CodeInvalidArgument,
	CodeIOError,
	CodeAlreadyPresent,
	CodeRuntimeError,
	CodeNetworkError,
	CodeIllegalState,
	CodeNotAuthorized,
	CodeAborted,
	CodeRemoteError,
	CodeServiceUnavailable,
	CodeTimedOut,
	CodeUninitialized,
	CodeConfigurationError,
}

// String returns the fixed human-readable label for the code,
// e.g. "Not found" for CodeNotFound. Unknown codes render as
// "Unknown code(N)".
func (c Code) String() string {
	if int(c) < len(codeNames) {
		return codeNames[c]
	}
	return "Unknown code(" + strconv.Itoa(int(c)) + ")"
}

// Valid reports whether c is a member of the enumeration.
func (c Code) Valid() bool {
	return int(c) < len(codeNames)
}

// Codes returns the error codes in ordinal order, CodeOK excluded.
// The returned slice is a fresh copy on every call.
func Codes() []Code {
	out := make([]Code, len(errorCodes))
	copy(out, errorCodes)
	return out
}
