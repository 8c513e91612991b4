package status

import "fmt"

// Option configures a Status during construction.
type Option func(*Status)

// WithDetail appends a secondary message to the status message, separated
// by ": ". An empty detail is ignored. The detail is folded into the
// message at construction time and is not separately addressable
// afterwards.
//
// Example:
//
//	st := status.NotFound("key", status.WithDetail("missing"))
//	// st.Message() == "key: missing"
func WithDetail(detail string) Option {
	return func(s *Status) {
		if detail != "" {
			s.msg += ": " + detail
		}
	}
}

// WithPosixCode attaches a POSIX error code (errno) to the status.
//
// Example:
//
//	st := status.IOError("disk full", status.WithPosixCode(28))
func WithPosixCode(code int16) Option {
	return func(s *Status) {
		s.posix = code
	}
}

// OK returns a success status. The zero value of Status is equivalent.
func OK() Status {
	return Status{}
}

func newStatus(code Code, msg string, opts []Option) Status {
	s := Status{code: code, posix: NoPosixCode, msg: msg}
	for _, opt := range opts {
		opt(&s)
	}
	return s
}

// Construction never fails: the factories below always return a usable
// Status, and message length is bounded only by the platform's string
// length limit. One factory exists per error code so that call sites name
// the failure they report and cannot mismatch code and message.

// NotFound returns a CodeNotFound status with the given message.
func NotFound(msg string, opts ...Option) Status {
	return newStatus(CodeNotFound, msg, opts)
}

// Corruption returns a CodeCorruption status with the given message.
func Corruption(msg string, opts ...Option) Status {
	return newStatus(CodeCorruption, msg, opts)
}

// NotSupported returns a CodeNotSupported status with the given message.
func NotSupported(msg string, opts ...Option) Status {
	return newStatus(CodeNotSupported, msg, opts)
}

// InvalidArgument returns a CodeInvalidArgument status with the given message.
func InvalidArgument(msg string, opts ...Option) Status {
	return newStatus(CodeInvalidArgument, msg, opts)
}

// IOError returns a CodeIOError status with the given message.
func IOError(msg string, opts ...Option) Status {
	return newStatus(CodeIOError, msg, opts)
}

// AlreadyPresent returns a CodeAlreadyPresent status with the given message.
func AlreadyPresent(msg string, opts ...Option) Status {
	return newStatus(CodeAlreadyPresent, msg, opts)
}

// RuntimeError returns a CodeRuntimeError status with the given message.
func RuntimeError(msg string, opts ...Option) Status {
	return newStatus(CodeRuntimeError, msg, opts)
}

// NetworkError returns a CodeNetworkError status with the given message.
func NetworkError(msg string, opts ...Option) Status {
	return newStatus(CodeNetworkError, msg, opts)
}

// IllegalState returns a CodeIllegalState status with the given message.
func IllegalState(msg string, opts ...Option) Status {
	return newStatus(CodeIllegalState, msg, opts)
}

// NotAuthorized returns a CodeNotAuthorized status with the given message.
func NotAuthorized(msg string, opts ...Option) Status {
	return newStatus(CodeNotAuthorized, msg, opts)
}

// Aborted returns a CodeAborted status with the given message.
func Aborted(msg string, opts ...Option) Status {
	return newStatus(CodeAborted, msg, opts)
}

// RemoteError returns a CodeRemoteError status with the given message.
func RemoteError(msg string, opts ...Option) Status {
	return newStatus(CodeRemoteError, msg, opts)
}

// ServiceUnavailable returns a CodeServiceUnavailable status with the given message.
func ServiceUnavailable(msg string, opts ...Option) Status {
	return newStatus(CodeServiceUnavailable, msg, opts)
}

// TimedOut returns a CodeTimedOut status with the given message.
func TimedOut(msg string, opts ...Option) Status {
	return newStatus(CodeTimedOut, msg, opts)
}

// Uninitialized returns a CodeUninitialized status with the given message.
func Uninitialized(msg string, opts ...Option) Status {
	return newStatus(CodeUninitialized, msg, opts)
}

// ConfigurationError returns a CodeConfigurationError status with the given message.
func ConfigurationError(msg string, opts ...Option) Status {
	return newStatus(CodeConfigurationError, msg, opts)
}

// Formatted variants. Each is equivalent to the plain factory with a
// fmt.Sprintf-built message.

// NotFoundf returns a CodeNotFound status with a formatted message.
func NotFoundf(format string, args ...interface{}) Status {
	return Status{code: CodeNotFound, posix: NoPosixCode, msg: fmt.Sprintf(format, args...)}
}

// Corruptionf returns a CodeCorruption status with a formatted message.
func Corruptionf(format string, args ...interface{}) Status {
	return Status{code: CodeCorruption, posix: NoPosixCode, msg: fmt.Sprintf(format, args...)}
}

// NotSupportedf returns a CodeNotSupported status with a formatted message.
func NotSupportedf(format string, args ...interface{}) Status {
	return Status{code: CodeNotSupported, posix: NoPosixCode, msg: fmt.Sprintf(format, args...)}
}

// InvalidArgumentf returns a CodeInvalidArgument status with a formatted message.
func InvalidArgumentf(format string, args ...interface{}) Status {
	return Status{code: CodeInvalidArgument, posix: NoPosixCode, msg: fmt.Sprintf(format, args...)}
}

// IOErrorf returns a CodeIOError status with a formatted message.
func IOErrorf(format string, args ...interface{}) Status {
	return Status{code: CodeIOError, posix: NoPosixCode, msg: fmt.Sprintf(format, args...)}
}

// AlreadyPresentf returns a CodeAlreadyPresent status with a formatted message.
func AlreadyPresentf(format string, args ...interface{}) Status {
	return Status{code: CodeAlreadyPresent, posix: NoPosixCode, msg: fmt.Sprintf(format, args...)}
}

// RuntimeErrorf returns a CodeRuntimeError status with a formatted message.
func RuntimeErrorf(format string, args ...interface{}) Status {
	return Status{code: CodeRuntimeError, posix: NoPosixCode, msg: fmt.Sprintf(format, args...)}
}

// NetworkErrorf returns a CodeNetworkError status with a formatted message.
func NetworkErrorf(format string, args ...interface{}) Status {
	return Status{code: CodeNetworkError, posix: NoPosixCode, msg: fmt.Sprintf(format, args...)}
}

// IllegalStatef returns a CodeIllegalState status with a formatted message.
func IllegalStatef(format string, args ...interface{}) Status {
	return Status{code: CodeIllegalState, posix: NoPosixCode, msg: fmt.Sprintf(format, args...)}
}

// NotAuthorizedf returns a CodeNotAuthorized status with a formatted message.
func NotAuthorizedf(format string, args ...interface{}) Status {
	return Status{code: CodeNotAuthorized, posix: NoPosixCode, msg: fmt.Sprintf(format, args...)}
}

// Abortedf returns a CodeAborted status with a formatted message.
func Abortedf(format string, args ...interface{}) Status {
	return Status{code: CodeAborted, posix: NoPosixCode, msg: fmt.Sprintf(format, args...)}
}

// RemoteErrorf returns a CodeRemoteError status with a formatted message.
func RemoteErrorf(format string, args ...interface{}) Status {
	return Status{code: CodeRemoteError, posix: NoPosixCode, msg: fmt.Sprintf(format, args...)}
}

// ServiceUnavailablef returns a CodeServiceUnavailable status with a formatted message.
func ServiceUnavailablef(format string, args ...interface{}) Status {
	return Status{code: CodeServiceUnavailable, posix: NoPosixCode, msg: fmt.Sprintf(format, args...)}
}

// TimedOutf returns a CodeTimedOut status with a formatted message.
func TimedOutf(format string, args ...interface{}) Status {
	return Status{code: CodeTimedOut, posix: NoPosixCode, msg: fmt.Sprintf(format, args...)}
}

// Uninitializedf returns a CodeUninitialized status with a formatted message.
func Uninitializedf(format string, args ...interface{}) Status {
	return Status{code: CodeUninitialized, posix: NoPosixCode, msg: fmt.Sprintf(format, args...)}
}

// ConfigurationErrorf returns a CodeConfigurationError status with a formatted message.
func ConfigurationErrorf(format string, args ...interface{}) Status {
	return Status{code: CodeConfigurationError, posix: NoPosixCode, msg: fmt.Sprintf(format, args...)}
}
