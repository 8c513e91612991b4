package status

// Per-code predicates. For any Status exactly one of IsOK and the Is*
// predicates below returns true.

// IsNotFound reports whether the status has code CodeNotFound.
func (s Status) IsNotFound() bool { return s.code == CodeNotFound }

// IsCorruption reports whether the status has code CodeCorruption.
func (s Status) IsCorruption() bool { return s.code == CodeCorruption }

// IsNotSupported reports whether the status has code CodeNotSupported.
func (s Status) IsNotSupported() bool { return s.code == CodeNotSupported }

// IsInvalidArgument reports whether the status has code CodeInvalidArgument.
func (s Status) IsInvalidArgument() bool { return s.code == CodeInvalidArgument }

// IsIOError reports whether the status has code CodeIOError.
func (s Status) IsIOError() bool { return s.code == CodeIOError }

// IsAlreadyPresent reports whether the status has code CodeAlreadyPresent.
func (s Status) IsAlreadyPresent() bool { return s.code == CodeAlreadyPresent }

// IsRuntimeError reports whether the status has code CodeRuntimeError.
func (s Status) IsRuntimeError() bool { return s.code == CodeRuntimeError }

// IsNetworkError reports whether the status has code CodeNetworkError.
func (s Status) IsNetworkError() bool { return s.code == CodeNetworkError }

// IsIllegalState reports whether the status has code CodeIllegalState.
func (s Status) IsIllegalState() bool { return s.code == CodeIllegalState }

// IsNotAuthorized reports whether the status has code CodeNotAuthorized.
func (s Status) IsNotAuthorized() bool { return s.code == CodeNotAuthorized }

// IsAborted reports whether the status has code CodeAborted.
func (s Status) IsAborted() bool { return s.code == CodeAborted }

// IsRemoteError reports whether the status has code CodeRemoteError.
func (s Status) IsRemoteError() bool { return s.code == CodeRemoteError }

// IsServiceUnavailable reports whether the status has code CodeServiceUnavailable.
func (s Status) IsServiceUnavailable() bool { return s.code == CodeServiceUnavailable }

// IsTimedOut reports whether the status has code CodeTimedOut.
func (s Status) IsTimedOut() bool { return s.code == CodeTimedOut }

// IsUninitialized reports whether the status has code CodeUninitialized.
func (s Status) IsUninitialized() bool { return s.code == CodeUninitialized }

// IsConfigurationError reports whether the status has code CodeConfigurationError.
func (s Status) IsConfigurationError() bool { return s.code == CodeConfigurationError }
