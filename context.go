package status

// CloneAndPrepend returns a new status with the same code and POSIX code
// whose message is msg, ": ", and the receiver's message. The receiver is
// not modified. Use it to add caller context to a failure being passed
// upward:
//
//	st := store.Get(key)
//	if !st.IsOK() {
//	    return st.CloneAndPrepend("loading snapshot")
//	}
//
// Calling CloneAndPrepend on an OK status is a programming error and
// panics: there is no failure to add context to.
func (s Status) CloneAndPrepend(msg string) Status {
	if s.code == CodeOK {
		panic("status: CloneAndPrepend on OK status")
	}
	return Status{code: s.code, posix: s.posix, msg: msg + ": " + s.msg}
}
