package status

import (
	"strconv"
	"strings"
)

// String returns the canonical human-readable rendering of the status,
// used for logs and diagnostics.
//
// Success renders as "OK". Failures render as the code label, ": ", and
// the message, with " (error N)" appended when a POSIX code is attached:
//
//	OK
//	Not found: key: missing
//	IO error: disk full (error 28)
func (s Status) String() string {
	if s.code == CodeOK {
		return codeNames[CodeOK]
	}

	var b strings.Builder
	name := s.code.String()
	b.Grow(len(name) + 2 + len(s.msg) + 10)
	b.WriteString(name)
	b.WriteString(": ")
	b.WriteString(s.msg)
	if s.posix != NoPosixCode {
		b.WriteString(" (error ")
		b.WriteString(strconv.Itoa(int(s.posix)))
		b.WriteByte(')')
	}
	return b.String()
}
