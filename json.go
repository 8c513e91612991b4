package status

import "encoding/json"

// statusJSON is the flat serialized form of a Status. Only the code label,
// message, and POSIX code are exposed; there is no internal state worth
// hiding beyond these.
type statusJSON struct {
	Code      string `json:"code"`
	Message   string `json:"message,omitempty"`
	PosixCode *int16 `json:"posix_code,omitempty"`
}

// MarshalJSON implements json.Marshaler. OK marshals as {"code":"OK"};
// failures include the message and, when attached, the POSIX code:
//
//	{"code":"IO error","message":"disk full","posix_code":28}
func (s Status) MarshalJSON() ([]byte, error) {
	out := statusJSON{Code: s.code.String(), Message: s.msg}
	if s.code != CodeOK && s.posix != NoPosixCode {
		posix := s.posix
		out.PosixCode = &posix
	}
	return json.Marshal(out)
}
