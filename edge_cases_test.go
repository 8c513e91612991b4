package status_test

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/jmgilman/go/status"
	"github.com/stretchr/testify/require"
)

func TestEdgeCase_EmptyMessage(t *testing.T) {
	st := status.RuntimeError("")

	require.Equal(t, "", st.Message())
	require.Equal(t, "Runtime error: ", st.String())
	require.False(t, st.IsOK())
}

func TestEdgeCase_DetailOnEmptyMessage(t *testing.T) {
	st := status.RuntimeError("", status.WithDetail("detail"))

	require.Equal(t, ": detail", st.Message())
}

func TestEdgeCase_PrependEmptyContext(t *testing.T) {
	st := status.InvalidArgument("bad value").CloneAndPrepend("")

	require.Equal(t, ": bad value", st.Message())
	require.Equal(t, "Invalid argument: : bad value", st.String())
}

func TestEdgeCase_UnicodeMessages(t *testing.T) {
	messages := []string{
		"错误信息",
		"エラーメッセージ",
		"сообщение об ошибке",
		"mensaje de error",
		"🚨 error occurred 🔥",
	}

	for _, msg := range messages {
		st := status.Corruption(msg)
		require.Equal(t, msg, st.Message())
		require.Contains(t, st.String(), msg)
	}
}

func TestEdgeCase_SpecialCharactersJSON(t *testing.T) {
	specialChars := `"quotes" 'apostrophes' \backslash newline\n tab\t`
	st := status.RemoteError(specialChars)

	data, err := json.Marshal(st)
	require.NoError(t, err)

	var decoded struct {
		Message string `json:"message"`
	}
	require.NoError(t, json.Unmarshal(data, &decoded))
	require.Equal(t, specialChars, decoded.Message)
}

func TestEdgeCase_VeryLongMessage(t *testing.T) {
	// Message length is bounded only by string length; no truncation path.
	longMessage := strings.Repeat("a", 1<<20)
	st := status.NetworkError(longMessage)

	require.Equal(t, longMessage, st.Message())
	require.Len(t, st.String(), len("Network error: ")+len(longMessage))
}

func TestEdgeCase_ExplicitNoPosixCode(t *testing.T) {
	st := status.IOError("disk full", status.WithPosixCode(status.NoPosixCode))

	require.Equal(t, status.NoPosixCode, st.PosixCode())
	require.Equal(t, "IO error: disk full", st.String())
}

func TestEdgeCase_PosixCodeZero(t *testing.T) {
	// Zero is a real errno value, distinct from the absent sentinel.
	st := status.IOError("success reported as failure", status.WithPosixCode(0))

	require.Equal(t, int16(0), st.PosixCode())
	require.Equal(t, "IO error: success reported as failure (error 0)", st.String())
}

func TestEdgeCase_OptionsIgnoredByOK(t *testing.T) {
	// PosixCode is meaningless for OK regardless of how the value was made.
	var st status.Status
	require.Equal(t, status.NoPosixCode, st.PosixCode())
}
