package status

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestOK(t *testing.T) {
	st := OK()

	require.True(t, st.IsOK())
	require.Equal(t, CodeOK, st.Code())
	require.Equal(t, "", st.Message())
	require.Equal(t, NoPosixCode, st.PosixCode())
}

func TestZeroValue_IsOK(t *testing.T) {
	var st Status

	require.True(t, st.IsOK())
	require.Equal(t, "", st.Message())
	require.Equal(t, NoPosixCode, st.PosixCode())
}

func TestFactories_Code(t *testing.T) {
	tests := []struct {
		name    string
		factory func(string, ...Option) Status
		want    Code
	}{
		{"NotFound", NotFound, CodeNotFound},
		{"Corruption", Corruption, CodeCorruption},
		{"NotSupported", NotSupported, CodeNotSupported},
		{"InvalidArgument", InvalidArgument, CodeInvalidArgument},
		{"IOError", IOError, CodeIOError},
		{"AlreadyPresent", AlreadyPresent, CodeAlreadyPresent},
		{"RuntimeError", RuntimeError, CodeRuntimeError},
		{"NetworkError", NetworkError, CodeNetworkError},
		{"IllegalState", IllegalState, CodeIllegalState},
		{"NotAuthorized", NotAuthorized, CodeNotAuthorized},
		{"Aborted", Aborted, CodeAborted},
		{"RemoteError", RemoteError, CodeRemoteError},
		{"ServiceUnavailable", ServiceUnavailable, CodeServiceUnavailable},
		{"TimedOut", TimedOut, CodeTimedOut},
		{"Uninitialized", Uninitialized, CodeUninitialized},
		{"ConfigurationError", ConfigurationError, CodeConfigurationError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			st := tt.factory("something went wrong")

			require.False(t, st.IsOK())
			require.Equal(t, tt.want, st.Code())
			require.Equal(t, "something went wrong", st.Message())
			require.Equal(t, NoPosixCode, st.PosixCode())
		})
	}
}

func TestFactories_WithDetail(t *testing.T) {
	st := NotFound("key", WithDetail("missing"))

	require.Equal(t, "key: missing", st.Message())
}

func TestFactories_WithDetail_Empty(t *testing.T) {
	st := NotFound("key", WithDetail(""))

	require.Equal(t, "key", st.Message())
}

func TestFactories_WithPosixCode(t *testing.T) {
	st := IOError("disk full", WithPosixCode(28))

	require.Equal(t, int16(28), st.PosixCode())
}

func TestFactories_CombinedOptions(t *testing.T) {
	st := IOError("open /data", WithDetail("read-only filesystem"), WithPosixCode(30))

	require.Equal(t, "open /data: read-only filesystem", st.Message())
	require.Equal(t, int16(30), st.PosixCode())
}

func TestFactories_Formatted(t *testing.T) {
	tests := []struct {
		name    string
		factory func(string, ...interface{}) Status
		want    Code
	}{
		{"NotFoundf", NotFoundf, CodeNotFound},
		{"Corruptionf", Corruptionf, CodeCorruption},
		{"NotSupportedf", NotSupportedf, CodeNotSupported},
		{"InvalidArgumentf", InvalidArgumentf, CodeInvalidArgument},
		{"IOErrorf", IOErrorf, CodeIOError},
		{"AlreadyPresentf", AlreadyPresentf, CodeAlreadyPresent},
		{"RuntimeErrorf", RuntimeErrorf, CodeRuntimeError},
		{"NetworkErrorf", NetworkErrorf, CodeNetworkError},
		{"IllegalStatef", IllegalStatef, CodeIllegalState},
		{"NotAuthorizedf", NotAuthorizedf, CodeNotAuthorized},
		{"Abortedf", Abortedf, CodeAborted},
		{"RemoteErrorf", RemoteErrorf, CodeRemoteError},
		{"ServiceUnavailablef", ServiceUnavailablef, CodeServiceUnavailable},
		{"TimedOutf", TimedOutf, CodeTimedOut},
		{"Uninitializedf", Uninitializedf, CodeUninitialized},
		{"ConfigurationErrorf", ConfigurationErrorf, CodeConfigurationError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			st := tt.factory("block %d of %d", 3, 7)

			require.Equal(t, tt.want, st.Code())
			require.Equal(t, "block 3 of 7", st.Message())
		})
	}
}
