package oncrpc

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/marmos91/oncrpc/xdr"
)

func encodeReplyBody(t *testing.T, rb *ReplyBody) []byte {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, rb.Encode(&buf))
	require.Equal(t, int(rb.EncodedLen()), buf.Len())
	return buf.Bytes()
}

func TestAcceptedStatus(t *testing.T) {
	t.Run("SuccessCarriesTrailingResults", func(t *testing.T) {
		// reply_stat accepted, AUTH_NONE verifier, SUCCESS, then results
		// running to the end of the buffer.
		wire := hexBytes(t, "00000000"+"0000000000000000"+"00000000"+"0102030405060708")

		body, err := decodeReplyBody(xdr.NewReader(wire))
		require.NoError(t, err)

		accepted := body.Accepted()
		require.NotNil(t, accepted)
		assert.Nil(t, body.Denied())

		status := accepted.Status()
		assert.Equal(t, AcceptSuccess, status.Status())
		assert.Equal(t, hexBytes(t, "0102030405060708"), status.Results())
		assert.Equal(t, "SUCCESS", status.String())

		assert.Equal(t, wire, encodeReplyBody(t, body))
	})

	t.Run("ProgMismatchCarriesVersionBounds", func(t *testing.T) {
		status := NewProgramMismatch(2, 4)
		assert.Equal(t, uint32(12), status.EncodedLen())
		assert.Equal(t, "PROG_MISMATCH", status.String())

		wire := encodeReplyBody(t, NewAcceptedReplyBody(NewAcceptedReply(NewAuthNone(nil), status)))

		body, err := decodeReplyBody(xdr.NewReader(wire))
		require.NoError(t, err)

		low, high, ok := body.Accepted().Status().MismatchRange()
		require.True(t, ok)
		assert.Equal(t, uint32(2), low)
		assert.Equal(t, uint32(4), high)
	})

	t.Run("MismatchRangeIsAbsentElsewhere", func(t *testing.T) {
		_, _, ok := NewAcceptedSuccess(nil).MismatchRange()
		assert.False(t, ok)
	})

	t.Run("RoundTripsBodilessVariants", func(t *testing.T) {
		for _, status := range []AcceptedStatus{
			NewProgramUnavailable(),
			NewProcedureUnavailable(),
			NewGarbageArgs(),
			NewSystemError(),
		} {
			t.Run(status.String(), func(t *testing.T) {
				wire := encodeReplyBody(t, NewAcceptedReplyBody(NewAcceptedReply(NewAuthNone(nil), status)))

				body, err := decodeReplyBody(xdr.NewReader(wire))
				require.NoError(t, err)
				assert.Equal(t, status.Status(), body.Accepted().Status().Status())
				assert.Nil(t, body.Accepted().Status().Results())
			})
		}
	})

	t.Run("RejectsUnknownAcceptStatus", func(t *testing.T) {
		wire := hexBytes(t, "00000000"+"0000000000000000"+"00000006")

		_, err := decodeReplyBody(xdr.NewReader(wire))
		var serr InvalidReplyStatusError
		require.ErrorAs(t, err, &serr)
		assert.Equal(t, InvalidReplyStatusError(6), serr)
	})
}

func TestRejectedReply(t *testing.T) {
	t.Run("RoundTripsVersionMismatch", func(t *testing.T) {
		rejected := NewRPCVersionMismatch(2, 2)
		assert.True(t, rejected.IsVersionMismatch())

		wire := encodeReplyBody(t, NewDeniedReplyBody(rejected))
		assert.Equal(t, hexBytes(t, "00000001"+"00000000"+"00000002"+"00000002"), wire)

		body, err := decodeReplyBody(xdr.NewReader(wire))
		require.NoError(t, err)
		require.Nil(t, body.Accepted())

		low, high, ok := body.Denied().VersionRange()
		require.True(t, ok)
		assert.Equal(t, uint32(2), low)
		assert.Equal(t, uint32(2), high)

		_, hasAuthErr := body.Denied().AuthError()
		assert.False(t, hasAuthErr)
	})

	t.Run("RoundTripsAuthError", func(t *testing.T) {
		wire := encodeReplyBody(t, NewDeniedReplyBody(NewRejectedAuthError(AuthBadVerifier)))
		assert.Equal(t, hexBytes(t, "00000001"+"00000001"+"00000003"), wire)

		body, err := decodeReplyBody(xdr.NewReader(wire))
		require.NoError(t, err)

		reason, ok := body.Denied().AuthError()
		require.True(t, ok)
		assert.Equal(t, AuthBadVerifier, reason)
		assert.False(t, body.Denied().IsVersionMismatch())

		_, _, hasRange := body.Denied().VersionRange()
		assert.False(t, hasRange)
	})

	t.Run("RejectsUnknownRejectStatus", func(t *testing.T) {
		wire := hexBytes(t, "00000001"+"00000002")

		_, err := decodeReplyBody(xdr.NewReader(wire))
		var rerr InvalidRejectedReplyTypeError
		require.ErrorAs(t, err, &rerr)
		assert.Equal(t, InvalidRejectedReplyTypeError(2), rerr)
	})

	t.Run("RejectsUnknownAuthErrorCode", func(t *testing.T) {
		wire := hexBytes(t, "00000001"+"00000001"+"00000008")

		_, err := decodeReplyBody(xdr.NewReader(wire))
		var aerr InvalidAuthStatusError
		require.ErrorAs(t, err, &aerr)
		assert.Equal(t, InvalidAuthStatusError(8), aerr)
	})
}

func TestAuthErrorNames(t *testing.T) {
	names := map[AuthError]string{
		AuthOK:                  "AUTH_OK",
		AuthBadCredentials:      "AUTH_BADCRED",
		AuthRejectedCredentials: "AUTH_REJECTEDCRED",
		AuthBadVerifier:         "AUTH_BADVERF",
		AuthRejectedVerifier:    "AUTH_REJECTEDVERF",
		AuthTooWeak:             "AUTH_TOOWEAK",
		AuthInvalidResponse:     "AUTH_INVALIDRESP",
		AuthFailed:              "AUTH_FAILED",
	}
	for code, want := range names {
		assert.Equal(t, want, code.String())
	}
}

func TestReplyBody(t *testing.T) {
	t.Run("RejectsUnknownReplyStat", func(t *testing.T) {
		_, err := decodeReplyBody(xdr.NewReader(hexBytes(t, "00000002")))
		var rerr InvalidReplyTypeError
		require.ErrorAs(t, err, &rerr)
		assert.Equal(t, InvalidReplyTypeError(2), rerr)
	})

	t.Run("RejectsTruncatedDiscriminator", func(t *testing.T) {
		_, err := decodeReplyBody(xdr.NewReader([]byte{0x00}))
		require.ErrorIs(t, err, ErrInvalidLength)
	})
}
