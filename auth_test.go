package oncrpc

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/marmos91/oncrpc/xdr"
)

// The captured credential body wrapped in its flavor discriminator and
// 84-byte length prefix, as it appears inside a call header.
const authUnixFlavorHex = "00000001" + "00000054" + authUnixBodyHex

func decodeFlavor(t *testing.T, buf []byte) (AuthFlavor, error) {
	t.Helper()
	return decodeAuthFlavor(xdr.NewReader(buf))
}

func encodeFlavor(t *testing.T, a AuthFlavor) []byte {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, a.Encode(&buf))
	require.Equal(t, int(a.EncodedLen()), buf.Len())
	return buf.Bytes()
}

func TestAuthFlavor(t *testing.T) {
	t.Run("RoundTripsAuthNone", func(t *testing.T) {
		wire := hexBytes(t, "0000000000000000")

		flavor, err := decodeFlavor(t, wire)
		require.NoError(t, err)
		assert.Equal(t, uint32(AuthFlavorNone), flavor.ID())
		assert.Nil(t, flavor.Body())
		assert.Nil(t, flavor.UnixParams())
		assert.Equal(t, uint32(0), flavor.AssociatedDataLen())

		assert.Equal(t, wire, encodeFlavor(t, flavor))
	})

	t.Run("NormalisesEmptyAuthNoneBody", func(t *testing.T) {
		// A present-but-empty payload and an absent payload share a wire
		// form, so the constructor collapses the former into the latter.
		assert.Nil(t, NewAuthNone([]byte{}).Body())
		assert.Equal(t, encodeFlavor(t, NewAuthNone(nil)), encodeFlavor(t, NewAuthNone([]byte{})))
	})

	t.Run("RoundTripsAuthNoneWithPayload", func(t *testing.T) {
		flavor := NewAuthNone([]byte{0xde, 0xad, 0xbe, 0xef})

		decoded, err := decodeFlavor(t, encodeFlavor(t, flavor))
		require.NoError(t, err)
		assert.Equal(t, []byte{0xde, 0xad, 0xbe, 0xef}, decoded.Body())
	})

	t.Run("DecodesCapturedAuthUnix", func(t *testing.T) {
		wire := hexBytes(t, authUnixFlavorHex)
		require.Len(t, wire, 92)

		flavor, err := decodeFlavor(t, wire)
		require.NoError(t, err)
		assert.Equal(t, uint32(AuthFlavorUnix), flavor.ID())
		assert.Equal(t, uint32(84), flavor.AssociatedDataLen())
		assert.Nil(t, flavor.Body())

		params := flavor.UnixParams()
		require.NotNil(t, params)
		assert.Equal(t, uint32(501), params.UID())
		assert.Equal(t, capturedGIDs, params.GIDs())

		assert.Equal(t, wire, encodeFlavor(t, flavor))
	})

	t.Run("DecodesUnalignedMachineName", func(t *testing.T) {
		// The declared 36-byte body length covers the machine name's fill
		// bytes: stamp + (4 + 9 + 3) + uid + gid + count + one gid.
		wire := hexBytes(t, "00000001"+"00000024"+
			"00000001"+"00000009"+"7365727665726f6e65"+"000000"+
			"000003e8"+"000003e8"+"00000001"+"00000014")
		require.Len(t, wire, 44)

		flavor, err := decodeFlavor(t, wire)
		require.NoError(t, err)

		params := flavor.UnixParams()
		require.NotNil(t, params)
		assert.Equal(t, []byte("serverone"), params.MachineName())
		assert.Equal(t, uint32(1000), params.UID())
		assert.Equal(t, []uint32{20}, params.GIDs())

		assert.Equal(t, wire, encodeFlavor(t, flavor))
	})

	t.Run("RejectsAuthUnixLengthOverCap", func(t *testing.T) {
		// Declared body length 201 exceeds MaxAuthDataLen.
		_, err := decodeFlavor(t, hexBytes(t, "00000001"+"000000c9"))
		require.ErrorIs(t, err, ErrInvalidLength)
	})

	t.Run("RejectsAuthUnixTrailingData", func(t *testing.T) {
		// Valid credential body, but the flavor claims four extra bytes
		// the structure never accounts for.
		wire := hexBytes(t, "00000001"+"00000058"+authUnixBodyHex+"00000000")

		_, err := decodeFlavor(t, wire)
		require.ErrorIs(t, err, ErrInvalidAuthData)
	})

	t.Run("RoundTripsAuthShort", func(t *testing.T) {
		flavor := NewAuthShort([]byte{0x01, 0x02, 0x03, 0x04, 0x05})

		decoded, err := decodeFlavor(t, encodeFlavor(t, flavor))
		require.NoError(t, err)
		assert.Equal(t, uint32(AuthFlavorShort), decoded.ID())
		assert.Equal(t, []byte{0x01, 0x02, 0x03, 0x04, 0x05}, decoded.Body())
	})

	t.Run("PreservesUnknownFlavors", func(t *testing.T) {
		// AUTH_DH and anything newer decode as opaque pass-through.
		flavor := NewAuthUnknown(3, []byte{0xca, 0xfe})

		decoded, err := decodeFlavor(t, encodeFlavor(t, flavor))
		require.NoError(t, err)
		assert.Equal(t, uint32(3), decoded.ID())
		assert.Equal(t, []byte{0xca, 0xfe}, decoded.Body())
		assert.Equal(t, flavor.EncodedLen(), decoded.EncodedLen())
	})

	t.Run("RejectsOversizedBodyOnEncode", func(t *testing.T) {
		var buf bytes.Buffer
		err := NewAuthShort(make([]byte, MaxAuthDataLen+1)).Encode(&buf)
		require.ErrorIs(t, err, ErrInvalidLength)
		assert.Zero(t, buf.Len())
	})

	t.Run("RejectsTruncatedDiscriminator", func(t *testing.T) {
		_, err := decodeFlavor(t, []byte{0x00, 0x00})
		require.ErrorIs(t, err, ErrInvalidLength)
	})
}
