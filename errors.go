package oncrpc

import (
	"errors"
	"fmt"

	"github.com/marmos91/oncrpc/xdr"
)

// Sentinel errors shared by every decoder in this package.
//
// All decode errors are fatal to the single message being processed: the
// input buffer is never modified, no partial message is returned, and retry
// policy belongs to the caller.
var (
	// ErrIncompleteHeader is returned when the buffer is too small to contain
	// the 4-byte RPC fragment header.
	ErrIncompleteHeader = errors.New("incomplete fragment header")

	// ErrFragmented is returned when parsing any message with the
	// "last fragment" bit unset in the header.
	//
	// This library doesn't support fragmented messages: reassembly across
	// records is a transport concern and is left to the caller.
	ErrFragmented = errors.New("rpc message is fragmented")

	// ErrInvalidAuthData is returned when an auth flavor's body is malformed,
	// typically because the bytes consumed decoding the nested structure do
	// not match the length the flavor declared. This blocks messages that
	// smuggle trailing data behind a self-consistent inner structure.
	ErrInvalidAuthData = errors.New("invalid rpc auth data")

	// ErrInvalidMachineName is returned when the AUTH_UNIX machine name is
	// requested as a string but does not contain valid UTF-8. The raw bytes
	// remain retrievable regardless.
	ErrInvalidMachineName = errors.New("invalid machine name")

	// ErrMessageTooLarge is returned when encoding a message whose body
	// length cannot be represented in the 31 bits of the fragment header.
	ErrMessageTooLarge = errors.New("message length exceeds maximum")

	// ErrInvalidLength is returned when a length prefix exceeds its maximum
	// or would overrun the buffer. It aliases the xdr package sentinel so a
	// single errors.Is check covers both layers.
	ErrInvalidLength = xdr.ErrInvalidLength

	// ErrInvalidPaddingData is returned when XDR fill bytes are non-zero.
	ErrInvalidPaddingData = xdr.ErrInvalidPadding
)

// IncompleteMessageError is returned when the buffer holds less data than the
// fragment header promises, more than one message, or a message whose
// recomputed length disagrees with the outer declaration.
type IncompleteMessageError struct {
	// BufferLen is the length of the buffer provided.
	BufferLen int

	// Expected is the total length expected for this message.
	Expected int
}

func (e *IncompleteMessageError) Error() string {
	return fmt.Sprintf("incomplete rpc message (got %d bytes, expected %d)", e.BufferLen, e.Expected)
}

// InvalidMessageTypeError is returned when the message type discriminator is
// neither call nor reply. This is a violation of RFC 5531.
type InvalidMessageTypeError uint32

func (e InvalidMessageTypeError) Error() string {
	return fmt.Sprintf("invalid rpc message type %d", uint32(e))
}

// InvalidReplyTypeError is returned when the reply body discriminator is
// neither accepted nor denied.
type InvalidReplyTypeError uint32

func (e InvalidReplyTypeError) Error() string {
	return fmt.Sprintf("invalid rpc reply type %d", uint32(e))
}

// InvalidReplyStatusError is returned when an accepted reply carries a status
// code outside the RFC 5531 accept_stat enumeration.
type InvalidReplyStatusError uint32

func (e InvalidReplyStatusError) Error() string {
	return fmt.Sprintf("invalid rpc reply status %d", uint32(e))
}

// InvalidRejectedReplyTypeError is returned when a denied reply carries a
// discriminator outside the RFC 5531 reject_stat enumeration.
type InvalidRejectedReplyTypeError uint32

func (e InvalidRejectedReplyTypeError) Error() string {
	return fmt.Sprintf("invalid rpc rejected reply type %d", uint32(e))
}

// InvalidAuthStatusError is returned when an auth rejection carries a code
// outside the RFC 5531 auth_stat enumeration.
type InvalidAuthStatusError uint32

func (e InvalidAuthStatusError) Error() string {
	return fmt.Sprintf("invalid rpc auth error status %d", uint32(e))
}

// InvalidRPCVersionError is returned when a call body's RPC protocol version
// field is not 2.
type InvalidRPCVersionError uint32

func (e InvalidRPCVersionError) Error() string {
	return fmt.Sprintf("invalid rpc version %d", uint32(e))
}
