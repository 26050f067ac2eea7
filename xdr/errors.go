package xdr

import "errors"

var (
	// ErrInvalidLength is returned when a length prefix exceeds the maximum
	// allowed for the field being decoded, or when the declared length (plus
	// its padding) would run past the end of the buffer.
	ErrInvalidLength = errors.New("invalid length in rpc message")

	// ErrInvalidPadding is returned when the fill bytes that align an opaque
	// field to a 4-byte boundary are not zero.
	//
	// RFC 1014 Section 4 requires zero fill so that the same data always
	// encodes to the same bytes on every machine.
	ErrInvalidPadding = errors.New("invalid padding data in rpc message")
)
