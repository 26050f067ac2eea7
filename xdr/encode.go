package xdr

import (
	"encoding/binary"
	"io"
)

// ============================================================================
// XDR Encoding - Go Types → Wire Format
// ============================================================================

// Pad returns the number of zero fill bytes needed to align length to a
// 4-byte boundary.
//
// Formula: (4 - (length % 4)) % 4
//
// Examples:
//   - length=1: padding=3
//   - length=4: padding=0
//   - length=5: padding=3
func Pad(length uint32) uint32 {
	return (4 - (length % 4)) % 4
}

// OpaqueLen returns the on-wire size of a variable-length opaque holding
// length payload bytes, inclusive of the length prefix and fill bytes.
func OpaqueLen(length uint32) uint32 {
	return 4 + length + Pad(length)
}

// WriteUint32 encodes a big-endian 4-byte unsigned integer into w.
func WriteUint32(w io.Writer, v uint32) error {
	var b [4]byte
	binary.BigEndian.PutUint32(b[:], v)
	_, err := w.Write(b[:])
	return err
}

// WriteOpaque encodes data as XDR variable-length opaque data: a uint32
// length prefix, the payload, then zero fill bytes up to the next 4-byte
// boundary.
func WriteOpaque(w io.Writer, data []byte) error {
	if err := WriteUint32(w, uint32(len(data))); err != nil {
		return err
	}
	if _, err := w.Write(data); err != nil {
		return err
	}

	var fill [3]byte
	if pad := Pad(uint32(len(data))); pad > 0 {
		if _, err := w.Write(fill[:pad]); err != nil {
			return err
		}
	}
	return nil
}
