package xdr

import "encoding/binary"

// ============================================================================
// XDR Decoding - Wire Format → Go Types
// ============================================================================

// Reader decodes XDR primitives from an in-memory buffer.
//
// Decoding is zero-copy: every byte slice handed out by a Reader aliases the
// buffer it was constructed over, so decoded values remain valid only as long
// as that buffer does. A Reader never reads past the end of its buffer; any
// read that would do so fails with ErrInvalidLength instead.
type Reader struct {
	buf []byte
	pos int
}

// NewReader returns a Reader positioned at the start of buf.
func NewReader(buf []byte) *Reader {
	return &Reader{buf: buf}
}

// Uint32 decodes a big-endian 4-byte unsigned integer.
//
// Per RFC 1014 Section 3.1, all fixed-size XDR integers are 4 bytes wide and
// transmitted most-significant byte first.
func (r *Reader) Uint32() (uint32, error) {
	if r.Remaining() < 4 {
		return 0, ErrInvalidLength
	}
	v := binary.BigEndian.Uint32(r.buf[r.pos:])
	r.pos += 4
	return v, nil
}

// Bytes returns the next n bytes as a subslice of the underlying buffer,
// advancing the read position past them.
func (r *Reader) Bytes(n uint32) ([]byte, error) {
	if uint64(n) > uint64(r.Remaining()) {
		return nil, ErrInvalidLength
	}
	data := r.buf[r.pos : r.pos+int(n)]
	r.pos += int(n)
	return data, nil
}

// Opaque decodes XDR variable-length opaque data.
//
// Per RFC 1014 Section 3.9 (Variable-Length Opaque Data):
// Format: [length:uint32][data:length bytes][padding:0-3 zero bytes]
// Padding aligns the next item to a 4-byte boundary.
//
// Parameters:
//   - maxLen: Upper bound on the payload length. A length prefix above this
//     fails with ErrInvalidLength before any further bytes are touched,
//     which keeps adversarial prefixes from driving large reads.
//
// Returns:
//   - []byte: The payload, aliasing the underlying buffer (no copy).
//   - error: ErrInvalidLength if the prefix exceeds maxLen or overruns the
//     buffer, ErrInvalidPadding if any fill byte is non-zero.
func (r *Reader) Opaque(maxLen uint32) ([]byte, error) {
	length, err := r.Uint32()
	if err != nil {
		return nil, err
	}
	if length > maxLen {
		return nil, ErrInvalidLength
	}

	pad := Pad(length)
	if uint64(length)+uint64(pad) > uint64(r.Remaining()) {
		return nil, ErrInvalidLength
	}

	data := r.buf[r.pos : r.pos+int(length)]
	r.pos += int(length)

	// Fill bytes must be zero so that encoding is canonical.
	for i := uint32(0); i < pad; i++ {
		if r.buf[r.pos] != 0 {
			return nil, ErrInvalidPadding
		}
		r.pos++
	}

	return data, nil
}

// Rest consumes and returns every byte left in the buffer.
//
// This is the decoding primitive behind "payload runs to the end of the
// enclosing buffer" fields. It is only safe where an outer framing layer has
// already validated the buffer's total length.
func (r *Reader) Rest() []byte {
	data := r.buf[r.pos:]
	r.pos = len(r.buf)
	return data
}

// Remaining reports the number of bytes left to decode.
func (r *Reader) Remaining() int {
	return len(r.buf) - r.pos
}

// Consumed reports the number of bytes decoded so far.
func (r *Reader) Consumed() int {
	return r.pos
}
