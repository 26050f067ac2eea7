package oncrpc

import (
	"bytes"
	"encoding/binary"
	"io"

	"github.com/marmos91/oncrpc/xdr"
)

const (
	// headerLen is the size of the RPC record marking fragment header.
	headerLen = 4

	// lastFragmentBit is the high bit of the fragment header: set when the
	// fragment is the last (for this package, only) fragment of the record.
	lastFragmentBit uint32 = 1 << 31
)

// Message is a single ONC RPC message: the transaction ID correlating a call
// with its reply, plus either a call body or a reply body.
//
// A Message is an ephemeral value produced fresh per ParseMessage or
// constructor call. Decoded messages alias the buffer they were parsed from
// and are valid only as long as it is; independent messages may be decoded
// and encoded concurrently without coordination since the codec holds no
// shared state.
type Message struct {
	xid   uint32
	call  *CallBody
	reply *ReplyBody
}

// NewCallMessage constructs a call message with the given transaction ID.
func NewCallMessage(xid uint32, body *CallBody) *Message {
	return &Message{xid: xid, call: body}
}

// NewReplyMessage constructs a reply message with the given transaction ID.
func NewReplyMessage(xid uint32, body *ReplyBody) *Message {
	return &Message{xid: xid, reply: body}
}

// ExpectedMessageLen reads the fragment header at the start of buf and
// returns the total on-wire length of the RPC message, header included.
//
// buf must contain at least the 4-byte header; ErrIncompleteHeader is
// returned otherwise. A header with the "last fragment" bit unset fails with
// ErrFragmented: reassembly is unsupported, regardless of the rest of the
// content.
//
// Stream transports can call this on the first four bytes received to learn
// how many bytes to accumulate before handing a complete record to
// ParseMessage.
func ExpectedMessageLen(buf []byte) (uint32, error) {
	if len(buf) < headerLen {
		return 0, ErrIncompleteHeader
	}

	// RFC 5531 Section 11: the header encodes a boolean "last fragment"
	// flag in the highest-order bit and the fragment's byte length in the
	// 31 low-order bits.
	header := binary.BigEndian.Uint32(buf)

	if header&lastFragmentBit == 0 {
		return 0, ErrFragmented
	}

	// The header's own 4 bytes are not counted in the length value.
	return (header &^ lastFragmentBit) + headerLen, nil
}

// ParseMessage decodes exactly one RPC message from buf.
//
// buf must contain exactly one message: a buffer holding a truncated
// message, or one holding trailing bytes after the message, fails with
// IncompleteMessageError. Decoding is zero-copy; see the package
// documentation for the aliasing rules.
//
// The length declared by the fragment header is validated twice: against
// len(buf) before decoding, and against the recomputed EncodedLen of the
// decoded message afterwards. The second check catches nested length fields
// that are self-consistent but disagree with the outer declaration.
func ParseMessage(buf []byte) (*Message, error) {
	want, err := ExpectedMessageLen(buf)
	if err != nil {
		return nil, err
	}
	if uint64(len(buf)) != uint64(want) {
		return nil, &IncompleteMessageError{BufferLen: len(buf), Expected: int(want)}
	}

	r := xdr.NewReader(buf[headerLen:])

	xid, err := r.Uint32()
	if err != nil {
		return nil, err
	}
	mtype, err := r.Uint32()
	if err != nil {
		return nil, err
	}

	var msg *Message
	switch mtype {
	case MessageTypeCall:
		body, err := decodeCallBody(r)
		if err != nil {
			return nil, err
		}
		msg = NewCallMessage(xid, body)
	case MessageTypeReply:
		body, err := decodeReplyBody(r)
		if err != nil {
			return nil, err
		}
		msg = NewReplyMessage(xid, body)
	default:
		return nil, InvalidMessageTypeError(mtype)
	}

	if got := msg.EncodedLen(); uint64(got) != uint64(len(buf)) {
		return nil, &IncompleteMessageError{BufferLen: len(buf), Expected: int(got)}
	}

	return msg, nil
}

// Encode serialises the message into w: fragment header, xid, message-type
// discriminator, then the body.
//
// The length is computed up front with EncodedLen, so nothing is written
// when the message cannot be represented: a body length that would set the
// fragment header's high bit fails with ErrMessageTooLarge. Any other error
// is the sink's own write error, propagated unwrapped.
func (m *Message) Encode(w io.Writer) error {
	total := m.EncodedLen()
	if total&lastFragmentBit != 0 {
		return ErrMessageTooLarge
	}

	header := (total - headerLen) | lastFragmentBit
	if err := xdr.WriteUint32(w, header); err != nil {
		return err
	}

	if err := xdr.WriteUint32(w, m.xid); err != nil {
		return err
	}

	if m.call != nil {
		if err := xdr.WriteUint32(w, MessageTypeCall); err != nil {
			return err
		}
		return m.call.Encode(w)
	}

	if err := xdr.WriteUint32(w, MessageTypeReply); err != nil {
		return err
	}
	return m.reply.Encode(w)
}

// Marshal serialises the message into a new byte slice sized exactly to
// hold it.
func (m *Message) Marshal() ([]byte, error) {
	buf := bytes.NewBuffer(make([]byte, 0, m.EncodedLen()))
	if err := m.Encode(buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// EncodedLen returns the total on-wire length of the message, fragment
// header included. Pure arithmetic over the value tree, no I/O.
func (m *Message) EncodedLen() uint32 {
	// header + xid + message-type discriminator
	l := uint32(headerLen + 4 + 4)

	if m.call != nil {
		l += m.call.EncodedLen()
	} else {
		l += m.reply.EncodedLen()
	}

	return l
}

// XID returns the transaction ID correlating this call with its reply.
func (m *Message) XID() uint32 {
	return m.xid
}

// Type returns MessageTypeCall or MessageTypeReply.
func (m *Message) Type() uint32 {
	if m.call != nil {
		return MessageTypeCall
	}
	return MessageTypeReply
}

// CallBody returns the call body, or nil if this message is a reply.
func (m *Message) CallBody() *CallBody {
	return m.call
}

// ReplyBody returns the reply body, or nil if this message is a call.
func (m *Message) ReplyBody() *ReplyBody {
	return m.reply
}
