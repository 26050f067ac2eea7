package oncrpc

import (
	"io"

	"github.com/marmos91/oncrpc/xdr"
)

// ReplyBody is the response to an RPC invocation: either an AcceptedReply
// (the server accepted the request credentials) or a RejectedReply (it did
// not). Exactly one of the two is set.
type ReplyBody struct {
	accepted *AcceptedReply
	rejected *RejectedReply
}

// NewAcceptedReplyBody wraps an AcceptedReply in a ReplyBody.
func NewAcceptedReplyBody(reply *AcceptedReply) *ReplyBody {
	return &ReplyBody{accepted: reply}
}

// NewDeniedReplyBody wraps a RejectedReply in a ReplyBody.
func NewDeniedReplyBody(reply *RejectedReply) *ReplyBody {
	return &ReplyBody{rejected: reply}
}

func decodeReplyBody(r *xdr.Reader) (*ReplyBody, error) {
	disc, err := r.Uint32()
	if err != nil {
		return nil, err
	}

	switch disc {
	case replyAccepted:
		accepted, err := decodeAcceptedReply(r)
		if err != nil {
			return nil, err
		}
		return &ReplyBody{accepted: accepted}, nil
	case replyDenied:
		rejected, err := decodeRejectedReply(r)
		if err != nil {
			return nil, err
		}
		return &ReplyBody{rejected: rejected}, nil
	default:
		return nil, InvalidReplyTypeError(disc)
	}
}

// Encode serialises the reply body into w: the reply_stat discriminator,
// then the variant.
func (rb *ReplyBody) Encode(w io.Writer) error {
	if rb.accepted != nil {
		if err := xdr.WriteUint32(w, replyAccepted); err != nil {
			return err
		}
		return rb.accepted.Encode(w)
	}

	if err := xdr.WriteUint32(w, replyDenied); err != nil {
		return err
	}
	return rb.rejected.Encode(w)
}

// EncodedLen returns the on-wire length of the reply body in bytes.
func (rb *ReplyBody) EncodedLen() uint32 {
	// Discriminator
	l := uint32(4)

	if rb.accepted != nil {
		l += rb.accepted.EncodedLen()
	} else {
		l += rb.rejected.EncodedLen()
	}

	return l
}

// Accepted returns the accepted reply, or nil if the request was denied.
func (rb *ReplyBody) Accepted() *AcceptedReply {
	return rb.accepted
}

// Denied returns the rejection, or nil if the request was accepted.
func (rb *ReplyBody) Denied() *RejectedReply {
	return rb.rejected
}
