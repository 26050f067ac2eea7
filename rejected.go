package oncrpc

import (
	"fmt"
	"io"

	"github.com/marmos91/oncrpc/xdr"
)

// AuthError describes the reason a server rejected the request's
// authentication credentials: the auth_stat enumeration of RFC 5531.
type AuthError uint32

// The fixed auth_stat values. The enumeration is closed; any other value on
// the wire fails to decode with InvalidAuthStatusError.
const (
	// AuthOK is AUTH_OK.
	AuthOK AuthError = 0

	// AuthBadCredentials is AUTH_BADCRED: the credentials were rejected.
	AuthBadCredentials AuthError = 1

	// AuthRejectedCredentials is AUTH_REJECTEDCRED: the session has been
	// invalidated, typically when an AUTH_SHORT identifier is revoked.
	AuthRejectedCredentials AuthError = 2

	// AuthBadVerifier is AUTH_BADVERF: the verifier was not acceptable.
	AuthBadVerifier AuthError = 3

	// AuthRejectedVerifier is AUTH_REJECTEDVERF: the verifier was rejected
	// or expired.
	AuthRejectedVerifier AuthError = 4

	// AuthTooWeak is AUTH_TOOWEAK: the scheme was rejected for security
	// reasons.
	AuthTooWeak AuthError = 5

	// AuthInvalidResponse is AUTH_INVALIDRESP: the response verifier is
	// invalid.
	AuthInvalidResponse AuthError = 6

	// AuthFailed is AUTH_FAILED: an unknown failure occurred.
	AuthFailed AuthError = 7
)

func decodeAuthError(r *xdr.Reader) (AuthError, error) {
	v, err := r.Uint32()
	if err != nil {
		return 0, err
	}
	if v > uint32(AuthFailed) {
		return 0, InvalidAuthStatusError(v)
	}
	return AuthError(v), nil
}

// Encode serialises the auth_stat code into w.
func (e AuthError) Encode(w io.Writer) error {
	return xdr.WriteUint32(w, uint32(e))
}

// EncodedLen returns the on-wire length of the code, always 4.
func (e AuthError) EncodedLen() uint32 {
	return 4
}

// String returns the RFC name of the code.
func (e AuthError) String() string {
	switch e {
	case AuthOK:
		return "AUTH_OK"
	case AuthBadCredentials:
		return "AUTH_BADCRED"
	case AuthRejectedCredentials:
		return "AUTH_REJECTEDCRED"
	case AuthBadVerifier:
		return "AUTH_BADVERF"
	case AuthRejectedVerifier:
		return "AUTH_REJECTEDVERF"
	case AuthTooWeak:
		return "AUTH_TOOWEAK"
	case AuthInvalidResponse:
		return "AUTH_INVALIDRESP"
	case AuthFailed:
		return "AUTH_FAILED"
	default:
		return fmt.Sprintf("UNKNOWN_%d", uint32(e))
	}
}

// RejectedReply is the response to a request the server refused to execute:
// the reject_stat union of RFC 5531. Either the RPC protocol version was not
// serviceable (carrying the supported low/high bounds) or the authentication
// credentials were rejected (carrying an AuthError).
type RejectedReply struct {
	stat      uint32
	low, high uint32
	authErr   AuthError
}

// NewRPCVersionMismatch returns a RPC_MISMATCH rejection carrying the lowest
// and highest RPC protocol versions the server supports.
func NewRPCVersionMismatch(low, high uint32) *RejectedReply {
	return &RejectedReply{stat: rejectRPCMismatch, low: low, high: high}
}

// NewRejectedAuthError returns an AUTH_ERROR rejection with the given
// reason.
func NewRejectedAuthError(reason AuthError) *RejectedReply {
	return &RejectedReply{stat: rejectAuthError, authErr: reason}
}

func decodeRejectedReply(r *xdr.Reader) (*RejectedReply, error) {
	disc, err := r.Uint32()
	if err != nil {
		return nil, err
	}

	switch disc {
	case rejectRPCMismatch:
		low, err := r.Uint32()
		if err != nil {
			return nil, err
		}
		high, err := r.Uint32()
		if err != nil {
			return nil, err
		}
		return NewRPCVersionMismatch(low, high), nil
	case rejectAuthError:
		reason, err := decodeAuthError(r)
		if err != nil {
			return nil, err
		}
		return NewRejectedAuthError(reason), nil
	default:
		return nil, InvalidRejectedReplyTypeError(disc)
	}
}

// Encode serialises the rejection into w.
func (rr *RejectedReply) Encode(w io.Writer) error {
	if err := xdr.WriteUint32(w, rr.stat); err != nil {
		return err
	}

	if rr.stat == rejectRPCMismatch {
		if err := xdr.WriteUint32(w, rr.low); err != nil {
			return err
		}
		return xdr.WriteUint32(w, rr.high)
	}
	return rr.authErr.Encode(w)
}

// EncodedLen returns the on-wire length of the rejection in bytes.
func (rr *RejectedReply) EncodedLen() uint32 {
	// Discriminator
	l := uint32(4)

	if rr.stat == rejectRPCMismatch {
		// low + high
		l += 8
	} else {
		l += rr.authErr.EncodedLen()
	}

	return l
}

// IsVersionMismatch reports whether this rejection is RPC_MISMATCH.
func (rr *RejectedReply) IsVersionMismatch() bool {
	return rr.stat == rejectRPCMismatch
}

// VersionRange returns the low/high supported RPC protocol versions of a
// RPC_MISMATCH rejection. ok is false for an AUTH_ERROR rejection.
func (rr *RejectedReply) VersionRange() (low, high uint32, ok bool) {
	if rr.stat != rejectRPCMismatch {
		return 0, 0, false
	}
	return rr.low, rr.high, true
}

// AuthError returns the rejection reason of an AUTH_ERROR rejection. ok is
// false for a RPC_MISMATCH rejection.
func (rr *RejectedReply) AuthError() (AuthError, bool) {
	if rr.stat != rejectAuthError {
		return 0, false
	}
	return rr.authErr, true
}
