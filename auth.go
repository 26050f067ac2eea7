package oncrpc

import (
	"io"

	"github.com/marmos91/oncrpc/xdr"
)

// AuthFlavor is the tagged credential/verifier structure attached to every
// call and accepted reply (the opaque_auth of RFC 5531 Section 8.2).
//
// Four variants are modelled:
//
//   - AUTH_NONE, with the opaque data RFC 5531 allows to be included
//     (typically absent). An empty payload is normalised to "absent".
//   - AUTH_UNIX, decoded into AuthUnixParams.
//   - AUTH_SHORT, carrying its opaque server-issued identifier.
//   - Unknown flavors, preserved verbatim as discriminator plus opaque body
//     so forward-compatible credentials survive a round trip.
//
// The deprecated AUTH_DH is not supported, nor is GSS; both decode as
// unknown flavors.
//
// The zero value is a bodiless AUTH_NONE. The opaque body of any flavor
// must not exceed MaxAuthDataLen bytes; Encode refuses longer bodies with
// ErrInvalidLength.
type AuthFlavor struct {
	flavor uint32
	body   []byte
	unix   *AuthUnixParams
}

// NewAuthNone returns an AUTH_NONE flavor carrying the given opaque data.
// An empty or nil body encodes as "no payload"; the two are not
// distinguishable on the wire.
func NewAuthNone(body []byte) AuthFlavor {
	if len(body) == 0 {
		body = nil
	}
	return AuthFlavor{flavor: AuthFlavorNone, body: body}
}

// NewAuthUnix returns an AUTH_UNIX flavor wrapping params.
func NewAuthUnix(params *AuthUnixParams) AuthFlavor {
	return AuthFlavor{flavor: AuthFlavorUnix, unix: params}
}

// NewAuthShort returns an AUTH_SHORT flavor carrying the opaque short-hand
// credential id issued by a server.
func NewAuthShort(id []byte) AuthFlavor {
	return AuthFlavor{flavor: AuthFlavorShort, body: id}
}

// NewAuthUnknown returns a flavor with an arbitrary discriminator and opaque
// body, for credential schemes this package has no structured model for.
// Passing one of the known discriminators produces that flavor's wire form
// with an uninterpreted body.
func NewAuthUnknown(id uint32, data []byte) AuthFlavor {
	return AuthFlavor{flavor: id, body: data}
}

// decodeAuthFlavor parses one opaque_auth structure from r.
//
// The dispatch is a single step on the flavor discriminator; every variant's
// body is bounded by MaxAuthDataLen. For AUTH_UNIX the declared body length
// is passed down so the nested parser can enforce exact consumption.
func decodeAuthFlavor(r *xdr.Reader) (AuthFlavor, error) {
	flavor, err := r.Uint32()
	if err != nil {
		return AuthFlavor{}, err
	}

	switch flavor {
	case AuthFlavorNone:
		body, err := r.Opaque(MaxAuthDataLen)
		if err != nil {
			return AuthFlavor{}, err
		}
		return NewAuthNone(body), nil

	case AuthFlavorUnix:
		declared, err := r.Uint32()
		if err != nil {
			return AuthFlavor{}, err
		}
		if declared > MaxAuthDataLen {
			return AuthFlavor{}, ErrInvalidLength
		}
		params, err := decodeAuthUnixParams(r, declared)
		if err != nil {
			return AuthFlavor{}, err
		}
		return NewAuthUnix(params), nil

	case AuthFlavorShort:
		body, err := r.Opaque(MaxAuthDataLen)
		if err != nil {
			return AuthFlavor{}, err
		}
		return NewAuthShort(body), nil

	default:
		body, err := r.Opaque(MaxAuthDataLen)
		if err != nil {
			return AuthFlavor{}, err
		}
		return NewAuthUnknown(flavor, body), nil
	}
}

// Encode serialises the flavor into w: discriminator first, then the
// variant body. AUTH_UNIX bodies carry their own internal length prefix
// (equal to AuthUnixParams.EncodedLen); every other variant is a plain
// opaque.
func (a AuthFlavor) Encode(w io.Writer) error {
	if a.AssociatedDataLen() > MaxAuthDataLen {
		return ErrInvalidLength
	}

	if err := xdr.WriteUint32(w, a.flavor); err != nil {
		return err
	}

	if a.unix != nil {
		if err := xdr.WriteUint32(w, a.unix.EncodedLen()); err != nil {
			return err
		}
		return a.unix.Encode(w)
	}

	return xdr.WriteOpaque(w, a.body)
}

// EncodedLen returns the on-wire length of the flavor including the
// discriminator and length prefix. Pure arithmetic, never a re-encode.
func (a AuthFlavor) EncodedLen() uint32 {
	if a.unix != nil {
		// discriminator + length prefix + body
		return 4 + 4 + a.unix.EncodedLen()
	}
	return 4 + xdr.OpaqueLen(uint32(len(a.body)))
}

// ID returns the discriminator identifying this flavor in the wire
// protocol.
func (a AuthFlavor) ID() uint32 {
	return a.flavor
}

// AssociatedDataLen returns the byte length of the flavor's opaque body as
// declared on the wire: the AuthUnixParams encoded length for AUTH_UNIX,
// the raw payload length for everything else.
func (a AuthFlavor) AssociatedDataLen() uint32 {
	if a.unix != nil {
		return a.unix.EncodedLen()
	}
	return uint32(len(a.body))
}

// Body returns the opaque payload for AUTH_NONE, AUTH_SHORT and unknown
// flavors. It is nil for AUTH_UNIX (see UnixParams) and for a bodiless
// AUTH_NONE.
func (a AuthFlavor) Body() []byte {
	return a.body
}

// UnixParams returns the decoded AUTH_UNIX credential body, or nil if this
// flavor is not AUTH_UNIX.
func (a AuthFlavor) UnixParams() *AuthUnixParams {
	return a.unix
}
