package oncrpc

import (
	"io"
	"unicode/utf8"

	"github.com/marmos91/oncrpc/xdr"
)

// AuthUnixParams represents the credential body referred to as both
// AUTH_UNIX and AUTH_SYS in the various RFCs, used to identify the client as
// a Unix user.
//
// The structure is implemented as specified in Appendix A of RFC 5531:
//
//	stamp:        4 bytes  (arbitrary caller-generated ID)
//	machine name: variable (XDR opaque: length, bytes, zero fill)
//	uid:          4 bytes
//	gid:          4 bytes
//	gids:         4 bytes count + count × 4 bytes (at most 16 entries)
//
// These values are trivial to forge and provide no actual security.
//
// The machine name is kept as raw bytes because the wire format does not
// require any particular encoding; MachineNameString validates UTF-8 on
// demand.
type AuthUnixParams struct {
	stamp       uint32
	machineName []byte
	uid         uint32
	gid         uint32
	gids        []uint32
}

// NewAuthUnixParams constructs an AuthUnixParams holding the specified Unix
// account identifiers. gids may be nil; it must not exceed MaxGIDs entries
// or the value will refuse to encode.
func NewAuthUnixParams(stamp uint32, machineName []byte, uid, gid uint32, gids []uint32) *AuthUnixParams {
	return &AuthUnixParams{
		stamp:       stamp,
		machineName: machineName,
		uid:         uid,
		gid:         gid,
		gids:        gids,
	}
}

// decodeAuthUnixParams parses an AUTH_UNIX credential body from r,
// validating that exactly expectedLen bytes were consumed.
//
// The exact-consumption check is the structural-integrity guarantee: a
// flavor length that disagrees with the bytes actually needed by the nested
// structure indicates a crafted message smuggling hidden trailing data, and
// fails with ErrInvalidAuthData.
func decodeAuthUnixParams(r *xdr.Reader, expectedLen uint32) (*AuthUnixParams, error) {
	start := r.Consumed()

	stamp, err := r.Uint32()
	if err != nil {
		return nil, err
	}

	machineName, err := r.Opaque(MaxAuthDataLen)
	if err != nil {
		return nil, err
	}

	uid, err := r.Uint32()
	if err != nil {
		return nil, err
	}
	gid, err := r.Uint32()
	if err != nil {
		return nil, err
	}

	count, err := r.Uint32()
	if err != nil {
		return nil, err
	}
	if count > MaxGIDs {
		return nil, ErrInvalidAuthData
	}

	var gids []uint32
	if count > 0 {
		gids = make([]uint32, 0, count)
		for i := uint32(0); i < count; i++ {
			g, err := r.Uint32()
			if err != nil {
				return nil, err
			}
			gids = append(gids, g)
		}
	}

	if uint32(r.Consumed()-start) != expectedLen {
		return nil, ErrInvalidAuthData
	}

	return &AuthUnixParams{
		stamp:       stamp,
		machineName: machineName,
		uid:         uid,
		gid:         gid,
		gids:        gids,
	}, nil
}

// Encode serialises the credential body into w: stamp, length-prefixed
// machine name, uid, gid, gids count, then the gids values, all big-endian.
//
// The fragment heading and the AUTH_UNIX flavor/length prefix are written by
// the enclosing AuthFlavor, not here.
func (p *AuthUnixParams) Encode(w io.Writer) error {
	if err := xdr.WriteUint32(w, p.stamp); err != nil {
		return err
	}
	if err := xdr.WriteOpaque(w, p.machineName); err != nil {
		return err
	}
	if err := xdr.WriteUint32(w, p.uid); err != nil {
		return err
	}
	if err := xdr.WriteUint32(w, p.gid); err != nil {
		return err
	}
	if err := xdr.WriteUint32(w, uint32(len(p.gids))); err != nil {
		return err
	}
	for _, g := range p.gids {
		if err := xdr.WriteUint32(w, g); err != nil {
			return err
		}
	}
	return nil
}

// EncodedLen returns the on-wire length of the credential body in bytes.
// Pure arithmetic, no serialisation is performed.
func (p *AuthUnixParams) EncodedLen() uint32 {
	// stamp + uid + gid
	l := uint32(12)

	// machine name: length prefix + bytes + fill
	l += xdr.OpaqueLen(uint32(len(p.machineName)))

	// gids count prefix + values
	l += 4 + 4*uint32(len(p.gids))

	return l
}

// Stamp returns the arbitrary ID generated by the caller.
func (p *AuthUnixParams) Stamp() uint32 {
	return p.stamp
}

// MachineName returns the hostname of the caller's machine as raw bytes.
func (p *AuthUnixParams) MachineName() []byte {
	return p.machineName
}

// MachineNameString returns the machine name as a string, or
// ErrInvalidMachineName if the bytes are not valid UTF-8. The raw bytes
// remain available through MachineName either way.
func (p *AuthUnixParams) MachineNameString() (string, error) {
	if !utf8.Valid(p.machineName) {
		return "", ErrInvalidMachineName
	}
	return string(p.machineName), nil
}

// UID returns the caller's Unix user ID.
func (p *AuthUnixParams) UID() uint32 {
	return p.uid
}

// GID returns the caller's primary Unix group ID.
func (p *AuthUnixParams) GID() uint32 {
	return p.gid
}

// GIDs returns the supplementary Unix group IDs the caller is a member of,
// in wire order. The returned slice is nil when the credential carried none.
func (p *AuthUnixParams) GIDs() []uint32 {
	return p.gids
}
