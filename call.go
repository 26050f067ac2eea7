package oncrpc

import (
	"io"

	"github.com/marmos91/oncrpc/xdr"
)

// CallBody is an RPC invocation request: the call_body structure of RFC 5531
// Section 9, with the rpcvers field hard-wired to 2.
//
// Wire format, after the envelope's xid and message-type discriminator:
//
//	rpcvers:         4 bytes (must be 2)
//	program:         4 bytes
//	program version: 4 bytes
//	procedure:       4 bytes
//	credentials:     variable (AuthFlavor)
//	verifier:        variable (AuthFlavor)
//	payload:         everything to the end of the message
//
// The payload holds the procedure-specific arguments, already XDR-encoded by
// the caller. It has no length prefix of its own: it is bounded by the
// enveloping message's validated total length.
type CallBody struct {
	program        uint32
	programVersion uint32
	procedure      uint32

	credentials AuthFlavor
	verifier    AuthFlavor

	payload []byte
}

// NewCallBody constructs an RPC invocation request.
func NewCallBody(program, programVersion, procedure uint32, credentials, verifier AuthFlavor, payload []byte) *CallBody {
	return &CallBody{
		program:        program,
		programVersion: programVersion,
		procedure:      procedure,
		credentials:    credentials,
		verifier:       verifier,
		payload:        payload,
	}
}

// decodeCallBody parses a call body from r, consuming the remainder of the
// buffer as the procedure payload.
func decodeCallBody(r *xdr.Reader) (*CallBody, error) {
	vers, err := r.Uint32()
	if err != nil {
		return nil, err
	}
	if vers != RPCVersion {
		return nil, InvalidRPCVersionError(vers)
	}

	program, err := r.Uint32()
	if err != nil {
		return nil, err
	}
	programVersion, err := r.Uint32()
	if err != nil {
		return nil, err
	}
	procedure, err := r.Uint32()
	if err != nil {
		return nil, err
	}

	credentials, err := decodeAuthFlavor(r)
	if err != nil {
		return nil, err
	}
	verifier, err := decodeAuthFlavor(r)
	if err != nil {
		return nil, err
	}

	return &CallBody{
		program:        program,
		programVersion: programVersion,
		procedure:      procedure,
		credentials:    credentials,
		verifier:       verifier,
		payload:        r.Rest(),
	}, nil
}

// Encode serialises the call body into w. Payload bytes are written
// verbatim.
func (c *CallBody) Encode(w io.Writer) error {
	if err := xdr.WriteUint32(w, RPCVersion); err != nil {
		return err
	}
	if err := xdr.WriteUint32(w, c.program); err != nil {
		return err
	}
	if err := xdr.WriteUint32(w, c.programVersion); err != nil {
		return err
	}
	if err := xdr.WriteUint32(w, c.procedure); err != nil {
		return err
	}

	if err := c.credentials.Encode(w); err != nil {
		return err
	}
	if err := c.verifier.Encode(w); err != nil {
		return err
	}

	_, err := w.Write(c.payload)
	return err
}

// EncodedLen returns the on-wire length of the call body in bytes.
func (c *CallBody) EncodedLen() uint32 {
	// rpcvers + program + program version + procedure
	l := uint32(16)

	l += c.credentials.EncodedLen()
	l += c.verifier.EncodedLen()
	l += uint32(len(c.payload))

	return l
}

// RPCVersion returns the RPC protocol version of this request, always 2.
func (c *CallBody) RPCVersion() uint32 {
	return RPCVersion
}

// Program returns the identifier of the RPC program to invoke.
func (c *CallBody) Program() uint32 {
	return c.program
}

// ProgramVersion returns the version of the program to invoke.
func (c *CallBody) ProgramVersion() uint32 {
	return c.programVersion
}

// Procedure returns the procedure number identifying the RPC to invoke.
func (c *CallBody) Procedure() uint32 {
	return c.procedure
}

// Credentials returns the authentication credentials for the request.
func (c *CallBody) Credentials() AuthFlavor {
	return c.credentials
}

// Verifier returns the verifier validating the authentication credentials.
// The two are historically separate structures but always travel together.
func (c *CallBody) Verifier() AuthFlavor {
	return c.verifier
}

// Payload returns the opaque procedure-specific argument bytes.
func (c *CallBody) Payload() []byte {
	return c.payload
}
