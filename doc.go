// Package oncrpc implements the ONC RPC (RFC 5531) wire message format:
// encoding and decoding of RPC call/reply envelopes, the RFC 1831/5531
// authentication flavors, and the RFC 1014 XDR opaque-data rules they build
// on.
//
// # Scope
//
// This is a foundation codec for higher-level RPC stacks such as NFS. It
// frames, validates, and round-trips single messages; it does not dispatch
// procedures, manage connections, or reassemble multi-fragment records.
// Procedure arguments and results travel through it as opaque payload bytes.
//
// # Decoding
//
// ParseMessage decodes exactly one message from a byte buffer:
//
//	msg, err := oncrpc.ParseMessage(buf)
//	if err != nil {
//	    return fmt.Errorf("parse rpc message: %w", err)
//	}
//
//	if body := msg.CallBody(); body != nil {
//	    // Dispatch on body.Program(), body.ProgramVersion(), body.Procedure().
//	}
//
// Decoding is zero-copy: every nested byte field (auth bodies, machine
// names, payloads) aliases the input buffer, so a decoded message must not
// outlive the buffer it was parsed from. Decoding allocates only the value
// tree itself, never copies of the wire data.
//
// Callers framing a TCP stream can use ExpectedMessageLen on the first four
// bytes to learn how much data to accumulate before calling ParseMessage.
//
// # Encoding
//
// Encoding is the mirror image, computed bottom-up: EncodedLen answers
// "how many bytes will this write" without performing I/O, and Encode then
// writes the fragment header, xid and body into any io.Writer. Callers may
// reuse a bytes.Buffer across messages by resetting it between calls.
//
// # Validation
//
// Malformed or adversarial input fails with a typed error and never panics,
// over-reads, or returns a partially decoded message. The envelope checks
// the declared fragment length against the buffer twice: once before
// decoding, and once more against the recomputed length of the decoded
// value tree, so nested length fields that are self-consistent but wrong
// relative to the outer declaration are still rejected.
//
// # Authentication flavors
//
// AUTH_NONE, AUTH_UNIX (AUTH_SYS), and AUTH_SHORT are decoded into typed
// structures; any other flavor is preserved verbatim with its discriminator
// and opaque body. AUTH_DH and the GSS flavors get no special handling.
// Note that AUTH_UNIX credentials are client-asserted and trivially forged;
// they are carried for protocol compatibility, not security.
package oncrpc
