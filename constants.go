package oncrpc

// RPCVersion is the ONC RPC protocol version implemented by this package.
// Call bodies with any other version fail to decode with
// InvalidRPCVersionError.
const RPCVersion = 2

// MaxAuthDataLen is the maximum byte length of the opaque data associated
// with any auth flavor. Flavors declaring a longer body fail to decode with
// ErrInvalidLength, and refuse to encode.
const MaxAuthDataLen = 200

// MaxGIDs is the maximum number of supplementary group IDs an AUTH_UNIX
// credential may carry (RFC 5531 Appendix A). A higher count on the wire
// fails with ErrInvalidAuthData rather than being truncated.
const MaxGIDs = 16

// RPC Message Types
//
// These constants identify whether an RPC message is a call (request) from a
// client or a reply (response) from a server.
//
// Reference: RFC 5531 Section 9 (RPC Message Protocol)
const (
	// MessageTypeCall indicates an RPC call message.
	MessageTypeCall uint32 = 0

	// MessageTypeReply indicates an RPC reply message.
	MessageTypeReply uint32 = 1
)

// Auth Flavor Discriminators
//
// These constants identify the authentication scheme carried by an
// AuthFlavor. Any other value is preserved as-is in an unknown flavor.
//
// Reference: RFC 5531 Section 8.2 (Authentication Flavors)
const (
	// AuthFlavorNone is AUTH_NONE: no authentication, with optional opaque
	// data RFC 5531 allows to be included (typically absent).
	AuthFlavorNone uint32 = 0

	// AuthFlavorUnix is AUTH_UNIX (also called AUTH_SYS): client-asserted
	// Unix uid/gid identity. See AuthUnixParams.
	AuthFlavorUnix uint32 = 1

	// AuthFlavorShort is AUTH_SHORT: a server-issued short-hand credential
	// standing in for earlier AUTH_UNIX credentials.
	AuthFlavorShort uint32 = 2
)

// Accept Status Codes
//
// When an RPC call is accepted, the accept_stat field indicates whether the
// procedure executed successfully or why it failed.
//
// Reference: RFC 5531 Section 9 (RPC Message Protocol)
const (
	// AcceptSuccess indicates successful RPC execution. The reply carries
	// the procedure's results as an opaque payload.
	AcceptSuccess uint32 = 0

	// AcceptProgUnavail indicates the program number has no handler in this
	// server.
	AcceptProgUnavail uint32 = 1

	// AcceptProgMismatch indicates the program exists but the requested
	// version is unsupported. The reply carries the supported low/high
	// version bounds.
	AcceptProgMismatch uint32 = 2

	// AcceptProcUnavail indicates the program and version exist but the
	// procedure number is not recognised.
	AcceptProcUnavail uint32 = 3

	// AcceptGarbageArgs indicates the procedure arguments could not be
	// deserialised.
	AcceptGarbageArgs uint32 = 4

	// AcceptSystemErr indicates an internal error on the server.
	AcceptSystemErr uint32 = 5
)

// Reply body discriminators (reply_stat).
const (
	replyAccepted uint32 = 0
	replyDenied   uint32 = 1
)

// Rejected reply discriminators (reject_stat).
const (
	rejectRPCMismatch uint32 = 0
	rejectAuthError   uint32 = 1
)

// RPC Program Numbers
//
// Well-known IANA-assigned program numbers, provided for the convenience of
// dispatch layers built on this codec. The codec itself attaches no meaning
// to program numbers.
const (
	// ProgramPortmap is the port mapper program number (RFC 1833).
	ProgramPortmap uint32 = 100000

	// ProgramNFS is the NFS program number (RFC 1813).
	ProgramNFS uint32 = 100003

	// ProgramMount is the Mount protocol program number (RFC 1813
	// Appendix I).
	ProgramMount uint32 = 100005
)
