package oncrpc

import (
	"io"

	"github.com/marmos91/oncrpc/xdr"
)

// AcceptedReply is the response to a request whose credentials the server
// accepted: a verifier for the client to validate the server, plus the
// acceptance status.
type AcceptedReply struct {
	verifier AuthFlavor
	status   AcceptedStatus
}

// NewAcceptedReply constructs an AcceptedReply with the given verifier and
// status.
func NewAcceptedReply(verifier AuthFlavor, status AcceptedStatus) *AcceptedReply {
	return &AcceptedReply{verifier: verifier, status: status}
}

func decodeAcceptedReply(r *xdr.Reader) (*AcceptedReply, error) {
	verifier, err := decodeAuthFlavor(r)
	if err != nil {
		return nil, err
	}
	status, err := decodeAcceptedStatus(r)
	if err != nil {
		return nil, err
	}
	return &AcceptedReply{verifier: verifier, status: status}, nil
}

// Encode serialises the accepted reply into w.
func (a *AcceptedReply) Encode(w io.Writer) error {
	if err := a.verifier.Encode(w); err != nil {
		return err
	}
	return a.status.Encode(w)
}

// EncodedLen returns the on-wire length of the accepted reply in bytes.
func (a *AcceptedReply) EncodedLen() uint32 {
	return a.verifier.EncodedLen() + a.status.EncodedLen()
}

// Verifier returns the server's auth verifier.
func (a *AcceptedReply) Verifier() AuthFlavor {
	return a.verifier
}

// Status returns the acceptance status of the response.
func (a *AcceptedReply) Status() AcceptedStatus {
	return a.status
}

// AcceptedStatus is the accept_stat union of RFC 5531: the outcome of an
// accepted call. Construct values with NewAcceptedSuccess,
// NewProgramMismatch, or the fixed variants below; decode fills it from the
// wire.
//
// A success status carries the procedure results as opaque bytes running to
// the end of the enclosing message, the same implicit-length convention as
// CallBody's payload. A program mismatch carries the supported low/high
// version bounds. The remaining variants carry no data.
type AcceptedStatus struct {
	status    uint32
	results   []byte
	low, high uint32
}

// NewAcceptedSuccess returns a success status carrying the XDR-encoded
// procedure results.
func NewAcceptedSuccess(results []byte) AcceptedStatus {
	return AcceptedStatus{status: AcceptSuccess, results: results}
}

// NewProgramMismatch returns a PROG_MISMATCH status carrying the lowest and
// highest program versions the server supports.
func NewProgramMismatch(low, high uint32) AcceptedStatus {
	return AcceptedStatus{status: AcceptProgMismatch, low: low, high: high}
}

// NewProgramUnavailable returns a PROG_UNAVAIL status.
func NewProgramUnavailable() AcceptedStatus {
	return AcceptedStatus{status: AcceptProgUnavail}
}

// NewProcedureUnavailable returns a PROC_UNAVAIL status.
func NewProcedureUnavailable() AcceptedStatus {
	return AcceptedStatus{status: AcceptProcUnavail}
}

// NewGarbageArgs returns a GARBAGE_ARGS status.
func NewGarbageArgs() AcceptedStatus {
	return AcceptedStatus{status: AcceptGarbageArgs}
}

// NewSystemError returns a SYSTEM_ERR status.
func NewSystemError() AcceptedStatus {
	return AcceptedStatus{status: AcceptSystemErr}
}

func decodeAcceptedStatus(r *xdr.Reader) (AcceptedStatus, error) {
	disc, err := r.Uint32()
	if err != nil {
		return AcceptedStatus{}, err
	}

	switch disc {
	case AcceptSuccess:
		return AcceptedStatus{status: AcceptSuccess, results: r.Rest()}, nil
	case AcceptProgUnavail, AcceptProcUnavail, AcceptGarbageArgs, AcceptSystemErr:
		return AcceptedStatus{status: disc}, nil
	case AcceptProgMismatch:
		low, err := r.Uint32()
		if err != nil {
			return AcceptedStatus{}, err
		}
		high, err := r.Uint32()
		if err != nil {
			return AcceptedStatus{}, err
		}
		return AcceptedStatus{status: AcceptProgMismatch, low: low, high: high}, nil
	default:
		return AcceptedStatus{}, InvalidReplyStatusError(disc)
	}
}

// Encode serialises the status into w: the discriminator, then the variant
// body.
func (s AcceptedStatus) Encode(w io.Writer) error {
	if err := xdr.WriteUint32(w, s.status); err != nil {
		return err
	}

	switch s.status {
	case AcceptSuccess:
		_, err := w.Write(s.results)
		return err
	case AcceptProgMismatch:
		if err := xdr.WriteUint32(w, s.low); err != nil {
			return err
		}
		return xdr.WriteUint32(w, s.high)
	default:
		return nil
	}
}

// EncodedLen returns the on-wire length of the status in bytes.
func (s AcceptedStatus) EncodedLen() uint32 {
	// Discriminator
	l := uint32(4)

	switch s.status {
	case AcceptSuccess:
		l += uint32(len(s.results))
	case AcceptProgMismatch:
		l += 8
	}

	return l
}

// Status returns the accept_stat code (AcceptSuccess, AcceptProgUnavail,
// ...).
func (s AcceptedStatus) Status() uint32 {
	return s.status
}

// Results returns the opaque procedure results of a success status, nil for
// every other variant.
func (s AcceptedStatus) Results() []byte {
	return s.results
}

// MismatchRange returns the low/high supported program versions of a
// PROG_MISMATCH status. ok is false for every other variant.
func (s AcceptedStatus) MismatchRange() (low, high uint32, ok bool) {
	if s.status != AcceptProgMismatch {
		return 0, 0, false
	}
	return s.low, s.high, true
}

// String returns the RFC name of the status code, for log and metric
// labels.
func (s AcceptedStatus) String() string {
	switch s.status {
	case AcceptSuccess:
		return "SUCCESS"
	case AcceptProgUnavail:
		return "PROG_UNAVAIL"
	case AcceptProgMismatch:
		return "PROG_MISMATCH"
	case AcceptProcUnavail:
		return "PROC_UNAVAIL"
	case AcceptGarbageArgs:
		return "GARBAGE_ARGS"
	case AcceptSystemErr:
		return "SYSTEM_ERR"
	default:
		return "UNKNOWN"
	}
}
