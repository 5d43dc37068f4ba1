package proto

import (
	"errors"

	"google.golang.org/genproto/googleapis/rpc/errdetails"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	errs "infinite_ttt/internal/errors"
)

// ErrorDomain tags the ErrorInfo details attached to InvalidArgument statuses.
const ErrorDomain = "ttt.MoveEngine"

var invalidReasons = []struct {
	reason string
	err    error
}{
	{"INVALID_BOARD", errs.ErrInvalidBoard},
	{"INVALID_QUEUE", errs.ErrInvalidQueue},
	{"INVALID_SIDE", errs.ErrInvalidSide},
}

// InvalidArgument converts a validation error into an InvalidArgument status
// that names which check failed.
func InvalidArgument(err error) error {
	st := status.New(codes.InvalidArgument, err.Error())
	for _, r := range invalidReasons {
		if !errors.Is(err, r.err) {
			continue
		}
		if detailed, dErr := st.WithDetails(&errdetails.ErrorInfo{Reason: r.reason, Domain: ErrorDomain}); dErr == nil {
			st = detailed
		}
		break
	}
	return st.Err()
}

// InvalidArgumentCause returns the validation sentinel carried by st. A status
// without a known reason is reported as a bad board.
func InvalidArgumentCause(st *status.Status) error {
	for _, d := range st.Details() {
		info, ok := d.(*errdetails.ErrorInfo)
		if !ok || info.GetDomain() != ErrorDomain {
			continue
		}
		for _, r := range invalidReasons {
			if r.reason == info.GetReason() {
				return r.err
			}
		}
	}
	return errs.ErrInvalidBoard
}
