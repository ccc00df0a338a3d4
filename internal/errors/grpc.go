package errors

import (
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/protoadapt"
	"google.golang.org/protobuf/types/known/structpb"
)

// ToGRPCError converts an error to a gRPC status error. Metadata travels as a
// structpb.Struct detail; values structpb cannot represent are dropped.
func ToGRPCError(err error) error {
	if err == nil {
		return nil
	}

	if _, ok := status.FromError(err); ok {
		return err
	}

	var gameErr *Error
	if !As(err, &gameErr) {
		return status.Error(codes.Internal, err.Error())
	}

	st := status.New(gameErr.Code.GRPCCode(), gameErr.Message)
	if details := metaStruct(gameErr); details != nil {
		if withDetails, detailErr := st.WithDetails(protoadapt.MessageV1Of(details)); detailErr == nil {
			st = withDetails
		}
	}
	return st.Err()
}

func metaStruct(e *Error) *structpb.Struct {
	if len(e.Meta) == 0 {
		return nil
	}
	fields := make(map[string]interface{}, len(e.Meta)+1)
	for k, v := range e.Meta {
		if _, err := structpb.NewValue(v); err == nil {
			fields[k] = v
		}
	}
	fields["code"] = string(e.Code)
	details, err := structpb.NewStruct(fields)
	if err != nil {
		return nil
	}
	return details
}

// FromGRPCError rebuilds an *Error from a status returned by the admin service
func FromGRPCError(err error) error {
	if err == nil {
		return nil
	}

	st, ok := status.FromError(err)
	if !ok {
		return err
	}

	out := &Error{Code: grpcCodeToCode(st.Code()), Message: st.Message()}
	for _, detail := range st.Details() {
		details, ok := detail.(*structpb.Struct)
		if !ok {
			continue
		}
		out.Meta = details.AsMap()
		// prefer the exact code when both sides share the table
		if c, ok := out.Meta["code"].(string); ok && c != "" {
			out.Code = Code(c)
		}
		delete(out.Meta, "code")
		break
	}
	return out
}

// grpcCodes pairs every Code with its gRPC status code
var grpcCodes = map[Code]codes.Code{
	CodeOK:                 codes.OK,
	CodeCanceled:           codes.Canceled,
	CodeInvalidArgument:    codes.InvalidArgument,
	CodeDeadlineExceeded:   codes.DeadlineExceeded,
	CodeNotFound:           codes.NotFound,
	CodeAlreadyExists:      codes.AlreadyExists,
	CodePermissionDenied:   codes.PermissionDenied,
	CodeResourceExhausted:  codes.ResourceExhausted,
	CodeFailedPrecondition: codes.FailedPrecondition,
	CodeAborted:            codes.Aborted,
	CodeUnimplemented:      codes.Unimplemented,
	CodeInternal:           codes.Internal,
	CodeUnavailable:        codes.Unavailable,
}

// GRPCCode returns the matching gRPC code, Unknown for unmapped codes
func (c Code) GRPCCode() codes.Code {
	if gc, ok := grpcCodes[c]; ok {
		return gc
	}
	return codes.Unknown
}

// grpcCodeToCode inverts grpcCodes; anything unmapped is internal
func grpcCodeToCode(gc codes.Code) Code {
	for c, mapped := range grpcCodes {
		if mapped == gc {
			return c
		}
	}
	return CodeInternal
}
