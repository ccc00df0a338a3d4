package errors

import (
	"errors"
)

// As is a wrapper around errors.As that works with our Error type
func As(err error, target **Error) bool {
	return errors.As(err, target)
}

// Is checks if an error is of a specific type
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// GetCode extracts the error code from an error
func GetCode(err error) Code {
	if err == nil {
		return CodeOK
	}

	var customErr *Error
	if errors.As(err, &customErr) {
		return customErr.Code
	}

	return CodeInternal
}

// GetMeta extracts metadata from an error
func GetMeta(err error) map[string]interface{} {
	var customErr *Error
	if errors.As(err, &customErr) {
		return customErr.Meta
	}
	return nil
}

// GetMessage extracts the user-friendly message from an error
func GetMessage(err error) string {
	if err == nil {
		return ""
	}

	var customErr *Error
	if errors.As(err, &customErr) {
		return customErr.Message
	}

	return err.Error()
}

// PlayerMessage returns the text shown to a player for err. Only the
// outermost message is used; causes stay in the logs.
func PlayerMessage(err error) string {
	if err == nil {
		return ""
	}
	if !GetCode(err).Player() {
		return "Something went wrong. Try again in a moment."
	}
	return GetMessage(err)
}

// IsNotFound checks if an error is a not found error
func IsNotFound(err error) bool {
	return GetCode(err) == CodeNotFound
}

// IsInvalidArgument checks if an error is an invalid argument error
func IsInvalidArgument(err error) bool {
	return GetCode(err) == CodeInvalidArgument
}

// IsPermissionDenied checks if an error is a permission denied error
func IsPermissionDenied(err error) bool {
	return GetCode(err) == CodePermissionDenied
}

// IsInternal checks if an error is an internal error
func IsInternal(err error) bool {
	return GetCode(err) == CodeInternal
}

// IsInvalidState checks if an error is an invalid state error
func IsInvalidState(err error) bool {
	return GetCode(err) == CodeFailedPrecondition
}

// IsInsufficientResources checks if an error is an insufficient resources error
func IsInsufficientResources(err error) bool {
	return GetCode(err) == CodeResourceExhausted
}

// IsStale checks if an error is a staleness error
func IsStale(err error) bool {
	return GetCode(err) == CodeAborted
}
