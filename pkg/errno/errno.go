package errno

import (
	"errors"

	"seed-validator/pkg/bip39"
)

// Errno defines the error code logic
type Errno struct {
	Code    int
	Message string
}

func (e Errno) Error() string {
	return e.Message
}

// WithMessage 返回带有具体信息的副本，错误码不变
func (e Errno) WithMessage(msg string) Errno {
	e.Message = msg
	return e
}

// Decode tries to convert an error to Errno
func Decode(err error) (int, string) {
	if err == nil {
		return OK.Code, OK.Message
	}

	var typed Errno
	if errors.As(err, &typed) {
		return typed.Code, typed.Message
	}
	var ptr *Errno
	if errors.As(err, &ptr) {
		return ptr.Code, ptr.Message
	}

	switch {
	case errors.Is(err, bip39.ErrEnvironmentUnavailable):
		return ErrEnvironmentUnavailable.Code, err.Error()
	case errors.Is(err, bip39.ErrInvalidWordCount),
		errors.Is(err, bip39.ErrDuplicateWord),
		errors.Is(err, bip39.ErrUnknownWord),
		errors.Is(err, bip39.ErrChecksumMismatch):
		return ErrInvalidMnemonic.Code, err.Error()
	case errors.Is(err, bip39.ErrInvalidEntropyLength):
		return ErrBind.Code, err.Error()
	default:
		return InternalServerError.Code, err.Error()
	}
}

// Common Errors
var (
	OK                  = Errno{Code: 0, Message: "Success"}
	InternalServerError = Errno{Code: 10001, Message: "Internal server error"}
	ErrBind             = Errno{Code: 10002, Message: "Error occurred while binding the request body to the struct"}
	ErrPayloadTooLarge  = Errno{Code: 10003, Message: "Seed phrase is too long"}
)

// Business Errors (20000+)
var (
	ErrInvalidMnemonic        = Errno{Code: 20101, Message: "Invalid seed phrase"}
	ErrEnvironmentUnavailable = Errno{Code: 20102, Message: "Required cryptographic primitive is unavailable; cannot validate seed phrase"}
)
