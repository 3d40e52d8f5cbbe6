package command

import "fmt"

type ErrorKind int

const (
	// KindValidation covers missing or malformed arguments; reported to the
	// invoker verbatim.
	KindValidation ErrorKind = iota
	// KindPermission is a platform permission rejection.
	KindPermission
	// KindTransport is any other gateway failure; reported with the
	// collaborator's error text, never retried.
	KindTransport
	// KindStorage is a store failure; fatal to the current command only.
	KindStorage
)

type Error struct {
	Kind    ErrorKind
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *Error) Unwrap() error { return e.Err }

func validationf(format string, args ...any) *Error {
	return &Error{Kind: KindValidation, Message: fmt.Sprintf(format, args...)}
}

func transportf(err error, format string, args ...any) *Error {
	return &Error{Kind: KindTransport, Message: fmt.Sprintf(format, args...), Err: err}
}

func storageErr(err error) *Error {
	return &Error{Kind: KindStorage, Message: "💔 Something went wrong~", Err: err}
}

func permission(err error) *Error {
	return &Error{Kind: KindPermission, Err: err}
}
