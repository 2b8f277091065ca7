package apperrs

import "errors"

type Kind string

const KindClient Kind = "client"

const CodeUnparsableTime = "UnparsableTime"

type Error struct {
	Kind Kind
	Code string
	Msg  string
	Meta map[string]any
	Err  error // wrapped error
}

func (e *Error) SetMeta(key string, value any) *Error {
	if e.Meta == nil {
		e.Meta = make(map[string]any)
	}
	e.Meta[key] = value
	return e
}

func (e *Error) Error() string {
	if e.Err != nil {
		return e.Msg + ": " + e.Err.Error()
	}
	return e.Msg
}

func (e *Error) Unwrap() error {
	return e.Err
}

func Client(code, msg string) *Error {
	return &Error{
		Kind: KindClient,
		Code: code,
		Msg:  msg,
		Meta: make(map[string]any),
	}
}

// UnparsableTime reports a value that could not be read as a point in time.
func UnparsableTime(input any, err error) *Error {
	e := Client(CodeUnparsableTime, "unparsable time value")
	e.Err = err
	return e.SetMeta("input", input)
}

func CodeIs(err error, code string) bool {
	var appErr *Error
	if ok := errors.As(err, &appErr); ok {
		return appErr.Code == code
	}
	return false
}
