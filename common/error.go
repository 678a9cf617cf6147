package common

import (
	"fmt"
)

type ErrorCode uint

type Error struct {
	code    string
	message string
}

func NewError(name string, code ErrorCode, message string) Error {
	return Error{code: fmt.Sprintf("%s-%d", name, code), message: message}
}

func (e Error) MarshalJSON() ([]byte, error) {
	return EncodeJSON(map[string]string{
		"code":    e.code,
		"message": e.message,
	}, false, false)
}

func (e Error) Error() string {
	b, _ := EncodeJSON(map[string]string{
		"code":    e.code,
		"message": e.message,
	}, false, false)

	return TerminalLogString(string(b))
}

func (e Error) Code() string {
	return e.code
}

func (e Error) Message() string {
	return e.message
}

func (e Error) New(err error) Error {
	if err == nil {
		return e
	}

	return e.AppendMessage("%v", err)
}

func (e Error) Newf(format string, args ...interface{}) Error {
	return e.AppendMessage(format, args...)
}

func (e Error) SetMessage(format string, args ...interface{}) Error {
	return Error{code: e.code, message: fmt.Sprintf(format, args...)}
}

func (e Error) AppendMessage(format string, args ...interface{}) Error {
	return Error{
		code: e.code,
		message: fmt.Sprintf(
			"%s; %s",
			e.message,
			fmt.Sprintf(format, args...),
		),
	}
}

func (e Error) Equal(n error) bool {
	ne, found := n.(Error)
	if !found {
		return false
	}

	return e.Code() == ne.Code()
}
