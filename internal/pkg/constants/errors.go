package constants

import "net/http"

// CodedError is a domain error carrying the HTTP status the API should
// answer with. The echo error handler unwraps to the first CodedError in
// the chain.
type CodedError struct {
	code int
	msg  string
}

func NewCodedError(code int, msg string) *CodedError {
	return &CodedError{code: code, msg: msg}
}

func (e *CodedError) Error() string {
	return e.msg
}

func (e *CodedError) Code() int {
	return e.code
}

var (
	ErrUnauthorized     = NewCodedError(http.StatusUnauthorized, "unauthorized")
	ErrMissingAuthToken = NewCodedError(http.StatusUnauthorized, "missing auth token")
	ErrTenantNotFound   = NewCodedError(http.StatusNotFound, "tenant not found")
	ErrDBNotFound       = NewCodedError(http.StatusNotFound, "not found")
	ErrBadRequest       = NewCodedError(http.StatusBadRequest, "bad request")
)
