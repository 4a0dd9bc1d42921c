package pkg

import "fmt"

// AppError is the application-level error carried from use cases to the HTTP
// boundary. Handlers map domain sentinel errors into an AppError and serialize
// it with ToHTTPError.
type AppError struct {
	Code       string
	Message    string
	Err        error
	HTTPStatus int
}

// HTTPError is the JSON error body: a human-readable message plus a stable
// machine code.
type HTTPError struct {
	Error string `json:"error"`
	Code  string `json:"code,omitempty"`
}

func NewDomainError(code, message string, err error, httpStatus int) *AppError {
	return &AppError{Code: code, Message: message, Err: err, HTTPStatus: httpStatus}
}

func NewDomainErrorSimple(code, message string, httpStatus int) *AppError {
	return &AppError{Code: code, Message: message, HTTPStatus: httpStatus}
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

func (e *AppError) ToHTTPError() HTTPError {
	return HTTPError{Error: e.Message, Code: e.Code}
}
