package pkg

import "fmt"

// AppError is the error envelope returned by the HTTP layer.
type AppError struct {
	Code       string `json:"code"`
	Message    string `json:"message"`
	HTTPStatus int    `json:"-"`
	Err        error  `json:"-"`
}

// HTTPError is the JSON body written for an AppError.
type HTTPError struct {
	Error   string `json:"error"`
	Message string `json:"message"`
	Details string `json:"details,omitempty"`
}

func NewDomainError(code, message string, err error, status int) *AppError {
	return &AppError{Code: code, Message: message, HTTPStatus: status, Err: err}
}

func NewDomainErrorSimple(code, message string, status int) *AppError {
	return &AppError{Code: code, Message: message, HTTPStatus: status}
}

// WithDetails returns a copy of e whose body also carries err's message.
// Used for validation failures where the reason is safe to show.
func (e *AppError) WithDetails(err error) *AppError {
	cp := *e
	cp.Err = err
	return &cp
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// ToHTTPError renders the response body. Internal errors never leak their
// cause.
func (e *AppError) ToHTTPError() HTTPError {
	out := HTTPError{Error: e.Code, Message: e.Message}
	if e.Err != nil && e.HTTPStatus < 500 {
		out.Details = e.Err.Error()
	}
	return out
}
