package api

import (
	"encoding/json"
	"errors"
	"net/http"
)

// Response is the wire envelope:
//
//	{"success":true,"data":...,"statusCode":200}
//	{"success":false,"errorCode":"...","errorMessage":"...","statusCode":401}
type Response[T any] struct {
	Success      bool
	Data         T
	ErrorCode    ErrorCode
	ErrorMessage string
	StatusCode   int
}

type successBody[T any] struct {
	Success    bool `json:"success"`
	Data       T    `json:"data"`
	StatusCode int  `json:"statusCode"`
}

type failureBody struct {
	Success      bool      `json:"success"`
	ErrorCode    ErrorCode `json:"errorCode"`
	ErrorMessage string    `json:"errorMessage"`
	StatusCode   int       `json:"statusCode"`
}

func OK[T any](data T, status int) Response[T] {
	return Response[T]{Success: true, Data: data, StatusCode: status}
}

// Fail builds a failure envelope from err. Errors that are not *Error are
// reported as internal.
func Fail[T any](err error) Response[T] {
	var e *Error
	if !errors.As(err, &e) {
		e = &Error{Code: CodeInternal, Message: "Internal error.", StatusCode: http.StatusInternalServerError}
	}
	return Response[T]{ErrorCode: e.Code, ErrorMessage: e.Message, StatusCode: e.StatusCode}
}

// Err returns the envelope's failure as *Error, or nil on success.
func (r Response[T]) Err() error {
	if r.Success {
		return nil
	}
	return &Error{Code: r.ErrorCode, Message: r.ErrorMessage, StatusCode: r.StatusCode}
}

func (r Response[T]) MarshalJSON() ([]byte, error) {
	if r.Success {
		return json.Marshal(successBody[T]{Success: true, Data: r.Data, StatusCode: r.StatusCode})
	}
	return json.Marshal(failureBody{ErrorCode: r.ErrorCode, ErrorMessage: r.ErrorMessage, StatusCode: r.StatusCode})
}

func (r *Response[T]) UnmarshalJSON(b []byte) error {
	var probe struct {
		Success bool `json:"success"`
	}
	if err := json.Unmarshal(b, &probe); err != nil {
		return err
	}
	if probe.Success {
		var s successBody[T]
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*r = Response[T]{Success: true, Data: s.Data, StatusCode: s.StatusCode}
		return nil
	}
	var f failureBody
	if err := json.Unmarshal(b, &f); err != nil {
		return err
	}
	*r = Response[T]{ErrorCode: f.ErrorCode, ErrorMessage: f.ErrorMessage, StatusCode: f.StatusCode}
	return nil
}
