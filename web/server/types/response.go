package types

import "net/http"

// Response defines the interface for HTTP response wrappers.
type Response interface {
	GetStatusCode() int
	SetStatusCode(int)
	GetHeader() http.Header
	SetHeader(http.Header)
	GetError() error
	SetError(error)
}

// BaseResponse provides a base implementation for HTTP responses.
type BaseResponse struct {
	StatusCode int
	header     http.Header
	err        error
}

var _ Response = (*BaseResponse)(nil)

// GetStatusCode returns the HTTP status code for the response. A zero status
// code is reported as 200 OK.
func (r *BaseResponse) GetStatusCode() int {
	if r.StatusCode == 0 {
		return http.StatusOK
	}
	return r.StatusCode
}

// SetStatusCode sets the HTTP status code for the response.
func (r *BaseResponse) SetStatusCode(code int) {
	r.StatusCode = code
}

// GetHeader returns the response headers.
func (r *BaseResponse) GetHeader() http.Header {
	if r.header == nil {
		r.header = http.Header{}
	}
	return r.header
}

// SetHeader sets the response headers.
func (r *BaseResponse) SetHeader(h http.Header) {
	r.header = h
}

// GetError returns the error associated with the response, if any.
func (r *BaseResponse) GetError() error {
	return r.err
}

// SetError sets the error associated with the response.
func (r *BaseResponse) SetError(err error) {
	r.err = err
}
