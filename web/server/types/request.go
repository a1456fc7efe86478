package types

import "net/http"

// Request defines the interface for HTTP request wrappers.
type Request interface {
	SetHTTPRequest(*http.Request)
	GetHTTPRequest() *http.Request
}

// BaseRequest provides a base implementation for HTTP requests.
type BaseRequest struct {
	*http.Request
}

var _ Request = (*BaseRequest)(nil)

// GetHTTPRequest returns the underlying HTTP request.
func (r *BaseRequest) GetHTTPRequest() *http.Request {
	return r.Request
}

// SetHTTPRequest sets the underlying HTTP request.
func (r *BaseRequest) SetHTTPRequest(req *http.Request) {
	r.Request = req
}
