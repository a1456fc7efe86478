package types

// HTMLResponse is implemented by responses that render an HTML document.
type HTMLResponse interface {
	Response
	HTML() string
}

// HomeRequest is the request for the home page. It carries no data.
type HomeRequest struct {
	BaseRequest
}

// PageResponse is a response containing a complete HTML document.
type PageResponse struct {
	BaseResponse
	Body string
}

var _ HTMLResponse = (*PageResponse)(nil)

// NewPageResponse returns a new page response with the given status code and
// HTML document.
func NewPageResponse(statusCode int, body string) *PageResponse {
	return &PageResponse{
		BaseResponse: BaseResponse{StatusCode: statusCode},
		Body:         body,
	}
}

// HTML returns the HTML document of the page.
func (r *PageResponse) HTML() string {
	return r.Body
}
