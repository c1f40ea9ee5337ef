package bybit

import (
	"net/http"

	"github.com/bytedance/sonic"
	"resty.dev/v3"
)

// Response is the raw reply from the exchange. Non-2xx statuses are delivered
// as responses too; callers decide what they mean.
type Response struct {
	// StatusCode is the HTTP status code returned by the server.
	StatusCode int

	// Status is the status line text, e.g. "200 OK".
	Status string

	// Body contains the raw response body bytes.
	Body []byte

	// Headers holds every response header value, including repeated ones.
	Headers http.Header
}

func newResponse(resp *resty.Response) *Response {
	return &Response{
		StatusCode: resp.StatusCode(),
		Status:     resp.Status(),
		Body:       resp.Bytes(),
		Headers:    resp.Header().Clone(),
	}
}

// IsSuccess returns true if the response status code indicates success (2xx).
func (r *Response) IsSuccess() bool {
	return r.StatusCode >= 200 && r.StatusCode < 300
}

// IsError returns true if the response status code indicates an error (4xx or 5xx).
func (r *Response) IsError() bool {
	return r.StatusCode >= http.StatusBadRequest
}

// Unmarshal parses the response body into v using sonic.
func (r *Response) Unmarshal(v any) error {
	return sonic.Unmarshal(r.Body, v)
}
