package core

import (
	"maps"
	"net/http"
	"slices"
)

// Params maps request parameter names to their string values.
type Params map[string]string

// SortedKeys returns the parameter names in lexicographic order.
func (p Params) SortedKeys() []string {
	return slices.Sorted(maps.Keys(p))
}

// Request describes a single call: GET for reads, POST for writes.
type Request struct {
	Method string `json:"method"`
	Path   string `json:"path"`
	Params Params `json:"params,omitempty"`
}

func NewRequest(method, path string) *Request {
	return &Request{
		Method: method,
		Path:   path,
		Params: make(Params),
	}
}

func (r *Request) Set(key, value string) *Request {
	if r.Params == nil {
		r.Params = make(Params)
	}
	r.Params[key] = value
	return r
}

// SetParams copies params into the request, overwriting existing keys.
func (r *Request) SetParams(params Params) *Request {
	if r.Params == nil {
		r.Params = make(Params)
	}
	maps.Copy(r.Params, params)
	return r
}

// IsWrite reports whether parameters travel in a JSON body rather than the query string.
func (r *Request) IsWrite() bool {
	return r.Method == http.MethodPost
}

// Validate rejects methods other than GET and POST.
func (r *Request) Validate() error {
	switch r.Method {
	case http.MethodGet, http.MethodPost:
		return nil
	default:
		return NewExchangeError(ErrorTypeBadRequest, ErrCodeUnsupported,
			"unsupported http method").WithRequest(r.Method, r.Path)
	}
}
