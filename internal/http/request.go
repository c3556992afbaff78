package http

import (
	"net/http"
	"net/url"

	"github.com/fivetwenty-io/brigade-client/internal/constants"
)

// Methods used by the platform API.
const (
	MethodGet    = http.MethodGet
	MethodPost   = http.MethodPost
	MethodPut    = http.MethodPut
	MethodDelete = http.MethodDelete
)

// Request represents an HTTP request.
type Request struct {
	Method  string
	Path    string
	Query   url.Values
	Body    interface{}
	Headers map[string]string

	basicAuth *basicAuth
}

type basicAuth struct {
	username string
	password string
}

// Response represents an HTTP response.
type Response struct {
	StatusCode int
	Header     map[string][]string
	Body       []byte
}

// WithQuery appends values for key to the query string.
func (r *Request) WithQuery(key string, values ...string) *Request {
	if r.Query == nil {
		r.Query = url.Values{}
	}

	for _, value := range values {
		r.Query.Add(key, value)
	}

	return r
}

// WithValues merges values into the query string.
func (r *Request) WithValues(values url.Values) *Request {
	for key, vals := range values {
		r.WithQuery(key, vals...)
	}

	return r
}

// WithJSONBody sets the value to be encoded as the JSON request body.
func (r *Request) WithJSONBody(body interface{}) *Request {
	r.Body = body

	return r
}

// WithBasicAuth replaces any bearer credential with basic credentials.
func (r *Request) WithBasicAuth(username, password string) *Request {
	if r.Headers != nil {
		delete(r.Headers, constants.HeaderAuthorization)
	}

	r.basicAuth = &basicAuth{
		username: username,
		password: password,
	}

	return r
}

// WithHeader sets a request header.
func (r *Request) WithHeader(key, value string) *Request {
	if r.Headers == nil {
		r.Headers = map[string]string{}
	}

	r.Headers[key] = value

	return r
}
