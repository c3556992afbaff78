package brigade

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
)

// Static errors for err113 compliance.
var (
	// ErrConfiguration is wrapped by every error that prevents a client from
	// being constructed.
	ErrConfiguration = errors.New("invalid client configuration")
	// ErrTransport is wrapped by network, TLS and cancellation failures.
	ErrTransport = errors.New("transport error")
	// ErrDecode is wrapped when a successful response body cannot be decoded.
	ErrDecode = errors.New("decoding response")

	ErrConfigRequired     = errors.New("config is required")
	ErrAPIAddressRequired = errors.New("API address is required")
	ErrIDRequired         = errors.New("resource id is required")
	ErrResourceRequired   = errors.New("resource is required")
	ErrPasswordRequired   = errors.New("password is required")
	ErrInvalidAPIAddress  = errors.New("API address must be an absolute http or https URL")
	ErrInvalidRootCAs     = errors.New("no certificates could be parsed from the CA bundle")
)

// ResponseError is returned for every response with a non-2xx status. The
// body is decoded on a best-effort basis; Body always holds the raw bytes.
type ResponseError struct {
	StatusCode int `json:"-" yaml:"-"`

	Kind    string   `json:"kind,omitempty"    yaml:"kind,omitempty"`
	Type    string   `json:"type,omitempty"    yaml:"type,omitempty"`
	ID      string   `json:"id,omitempty"      yaml:"id,omitempty"`
	Reason  string   `json:"reason,omitempty"  yaml:"reason,omitempty"`
	Message string   `json:"error,omitempty"   yaml:"error,omitempty"`
	Details []string `json:"details,omitempty" yaml:"details,omitempty"`

	Body []byte `json:"-" yaml:"-"`
}

// Error implements the error interface.
func (e *ResponseError) Error() string {
	var detail string

	switch {
	case e.Reason != "":
		detail = e.Reason
	case e.Message != "":
		detail = e.Message
	case e.Kind == "NotFound" && e.Type != "":
		detail = fmt.Sprintf("%s %q not found", e.Type, e.ID)
	default:
		detail = strings.TrimSpace(string(e.Body))
	}

	if len(e.Details) > 0 {
		detail = fmt.Sprintf("%s: %s", detail, strings.Join(e.Details, "; "))
	}

	if detail == "" {
		return fmt.Sprintf("%d %s", e.StatusCode, http.StatusText(e.StatusCode))
	}

	return fmt.Sprintf("%d %s: %s", e.StatusCode, http.StatusText(e.StatusCode), detail)
}

// ParseResponseError builds a ResponseError from a status code and raw body.
// A body that is not a JSON object is kept verbatim in Body.
func ParseResponseError(statusCode int, body []byte) *ResponseError {
	respErr := &ResponseError{}

	err := json.Unmarshal(body, respErr)
	if err != nil {
		respErr = &ResponseError{}
	}

	respErr.StatusCode = statusCode
	respErr.Body = body

	return respErr
}

// StatusCode returns the HTTP status carried by err, or 0 if err is not a
// ResponseError.
func StatusCode(err error) int {
	respErr := &ResponseError{}
	if errors.As(err, &respErr) {
		return respErr.StatusCode
	}

	return 0
}

// IsNotFound checks if the error is a not found error.
func IsNotFound(err error) bool {
	return StatusCode(err) == http.StatusNotFound
}

// IsUnauthorized checks if the server rejected the credentials.
func IsUnauthorized(err error) bool {
	return StatusCode(err) == http.StatusUnauthorized
}

// IsForbidden checks if the credentials lack permission for the operation.
func IsForbidden(err error) bool {
	return StatusCode(err) == http.StatusForbidden
}

// IsConflict checks if the operation conflicted with an existing resource.
func IsConflict(err error) bool {
	return StatusCode(err) == http.StatusConflict
}
