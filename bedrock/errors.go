package bedrock

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
)

// APIError is a service error response.
type APIError struct {
	// StatusCode is the HTTP status of the response.
	StatusCode int

	// Code identifies the error type, e.g. "ValidationException".
	Code string

	// Message is the human-readable error description.
	Message string

	// RequestID correlates the failure with service-side logs.
	RequestID string
}

func (e *APIError) Error() string {
	msg := fmt.Sprintf("api error %s: %s", e.Code, e.Message)
	if e.RequestID != "" {
		msg += fmt.Sprintf(", request id: %s", e.RequestID)
	}
	return msg
}

// deserializeError builds an APIError from a non-2xx response. The error
// code comes from the x-amzn-errortype header when present, otherwise from
// the __type field of the body; both may carry a namespace prefix and a URI
// suffix that are stripped.
func deserializeError(resp *http.Response, body []byte) *APIError {
	apiErr := &APIError{
		StatusCode: resp.StatusCode,
		RequestID:  resp.Header.Get("X-Amzn-Requestid"),
	}

	var errBody struct {
		Type    string `json:"__type"`
		Message string `json:"message"`
	}
	// a body that fails to parse leaves the message empty, the status line
	// still identifies the failure
	_ = json.Unmarshal(body, &errBody)
	apiErr.Message = errBody.Message

	code := resp.Header.Get("X-Amzn-Errortype")
	if code == "" {
		code = errBody.Type
	}
	apiErr.Code = sanitizeErrorCode(code)
	if apiErr.Code == "" {
		apiErr.Code = "UnknownError"
	}
	if apiErr.Message == "" {
		apiErr.Message = http.StatusText(resp.StatusCode)
	}

	return apiErr
}

// sanitizeErrorCode strips the namespace prefix ("com.amazon.service#Code")
// and URI suffix ("Code:http://...") some protocols attach to error codes.
func sanitizeErrorCode(code string) string {
	if idx := strings.IndexByte(code, ':'); idx >= 0 {
		code = code[:idx]
	}
	if idx := strings.IndexByte(code, '#'); idx >= 0 {
		code = code[idx+1:]
	}
	return code
}
