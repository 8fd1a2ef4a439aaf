package sigv4

import (
	"net/http"
	"strings"
)

// Headers is a header set keyed by lowercase name, one value per name.
// Header names in HTTP are case-insensitive; storing them lowercase makes
// the set directly usable as signing input.
type Headers map[string]string

// Set stores value under the lowercase form of name.
func (h Headers) Set(name, value string) {
	h[strings.ToLower(name)] = value
}

// Get returns the value stored under the lowercase form of name, or the
// empty string when absent.
func (h Headers) Get(name string) string {
	return h[strings.ToLower(name)]
}

// Clone returns an independent copy of the set.
func (h Headers) Clone() Headers {
	out := make(Headers, len(h))
	for name, value := range h {
		out[name] = value
	}
	return out
}

// Apply writes the set onto an HTTP request. The host entry sets
// Request.Host, which net/http transmits as the Host header; all other
// entries go to Request.Header.
func (h Headers) Apply(r *http.Request) {
	for name, value := range h {
		if name == "host" {
			r.Host = value
			continue
		}
		r.Header.Set(name, value)
	}
}
