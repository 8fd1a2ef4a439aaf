package uri

import "strings"

// URL is the minimal decomposition of a request URL that signing needs.
type URL struct {
	Host string
	Path string

	// Query is the raw query text. HasQuery distinguishes a URL ending in a
	// bare "?" from one with no query at all; both leave Query empty.
	Query    string
	HasQuery bool
}

// Parse splits rawURL into host, path, and query. It is deliberately
// permissive: input that is not a well-formed URL is split on a best-effort
// basis rather than rejected, and whatever results is what gets signed.
func Parse(rawURL string) URL {
	rest := rawURL
	for _, scheme := range []string{"https://", "http://"} {
		if strings.HasPrefix(rest, scheme) {
			rest = rest[len(scheme):]
			break
		}
	}

	var u URL
	if i := strings.IndexByte(rest, '?'); i >= 0 {
		u.Query = rest[i+1:]
		u.HasQuery = true
		rest = rest[:i]
	}

	if i := strings.IndexByte(rest, '/'); i >= 0 {
		u.Host = rest[:i]
		u.Path = rest[i:]
	} else {
		u.Host = rest
		u.Path = "/"
	}

	return u
}
