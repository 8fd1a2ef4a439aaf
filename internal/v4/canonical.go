// Package v4 implements request canonicalization and key derivation for
// Signature Version 4. Everything here is a pure function over bytes the
// caller already holds; nothing can fail.
package v4

import (
	"sort"
	"strings"

	"github.com/awslabs/bedrock-http-auth/internal/uri"
)

// CanonicalURI returns the canonical URI component for a parsed path: "/"
// when the path is empty, otherwise the path percent-encoded with separators
// preserved. A path already carrying percent escapes is encoded again, which
// is the double-escaped form non-S3 endpoints verify against.
func CanonicalURI(path string) string {
	if path == "" {
		return "/"
	}
	return uri.EscapePath(path, false)
}

// CanonicalQuery canonicalizes a raw query string. Each pair is split on its
// first "=" (a missing value becomes the empty string), keys and values are
// percent-encoded independently, and pairs are ordered by encoded key with
// the encoded value as tiebreak. The input is treated as raw text: a query
// already carrying percent escapes is escaped again, same as paths.
func CanonicalQuery(query string, hasQuery bool) string {
	if !hasQuery {
		return ""
	}

	rawPairs := strings.Split(query, "&")
	pairs := make([][2]string, len(rawPairs))
	for i, pair := range rawPairs {
		key, value, _ := strings.Cut(pair, "=")
		pairs[i] = [2]string{
			uri.EscapePath(key, true),
			uri.EscapePath(value, true),
		}
	}

	sort.Slice(pairs, func(i, j int) bool {
		if pairs[i][0] != pairs[j][0] {
			return pairs[i][0] < pairs[j][0]
		}
		return pairs[i][1] < pairs[j][1]
	})

	parts := make([]string, len(pairs))
	for i, kv := range pairs {
		parts[i] = kv[0] + "=" + kv[1]
	}
	return strings.Join(parts, "&")
}

// CanonicalHeaders renders the canonical headers block and the matching
// signed-headers list for a merged header set. Map keys are required to be
// lowercase already; the block orders them in ascending byte order and trims
// surrounding whitespace from each value.
func CanonicalHeaders(headers map[string]string) (canon, signed string) {
	names := make([]string, 0, len(headers))
	for name := range headers {
		names = append(names, name)
	}
	sort.Strings(names)

	var block strings.Builder
	for _, name := range names {
		block.WriteString(name)
		block.WriteByte(':')
		block.WriteString(strings.TrimSpace(headers[name]))
		block.WriteByte('\n')
	}

	return block.String(), strings.Join(names, ";")
}

// BuildCanonicalRequest joins the canonical components with newlines. The
// headers block carries its own trailing newline, which yields the blank
// line separating it from the signed-headers list.
func BuildCanonicalRequest(method, canonicalURI, canonicalQuery, canonicalHeaders, signedHeaders, payloadHash string) string {
	return strings.Join([]string{
		method,
		canonicalURI,
		canonicalQuery,
		canonicalHeaders,
		signedHeaders,
		payloadHash,
	}, "\n")
}
