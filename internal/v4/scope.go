package v4

import (
	"encoding/hex"
	"fmt"
	"strings"

	"github.com/awslabs/bedrock-http-auth/internal/crypto"
)

const (
	// Algorithm names the signing algorithm in the string-to-sign and the
	// Authorization header.
	Algorithm = "AWS4-HMAC-SHA256"

	terminator = "aws4_request"
)

// CredentialScope renders the scope that binds a signature to a date,
// region, and service.
func CredentialScope(date, region, service string) string {
	return strings.Join([]string{date, region, service, terminator}, "/")
}

// StringToSign assembles the final value handed to the signing key:
// algorithm, timestamp, scope, and the digest of the canonical request.
func StringToSign(amzDate, scope, canonicalRequest string) string {
	return strings.Join([]string{
		Algorithm,
		amzDate,
		scope,
		hex.EncodeToString(crypto.SHA256([]byte(canonicalRequest))),
	}, "\n")
}

// BuildAuthorization renders the Authorization header value.
func BuildAuthorization(accessKeyID, scope, signedHeaders, signature string) string {
	return fmt.Sprintf("%s Credential=%s/%s, SignedHeaders=%s, Signature=%s",
		Algorithm, accessKeyID, scope, signedHeaders, signature)
}
