package v4

import "github.com/awslabs/bedrock-http-auth/internal/crypto"

// DeriveSigningKey runs the four-stage HMAC chain that narrows the secret
// key to a single date, region, and service. The result is request-scoped;
// callers derive it fresh for every signature rather than caching it.
func DeriveSigningKey(secretAccessKey, date, region, service string) []byte {
	key := crypto.HMACSHA256([]byte("AWS4"+secretAccessKey), []byte(date))
	key = crypto.HMACSHA256(key, []byte(region))
	key = crypto.HMACSHA256(key, []byte(service))
	return crypto.HMACSHA256(key, []byte(terminator))
}
