// Package sigv4 signs HTTP requests with AWS Signature Version 4.
//
// The signer is deliberately self-contained. Hashing, HMAC, timestamp
// formatting, URL parsing, and canonicalization are implemented inside this
// module rather than delegated to platform facilities, so a given request
// and clock reading produce the same signature on every build.
//
// A Signer holds only immutable configuration. SignRequest reads the clock,
// derives the signing key, and computes the signature from scratch on every
// call, so a single Signer is safe for concurrent use.
package sigv4

import (
	"encoding/hex"
	"strings"
	"time"

	"github.com/awslabs/bedrock-http-auth/credentials"
	"github.com/awslabs/bedrock-http-auth/internal/crypto"
	"github.com/awslabs/bedrock-http-auth/internal/date"
	"github.com/awslabs/bedrock-http-auth/internal/uri"
	v4 "github.com/awslabs/bedrock-http-auth/internal/v4"
)

// DefaultService is the credential scope service name used when
// SignerOptions.Service is unset.
const DefaultService = "bedrock"

// SignerOption applies configuration to a Signer under construction.
type SignerOption func(*SignerOptions)

// SignerOptions configures a Signer.
type SignerOptions struct {
	// Service is the signing name baked into the credential scope.
	// Defaults to DefaultService.
	Service string

	// Time returns the signing time. Defaults to the system clock. A zero
	// or pre-epoch reading fails the signing call with ClockError.
	Time func() time.Time
}

// WithService overrides the credential scope service name.
func WithService(service string) SignerOption {
	return func(o *SignerOptions) {
		o.Service = service
	}
}

// WithTime overrides the signing clock. Tests use this to pin signatures.
func WithTime(fn func() time.Time) SignerOption {
	return func(o *SignerOptions) {
		o.Time = fn
	}
}

// Signer signs HTTP requests for a single credential identity.
type Signer struct {
	credentials credentials.Credentials
	options     SignerOptions
}

// New returns a Signer for the given credentials. AccessKeyID,
// SecretAccessKey, and Region are required; New returns
// *credentials.MissingCredentialError naming the first missing field.
func New(creds credentials.Credentials, optFns ...SignerOption) (*Signer, error) {
	if creds.AccessKeyID == "" {
		return nil, &credentials.MissingCredentialError{Name: "AccessKeyID"}
	}
	if creds.SecretAccessKey == "" {
		return nil, &credentials.MissingCredentialError{Name: "SecretAccessKey"}
	}
	if creds.Region == "" {
		return nil, &credentials.MissingCredentialError{Name: "Region"}
	}

	options := SignerOptions{
		Service: DefaultService,
		Time:    time.Now,
	}
	for _, fn := range optFns {
		fn(&options)
	}
	if options.Service == "" {
		options.Service = DefaultService
	}
	if options.Time == nil {
		options.Time = time.Now
	}

	return &Signer{credentials: creds, options: options}, nil
}

// SignRequestInput is the request material covered by a signature.
type SignRequestInput struct {
	// Method is the HTTP method, used exactly as given.
	Method string

	// URL is the absolute request URL.
	URL string

	// Headers are caller headers to include in the signed set. Optional.
	Headers Headers

	// Payload is the full request body. nil signs like an empty body.
	Payload []byte
}

// SignRequest computes a signature over the input and returns the complete
// header set to transmit: the caller's headers plus host, x-amz-date,
// x-amz-content-sha256, x-amz-security-token when the identity carries one,
// and authorization.
//
// host and x-amz-date are always overwritten; caller-supplied values for
// them are discarded so the signature can only ever cover the real target
// and the real signing time. Header values are whitespace-trimmed in the
// canonical form only; the returned set preserves the caller's bytes.
func (s *Signer) SignRequest(in *SignRequestInput) (Headers, error) {
	now := s.options.Time()
	if now.IsZero() {
		return nil, &ClockError{}
	}
	unix := now.Unix()
	if unix < 0 {
		return nil, &ClockError{Time: now}
	}

	amzDate := date.FormatAmzDate(uint64(unix))
	shortDate := amzDate[:8]

	u := uri.Parse(in.URL)

	headers := make(Headers, len(in.Headers)+4)
	for name, value := range in.Headers {
		headers[strings.ToLower(name)] = value
	}
	headers["host"] = u.Host
	headers["x-amz-date"] = amzDate
	if s.credentials.HasSessionToken() {
		headers["x-amz-security-token"] = s.credentials.SessionToken
	}

	payloadHash := hex.EncodeToString(crypto.SHA256(in.Payload))
	headers["x-amz-content-sha256"] = payloadHash

	canonHeaders, signedHeaders := v4.CanonicalHeaders(headers)
	canonicalRequest := v4.BuildCanonicalRequest(
		in.Method,
		v4.CanonicalURI(u.Path),
		v4.CanonicalQuery(u.Query, u.HasQuery),
		canonHeaders,
		signedHeaders,
		payloadHash,
	)

	scope := v4.CredentialScope(shortDate, s.credentials.Region, s.options.Service)
	stringToSign := v4.StringToSign(amzDate, scope, canonicalRequest)

	key := v4.DeriveSigningKey(s.credentials.SecretAccessKey, shortDate, s.credentials.Region, s.options.Service)
	signature := hex.EncodeToString(crypto.HMACSHA256(key, []byte(stringToSign)))

	headers["authorization"] = v4.BuildAuthorization(s.credentials.AccessKeyID, scope, signedHeaders, signature)
	return headers, nil
}
