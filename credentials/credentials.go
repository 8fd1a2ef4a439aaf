// Package credentials defines the AWS credential identity used to sign
// requests, and a loader that reads it from the process environment.
package credentials

import "fmt"

// Credentials describes an AWS credential identity.
//
// The value is treated as immutable: APIs in this module copy it and never
// modify it, so a single Credentials value is safe to share across
// goroutines. An empty SessionToken means the identity has no session
// component.
type Credentials struct {
	// AccessKeyID identifies the credential.
	AccessKeyID string

	// SecretAccessKey seeds signing key derivation. It is never transmitted
	// with a request.
	SecretAccessKey string

	// SessionToken authenticates temporary credentials. Optional.
	SessionToken string

	// Region the credential signs for, e.g. "us-west-2".
	Region string
}

// HasSessionToken returns whether the identity carries a session token.
func (c Credentials) HasSessionToken() bool {
	return len(c.SessionToken) > 0
}

// String renders the identity with secret material redacted. Credentials
// routinely end up in printf-style logging; only the access key id and
// region are safe to reveal.
func (c Credentials) String() string {
	return fmt.Sprintf("Credentials{AccessKeyID: %s, SecretAccessKey: REDACTED, SessionToken: REDACTED, Region: %s}",
		c.AccessKeyID, c.Region)
}

// GoString implements fmt.GoStringer so %#v formatting is redacted the same
// way as %v, %+v, and %s.
func (c Credentials) GoString() string {
	return c.String()
}

// MissingCredentialError indicates a required credential component was not
// provided. Name is the missing struct field or environment variable.
type MissingCredentialError struct {
	Name string
}

func (e *MissingCredentialError) Error() string {
	return fmt.Sprintf("missing required credential %s", e.Name)
}
