package credentials

import "os"

// Environment variables read by FromEnv.
const (
	EnvAccessKeyID     = "AWS_ACCESS_KEY_ID"
	EnvSecretAccessKey = "AWS_SECRET_ACCESS_KEY"
	EnvSessionToken    = "AWS_SESSION_TOKEN"
	EnvRegion          = "AWS_REGION"
)

// DefaultRegion is used when AWS_REGION is unset or empty.
const DefaultRegion = "us-east-1"

// FromEnv loads credentials from the standard AWS environment variables.
// AWS_ACCESS_KEY_ID and AWS_SECRET_ACCESS_KEY are required,
// AWS_SESSION_TOKEN is optional, and AWS_REGION falls back to DefaultRegion.
//
// This is the only environment access in the module. The signing path works
// from explicit values so callers control exactly which identity signs.
func FromEnv() (Credentials, error) {
	akid := os.Getenv(EnvAccessKeyID)
	if akid == "" {
		return Credentials{}, &MissingCredentialError{Name: EnvAccessKeyID}
	}

	secret := os.Getenv(EnvSecretAccessKey)
	if secret == "" {
		return Credentials{}, &MissingCredentialError{Name: EnvSecretAccessKey}
	}

	region := os.Getenv(EnvRegion)
	if region == "" {
		region = DefaultRegion
	}

	return Credentials{
		AccessKeyID:     akid,
		SecretAccessKey: secret,
		SessionToken:    os.Getenv(EnvSessionToken),
		Region:          region,
	}, nil
}
