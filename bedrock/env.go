package bedrock

import (
	"os"

	"github.com/awslabs/bedrock-http-auth/credentials"
)

// EnvBearerToken is the environment variable holding a Bedrock API key for
// bearer token authentication.
const EnvBearerToken = "AWS_BEARER_TOKEN_BEDROCK"

// BearerTokenFromEnv reads the Bedrock bearer token from the environment.
// It returns a *credentials.MissingCredentialError if the variable is
// unset or empty.
func BearerTokenFromEnv() (string, error) {
	token := os.Getenv(EnvBearerToken)
	if token == "" {
		return "", &credentials.MissingCredentialError{Name: EnvBearerToken}
	}
	return token, nil
}
