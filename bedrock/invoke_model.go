package bedrock

import (
	"context"
	"fmt"
	"net/http"

	"github.com/awslabs/bedrock-http-auth/internal/uri"
	"github.com/awslabs/bedrock-http-auth/sigv4"
)

// InvokeModelInput is the input to InvokeModel.
type InvokeModelInput struct {
	// ModelID names the model to invoke. Required.
	ModelID string

	// Body is the request payload in the model's native format. Required.
	Body []byte

	// ContentType is the MIME type of Body. Defaults to application/json.
	ContentType string

	// Accept is the desired MIME type of the response. Defaults to
	// application/json.
	Accept string
}

// InvokeModelOutput is the raw response from InvokeModel.
type InvokeModelOutput struct {
	// Body is the response payload in the model's native format.
	Body []byte
}

// InvokeModel sends a request in a model's native format and returns the
// model's native response. Use Converse for the model-independent API.
func (c *Client) InvokeModel(ctx context.Context, in *InvokeModelInput) (*InvokeModelOutput, error) {
	if in.ModelID == "" {
		return nil, fmt.Errorf("model id is required")
	}
	if len(in.Body) == 0 {
		return nil, fmt.Errorf("model request body is required")
	}

	contentType := in.ContentType
	if contentType == "" {
		contentType = contentTypeJSON
	}
	accept := in.Accept
	if accept == "" {
		accept = contentTypeJSON
	}

	url := c.runtimeEndpoint() + "/model/" + uri.EscapePath(in.ModelID, true) + "/invoke"
	headers := sigv4.Headers{
		"content-type": contentType,
		"accept":       accept,
	}

	body, err := c.invoke(ctx, "InvokeModel", http.MethodPost, url, headers, in.Body)
	if err != nil {
		return nil, err
	}
	return &InvokeModelOutput{Body: body}, nil
}
