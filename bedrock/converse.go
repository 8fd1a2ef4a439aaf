package bedrock

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/awslabs/bedrock-http-auth/internal/uri"
	"github.com/awslabs/bedrock-http-auth/sigv4"
)

// ConverseInput is the input to Converse and ConverseStream.
type ConverseInput struct {
	// ModelID names the model to invoke, e.g.
	// "anthropic.claude-3-5-sonnet-20240620-v1:0". Required.
	ModelID string

	// Messages is the conversation so far, oldest first. Required.
	Messages []Message

	// System is the system prompt. Optional.
	System []SystemContentBlock

	// InferenceConfig bounds generation. Optional.
	InferenceConfig *InferenceConfig
}

// ConverseOutput is a model's complete reply.
type ConverseOutput struct {
	Message    Message
	StopReason string
	Usage      TokenUsage
	Metrics    ConverseMetrics
}

// Converse sends a conversation to a model and returns its reply.
func (c *Client) Converse(ctx context.Context, in *ConverseInput) (*ConverseOutput, error) {
	if in.ModelID == "" {
		return nil, fmt.Errorf("model id is required")
	}

	url := c.runtimeEndpoint() + "/model/" + uri.EscapePath(in.ModelID, true) + "/converse"
	payload := serializeConverseInput(in)
	headers := sigv4.Headers{"content-type": contentTypeJSON}

	body, err := c.invoke(ctx, "Converse", http.MethodPost, url, headers, payload)
	if err != nil {
		return nil, err
	}

	var respBody struct {
		Output struct {
			Message Message `json:"message"`
		} `json:"output"`
		StopReason string          `json:"stopReason"`
		Usage      TokenUsage      `json:"usage"`
		Metrics    ConverseMetrics `json:"metrics"`
	}
	if err := json.Unmarshal(body, &respBody); err != nil {
		return nil, fmt.Errorf("deserialize response: %w", err)
	}

	return &ConverseOutput{
		Message:    respBody.Output.Message,
		StopReason: respBody.StopReason,
		Usage:      respBody.Usage,
		Metrics:    respBody.Metrics,
	}, nil
}
