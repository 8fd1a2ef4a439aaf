package bedrock

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/jmespath/go-jmespath"

	"github.com/awslabs/bedrock-http-auth/internal/uri"
	"github.com/awslabs/bedrock-http-auth/sigv4"
)

// ListFoundationModelsInput is the input to ListFoundationModels. All
// filters are optional; zero values are omitted from the request.
type ListFoundationModelsInput struct {
	// ByCustomizationType filters by customization type, e.g. "FINE_TUNING".
	ByCustomizationType string

	// ByInferenceType filters by inference type, e.g. "ON_DEMAND".
	ByInferenceType string

	// ByOutputModality filters by output modality, e.g. "TEXT".
	ByOutputModality string

	// ByProvider filters by model provider, e.g. "anthropic".
	ByProvider string
}

// ListFoundationModelsOutput is the catalog of available foundation models.
type ListFoundationModelsOutput struct {
	ModelSummaries []FoundationModelSummary

	document any
}

// Query evaluates a JMESPath expression against the raw response document
// and returns the result. For example,
//
//	out.Query("modelSummaries[?providerName=='Anthropic'].modelId")
//
// returns the model ids of all Anthropic models in the listing.
func (o *ListFoundationModelsOutput) Query(expression string) (any, error) {
	return jmespath.Search(expression, o.document)
}

// ListFoundationModels returns the foundation models available in the
// client's region, optionally narrowed by the input's filters. A nil input
// lists everything.
func (c *Client) ListFoundationModels(ctx context.Context, in *ListFoundationModelsInput) (*ListFoundationModelsOutput, error) {
	if in == nil {
		in = &ListFoundationModelsInput{}
	}

	var query []string
	if in.ByCustomizationType != "" {
		query = append(query, "byCustomizationType="+uri.EscapePath(in.ByCustomizationType, true))
	}
	if in.ByInferenceType != "" {
		query = append(query, "byInferenceType="+uri.EscapePath(in.ByInferenceType, true))
	}
	if in.ByOutputModality != "" {
		query = append(query, "byOutputModality="+uri.EscapePath(in.ByOutputModality, true))
	}
	if in.ByProvider != "" {
		query = append(query, "byProvider="+uri.EscapePath(in.ByProvider, true))
	}

	url := c.controlEndpoint() + "/foundation-models"
	if len(query) > 0 {
		url += "?" + strings.Join(query, "&")
	}

	body, err := c.invoke(ctx, "ListFoundationModels", http.MethodGet, url, sigv4.Headers{}, nil)
	if err != nil {
		return nil, err
	}

	var respBody struct {
		ModelSummaries []FoundationModelSummary `json:"modelSummaries"`
	}
	if err := json.Unmarshal(body, &respBody); err != nil {
		return nil, fmt.Errorf("deserialize response: %w", err)
	}

	var document any
	if err := json.Unmarshal(body, &document); err != nil {
		return nil, fmt.Errorf("deserialize response: %w", err)
	}

	return &ListFoundationModelsOutput{
		ModelSummaries: respBody.ModelSummaries,
		document:       document,
	}, nil
}
