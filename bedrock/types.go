package bedrock

// Message roles.
const (
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// Message is a single conversation turn.
type Message struct {
	Role    string         `json:"role"`
	Content []ContentBlock `json:"content"`
}

// ContentBlock is one piece of message content.
type ContentBlock struct {
	Text string `json:"text"`
}

// SystemContentBlock is one piece of system prompt content.
type SystemContentBlock struct {
	Text string `json:"text"`
}

// InferenceConfig bounds model generation. Nil fields are omitted from the
// request and the model's defaults apply.
type InferenceConfig struct {
	MaxTokens     *int32
	Temperature   *float32
	TopP          *float32
	StopSequences []string
}

// TokenUsage reports token consumption for a model invocation.
type TokenUsage struct {
	InputTokens  int32 `json:"inputTokens"`
	OutputTokens int32 `json:"outputTokens"`
	TotalTokens  int32 `json:"totalTokens"`
}

// ConverseMetrics reports service-side timing for a model invocation.
type ConverseMetrics struct {
	LatencyMs int64 `json:"latencyMs"`
}

// FoundationModelSummary describes one available foundation model.
type FoundationModelSummary struct {
	ModelARN                   string         `json:"modelArn"`
	ModelID                    string         `json:"modelId"`
	ModelName                  string         `json:"modelName"`
	ProviderName               string         `json:"providerName"`
	InputModalities            []string       `json:"inputModalities"`
	OutputModalities           []string       `json:"outputModalities"`
	ResponseStreamingSupported bool           `json:"responseStreamingSupported"`
	InferenceTypesSupported    []string       `json:"inferenceTypesSupported"`
	CustomizationsSupported    []string       `json:"customizationsSupported"`
	ModelLifecycle             ModelLifecycle `json:"modelLifecycle"`
}

// ModelLifecycle is the availability state of a foundation model.
type ModelLifecycle struct {
	Status string `json:"status"`
}
