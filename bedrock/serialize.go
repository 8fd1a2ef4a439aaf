package bedrock

import (
	"github.com/awslabs/bedrock-http-auth/encoding/json"
)

// serializeConverseInput renders the Converse request body. Field order is
// fixed by construction, so the wire bytes are deterministic.
func serializeConverseInput(in *ConverseInput) []byte {
	encoder := json.NewEncoder()

	root := encoder.Object()
	messages := root.Key("messages").Array()
	for _, msg := range in.Messages {
		serializeMessage(messages.Value(), msg)
	}
	messages.Close()

	if len(in.System) > 0 {
		system := root.Key("system").Array()
		for _, block := range in.System {
			blockObj := system.Value().Object()
			blockObj.Key("text").String(block.Text)
			blockObj.Close()
		}
		system.Close()
	}

	if in.InferenceConfig != nil {
		serializeInferenceConfig(root.Key("inferenceConfig"), in.InferenceConfig)
	}
	root.Close()

	return encoder.Bytes()
}

func serializeMessage(v json.Value, msg Message) {
	obj := v.Object()
	obj.Key("role").String(msg.Role)

	content := obj.Key("content").Array()
	for _, block := range msg.Content {
		blockObj := content.Value().Object()
		blockObj.Key("text").String(block.Text)
		blockObj.Close()
	}
	content.Close()

	obj.Close()
}

func serializeInferenceConfig(v json.Value, cfg *InferenceConfig) {
	obj := v.Object()
	if cfg.MaxTokens != nil {
		obj.Key("maxTokens").Integer(*cfg.MaxTokens)
	}
	if cfg.Temperature != nil {
		obj.Key("temperature").Float(*cfg.Temperature)
	}
	if cfg.TopP != nil {
		obj.Key("topP").Float(*cfg.TopP)
	}
	if len(cfg.StopSequences) > 0 {
		stop := obj.Key("stopSequences").Array()
		for _, s := range cfg.StopSequences {
			stop.Value().String(s)
		}
		stop.Close()
	}
	obj.Close()
}
