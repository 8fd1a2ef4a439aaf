package bedrock

import (
	"context"
	"net/http"
	"reflect"
	"testing"

	"github.com/google/go-cmp/cmp"
)

const listFoundationModelsBody = `{
	"modelSummaries": [
		{
			"modelArn": "arn:aws:bedrock:us-east-1::foundation-model/anthropic.claude-3-5-sonnet-20240620-v1:0",
			"modelId": "anthropic.claude-3-5-sonnet-20240620-v1:0",
			"modelName": "Claude 3.5 Sonnet",
			"providerName": "Anthropic",
			"inputModalities": ["TEXT", "IMAGE"],
			"outputModalities": ["TEXT"],
			"responseStreamingSupported": true,
			"inferenceTypesSupported": ["ON_DEMAND"],
			"customizationsSupported": [],
			"modelLifecycle": {"status": "ACTIVE"}
		},
		{
			"modelArn": "arn:aws:bedrock:us-east-1::foundation-model/amazon.titan-text-express-v1",
			"modelId": "amazon.titan-text-express-v1",
			"modelName": "Titan Text G1 - Express",
			"providerName": "Amazon",
			"inputModalities": ["TEXT"],
			"outputModalities": ["TEXT"],
			"responseStreamingSupported": true,
			"inferenceTypesSupported": ["ON_DEMAND", "PROVISIONED"],
			"modelLifecycle": {"status": "ACTIVE"}
		}
	]
}`

func TestListFoundationModels(t *testing.T) {
	httpClient := &captureClient{body: listFoundationModelsBody}
	client := newTestClient(t, httpClient)

	out, err := client.ListFoundationModels(context.Background(), nil)
	if err != nil {
		t.Fatalf("expect no error, got %v", err)
	}

	req := httpClient.request
	if expect, actual := http.MethodGet, req.Method; expect != actual {
		t.Errorf("expect method %v, got %v", expect, actual)
	}
	expectURL := "https://bedrock.us-east-1.amazonaws.com/foundation-models"
	if actual := req.URL.String(); expectURL != actual {
		t.Errorf("expect url %v, got %v", expectURL, actual)
	}

	if expect, actual := 2, len(out.ModelSummaries); expect != actual {
		t.Fatalf("expect %v summaries, got %v", expect, actual)
	}
	expect := FoundationModelSummary{
		ModelARN:                   "arn:aws:bedrock:us-east-1::foundation-model/anthropic.claude-3-5-sonnet-20240620-v1:0",
		ModelID:                    "anthropic.claude-3-5-sonnet-20240620-v1:0",
		ModelName:                  "Claude 3.5 Sonnet",
		ProviderName:               "Anthropic",
		InputModalities:            []string{"TEXT", "IMAGE"},
		OutputModalities:           []string{"TEXT"},
		ResponseStreamingSupported: true,
		InferenceTypesSupported:    []string{"ON_DEMAND"},
		CustomizationsSupported:    []string{},
		ModelLifecycle:             ModelLifecycle{Status: "ACTIVE"},
	}
	if diff := cmp.Diff(expect, out.ModelSummaries[0]); diff != "" {
		t.Errorf("summary mismatch (-expect +actual):\n%s", diff)
	}
}

func TestListFoundationModels_Filters(t *testing.T) {
	cases := map[string]struct {
		Input     *ListFoundationModelsInput
		ExpectURL string
	}{
		"nil input": {
			Input:     nil,
			ExpectURL: "https://bedrock.us-east-1.amazonaws.com/foundation-models",
		},
		"no filters": {
			Input:     &ListFoundationModelsInput{},
			ExpectURL: "https://bedrock.us-east-1.amazonaws.com/foundation-models",
		},
		"single filter": {
			Input:     &ListFoundationModelsInput{ByProvider: "anthropic"},
			ExpectURL: "https://bedrock.us-east-1.amazonaws.com/foundation-models?byProvider=anthropic",
		},
		"all filters in fixed order": {
			Input: &ListFoundationModelsInput{
				ByCustomizationType: "FINE_TUNING",
				ByInferenceType:     "ON_DEMAND",
				ByOutputModality:    "TEXT",
				ByProvider:          "Amazon",
			},
			ExpectURL: "https://bedrock.us-east-1.amazonaws.com/foundation-models" +
				"?byCustomizationType=FINE_TUNING&byInferenceType=ON_DEMAND" +
				"&byOutputModality=TEXT&byProvider=Amazon",
		},
		"filter value escaped": {
			Input:     &ListFoundationModelsInput{ByProvider: "ACME AI"},
			ExpectURL: "https://bedrock.us-east-1.amazonaws.com/foundation-models?byProvider=ACME%20AI",
		},
	}

	for name, c := range cases {
		t.Run(name, func(t *testing.T) {
			httpClient := &captureClient{body: `{"modelSummaries":[]}`}
			client := newTestClient(t, httpClient)

			if _, err := client.ListFoundationModels(context.Background(), c.Input); err != nil {
				t.Fatalf("expect no error, got %v", err)
			}
			if actual := httpClient.request.URL.String(); c.ExpectURL != actual {
				t.Errorf("expect url %v, got %v", c.ExpectURL, actual)
			}
		})
	}
}

func TestListFoundationModels_Query(t *testing.T) {
	httpClient := &captureClient{body: listFoundationModelsBody}
	client := newTestClient(t, httpClient)

	out, err := client.ListFoundationModels(context.Background(), nil)
	if err != nil {
		t.Fatalf("expect no error, got %v", err)
	}

	cases := map[string]struct {
		Expression string
		Expect     any
	}{
		"filter by provider": {
			Expression: "modelSummaries[?providerName=='Anthropic'].modelId",
			Expect:     []any{"anthropic.claude-3-5-sonnet-20240620-v1:0"},
		},
		"count": {
			Expression: "length(modelSummaries)",
			Expect:     float64(2),
		},
		"streaming models": {
			Expression: "modelSummaries[?responseStreamingSupported].modelName | sort(@)",
			Expect:     []any{"Claude 3.5 Sonnet", "Titan Text G1 - Express"},
		},
		"no match": {
			Expression: "modelSummaries[?providerName=='Cohere'].modelId",
			Expect:     []any{},
		},
	}

	for name, c := range cases {
		t.Run(name, func(t *testing.T) {
			actual, err := out.Query(c.Expression)
			if err != nil {
				t.Fatalf("expect no error, got %v", err)
			}
			if !reflect.DeepEqual(c.Expect, actual) {
				t.Errorf("expect %v, got %v", c.Expect, actual)
			}
		})
	}
}

func TestListFoundationModels_ControlEndpointOverride(t *testing.T) {
	httpClient := &captureClient{body: `{"modelSummaries":[]}`}
	client := newTestClient(t, httpClient, func(o *Options) {
		o.BaseControlEndpoint = "https://bedrock-control-mock.internal.test"
	})

	if _, err := client.ListFoundationModels(context.Background(), nil); err != nil {
		t.Fatalf("expect no error, got %v", err)
	}

	expectURL := "https://bedrock-control-mock.internal.test/foundation-models"
	if actual := httpClient.request.URL.String(); expectURL != actual {
		t.Errorf("expect url %v, got %v", expectURL, actual)
	}
}
