package bedrock

import (
	"bytes"
	"context"
	"net/http"
	"testing"
)

func TestInvokeModel(t *testing.T) {
	httpClient := &captureClient{body: `{"results":[{"outputText":"hi there"}]}`}
	client := newTestClient(t, httpClient)

	out, err := client.InvokeModel(context.Background(), &InvokeModelInput{
		ModelID: "amazon.titan-text-express-v1",
		Body:    []byte(`{"inputText":"hi"}`),
	})
	if err != nil {
		t.Fatalf("expect no error, got %v", err)
	}

	req := httpClient.request
	if expect, actual := http.MethodPost, req.Method; expect != actual {
		t.Errorf("expect method %v, got %v", expect, actual)
	}
	expectURL := "https://bedrock-runtime.us-east-1.amazonaws.com/model/amazon.titan-text-express-v1/invoke"
	if actual := req.URL.String(); expectURL != actual {
		t.Errorf("expect url %v, got %v", expectURL, actual)
	}
	if expect, actual := "application/json", req.Header.Get("Content-Type"); expect != actual {
		t.Errorf("expect content-type %v, got %v", expect, actual)
	}
	if expect, actual := "application/json", req.Header.Get("Accept"); expect != actual {
		t.Errorf("expect accept %v, got %v", expect, actual)
	}
	if expect, actual := []byte(`{"inputText":"hi"}`), httpClient.payload; !bytes.Equal(expect, actual) {
		t.Errorf("expect payload %s, got %s", expect, actual)
	}

	if expect, actual := `{"results":[{"outputText":"hi there"}]}`, string(out.Body); expect != actual {
		t.Errorf("expect body %s, got %s", expect, actual)
	}
}

func TestInvokeModel_ContentTypeOverrides(t *testing.T) {
	httpClient := &captureClient{body: "{}"}
	client := newTestClient(t, httpClient)

	_, err := client.InvokeModel(context.Background(), &InvokeModelInput{
		ModelID:     "amazon.titan-embed-text-v1",
		Body:        []byte{0x01, 0x02},
		ContentType: "application/octet-stream",
		Accept:      "application/xml",
	})
	if err != nil {
		t.Fatalf("expect no error, got %v", err)
	}

	req := httpClient.request
	if expect, actual := "application/octet-stream", req.Header.Get("Content-Type"); expect != actual {
		t.Errorf("expect content-type %v, got %v", expect, actual)
	}
	if expect, actual := "application/xml", req.Header.Get("Accept"); expect != actual {
		t.Errorf("expect accept %v, got %v", expect, actual)
	}
}

func TestInvokeModel_Validation(t *testing.T) {
	cases := map[string]struct {
		Input     *InvokeModelInput
		ExpectErr string
	}{
		"missing model id": {
			Input:     &InvokeModelInput{Body: []byte("{}")},
			ExpectErr: "model id is required",
		},
		"missing body": {
			Input:     &InvokeModelInput{ModelID: "amazon.titan-text-express-v1"},
			ExpectErr: "model request body is required",
		},
	}

	for name, c := range cases {
		t.Run(name, func(t *testing.T) {
			client := newTestClient(t, &captureClient{})

			_, err := client.InvokeModel(context.Background(), c.Input)
			if err == nil {
				t.Fatalf("expect error, got none")
			}
			if actual := err.Error(); c.ExpectErr != actual {
				t.Errorf("expect error %q, got %q", c.ExpectErr, actual)
			}
		})
	}
}
