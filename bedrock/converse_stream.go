package bedrock

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/aws/aws-sdk-go-v2/aws/protocol/eventstream"
	"github.com/aws/smithy-go/logging"
	"github.com/awslabs/bedrock-http-auth/internal/uri"
	"github.com/awslabs/bedrock-http-auth/sigv4"
	"github.com/awslabs/bedrock-http-auth/tracing"
)

// Stream event types, as they appear in StreamEvent.Type.
const (
	StreamEventMessageStart      = "messageStart"
	StreamEventContentBlockStart = "contentBlockStart"
	StreamEventContentBlockDelta = "contentBlockDelta"
	StreamEventContentBlockStop  = "contentBlockStop"
	StreamEventMessageStop       = "messageStop"
	StreamEventMetadata          = "metadata"
)

// StreamEvent is one event from a streaming model response. Type identifies
// the event; the remaining fields are populated according to it.
type StreamEvent struct {
	Type string

	// Role is set on messageStart events.
	Role string

	// ContentBlockIndex is set on contentBlockStart, contentBlockDelta and
	// contentBlockStop events.
	ContentBlockIndex int32

	// Delta is the text fragment carried by a contentBlockDelta event.
	Delta string

	// StopReason is set on messageStop events.
	StopReason string

	// Usage and Metrics are set on metadata events.
	Usage   *TokenUsage
	Metrics *ConverseMetrics
}

// Stream reads events from a streaming model response. It is not safe for
// concurrent use. Callers must Close the stream when done with it, whether
// or not it was read to the end.
type Stream struct {
	body       io.ReadCloser
	decoder    *eventstream.Decoder
	payloadBuf []byte
	span       tracing.Span

	err    error
	closed bool
}

// ConverseStream sends a conversation to a model and returns a stream of
// events from its reply as the model produces it.
func (c *Client) ConverseStream(ctx context.Context, in *ConverseInput) (*Stream, error) {
	if in.ModelID == "" {
		return nil, fmt.Errorf("model id is required")
	}

	url := c.runtimeEndpoint() + "/model/" + uri.EscapePath(in.ModelID, true) + "/converse-stream"
	payload := serializeConverseInput(in)
	headers := sigv4.Headers{
		"content-type": contentTypeJSON,
		"accept":       contentTypeEventstream,
	}

	ctx, span := c.tracer.StartSpan(ctx, "ConverseStream", tracing.WithSpanKind(tracing.SpanKindClient))
	span.SetProperty("rpc.service", "bedrock")
	span.SetProperty("rpc.method", "ConverseStream")

	resp, err := c.roundTrip(ctx, "ConverseStream", http.MethodPost, url, headers, payload)
	if err != nil {
		span.SetStatus(tracing.SpanStatusError)
		span.End()
		return nil, err
	}

	span.SetProperty("http.status_code", resp.StatusCode)

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		defer resp.Body.Close()

		data, err := io.ReadAll(resp.Body)
		if err != nil {
			span.SetStatus(tracing.SpanStatusError)
			span.End()
			return nil, fmt.Errorf("read response body: %w", err)
		}

		apiErr := deserializeError(resp, data)
		logger := logging.WithContext(ctx, c.options.Logger)
		logger.Logf(logging.Warn, "ConverseStream failed: %v", apiErr)
		span.SetStatus(tracing.SpanStatusError)
		span.End()
		return nil, apiErr
	}

	return &Stream{
		body:       resp.Body,
		decoder:    eventstream.NewDecoder(),
		payloadBuf: make([]byte, 0, 1024*1024),
		span:       span,
	}, nil
}

// Next returns the next event from the stream. It returns io.EOF once the
// stream ends. If the service reports an error mid-stream, Next returns it
// as an *APIError. After any non-nil error the stream is exhausted and
// subsequent calls return the same error.
func (s *Stream) Next() (*StreamEvent, error) {
	if s.err != nil {
		return nil, s.err
	}

	for {
		message, err := s.decoder.Decode(s.body, s.payloadBuf)
		if err != nil {
			if err == io.EOF {
				s.err = io.EOF
			} else {
				s.err = fmt.Errorf("decode event: %w", err)
			}
			return nil, s.err
		}

		var messageType string
		if h := message.Headers.Get(":message-type"); h != nil {
			messageType = h.String()
		}

		switch messageType {
		case "event":
			var eventType string
			if h := message.Headers.Get(":event-type"); h != nil {
				eventType = h.String()
			}
			event, err := deserializeStreamEvent(eventType, message.Payload)
			if err != nil {
				s.err = err
				return nil, s.err
			}
			if event == nil {
				// Unrecognized event type. Skip it so that new event
				// types do not break existing consumers.
				continue
			}
			return event, nil

		case "exception":
			s.err = deserializeStreamException(message)
			return nil, s.err

		case "error":
			s.err = deserializeStreamError(message)
			return nil, s.err

		default:
			s.err = fmt.Errorf("unexpected message type %q", messageType)
			return nil, s.err
		}
	}
}

// Close releases the stream's underlying connection. It is safe to call
// more than once.
func (s *Stream) Close() error {
	if s.closed {
		return nil
	}
	s.closed = true

	if s.err == nil || s.err == io.EOF {
		s.span.SetStatus(tracing.SpanStatusOK)
	} else {
		s.span.SetStatus(tracing.SpanStatusError)
	}
	s.span.End()

	return s.body.Close()
}

func deserializeStreamEvent(eventType string, payload []byte) (*StreamEvent, error) {
	switch eventType {
	case StreamEventMessageStart, StreamEventContentBlockStart, StreamEventContentBlockDelta,
		StreamEventContentBlockStop, StreamEventMessageStop, StreamEventMetadata:
	default:
		return nil, nil
	}

	var body struct {
		Role              string `json:"role"`
		ContentBlockIndex int32  `json:"contentBlockIndex"`
		Delta             struct {
			Text string `json:"text"`
		} `json:"delta"`
		StopReason string           `json:"stopReason"`
		Usage      *TokenUsage      `json:"usage"`
		Metrics    *ConverseMetrics `json:"metrics"`
	}
	if err := json.Unmarshal(payload, &body); err != nil {
		return nil, fmt.Errorf("deserialize %s event: %w", eventType, err)
	}

	return &StreamEvent{
		Type:              eventType,
		Role:              body.Role,
		ContentBlockIndex: body.ContentBlockIndex,
		Delta:             body.Delta.Text,
		StopReason:        body.StopReason,
		Usage:             body.Usage,
		Metrics:           body.Metrics,
	}, nil
}

// deserializeStreamException maps an exception message to an *APIError. The
// exception arrives after the response status was already committed, so the
// error carries no HTTP status code.
func deserializeStreamException(message eventstream.Message) error {
	apiErr := &APIError{Code: "UnknownError"}
	if h := message.Headers.Get(":exception-type"); h != nil {
		apiErr.Code = sanitizeErrorCode(h.String())
	}

	var body struct {
		Message string `json:"message"`
	}
	if err := json.Unmarshal(message.Payload, &body); err == nil && body.Message != "" {
		apiErr.Message = body.Message
	} else {
		apiErr.Message = string(message.Payload)
	}
	return apiErr
}

func deserializeStreamError(message eventstream.Message) error {
	apiErr := &APIError{Code: "UnknownError"}
	if h := message.Headers.Get(":error-code"); h != nil {
		apiErr.Code = sanitizeErrorCode(h.String())
	}
	if h := message.Headers.Get(":error-message"); h != nil {
		apiErr.Message = h.String()
	}
	return apiErr
}
