package bedrock

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/aws/smithy-go/logging"
	"github.com/awslabs/bedrock-http-auth/credentials"
	"github.com/awslabs/bedrock-http-auth/internal/uri"
	"github.com/awslabs/bedrock-http-auth/metrics"
	"github.com/awslabs/bedrock-http-auth/sigv4"
	"github.com/awslabs/bedrock-http-auth/tracing"
)

const instrumentationScope = "github.com/awslabs/bedrock-http-auth/bedrock"

const (
	contentTypeJSON        = "application/json"
	contentTypeEventstream = "application/vnd.amazon.eventstream"
)

// HTTPClient performs HTTP round trips.
type HTTPClient interface {
	Do(*http.Request) (*http.Response, error)
}

// HTTPClientDoFunc adapts a function to the HTTPClient interface.
type HTTPClientDoFunc func(*http.Request) (*http.Response, error)

// Do invokes the wrapped function.
func (f HTTPClientDoFunc) Do(r *http.Request) (*http.Response, error) {
	return f(r)
}

// Options configures a Client.
type Options struct {
	// Region selects the regional Bedrock endpoints and the signing scope.
	// Falls back to Credentials.Region when unset. Required.
	Region string

	// Credentials signs requests with SigV4. Required unless BearerToken is
	// set.
	Credentials credentials.Credentials

	// BearerToken switches the client to bearer authentication. When set,
	// requests carry "Authorization: Bearer <token>" and are not signed.
	BearerToken string

	// HTTPClient performs round trips. Defaults to http.DefaultClient.
	HTTPClient HTTPClient

	// Logger receives client diagnostics. Defaults to a no-op logger.
	// Credentials and signed header values are never logged.
	Logger logging.Logger

	// TracerProvider supplies operation spans. Defaults to no-op.
	TracerProvider tracing.TracerProvider

	// MeterProvider supplies operation metrics. Defaults to no-op.
	MeterProvider metrics.MeterProvider

	// BaseEndpoint overrides the bedrock-runtime endpoint, e.g. for tests.
	BaseEndpoint string

	// BaseControlEndpoint overrides the bedrock control plane endpoint.
	BaseControlEndpoint string
}

// Client is an Amazon Bedrock API client.
type Client struct {
	options Options

	signer *sigv4.Signer
	tracer tracing.Tracer

	callDuration metrics.Float64Histogram
	callCount    metrics.Int64Counter
}

// New returns a Client for the given options.
func New(options Options, optFns ...func(*Options)) (*Client, error) {
	for _, fn := range optFns {
		fn(&options)
	}

	if options.Region == "" {
		options.Region = options.Credentials.Region
	}
	if !uri.ValidHostLabel(options.Region) {
		return nil, fmt.Errorf("invalid region %q", options.Region)
	}

	if options.HTTPClient == nil {
		options.HTTPClient = http.DefaultClient
	}
	if options.Logger == nil {
		options.Logger = logging.Nop{}
	}
	if options.TracerProvider == nil {
		options.TracerProvider = tracing.NopTracerProvider{}
	}
	if options.MeterProvider == nil {
		options.MeterProvider = metrics.NopMeterProvider{}
	}

	c := &Client{
		options: options,
		tracer:  options.TracerProvider.Tracer(instrumentationScope),
	}

	if options.BearerToken == "" {
		creds := options.Credentials
		creds.Region = options.Region
		signer, err := sigv4.New(creds)
		if err != nil {
			return nil, err
		}
		c.signer = signer
	}

	meter := options.MeterProvider.Meter(instrumentationScope)
	duration, err := meter.Float64Histogram("client.call.duration",
		metrics.WithUnit("s"),
		metrics.WithDescription("Overall call duration including serialization, signing, and transport"))
	if err != nil {
		return nil, fmt.Errorf("create duration instrument: %w", err)
	}
	count, err := meter.Int64Counter("client.call.requests",
		metrics.WithDescription("Number of API requests made"))
	if err != nil {
		return nil, fmt.Errorf("create request count instrument: %w", err)
	}
	c.callDuration = duration
	c.callCount = count

	return c, nil
}

func (c *Client) runtimeEndpoint() string {
	if c.options.BaseEndpoint != "" {
		return c.options.BaseEndpoint
	}
	return "https://bedrock-runtime." + c.options.Region + ".amazonaws.com"
}

func (c *Client) controlEndpoint() string {
	if c.options.BaseControlEndpoint != "" {
		return c.options.BaseControlEndpoint
	}
	return "https://bedrock." + c.options.Region + ".amazonaws.com"
}

// newRequest builds and authenticates a request. With a signer configured
// the signed header set is computed over the final URL and payload; in
// bearer mode the token is attached instead.
func (c *Client) newRequest(ctx context.Context, method, url string, headers sigv4.Headers, payload []byte) (*http.Request, error) {
	var body io.Reader = http.NoBody
	if len(payload) > 0 {
		body = bytes.NewReader(payload)
	}
	req, err := http.NewRequestWithContext(ctx, method, url, body)
	if err != nil {
		return nil, fmt.Errorf("new http request: %w", err)
	}

	if c.signer != nil {
		signed, err := c.signer.SignRequest(&sigv4.SignRequestInput{
			Method:  method,
			URL:     url,
			Headers: headers,
			Payload: payload,
		})
		if err != nil {
			return nil, fmt.Errorf("sign request: %w", err)
		}
		headers = signed
	} else {
		headers = headers.Clone()
		headers.Set("Authorization", "Bearer "+c.options.BearerToken)
	}
	headers.Apply(req)

	return req, nil
}

// roundTrip runs one authenticated exchange and hands back the raw response.
// The caller owns the response body.
func (c *Client) roundTrip(ctx context.Context, operation, method, url string, headers sigv4.Headers, payload []byte) (*http.Response, error) {
	logger := logging.WithContext(ctx, c.options.Logger)
	logger.Logf(logging.Debug, "%s %s %s", operation, method, url)

	req, err := c.newRequest(ctx, method, url, headers, payload)
	if err != nil {
		return nil, err
	}

	start := time.Now()
	resp, err := c.options.HTTPClient.Do(req)
	elapsed := time.Since(start)

	c.callCount.Add(ctx, 1, metrics.WithProperty("operation", operation))
	c.callDuration.Record(ctx, elapsed.Seconds(),
		metrics.WithProperty("operation", operation),
		metrics.WithProperty("error", err != nil))

	if err != nil {
		return nil, fmt.Errorf("do request: %w", err)
	}
	return resp, nil
}

// invoke runs a complete request-response exchange: authenticate, send,
// check status, drain. Used by every operation except ConverseStream.
func (c *Client) invoke(ctx context.Context, operation, method, url string, headers sigv4.Headers, payload []byte) ([]byte, error) {
	ctx, span := c.tracer.StartSpan(ctx, operation, tracing.WithSpanKind(tracing.SpanKindClient))
	defer span.End()
	span.SetProperty("rpc.service", "bedrock")
	span.SetProperty("rpc.method", operation)

	resp, err := c.roundTrip(ctx, operation, method, url, headers, payload)
	if err != nil {
		span.SetStatus(tracing.SpanStatusError)
		return nil, err
	}
	defer resp.Body.Close()

	span.SetProperty("http.status_code", resp.StatusCode)

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		span.SetStatus(tracing.SpanStatusError)
		return nil, fmt.Errorf("read response body: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		apiErr := deserializeError(resp, data)
		logger := logging.WithContext(ctx, c.options.Logger)
		logger.Logf(logging.Warn, "%s failed: %v", operation, apiErr)
		span.SetStatus(tracing.SpanStatusError)
		return nil, apiErr
	}

	span.SetStatus(tracing.SpanStatusOK)
	return data, nil
}
