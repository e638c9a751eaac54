// Package salesforce holds the Salesforce side of the bridge: the instance
// URL resolver, the tool descriptor catalog and the HTTP client that
// executes descriptors against the REST and Analytics APIs.
package salesforce

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/oauth2"

	"github.com/flowhost/sfbridge/internal/domain"
)

// APIVersion is the REST API version every descriptor path is built
// against.
const APIVersion = "v59.0"

const fallbackErrorMessage = "Salesforce request failed"

// Client executes tool descriptors as single HTTP round trips. It holds no
// per-operation state; timeouts and cancellation are the injected
// http.Client's and context's concern, and there are no retries at this
// layer.
type Client struct {
	httpClient *http.Client
	// tokenSource supplies a bearer token when the parameter bag carries
	// no accessToken of its own. Optional.
	tokenSource oauth2.TokenSource
	// defaults let deployment-level configuration stand in for per-call
	// connection parameters.
	defaultInstanceURL string
	defaultIDToken     string
	logger             *slog.Logger
	tracer             trace.Tracer
}

// Option configures a Client.
type Option func(*Client)

// WithTokenSource installs a fallback bearer token source.
func WithTokenSource(ts oauth2.TokenSource) Option {
	return func(c *Client) { c.tokenSource = ts }
}

// WithDefaultInstanceURL sets the instance URL used when the bag has none.
func WithDefaultInstanceURL(u string) Option {
	return func(c *Client) { c.defaultInstanceURL = u }
}

// WithDefaultIDToken sets the identity token consulted when neither the
// bag nor configuration names an instance URL.
func WithDefaultIDToken(t string) Option {
	return func(c *Client) { c.defaultIDToken = t }
}

// New creates a Client.
func New(httpClient *http.Client, logger *slog.Logger, opts ...Option) *Client {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	c := &Client{
		httpClient: httpClient,
		logger:     logger.With("component", "salesforce_client"),
		tracer:     otel.Tracer("sfbridge/salesforce"),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Invoke executes one descriptor against the instance resolved from the
// sanitized parameter bag. On a 2xx response it returns the success
// envelope; on anything else a RemoteAPIError carrying the best message
// the response body offers.
func (c *Client) Invoke(ctx context.Context, desc *domain.Descriptor, params *domain.Params) (*domain.Result, error) {
	ctx, span := c.tracer.Start(ctx, "salesforce.invoke",
		trace.WithAttributes(
			attribute.String("salesforce.tool", desc.ID),
			attribute.String("http.method", desc.Method),
		))
	defer span.End()

	log := c.logger.With(slog.String("tool", desc.ID), slog.String("method", desc.Method))

	instanceURL, err := c.resolveInstance(params)
	if err != nil {
		span.SetStatus(codes.Error, "no instance URL")
		return nil, err
	}

	req, err := c.buildRequest(ctx, instanceURL, desc, params)
	if err != nil {
		span.SetStatus(codes.Error, "request construction failed")
		return nil, err
	}
	log = log.With(slog.String("url", req.URL.Redacted()))

	log.Debug("executing salesforce request")
	resp, err := c.httpClient.Do(req)
	if err != nil {
		span.SetStatus(codes.Error, "transport failure")
		return nil, fmt.Errorf("executing %s: %w", desc.ID, err)
	}
	defer resp.Body.Close()

	span.SetAttributes(attribute.Int("http.status_code", resp.StatusCode))

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		span.SetStatus(codes.Error, "read failure")
		return nil, fmt.Errorf("reading response for %s: %w", desc.ID, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		apiErr := &domain.RemoteAPIError{
			StatusCode: resp.StatusCode,
			Message:    errorMessage(body),
		}
		log.Warn("salesforce request failed",
			slog.Int("status", resp.StatusCode),
			slog.String("message", apiErr.Message))
		span.SetStatus(codes.Error, apiErr.Message)
		return nil, apiErr
	}

	payload := decodePayloadObject(body)
	output := map[string]any{"data": payload}
	if desc.Transform != nil {
		output = desc.Transform(params, payload)
	}

	log.Debug("salesforce request succeeded", slog.Int("status", resp.StatusCode))
	return domain.NewResult(desc.Operation, output), nil
}

func (c *Client) resolveInstance(params *domain.Params) (string, error) {
	explicit := params.GetString("instanceUrl")
	if explicit == "" {
		explicit = c.defaultInstanceURL
	}
	idToken := params.GetString("idToken")
	if idToken == "" {
		idToken = c.defaultIDToken
	}
	return ResolveInstanceURL(c.logger, explicit, idToken)
}

func (c *Client) buildRequest(ctx context.Context, instanceURL string, desc *domain.Descriptor, params *domain.Params) (*http.Request, error) {
	path, err := desc.Path(params)
	if err != nil {
		return nil, err
	}

	var body io.Reader
	if desc.Body != nil {
		payload, err := desc.Body(params)
		if err != nil {
			return nil, err
		}
		if payload != nil {
			encoded, err := json.Marshal(payload)
			if err != nil {
				return nil, fmt.Errorf("marshaling body for %s: %w", desc.ID, err)
			}
			body = bytes.NewReader(encoded)
		}
	}

	req, err := http.NewRequestWithContext(ctx, desc.Method, instanceURL+path, body)
	if err != nil {
		return nil, fmt.Errorf("creating request for %s: %w", desc.ID, err)
	}

	if desc.Query != nil {
		values, err := desc.Query(params)
		if err != nil {
			return nil, err
		}
		if len(values) > 0 {
			req.URL.RawQuery = values.Encode()
		}
	}

	token, err := c.bearerToken(params)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "Bearer "+token)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	return req, nil
}

func (c *Client) bearerToken(params *domain.Params) (string, error) {
	if token := params.GetString("accessToken"); token != "" {
		return token, nil
	}
	if c.tokenSource != nil {
		token, err := c.tokenSource.Token()
		if err != nil {
			return "", fmt.Errorf("fetching access token: %w", err)
		}
		return token.AccessToken, nil
	}
	return "", &domain.ConfigurationError{Reason: "access token required but not provided"}
}

// errorMessage extracts a human-readable message from a non-2xx body.
// Priority order is part of the wire contract: the first array element's
// message, then the object's message, then the fixed fallback.
func errorMessage(body []byte) string {
	var asArray []struct {
		Message string `json:"message"`
	}
	if err := json.Unmarshal(body, &asArray); err == nil && len(asArray) > 0 && asArray[0].Message != "" {
		return asArray[0].Message
	}

	var asObject struct {
		Message string `json:"message"`
	}
	if err := json.Unmarshal(body, &asObject); err == nil && asObject.Message != "" {
		return asObject.Message
	}

	return fallbackErrorMessage
}

// decodePayloadObject parses a success body defensively. Deletes and
// updates come back 204 with no body, and some endpoints return arrays;
// anything that is not a JSON object degrades to an empty or wrapped
// object rather than an error.
func decodePayloadObject(body []byte) map[string]any {
	if len(bytes.TrimSpace(body)) == 0 {
		return map[string]any{}
	}
	var asObject map[string]any
	if err := json.Unmarshal(body, &asObject); err == nil {
		return asObject
	}
	var asAny any
	if err := json.Unmarshal(body, &asAny); err == nil {
		return map[string]any{"records": asAny}
	}
	return map[string]any{}
}
