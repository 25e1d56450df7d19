package llm

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
	"github.com/openai/openai-go/shared"
)

// CompleteRequest holds the parameters for one completion call.
type CompleteRequest struct {
	SystemPrompt string
	UserPrompt   string

	// Schema, when set, constrains the response to a JSON document
	// matching the given json-schema definition.
	Schema *ResponseSchema
}

// ResponseSchema names a json-schema definition for structured output.
type ResponseSchema struct {
	Name        string
	Description string
	Definition  map[string]any
}

// CompleteResponse holds the result of a completion call.
type CompleteResponse struct {
	Text      string
	Model     string
	LatencyMs int64
}

// Client provides access to the external text-completion service. It is a
// narrow boundary (prompt in, text out, fallible) so tests can swap in a
// fake without touching the network.
type Client interface {
	Complete(ctx context.Context, req CompleteRequest) (*CompleteResponse, error)
}

// openAIClient implements Client against the OpenAI chat completions API.
type openAIClient struct {
	cfg      Config
	api      openai.Client
	observer Observer
}

// NewOpenAIClient creates a Client from the given config. It fails fast
// with ErrMissingCredential when no API key is present, before any network
// activity.
func NewOpenAIClient(cfg Config, observer Observer) (Client, error) {
	if !cfg.HasCredential() {
		return nil, ErrMissingCredential
	}
	if observer == nil {
		observer = NoopObserver{}
	}

	// Retry policy lives in Complete, not in the transport.
	opts := []option.RequestOption{option.WithAPIKey(cfg.APIKey), option.WithMaxRetries(0)}
	if cfg.BaseURL != "" {
		opts = append(opts, option.WithBaseURL(cfg.BaseURL))
	}

	return &openAIClient{
		cfg:      cfg,
		api:      openai.NewClient(opts...),
		observer: observer,
	}, nil
}

// rateLimitBackoff is the wait schedule between retries after a 429.
var rateLimitBackoff = []time.Duration{2 * time.Second, 5 * time.Second, 10 * time.Second}

func (c *openAIClient) Complete(ctx context.Context, req CompleteRequest) (*CompleteResponse, error) {
	start := time.Now()

	ctx, cancel := context.WithTimeout(ctx, time.Duration(c.cfg.TimeoutMs)*time.Millisecond)
	defer cancel()

	params := openai.ChatCompletionNewParams{
		Model:               openai.ChatModel(c.cfg.Model),
		MaxCompletionTokens: openai.Int(int64(c.cfg.MaxOutputTokens)),
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.SystemMessage(req.SystemPrompt),
			openai.UserMessage(req.UserPrompt),
		},
	}
	if req.Schema != nil {
		params.ResponseFormat = openai.ChatCompletionNewParamsResponseFormatUnion{
			OfJSONSchema: &shared.ResponseFormatJSONSchemaParam{
				JSONSchema: shared.ResponseFormatJSONSchemaJSONSchemaParam{
					Name:        req.Schema.Name,
					Description: openai.String(req.Schema.Description),
					Schema:      req.Schema.Definition,
					Strict:      openai.Bool(true),
				},
			},
		}
	}

	var lastErr error
	attempts := 1 + c.cfg.MaxRetries

	for i := 0; i < attempts; i++ {
		resp, err := c.api.Chat.Completions.New(ctx, params)
		if err == nil {
			if len(resp.Choices) == 0 {
				lastErr = fmt.Errorf("%w: empty choices", ErrInvalidOutput)
				break
			}
			latency := time.Since(start).Milliseconds()
			c.observer.OnCallComplete(CallEvent{
				Model:     resp.Model,
				LatencyMs: latency,
				Success:   true,
			})
			return &CompleteResponse{
				Text:      resp.Choices[0].Message.Content,
				Model:     resp.Model,
				LatencyMs: latency,
			}, nil
		}
		lastErr = err

		if ctx.Err() != nil {
			break
		}
		if isRateLimitError(err) && i < attempts-1 {
			wait := rateLimitBackoff[min(i, len(rateLimitBackoff)-1)]
			select {
			case <-ctx.Done():
			case <-time.After(wait):
			}
		}
	}

	latency := time.Since(start).Milliseconds()
	wrapped := classifyError(ctx, lastErr)
	c.observer.OnCallComplete(CallEvent{
		Model:     c.cfg.Model,
		LatencyMs: latency,
		Success:   false,
		ErrorCode: errorCode(wrapped),
	})
	return nil, wrapped
}

func classifyError(ctx context.Context, err error) error {
	switch {
	case ctx.Err() != nil:
		return ErrTimeout
	case isRateLimitError(err):
		return fmt.Errorf("%w: %v", ErrRateLimited, err)
	case isConnectionError(err):
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	default:
		return err
	}
}

func isRateLimitError(err error) bool {
	if err == nil {
		return false
	}
	var apierr *openai.Error
	if errors.As(err, &apierr) {
		return apierr.StatusCode == 429
	}
	s := strings.ToLower(err.Error())
	return strings.Contains(s, "429") || strings.Contains(s, "rate limit") || strings.Contains(s, "too many requests")
}

func isConnectionError(err error) bool {
	if err == nil {
		return false
	}
	var apierr *openai.Error
	if errors.As(err, &apierr) {
		return apierr.StatusCode >= 500
	}
	s := strings.ToLower(err.Error())
	return strings.Contains(s, "connection refused") || strings.Contains(s, "no such host") || strings.Contains(s, "server_error")
}

func errorCode(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrTimeout):
		return "TIMEOUT"
	case errors.Is(err, ErrRateLimited):
		return "RATE_LIMITED"
	case errors.Is(err, ErrUnavailable):
		return "UNAVAILABLE"
	case errors.Is(err, ErrInvalidOutput):
		return "INVALID_OUTPUT"
	default:
		return "UNKNOWN"
	}
}
