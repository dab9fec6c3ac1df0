package pollinations

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"iter"
	"net/http"
	"strings"
	"time"

	"github.com/polliant/megagent-core/core/llms"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

const (
	// DefaultBaseURL is the public Pollinations text endpoint.
	DefaultBaseURL = "https://text.pollinations.ai"

	completionPath = "/openai"

	endMessage  = "[DONE]"
	chunkPrefix = "data:"
)

// defaultTimeout bounds how long a single completion call may run before it
// is treated as a failure.
const defaultTimeout = 300 * time.Second

type Client struct {
	baseURL    string
	httpClient *http.Client
}

type ClientOption func(*Client)

// WithBaseURL overrides the completion endpoint base URL.
func WithBaseURL(baseURL string) ClientOption {
	return func(c *Client) {
		c.baseURL = strings.TrimRight(baseURL, "/")
	}
}

// WithHTTPClient overrides the HTTP client used for completion calls. The
// caller is responsible for any timeout configured on the passed client.
func WithHTTPClient(httpClient *http.Client) ClientOption {
	return func(c *Client) {
		c.httpClient = httpClient
	}
}

func NewClient(opts ...ClientOption) *Client {
	c := &Client{
		baseURL: DefaultBaseURL,
		httpClient: &http.Client{
			Timeout: defaultTimeout,
			Transport: otelhttp.NewTransport(http.DefaultTransport,
				otelhttp.WithSpanNameFormatter(func(operationName string, request *http.Request) string {
					return operationName + " " + request.URL.Path
				}),
			),
		},
	}

	for _, opt := range opts {
		opt(c)
	}
	return c
}

// PromptWithStream prepares a streaming completion request. No network call
// happens until the returned stream's chunks are consumed.
func (c *Client) PromptWithStream(
	_ context.Context,
	model string,
	prompt *string,
	opts ...llms.StreamingPromptOption,
) llms.Stream {
	options := llms.StreamingPromptOptions{}
	for _, opt := range opts {
		opt(&options)
	}

	messages := toMessages(options.Instructions, options.Turns)
	if prompt != nil {
		messages = append(messages, message{
			Role:    messageRoleUser,
			Content: *prompt,
		})
	}

	return &Stream{
		client:      c,
		model:       model,
		messages:    messages,
		temperature: options.Temperature,
	}
}

type Stream struct {
	client *Client

	model       string
	messages    []message
	temperature *float64
}

// Chunks issues the completion request and yields one content chunk per
// received delta. The sequence is finite and non-restartable: it ends at the
// provider's terminator line, on a fatal error, or when the consumer stops
// pulling.
//
// A non-success HTTP status is fatal and surfaces before any content is
// yielded. Malformed stream lines are skipped.
func (s *Stream) Chunks(ctx context.Context) iter.Seq2[llms.StreamChunk, error] {
	return func(yield func(llms.StreamChunk, error) bool) {
		ctx, span := tracer.Start(ctx, "prompt completion stream")
		defer span.End()
		span.SetAttributes(attribute.String("request.model", s.model))
		span.SetAttributes(attribute.Int("request.messages", len(s.messages)))

		requestBodyBytes, err := json.Marshal(requestBody{
			Model:       s.model,
			Messages:    s.messages,
			Temperature: s.temperature,
			Stream:      true,
		})
		if err != nil {
			err = fmt.Errorf("error marshalling JSON: %w", err)
			span.RecordError(err)
			yield(nil, err)
			return
		}

		req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.client.baseURL+completionPath, bytes.NewBuffer(requestBodyBytes))
		if err != nil {
			err = fmt.Errorf("error creating HTTP request: %w", err)
			span.RecordError(err)
			yield(nil, err)
			return
		}

		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("Accept", "text/event-stream")

		span.SetAttributes(attribute.String("request.url", req.URL.String()))
		requestStartedAt := time.Now()
		span.AddEvent("request started")
		resp, err := s.client.httpClient.Do(req)
		if err != nil {
			err = fmt.Errorf("error sending request: %w", err)
			span.RecordError(err)
			yield(nil, err)
			return
		}
		defer resp.Body.Close()

		span.SetAttributes(attribute.Int("response.status_code", resp.StatusCode))
		if resp.StatusCode != http.StatusOK {
			errorBody, readErr := io.ReadAll(resp.Body)
			if readErr != nil {
				span.RecordError(fmt.Errorf("error reading error body: %w", readErr))
			}

			err := fmt.Errorf("API error %d: %s", resp.StatusCode, strings.TrimSpace(string(errorBody)))
			span.RecordError(err)
			yield(nil, err)
			return
		}

		firstChunk := true
		recordFirstChunk := func(span trace.Span) {
			if !firstChunk {
				return
			}
			firstChunk = false
			span.SetAttributes(attribute.Float64("response.request_to_first_token_time", time.Since(requestStartedAt).Seconds()))
			span.AddEvent("received first chunk")
		}

		scanner := bufio.NewScanner(resp.Body)
		for scanner.Scan() {
			chunk := strings.TrimSpace(strings.TrimPrefix(scanner.Text(), chunkPrefix))
			recordFirstChunk(span)

			if len(chunk) == 0 {
				continue
			}

			if chunk == endMessage {
				break
			}

			var responseBody streamingResponseBody
			if err := json.Unmarshal([]byte(chunk), &responseBody); err != nil {
				logger.DebugContext(ctx, "skipping malformed stream line", "error", err)
				continue
			}

			if len(responseBody.Choices) == 0 {
				continue
			}
			choice := responseBody.Choices[0]

			if choice.Delta.Content != "" {
				if !yield(StreamContentChunk{
					finishReason: choice.FinishReason,
					content:      choice.Delta.Content,
				}, nil) {
					return
				}
			}
		}

		if err := scanner.Err(); err != nil {
			err = fmt.Errorf("error reading streamed response: %w", err)
			span.RecordError(err)
			yield(nil, err)
			return
		}
	}
}

type StreamContentChunk struct {
	finishReason *string
	content      string
}

func (s StreamContentChunk) FinishReason() *string {
	return s.finishReason
}

func (s StreamContentChunk) Content() string {
	return s.content
}
