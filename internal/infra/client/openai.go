package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/felipeOliveira-1/fstech-agency/internal/domain"
	"github.com/felipeOliveira-1/fstech-agency/internal/infra/resilience"

	"github.com/sony/gobreaker"
	"go.opentelemetry.io/otel/attribute"
)

const openaiBaseURL = "https://api.openai.com/v1"

// OpenAI speaks the chat-completions wire format. It backs the
// TextGenerator port for briefing extraction and market research;
// nothing in the calculator core depends on it.
type OpenAI struct {
	httpClient *http.Client
	baseURL    string
	apiKey     string
	model      string
	cb         *gobreaker.CircuitBreaker
	cfg        resilience.Config
}

// NewOpenAI creates a text generation client.
func NewOpenAI(httpClient *http.Client, baseURL, apiKey, model string, cb *gobreaker.CircuitBreaker, cfg resilience.Config) *OpenAI {
	if baseURL == "" {
		baseURL = openaiBaseURL
	}
	if model == "" {
		model = "gpt-4o-mini"
	}
	return &OpenAI{
		httpClient: httpClient,
		baseURL:    baseURL,
		apiKey:     apiKey,
		model:      model,
		cb:         cb,
		cfg:        cfg,
	}
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatCompletionRequest struct {
	Model       string        `json:"model"`
	Messages    []chatMessage `json:"messages"`
	Temperature float64       `json:"temperature"`
}

type chatCompletionResponse struct {
	Choices []struct {
		Message chatMessage `json:"message"`
	} `json:"choices"`
}

// Complete sends a system+user prompt pair and returns the first choice.
func (c *OpenAI) Complete(ctx context.Context, systemPrompt, userPrompt string) (string, error) {
	ctx, span := tracer.Start(ctx, "OpenAI.Complete")
	defer span.End()
	span.SetAttributes(attribute.String("llm.model", c.model))

	payload := chatCompletionRequest{
		Model:       c.model,
		Temperature: 0.2,
		Messages: []chatMessage{
			{Role: "system", Content: systemPrompt},
			{Role: "user", Content: userPrompt},
		},
	}

	var completion chatCompletionResponse
	err := resilience.Execute(ctx, c.cb, c.cfg, func() error {
		body, err := json.Marshal(payload)
		if err != nil {
			return err
		}

		req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/chat/completions", bytes.NewReader(body))
		if err != nil {
			return err
		}
		req.Header.Set("Authorization", "Bearer "+c.apiKey)
		req.Header.Set("Content-Type", "application/json")

		resp, err := c.httpClient.Do(req)
		if err != nil {
			return err
		}
		defer resp.Body.Close()

		if resp.StatusCode < 200 || resp.StatusCode >= 300 {
			return fmt.Errorf("chat completions API returned status %d", resp.StatusCode)
		}
		return json.NewDecoder(resp.Body).Decode(&completion)
	})
	if err != nil {
		return "", wrapExternal("openai", err)
	}

	if len(completion.Choices) == 0 {
		return "", &domain.ErrExternalService{Service: "openai", Err: fmt.Errorf("completion returned no choices")}
	}
	return completion.Choices[0].Message.Content, nil
}
