package completion

import (
	"context"
	"errors"
	"strings"

	openai "github.com/sashabaranov/go-openai"

	"github.com/saulo-duarte/studylens/internal/config"
)

type openAIGateway struct {
	client   *openai.Client
	model    string
	provider string
}

// NewOpenAIGateway talks to any OpenAI-compatible chat completions endpoint.
// Perplexity is reached by pointing baseURL at https://api.perplexity.ai.
func NewOpenAIGateway(provider, apiKey, baseURL, model string) Gateway {
	cfg := openai.DefaultConfig(apiKey)
	if baseURL != "" {
		cfg.BaseURL = strings.TrimSuffix(baseURL, "/")
	}
	return &openAIGateway{
		client:   openai.NewClientWithConfig(cfg),
		model:    model,
		provider: provider,
	}
}

func (g *openAIGateway) Complete(ctx context.Context, messages []Message) (string, error) {
	log := config.WithContext(ctx).WithField("provider", g.provider)

	req := openai.ChatCompletionRequest{
		Model:    g.model,
		Messages: make([]openai.ChatCompletionMessage, 0, len(messages)),
	}
	for _, m := range messages {
		req.Messages = append(req.Messages, openai.ChatCompletionMessage{
			Role:    toOpenAIRole(m.Role),
			Content: m.Content,
		})
	}

	resp, err := g.client.CreateChatCompletion(ctx, req)
	if err != nil {
		upErr := g.wrapError(err)
		log.WithError(err).WithField("status", upErr.StatusCode).Error("Completion request failed")
		return "", upErr
	}

	if len(resp.Choices) == 0 {
		return "", &UpstreamError{Provider: g.provider, Body: "response has no choices"}
	}
	content := resp.Choices[0].Message.Content
	if strings.TrimSpace(content) == "" {
		return "", &UpstreamError{Provider: g.provider, Body: "response has empty content"}
	}

	log.WithField("chars", len(content)).Debug("Completion received")
	return content, nil
}

func (g *openAIGateway) wrapError(err error) *UpstreamError {
	var apiErr *openai.APIError
	if errors.As(err, &apiErr) {
		return &UpstreamError{
			Provider:   g.provider,
			StatusCode: apiErr.HTTPStatusCode,
			Body:       apiErr.Message,
			Err:        err,
		}
	}

	var reqErr *openai.RequestError
	if errors.As(err, &reqErr) {
		return &UpstreamError{
			Provider:   g.provider,
			StatusCode: reqErr.HTTPStatusCode,
			Body:       reqErr.Error(),
			Err:        err,
		}
	}

	return &UpstreamError{Provider: g.provider, Body: err.Error(), Err: err}
}

func toOpenAIRole(r Role) string {
	if r == RoleSystem {
		return openai.ChatMessageRoleSystem
	}
	return openai.ChatMessageRoleUser
}
