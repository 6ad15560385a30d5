package completion

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/saulo-duarte/studylens/internal/config"
	"google.golang.org/genai"
)

type geminiGateway struct {
	client *genai.Client
	model  string
}

// NewGeminiGateway uses the public Gemini API unless baseURL overrides it.
func NewGeminiGateway(ctx context.Context, apiKey, baseURL, model string) (Gateway, error) {
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:      apiKey,
		Backend:     genai.BackendGeminiAPI,
		HTTPOptions: genai.HTTPOptions{BaseURL: baseURL},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create gemini client: %w", err)
	}
	return &geminiGateway{client: client, model: model}, nil
}

func (g *geminiGateway) Complete(ctx context.Context, messages []Message) (string, error) {
	log := config.WithContext(ctx).WithField("provider", "gemini")

	var system, user []string
	for _, m := range messages {
		if m.Role == RoleSystem {
			system = append(system, m.Content)
		} else {
			user = append(user, m.Content)
		}
	}

	var cfg *genai.GenerateContentConfig
	if len(system) > 0 {
		cfg = &genai.GenerateContentConfig{
			SystemInstruction: genai.NewContentFromText(strings.Join(system, "\n\n"), genai.RoleUser),
		}
	}

	result, err := g.client.Models.GenerateContent(ctx, g.model, genai.Text(strings.Join(user, "\n\n")), cfg)
	if err != nil {
		log.WithError(err).Error("Gemini request failed")
		if apiErr, ok := asAPIError(err); ok {
			return "", &UpstreamError{Provider: "gemini", StatusCode: apiErr.Code, Body: apiErr.Message, Err: err}
		}
		return "", &UpstreamError{Provider: "gemini", Body: err.Error(), Err: err}
	}

	raw := result.Text()
	if strings.TrimSpace(raw) == "" {
		return "", &UpstreamError{Provider: "gemini", Body: "empty response from model"}
	}

	log.Debugf("Gemini raw response:\n%s", raw)
	return raw, nil
}

func asAPIError(err error) (genai.APIError, bool) {
	var apiErr genai.APIError
	if errors.As(err, &apiErr) {
		return apiErr, true
	}
	var apiErrPtr *genai.APIError
	if errors.As(err, &apiErrPtr) && apiErrPtr != nil {
		return *apiErrPtr, true
	}
	return genai.APIError{}, false
}
