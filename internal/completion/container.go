package completion

import (
	"context"
	"fmt"

	"github.com/saulo-duarte/studylens/internal/config"
)

// NewFromSettings picks the gateway named by COMPLETION_PROVIDER.
func NewFromSettings(ctx context.Context, s *config.Settings) (Gateway, error) {
	switch s.Provider {
	case "perplexity", "openai":
		if s.APIKey == "" {
			config.WithContext(ctx).Warn("PPLX_API_KEY is empty, completion requests will be rejected upstream")
		}
		return NewOpenAIGateway(s.Provider, s.APIKey, s.BaseURL, s.Model), nil
	case "gemini":
		return NewGeminiGateway(ctx, s.GeminiAPIKey, s.GeminiBaseURL, s.GeminiModel)
	default:
		return nil, fmt.Errorf("unknown completion provider %q", s.Provider)
	}
}
