package service

import (
	"context"
	"fmt"
	"time"

	"github.com/fadilmartias/interview-coach/internal/config"
	"github.com/go-resty/resty/v2"
	"github.com/tidwall/gjson"
)

// OpenRouterService calls the OpenRouter chat-completions API.
type OpenRouterService struct {
	client  *resty.Client
	apiKey  string
	baseURL string
	model   string
}

func NewOpenRouterService(timeout time.Duration) *OpenRouterService {
	cfg := config.LoadOpenRouterConfig()
	return &OpenRouterService{
		client:  resty.New().SetTimeout(timeout),
		apiKey:  cfg.APIKey,
		baseURL: cfg.BaseURL,
		model:   cfg.Model,
	}
}

func (s *OpenRouterService) Complete(ctx context.Context, req CompletionRequest) (string, error) {
	if s.apiKey == "" {
		return "", ErrCompletionUnavailable
	}

	temperature := req.Temperature
	if temperature == 0 {
		temperature = 0.7
	}

	resp, err := s.client.R().
		SetContext(ctx).
		SetHeader("Authorization", "Bearer "+s.apiKey).
		SetHeader("Content-Type", "application/json").
		SetBody(map[string]interface{}{
			"model":       s.model,
			"temperature": temperature,
			"messages": []map[string]string{
				{"role": "system", "content": req.System},
				{"role": "user", "content": req.User},
			},
		}).
		Post(s.baseURL + "/chat/completions")
	if err != nil {
		return "", fmt.Errorf("openrouter request failed: %w", err)
	}
	if resp.IsError() {
		return "", fmt.Errorf("openrouter returned status %d: %s", resp.StatusCode(), resp.String())
	}

	text := gjson.Get(resp.String(), "choices.0.message.content").String()
	if text == "" {
		return "", fmt.Errorf("no response from LLM")
	}
	return text, nil
}
