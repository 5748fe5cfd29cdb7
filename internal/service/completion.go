package service

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/fadilmartias/interview-coach/internal/config"
)

// ErrCompletionUnavailable marks a completion call that cannot be served.
// Callers recover by switching to their deterministic fallback; the error is
// never shown to the end user.
var ErrCompletionUnavailable = errors.New("completion service unavailable")

// CompletionRequest is one system+user prompt pair. Temperature 0 means
// "use the provider default".
type CompletionRequest struct {
	System      string
	User        string
	Temperature float64
}

// CompletionServiceInterface is the text-completion boundary. Implementations
// must bound every call with a timeout; a hung provider must not hang a turn.
type CompletionServiceInterface interface {
	Complete(ctx context.Context, req CompletionRequest) (string, error)
}

// DisabledCompletionService is the no-provider implementation. Every call
// fails with ErrCompletionUnavailable, which keeps the whole session on the
// rule-based paths.
type DisabledCompletionService struct{}

func NewDisabledCompletionService() *DisabledCompletionService {
	return &DisabledCompletionService{}
}

func (s *DisabledCompletionService) Complete(ctx context.Context, req CompletionRequest) (string, error) {
	return "", ErrCompletionUnavailable
}

// NewCompletionServiceFromEnv picks a provider from the environment:
// OpenRouter first, then Gemini, else the disabled implementation.
func NewCompletionServiceFromEnv(ctx context.Context, timeout time.Duration) CompletionServiceInterface {
	if config.LoadOpenRouterConfig().APIKey != "" {
		log.Println("Using OpenRouter completion provider")
		return NewOpenRouterService(timeout)
	}
	if config.LoadGeminiConfig().APIKey != "" {
		gemini, err := NewGeminiService(ctx, timeout)
		if err == nil {
			log.Println("Using Gemini completion provider")
			return gemini
		}
		log.Printf("Gemini provider init failed: %v", err)
	}
	log.Println("No completion provider configured; running with rule-based fallbacks only")
	return NewDisabledCompletionService()
}
