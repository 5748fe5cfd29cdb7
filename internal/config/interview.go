package config

import (
	"os"
	"strconv"
	"sync"
	"time"
)

// InterviewConfig holds the dialogue policy knobs. It is a plain struct so the
// controller can be constructed with arbitrary thresholds in tests; the exact
// numbers are policy, not tuning.
type InterviewConfig struct {
	MaxFollowUps         int
	MaxOffTopicRedirects int
	Temperature          float64
	RequestTimeout       time.Duration
}

var (
	interviewConfig *InterviewConfig
	interviewOnce   sync.Once
)

func DefaultInterviewConfig() InterviewConfig {
	return InterviewConfig{
		MaxFollowUps:         3,
		MaxOffTopicRedirects: 2,
		Temperature:          0.7,
		RequestTimeout:       15 * time.Second,
	}
}

func LoadInterviewConfig() *InterviewConfig {
	interviewOnce.Do(func() {
		cfg := DefaultInterviewConfig()
		if v := os.Getenv("MAX_FOLLOW_UPS"); v != "" {
			if n, err := strconv.Atoi(v); err == nil && n >= 0 {
				cfg.MaxFollowUps = n
			}
		}
		if v := os.Getenv("MAX_OFF_TOPIC_REDIRECTS"); v != "" {
			if n, err := strconv.Atoi(v); err == nil && n >= 0 {
				cfg.MaxOffTopicRedirects = n
			}
		}
		if v := os.Getenv("LLM_TEMPERATURE"); v != "" {
			if f, err := strconv.ParseFloat(v, 64); err == nil {
				cfg.Temperature = f
			}
		}
		if v := os.Getenv("LLM_TIMEOUT_SECONDS"); v != "" {
			if n, err := strconv.Atoi(v); err == nil && n > 0 {
				cfg.RequestTimeout = time.Duration(n) * time.Second
			}
		}
		interviewConfig = &cfg
	})
	return interviewConfig
}
