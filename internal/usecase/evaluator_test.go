package usecase

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/fadilmartias/interview-coach/internal/model"
	"github.com/fadilmartias/interview-coach/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeCompletion scripts the text-completion boundary for tests.
type fakeCompletion struct {
	fn func(req service.CompletionRequest) (string, error)
}

func (f *fakeCompletion) Complete(ctx context.Context, req service.CompletionRequest) (string, error) {
	return f.fn(req)
}

func failingCompletion() *fakeCompletion {
	return &fakeCompletion{fn: func(req service.CompletionRequest) (string, error) {
		return "", service.ErrCompletionUnavailable
	}}
}

func testRole() *model.Role {
	return &model.Role{
		Key:         "software engineer",
		Name:        "Software Engineer",
		Description: "Technical role",
		CoreQuestions: []string{
			"Tell me about a challenging technical problem you've solved recently.",
			"How do you approach debugging a complex issue in production?",
		},
		EvaluationCriteria: map[string]string{
			"communication": "Clarity in explaining technical concepts",
		},
	}
}

func TestExtractJSONObject(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"bare object", `{"score": 7}`, `{"score": 7}`},
		{"prose around object", "Here you go:\n{\"score\": 7}\nHope that helps!", `{"score": 7}`},
		{"code fence", "```json\n{\"score\": 7}\n```", `{"score": 7}`},
		{"no object", "I cannot answer that.", ""},
		{"empty", "", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, extractJSONObject(tt.input))
		})
	}
}

func TestEvaluate_LLMPath(t *testing.T) {
	completion := &fakeCompletion{fn: func(req service.CompletionRequest) (string, error) {
		require.Contains(t, req.System, "communication: Clarity in explaining technical concepts")
		return `Sure! {"strengths": ["good detail"], "weaknesses": ["rambling"], "suggestions": ["tighten it up"], "score": 7.5, "criteria_scores": {"communication": 8}}`, nil
	}}
	evaluator := NewEvaluator(completion)

	eval := evaluator.Evaluate(context.Background(), "Q?", "some answer", testRole(), nil)

	assert.Equal(t, []string{"good detail"}, eval.Strengths)
	assert.Equal(t, []string{"rambling"}, eval.Weaknesses)
	assert.Equal(t, []string{"tighten it up"}, eval.Suggestions)
	assert.InDelta(t, 7.5, eval.Score, 1e-9)
	assert.InDelta(t, 8.0, eval.CriteriaScores["communication"], 1e-9)
}

func TestEvaluate_LLMScoreClamped(t *testing.T) {
	completion := &fakeCompletion{fn: func(req service.CompletionRequest) (string, error) {
		return `{"strengths": [], "weaknesses": [], "suggestions": [], "score": 14, "criteria_scores": {}}`, nil
	}}
	evaluator := NewEvaluator(completion)

	eval := evaluator.Evaluate(context.Background(), "Q?", "answer", testRole(), nil)
	assert.InDelta(t, 10.0, eval.Score, 1e-9)
}

func TestEvaluate_MalformedReplyFallsBack(t *testing.T) {
	for _, reply := range []string{
		"no json here at all",
		`{"strengths": ["ok"]}`, // missing score
	} {
		completion := &fakeCompletion{fn: func(req service.CompletionRequest) (string, error) {
			return reply, nil
		}}
		evaluator := NewEvaluator(completion)

		eval := evaluator.Evaluate(context.Background(), "Q?",
			"I solved it because first I checked the logs and then I fixed the bug with an example test.",
			testRole(), nil)

		// The rule-based path always populates something.
		assert.NotEmpty(t, eval.Strengths, "reply %q", reply)
		assert.GreaterOrEqual(t, eval.Score, 0.0)
		assert.LessOrEqual(t, eval.Score, 10.0)
	}
}

func TestEvaluate_ServiceErrorFallsBack(t *testing.T) {
	completion := &fakeCompletion{fn: func(req service.CompletionRequest) (string, error) {
		return "", errors.New("boom")
	}}
	evaluator := NewEvaluator(completion)

	eval := evaluator.Evaluate(context.Background(), "Q?", "short", testRole(), nil)
	assert.NotEmpty(t, eval.Weaknesses)
}

func TestRuleBasedEvaluate_ScoreAlwaysClamped(t *testing.T) {
	evaluator := NewEvaluator(failingCompletion())

	inputs := []string{
		"",
		"!!! ??? ...",
		"a",
		strings.Repeat("word ", 300),
		"I think maybe perhaps I guess",
	}
	for _, input := range inputs {
		eval := evaluator.ruleBasedEvaluate("Q?", input)
		assert.GreaterOrEqual(t, eval.Score, 0.0, "input %q", input)
		assert.LessOrEqual(t, eval.Score, 10.0, "input %q", input)
	}
}

func TestRuleBasedEvaluate_Branches(t *testing.T) {
	evaluator := NewEvaluator(failingCompletion())

	t.Run("brief answer penalized", func(t *testing.T) {
		eval := evaluator.ruleBasedEvaluate("Q?", "I did stuff")
		assert.Contains(t, eval.Weaknesses, "Response is too brief. Provide more detail and examples.")
	})

	t.Run("structured personal answer rewarded", func(t *testing.T) {
		answer := "First I profiled the service, then I isolated the slow query, and finally my fix " +
			"reduced latency by half. For example, we added an index after I traced the scan."
		eval := evaluator.ruleBasedEvaluate("Q?", answer)
		assert.Contains(t, eval.Strengths, "Response shows good structure and organization.")
		assert.Contains(t, eval.Strengths, "Response includes personal experience and examples.")
		// 5.0 + 0.5 length + 0.5 structure + 0.5 personal
		assert.InDelta(t, 6.5, eval.Score, 1e-9)
	})

	t.Run("hedging penalized", func(t *testing.T) {
		answer := "I think maybe the approach would work but perhaps there were other options available to the team at that point."
		eval := evaluator.ruleBasedEvaluate("Q?", answer)
		assert.Contains(t, eval.Weaknesses, "Response contains hedging language. Be more confident in your statements.")
		assert.Contains(t, eval.Suggestions, "Use more confident language. Replace 'I think' with direct statements.")
	})

	t.Run("no first person pronouns flagged", func(t *testing.T) {
		answer := "The team followed standard procedure and the project shipped on schedule without major defects being found later."
		eval := evaluator.ruleBasedEvaluate("Q?", answer)
		assert.Contains(t, eval.Weaknesses, "Response lacks personal examples. Interviewers value specific experiences.")
	})
}
