package usecase

import (
	"context"
	"fmt"
	"log"
	"sort"
	"strings"

	"github.com/fadilmartias/interview-coach/internal/model"
	"github.com/fadilmartias/interview-coach/internal/service"
	"github.com/tidwall/gjson"
)

// Evaluator scores a single question/response pair against the role's rubric.
// The LLM path asks for strict JSON; any service or parse failure drops to the
// deterministic rule-based path, never to the user.
type Evaluator struct {
	completion service.CompletionServiceInterface
}

func NewEvaluator(completion service.CompletionServiceInterface) *Evaluator {
	return &Evaluator{completion: completion}
}

const evaluatorSystemPrompt = `You are an expert interview evaluator. Analyze the candidate's response and provide constructive feedback. Be specific and actionable.

Evaluation Criteria:
%s

Provide your analysis in JSON format with:
- strengths: list of 2-3 specific strengths
- weaknesses: list of 2-3 specific areas for improvement
- suggestions: list of 2-3 actionable suggestions
- score: numerical score from 0-10
- criteria_scores: dict with scores for each criterion (0-10)`

func (e *Evaluator) Evaluate(ctx context.Context, question, response string, role *model.Role, recent []model.Exchange) model.Evaluation {
	eval, err := e.llmEvaluate(ctx, question, response, role, recent)
	if err != nil {
		log.Printf("LLM evaluation failed, using rule-based fallback: %v", err)
		return e.ruleBasedEvaluate(question, response)
	}
	return eval
}

func (e *Evaluator) llmEvaluate(ctx context.Context, question, response string, role *model.Role, recent []model.Exchange) (model.Evaluation, error) {
	var criteria []string
	names := make([]string, 0, len(role.EvaluationCriteria))
	for name := range role.EvaluationCriteria {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		criteria = append(criteria, fmt.Sprintf("- %s: %s", name, role.EvaluationCriteria[name]))
	}

	var user strings.Builder
	if len(recent) > 0 {
		user.WriteString("Recent exchanges:\n")
		for _, ex := range recent {
			fmt.Fprintf(&user, "Q: %s\nA: %s\n", ex.Question, ex.Response)
		}
		user.WriteString("\n")
	}
	fmt.Fprintf(&user, "Question: %s\n\nResponse: %s\n\nPlease provide detailed feedback in JSON format.", question, response)

	reply, err := e.completion.Complete(ctx, service.CompletionRequest{
		System:      fmt.Sprintf(evaluatorSystemPrompt, strings.Join(criteria, "\n")),
		User:        user.String(),
		Temperature: 0.3,
	})
	if err != nil {
		return model.Evaluation{}, err
	}

	doc := extractJSONObject(reply)
	if doc == "" {
		return model.Evaluation{}, fmt.Errorf("no JSON object in evaluation reply")
	}

	scoreField := gjson.Get(doc, "score")
	if !scoreField.Exists() {
		return model.Evaluation{}, fmt.Errorf("evaluation reply missing score")
	}

	criteriaScores := make(map[string]float64)
	for name, value := range gjson.Get(doc, "criteria_scores").Map() {
		criteriaScores[name] = value.Float()
	}

	return model.Evaluation{
		Question:       question,
		Response:       response,
		Strengths:      stringList(gjson.Get(doc, "strengths")),
		Weaknesses:     stringList(gjson.Get(doc, "weaknesses")),
		Suggestions:    stringList(gjson.Get(doc, "suggestions")),
		Score:          clampScore(scoreField.Float()),
		CriteriaScores: criteriaScores,
	}, nil
}

// ruleBasedEvaluate is the deterministic fallback: length, structure,
// personal-example, and hedging heuristics around a 5.0 baseline.
func (e *Evaluator) ruleBasedEvaluate(question, response string) model.Evaluation {
	responseLower := strings.ToLower(response)
	words := strings.Fields(response)
	wordCount := len(words)

	var strengths, weaknesses, suggestions []string
	score := 5.0

	switch {
	case wordCount < 20:
		weaknesses = append(weaknesses, "Response is too brief. Provide more detail and examples.")
		score -= 1.5
	case wordCount > 200:
		weaknesses = append(weaknesses, "Response may be too lengthy. Consider being more concise.")
		score -= 0.5
	default:
		strengths = append(strengths, "Appropriate response length with good detail.")
		score += 0.5
	}

	if containsAny(responseLower, "first", "then", "finally", "because", "example") {
		strengths = append(strengths, "Response shows good structure and organization.")
		score += 0.5
	} else {
		weaknesses = append(weaknesses, "Response could benefit from clearer structure (e.g., using examples, step-by-step explanation).")
		suggestions = append(suggestions, "Use the STAR method (Situation, Task, Action, Result) to structure your responses.")
	}

	if containsAnyWord(responseLower, "i", "my", "we", "our") {
		strengths = append(strengths, "Response includes personal experience and examples.")
		score += 0.5
	} else {
		weaknesses = append(weaknesses, "Response lacks personal examples. Interviewers value specific experiences.")
		suggestions = append(suggestions, "Include specific examples from your experience to make your response more compelling.")
	}

	if containsAny(responseLower, "i think", "maybe", "perhaps", "i guess") {
		weaknesses = append(weaknesses, "Response contains hedging language. Be more confident in your statements.")
		score -= 0.5
		suggestions = append(suggestions, "Use more confident language. Replace 'I think' with direct statements.")
	}

	return model.Evaluation{
		Question:       question,
		Response:       response,
		Strengths:      strengths,
		Weaknesses:     weaknesses,
		Suggestions:    suggestions,
		Score:          clampScore(score),
		CriteriaScores: map[string]float64{},
	}
}

// extractJSONObject returns the first brace-delimited object in text, or "".
func extractJSONObject(text string) string {
	start := strings.Index(text, "{")
	end := strings.LastIndex(text, "}")
	if start < 0 || end <= start {
		return ""
	}
	return text[start : end+1]
}

func stringList(result gjson.Result) []string {
	var out []string
	for _, item := range result.Array() {
		out = append(out, item.String())
	}
	return out
}

func clampScore(score float64) float64 {
	if score < 0 {
		return 0
	}
	if score > 10 {
		return 10
	}
	return score
}

func containsAny(haystack string, needles ...string) bool {
	for _, needle := range needles {
		if strings.Contains(haystack, needle) {
			return true
		}
	}
	return false
}

// containsAnyWord matches whole words only, so "i" does not match every word
// containing the letter.
func containsAnyWord(haystack string, words ...string) bool {
	tokens := strings.Fields(haystack)
	for _, token := range tokens {
		token = strings.Trim(token, ".,!?;:'\"()")
		for _, word := range words {
			if token == word {
				return true
			}
		}
	}
	return false
}
