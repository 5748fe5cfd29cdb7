package usecase

import (
	"fmt"
	"strings"
	"time"

	"github.com/fadilmartias/interview-coach/internal/model"
)

// FeedbackAnalyzer owns the feedback accumulator for the active session and
// turns per-turn evaluations into the final summary.
type FeedbackAnalyzer struct {
	feedback *model.Feedback
}

func NewFeedbackAnalyzer() *FeedbackAnalyzer {
	return &FeedbackAnalyzer{}
}

// StartSession discards any previous accumulator and begins a fresh one.
func (a *FeedbackAnalyzer) StartSession(role string, startTime time.Time) *model.Feedback {
	a.feedback = &model.Feedback{
		Role:      role,
		StartTime: startTime,
		EndTime:   startTime,
	}
	return a.feedback
}

func (a *FeedbackAnalyzer) Feedback() *model.Feedback {
	return a.feedback
}

// Finalize stamps the end time and derives the session-level aggregates:
// top-3 most frequent strengths and weaknesses, and up to 5 deduplicated
// recommendations in first-seen order.
func (a *FeedbackAnalyzer) Finalize(role string, startTime, endTime time.Time) *model.Feedback {
	if a.feedback == nil {
		a.feedback = &model.Feedback{
			Role:      role,
			StartTime: startTime,
		}
	}
	a.feedback.EndTime = endTime

	var allStrengths, allWeaknesses, allSuggestions []string
	for _, eval := range a.feedback.Evaluations {
		allStrengths = append(allStrengths, eval.Strengths...)
		allWeaknesses = append(allWeaknesses, eval.Weaknesses...)
		allSuggestions = append(allSuggestions, eval.Suggestions...)
	}

	a.feedback.OverallStrengths = topByFrequency(allStrengths, 3)
	a.feedback.OverallWeaknesses = topByFrequency(allWeaknesses, 3)
	a.feedback.Recommendations = dedupeCapped(allSuggestions, 5)

	return a.feedback
}

// topByFrequency returns the n most frequent items, most frequent first.
// Ties keep first-seen order so summaries are stable across runs.
func topByFrequency(items []string, n int) []string {
	counts := make(map[string]int, len(items))
	var order []string
	for _, item := range items {
		if counts[item] == 0 {
			order = append(order, item)
		}
		counts[item]++
	}

	ranked := make([]string, len(order))
	copy(ranked, order)
	// Insertion sort keeps the first-seen order stable within equal counts.
	for i := 1; i < len(ranked); i++ {
		for j := i; j > 0 && counts[ranked[j]] > counts[ranked[j-1]]; j-- {
			ranked[j], ranked[j-1] = ranked[j-1], ranked[j]
		}
	}

	if len(ranked) > n {
		ranked = ranked[:n]
	}
	return ranked
}

// dedupeCapped removes duplicates preserving first-seen order, capped at max.
func dedupeCapped(items []string, max int) []string {
	seen := make(map[string]bool, len(items))
	var out []string
	for _, item := range items {
		if seen[item] {
			continue
		}
		seen[item] = true
		out = append(out, item)
		if len(out) >= max {
			break
		}
	}
	return out
}

// RenderSummary renders the human-readable feedback block shown when a
// session ends.
func RenderSummary(f *model.Feedback) string {
	divider := strings.Repeat("=", 60)
	duration := f.EndTime.Sub(f.StartTime).Minutes()

	var b strings.Builder
	b.WriteString("\n" + divider + "\n")
	b.WriteString("INTERVIEW FEEDBACK SUMMARY\n")
	b.WriteString(divider + "\n\n")
	b.WriteString(fmt.Sprintf("Role: %s\n", f.Role))
	b.WriteString(fmt.Sprintf("Duration: %.1f minutes\n", duration))
	b.WriteString(fmt.Sprintf("Total Questions: %d\n", f.TotalQuestions))
	b.WriteString(fmt.Sprintf("Overall Score: %.1f/10.0\n", f.OverallScore))

	b.WriteString("\nOVERALL STRENGTHS:\n")
	for i, strength := range f.OverallStrengths {
		b.WriteString(fmt.Sprintf("  %d. %s\n", i+1, strength))
	}

	b.WriteString("\nAREAS FOR IMPROVEMENT:\n")
	for i, weakness := range f.OverallWeaknesses {
		b.WriteString(fmt.Sprintf("  %d. %s\n", i+1, weakness))
	}

	b.WriteString("\nRECOMMENDATIONS:\n")
	for i, rec := range f.Recommendations {
		b.WriteString(fmt.Sprintf("  %d. %s\n", i+1, rec))
	}

	b.WriteString("\n" + divider + "\n")
	return b.String()
}
