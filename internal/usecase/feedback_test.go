package usecase

import (
	"testing"
	"time"

	"github.com/fadilmartias/interview-coach/internal/model"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddEvaluation_OverallScoreIsMean(t *testing.T) {
	feedback := &model.Feedback{Role: "software engineer"}

	feedback.AddEvaluation(model.Evaluation{Score: 4.0})
	assert.InDelta(t, 4.0, feedback.OverallScore, 1e-9)

	feedback.AddEvaluation(model.Evaluation{Score: 8.0})
	assert.InDelta(t, 6.0, feedback.OverallScore, 1e-9)

	feedback.AddEvaluation(model.Evaluation{Score: 6.0})
	assert.InDelta(t, 6.0, feedback.OverallScore, 1e-9)
	assert.Equal(t, 3, feedback.TotalQuestions)
}

func TestTopByFrequency(t *testing.T) {
	tests := []struct {
		name  string
		items []string
		n     int
		want  []string
	}{
		{
			name:  "ranks by count",
			items: []string{"a", "b", "b", "c", "c", "c"},
			n:     3,
			want:  []string{"c", "b", "a"},
		},
		{
			name:  "ties keep first-seen order",
			items: []string{"x", "y", "z", "x", "y", "z"},
			n:     2,
			want:  []string{"x", "y"},
		},
		{
			name:  "fewer than n items",
			items: []string{"only"},
			n:     3,
			want:  []string{"only"},
		},
		{
			name:  "empty input",
			items: nil,
			n:     3,
			want:  nil,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := topByFrequency(tt.items, tt.n)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("topByFrequency mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestDedupeCapped(t *testing.T) {
	got := dedupeCapped([]string{"a", "b", "a", "c", "b", "d", "e", "f"}, 5)
	want := []string{"a", "b", "c", "d", "e"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("dedupeCapped mismatch (-want +got):\n%s", diff)
	}
}

func TestFinalize_Aggregates(t *testing.T) {
	analyzer := NewFeedbackAnalyzer()
	start := time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)
	analyzer.StartSession("software engineer", start)

	analyzer.Feedback().AddEvaluation(model.Evaluation{
		Score:       6,
		Strengths:   []string{"clear structure", "good examples"},
		Weaknesses:  []string{"too brief"},
		Suggestions: []string{"use STAR", "add metrics"},
	})
	analyzer.Feedback().AddEvaluation(model.Evaluation{
		Score:       8,
		Strengths:   []string{"clear structure"},
		Weaknesses:  []string{"too brief", "hedging"},
		Suggestions: []string{"use STAR"},
	})

	final := analyzer.Finalize("software engineer", start, start.Add(12*time.Minute))

	require.NotNil(t, final)
	assert.Equal(t, []string{"clear structure", "good examples"}, final.OverallStrengths)
	assert.Equal(t, []string{"too brief", "hedging"}, final.OverallWeaknesses)
	assert.Equal(t, []string{"use STAR", "add metrics"}, final.Recommendations)
	assert.InDelta(t, 7.0, final.OverallScore, 1e-9)
	assert.Equal(t, start.Add(12*time.Minute), final.EndTime)
}

func TestRenderSummary_Format(t *testing.T) {
	start := time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)
	feedback := &model.Feedback{
		Role:              "Software Engineer",
		StartTime:         start,
		EndTime:           start.Add(15 * time.Minute),
		TotalQuestions:    5,
		OverallScore:      7.25,
		OverallStrengths:  []string{"clear structure"},
		OverallWeaknesses: []string{"too brief"},
		Recommendations:   []string{"use STAR"},
	}

	summary := RenderSummary(feedback)

	assert.Contains(t, summary, "INTERVIEW FEEDBACK SUMMARY")
	assert.Contains(t, summary, "Role: Software Engineer")
	assert.Contains(t, summary, "Duration: 15.0 minutes")
	assert.Contains(t, summary, "Total Questions: 5")
	assert.Contains(t, summary, "Overall Score: 7.2/10.0")
	assert.Contains(t, summary, "OVERALL STRENGTHS:\n  1. clear structure")
	assert.Contains(t, summary, "AREAS FOR IMPROVEMENT:\n  1. too brief")
	assert.Contains(t, summary, "RECOMMENDATIONS:\n  1. use STAR")
}
