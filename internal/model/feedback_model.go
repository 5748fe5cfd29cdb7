package model

import "time"

// Evaluation is the structured assessment of a single response, on a 0-10 scale.
// Immutable after creation.
type Evaluation struct {
	Question       string             `json:"question"`
	Response       string             `json:"response"`
	Strengths      []string           `json:"strengths"`
	Weaknesses     []string           `json:"weaknesses"`
	Suggestions    []string           `json:"suggestions"`
	Score          float64            `json:"score"`
	CriteriaScores map[string]float64 `json:"criteria_scores"`
}

// Feedback accumulates per-turn evaluations for one session.
type Feedback struct {
	Role              string       `json:"role"`
	StartTime         time.Time    `json:"start_time"`
	EndTime           time.Time    `json:"end_time"`
	TotalQuestions    int          `json:"total_questions"`
	Evaluations       []Evaluation `json:"evaluations"`
	OverallStrengths  []string     `json:"overall_strengths"`
	OverallWeaknesses []string     `json:"overall_weaknesses"`
	OverallScore      float64      `json:"overall_score"`
	Recommendations   []string     `json:"recommendations"`
}

// AddEvaluation appends an evaluation and recomputes the running mean score.
func (f *Feedback) AddEvaluation(eval Evaluation) {
	f.Evaluations = append(f.Evaluations, eval)

	var sum float64
	for _, e := range f.Evaluations {
		sum += e.Score
	}
	f.OverallScore = sum / float64(len(f.Evaluations))
	f.TotalQuestions = len(f.Evaluations)
}
