package model

// Role is a job profile with its scripted questions and scoring rubric.
// Roles are loaded once at startup and never mutated.
type Role struct {
	Key                string            `yaml:"key" json:"key"`
	Name               string            `yaml:"name" json:"name"`
	Description        string            `yaml:"description" json:"description"`
	CoreQuestions      []string          `yaml:"core_questions" json:"core_questions"`
	FollowUpTopics     []string          `yaml:"follow_up_topics" json:"follow_up_topics"`
	EvaluationCriteria map[string]string `yaml:"evaluation_criteria" json:"evaluation_criteria"`
	DifficultyLevel    string            `yaml:"difficulty_level" json:"difficulty_level"`
}
