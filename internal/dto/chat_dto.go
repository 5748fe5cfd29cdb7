package dto

import (
	"github.com/fadilmartias/interview-coach/internal/model"
	"github.com/google/uuid"
)

type ChatRequest struct {
	Message string `json:"message"`
}

type ChatResponse struct {
	Reply string `json:"reply"`
}

type SessionDTO struct {
	ID             uuid.UUID         `json:"id"`
	Role           string            `json:"role,omitempty"`
	Started        bool              `json:"started"`
	QuestionIndex  int               `json:"question_index"`
	FollowUpCount  int               `json:"follow_up_count"`
	OffTopicCount  int               `json:"off_topic_count"`
	BehaviorTag    model.BehaviorTag `json:"behavior_tag"`
	QuestionsAsked []string          `json:"questions_asked"`
	OverallScore   float64           `json:"overall_score"`
}
