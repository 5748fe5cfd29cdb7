package model

import (
	"time"

	"github.com/google/uuid"
)

// BehaviorTag is a coarse classification of the candidate's conversational style.
type BehaviorTag string

const (
	BehaviorUnset     BehaviorTag = ""
	BehaviorConfused  BehaviorTag = "confused"
	BehaviorEfficient BehaviorTag = "efficient"
	BehaviorChatty    BehaviorTag = "chatty"
	BehaviorNormal    BehaviorTag = "normal"
)

// Exchange is one recorded question/response turn.
type Exchange struct {
	Question  string    `json:"question"`
	Response  string    `json:"response"`
	Timestamp time.Time `json:"timestamp"`
}

// Session is the state of one interview attempt. A new session replaces the
// previous one outright; nothing survives a restart.
type Session struct {
	ID             uuid.UUID   `json:"id"`
	Role           *Role       `json:"role,omitempty"`
	QuestionsAsked []string    `json:"questions_asked"`
	History        []Exchange  `json:"history"`
	QuestionIndex  int         `json:"question_index"`
	FollowUpCount  int         `json:"follow_up_count"`
	OffTopicCount  int         `json:"off_topic_count"`
	BehaviorTag    BehaviorTag `json:"behavior_tag"`
	Started        bool        `json:"started"`
	Feedback       *Feedback   `json:"feedback,omitempty"`
}

// LastQuestion returns the most recently asked question, or "" before any
// question has been asked.
func (s *Session) LastQuestion() string {
	if len(s.QuestionsAsked) == 0 {
		return ""
	}
	return s.QuestionsAsked[len(s.QuestionsAsked)-1]
}
