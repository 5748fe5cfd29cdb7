package usecase

import (
	"strings"
	"testing"

	"github.com/fadilmartias/interview-coach/internal/model"
	"github.com/stretchr/testify/assert"
)

func TestEdgeCase_CapabilityRequests(t *testing.T) {
	tests := []struct {
		name  string
		input string
		tag   string
		want  string
	}{
		{"resume upload", "Can I upload my resume?", "file", "I can't process file uploads"},
		{"video", "Can you see me on video?", "video", "I don't support video interviews"},
		{"multiple roles", "Can we compare multiple roles?", "multiple", "one interview at a time"},
		{"custom question", "Can I add my own question?", "custom", "role-specific questions"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			classifier := NewEdgeCaseClassifier()
			sess := &model.Session{}

			reply := classifier.Process(sess, tt.input)
			assert.Contains(t, reply, tt.want)
			assert.Equal(t, []string{tt.tag}, classifier.CapabilityRequests())
		})
	}
}

func TestEdgeCase_CapabilityShortCircuitsAnySessionState(t *testing.T) {
	classifier := NewEdgeCaseClassifier()

	for _, sess := range []*model.Session{
		{},
		{Started: true, QuestionsAsked: []string{"Q1"}},
	} {
		reply := classifier.Process(sess, "Can I upload my resume?")
		assert.Contains(t, reply, "I can't process file uploads")
	}
}

func TestEdgeCase_ShortInputEscalatesOnThird(t *testing.T) {
	classifier := NewEdgeCaseClassifier()
	sess := &model.Session{}

	first := classifier.Process(sess, "a")
	assert.Contains(t, first, "I didn't catch that")

	second := classifier.Process(sess, "a")
	assert.Contains(t, second, "I didn't catch that")

	third := classifier.Process(sess, "a")
	assert.Contains(t, third, "having trouble understanding")
}

func TestEdgeCase_NonAlphabeticInput(t *testing.T) {
	classifier := NewEdgeCaseClassifier()
	sess := &model.Session{}

	reply := classifier.Process(sess, "12345 67890")
	assert.Contains(t, reply, "I can only process text responses")
}

func TestEdgeCase_GibberishTwoTier(t *testing.T) {
	classifier := NewEdgeCaseClassifier()
	sess := &model.Session{}

	first := classifier.Process(sess, "xzqwrtpsdfgh")
	assert.Contains(t, first, "That doesn't seem like a complete answer")

	second := classifier.Process(sess, "xzqwrtpsdfgh")
	assert.Contains(t, second, "I'm having trouble understanding")
}

func TestEdgeCase_ValidInputResetsCounter(t *testing.T) {
	classifier := NewEdgeCaseClassifier()
	sess := &model.Session{Started: true, QuestionsAsked: []string{"Q1"}}

	classifier.Process(sess, "a")
	classifier.Process(sess, "a")

	// A qualifying answer resets the consecutive-invalid counter.
	reply := classifier.Process(sess, "That is a reasonable answer about my experience")
	assert.Empty(t, reply)

	// Counting starts over: two more short inputs stay on the mild message.
	classifier.Process(sess, "a")
	second := classifier.Process(sess, "a")
	assert.Contains(t, second, "I didn't catch that")
}

func TestEdgeCase_ConfusionBeforeStart(t *testing.T) {
	classifier := NewEdgeCaseClassifier()
	sess := &model.Session{}

	reply := classifier.Process(sess, "I'm confused, what should I do?")
	assert.Contains(t, reply, "start interview")
	assert.Equal(t, model.BehaviorConfused, sess.BehaviorTag)
}

func TestEdgeCase_ConfusionMidInterviewRephrasesQuestion(t *testing.T) {
	classifier := NewEdgeCaseClassifier()
	sess := &model.Session{
		Started:        true,
		QuestionsAsked: []string{"How do you ensure code quality in your projects?"},
	}

	reply := classifier.Process(sess, "I don't know what you mean")
	assert.Contains(t, reply, "How do you ensure code quality in your projects?")
	assert.Equal(t, model.BehaviorConfused, sess.BehaviorTag)
}

func TestEdgeCase_ChattyOver200Words(t *testing.T) {
	classifier := NewEdgeCaseClassifier()
	sess := &model.Session{Started: true}

	rambling := strings.Repeat("and then another thing happened ", 50)
	reply := classifier.Process(sess, rambling)

	assert.Contains(t, reply, "I appreciate your detailed response!")
	assert.Contains(t, reply, "2-3 sentences")
	assert.Equal(t, model.BehaviorChatty, sess.BehaviorTag)
}

func TestEdgeCase_EfficiencyNudgeRequiresExistingTag(t *testing.T) {
	classifier := NewEdgeCaseClassifier()

	// Never fires on an untagged session.
	sess := &model.Session{Started: true}
	assert.Empty(t, classifier.Process(sess, "Logs."))

	// Fires once the controller already tagged the user efficient.
	sess.BehaviorTag = model.BehaviorEfficient
	reply := classifier.Process(sess, "Logs again.")
	assert.Contains(t, reply, "detail")
}

func TestEdgeCase_NormalInputPassesThrough(t *testing.T) {
	classifier := NewEdgeCaseClassifier()
	sess := &model.Session{Started: true, QuestionsAsked: []string{"Q1"}}

	reply := classifier.Process(sess, "I debugged the issue by reading the stack trace and adding a regression test.")
	assert.Empty(t, reply)
}

func TestEdgeCase_CapabilityWinsOverInvalidInput(t *testing.T) {
	classifier := NewEdgeCaseClassifier()
	sess := &model.Session{}

	// "cv" alone is both short and a capability keyword; capability runs first.
	reply := classifier.Process(sess, "cv")
	assert.Contains(t, reply, "I can't process file uploads")
}
