package usecase

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/fadilmartias/interview-coach/internal/model"
)

// EdgeCaseClassifier screens raw input before normal turn processing. Checks
// run in a fixed priority order and the first non-empty reply wins; an empty
// reply means normal processing continues.
type EdgeCaseClassifier struct {
	invalidInputCount  int
	capabilityRequests []string
}

func NewEdgeCaseClassifier() *EdgeCaseClassifier {
	return &EdgeCaseClassifier{}
}

var confusedIndicators = []string{
	"i don't know", "i'm not sure", "what do you mean",
	"can you explain", "i'm confused", "how does this work",
	"what should i do", "help me understand",
}

var capabilityKeywords = map[string][]string{
	"video":    {"video", "camera", "see me", "visual"},
	"file":     {"upload", "file", "document", "resume", "cv"},
	"multiple": {"multiple roles", "compare", "different roles"},
	"custom":   {"custom question", "my own question", "add question"},
}

var capabilityResponses = map[string]string{
	"video":    "I don't support video interviews, but I can conduct voice or text-based interviews. Would you like to continue?",
	"file":     "I can't process file uploads, but you can describe your experience in your answers. That's actually great practice for verbal communication in interviews!",
	"multiple": "I can conduct one interview at a time. After we finish this one, you can start a new interview for a different role. Would you like to continue?",
	"custom":   "I use role-specific questions to give you realistic practice. However, you can mention specific topics you'd like to discuss in your answers, and I'll ask follow-ups. Sound good?",
}

const genericCapabilityResponse = "I understand your request, but that's not something I can do right now. I'm focused on conducting mock interviews with role-specific questions. Is there something else I can help you with?"

// Order matters: capability requests first, then degenerate input, confusion,
// the efficiency nudge, and chattiness last.
func (c *EdgeCaseClassifier) Process(sess *model.Session, input string) string {
	if reply := c.handleCapabilityRequest(input); reply != "" {
		return reply
	}
	if reply := c.handleInvalidInput(input); reply != "" {
		return reply
	}
	if reply := c.handleConfusedUser(sess, input); reply != "" {
		return reply
	}
	if reply := c.handleEfficientUser(sess, input); reply != "" {
		return reply
	}
	if reply := c.handleChattyUser(sess, input); reply != "" {
		return reply
	}
	return ""
}

// CapabilityRequests returns the tags of out-of-scope asks seen so far.
func (c *EdgeCaseClassifier) CapabilityRequests() []string {
	return c.capabilityRequests
}

func (c *EdgeCaseClassifier) handleCapabilityRequest(input string) string {
	inputLower := strings.ToLower(input)
	// Fixed iteration order so the same input always maps to the same tag.
	for _, capability := range []string{"video", "file", "multiple", "custom"} {
		for _, keyword := range capabilityKeywords[capability] {
			if strings.Contains(inputLower, keyword) {
				c.capabilityRequests = append(c.capabilityRequests, capability)
				if reply, ok := capabilityResponses[capability]; ok {
					return reply
				}
				return genericCapabilityResponse
			}
		}
	}
	return ""
}

func (c *EdgeCaseClassifier) handleInvalidInput(input string) string {
	trimmedLen := utf8.RuneCountInString(strings.TrimSpace(input))
	if trimmedLen < 2 {
		c.invalidInputCount++
		if c.invalidInputCount >= 3 {
			return "I'm having trouble understanding your input. Could you please type more clearly? If you need help, type 'help'. To move to the next question, I'll continue..."
		}
		return "I didn't catch that. Could you please repeat your answer?"
	}

	hasAlpha := false
	for _, r := range input {
		if unicode.IsLetter(r) {
			hasAlpha = true
			break
		}
	}
	if !hasAlpha {
		c.invalidInputCount++
		return "I can only process text responses. Could you please provide your answer in words?"
	}

	runeLen := utf8.RuneCountInString(input)
	if len(strings.Fields(input)) > 0 && runeLen > 5 {
		vowels := 0
		for _, r := range strings.ToLower(input) {
			if strings.ContainsRune("aeiou", r) {
				vowels++
			}
		}
		if float64(vowels) < float64(runeLen)*0.1 {
			c.invalidInputCount++
			if c.invalidInputCount >= 2 {
				return "I'm having trouble understanding. If you'd like to skip this question or need help, just let me know. Otherwise, please provide a clear answer."
			}
			return "That doesn't seem like a complete answer. Could you please try again?"
		}
	}

	if trimmedLen > 2 && hasAlpha {
		c.invalidInputCount = 0
	}

	return ""
}

func (c *EdgeCaseClassifier) handleConfusedUser(sess *model.Session, input string) string {
	inputLower := strings.ToLower(input)
	for _, indicator := range confusedIndicators {
		if strings.Contains(inputLower, indicator) {
			sess.BehaviorTag = model.BehaviorConfused

			if !sess.Started {
				return "No problem! Here's how it works: I'll act as your interviewer and ask you questions for the role you choose. Answer naturally, and at the end you'll get feedback on your responses. Type 'start interview [role]' to begin, or 'help' to see the available roles."
			}

			currentQuestion := sess.LastQuestion()
			return fmt.Sprintf("No worries, let me rephrase that. %s Take your time - there are no wrong answers in a practice session.", currentQuestion)
		}
	}
	return ""
}

// handleEfficientUser only fires once the session is already tagged
// "efficient", which cannot happen on a first turn. Inherited ordering quirk;
// kept as-is.
func (c *EdgeCaseClassifier) handleEfficientUser(sess *model.Session, input string) string {
	if sess.BehaviorTag == model.BehaviorEfficient && len(strings.Fields(input)) < 5 {
		return "Short and to the point! In a real interview though, a bit more detail helps. Try adding an example or some context to your answer."
	}
	return ""
}

func (c *EdgeCaseClassifier) handleChattyUser(sess *model.Session, input string) string {
	if len(strings.Fields(input)) > 200 {
		sess.BehaviorTag = model.BehaviorChatty
		return "I appreciate your detailed response! However, in interviews, it's important to be concise and stay on topic. Could you summarize your main point in 2-3 sentences?"
	}
	return ""
}
