package usecase

import (
	"context"
	"fmt"
	"log"
	"math/rand"
	"strings"
	"time"

	"github.com/fadilmartias/interview-coach/internal/config"
	"github.com/fadilmartias/interview-coach/internal/model"
	"github.com/fadilmartias/interview-coach/internal/repository"
	"github.com/fadilmartias/interview-coach/internal/service"
	"github.com/google/uuid"
)

// InterviewUsecase is the dialogue controller. It owns the single active
// session, drives the scripted question sequence, and decides between
// redirecting, probing with a follow-up, advancing, or ending the session.
//
// One utterance in, one reply out; there are no overlapping turns and the
// session is mutated by this type only.
type InterviewUsecase struct {
	cfg        config.InterviewConfig
	roleRepo   *repository.RoleRepository
	completion service.CompletionServiceInterface
	evaluator  *Evaluator
	analyzer   *FeedbackAnalyzer
	edgeCases  *EdgeCaseClassifier
	rng        *rand.Rand
	now        func() time.Time

	session *model.Session
}

func NewInterviewUsecase(cfg config.InterviewConfig, roleRepo *repository.RoleRepository, completion service.CompletionServiceInterface, rng *rand.Rand) *InterviewUsecase {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &InterviewUsecase{
		cfg:        cfg,
		roleRepo:   roleRepo,
		completion: completion,
		evaluator:  NewEvaluator(completion),
		analyzer:   NewFeedbackAnalyzer(),
		edgeCases:  NewEdgeCaseClassifier(),
		rng:        rng,
		now:        time.Now,
		session:    &model.Session{},
	}
}

var greetingTemplates = []string{
	"Hello! Welcome to your mock interview for the %s position. I'm excited to learn more about you. Let's begin with our first question.",
	"Good to meet you! Today we'll be conducting a practice interview for the %s role. I'll ask you some questions, and feel free to answer naturally. Ready?",
	"Hi there! I'll be your interviewer today for the %s position. This is a practice session, so take your time and be yourself. Shall we start?",
}

var redirectTemplates = []string{
	"I appreciate your response. Let's refocus on the question I asked earlier.",
	"That's an interesting point. To help you practice, let's stay on topic with the interview question.",
	"I understand, but let's get back to the question so we can make the most of this practice session.",
}

var fallbackFollowUps = []string{
	"Can you walk me through your specific process in more detail?",
	"What was the outcome of that approach?",
	"Can you give me a concrete example of how you applied that?",
	"What challenges did you face and how did you overcome them?",
}

// StartInterview replaces any prior session with a fresh one for the given
// role. A lookup failure comes back as a user-facing message, not an error.
func (u *InterviewUsecase) StartInterview(roleName string) string {
	role, err := u.roleRepo.FindRole(roleName)
	if err != nil {
		return err.Error()
	}

	u.session = &model.Session{
		ID:      uuid.New(),
		Role:    role,
		Started: true,
	}
	u.session.Feedback = u.analyzer.StartSession(roleName, u.now())

	return fmt.Sprintf(greetingTemplates[u.rng.Intn(len(greetingTemplates))], role.Name)
}

// GetNextQuestion advances the scripted-question cursor, or ends the session
// with the feedback summary once the script is exhausted.
func (u *InterviewUsecase) GetNextQuestion() string {
	if u.session.Role == nil {
		return "Please start an interview first by selecting a role."
	}

	if u.session.QuestionIndex >= len(u.session.Role.CoreQuestions) {
		return u.endInterview()
	}

	question := u.session.Role.CoreQuestions[u.session.QuestionIndex]
	u.session.QuestionsAsked = append(u.session.QuestionsAsked, question)
	u.session.QuestionIndex++
	u.session.FollowUpCount = 0

	return question
}

// ProcessResponse runs one normal turn: behavior tagging, the off-topic
// check, evaluation, and the follow-up-vs-advance decision.
func (u *InterviewUsecase) ProcessResponse(ctx context.Context, response string) string {
	if !u.session.Started {
		return "Please start an interview first by selecting a role."
	}

	u.detectBehaviorTag(response)

	if u.checkOffTopic(ctx, response) {
		u.session.OffTopicCount++
		if u.session.OffTopicCount >= u.cfg.MaxOffTopicRedirects {
			return "I notice we keep going off-topic. Let's try to focus on the interview questions. Would you like to continue, or should we end the session?"
		}
		return u.redirectToTopic()
	}

	u.session.OffTopicCount = 0

	currentQuestion := u.session.LastQuestion()
	if currentQuestion == "" {
		currentQuestion = "Initial question"
	}
	u.session.History = append(u.session.History, model.Exchange{
		Question:  currentQuestion,
		Response:  response,
		Timestamp: u.now(),
	})

	recent := u.session.History
	if len(recent) > 3 {
		recent = recent[len(recent)-3:]
	}
	evaluation := u.evaluator.Evaluate(ctx, currentQuestion, response, u.session.Role, recent)
	u.session.Feedback.AddEvaluation(evaluation)

	if u.shouldAskFollowUp(response, evaluation) && u.session.FollowUpCount < u.cfg.MaxFollowUps {
		u.session.FollowUpCount++
		followUp := u.generateFollowUp(ctx, response, currentQuestion)
		u.session.QuestionsAsked = append(u.session.QuestionsAsked, followUp)
		return followUp
	}

	u.session.FollowUpCount = 0
	return u.GetNextQuestion()
}

var controllerConfusedIndicators = []string{
	"i don't know", "i'm not sure", "what do you mean", "can you explain", "i'm confused",
}

func (u *InterviewUsecase) detectBehaviorTag(response string) {
	responseLower := strings.ToLower(response)
	wordCount := len(strings.Fields(response))

	for _, indicator := range controllerConfusedIndicators {
		if strings.Contains(responseLower, indicator) {
			u.session.BehaviorTag = model.BehaviorConfused
			return
		}
	}

	if wordCount < 15 && u.session.BehaviorTag != model.BehaviorChatty {
		u.session.BehaviorTag = model.BehaviorEfficient
		return
	}

	if wordCount > 150 || u.session.OffTopicCount > 0 {
		u.session.BehaviorTag = model.BehaviorChatty
		return
	}

	if u.session.BehaviorTag == model.BehaviorUnset {
		u.session.BehaviorTag = model.BehaviorNormal
	}
}

// checkOffTopic asks the completion service for a strict YES/NO relevance
// verdict; on failure it falls back to keyword overlap between question and
// response. Short replies are never flagged by the fallback.
func (u *InterviewUsecase) checkOffTopic(ctx context.Context, response string) bool {
	if len(u.session.QuestionsAsked) == 0 {
		return false
	}

	currentQuestion := u.session.LastQuestion()

	reply, err := u.completion.Complete(ctx, service.CompletionRequest{
		System:      "You are an interview evaluator. Determine if the candidate's response is relevant to the question asked. Reply with only 'YES' if relevant or 'NO' if off-topic.",
		User:        fmt.Sprintf("Question: %s\nResponse: %s\nIs this response relevant to the question?", currentQuestion, response),
		Temperature: u.cfg.Temperature,
	})
	if err != nil {
		log.Printf("Off-topic check failed, using keyword overlap: %v", err)
		questionWords := wordSet(currentQuestion)
		responseWords := wordSet(response)
		overlap := 0
		for word := range responseWords {
			if questionWords[word] {
				overlap++
			}
		}
		return overlap < 2 && len(strings.Fields(response)) > 20
	}

	return strings.Contains(strings.ToUpper(reply), "NO")
}

// shouldAskFollowUp decides whether to probe. The first four branches are
// deterministic; the last is a 20% chance that keeps the interview from
// feeling mechanical.
func (u *InterviewUsecase) shouldAskFollowUp(response string, evaluation model.Evaluation) bool {
	if u.session.FollowUpCount >= 1 {
		return false
	}

	if len(strings.TrimSpace(response)) < 3 {
		return false
	}

	wordCount := len(strings.Fields(response))
	if wordCount < 20 && wordCount > 2 {
		return true
	}

	if evaluation.Score < 5.0 && wordCount < 40 {
		return true
	}

	if u.session.BehaviorTag == model.BehaviorEfficient && wordCount < 25 {
		return true
	}

	if u.rng.Float64() < 0.2 && u.session.FollowUpCount == 0 && wordCount < 50 && wordCount > 15 {
		return true
	}

	return false
}

func (u *InterviewUsecase) generateFollowUp(ctx context.Context, response, originalQuestion string) string {
	wordCount := len(strings.Fields(response))

	var instruction string
	switch {
	case wordCount < 20:
		instruction = "The candidate gave a very brief response. Ask them to elaborate with more details and specific examples."
	case u.session.BehaviorTag == model.BehaviorEfficient:
		instruction = "The candidate is being efficient. Encourage them to provide more context and depth."
	default:
		instruction = "Ask a specific follow-up that digs deeper into something concrete they mentioned."
	}

	reply, err := u.completion.Complete(ctx, service.CompletionRequest{
		System: "You are an experienced interviewer conducting a mock interview. Generate a natural follow-up question based on the candidate's response. Be conversational and encouraging.",
		User: fmt.Sprintf("Original Question: %s\nCandidate's Response: %s\nRole: %s\nInstruction: %s\nGenerate a follow-up question:",
			originalQuestion, response, u.session.Role.Description, instruction),
		Temperature: u.cfg.Temperature,
	})
	if err != nil {
		log.Printf("Follow-up generation failed, using template: %v", err)
		if wordCount < 20 {
			return "Could you elaborate more on that? I'd like to hear more details about your approach."
		}
		return fallbackFollowUps[u.rng.Intn(len(fallbackFollowUps))]
	}

	return strings.Trim(strings.TrimSpace(reply), `"'`)
}

func (u *InterviewUsecase) redirectToTopic() string {
	redirect := redirectTemplates[u.rng.Intn(len(redirectTemplates))]
	return fmt.Sprintf("%s\n\n%s", redirect, u.session.LastQuestion())
}

func (u *InterviewUsecase) endInterview() string {
	feedback := u.analyzer.Feedback()
	if feedback == nil {
		return "Interview session not found."
	}

	roleName := "Unknown"
	if u.session.Role != nil {
		roleName = u.session.Role.Name
	}
	final := u.analyzer.Finalize(roleName, feedback.StartTime, u.now())

	u.session.Started = false

	return "Thank you for completing the interview!\n\n" + RenderSummary(final)
}

// HandleUserInput is the outer entry point: edge cases short-circuit first,
// then commands, then free text goes to ProcessResponse.
func (u *InterviewUsecase) HandleUserInput(ctx context.Context, input string) string {
	inputLower := strings.ToLower(strings.TrimSpace(input))

	if reply := u.edgeCases.Process(u.session, input); reply != "" {
		return reply
	}

	switch inputLower {
	case "quit", "exit", "end":
		if u.session.Started {
			return u.endInterview()
		}
		return "Goodbye! Thanks for practicing with me."
	case "help", "commands":
		return u.helpMessage()
	}

	if strings.HasPrefix(inputLower, "start interview") {
		role := strings.TrimSpace(strings.TrimPrefix(inputLower, "start interview"))
		if role == "" {
			return "Please specify a role. Available roles: " + strings.Join(u.roleRepo.ListRoleKeys(), ", ")
		}
		return u.StartInterview(role)
	}

	if !u.session.Started {
		return "Please start an interview first. Type 'start interview [role]' or use the help command to see available roles."
	}

	return u.ProcessResponse(ctx, input)
}

// Session exposes the active session for read-only presentation.
func (u *InterviewUsecase) Session() *model.Session {
	return u.session
}

func (u *InterviewUsecase) ListAvailableRoles() []string {
	return u.roleRepo.ListRoleKeys()
}

func (u *InterviewUsecase) helpMessage() string {
	roles := u.roleRepo.ListRoleKeys()
	return fmt.Sprintf(`Available Commands:
  - start interview [role] - Begin a new interview session
  - quit/exit/end - End the current session
  - help - Show this message

Available Roles: %s

Example: 'start interview software engineer'`, strings.Join(roles, ", "))
}

func wordSet(text string) map[string]bool {
	set := make(map[string]bool)
	for _, word := range strings.Fields(strings.ToLower(text)) {
		set[word] = true
	}
	return set
}
