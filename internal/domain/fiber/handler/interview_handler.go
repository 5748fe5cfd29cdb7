package handler

import (
	"strings"
	"time"

	"github.com/fadilmartias/interview-coach/internal/dto"
	"github.com/fadilmartias/interview-coach/internal/middleware"
	"github.com/fadilmartias/interview-coach/internal/usecase"
	"github.com/fadilmartias/interview-coach/internal/util"
	"github.com/gofiber/fiber/v2"
)

// InterviewHandler exposes the single-session interview agent over HTTP.
// The controller is not safe for concurrent turns, so /chat is throttled to
// one request per second by the rate limiter.
type InterviewHandler struct {
	uc *usecase.InterviewUsecase
}

func NewInterviewHandler(uc *usecase.InterviewUsecase) *InterviewHandler {
	return &InterviewHandler{uc: uc}
}

func (h *InterviewHandler) RegisterRoutes(app *fiber.App) {
	app.Post("/chat", middleware.RateLimiter(1, 1*time.Second), h.Chat)
	app.Get("/roles", h.Roles)
	app.Get("/session", h.Session)
}

func (h *InterviewHandler) Chat(c *fiber.Ctx) error {
	var req dto.ChatRequest
	if err := c.BodyParser(&req); err != nil {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    fiber.StatusBadRequest,
			Message: "invalid request body",
		}, err)
	}
	if strings.TrimSpace(req.Message) == "" {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    fiber.StatusBadRequest,
			Message: "message is required",
		})
	}

	reply := h.uc.HandleUserInput(c.UserContext(), req.Message)

	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Message: "Success process message",
		Data:    dto.ChatResponse{Reply: reply},
	})
}

func (h *InterviewHandler) Roles(c *fiber.Ctx) error {
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Message: "Success get roles",
		Data:    h.uc.ListAvailableRoles(),
	})
}

func (h *InterviewHandler) Session(c *fiber.Ctx) error {
	sess := h.uc.Session()

	data := dto.SessionDTO{
		ID:             sess.ID,
		Started:        sess.Started,
		QuestionIndex:  sess.QuestionIndex,
		FollowUpCount:  sess.FollowUpCount,
		OffTopicCount:  sess.OffTopicCount,
		BehaviorTag:    sess.BehaviorTag,
		QuestionsAsked: sess.QuestionsAsked,
	}
	if sess.Role != nil {
		data.Role = sess.Role.Key
	}
	if sess.Feedback != nil {
		data.OverallScore = sess.Feedback.OverallScore
	}

	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Message: "Success get session",
		Data:    data,
	})
}
