package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/nyayasathi/nyayasathi-be/internal/delivery/http/domain"
	"github.com/nyayasathi/nyayasathi-be/internal/delivery/http/entity"
	"github.com/nyayasathi/nyayasathi-be/internal/delivery/http/middleware"
	"github.com/nyayasathi/nyayasathi-be/internal/delivery/http/usecase"
	"github.com/nyayasathi/nyayasathi-be/internal/pkg/response"
	"github.com/nyayasathi/nyayasathi-be/internal/pkg/validate"
	"github.com/sirupsen/logrus"
)

type (
	QuizHandler interface {
		Start(ctx *fiber.Ctx) error
		Select(ctx *fiber.Ctx) error
		Submit(ctx *fiber.Ctx) error
		Next(ctx *fiber.Ctx) error
		Current(ctx *fiber.Ctx) error
		Explain(ctx *fiber.Ctx) error
	}

	quizHandler struct {
		validator *validate.Validator
		logger    *logrus.Logger
		usecase   usecase.QuizUsecase
	}
)

func NewQuizHandler(validator *validate.Validator, logger *logrus.Logger, usecase usecase.QuizUsecase) QuizHandler {
	return &quizHandler{
		validator: validator,
		logger:    logger,
		usecase:   usecase,
	}
}

// POST /quiz/start
func (h *quizHandler) Start(ctx *fiber.Ctx) error {
	state, err := h.usecase.Start(ctx.UserContext(), middleware.ClientID(ctx))
	if err != nil {
		return response.NewFailed(domain.QUIZ_START_FAILED, err, h.logger).Send(ctx)
	}
	return response.NewSuccess(domain.QUIZ_START_SUCCESS, state, nil).Send(ctx)
}

// POST /quiz/select
func (h *quizHandler) Select(ctx *fiber.Ctx) error {
	var req entity.SelectAnswerRequest
	if err := h.validator.ParseAndValidate(ctx, &req); err != nil {
		return response.NewFailed(domain.QUIZ_SELECT_FAILED, err, h.logger).Send(ctx)
	}

	state, err := h.usecase.Select(ctx.UserContext(), middleware.ClientID(ctx), *req.OptionIndex)
	if err != nil {
		return response.NewFailed(domain.QUIZ_SELECT_FAILED, err, h.logger).Send(ctx)
	}
	return response.NewSuccess(domain.QUIZ_SELECT_SUCCESS, state, nil).Send(ctx)
}

// POST /quiz/submit
func (h *quizHandler) Submit(ctx *fiber.Ctx) error {
	state, err := h.usecase.Submit(ctx.UserContext(), middleware.ClientID(ctx))
	if err != nil {
		return response.NewFailed(domain.QUIZ_SUBMIT_FAILED, err, h.logger).Send(ctx)
	}
	return response.NewSuccess(domain.QUIZ_SUBMIT_SUCCESS, state, nil).Send(ctx)
}

// POST /quiz/next
func (h *quizHandler) Next(ctx *fiber.Ctx) error {
	state, err := h.usecase.Next(ctx.UserContext(), middleware.ClientID(ctx))
	if err != nil {
		return response.NewFailed(domain.QUIZ_NEXT_FAILED, err, h.logger).Send(ctx)
	}
	return response.NewSuccess(domain.QUIZ_NEXT_SUCCESS, state, nil).Send(ctx)
}

// GET /quiz/current
func (h *quizHandler) Current(ctx *fiber.Ctx) error {
	state, err := h.usecase.Current(ctx.UserContext(), middleware.ClientID(ctx))
	if err != nil {
		return response.NewFailed(domain.QUIZ_STATE_FAILED, err, h.logger).Send(ctx)
	}
	return response.NewSuccess(domain.QUIZ_STATE_SUCCESS, state, nil).Send(ctx)
}

// POST /quiz/explain
func (h *quizHandler) Explain(ctx *fiber.Ctx) error {
	var req entity.ExplainRequest
	if err := h.validator.ParseAndValidate(ctx, &req); err != nil {
		return response.NewFailed(domain.QUIZ_EXPLAIN_FAILED, err, h.logger).Send(ctx)
	}

	explanation, err := h.usecase.Explain(ctx.UserContext(), middleware.ClientID(ctx), req.QuestionID)
	if err != nil {
		return response.NewFailed(domain.QUIZ_EXPLAIN_FAILED, err, h.logger).Send(ctx)
	}
	return response.NewSuccess(domain.QUIZ_EXPLAIN_SUCCESS, explanation, nil).Send(ctx)
}
