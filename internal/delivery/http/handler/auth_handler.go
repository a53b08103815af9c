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
	AuthHandler interface {
		Register(ctx *fiber.Ctx) error
		Login(ctx *fiber.Ctx) error
		Logout(ctx *fiber.Ctx) error
		Me(ctx *fiber.Ctx) error
	}

	authHandler struct {
		validator *validate.Validator
		logger    *logrus.Logger
		usecase   usecase.SessionUsecase
	}
)

func NewAuthHandler(validator *validate.Validator, logger *logrus.Logger, usecase usecase.SessionUsecase) AuthHandler {
	return &authHandler{
		validator: validator,
		logger:    logger,
		usecase:   usecase,
	}
}

// POST /auth/register
func (h *authHandler) Register(ctx *fiber.Ctx) error {
	var req entity.RegisterRequest
	if err := h.validator.ParseAndValidate(ctx, &req); err != nil {
		return response.NewFailed(domain.AUTH_REGISTER_FAILED, err, h.logger).Send(ctx)
	}

	user, err := h.usecase.Register(ctx.UserContext(), middleware.ClientID(ctx), req)
	if err != nil {
		return response.NewFailed(domain.AUTH_REGISTER_FAILED, err, h.logger).Send(ctx)
	}

	return response.NewSuccess(domain.AUTH_REGISTER_SUCCESS, entity.SessionResponse{Authenticated: true, User: user}, nil).Send(ctx)
}

// POST /auth/login
func (h *authHandler) Login(ctx *fiber.Ctx) error {
	var req entity.LoginRequest
	if err := h.validator.ParseAndValidate(ctx, &req); err != nil {
		return response.NewFailed(domain.AUTH_LOGIN_FAILED, err, h.logger).Send(ctx)
	}

	user, err := h.usecase.Login(ctx.UserContext(), middleware.ClientID(ctx), req)
	if err != nil {
		return response.NewFailed(domain.AUTH_LOGIN_FAILED, err, h.logger).Send(ctx)
	}

	return response.NewSuccess(domain.AUTH_LOGIN_SUCCESS, entity.SessionResponse{Authenticated: true, User: user}, nil).Send(ctx)
}

// POST /auth/logout
func (h *authHandler) Logout(ctx *fiber.Ctx) error {
	if err := h.usecase.Logout(ctx.UserContext(), middleware.ClientID(ctx)); err != nil {
		return response.NewFailed(domain.AUTH_LOGOUT_FAILED, err, h.logger).Send(ctx)
	}
	return response.NewSuccess(domain.AUTH_LOGOUT_SUCCESS, entity.SessionResponse{Authenticated: false}, nil).Send(ctx)
}

// GET /auth/me
func (h *authHandler) Me(ctx *fiber.Ctx) error {
	user, ok := h.usecase.Current(ctx.UserContext(), middleware.ClientID(ctx))
	return response.NewSuccess(domain.AUTH_SESSION_SUCCESS, entity.SessionResponse{Authenticated: ok, User: user}, nil).Send(ctx)
}
