package handler

import (
	"strings"

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
	PreferenceHandler interface {
		Get(ctx *fiber.Ctx) error
		UpdateLanguage(ctx *fiber.Ctx) error
		UpdateNotifications(ctx *fiber.Ctx) error
		Translate(ctx *fiber.Ctx) error
	}

	preferenceHandler struct {
		validator *validate.Validator
		logger    *logrus.Logger
		usecase   usecase.PreferenceUsecase
	}
)

func NewPreferenceHandler(validator *validate.Validator, logger *logrus.Logger, usecase usecase.PreferenceUsecase) PreferenceHandler {
	return &preferenceHandler{
		validator: validator,
		logger:    logger,
		usecase:   usecase,
	}
}

// GET /preferences
func (h *preferenceHandler) Get(ctx *fiber.Ctx) error {
	clientID := middleware.ClientID(ctx)
	resp := entity.PreferenceResponse{
		Language:      string(h.usecase.Language(ctx.UserContext(), clientID)),
		Notifications: h.usecase.Notifications(ctx.UserContext(), clientID),
	}
	return response.NewSuccess(domain.PREFERENCE_GET_SUCCESS, resp, nil).Send(ctx)
}

// PUT /preferences/language
func (h *preferenceHandler) UpdateLanguage(ctx *fiber.Ctx) error {
	var req entity.UpdateLanguageRequest
	if err := h.validator.ParseAndValidate(ctx, &req); err != nil {
		return response.NewFailed(domain.PREFERENCE_UPDATE_FAILED, err, h.logger).Send(ctx)
	}

	clientID := middleware.ClientID(ctx)
	lang, err := h.usecase.SetLanguage(ctx.UserContext(), clientID, req.Language)
	if err != nil {
		return response.NewFailed(domain.PREFERENCE_UPDATE_FAILED, err, h.logger).Send(ctx)
	}

	resp := entity.PreferenceResponse{
		Language:      string(lang),
		Notifications: h.usecase.Notifications(ctx.UserContext(), clientID),
	}
	return response.NewSuccess(domain.PREFERENCE_UPDATE_SUCCESS, resp, nil).Send(ctx)
}

// PUT /preferences/notifications
func (h *preferenceHandler) UpdateNotifications(ctx *fiber.Ctx) error {
	var req entity.UpdateNotificationsRequest
	if err := h.validator.ParseAndValidate(ctx, &req); err != nil {
		return response.NewFailed(domain.PREFERENCE_UPDATE_FAILED, err, h.logger).Send(ctx)
	}

	clientID := middleware.ClientID(ctx)
	if err := h.usecase.SetNotifications(ctx.UserContext(), clientID, *req.Enabled); err != nil {
		return response.NewFailed(domain.PREFERENCE_UPDATE_FAILED, err, h.logger).Send(ctx)
	}

	resp := entity.PreferenceResponse{
		Language:      string(h.usecase.Language(ctx.UserContext(), clientID)),
		Notifications: *req.Enabled,
	}
	return response.NewSuccess(domain.PREFERENCE_UPDATE_SUCCESS, resp, nil).Send(ctx)
}

// GET /translations/:key?fallback=
func (h *preferenceHandler) Translate(ctx *fiber.Ctx) error {
	key := strings.TrimSpace(ctx.Params("key"))
	if key == "" {
		return response.NewFailed(domain.TRANSLATION_SUCCESS, fiber.NewError(fiber.StatusBadRequest, "key is required"), h.logger).Send(ctx)
	}

	clientID := middleware.ClientID(ctx)
	resp := entity.TranslationResponse{
		Key:      key,
		Language: string(h.usecase.Language(ctx.UserContext(), clientID)),
		Text:     h.usecase.Translate(ctx.UserContext(), clientID, key, ctx.Query("fallback")),
	}
	return response.NewSuccess(domain.TRANSLATION_SUCCESS, resp, nil).Send(ctx)
}
