package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/nyayasathi/nyayasathi-be/internal/delivery/http/domain"
	"github.com/nyayasathi/nyayasathi-be/internal/delivery/http/usecase"
	"github.com/nyayasathi/nyayasathi-be/internal/pkg/response"
	"github.com/sirupsen/logrus"
)

type (
	ContentHandler interface {
		ListLaws(ctx *fiber.Ctx) error
		GetLaw(ctx *fiber.Ctx) error
		ListContacts(ctx *fiber.Ctx) error
	}

	contentHandler struct {
		logger  *logrus.Logger
		usecase usecase.ContentUsecase
	}
)

func NewContentHandler(logger *logrus.Logger, usecase usecase.ContentUsecase) ContentHandler {
	return &contentHandler{
		logger:  logger,
		usecase: usecase,
	}
}

// GET /laws
func (h *contentHandler) ListLaws(ctx *fiber.Ctx) error {
	return response.NewSuccess(domain.CONTENT_LAWS_SUCCESS, h.usecase.Laws(ctx.UserContext()), nil).Send(ctx)
}

// GET /laws/:id
func (h *contentHandler) GetLaw(ctx *fiber.Ctx) error {
	law, err := h.usecase.Law(ctx.UserContext(), ctx.Params("id"))
	if err != nil {
		return response.NewFailed(domain.CONTENT_LAW_FAILED, err, h.logger).Send(ctx)
	}
	return response.NewSuccess(domain.CONTENT_LAWS_SUCCESS, law, nil).Send(ctx)
}

// GET /contacts
func (h *contentHandler) ListContacts(ctx *fiber.Ctx) error {
	return response.NewSuccess(domain.CONTENT_CONTACTS_SUCCESS, h.usecase.Contacts(ctx.UserContext()), nil).Send(ctx)
}
