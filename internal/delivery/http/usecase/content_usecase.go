package usecase

import (
	"context"

	"github.com/gofiber/fiber/v2"
	"github.com/nyayasathi/nyayasathi-be/internal/pkg/catalog"
)

// ContentUsecase serves the static informational catalogs.
type ContentUsecase interface {
	Laws(ctx context.Context) []catalog.Law
	Law(ctx context.Context, id string) (*catalog.Law, error)
	Contacts(ctx context.Context) []catalog.EmergencyContact
}

type contentUsecase struct{}

func NewContentUsecase() ContentUsecase {
	return &contentUsecase{}
}

func (u *contentUsecase) Laws(_ context.Context) []catalog.Law {
	return catalog.Laws
}

func (u *contentUsecase) Law(_ context.Context, id string) (*catalog.Law, error) {
	law, ok := catalog.LawByID(id)
	if !ok {
		return nil, fiber.NewError(fiber.StatusNotFound, "unknown law id")
	}
	return &law, nil
}

func (u *contentUsecase) Contacts(_ context.Context) []catalog.EmergencyContact {
	return catalog.EmergencyContacts
}
