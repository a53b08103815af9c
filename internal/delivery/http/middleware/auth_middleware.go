package middleware

import (
	"github.com/gofiber/fiber/v2"
	"github.com/nyayasathi/nyayasathi-be/internal/delivery/http/usecase"
)

// RequireSession gates protected routes on the persisted session state.
// Unauthenticated callers get 401, the API analogue of the login
// redirect.
func (m *Middleware) RequireSession(sessions usecase.SessionUsecase) fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		if !sessions.IsAuthenticated(ctx.UserContext(), ClientID(ctx)) {
			return fiber.NewError(fiber.StatusUnauthorized, "authentication required")
		}
		return ctx.Next()
	}
}
