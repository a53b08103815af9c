package route

import (
	"github.com/gofiber/fiber/v2"
	"github.com/nyayasathi/nyayasathi-be/internal/delivery/http/handler"
	"github.com/nyayasathi/nyayasathi-be/internal/delivery/http/middleware"
	"github.com/nyayasathi/nyayasathi-be/internal/delivery/http/usecase"
)

func SetupPreferenceRoute(api *fiber.App, handler handler.PreferenceHandler, m *middleware.Middleware, sessions usecase.SessionUsecase) {
	// translation lookup is public: unauthenticated screens render text too
	api.Get("/translations/:key", handler.Translate)

	router := api.Group("/preferences", m.RequireSession(sessions))
	{
		router.Get("/", handler.Get)
		router.Put("/language", handler.UpdateLanguage)
		router.Put("/notifications", handler.UpdateNotifications)
	}
}
