package route

import (
	"github.com/gofiber/fiber/v2"
	"github.com/nyayasathi/nyayasathi-be/internal/delivery/http/handler"
	"github.com/nyayasathi/nyayasathi-be/internal/delivery/http/middleware"
	"github.com/nyayasathi/nyayasathi-be/internal/delivery/http/usecase"
)

func SetupQuizRoute(api *fiber.App, handler handler.QuizHandler, m *middleware.Middleware, sessions usecase.SessionUsecase) {
	router := api.Group("/quiz", m.RequireSession(sessions))
	{
		router.Post("/start", handler.Start)
		router.Post("/select", handler.Select)
		router.Post("/submit", handler.Submit)
		router.Post("/next", handler.Next)
		router.Get("/current", handler.Current)
		router.Post("/explain", handler.Explain)
	}
}
