package route

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/nyayasathi/nyayasathi-be/internal/delivery/http/handler"
	"github.com/nyayasathi/nyayasathi-be/internal/delivery/http/middleware"
	"github.com/nyayasathi/nyayasathi-be/internal/delivery/http/usecase"
)

type RouteConfig struct {
	Api               *fiber.App
	Middleware        *middleware.Middleware
	Sessions          usecase.SessionUsecase
	AuthHandler       handler.AuthHandler
	PreferenceHandler handler.PreferenceHandler
	QuizHandler       handler.QuizHandler
	ContentHandler    handler.ContentHandler
}

func Setup(c *RouteConfig) {
	c.Api.Use(recover.New())
	c.Api.Use(logger.New(logger.Config{
		Format: "[${ip}]:${port} ${status} - ${method} ${path}\n",
	}))
	c.Api.Use(c.Middleware.CorsMiddleware())
	c.Api.Use(c.Middleware.ClientMiddleware())

	c.Api.Get("/healthz", func(ctx *fiber.Ctx) error {
		return ctx.SendString("ok")
	})

	SetupAuthRoute(c.Api, c.AuthHandler)
	SetupContentRoute(c.Api, c.ContentHandler)
	SetupPreferenceRoute(c.Api, c.PreferenceHandler, c.Middleware, c.Sessions)
	SetupQuizRoute(c.Api, c.QuizHandler, c.Middleware, c.Sessions)
}
