package route

import (
	"github.com/gofiber/fiber/v2"
	"github.com/nyayasathi/nyayasathi-be/internal/delivery/http/handler"
)

func SetupAuthRoute(api *fiber.App, handler handler.AuthHandler) {
	router := api.Group("/auth")
	{
		router.Post("/register", handler.Register)
		router.Post("/login", handler.Login)
		router.Post("/logout", handler.Logout)
		router.Get("/me", handler.Me)
	}
}
