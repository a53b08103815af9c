package route

import (
	"github.com/gofiber/fiber/v2"
	"github.com/nyayasathi/nyayasathi-be/internal/delivery/http/handler"
)

func SetupContentRoute(api *fiber.App, handler handler.ContentHandler) {
	router := api.Group("/laws")
	{
		router.Get("/", handler.ListLaws)
		router.Get("/:id", handler.GetLaw)
	}

	// emergency contacts stay reachable without a session
	api.Get("/contacts", handler.ListContacts)
}
