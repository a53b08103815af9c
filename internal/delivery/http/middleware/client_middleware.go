package middleware

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// ClientIDHeader carries the caller's storage-namespace identity. It is
// the service analogue of one browser origin: one logical writer per id.
const ClientIDHeader = "X-Client-Id"

const clientIDLocal = "clientID"

// ClientMiddleware assigns a client id when the request carries none and
// echoes it back so the caller can persist it.
func (m *Middleware) ClientMiddleware() fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		id := strings.TrimSpace(ctx.Get(ClientIDHeader))
		if id == "" {
			id = uuid.NewString()
		}
		ctx.Locals(clientIDLocal, id)
		ctx.Set(ClientIDHeader, id)
		return ctx.Next()
	}
}

// ClientID returns the id set by ClientMiddleware.
func ClientID(ctx *fiber.Ctx) string {
	if id, ok := ctx.Locals(clientIDLocal).(string); ok {
		return id
	}
	return ""
}
