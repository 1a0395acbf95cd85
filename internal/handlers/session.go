package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// sessionHeader carries the client's session identifier. Cart contents and
// the logged-in user are scoped to it.
const sessionHeader = "X-Session-ID"

// sessionID returns the request's session identifier, minting a fresh one
// when the client sent none. The id is echoed on the response so the client
// can keep using it.
func sessionID(c *fiber.Ctx) string {
	id := c.Get(sessionHeader)
	if id == "" {
		id = uuid.New().String()
	}
	c.Set(sessionHeader, id)
	return id
}
