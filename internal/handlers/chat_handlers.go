package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/utils"
)

type sendMessageRequest struct {
	Content string `json:"content"`
	Image   string `json:"image"`
}

// ConversationsHandler GET /api/conversations
func (a *API) ConversationsHandler(c *fiber.Ctx) error {
	s, ok := a.viewer(c)
	if !ok {
		return notConnected(c)
	}
	return c.JSON(s.Chat.Conversations())
}

// ConversationHandler GET /api/conversations/:id
func (a *API) ConversationHandler(c *fiber.Ctx) error {
	s, ok := a.viewer(c)
	if !ok {
		return notConnected(c)
	}
	conv, ok := s.Chat.Select(c.Params("id"))
	if !ok {
		return notFound(c)
	}
	return c.JSON(conv)
}

// SendMessageHandler POST /api/conversations/:id/messages
func (a *API) SendMessageHandler(c *fiber.Ctx) error {
	s, ok := a.viewer(c)
	if !ok {
		return notConnected(c)
	}
	var req sendMessageRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "invalid_body")
	}
	id := utils.ImmutableString(c.Params("id"))
	if _, ok := s.Chat.Select(id); !ok {
		return notFound(c)
	}
	msgID, ok := s.Chat.SendMessage(id, req.Content, req.Image)
	if !ok {
		return badRequest(c, "empty_message")
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"id": msgID})
}
