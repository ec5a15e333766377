package handlers

import (
	"encoding/json"

	"github.com/gofiber/contrib/websocket"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/pelusa-v/hushr/internal/hub"
	"github.com/pelusa-v/hushr/internal/logger"
)

// command is a frame a client sends over its websocket.
type command struct {
	Type           string `json:"type"` // send_message | like_post | close_conversation
	ConversationID string `json:"conversation_id,omitempty"`
	PostID         string `json:"post_id,omitempty"`
	Content        string `json:"content,omitempty"`
	Image          string `json:"image,omitempty"`
}

// UpgradeMiddleware rejects plain HTTP requests on websocket routes.
func UpgradeMiddleware(c *fiber.Ctx) error {
	if websocket.IsWebSocketUpgrade(c) {
		return c.Next()
	}
	return fiber.ErrUpgradeRequired
}

// WebsocketHandler GET /api/ws/:address
func (a *API) WebsocketHandler(c *websocket.Conn) {
	viewer := key(c.Params("address"))
	if _, ok := a.sessions.Get(viewer); !ok {
		_ = c.WriteJSON(fiber.Map{"error": "not_connected"})
		_ = c.Close()
		return
	}
	client := &hub.Client{Id: uuid.NewString(), Viewer: viewer, Conn: c, Send: make(chan []byte, 16)}
	if !a.hub.Register(client) {
		_ = c.Close()
		return
	}
	go client.WritePump()
	client.ReadPump(a.hub)
}

// Command is the hub's handler for inbound frames. Unknown or malformed
// frames are logged and dropped.
func (a *API) Command(viewer string, data []byte) {
	var cmd command
	if err := json.Unmarshal(data, &cmd); err != nil {
		logger.Log.Debug("bad ws frame", "viewer", viewer, "error", err)
		return
	}
	s, ok := a.sessions.Get(viewer)
	if !ok {
		return
	}
	switch cmd.Type {
	case "send_message":
		s.Chat.SendMessage(cmd.ConversationID, cmd.Content, cmd.Image)
	case "like_post":
		s.Feed.ToggleViewerLike(cmd.PostID, s.Key())
	case "close_conversation":
		s.Chat.CloseConversation(cmd.ConversationID)
	default:
		logger.Log.Debug("unknown ws command", "viewer", viewer, "type", cmd.Type)
	}
}
