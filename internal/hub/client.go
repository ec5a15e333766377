package hub

import (
	"github.com/gofiber/contrib/websocket"
)

// Client is one websocket connection of a viewer. A viewer may have several
// (one per open tab).
type Client struct {
	Id     string
	Viewer string
	Conn   ConnLike
	Send   chan []byte
}

type ConnLike interface {
	ReadMessage() (int, []byte, error)
	WriteMessage(int, []byte) error
	Close() error
}

// ReadPump hands every inbound frame to the hub's command handler until the
// connection fails, then unregisters the client.
func (c *Client) ReadPump(h *Hub) {
	for {
		_, data, err := c.Conn.ReadMessage()
		if err != nil {
			h.Unregister(c)
			return
		}
		if h.onCommand != nil {
			h.onCommand(c.Viewer, data)
		}
	}
}

// WritePump drains Send until the hub closes it.
func (c *Client) WritePump() {
	for data := range c.Send {
		if err := c.Conn.WriteMessage(websocket.TextMessage, data); err != nil {
			continue
		}
	}
	_ = c.Conn.Close()
}
