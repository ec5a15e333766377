package chat

import "time"

type DeliveryState string

const (
	Sent      DeliveryState = "sent"      // one tick
	Delivered DeliveryState = "delivered" // two ticks
)

// Sender is the denormalized author info carried by a message.
type Sender struct {
	ID            string `json:"id"`
	WalletAddress string `json:"wallet_address"`
	DisplayName   string `json:"display_name"`
}

type Message struct {
	ID        string        `json:"id"`
	Content   string        `json:"content"`
	SenderID  string        `json:"sender_id"`
	CreatedAt time.Time     `json:"created_at"`
	Sender    *Sender       `json:"sender,omitempty"`
	Image     string        `json:"image,omitempty"` // data URI, empty when text only
	Delivery  DeliveryState `json:"delivery"`
	Color     int           `json:"color"` // sender colour slot
}

type Conversation struct {
	ID            string    `json:"id"`
	Name          string    `json:"name"`
	WalletAddress string    `json:"wallet_address"`
	LastMessage   string    `json:"last_message"`
	Messages      []Message `json:"messages"`
}

// Preview is the conversation list entry, without the message history.
type Preview struct {
	ID            string    `json:"id"`
	Name          string    `json:"name"`
	WalletAddress string    `json:"wallet_address"`
	LastMessage   string    `json:"last_message"`
	LastTs        time.Time `json:"last_ts"`
	Count         int       `json:"count"`
}

// DeliveryUpdate is the payload of a message.delivered event.
type DeliveryUpdate struct {
	ConversationID string        `json:"conversation_id"`
	MessageID      string        `json:"message_id"`
	Delivery       DeliveryState `json:"delivery"`
}

// Appended is the payload of a message.appended event.
type Appended struct {
	ConversationID string  `json:"conversation_id"`
	Message        Message `json:"message"`
}

func (c *Conversation) clone() Conversation {
	cp := *c
	cp.Messages = append([]Message(nil), c.Messages...)
	return cp
}

func (c *Conversation) preview() Preview {
	p := Preview{
		ID:            c.ID,
		Name:          c.Name,
		WalletAddress: c.WalletAddress,
		LastMessage:   c.LastMessage,
		Count:         len(c.Messages),
	}
	if n := len(c.Messages); n > 0 {
		p.LastTs = c.Messages[n-1].CreatedAt
	}
	return p
}
