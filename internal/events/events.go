package events

import "time"

type Kind string

const (
	MessageAppended    Kind = "message.appended"
	MessageDelivered   Kind = "message.delivered"
	PostCreated        Kind = "post.created"
	PostLiked          Kind = "post.liked"
	FeedLoaded         Kind = "feed.loaded"
	TransactionAdded   Kind = "transaction.added"
	TransactionUpdated Kind = "transaction.updated"
	UploadProgress     Kind = "upload.progress"
	InscribeProgress   Kind = "inscribe.progress"
	InscribeDone       Kind = "inscribe.done"
	System             Kind = "system"
)

// Event is a state change pushed to the viewer's websocket clients.
type Event struct {
	Kind    Kind        `json:"kind"`
	Viewer  string      `json:"-"`
	At      time.Time   `json:"at"`
	Payload interface{} `json:"payload,omitempty"`
}

// Status is the payload of System events about a viewer's connection.
type Status struct {
	Status   string `json:"status"`
	ClientID string `json:"client_id,omitempty"`
}

const (
	StatusConnected    = "connected"
	StatusDisconnected = "disconnected" // the hub drops the viewer's clients after delivering it
)

type Publisher interface {
	Publish(Event)
}

// Discard drops every event. Stores fall back to it when built without a publisher.
var Discard Publisher = discard{}

type discard struct{}

func (discard) Publish(Event) {}

// Chan is a buffered publisher used by tests and by anything that wants to
// pull events instead of being pushed to.
type Chan chan Event

func (c Chan) Publish(e Event) {
	select {
	case c <- e:
	default:
	}
}
