// Package hub fans session events out to the viewer's websocket clients.
package hub

import (
	"context"
	"encoding/json"
	"sort"
	"sync"
	"time"

	"github.com/pelusa-v/hushr/internal/events"
	"github.com/pelusa-v/hushr/internal/logger"
)

// CommandFunc handles a frame a viewer sent over its websocket.
type CommandFunc func(viewer string, data []byte)

type Hub struct {
	mu sync.RWMutex

	Clients map[string]*Client         // id -> client
	Subs    map[string]map[string]bool // viewer -> set(client id)

	RegisterChan   chan *Client
	UnregisterChan chan *Client
	PublishChan    chan events.Event

	onCommand CommandFunc
	done      chan struct{} // closed when Start returns
}

func New(onCommand CommandFunc) *Hub {
	return &Hub{
		Clients:        map[string]*Client{},
		Subs:           map[string]map[string]bool{},
		RegisterChan:   make(chan *Client),
		UnregisterChan: make(chan *Client),
		PublishChan:    make(chan events.Event, 256),
		onCommand:      onCommand,
		done:           make(chan struct{}),
	}
}

// Register hands c to the running hub. It returns false once the hub has
// stopped.
func (h *Hub) Register(c *Client) bool {
	select {
	case h.RegisterChan <- c:
		return true
	case <-h.done:
		return false
	}
}

// Unregister detaches c. After the hub has stopped it returns at once.
func (h *Hub) Unregister(c *Client) {
	select {
	case h.UnregisterChan <- c:
	case <-h.done:
	}
}

// Publish queues e for delivery. It never blocks: when the queue is full the
// event is dropped, clients resync through the REST endpoints.
func (h *Hub) Publish(e events.Event) {
	select {
	case h.PublishChan <- e:
	default:
		logger.Log.Warn("hub queue full, dropping event", "kind", e.Kind, "viewer", e.Viewer)
	}
}

// ViewerClients lists the client ids attached to viewer.
func (h *Hub) ViewerClients(viewer string) []string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	out := make([]string, 0, len(h.Subs[viewer]))
	for id := range h.Subs[viewer] {
		out = append(out, id)
	}
	sort.Strings(out)
	return out
}

func (h *Hub) Start(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			h.mu.Lock()
			for id, c := range h.Clients {
				close(c.Send)
				delete(h.Clients, id)
			}
			h.Subs = map[string]map[string]bool{}
			h.mu.Unlock()
			close(h.done)
			return

		case client := <-h.RegisterChan:
			h.mu.Lock()
			h.Clients[client.Id] = client
			if _, ok := h.Subs[client.Viewer]; !ok {
				h.Subs[client.Viewer] = map[string]bool{}
			}
			h.Subs[client.Viewer][client.Id] = true
			h.mu.Unlock()
			h.deliver(events.Event{
				Kind:    events.System,
				Viewer:  client.Viewer,
				At:      time.Now(),
				Payload: events.Status{Status: events.StatusConnected, ClientID: client.Id},
			})

		case client := <-h.UnregisterChan:
			h.mu.Lock()
			if _, ok := h.Clients[client.Id]; ok {
				delete(h.Clients, client.Id)
				close(client.Send)
			}
			if subs, ok := h.Subs[client.Viewer]; ok {
				delete(subs, client.Id)
				if len(subs) == 0 {
					delete(h.Subs, client.Viewer)
				}
			}
			h.mu.Unlock()

		case e := <-h.PublishChan:
			h.deliver(e)
			if st, ok := e.Payload.(events.Status); ok && e.Kind == events.System && e.Viewer != "" && st.Status == events.StatusDisconnected {
				h.drop(e.Viewer)
			}
		}
	}
}

// deliver pushes e to the clients of e.Viewer, or to everyone when the event
// has no viewer. Slow clients miss events instead of stalling the hub.
func (h *Hub) deliver(e events.Event) {
	data, err := json.Marshal(&e)
	if err != nil {
		logger.Log.Error("marshal event", "kind", e.Kind, "error", err)
		return
	}
	h.mu.RLock()
	defer h.mu.RUnlock()
	if e.Viewer == "" {
		for _, c := range h.Clients {
			select {
			case c.Send <- data:
			default:
			}
		}
		return
	}
	for id := range h.Subs[e.Viewer] {
		if c := h.Clients[id]; c != nil {
			select {
			case c.Send <- data:
			default:
			}
		}
	}
}

// drop closes every client of viewer. Their pumps wind down on their own.
func (h *Hub) drop(viewer string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	for id := range h.Subs[viewer] {
		if c, ok := h.Clients[id]; ok {
			close(c.Send)
			delete(h.Clients, id)
		}
	}
	delete(h.Subs, viewer)
}
