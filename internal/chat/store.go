package chat

import (
	"fmt"
	"math/rand/v2"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/pelusa-v/hushr/internal/avatar"
	"github.com/pelusa-v/hushr/internal/events"
	"github.com/pelusa-v/hushr/internal/logger"
	"github.com/pelusa-v/hushr/internal/schedule"
)

// Colors is the number of sender colour slots the client renders.
const Colors = 8

// Reply timing of the simulated counterparties.
const (
	deliverMin     = 1000 * time.Millisecond
	deliverSpread  = 2000 * time.Millisecond
	followUpMin    = 2000 * time.Millisecond
	followUpSpread = 3000 * time.Millisecond
)

// Store is one viewer's set of conversations.
type Store struct {
	mu sync.RWMutex

	viewer        Sender
	conversations []*Conversation          // seed order
	byID          map[string]*Conversation // id -> conversation

	sched  *schedule.Scheduler
	rng    *rand.Rand
	pub    events.Publisher
	closed bool
}

type Option func(*Store)

func WithScheduler(s *schedule.Scheduler) Option { return func(st *Store) { st.sched = s } }

func WithRand(r *rand.Rand) Option { return func(st *Store) { st.rng = r } }

func WithPublisher(p events.Publisher) Option { return func(st *Store) { st.pub = p } }

// NewStore seeds the conversations for the viewer identified by viewerID,
// whose wallet is address. The viewer's own seeded lines carry that identity.
func NewStore(viewerID, address string, opts ...Option) *Store {
	s := &Store{
		viewer: Sender{ID: viewerID, WalletAddress: address, DisplayName: "You"},
		byID:   map[string]*Conversation{},
		pub:    events.Discard,
	}
	for _, o := range opts {
		o(s)
	}
	if s.sched == nil {
		s.sched = schedule.New(nil)
	}
	if s.rng == nil {
		s.rng = rand.New(rand.NewPCG(uint64(time.Now().UnixNano()), 0))
	}
	s.conversations = createConversations(s.viewer, s.sched.Now())
	for _, c := range s.conversations {
		s.byID[c.ID] = c
	}
	return s
}

func (s *Store) Viewer() Sender { return s.viewer }

func colorOf(id string) int { return avatar.ColorIndex(id, Colors) }

func owner(conversationID string) string { return "chat/" + conversationID }

func newMessageID(now time.Time) string {
	return fmt.Sprintf("msg-%d-%s", now.UnixMilli(), strings.ReplaceAll(uuid.NewString(), "-", "")[:12])
}

// Conversations lists conversation previews in seed order.
func (s *Store) Conversations() []Preview {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]Preview, 0, len(s.conversations))
	for _, c := range s.conversations {
		out = append(out, c.preview())
	}
	return out
}

// Select returns a copy of the conversation; it never mutates the store.
func (s *Store) Select(id string) (Conversation, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	c, ok := s.byID[id]
	if !ok {
		return Conversation{}, false
	}
	return c.clone(), true
}

// SendMessage appends a message from the viewer and schedules its delivery
// tick and the simulated replies. Empty content with no image, an unknown
// conversation or a closed store are ignored and return false.
func (s *Store) SendMessage(conversationID, content, image string) (string, bool) {
	if strings.TrimSpace(content) == "" {
		if image == "" {
			return "", false
		}
		content = "Image"
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	conv, ok := s.byID[conversationID]
	if !ok || s.closed {
		return "", false
	}
	// callers may hand in request-scoped buffers; keep only owned strings
	conversationID = conv.ID
	content, image = strings.Clone(content), strings.Clone(image)

	now := s.sched.Now()
	sender := s.viewer
	msg := Message{
		ID:        newMessageID(now),
		Content:   content,
		SenderID:  s.viewer.ID,
		CreatedAt: now,
		Sender:    &sender,
		Image:     image,
		Delivery:  Sent,
		Color:     colorOf(s.viewer.ID),
	}
	conv.Messages = append(conv.Messages, msg)
	conv.LastMessage = content
	s.publish(events.MessageAppended, Appended{ConversationID: conversationID, Message: msg})

	delay := deliverMin + time.Duration(s.rng.Int64N(int64(deliverSpread)))
	s.sched.After(owner(conversationID), delay, func() { s.deliver(conversationID, msg.ID) })
	return msg.ID, true
}

// deliver flips the message to Delivered, then lets the counterparties answer:
// one reply right away and, half of the time, a second one a bit later.
func (s *Store) deliver(conversationID, messageID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return
	}
	conv, ok := s.byID[conversationID]
	if !ok {
		return
	}
	for i := range conv.Messages {
		if conv.Messages[i].ID == messageID {
			conv.Messages[i].Delivery = Delivered
			s.publish(events.MessageDelivered, DeliveryUpdate{
				ConversationID: conversationID, MessageID: messageID, Delivery: Delivered,
			})
			break
		}
	}

	s.appendReply(conv)

	if s.rng.Float64() < 0.5 {
		delay := followUpMin + time.Duration(s.rng.Int64N(int64(followUpSpread)))
		s.sched.After(owner(conversationID), delay, func() {
			s.mu.Lock()
			defer s.mu.Unlock()
			if s.closed {
				return
			}
			if c, ok := s.byID[conversationID]; ok {
				s.appendReply(c)
			}
		})
	}
}

// appendReply must be called with s.mu held.
func (s *Store) appendReply(conv *Conversation) {
	candidates := make([]Sender, 0, len(Participants))
	for _, p := range Participants {
		if p.ID != s.viewer.ID {
			candidates = append(candidates, p)
		}
	}
	if len(candidates) == 0 {
		return
	}
	from := candidates[s.rng.IntN(len(candidates))]
	text := Responses[s.rng.IntN(len(Responses))]
	now := s.sched.Now()
	msg := Message{
		ID:        newMessageID(now),
		Content:   text,
		SenderID:  from.ID,
		CreatedAt: now,
		Sender:    &from,
		Delivery:  Delivered,
		Color:     colorOf(from.ID),
	}
	conv.Messages = append(conv.Messages, msg)
	conv.LastMessage = text
	s.publish(events.MessageAppended, Appended{ConversationID: conv.ID, Message: msg})
}

func (s *Store) publish(kind events.Kind, payload interface{}) {
	s.pub.Publish(events.Event{Kind: kind, Viewer: s.viewer.WalletAddress, At: s.sched.Now(), Payload: payload})
}

// CloseConversation cancels the pending follow-ups of one conversation.
func (s *Store) CloseConversation(id string) int {
	return s.sched.Cancel(owner(id))
}

// Close cancels every pending follow-up; later sends are ignored.
func (s *Store) Close() {
	s.mu.Lock()
	s.closed = true
	ids := make([]string, 0, len(s.conversations))
	for _, c := range s.conversations {
		ids = append(ids, c.ID)
	}
	s.mu.Unlock()

	dropped := 0
	for _, id := range ids {
		dropped += s.sched.Cancel(owner(id))
	}
	if dropped > 0 {
		logger.Log.Debug("chat store closed", "viewer", s.viewer.ID, "cancelled", dropped)
	}
}
