// Package feed holds the thread feed of a session: posts newest first, likes
// and the shuffled "load more" batches.
package feed

import (
	"fmt"
	"math/rand/v2"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"

	"github.com/pelusa-v/hushr/internal/avatar"
	"github.com/pelusa-v/hushr/internal/events"
	"github.com/pelusa-v/hushr/internal/identity"
)

type Store struct {
	mu sync.RWMutex

	posts []Post             // newest first
	liked map[string]LikeSet // viewer -> liked post ids

	viewer string // event routing key
	clock  clockwork.Clock
	rng    *rand.Rand
	pub    events.Publisher
}

type Option func(*Store)

func WithClock(c clockwork.Clock) Option { return func(s *Store) { s.clock = c } }

func WithRand(r *rand.Rand) Option { return func(s *Store) { s.rng = r } }

func WithPublisher(viewer string, p events.Publisher) Option {
	return func(s *Store) { s.viewer, s.pub = viewer, p }
}

// NewStore starts a feed from seed (copied, newest first).
func NewStore(seed []Post, opts ...Option) *Store {
	s := &Store{
		posts: clonePosts(seed),
		liked: map[string]LikeSet{},
		pub:   events.Discard,
	}
	for _, o := range opts {
		o(s)
	}
	if s.clock == nil {
		s.clock = clockwork.NewRealClock()
	}
	if s.rng == nil {
		s.rng = rand.New(rand.NewPCG(uint64(time.Now().UnixNano()), 0))
	}
	return s
}

func (s *Store) Posts() []Post {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return clonePosts(s.posts)
}

func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.posts)
}

// CreatePost prepends a post by authorIdentity (a wallet address). Content
// that is empty after trimming is rejected.
func (s *Store) CreatePost(content, authorIdentity, imageURL string) (Post, bool) {
	if strings.TrimSpace(content) == "" {
		return Post{}, false
	}
	content, authorIdentity, imageURL = strings.Clone(content), strings.Clone(authorIdentity), strings.Clone(imageURL)
	now := s.clock.Now()
	p := Post{
		ID:             fmt.Sprintf("user-%d-%s", now.UnixMilli(), uuid.NewString()[:8]),
		Content:        content,
		Author:         identity.Short(authorIdentity),
		AuthorIdentity: authorIdentity,
		WalletAddress:  identity.Short(authorIdentity),
		Handle:         identity.Handle(authorIdentity),
		Avatar:         avatar.For(authorIdentity),
		TimeLabel:      "now",
		CreatedAt:      now,
		Reactions:      Reactions{Comments: 0, Likes: 0, Views: 1, Shares: 0},
		ImageURL:       imageURL,
	}

	s.mu.Lock()
	s.posts = append([]Post{p}, s.posts...)
	s.mu.Unlock()

	s.publish(events.PostCreated, p)
	return p, true
}

// ToggleLike flips postID in liked and moves the like count by one in the
// same direction. Both are decided from one observation of liked, under the
// store lock, so repeated toggles cannot drift. Every copy of the post in the
// feed is updated. ok is false when the post is not in the feed; liked is
// left untouched then.
func (s *Store) ToggleLike(postID string, liked LikeSet) (likes int, nowLiked bool, ok bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.toggleLocked(postID, liked)
}

// ToggleViewerLike is ToggleLike with the viewer's set kept by the store.
func (s *Store) ToggleViewerLike(postID, viewer string) (likes int, nowLiked bool, ok bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	set, exists := s.liked[viewer]
	if !exists {
		set = LikeSet{}
		s.liked[strings.Clone(viewer)] = set
	}
	return s.toggleLocked(postID, set)
}

// toggleLocked must be called with s.mu held.
func (s *Store) toggleLocked(postID string, liked LikeSet) (int, bool, bool) {
	found := false
	for i := range s.posts {
		if s.posts[i].ID == postID {
			// key the set by the stored id, postID may be a borrowed buffer
			postID = s.posts[i].ID
			found = true
			break
		}
	}
	if !found {
		return 0, false, false
	}

	wasLiked := liked[postID]
	delta := 1
	if wasLiked {
		delete(liked, postID)
		delta = -1
	} else {
		liked[postID] = true
	}

	likes := 0
	first := true
	for i := range s.posts {
		if s.posts[i].ID != postID {
			continue
		}
		s.posts[i].Reactions.Likes += delta
		if first {
			likes = s.posts[i].Reactions.Likes
			first = false
		}
	}
	s.publish(events.PostLiked, LikeUpdate{PostID: postID, Likes: likes, Liked: !wasLiked})
	return likes, !wasLiked, true
}

// Liked reports whether viewer currently likes postID.
func (s *Store) Liked(viewer, postID string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.liked[viewer][postID]
}

// LoadMore prepends a shuffled copy of seed to the feed and returns it. seed
// itself is never modified.
func (s *Store) LoadMore(seed []Post) []Post {
	batch := clonePosts(seed)

	s.mu.Lock()
	// Fisher–Yates
	for i := len(batch) - 1; i > 0; i-- {
		j := s.rng.IntN(i + 1)
		batch[i], batch[j] = batch[j], batch[i]
	}
	posts := make([]Post, 0, len(batch)+len(s.posts))
	posts = append(posts, batch...)
	s.posts = append(posts, s.posts...)
	s.mu.Unlock()

	s.publish(events.FeedLoaded, map[string]int{"count": len(batch)})
	return clonePosts(batch)
}

func (s *Store) publish(kind events.Kind, payload interface{}) {
	s.pub.Publish(events.Event{Kind: kind, Viewer: s.viewer, At: s.clock.Now(), Payload: payload})
}
