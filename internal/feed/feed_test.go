package feed

import (
	"math/rand/v2"
	"testing"
	"time"
	"unsafe"

	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pelusa-v/hushr/internal/events"
)

func newTestFeed(t *testing.T, seed []Post) (*Store, events.Chan) {
	t.Helper()
	ch := make(events.Chan, 64)
	s := NewStore(seed,
		WithClock(clockwork.NewFakeClockAt(time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC))),
		WithRand(rand.New(rand.NewPCG(1, 2))),
		WithPublisher("0xabc", ch),
	)
	return s, ch
}

func ids(posts []Post) []string {
	out := make([]string, 0, len(posts))
	for _, p := range posts {
		out = append(out, p.ID)
	}
	return out
}

func TestSeedData(t *testing.T) {
	assert.Len(t, SeedPosts(), 27)
	assert.Len(t, MorePosts(), 20)
	for _, p := range SeedPosts() {
		assert.True(t, p.Avatar >= 1 && p.Avatar <= 16, p.ID)
	}
}

func TestCreatePostAndToggleLike(t *testing.T) {
	s, ch := newTestFeed(t, SeedPosts()[:25])

	p, ok := s.CreatePost("gm", "0xabc", "")
	require.True(t, ok)
	posts := s.Posts()
	require.Len(t, posts, 26)
	assert.Equal(t, p.ID, posts[0].ID)
	assert.Equal(t, Reactions{Comments: 0, Likes: 0, Views: 1, Shares: 0}, posts[0].Reactions)
	assert.Equal(t, "now", posts[0].TimeLabel)
	assert.Equal(t, "@0xabc", posts[0].Handle)
	assert.False(t, posts[0].HasImage())
	assert.Equal(t, events.PostCreated, (<-ch).Kind)

	liked := LikeSet{}
	likes, nowLiked, ok := s.ToggleLike(p.ID, liked)
	require.True(t, ok)
	assert.Equal(t, 1, likes)
	assert.True(t, nowLiked)
	assert.True(t, liked[p.ID])

	likes, nowLiked, ok = s.ToggleLike(p.ID, liked)
	require.True(t, ok)
	assert.Equal(t, 0, likes)
	assert.False(t, nowLiked)
	assert.Empty(t, liked)
	assert.Equal(t, 0, s.Posts()[0].Reactions.Likes)
}

func TestCreatePostRejectsBlankContent(t *testing.T) {
	s, _ := newTestFeed(t, SeedPosts())
	_, ok := s.CreatePost(" \n\t", "0xabc", "/posts/1.webp")
	assert.False(t, ok)
	assert.Equal(t, 27, s.Len())
}

func TestToggleLikeRoundTripOnSeededPost(t *testing.T) {
	s, _ := newTestFeed(t, SeedPosts())
	before := s.Posts()[1].Reactions.Likes

	likes, _, _ := s.ToggleViewerLike("mock-1", "0xabc")
	assert.Equal(t, before+1, likes)
	assert.True(t, s.Liked("0xabc", "mock-1"))
	assert.False(t, s.Liked("0xdef", "mock-1"))

	likes, _, _ = s.ToggleViewerLike("mock-1", "0xabc")
	assert.Equal(t, before, likes)
	assert.False(t, s.Liked("0xabc", "mock-1"))
}

func TestToggleLikeUnknownPost(t *testing.T) {
	s, _ := newTestFeed(t, SeedPosts())
	liked := LikeSet{"other": true}
	_, _, ok := s.ToggleLike("nope", liked)
	assert.False(t, ok)
	assert.Equal(t, LikeSet{"other": true}, liked)
}

func TestLoadMoreShufflesWithoutTouchingSeed(t *testing.T) {
	s, _ := newTestFeed(t, SeedPosts()[:25])
	seed := MorePosts()
	original := ids(seed)

	first := s.LoadMore(seed)
	second := s.LoadMore(seed)

	assert.Equal(t, original, ids(seed))
	require.Len(t, first, 20)
	require.Len(t, second, 20)
	assert.ElementsMatch(t, original, ids(first))
	assert.ElementsMatch(t, original, ids(second))
	assert.NotEqual(t, ids(first), ids(second))

	posts := s.Posts()
	require.Len(t, posts, 65)
	assert.Equal(t, ids(second), ids(posts[:20]))
	assert.Equal(t, ids(first), ids(posts[20:40]))
	assert.Equal(t, "mock-26", posts[40].ID)
}

func TestToggleLikeUpdatesDuplicatedPosts(t *testing.T) {
	s, _ := newTestFeed(t, nil)
	seed := MorePosts()[:3]
	s.LoadMore(seed)
	s.LoadMore(seed)

	base := seed[0].Reactions.Likes
	likes, _, ok := s.ToggleViewerLike(seed[0].ID, "0xabc")
	require.True(t, ok)
	assert.Equal(t, base+1, likes)
	for _, p := range s.Posts() {
		if p.ID == seed[0].ID {
			assert.Equal(t, base+1, p.Reactions.Likes)
		}
	}
}

// borrowed returns a string aliasing a buffer the caller later overwrites,
// the way request-scoped strings from a server framework behave.
func borrowed(s string) (string, func()) {
	buf := []byte(s)
	return unsafe.String(&buf[0], len(buf)), func() {
		for i := range buf {
			buf[i] = 'x'
		}
	}
}

func TestToggleViewerLikeKeepsOwnCopyOfId(t *testing.T) {
	s, _ := newTestFeed(t, SeedPosts())
	base := s.Posts()[0]

	id, scribble := borrowed(base.ID)
	likes, liked, ok := s.ToggleViewerLike(id, "0xabc")
	require.True(t, ok)
	assert.True(t, liked)
	assert.Equal(t, base.Reactions.Likes+1, likes)
	scribble()

	assert.True(t, s.Liked("0xabc", base.ID))
	id, scribble = borrowed(base.ID)
	likes, liked, ok = s.ToggleViewerLike(id, "0xabc")
	scribble()
	require.True(t, ok)
	assert.False(t, liked)
	assert.Equal(t, base.Reactions.Likes, likes)
	assert.False(t, s.Liked("0xabc", base.ID))
}
