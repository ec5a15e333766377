package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/utils"

	"github.com/pelusa-v/hushr/internal/feed"
)

type createPostRequest struct {
	Content  string `json:"content"`
	ImageURL string `json:"image_url"`
}

type postView struct {
	feed.Post
	Liked bool `json:"liked"`
}

// FeedHandler GET /api/feed
func (a *API) FeedHandler(c *fiber.Ctx) error {
	s, ok := a.viewer(c)
	if !ok {
		return notConnected(c)
	}
	posts := s.Feed.Posts()
	out := make([]postView, len(posts))
	for i, p := range posts {
		out[i] = postView{Post: p, Liked: s.Feed.Liked(s.Key(), p.ID)}
	}
	return c.JSON(out)
}

// CreatePostHandler POST /api/feed
func (a *API) CreatePostHandler(c *fiber.Ctx) error {
	s, ok := a.viewer(c)
	if !ok {
		return notConnected(c)
	}
	var req createPostRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "invalid_body")
	}
	post, ok := s.Feed.CreatePost(req.Content, s.Key(), req.ImageURL)
	if !ok {
		return badRequest(c, "empty_content")
	}
	return c.Status(fiber.StatusCreated).JSON(post)
}

// ToggleLikeHandler POST /api/feed/:id/like
func (a *API) ToggleLikeHandler(c *fiber.Ctx) error {
	s, ok := a.viewer(c)
	if !ok {
		return notConnected(c)
	}
	id := utils.ImmutableString(c.Params("id"))
	likes, liked, ok := s.Feed.ToggleViewerLike(id, s.Key())
	if !ok {
		return notFound(c)
	}
	return c.JSON(feed.LikeUpdate{PostID: id, Likes: likes, Liked: liked})
}

// LoadMoreHandler POST /api/feed/more
func (a *API) LoadMoreHandler(c *fiber.Ctx) error {
	s, ok := a.viewer(c)
	if !ok {
		return notConnected(c)
	}
	return c.JSON(s.Feed.LoadMore(feed.MorePosts()))
}
