package feed

import "time"

type Reactions struct {
	Comments int `json:"comments"`
	Likes    int `json:"likes"`
	Views    int `json:"views"`
	Shares   int `json:"shares"`
}

type Post struct {
	ID             string    `json:"id"`
	Content        string    `json:"content"`
	Author         string    `json:"author"`
	AuthorIdentity string    `json:"author_identity,omitempty"`
	WalletAddress  string    `json:"wallet_address"` // display form, 0x1234...abcd
	Handle         string    `json:"handle"`
	Avatar         int       `json:"avatar"`
	TimeLabel      string    `json:"timestamp"`
	CreatedAt      time.Time `json:"created_at,omitempty"`
	Reactions      Reactions `json:"reactions"`
	ImageURL       string    `json:"image_url,omitempty"`
}

func (p Post) HasImage() bool { return p.ImageURL != "" }

// LikeSet is the set of post ids a viewer has liked.
type LikeSet map[string]bool

// LikeUpdate is the payload of a post.liked event.
type LikeUpdate struct {
	PostID string `json:"post_id"`
	Likes  int    `json:"likes"`
	Liked  bool   `json:"liked"`
}

func clonePosts(in []Post) []Post {
	return append([]Post(nil), in...)
}
