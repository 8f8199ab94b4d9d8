package models

import "time"

// Post is the canonical post record. Servers that send nested author/blog
// objects instead of ids are normalised by Normalize.
type Post struct {
	ID          int64      `json:"id" validate:"gt=0"`
	Title       string     `json:"title"`
	Content     string     `json:"content"`
	Slug        string     `json:"slug" validate:"required"`
	AuthorID    int64      `json:"authorId"`
	BlogID      int64      `json:"blogId"`
	Published   bool       `json:"published"`
	PublishedAt *time.Time `json:"publishedAt,omitempty"`
	Author      *UserShort `json:"author,omitempty"`
	Blog        *BlogRef   `json:"blog,omitempty"`
	Comments    []Comment  `json:"comments" validate:"dive"`
	Likes       []Like     `json:"likes" validate:"dive"`
}

// BlogRef is the nested blog reference some post payloads carry.
type BlogRef struct {
	ID int64 `json:"id"`
}

// Normalize fills AuthorID and BlogID from nested references when the flat
// ids are missing, and the nested author from AuthorID when absent.
func (p *Post) Normalize() {
	if p.AuthorID == 0 && p.Author != nil {
		p.AuthorID = p.Author.ID
	}
	if p.BlogID == 0 && p.Blog != nil {
		p.BlogID = p.Blog.ID
	}
	if p.Comments == nil {
		p.Comments = []Comment{}
	}
	if p.Likes == nil {
		p.Likes = []Like{}
	}
}

// LikeBy returns the like left by userID, if any.
func (p Post) LikeBy(userID int64) (Like, bool) {
	for _, l := range p.Likes {
		if l.User.ID == userID {
			return l, true
		}
	}
	return Like{}, false
}

// PostCreate is the body of POST /Post.
type PostCreate struct {
	Title    string `json:"title" validate:"required"`
	Content  string `json:"content" validate:"required"`
	Slug     string `json:"slug" validate:"required"`
	AuthorID int64  `json:"authorId" validate:"gt=0"`
	BlogID   int64  `json:"blogId" validate:"gt=0"`
}

// PostUpdate is the body of PUT /Post/{id}.
type PostUpdate struct {
	Title   string `json:"title" validate:"required"`
	Content string `json:"content" validate:"required"`
	Slug    string `json:"slug" validate:"required"`
}

// PostStatus filters post lists by publication state.
type PostStatus string

const (
	PostStatusAll         PostStatus = "all"
	PostStatusPublished   PostStatus = "published"
	PostStatusUnpublished PostStatus = "unpublished"
)

// ParsePostStatus maps user input to a PostStatus.
func ParsePostStatus(s string) (PostStatus, bool) {
	switch PostStatus(s) {
	case PostStatusAll, PostStatusPublished, PostStatusUnpublished:
		return PostStatus(s), true
	}
	return "", false
}
