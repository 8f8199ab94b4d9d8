package models

// Comment is the canonical comment record.
type Comment struct {
	ID      int64     `json:"id" validate:"gt=0"`
	Content string    `json:"content"`
	PostID  int64     `json:"postId"`
	User    UserShort `json:"user"`
}

// CommentCreate is the body of POST /Comment.
type CommentCreate struct {
	Content string `json:"content" validate:"required"`
	PostID  int64  `json:"postId" validate:"gt=0"`
	UserID  int64  `json:"userId" validate:"gt=0"`
}

// Like is the canonical like record.
type Like struct {
	ID     int64     `json:"id" validate:"gt=0"`
	PostID int64     `json:"postId,omitempty"`
	User   UserShort `json:"user"`
}

// LikeCreate is the body of POST /Like.
type LikeCreate struct {
	PostID int64 `json:"postId" validate:"gt=0"`
	UserID int64 `json:"userId" validate:"gt=0"`
}
