package models

// Blog is the canonical blog record.
type Blog struct {
	ID          int64  `json:"id" validate:"gt=0"`
	Title       string `json:"title"`
	Description string `json:"description"`
	UserID      int64  `json:"userId"`
}

// BlogCreate is the body of POST /Blog.
type BlogCreate struct {
	Title       string `json:"title" validate:"required"`
	Description string `json:"description"`
	UserID      int64  `json:"userId" validate:"gt=0"`
}

// BlogUpdate is the body of PUT /Blog/{id}.
type BlogUpdate struct {
	Title       string `json:"title" validate:"required"`
	Description string `json:"description"`
}
