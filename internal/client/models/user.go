package models

// User is the canonical profile record returned by /User endpoints and kept
// in the persisted session.
type User struct {
	ID              int64   `json:"id" validate:"gt=0"`
	UserName        string  `json:"userName" validate:"required"`
	Email           string  `json:"email" validate:"required,email"`
	Bio             *string `json:"bio,omitempty"`
	ProfileImageURL *string `json:"profileImageUrl,omitempty"`
	Role            string  `json:"role"`
}

// UserShort is the embedded author reference used by comments and likes.
type UserShort struct {
	ID       int64  `json:"id" validate:"gt=0"`
	UserName string `json:"userName"`
}

// ProfileUpdate is the body of PUT /User/profile/{id}.
type ProfileUpdate struct {
	Bio             *string `json:"bio,omitempty"`
	ProfileImageURL *string `json:"profileImageUrl,omitempty" validate:"omitempty,url"`
}

// UserPatch lists the locally mergeable user fields; nil means "keep".
type UserPatch struct {
	UserName        *string
	Email           *string
	Bio             *string
	ProfileImageURL *string
	Role            *string
}

// Apply returns u with every non-nil patch field replaced.
func (p UserPatch) Apply(u User) User {
	if p.UserName != nil {
		u.UserName = *p.UserName
	}
	if p.Email != nil {
		u.Email = *p.Email
	}
	if p.Bio != nil {
		u.Bio = ptr(*p.Bio)
	}
	if p.ProfileImageURL != nil {
		u.ProfileImageURL = ptr(*p.ProfileImageURL)
	}
	if p.Role != nil {
		u.Role = *p.Role
	}
	return u
}

// IsEmpty reports whether the patch changes nothing.
func (p UserPatch) IsEmpty() bool {
	return p.UserName == nil && p.Email == nil && p.Bio == nil && p.ProfileImageURL == nil && p.Role == nil
}

func ptr[T any](v T) *T { return &v }

// Ptr is a helper for building optional DTO fields.
func Ptr[T any](v T) *T { return ptr(v) }
