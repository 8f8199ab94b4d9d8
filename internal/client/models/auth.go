package models

// Credentials is the body of POST /User/login.
type Credentials struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// Registration is the body of POST /User/register.
type Registration struct {
	UserName string `json:"userName" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// AuthResponse is returned by both login and register.
type AuthResponse struct {
	Token string `json:"token" validate:"required"`
	User  User   `json:"user"`
}

// Session pairs a bearer token with the profile it authenticates. The zero
// value is the logged-out session; Token and User are set and cleared
// together.
type Session struct {
	Token string
	User  *User
}

// Active reports whether the session carries both halves.
func (s Session) Active() bool {
	return s.Token != "" && s.User != nil
}

// Clone returns a copy that shares no pointers with s.
func (s Session) Clone() Session {
	if s.User == nil {
		return Session{Token: s.Token}
	}
	u := *s.User
	if u.Bio != nil {
		u.Bio = ptr(*u.Bio)
	}
	if u.ProfileImageURL != nil {
		u.ProfileImageURL = ptr(*u.ProfileImageURL)
	}
	return Session{Token: s.Token, User: &u}
}
