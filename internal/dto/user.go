package dto

import dom "recipeshare/internal/domain"

// SignupRequest is the JSON body for POST /signup.
// username/password are checked in the service so that a missing field
// yields the 422 contract instead of gin's 400 binding error.
type SignupRequest struct {
	Username string  `json:"username"`
	Password string  `json:"password"`
	ImageURL *string `json:"image_url"`
	Bio      *string `json:"bio"`
}

// LoginRequest is the JSON body for POST /login.
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// UserView is the public projection of a user. The password hash is
// deliberately absent from this struct, not merely tagged away.
type UserView struct {
	ID       int64   `json:"id"`
	Username string  `json:"username"`
	ImageURL *string `json:"image_url"`
	Bio      *string `json:"bio"`
}

// UserToView projects a domain user to its public view.
func UserToView(u dom.User) UserView {
	return UserView{
		ID:       u.ID,
		Username: u.Username,
		ImageURL: u.ImageURL,
		Bio:      u.Bio,
	}
}
