package model

// User is the logged-in identity. Authentication is a stored-equality check,
// not a security boundary.
type User struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Email    string `json:"email"`
	PhotoURL string `json:"photoUrl,omitempty"`
}
