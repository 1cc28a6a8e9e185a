package models

// User is the admin account. Only one exists; it is seeded at startup.
type User struct {
	ID           int    `json:"id"`
	Username     string `json:"username"`
	PasswordHash string `json:"-"` // don't expose hash
}
