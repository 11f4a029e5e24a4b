package models

import "time"

// User represents a registered account. PasswordHash holds the bcrypt
// hash of the credential; the plaintext is never persisted.
type User struct {
	ID           int       `json:"id"`
	Username     string    `json:"username"`
	PasswordHash string    `json:"-"`
	Email        string    `json:"email"`
	CreationTime time.Time `json:"creation_time"`
}
