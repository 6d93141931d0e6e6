// Package models holds the persistent records served by the notekeeper API.
package models

import "time"

type User struct {
	ID           int64
	Username     string
	Email        string
	PasswordHash string
	CreatedAt    time.Time
}
