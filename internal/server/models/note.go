package models

import "time"

// Note belongs to exactly one user. CategoryID is nil for uncategorized
// notes; the referenced category is always owned by the same user.
type Note struct {
	ID         int64
	UserID     int64
	Title      string
	Content    string
	CategoryID *int64
	Bookmark   bool
	CreatedAt  time.Time
	UpdatedAt  time.Time
}
