package models

type Category struct {
	ID           int64
	UserID       int64
	CategoryName string
}
