package rest

import (
	"time"

	"github.com/akovalyov/notekeeper/internal/server/models"
)

// --- requests ---

type SignupRequest struct {
	Username string `json:"username" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
}

// LoginRequest is accepted as a form post or JSON; username carries the email.
type LoginRequest struct {
	Username string `form:"username" json:"username" validate:"required"`
	Password string `form:"password" json:"password" validate:"required"`
}

// UpdateUserRequest carries a partial profile edit; omitted fields keep
// their stored values.
type UpdateUserRequest struct {
	Username *string `json:"username"`
	Email    *string `json:"email" validate:"omitempty,email"`
}

type ChangePasswordRequest struct {
	CurrentPassword string `json:"current_password" validate:"required"`
	NewPassword     string `json:"new_password" validate:"required,min=8"`
}

type NoteRequest struct {
	Title      string `json:"title" validate:"required"`
	Content    string `json:"content"`
	CategoryID *int64 `json:"category_id"`
}

// UpdateNoteRequest carries a partial note edit; omitted fields keep
// their stored values.
type UpdateNoteRequest struct {
	Title   *string `json:"title"`
	Content *string `json:"content"`
}

type CategoryRequest struct {
	CategoryName string `json:"category_name" validate:"required"`
}

// --- responses ---

type UserResponse struct {
	ID        int64     `json:"id"`
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
}

type TokenResponse struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token,omitempty"`
	TokenType    string `json:"token_type"`
}

type NoteResponse struct {
	ID         int64     `json:"id"`
	Title      string    `json:"title"`
	Content    string    `json:"content"`
	CategoryID *int64    `json:"category_id"`
	Bookmark   bool      `json:"bookmark"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

type CategoryResponse struct {
	ID           int64  `json:"id"`
	CategoryName string `json:"category_name"`
}

func newUserResponse(u *models.User) *UserResponse {
	return &UserResponse{ID: u.ID, Username: u.Username, Email: u.Email, CreatedAt: u.CreatedAt}
}

func newNoteResponse(n *models.Note) *NoteResponse {
	return &NoteResponse{
		ID:         n.ID,
		Title:      n.Title,
		Content:    n.Content,
		CategoryID: n.CategoryID,
		Bookmark:   n.Bookmark,
		CreatedAt:  n.CreatedAt,
		UpdatedAt:  n.UpdatedAt,
	}
}

func newNoteListResponse(notes []*models.Note) []*NoteResponse {
	out := make([]*NoteResponse, 0, len(notes))
	for _, n := range notes {
		out = append(out, newNoteResponse(n))
	}
	return out
}

func newCategoryResponse(c *models.Category) *CategoryResponse {
	return &CategoryResponse{ID: c.ID, CategoryName: c.CategoryName}
}

func newCategoryListResponse(categories []*models.Category) []*CategoryResponse {
	out := make([]*CategoryResponse, 0, len(categories))
	for _, c := range categories {
		out = append(out, newCategoryResponse(c))
	}
	return out
}
