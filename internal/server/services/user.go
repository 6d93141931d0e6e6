// Package services contains server-side business logic. This file implements
// UserService, which handles registration, login, profile management, and
// issuing/refreshing JWTs.
package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/akovalyov/notekeeper/internal/common"
	"github.com/akovalyov/notekeeper/internal/dbx"
	"github.com/akovalyov/notekeeper/internal/server/auth"
	"github.com/akovalyov/notekeeper/internal/server/models"
	"github.com/akovalyov/notekeeper/internal/server/repositories/repomanager"
)

// TokenPair bundles a short-lived access token and a long-lived refresh token.
type TokenPair struct {
	AccessToken  string
	RefreshToken string
}

// UserService provides account and authentication operations:
// - Register: create users together with their default category
// - Login: verify credentials and mint tokens
// - Refresh: mint a new access token for an already resolved identity
// - Get/Update/Delete/ChangePassword: profile management
type UserService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
	issuer      *auth.Issuer
}

// NewUserService constructs a UserService using repositories and a token issuer.
func NewUserService(db *sql.DB, m repomanager.RepositoryManager, issuer *auth.Issuer) *UserService {
	return &UserService{db: db, repomanager: m, issuer: issuer}
}

// Register creates a new user and, in the same transaction, the per-user
// default category. A duplicate email yields common.ErrorAlreadyExists.
func (s *UserService) Register(ctx context.Context, username, email, password string) (*models.User, error) {
	hash, err := auth.HashPassword(password)
	if err != nil {
		return nil, common.ErrorInternal
	}

	var user *models.User
	err = dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		var createErr error
		user, createErr = s.repomanager.Users(tx).Create(ctx, &models.User{
			Username:     username,
			Email:        email,
			PasswordHash: hash,
		})
		if createErr != nil {
			return createErr
		}

		_, createErr = s.repomanager.Categories(tx).Create(ctx, &models.Category{
			UserID:       user.ID,
			CategoryName: common.DefaultCategoryName,
		})
		if createErr != nil {
			return fmt.Errorf("error creating default category: %w", createErr)
		}
		return nil
	})
	if err != nil {
		if errors.Is(err, common.ErrorAlreadyExists) {
			return nil, common.ErrorAlreadyExists
		}
		return nil, err
	}

	return user, nil
}

// Login verifies the provided password against the stored hash and, on
// success, returns a new TokenPair. Unknown emails and wrong passwords are
// indistinguishable to the caller.
func (s *UserService) Login(ctx context.Context, email, password string) (*TokenPair, error) {
	user, err := s.repomanager.Users(s.db).GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, common.ErrorInvalidCredentials
		}
		return nil, common.ErrorInternal
	}

	if !auth.VerifyPassword(user.PasswordHash, password) {
		return nil, common.ErrorInvalidCredentials
	}

	return s.generateTokenPair(user.ID)
}

// Refresh mints a new access token for a user whose refresh token has
// already been resolved. No new refresh token is issued.
func (s *UserService) Refresh(user *models.User) (string, error) {
	token, err := s.issuer.IssueAccess(user.ID)
	if err != nil {
		return "", common.ErrorInternal
	}
	return token, nil
}

// Get returns the user's profile.
func (s *UserService) Get(ctx context.Context, userID int64) (*models.User, error) {
	return s.repomanager.Users(s.db).GetByID(ctx, userID)
}

// Update changes the user's username and/or email. A nil field keeps the
// stored value. A duplicate email yields common.ErrorAlreadyExists.
func (s *UserService) Update(ctx context.Context, userID int64, username, email *string) (*models.User, error) {
	repo := s.repomanager.Users(s.db)

	user, err := repo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	if username != nil {
		user.Username = *username
	}
	if email != nil {
		user.Email = *email
	}
	return repo.Update(ctx, user)
}

// Delete removes the user's account. Notes and categories go with it via
// foreign key cascade.
func (s *UserService) Delete(ctx context.Context, userID int64) error {
	return s.repomanager.Users(s.db).Delete(ctx, userID)
}

// ChangePassword verifies the current password and stores a hash of the new
// one. A wrong current password yields common.ErrorWrongPassword, a new
// password equal to the current one common.ErrorSamePassword.
func (s *UserService) ChangePassword(ctx context.Context, userID int64, currentPassword, newPassword string) error {
	repo := s.repomanager.Users(s.db)

	user, err := repo.GetByID(ctx, userID)
	if err != nil {
		return err
	}

	if !auth.VerifyPassword(user.PasswordHash, currentPassword) {
		return common.ErrorWrongPassword
	}
	if newPassword == currentPassword {
		return common.ErrorSamePassword
	}

	hash, err := auth.HashPassword(newPassword)
	if err != nil {
		return common.ErrorInternal
	}
	return repo.UpdatePassword(ctx, userID, hash)
}

func (s *UserService) generateTokenPair(userID int64) (*TokenPair, error) {
	accessToken, err := s.issuer.IssueAccess(userID)
	if err != nil {
		return nil, common.ErrorInternal
	}

	refreshToken, err := s.issuer.IssueRefresh(userID)
	if err != nil {
		return nil, common.ErrorInternal
	}

	return &TokenPair{AccessToken: accessToken, RefreshToken: refreshToken}, nil
}
