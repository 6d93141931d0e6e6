package auth

import (
	"context"

	"github.com/akovalyov/notekeeper/internal/common"
	"github.com/akovalyov/notekeeper/internal/server/models"
	"github.com/akovalyov/notekeeper/internal/server/repositories/users"
)

// Resolver turns a presented token into a verified user record.
//
// Every protected operation runs Resolve with TokenKindAccess before doing
// anything else; the refresh endpoint is the only caller that expects
// TokenKindRefresh. All failures (decode, kind mismatch, missing user)
// surface as common.ErrorUnauthorized with no further detail, which keeps
// the rejection reason unobservable to clients.
type Resolver struct {
	codec *Codec
	users users.Repository
}

func NewResolver(codec *Codec, users users.Repository) *Resolver {
	return &Resolver{codec: codec, users: users}
}

// Resolve decodes tokenString, checks its kind against expected, and loads
// the subject user. A user deleted after issuance fails closed.
func (r *Resolver) Resolve(ctx context.Context, tokenString string, expected TokenKind) (*models.User, error) {
	claims, err := r.codec.Decode(tokenString)
	if err != nil {
		return nil, common.ErrorUnauthorized
	}

	if claims.TokenKind != expected {
		return nil, common.ErrorUnauthorized
	}

	user, err := r.users.GetByID(ctx, claims.UserID)
	if err != nil {
		return nil, common.ErrorUnauthorized
	}

	return user, nil
}
