package auth

import (
	"fmt"
	"time"

	"github.com/akovalyov/notekeeper/internal/common"
	"github.com/golang-jwt/jwt/v5"
)

// TokenKind discriminates access tokens from refresh tokens. A token minted
// as one kind must never be accepted where the other kind is expected, no
// matter how its lifetime compares.
type TokenKind string

const (
	TokenKindAccess  TokenKind = "access_token"
	TokenKindRefresh TokenKind = "refresh_token"
)

// Claims is the decoded payload of a token: the subject user id, the kind,
// and the registered expiry. Claims are never persisted server-side; their
// whole existence is the signed string held by the client.
type Claims struct {
	jwt.RegisteredClaims
	UserID    int64     `json:"user_id"`
	TokenKind TokenKind `json:"token_kind"`
}

// Codec signs claims into compact token strings and verifies them back.
//
// Decode collapses every failure mode (bad signature, structural corruption,
// expiry) into common.ErrInvalidToken so a caller cannot tell a forged token
// from an expired one.
type Codec struct {
	secret []byte
	method jwt.SigningMethod
}

// NewCodec builds a Codec for the given HMAC secret and algorithm name
// (e.g. "HS256"). Non-HMAC algorithms are rejected at construction time.
func NewCodec(secret string, algorithm string) (*Codec, error) {
	method := jwt.GetSigningMethod(algorithm)
	if method == nil {
		return nil, fmt.Errorf("unknown signing algorithm %q", algorithm)
	}
	if _, ok := method.(*jwt.SigningMethodHMAC); !ok {
		return nil, fmt.Errorf("signing algorithm %q is not an HMAC scheme", algorithm)
	}
	return &Codec{secret: []byte(secret), method: method}, nil
}

// Encode signs a token for userID with the given kind, expiring after validity.
func (c *Codec) Encode(userID int64, kind TokenKind, validity time.Duration) (string, error) {
	token := jwt.NewWithClaims(c.method, Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(validity)),
		},
		UserID:    userID,
		TokenKind: kind,
	})

	return token.SignedString(c.secret)
}

// Decode verifies the signature and expiry of tokenString and returns its
// claims. Any failure yields common.ErrInvalidToken.
func (c *Codec) Decode(tokenString string) (*Claims, error) {
	claims := &Claims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (any, error) {
		return c.secret, nil
	}, jwt.WithValidMethods([]string{c.method.Alg()}))
	if err != nil || !token.Valid {
		return nil, common.ErrInvalidToken
	}

	return claims, nil
}

// Issuer mints access and refresh tokens with their configured lifetimes.
// It holds no state; nothing is recorded at issuance.
type Issuer struct {
	codec           *Codec
	accessValidity  time.Duration
	refreshValidity time.Duration
}

func NewIssuer(codec *Codec, accessValidity, refreshValidity time.Duration) *Issuer {
	return &Issuer{
		codec:           codec,
		accessValidity:  accessValidity,
		refreshValidity: refreshValidity,
	}
}

func (i *Issuer) IssueAccess(userID int64) (string, error) {
	return i.codec.Encode(userID, TokenKindAccess, i.accessValidity)
}

func (i *Issuer) IssueRefresh(userID int64) (string, error) {
	return i.codec.Encode(userID, TokenKindRefresh, i.refreshValidity)
}
