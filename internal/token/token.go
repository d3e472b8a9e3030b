// Package token issues and verifies signed session tokens.
package token

import (
	"errors"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/bloggydev/bloggy/internal/config"
	"github.com/bloggydev/bloggy/internal/domain"
)

// DateOfBirthFormat is the textual date layout used for the dateOfBirth claim.
const DateOfBirthFormat = "2006-01-02"

var ErrInvalidToken = errors.New("invalid token")

// UserClaims is the claim set carried by a session token. All identity
// attributes are plain string claims.
type UserClaims struct {
	UserID      string `json:"id"`
	UserName    string `json:"userName"`
	Email       string `json:"email"`
	FirstName   string `json:"firstName"`
	LastName    string `json:"lastName"`
	DateOfBirth string `json:"dateOfBirth"`
	UserRoleID  string `json:"userRoleId"`
	jwt.RegisteredClaims
}

// Issuer builds HS256-signed session tokens and verifies inbound ones.
// It is stateless; any token with a valid signature, matching issuer and
// audience, and an unexpired expiry is honored.
type Issuer struct {
	secret   []byte
	issuer   string
	audience string
	ttl      time.Duration

	now func() time.Time
}

func NewIssuer(cfg *config.Config) *Issuer {
	return &Issuer{
		secret:   []byte(cfg.JWTSecret),
		issuer:   cfg.JWTIssuer,
		audience: cfg.JWTAudience,
		ttl:      cfg.TokenTTL(),
		now:      time.Now,
	}
}

// Issue signs a token carrying the user's identity and role claims,
// valid from now until now plus the configured validity window.
func (i *Issuer) Issue(user *domain.User) (string, error) {
	issuedAt := i.now()
	claims := UserClaims{
		UserID:      strconv.FormatUint(uint64(user.ID), 10),
		UserName:    user.UserName,
		Email:       user.Email,
		FirstName:   user.FirstName,
		LastName:    user.LastName,
		DateOfBirth: user.DateOfBirth.Format(DateOfBirthFormat),
		UserRoleID:  strconv.FormatUint(uint64(user.UserRoleID), 10),
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    i.issuer,
			Audience:  jwt.ClaimStrings{i.audience},
			ExpiresAt: jwt.NewNumericDate(issuedAt.Add(i.ttl)),
			IssuedAt:  jwt.NewNumericDate(issuedAt),
		},
	}

	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(i.secret)
}

// Verify checks the token's signature, issuer, audience, and expiry, and
// returns the decoded claims.
func (i *Issuer) Verify(tokenString string) (*UserClaims, error) {
	claims := &UserClaims{}
	tok, err := jwt.ParseWithClaims(tokenString, claims,
		func(t *jwt.Token) (interface{}, error) { return i.secret, nil },
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(i.issuer),
		jwt.WithAudience(i.audience),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(func() time.Time { return i.now() }),
	)
	if err != nil {
		return nil, err
	}
	if !tok.Valid {
		return nil, ErrInvalidToken
	}
	return claims, nil
}

// ParseUserID parses the numeric user id claim from verified claims.
func (c *UserClaims) ParseUserID() (uint, error) {
	id, err := strconv.ParseUint(c.UserID, 10, 64)
	if err != nil {
		return 0, ErrInvalidToken
	}
	return uint(id), nil
}

// WithClock overrides the issuer's time source. Used by tests to exercise
// expiry boundaries.
func (i *Issuer) WithClock(now func() time.Time) *Issuer {
	i.now = now
	return i
}
