package token_test

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bloggydev/bloggy/internal/config"
	"github.com/bloggydev/bloggy/internal/domain"
	"github.com/bloggydev/bloggy/internal/token"
)

func testConfig() *config.Config {
	return &config.Config{
		JWTSecret:     "test-secret-key-for-signing",
		JWTIssuer:     "bloggy-test",
		JWTAudience:   "bloggy-test-clients",
		TokenTTLHours: 8,
	}
}

func testUser() *domain.User {
	return &domain.User{
		ID:          42,
		UserName:    "alice",
		Email:       "alice@x.com",
		FirstName:   "Alice",
		LastName:    "Smith",
		DateOfBirth: time.Date(1990, 6, 15, 0, 0, 0, 0, time.UTC),
		UserRoleID:  2,
	}
}

func TestIssuer_Issue(t *testing.T) {
	issuer := token.NewIssuer(testConfig())

	tokenString, err := issuer.Issue(testUser())
	require.NoError(t, err)

	t.Run("compact three-segment format", func(t *testing.T) {
		assert.Len(t, strings.Split(tokenString, "."), 3)
	})

	t.Run("claims round-trip", func(t *testing.T) {
		claims, err := issuer.Verify(tokenString)
		require.NoError(t, err)

		assert.Equal(t, "42", claims.UserID)
		assert.Equal(t, "alice", claims.UserName)
		assert.Equal(t, "alice@x.com", claims.Email)
		assert.Equal(t, "Alice", claims.FirstName)
		assert.Equal(t, "Smith", claims.LastName)
		assert.Equal(t, "1990-06-15", claims.DateOfBirth)
		assert.Equal(t, "2", claims.UserRoleID)
		assert.Equal(t, "bloggy-test", claims.Issuer)

		id, err := claims.ParseUserID()
		require.NoError(t, err)
		assert.Equal(t, uint(42), id)
	})
}

func TestIssuer_Verify(t *testing.T) {
	cfg := testConfig()
	issuer := token.NewIssuer(cfg)

	t.Run("rejects tampered token", func(t *testing.T) {
		tokenString, err := issuer.Issue(testUser())
		require.NoError(t, err)

		tampered := tokenString[:len(tokenString)-4] + "XXXX"
		_, err = issuer.Verify(tampered)
		assert.Error(t, err)
	})

	t.Run("rejects token signed with a different secret", func(t *testing.T) {
		otherCfg := testConfig()
		otherCfg.JWTSecret = "a-completely-different-secret"
		tokenString, err := token.NewIssuer(otherCfg).Issue(testUser())
		require.NoError(t, err)

		_, err = issuer.Verify(tokenString)
		assert.Error(t, err)
	})

	t.Run("rejects wrong issuer", func(t *testing.T) {
		otherCfg := testConfig()
		otherCfg.JWTIssuer = "someone-else"
		tokenString, err := token.NewIssuer(otherCfg).Issue(testUser())
		require.NoError(t, err)

		_, err = issuer.Verify(tokenString)
		assert.Error(t, err)
	})

	t.Run("rejects wrong audience", func(t *testing.T) {
		otherCfg := testConfig()
		otherCfg.JWTAudience = "someone-else"
		tokenString, err := token.NewIssuer(otherCfg).Issue(testUser())
		require.NoError(t, err)

		_, err = issuer.Verify(tokenString)
		assert.Error(t, err)
	})

	t.Run("rejects garbage", func(t *testing.T) {
		_, err := issuer.Verify("not.a.token")
		assert.Error(t, err)
	})
}

func TestIssuer_ExpiryBoundary(t *testing.T) {
	issuedAt := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	issuer := token.NewIssuer(testConfig()).WithClock(func() time.Time { return issuedAt })
	tokenString, err := issuer.Issue(testUser())
	require.NoError(t, err)

	t.Run("accepted seven hours after issuance", func(t *testing.T) {
		verifier := token.NewIssuer(testConfig()).
			WithClock(func() time.Time { return issuedAt.Add(7 * time.Hour) })
		_, err := verifier.Verify(tokenString)
		assert.NoError(t, err)
	})

	t.Run("rejected nine hours after issuance", func(t *testing.T) {
		verifier := token.NewIssuer(testConfig()).
			WithClock(func() time.Time { return issuedAt.Add(9 * time.Hour) })
		_, err := verifier.Verify(tokenString)
		assert.Error(t, err)
	})
}
