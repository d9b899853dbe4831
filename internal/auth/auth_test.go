package auth

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/gofiber/fiber/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/spec-kit/fotos-express/internal/domain"
	"github.com/spec-kit/fotos-express/internal/persistence"
	"github.com/spec-kit/fotos-express/internal/repository"
	apperrors "github.com/spec-kit/fotos-express/pkg/util"
)

func TestVerifyPassword(t *testing.T) {
	hashed, err := HashPassword("password123", bcrypt.MinCost)
	require.NoError(t, err)

	assert.True(t, VerifyPassword(hashed, "password123"))
	assert.False(t, VerifyPassword(hashed, "password124"))

	legacy := LegacyDigest("Fotosexpresspr01@")
	assert.Len(t, legacy, 64)
	assert.True(t, VerifyPassword(legacy, "Fotosexpresspr01@"))
	assert.False(t, VerifyPassword(legacy, "fotosexpresspr01@"))

	assert.False(t, VerifyPassword("", ""))
	assert.True(t, IsLegacyDigest(legacy))
	assert.False(t, IsLegacyDigest(hashed))
}

func TestActivationToken(t *testing.T) {
	now := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	a := NewActivationToken(now, 7*24*time.Hour)
	b := NewActivationToken(now, 7*24*time.Hour)

	assert.NotEqual(t, a.Value, b.Value)
	assert.Equal(t, now.Add(168*time.Hour), a.ExpiresAt)

	assert.False(t, Expired(&a.ExpiresAt, now.Add(time.Hour)))
	assert.True(t, Expired(&a.ExpiresAt, now.Add(8*24*time.Hour)))
	assert.True(t, Expired(nil, now))
}

func TestTokenManager(t *testing.T) {
	tm := NewTokenManager("secret", 5)
	token, expiresAt, err := tm.GenerateToken("SU1", "a@b.pr")
	require.NoError(t, err)
	assert.WithinDuration(t, time.Now().Add(5*time.Minute), expiresAt, time.Minute)

	claims, err := tm.ParseToken(token)
	require.NoError(t, err)
	assert.Equal(t, "SU1", claims.StaffID)
	assert.Equal(t, "a@b.pr", claims.Email)

	_, err = NewTokenManager("other", 5).ParseToken(token)
	assert.Error(t, err)

	tm.now = func() time.Time { return time.Now().Add(time.Hour) }
	_, err = tm.ParseToken(token)
	assert.Error(t, err)
}

func newStaffRepo(t *testing.T) repository.StaffUserRepository {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return repository.NewStaffUserRepository(persistence.NewRedisFromClient(client))
}

func TestAuthMiddleware(t *testing.T) {
	ctx := context.Background()
	repo := newStaffRepo(t)
	active := &domain.StaffUser{Email: "on@fx.pr", Name: "On", IsActive: true}
	inactive := &domain.StaffUser{Email: "off@fx.pr", Name: "Off"}
	require.NoError(t, repo.Create(ctx, active))
	require.NoError(t, repo.Create(ctx, inactive))

	tm := NewTokenManager("secret", 5)
	app := fiber.New(fiber.Config{ErrorHandler: func(c *fiber.Ctx, err error) error {
		return c.Status(apperrors.ToDomainError(err).HTTPStatus).SendString(err.Error())
	}})
	app.Get("/me", NewAuthMiddleware(tm, repo).Handle, RequireActiveStaff(), func(c *fiber.Ctx) error {
		principal, _ := PrincipalFromContext(c)
		return c.SendString(principal.Staff.ID)
	})

	call := func(header string) (int, string) {
		req := httptest.NewRequest(http.MethodGet, "/me", nil)
		if header != "" {
			req.Header.Set("Authorization", header)
		}
		resp, err := app.Test(req)
		require.NoError(t, err)
		body, _ := io.ReadAll(resp.Body)
		return resp.StatusCode, string(body)
	}

	activeToken, _, err := tm.GenerateToken(active.ID, active.Email)
	require.NoError(t, err)
	status, body := call("Bearer " + activeToken)
	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, active.ID, body)

	inactiveToken, _, err := tm.GenerateToken(inactive.ID, inactive.Email)
	require.NoError(t, err)
	status, _ = call("Bearer " + inactiveToken)
	assert.Equal(t, http.StatusUnauthorized, status)

	ghostToken, _, err := tm.GenerateToken("SU404", "ghost@fx.pr")
	require.NoError(t, err)
	status, _ = call("Bearer " + ghostToken)
	assert.Equal(t, http.StatusUnauthorized, status)

	status, _ = call("")
	assert.Equal(t, http.StatusUnauthorized, status)
	status, _ = call("Token abc")
	assert.Equal(t, http.StatusUnauthorized, status)
}
