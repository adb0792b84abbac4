//go:build unit || e2e

package authtest

import (
	"testing"
	"time"

	"dealswap/internal/pkg/clock"
	"dealswap/internal/pkg/config"
	"dealswap/internal/pkg/jwt"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

type JWTHelper struct {
	cfg config.JWTConfig
}

func NewJWTHelper(cfg config.JWTConfig) *JWTHelper {
	return &JWTHelper{cfg: cfg}
}

// GenerateToken signs a token for a fresh session.
func (h *JWTHelper) GenerateToken(t *testing.T, userID uuid.UUID, username string) string {
	t.Helper()
	duration, err := time.ParseDuration(h.cfg.Duration)
	require.NoError(t, err)
	service := jwt.NewService(h.cfg.Secret, duration, nil)
	token, err := service.GenerateToken(userID, username, uuid.New())
	require.NoError(t, err)
	return token
}

func (h *JWTHelper) CreateExpiredToken(t *testing.T, userID uuid.UUID, username string) string {
	t.Helper()
	issued := clock.NewMockClock(time.Now().Add(-2 * time.Hour))
	service := jwt.NewService(h.cfg.Secret, time.Hour, issued)
	token, err := service.GenerateToken(userID, username, uuid.New())
	require.NoError(t, err)
	return token
}
