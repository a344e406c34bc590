//go:build unit || e2e

package authtest

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"vending-server/internal/domain/character"
	"vending-server/internal/pkg/config"
	"vending-server/internal/pkg/jwt"
)

type JWTHelper struct {
	cfg config.JWTConfig
}

func NewJWTHelper(cfg config.JWTConfig) *JWTHelper {
	return &JWTHelper{cfg: cfg}
}

func (h *JWTHelper) GenerateToken(t *testing.T, id character.ID) string {
	t.Helper()
	duration, err := time.ParseDuration(h.cfg.Duration)
	require.NoError(t, err)
	token, err := jwt.NewService(h.cfg.Secret, duration).GenerateToken(id)
	require.NoError(t, err)
	return token
}

func (h *JWTHelper) CreateExpiredToken(t *testing.T, id character.ID) string {
	t.Helper()
	token, err := jwt.NewService(h.cfg.Secret, time.Millisecond).GenerateToken(id)
	require.NoError(t, err)
	time.Sleep(10 * time.Millisecond)
	return token
}
