//go:build unit || e2e

package authtest

import (
	"testing"
	"time"

	"campus-reservation/internal/pkg/clock"
	"campus-reservation/internal/pkg/config"
	"campus-reservation/internal/pkg/jwt"

	"github.com/stretchr/testify/require"
)

type JWTHelper struct {
	cfg config.JWTConfig
	clk clock.Clock
}

func NewJWTHelper(cfg config.JWTConfig, clk clock.Clock) *JWTHelper {
	return &JWTHelper{cfg: cfg, clk: clk}
}

func (h *JWTHelper) GenerateToken(t *testing.T, studentID int64) string {
	t.Helper()
	duration, err := time.ParseDuration(h.cfg.Duration)
	require.NoError(t, err)
	token, err := jwt.NewService(h.cfg.Secret, duration, h.clk).GenerateToken(studentID)
	require.NoError(t, err)
	return token
}

// CreateExpiredToken signs a token whose lifetime ended an hour before the
// helper's clock.
func (h *JWTHelper) CreateExpiredToken(t *testing.T, studentID int64) string {
	t.Helper()
	past := clock.NewMockClock(h.clk.Now().Add(-2 * time.Hour))
	token, err := jwt.NewService(h.cfg.Secret, time.Hour, past).GenerateToken(studentID)
	require.NoError(t, err)
	return token
}

// CreateForeignToken signs with a different secret.
func (h *JWTHelper) CreateForeignToken(t *testing.T, studentID int64) string {
	t.Helper()
	token, err := jwt.NewService(h.cfg.Secret+"-other", time.Hour, h.clk).GenerateToken(studentID)
	require.NoError(t, err)
	return token
}
