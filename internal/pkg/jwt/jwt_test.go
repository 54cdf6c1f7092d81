//go:build unit

package jwt_test

import (
	"testing"
	"time"

	"campus-reservation/internal/pkg/clock"
	"campus-reservation/internal/pkg/jwt"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestService(t *testing.T) {
	clk := clock.NewMockClock(time.Date(2025, 3, 3, 0, 0, 0, 0, time.UTC))
	svc := jwt.NewService("secret", time.Hour, clk)

	t.Run("round trip", func(t *testing.T) {
		token, err := svc.GenerateToken(202312345)
		require.NoError(t, err)

		claims, err := svc.ValidateToken(token)
		require.NoError(t, err)
		assert.Equal(t, int64(202312345), claims.StudentID)
	})

	t.Run("expired", func(t *testing.T) {
		token, err := svc.GenerateToken(202312345)
		require.NoError(t, err)

		clk.Add(2 * time.Hour)
		defer clk.Add(-2 * time.Hour)

		_, err = svc.ValidateToken(token)
		assert.ErrorIs(t, err, jwt.ErrExpiredToken)
	})

	t.Run("wrong secret", func(t *testing.T) {
		other := jwt.NewService("other", time.Hour, clk)
		token, err := other.GenerateToken(202312345)
		require.NoError(t, err)

		_, err = svc.ValidateToken(token)
		assert.ErrorIs(t, err, jwt.ErrInvalidToken)
	})

	t.Run("garbage", func(t *testing.T) {
		_, err := svc.ValidateToken("token-202312345-abc")
		assert.ErrorIs(t, err, jwt.ErrInvalidToken)
	})
}
