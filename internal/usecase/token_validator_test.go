//go:build unit

package usecase_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"toolshare/internal/domain/user"
	"toolshare/internal/pkg/jwt"
	"toolshare/internal/usecase"
	sharedmock "toolshare/tests/mock/shared"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestValidateToken(t *testing.T) {
	service := jwt.NewService("validator-secret", time.Hour)
	userID := uuid.New()

	issue := func(t *testing.T) (string, *jwt.Claims) {
		token, err := service.GenerateAccessToken(userID, user.RoleAdmin)
		require.NoError(t, err)
		claims, err := service.ValidateToken(token)
		require.NoError(t, err)
		return token, claims
	}

	t.Run("valid token yields the principal", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		denylist := sharedmock.NewMockTokenDenylist(ctrl)
		token, claims := issue(t)
		denylist.EXPECT().IsRevoked(gomock.Any(), claims.TokenID()).Return(false, nil)

		p, err := usecase.NewTokenValidator(service, denylist).ValidateToken(context.Background(), token)
		require.NoError(t, err)
		require.Equal(t, userID, p.UserID)
		require.Equal(t, user.RoleAdmin, p.Role)
		require.Equal(t, claims.TokenID(), p.TokenID)
		require.WithinDuration(t, time.Now().Add(time.Hour), p.ExpiresAt, time.Minute)
	})

	t.Run("revoked token", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		denylist := sharedmock.NewMockTokenDenylist(ctrl)
		token, claims := issue(t)
		denylist.EXPECT().IsRevoked(gomock.Any(), claims.TokenID()).Return(true, nil)

		_, err := usecase.NewTokenValidator(service, denylist).ValidateToken(context.Background(), token)
		require.ErrorIs(t, err, usecase.ErrTokenRevoked)
	})

	t.Run("denylist unavailable", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		denylist := sharedmock.NewMockTokenDenylist(ctrl)
		token, _ := issue(t)
		denylist.EXPECT().IsRevoked(gomock.Any(), gomock.Any()).Return(false, errors.New("redis down"))

		_, err := usecase.NewTokenValidator(service, denylist).ValidateToken(context.Background(), token)
		require.Error(t, err)
	})

	t.Run("expired token never reaches the denylist", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		denylist := sharedmock.NewMockTokenDenylist(ctrl)
		expired, err := jwt.NewService("validator-secret", -time.Minute).GenerateAccessToken(userID, user.RoleUser)
		require.NoError(t, err)

		_, err = usecase.NewTokenValidator(service, denylist).ValidateToken(context.Background(), expired)
		require.ErrorIs(t, err, jwt.ErrExpiredToken)
	})

	t.Run("foreign signature", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		denylist := sharedmock.NewMockTokenDenylist(ctrl)
		forged, err := jwt.NewService("other-secret", time.Hour).GenerateAccessToken(userID, user.RoleAdmin)
		require.NoError(t, err)

		_, err = usecase.NewTokenValidator(service, denylist).ValidateToken(context.Background(), forged)
		require.ErrorIs(t, err, jwt.ErrInvalidToken)
	})
}
