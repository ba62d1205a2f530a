package repository

import (
	"context"
	"testing"
	"time"

	"vridhira/internal/data/entity"
	"vridhira/pkg/utils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newSession(userID uuid.UUID, expiresIn time.Duration) *entity.Session {
	return &entity.Session{
		Base: entity.Base{
			ID:        utils.GenerateID(),
			CreatedAt: time.Now(),
		},
		UserID:    userID,
		Token:     utils.GenerateSessionToken(),
		ExpiresAt: time.Now().Add(expiresIn),
	}
}

func TestSessionFindValid(t *testing.T) {
	repo := NewSessionRepository(newTestStore(t), zap.NewNop())
	ctx := context.Background()

	session := newSession(utils.GenerateID(), time.Hour)
	require.NoError(t, repo.Create(ctx, session))

	found, err := repo.FindValidSession(ctx, session.Token)
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.Equal(t, session.UserID, found.UserID)
}

func TestSessionExpiredIsInvalid(t *testing.T) {
	repo := NewSessionRepository(newTestStore(t), zap.NewNop())
	ctx := context.Background()

	session := newSession(utils.GenerateID(), -time.Minute)
	require.NoError(t, repo.Create(ctx, session))

	found, err := repo.FindValidSession(ctx, session.Token)
	require.NoError(t, err)
	assert.Nil(t, found)
}

func TestSessionRevoke(t *testing.T) {
	repo := NewSessionRepository(newTestStore(t), zap.NewNop())
	ctx := context.Background()

	session := newSession(utils.GenerateID(), time.Hour)
	require.NoError(t, repo.Create(ctx, session))
	require.NoError(t, repo.Revoke(ctx, session.Token))

	found, err := repo.FindValidSession(ctx, session.Token)
	require.NoError(t, err)
	assert.Nil(t, found)
}

func TestSessionRevokeAllForUser(t *testing.T) {
	repo := NewSessionRepository(newTestStore(t), zap.NewNop())
	ctx := context.Background()

	userID := utils.GenerateID()
	first := newSession(userID, time.Hour)
	second := newSession(userID, time.Hour)
	other := newSession(utils.GenerateID(), time.Hour)

	require.NoError(t, repo.Create(ctx, first))
	require.NoError(t, repo.Create(ctx, second))
	require.NoError(t, repo.Create(ctx, other))

	require.NoError(t, repo.RevokeAllForUser(ctx, userID))

	for _, token := range []uuid.UUID{first.Token, second.Token} {
		found, err := repo.FindValidSession(ctx, token)
		require.NoError(t, err)
		assert.Nil(t, found)
	}

	// Unrelated sessions survive
	found, err := repo.FindValidSession(ctx, other.Token)
	require.NoError(t, err)
	assert.NotNil(t, found)
}
