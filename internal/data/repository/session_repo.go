package repository

import (
	"context"
	"sync"
	"time"

	"vridhira/internal/data/entity"
	"vridhira/pkg/apperr"
	"vridhira/pkg/storage"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type SessionRepository interface {
	Create(ctx context.Context, session *entity.Session) error
	// FindValidSession returns the unrevoked, unexpired session carrying
	// token, or nil when none exists.
	FindValidSession(ctx context.Context, token uuid.UUID) (*entity.Session, error)
	Revoke(ctx context.Context, token uuid.UUID) error
	RevokeAllForUser(ctx context.Context, userID uuid.UUID) error
}

type sessionRepository struct {
	store storage.Store
	log   *zap.Logger
	mu    sync.Mutex
}

func NewSessionRepository(store storage.Store, log *zap.Logger) SessionRepository {
	return &sessionRepository{
		store: store,
		log:   log,
	}
}

func (sr *sessionRepository) readAll(ctx context.Context) ([]*entity.Session, error) {
	var sessions []*entity.Session
	if err := sr.store.ReadAll(ctx, sessionsCollection, &sessions); err != nil {
		sr.log.Error("Failed to load sessions collection", zap.Error(err))
		return nil, apperr.Storage(err, "failed to load sessions")
	}
	return sessions, nil
}

func (sr *sessionRepository) writeAll(ctx context.Context, sessions []*entity.Session) error {
	if err := sr.store.WriteAll(ctx, sessionsCollection, sessions); err != nil {
		sr.log.Error("Failed to persist sessions collection", zap.Error(err))
		return apperr.Storage(err, "failed to save sessions")
	}
	return nil
}

func (sr *sessionRepository) Create(ctx context.Context, session *entity.Session) error {
	sr.mu.Lock()
	defer sr.mu.Unlock()

	sessions, err := sr.readAll(ctx)
	if err != nil {
		return err
	}

	sessions = append(sessions, session)
	return sr.writeAll(ctx, sessions)
}

func (sr *sessionRepository) FindValidSession(ctx context.Context, token uuid.UUID) (*entity.Session, error) {
	sessions, err := sr.readAll(ctx)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	for _, session := range sessions {
		if session.Token == token && session.RevokedAt == nil && now.Before(session.ExpiresAt) {
			return session, nil
		}
	}

	return nil, nil
}

func (sr *sessionRepository) Revoke(ctx context.Context, token uuid.UUID) error {
	sr.mu.Lock()
	defer sr.mu.Unlock()

	sessions, err := sr.readAll(ctx)
	if err != nil {
		return err
	}

	now := time.Now()
	for _, session := range sessions {
		if session.Token == token && session.RevokedAt == nil {
			session.RevokedAt = &now
			return sr.writeAll(ctx, sessions)
		}
	}

	return apperr.NotFound("session not found")
}

// RevokeAllForUser invalidates every active session of a user. Used when a
// role change must force re-authentication.
func (sr *sessionRepository) RevokeAllForUser(ctx context.Context, userID uuid.UUID) error {
	sr.mu.Lock()
	defer sr.mu.Unlock()

	sessions, err := sr.readAll(ctx)
	if err != nil {
		return err
	}

	now := time.Now()
	changed := false
	for _, session := range sessions {
		if session.UserID == userID && session.RevokedAt == nil {
			session.RevokedAt = &now
			changed = true
		}
	}

	if !changed {
		return nil
	}
	return sr.writeAll(ctx, sessions)
}
