package repository

import (
	"context"
	"sync"

	"vridhira/internal/data/entity"
	"vridhira/pkg/apperr"
	"vridhira/pkg/storage"

	"go.uber.org/zap"
)

type OTPAttemptRepository interface {
	Find(ctx context.Context, phone string) (*entity.OTPAttempt, error)
	// Put inserts or replaces the attempt record for its phone number.
	Put(ctx context.Context, attempt *entity.OTPAttempt) error
}

type otpAttemptRepository struct {
	store storage.Store
	log   *zap.Logger
	mu    sync.Mutex
}

func NewOTPAttemptRepository(store storage.Store, log *zap.Logger) OTPAttemptRepository {
	return &otpAttemptRepository{
		store: store,
		log:   log,
	}
}

func (ar *otpAttemptRepository) readAll(ctx context.Context) ([]*entity.OTPAttempt, error) {
	var attempts []*entity.OTPAttempt
	if err := ar.store.ReadAll(ctx, otpAttemptsCollection, &attempts); err != nil {
		ar.log.Error("Failed to load otp attempts collection", zap.Error(err))
		return nil, apperr.Storage(err, "failed to load otp attempts")
	}
	return attempts, nil
}

func (ar *otpAttemptRepository) Find(ctx context.Context, phone string) (*entity.OTPAttempt, error) {
	attempts, err := ar.readAll(ctx)
	if err != nil {
		return nil, err
	}

	for _, attempt := range attempts {
		if attempt.PhoneNumber == phone {
			return attempt, nil
		}
	}

	return nil, nil
}

func (ar *otpAttemptRepository) Put(ctx context.Context, attempt *entity.OTPAttempt) error {
	ar.mu.Lock()
	defer ar.mu.Unlock()

	attempts, err := ar.readAll(ctx)
	if err != nil {
		return err
	}

	replaced := false
	for i, existing := range attempts {
		if existing.PhoneNumber == attempt.PhoneNumber {
			attempts[i] = attempt
			replaced = true
			break
		}
	}
	if !replaced {
		attempts = append(attempts, attempt)
	}

	if err := ar.store.WriteAll(ctx, otpAttemptsCollection, attempts); err != nil {
		ar.log.Error("Failed to persist otp attempts collection", zap.Error(err))
		return apperr.Storage(err, "failed to save otp attempts")
	}

	return nil
}
