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

type OTPCodeRepository interface {
	Create(ctx context.Context, code *entity.OTPCode) error
	// FindValidCode returns an unused, unexpired code matching phone, code
	// and purpose, or nil when none exists.
	FindValidCode(ctx context.Context, phone, code string, purpose entity.OTPPurpose) (*entity.OTPCode, error)
	MarkUsed(ctx context.Context, id uuid.UUID) error
}

type otpCodeRepository struct {
	store storage.Store
	log   *zap.Logger
	mu    sync.Mutex
}

func NewOTPCodeRepository(store storage.Store, log *zap.Logger) OTPCodeRepository {
	return &otpCodeRepository{
		store: store,
		log:   log,
	}
}

func (cr *otpCodeRepository) readAll(ctx context.Context) ([]*entity.OTPCode, error) {
	var codes []*entity.OTPCode
	if err := cr.store.ReadAll(ctx, otpCodesCollection, &codes); err != nil {
		cr.log.Error("Failed to load otp codes collection", zap.Error(err))
		return nil, apperr.Storage(err, "failed to load otp codes")
	}
	return codes, nil
}

func (cr *otpCodeRepository) Create(ctx context.Context, code *entity.OTPCode) error {
	cr.mu.Lock()
	defer cr.mu.Unlock()

	codes, err := cr.readAll(ctx)
	if err != nil {
		return err
	}

	codes = append(codes, code)
	if err := cr.store.WriteAll(ctx, otpCodesCollection, codes); err != nil {
		cr.log.Error("Failed to persist otp codes collection", zap.Error(err))
		return apperr.Storage(err, "failed to save otp codes")
	}

	return nil
}

func (cr *otpCodeRepository) FindValidCode(ctx context.Context, phone, code string, purpose entity.OTPPurpose) (*entity.OTPCode, error) {
	codes, err := cr.readAll(ctx)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	for _, c := range codes {
		if c.PhoneNumber == phone && c.Code == code && c.Purpose == purpose &&
			!c.IsUsed && now.Before(c.ExpiresAt) {
			return c, nil
		}
	}

	return nil, nil
}

func (cr *otpCodeRepository) MarkUsed(ctx context.Context, id uuid.UUID) error {
	cr.mu.Lock()
	defer cr.mu.Unlock()

	codes, err := cr.readAll(ctx)
	if err != nil {
		return err
	}

	for _, c := range codes {
		if c.ID == id {
			c.IsUsed = true
			if err := cr.store.WriteAll(ctx, otpCodesCollection, codes); err != nil {
				cr.log.Error("Failed to persist otp codes collection", zap.Error(err))
				return apperr.Storage(err, "failed to save otp codes")
			}
			return nil
		}
	}

	return apperr.NotFound("otp code %s not found", id.String())
}
