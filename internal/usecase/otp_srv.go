package usecase

import (
	"context"
	"fmt"
	"time"

	"vridhira/internal/data/entity"
	"vridhira/internal/data/repository"
	"vridhira/internal/dto/response"
	"vridhira/pkg/apperr"
	"vridhira/pkg/utils"

	"go.uber.org/zap"
)

// OTPService issues one-time passcodes and rate limits challenge requests
// per phone number. A number that trips the attempt limit inside the rolling
// window is banned for exactly one window.
type OTPService interface {
	RecordAttempt(ctx context.Context, phone string) (*response.ChallengeResponse, error)
	Peek(ctx context.Context, phone string) (*response.ChallengeResponse, error)
	IssueCode(ctx context.Context, phone string, purpose entity.OTPPurpose) (*response.ChallengeResponse, error)
	VerifyCode(ctx context.Context, phone, code string, purpose entity.OTPPurpose) (*entity.OTPCode, error)
}

type otpService struct {
	attemptRepo repository.OTPAttemptRepository
	codeRepo    repository.OTPCodeRepository
	config      *utils.Config
	log         *zap.Logger
}

func NewOTPService(
	attemptRepo repository.OTPAttemptRepository,
	codeRepo repository.OTPCodeRepository,
	config *utils.Config,
	log *zap.Logger,
) OTPService {
	return &otpService{
		attemptRepo: attemptRepo,
		codeRepo:    codeRepo,
		config:      config,
		log:         log,
	}
}

func (s *otpService) limit() int {
	if s.config.OTP.AttemptLimit > 0 {
		return s.config.OTP.AttemptLimit
	}
	return 5
}

func (s *otpService) banDuration() time.Duration {
	hours := s.config.OTP.BanHours
	if hours <= 0 {
		hours = 24
	}
	return time.Duration(hours) * time.Hour
}

// RecordAttempt counts a challenge request against phone and reports whether
// it is allowed. The attempt-count window and the ban share one duration, so
// a ban lasts exactly one window.
func (s *otpService) RecordAttempt(ctx context.Context, phone string) (*response.ChallengeResponse, error) {
	now := time.Now()
	limit := s.limit()

	attempt, err := s.attemptRepo.Find(ctx, phone)
	if err != nil {
		return nil, err
	}
	if attempt == nil {
		attempt = &entity.OTPAttempt{
			PhoneNumber: phone,
			FirstAt:     now,
		}
	}

	// Active ban: reject without touching the counter.
	if attempt.BannedUntil != nil && now.Before(*attempt.BannedUntil) {
		return &response.ChallengeResponse{
			Allowed:     false,
			Remaining:   0,
			BannedUntil: attempt.BannedUntil,
		}, nil
	}

	// Window elapsed: the counter starts over.
	if now.Sub(attempt.FirstAt) > s.banDuration() {
		attempt.Count = 0
		attempt.FirstAt = now
		attempt.BannedUntil = nil
	}

	// Limit reached inside the window: ban for one full window.
	if attempt.Count >= limit {
		bannedUntil := now.Add(s.banDuration())
		attempt.BannedUntil = &bannedUntil

		if err := s.attemptRepo.Put(ctx, attempt); err != nil {
			return nil, err
		}

		s.log.Warn("Phone number banned for OTP requests",
			zap.String("phone", phone),
			zap.Time("banned_until", bannedUntil),
		)

		return &response.ChallengeResponse{
			Allowed:     false,
			Remaining:   0,
			BannedUntil: &bannedUntil,
		}, nil
	}

	attempt.Count++
	if err := s.attemptRepo.Put(ctx, attempt); err != nil {
		return nil, err
	}

	return &response.ChallengeResponse{
		Allowed:   true,
		Remaining: limit - attempt.Count,
	}, nil
}

// Peek projects the current effective state for phone without mutating it.
func (s *otpService) Peek(ctx context.Context, phone string) (*response.ChallengeResponse, error) {
	now := time.Now()
	limit := s.limit()

	attempt, err := s.attemptRepo.Find(ctx, phone)
	if err != nil {
		return nil, err
	}

	if attempt == nil {
		return &response.ChallengeResponse{Allowed: true, Remaining: limit}, nil
	}

	if attempt.BannedUntil != nil && now.Before(*attempt.BannedUntil) {
		return &response.ChallengeResponse{
			Allowed:     false,
			Remaining:   0,
			BannedUntil: attempt.BannedUntil,
		}, nil
	}

	if now.Sub(attempt.FirstAt) > s.banDuration() {
		return &response.ChallengeResponse{Allowed: true, Remaining: limit}, nil
	}

	remaining := limit - attempt.Count
	if remaining < 0 {
		remaining = 0
	}

	return &response.ChallengeResponse{
		Allowed:   remaining > 0,
		Remaining: remaining,
	}, nil
}

// IssueCode generates and stores a passcode for phone, gated by the rate
// limiter. The challenge outcome is returned either way so callers can relay
// the remaining quota.
func (s *otpService) IssueCode(ctx context.Context, phone string, purpose entity.OTPPurpose) (*response.ChallengeResponse, error) {
	challenge, err := s.RecordAttempt(ctx, phone)
	if err != nil {
		return nil, err
	}
	if !challenge.Allowed {
		return challenge, nil
	}

	code := &entity.OTPCode{
		Base: entity.Base{
			ID:        utils.GenerateID(),
			CreatedAt: time.Now(),
		},
		PhoneNumber: phone,
		Code:        utils.GenerateOTP(s.config.OTP.Length),
		Purpose:     purpose,
		ExpiresAt:   time.Now().Add(time.Duration(s.config.OTP.ExpiryMinutes) * time.Minute),
	}

	if err := s.codeRepo.Create(ctx, code); err != nil {
		s.log.Error("Failed to save OTP code", zap.Error(err), zap.String("phone", phone))
		return nil, err
	}

	s.log.Info("OTP generated",
		zap.String("phone", phone),
		zap.String("purpose", string(purpose)),
		zap.Time("expires_at", code.ExpiresAt),
	)

	// Print to console for development, no SMS gateway is wired up
	fmt.Printf("\nOTP for %s (%s): %s (Expires: %s)\n\n",
		phone, purpose, code.Code, code.ExpiresAt.Format("15:04:05"))

	return challenge, nil
}

func (s *otpService) VerifyCode(ctx context.Context, phone, code string, purpose entity.OTPPurpose) (*entity.OTPCode, error) {
	found, err := s.codeRepo.FindValidCode(ctx, phone, code, purpose)
	if err != nil {
		return nil, err
	}
	if found == nil {
		return nil, apperr.Validation("invalid or expired OTP")
	}

	if err := s.codeRepo.MarkUsed(ctx, found.ID); err != nil {
		s.log.Warn("Failed to mark OTP as used", zap.Error(err), zap.String("otp_id", found.ID.String()))
		// Continue anyway
	}

	return found, nil
}
