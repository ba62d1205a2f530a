package usecase

import (
	"context"
	"time"

	"vridhira/internal/data/entity"
	"vridhira/internal/data/repository"
	"vridhira/internal/dto/request"
	"vridhira/internal/dto/response"
	"vridhira/pkg/apperr"
	"vridhira/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type AuthService interface {
	Register(ctx context.Context, req *request.RegisterRequest) (*response.AuthResponse, error)
	Login(ctx context.Context, req *request.LoginRequest) (*response.AuthResponse, error)
	Logout(ctx context.Context, token string) error
	SendOTP(ctx context.Context, req *request.RequestOTPRequest) (*response.ChallengeResponse, error)
	ResetPassword(ctx context.Context, req *request.ResetPasswordRequest) error
}

type authService struct {
	repo   *repository.Repository
	otp    OTPService
	config *utils.Config
	log    *zap.Logger
}

func NewAuthService(
	repo *repository.Repository,
	otp OTPService,
	config *utils.Config,
	log *zap.Logger,
) AuthService {
	return &authService{
		repo:   repo,
		otp:    otp,
		config: config,
		log:    log,
	}
}

func (s *authService) Register(ctx context.Context, req *request.RegisterRequest) (*response.AuthResponse, error) {
	// 1. Validate input
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Register validation failed", zap.Any("errors", errs))
		return nil, apperr.Validation("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	// 2. An account needs at least one reachable identifier
	if req.Email == nil && req.PhoneNumber == nil {
		return nil, apperr.Validation("either email or phone number is required")
	}
	if req.Email != nil && req.Password == nil {
		return nil, apperr.Validation("password is required when registering with email")
	}

	// 3. Check email not taken
	if req.Email != nil {
		existing, err := s.repo.User.FindByEmail(ctx, *req.Email)
		if err != nil {
			s.log.Error("Failed to check email", zap.Error(err), zap.String("email", *req.Email))
			return nil, err
		}
		if existing != nil {
			return nil, apperr.Conflict("email already registered")
		}
	}

	// 4. Check phone not taken
	if req.PhoneNumber != nil {
		existing, err := s.repo.User.FindByPhone(ctx, *req.PhoneNumber)
		if err != nil {
			s.log.Error("Failed to check phone", zap.Error(err), zap.String("phone", *req.PhoneNumber))
			return nil, err
		}
		if existing != nil {
			return nil, apperr.Conflict("phone number already registered")
		}
	}

	// 5. Hash password when given
	var passwordHash *string
	if req.Password != nil {
		hashed, err := utils.HashPassword(*req.Password)
		if err != nil {
			s.log.Error("Failed to hash password", zap.Error(err))
			return nil, apperr.Storage(err, "failed to process password")
		}
		passwordHash = &hashed
	}

	// 6. Create user entity
	user := &entity.User{
		ID:           utils.GenerateID(),
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		Email:        req.Email,
		PhoneNumber:  req.PhoneNumber,
		PasswordHash: passwordHash,
		Role:         entity.RoleUser,
	}

	// 7. Save user. The repository re-checks uniqueness under its lock.
	if err := s.repo.User.Create(ctx, user); err != nil {
		s.log.Error("Failed to create user", zap.Error(err))
		return nil, err
	}

	// 8. Kick off phone verification (async, rate limited)
	if req.PhoneNumber != nil {
		go s.sendVerificationOTP(*req.PhoneNumber)
	}

	// 9. Auto login after register
	session, err := s.createSession(ctx, user.ID)
	if err != nil {
		s.log.Warn("Failed to create session after register",
			zap.Error(err), zap.String("user_id", user.ID.String()))
		// Continue without session
	}

	s.log.Info("User registered",
		zap.String("user_id", user.ID.String()),
		zap.String("role", string(user.Role)))

	resp := response.AuthToResponse(user, session)
	return &resp, nil
}

func (s *authService) Login(ctx context.Context, req *request.LoginRequest) (*response.AuthResponse, error) {
	// 1. Validate
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Login validation failed", zap.Any("errors", errs))
		return nil, apperr.Validation("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	// 2. Find user
	user, err := s.repo.User.FindByEmail(ctx, req.Email)
	if err != nil {
		s.log.Error("Failed to find user by email", zap.Error(err), zap.String("email", req.Email))
		return nil, err
	}
	if user == nil {
		s.log.Warn("User not found for login", zap.String("email", req.Email))
		return nil, apperr.Authorization("invalid credentials")
	}

	// 3. Check password
	if user.PasswordHash == nil || !utils.CheckPasswordHash(req.Password, *user.PasswordHash) {
		s.log.Warn("Invalid password", zap.String("user_id", user.ID.String()))
		return nil, apperr.Authorization("invalid credentials")
	}

	// 4. Create session
	session, err := s.createSession(ctx, user.ID)
	if err != nil {
		s.log.Error("Failed to create session", zap.Error(err), zap.String("user_id", user.ID.String()))
		return nil, err
	}

	s.log.Info("User logged in", zap.String("user_id", user.ID.String()))

	resp := response.AuthToResponse(user, session)
	return &resp, nil
}

func (s *authService) Logout(ctx context.Context, token string) error {
	tokenUUID, err := uuid.Parse(token)
	if err != nil {
		s.log.Warn("Invalid token format", zap.Error(err))
		return apperr.Validation("invalid token format")
	}

	if err := s.repo.Session.Revoke(ctx, tokenUUID); err != nil {
		s.log.Error("Failed to revoke session", zap.Error(err))
		return err
	}

	s.log.Info("User logged out")
	return nil
}

// SendOTP issues a passcode to a phone number, gated by the challenge
// tracker. For password resets the phone number must belong to an account.
func (s *authService) SendOTP(ctx context.Context, req *request.RequestOTPRequest) (*response.ChallengeResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Send OTP validation failed", zap.Any("errors", errs))
		return nil, apperr.Validation("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	purpose := entity.OTPPurpose(req.Purpose)
	if purpose == entity.OTPPurposePasswordReset {
		user, err := s.repo.User.FindByPhone(ctx, req.PhoneNumber)
		if err != nil {
			s.log.Error("Failed to find user for OTP", zap.Error(err), zap.String("phone", req.PhoneNumber))
			return nil, err
		}
		if user == nil {
			return nil, apperr.NotFound("no account with phone number %s", req.PhoneNumber)
		}
	}

	return s.otp.IssueCode(ctx, req.PhoneNumber, purpose)
}

// ResetPassword verifies a password-reset OTP and replaces the stored
// credential of the matching account.
func (s *authService) ResetPassword(ctx context.Context, req *request.ResetPasswordRequest) error {
	// 1. Validate
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Reset password validation failed", zap.Any("errors", errs))
		return apperr.Validation("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	// 2. Verify OTP
	if _, err := s.otp.VerifyCode(ctx, req.PhoneNumber, req.OTP, entity.OTPPurposePasswordReset); err != nil {
		return err
	}

	// 3. Hash and store the new credential
	hashed, err := utils.HashPassword(req.NewPassword)
	if err != nil {
		s.log.Error("Failed to hash password", zap.Error(err))
		return apperr.Storage(err, "failed to process password")
	}

	if err := s.repo.User.UpdatePassword(ctx, req.PhoneNumber, hashed); err != nil {
		s.log.Error("Failed to update password", zap.Error(err), zap.String("phone", req.PhoneNumber))
		return err
	}

	// 4. Force re-authentication everywhere
	if user, err := s.repo.User.FindByPhone(ctx, req.PhoneNumber); err == nil && user != nil {
		if err := s.repo.Session.RevokeAllForUser(ctx, user.ID); err != nil {
			s.log.Warn("Failed to revoke sessions after password reset",
				zap.Error(err), zap.String("user_id", user.ID.String()))
		}
	}

	s.log.Info("Password reset", zap.String("phone", req.PhoneNumber))
	return nil
}

// ==================== HELPER METHODS ====================

func (s *authService) createSession(ctx context.Context, userID uuid.UUID) (*entity.Session, error) {
	expiry := time.Duration(s.config.Session.ExpiryHours) * time.Hour
	if expiry <= 0 {
		expiry = 24 * time.Hour
	}

	session := &entity.Session{
		Base: entity.Base{
			ID:        utils.GenerateID(),
			CreatedAt: time.Now(),
		},
		UserID:    userID,
		Token:     utils.GenerateSessionToken(),
		ExpiresAt: time.Now().Add(expiry),
	}

	if err := s.repo.Session.Create(ctx, session); err != nil {
		return nil, err
	}

	return session, nil
}

func (s *authService) sendVerificationOTP(phone string) {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if _, err := s.otp.IssueCode(ctx, phone, entity.OTPPurposePhoneVerification); err != nil {
		s.log.Error("Failed to send verification OTP", zap.Error(err), zap.String("phone", phone))
	}
}
