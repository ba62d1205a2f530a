package adaptor

import (
	"encoding/json"
	"net/http"

	"vridhira/internal/dto/request"
	"vridhira/internal/usecase"
	"vridhira/pkg/apperr"
	"vridhira/pkg/utils"

	"go.uber.org/zap"
)

type AuthHandler struct {
	service usecase.AuthService
	otp     usecase.OTPService
	log     *zap.Logger
}

func NewAuthHandler(service usecase.AuthService, otp usecase.OTPService, log *zap.Logger) *AuthHandler {
	return &AuthHandler{
		service: service,
		otp:     otp,
		log:     log,
	}
}

// Register handles POST /api/register
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req request.RegisterRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	response, err := h.service.Register(r.Context(), &req)
	if err != nil {
		handleServiceError(w, h.log, err, "register")
		return
	}

	utils.ResponseCreated(w, "Registration successful", response)
}

// Login handles POST /api/login
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req request.LoginRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	response, err := h.service.Login(r.Context(), &req)
	if err != nil {
		// Bad credentials are a 401, not a 403
		if apperr.Is(err, apperr.KindAuthorization) {
			utils.ResponseUnauthorized(w, err.Error())
			return
		}
		handleServiceError(w, h.log, err, "login")
		return
	}

	utils.ResponseSuccess(w, "Login successful", response)
}

// Logout handles POST /api/logout
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	token, ok := utils.GetTokenFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	if err := h.service.Logout(r.Context(), token); err != nil {
		handleServiceError(w, h.log, err, "logout")
		return
	}

	utils.ResponseSuccess(w, "Logout successful", nil)
}

// SendOTP handles POST /api/otp/request
func (h *AuthHandler) SendOTP(w http.ResponseWriter, r *http.Request) {
	var req request.RequestOTPRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	challenge, err := h.service.SendOTP(r.Context(), &req)
	if err != nil {
		handleServiceError(w, h.log, err, "send OTP")
		return
	}

	if !challenge.Allowed {
		utils.ResponseTooManyRequests(w, "Too many OTP requests for this phone number", challenge)
		return
	}

	utils.ResponseSuccess(w, "OTP sent. Check logs in development mode.", challenge)
}

// OTPStatus handles GET /api/otp/status?phone=...
func (h *AuthHandler) OTPStatus(w http.ResponseWriter, r *http.Request) {
	phone := r.URL.Query().Get("phone")
	if phone == "" {
		utils.ResponseBadRequest(w, "Phone number is required", nil)
		return
	}

	challenge, err := h.otp.Peek(r.Context(), phone)
	if err != nil {
		handleServiceError(w, h.log, err, "check OTP status")
		return
	}

	utils.ResponseSuccess(w, "OTP status retrieved", challenge)
}

// ResetPassword handles POST /api/password-reset
func (h *AuthHandler) ResetPassword(w http.ResponseWriter, r *http.Request) {
	var req request.ResetPasswordRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if err := h.service.ResetPassword(r.Context(), &req); err != nil {
		handleServiceError(w, h.log, err, "reset password")
		return
	}

	utils.ResponseSuccess(w, "Password reset successful", nil)
}
