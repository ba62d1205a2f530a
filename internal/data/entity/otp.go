package entity

import (
	"time"
)

type OTPPurpose string

const (
	OTPPurposePhoneVerification OTPPurpose = "phone_verification"
	OTPPurposePasswordReset     OTPPurpose = "password_reset"
)

// OTPAttempt tracks challenge requests per phone number for rate limiting.
// The record is keyed by phone number, not by id.
type OTPAttempt struct {
	PhoneNumber string     `json:"phoneNumber"`
	Count       int        `json:"count"`
	FirstAt     time.Time  `json:"firstAttemptTimestamp"`
	BannedUntil *time.Time `json:"bannedUntil,omitempty"`
}

// OTPCode is an issued one-time passcode awaiting verification.
type OTPCode struct {
	Base
	PhoneNumber string     `json:"phoneNumber"`
	Code        string     `json:"code"`
	Purpose     OTPPurpose `json:"purpose"`
	ExpiresAt   time.Time  `json:"expiresAt"`
	IsUsed      bool       `json:"isUsed"`
}
