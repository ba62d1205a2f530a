package response

import (
	"time"
)

// ChallengeResponse reports the outcome of an OTP attempt for a phone number.
type ChallengeResponse struct {
	Allowed     bool       `json:"allowed"`
	Remaining   int        `json:"remaining"`
	BannedUntil *time.Time `json:"banned_until,omitempty"`
}
