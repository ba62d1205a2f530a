package utils

import (
	"crypto/rand"
	"fmt"
	"math/big"
	"time"

	"github.com/google/uuid"
)

// ==================== UUID & TOKEN ====================

// GenerateID returns a time-ordered UUID (v7) so record ids sort by
// creation time.
func GenerateID() uuid.UUID {
	id, err := uuid.NewV7()
	if err != nil {
		return uuid.New()
	}
	return id
}

func GenerateSessionToken() uuid.UUID {
	return uuid.New()
}

// ==================== OTP ====================

// GenerateOTP returns a zero-padded numeric passcode drawn from crypto/rand.
func GenerateOTP(length int) string {
	if length <= 0 {
		length = 6
	}

	max := new(big.Int).Exp(big.NewInt(10), big.NewInt(int64(length)), nil)
	n, err := rand.Int(rand.Reader, max)
	if err != nil {
		n = new(big.Int).Mod(big.NewInt(time.Now().UnixNano()), max)
	}

	return fmt.Sprintf("%0*d", length, n)
}
