package utils

import (
	"fmt"
	"strings"
	"time"
)

// GeneratePaymentReference builds a payment reference of the form
// PAY<YYYYMMDD><6 hex>, e.g. PAY20250114a3f9c1.
func GeneratePaymentReference(at time.Time) (string, error) {
	suffix, err := GenerateSecureRandomString(3) // 3 bytes -> 6 hex chars
	if err != nil {
		return "", fmt.Errorf("failed to generate payment reference suffix: %w", err)
	}
	return fmt.Sprintf("PAY%s%s", at.Format("20060102"), suffix), nil
}

// GenerateAccountNumber builds an account number like BIZ2025A3F9C1 or
// PROP2025A3F9C1. Uniqueness is enforced by the DB constraint; callers retry
// on duplicate.
func GenerateAccountNumber(prefix string, at time.Time) (string, error) {
	suffix, err := GenerateSecureRandomString(3)
	if err != nil {
		return "", fmt.Errorf("failed to generate account number suffix: %w", err)
	}
	return fmt.Sprintf("%s%s%s", prefix, at.Format("2006"), strings.ToUpper(suffix)), nil
}
