package utils_test

import (
	"regexp"
	"testing"
	"time"

	"github.com/quickbill305/quickbill_backend/internal/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGeneratePaymentReference_Format(t *testing.T) {
	at := time.Date(2025, 1, 14, 10, 30, 0, 0, time.UTC)
	ref, err := utils.GeneratePaymentReference(at)
	require.NoError(t, err)
	assert.Regexp(t, regexp.MustCompile(`^PAY20250114[0-9a-f]{6}$`), ref)
}

func TestGeneratePaymentReference_Unique(t *testing.T) {
	at := time.Now()
	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		ref, err := utils.GeneratePaymentReference(at)
		require.NoError(t, err)
		assert.False(t, seen[ref], "duplicate reference %s", ref)
		seen[ref] = true
	}
}

func TestGenerateAccountNumber_Format(t *testing.T) {
	at := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	num, err := utils.GenerateAccountNumber("BIZ", at)
	require.NoError(t, err)
	assert.Regexp(t, regexp.MustCompile(`^BIZ2025[0-9A-F]{6}$`), num)
}
