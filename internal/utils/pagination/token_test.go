package pagination_test

import (
	"testing"
	"time"

	"github.com/quickbill305/quickbill_backend/internal/utils/pagination"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncodeDecodeToken_RoundTrip(t *testing.T) {
	paymentDate := time.Date(2025, 3, 12, 0, 0, 0, 0, time.UTC)
	createdAt := time.Date(2025, 3, 12, 14, 5, 9, 123456789, time.UTC)

	token := pagination.EncodeToken(paymentDate, createdAt)
	gotDate, gotCreated, err := pagination.DecodeToken(token)
	require.NoError(t, err)
	assert.True(t, paymentDate.Equal(gotDate))
	assert.True(t, createdAt.Equal(gotCreated))
}

func TestDecodeToken_Invalid(t *testing.T) {
	_, _, err := pagination.DecodeToken("not-base64!!!")
	assert.Error(t, err)

	_, _, err = pagination.DecodeToken("") // decodes to empty, fails split
	assert.Error(t, err)
}
