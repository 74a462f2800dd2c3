package mapping_test

import (
	"testing"
	"time"

	"github.com/quickbill305/quickbill_backend/internal/core/domain"
	"github.com/quickbill305/quickbill_backend/internal/utils/mapping"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

// Mirrors the insert path: the row value comes back from ToModelFeeStructure
// with a DB-generated ID before being converted to the domain entity.
func TestFeeStructureRoundTrip(t *testing.T) {
	now := time.Now()
	d := domain.FeeStructure{
		BusinessType: "Retail",
		Category:     "Small",
		FeeAmount:    decimal.RequireFromString("50.00"),
		IsActive:     true,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     "user-1",
			LastUpdatedAt: now,
			LastUpdatedBy: "user-1",
		},
	}

	m := mapping.ToModelFeeStructure(d)
	m.FeeID = 7

	got := mapping.ToDomainFeeStructure(m)

	assert.Equal(t, int64(7), got.FeeID)
	assert.Equal(t, d.BusinessType, got.BusinessType)
	assert.Equal(t, d.Category, got.Category)
	assert.True(t, got.FeeAmount.Equal(d.FeeAmount))
	assert.True(t, got.IsActive)
	assert.Equal(t, d.CreatedBy, got.CreatedBy)
}
