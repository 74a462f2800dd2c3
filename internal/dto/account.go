package dto

import (
	"time"

	"github.com/quickbill305/quickbill_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// RegisterBusinessRequest defines the data needed to register a business account.
// Financial seed values default to zero when omitted; CurrentBill must match
// the active fee for (businessType, category).
type RegisterBusinessRequest struct {
	Name         string   `json:"name" binding:"required"`
	OwnerName    string   `json:"ownerName" binding:"required"`
	Telephone    string   `json:"telephone" binding:"required"`
	Email        string   `json:"email" binding:"omitempty,email"`
	Location     string   `json:"location" binding:"required"`
	Latitude     *float64 `json:"latitude" binding:"omitempty,min=-90,max=90"`
	Longitude    *float64 `json:"longitude" binding:"omitempty,min=-180,max=180"`
	ZoneID       int64    `json:"zoneID" binding:"required,gt=0"`
	SubZoneID    *int64   `json:"subZoneID"`
	BusinessType string   `json:"businessType" binding:"required"`
	Category     string   `json:"category" binding:"required"`
	Batch        string   `json:"batch"`

	OldBill          decimal.Decimal `json:"oldBill"`
	PreviousPayments decimal.Decimal `json:"previousPayments"`
	Arrears          decimal.Decimal `json:"arrears"`
	CurrentBill      decimal.Decimal `json:"currentBill"`
}

// RegisterPropertyRequest defines the data needed to register a property account.
type RegisterPropertyRequest struct {
	Name          string   `json:"name" binding:"required"`
	OwnerName     string   `json:"ownerName" binding:"required"`
	Telephone     string   `json:"telephone" binding:"required"`
	Email         string   `json:"email" binding:"omitempty,email"`
	Location      string   `json:"location" binding:"required"`
	Latitude      *float64 `json:"latitude" binding:"omitempty,min=-90,max=90"`
	Longitude     *float64 `json:"longitude" binding:"omitempty,min=-180,max=180"`
	ZoneID        int64    `json:"zoneID" binding:"required,gt=0"`
	SubZoneID     *int64   `json:"subZoneID"`
	PropertyType  string   `json:"propertyType" binding:"required"`
	UsageCategory string   `json:"usageCategory" binding:"required"`
	Batch         string   `json:"batch"`

	OldBill          decimal.Decimal `json:"oldBill"`
	PreviousPayments decimal.Decimal `json:"previousPayments"`
	Arrears          decimal.Decimal `json:"arrears"`
	CurrentBill      decimal.Decimal `json:"currentBill"`
}

// AccountResponse is the common account projection returned by the API.
type AccountResponse struct {
	ID               string             `json:"id"`
	AccountType      domain.AccountType `json:"accountType"`
	AccountNumber    string             `json:"accountNumber"`
	Name             string             `json:"name"`
	OwnerName        string             `json:"ownerName"`
	Telephone        string             `json:"telephone"`
	Email            string             `json:"email,omitempty"`
	Location         string             `json:"location"`
	Latitude         *float64           `json:"latitude,omitempty"`
	Longitude        *float64           `json:"longitude,omitempty"`
	ZoneID           int64              `json:"zoneID"`
	SubZoneID        *int64             `json:"subZoneID,omitempty"`
	BusinessType     string             `json:"businessType,omitempty"`
	Category         string             `json:"category,omitempty"`
	PropertyType     string             `json:"propertyType,omitempty"`
	UsageCategory    string             `json:"usageCategory,omitempty"`
	OldBill          decimal.Decimal    `json:"oldBill"`
	PreviousPayments decimal.Decimal    `json:"previousPayments"`
	Arrears          decimal.Decimal    `json:"arrears"`
	CurrentBill      decimal.Decimal    `json:"currentBill"`
	AmountPayable    decimal.Decimal    `json:"amountPayable"`
	Status           string             `json:"status"`
	CreatedAt        time.Time          `json:"createdAt"`
	CreatedBy        string             `json:"createdBy"`
}

// ToBusinessResponse converts a domain.Business to AccountResponse.
func ToBusinessResponse(b *domain.Business) AccountResponse {
	resp := toAccountResponse(b.Account)
	resp.BusinessType = b.BusinessType
	resp.Category = b.Category
	return resp
}

// ToPropertyResponse converts a domain.Property to AccountResponse.
func ToPropertyResponse(p *domain.Property) AccountResponse {
	resp := toAccountResponse(p.Account)
	resp.PropertyType = p.PropertyType
	resp.UsageCategory = p.UsageCategory
	return resp
}

func toAccountResponse(a domain.Account) AccountResponse {
	return AccountResponse{
		ID:               a.ID,
		AccountType:      a.AccountType,
		AccountNumber:    a.AccountNumber,
		Name:             a.Name,
		OwnerName:        a.OwnerName,
		Telephone:        a.Telephone,
		Email:            a.Email,
		Location:         a.Location,
		Latitude:         a.Latitude,
		Longitude:        a.Longitude,
		ZoneID:           a.ZoneID,
		SubZoneID:        a.SubZoneID,
		OldBill:          a.OldBill,
		PreviousPayments: a.PreviousPayments,
		Arrears:          a.Arrears,
		CurrentBill:      a.CurrentBill,
		AmountPayable:    a.AmountPayable,
		Status:           string(a.Status),
		CreatedAt:        a.CreatedAt,
		CreatedBy:        a.CreatedBy,
	}
}

// AccountDetailResponse augments the account with its lifetime balance and
// delivery stats for the detail view.
type AccountDetailResponse struct {
	AccountResponse
	TotalPaid        decimal.Decimal `json:"totalPaid"`
	RemainingBalance decimal.Decimal `json:"remainingBalance"`
	DeliveryRate     decimal.Decimal `json:"deliveryRate"`
}

// ListAccountsParams defines query parameters for listing accounts.
type ListAccountsParams struct {
	ZoneID int64 `form:"zoneID"`
	Limit  int   `form:"limit,default=50"`
	Offset int   `form:"offset,default=0"`
}

// ListAccountsResponse wraps a list of accounts.
type ListAccountsResponse struct {
	Accounts []AccountResponse `json:"accounts"`
}
