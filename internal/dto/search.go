package dto

import (
	"github.com/quickbill305/quickbill_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// SearchAccountsParams defines query parameters for account search.
type SearchAccountsParams struct {
	Query string `form:"q" binding:"required"`
	Type  string `form:"type,default=all" binding:"omitempty,oneof=all business property"`
}

// SearchResultResponse is one search hit with its independently computed
// lifetime balance and derived status.
type SearchResultResponse struct {
	ID               string             `json:"id"`
	AccountType      domain.AccountType `json:"accountType"`
	AccountNumber    string             `json:"accountNumber"`
	Name             string             `json:"name"`
	OwnerName        string             `json:"ownerName"`
	Telephone        string             `json:"telephone"`
	ZoneName         string             `json:"zoneName"`
	AmountPayable    decimal.Decimal    `json:"amountPayable"`
	TotalPaid        decimal.Decimal    `json:"totalPaid"`
	RemainingBalance decimal.Decimal    `json:"remainingBalance"`
	BalanceStatus    string             `json:"balanceStatus"`
}

// SearchAccountsResponse wraps the full (unpaginated) result set.
type SearchAccountsResponse struct {
	Results []SearchResultResponse `json:"results"`
	Count   int                    `json:"count"`
}

// ToSearchResultResponse converts a domain search hit.
func ToSearchResultResponse(r domain.AccountSearchResult) SearchResultResponse {
	return SearchResultResponse{
		ID:               r.ID,
		AccountType:      r.AccountType,
		AccountNumber:    r.AccountNumber,
		Name:             r.Name,
		OwnerName:        r.OwnerName,
		Telephone:        r.Telephone,
		ZoneName:         r.ZoneName,
		AmountPayable:    r.AmountPayable,
		TotalPaid:        r.TotalPaid,
		RemainingBalance: r.RemainingBalance,
		BalanceStatus:    string(r.BalanceStatus),
	}
}
