package domain

import "github.com/shopspring/decimal"

// MethodTotal is a per-payment-method slice of a day's collections.
type MethodTotal struct {
	Method PaymentMethod   `json:"method"`
	Count  int             `json:"count"`
	Total  decimal.Decimal `json:"total"`
}

// TypeTotal is a per-account-type slice of a day's collections.
type TypeTotal struct {
	AccountType AccountType     `json:"accountType"`
	Count       int             `json:"count"`
	Total       decimal.Decimal `json:"total"`
}

// CollectorTotal is one officer's share of a day's collections.
type CollectorTotal struct {
	UserID string          `json:"userID"`
	Name   string          `json:"name"`
	Count  int             `json:"count"`
	Total  decimal.Decimal `json:"total"`
}

// HourlyTotal is one bucket of the 24-hour collection histogram.
type HourlyTotal struct {
	Hour  int             `json:"hour"` // 0..23
	Count int             `json:"count"`
	Total decimal.Decimal `json:"total"`
}

// DailyCollections aggregates all Successful payments for one calendar date.
type DailyCollections struct {
	Date          string           `json:"date"` // YYYY-MM-DD
	TotalCount    int              `json:"totalCount"`
	TotalAmount   decimal.Decimal  `json:"totalAmount"`
	ByMethod      []MethodTotal    `json:"byMethod"`
	ByType        []TypeTotal      `json:"byType"`
	ByCollector   []CollectorTotal `json:"byCollector"`
	ByHour        []HourlyTotal    `json:"byHour"`
	FullyPaid     int              `json:"fullyPaid"`     // bills that reached Paid on this date
	PartiallyPaid int              `json:"partiallyPaid"` // bills left Partially Paid on this date
}

// DashboardSummary backs the landing dashboard.
type DashboardSummary struct {
	BusinessCount    int             `json:"businessCount"`
	PropertyCount    int             `json:"propertyCount"`
	TotalBilled      decimal.Decimal `json:"totalBilled"`
	TotalCollected   decimal.Decimal `json:"totalCollected"`
	TotalOutstanding decimal.Decimal `json:"totalOutstanding"`
	CollectedToday   decimal.Decimal `json:"collectedToday"`
	PaymentsToday    int             `json:"paymentsToday"`
	BillsServed      int             `json:"billsServed"`
	BillsTotal       int             `json:"billsTotal"`
	DeliveryRate     decimal.Decimal `json:"deliveryRate"`
}
