package dto

import (
	"github.com/quickbill305/quickbill_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// DailyReportParams selects the day to report on, defaulting to today.
type DailyReportParams struct {
	Date string `form:"date" binding:"omitempty,datetime=2006-01-02"`
}

// MethodTotalResponse is a per-method collection subtotal.
type MethodTotalResponse struct {
	Method string          `json:"method"`
	Count  int             `json:"count"`
	Total  decimal.Decimal `json:"total"`
}

// TypeTotalResponse is a per-account-type collection subtotal.
type TypeTotalResponse struct {
	AccountType string          `json:"accountType"`
	Count       int             `json:"count"`
	Total       decimal.Decimal `json:"total"`
}

// CollectorTotalResponse is a per-officer collection subtotal.
type CollectorTotalResponse struct {
	UserID string          `json:"userID"`
	Name   string          `json:"name"`
	Count  int             `json:"count"`
	Total  decimal.Decimal `json:"total"`
}

// HourlyTotalResponse is one bucket of the hourly collection histogram.
type HourlyTotalResponse struct {
	Hour  int             `json:"hour"`
	Count int             `json:"count"`
	Total decimal.Decimal `json:"total"`
}

// DailyReportResponse is the full end-of-day collections report.
type DailyReportResponse struct {
	Date          string                   `json:"date"`
	TotalCount    int                      `json:"totalCount"`
	TotalAmount   decimal.Decimal          `json:"totalAmount"`
	ByMethod      []MethodTotalResponse    `json:"byMethod"`
	ByType        []TypeTotalResponse      `json:"byType"`
	ByCollector   []CollectorTotalResponse `json:"byCollector"`
	ByHour        []HourlyTotalResponse    `json:"byHour"`
	FullyPaid     int                      `json:"fullyPaidBills"`
	PartiallyPaid int                      `json:"partiallyPaidBills"`
}

// ToDailyReportResponse converts a domain.DailyCollections.
func ToDailyReportResponse(d *domain.DailyCollections) DailyReportResponse {
	resp := DailyReportResponse{
		Date:          d.Date,
		TotalCount:    d.TotalCount,
		TotalAmount:   d.TotalAmount,
		ByMethod:      make([]MethodTotalResponse, 0, len(d.ByMethod)),
		ByType:        make([]TypeTotalResponse, 0, len(d.ByType)),
		ByCollector:   make([]CollectorTotalResponse, 0, len(d.ByCollector)),
		ByHour:        make([]HourlyTotalResponse, 0, len(d.ByHour)),
		FullyPaid:     d.FullyPaid,
		PartiallyPaid: d.PartiallyPaid,
	}
	for _, m := range d.ByMethod {
		resp.ByMethod = append(resp.ByMethod, MethodTotalResponse{Method: string(m.Method), Count: m.Count, Total: m.Total})
	}
	for _, t := range d.ByType {
		resp.ByType = append(resp.ByType, TypeTotalResponse{AccountType: string(t.AccountType), Count: t.Count, Total: t.Total})
	}
	for _, c := range d.ByCollector {
		resp.ByCollector = append(resp.ByCollector, CollectorTotalResponse{UserID: c.UserID, Name: c.Name, Count: c.Count, Total: c.Total})
	}
	for _, h := range d.ByHour {
		resp.ByHour = append(resp.ByHour, HourlyTotalResponse{Hour: h.Hour, Count: h.Count, Total: h.Total})
	}
	return resp
}

// DashboardSummaryResponse backs the landing-page summary cards.
type DashboardSummaryResponse struct {
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

// ToDashboardSummaryResponse converts a domain.DashboardSummary.
func ToDashboardSummaryResponse(d *domain.DashboardSummary) DashboardSummaryResponse {
	return DashboardSummaryResponse{
		BusinessCount:    d.BusinessCount,
		PropertyCount:    d.PropertyCount,
		TotalBilled:      d.TotalBilled,
		TotalCollected:   d.TotalCollected,
		TotalOutstanding: d.TotalOutstanding,
		CollectedToday:   d.CollectedToday,
		PaymentsToday:    d.PaymentsToday,
		BillsServed:      d.BillsServed,
		BillsTotal:       d.BillsTotal,
		DeliveryRate:     d.DeliveryRate,
	}
}
