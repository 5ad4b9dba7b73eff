package service

import (
	"context"
	"time"

	"github.com/ayumu-dev/regi-api/internal/config"
	"github.com/ayumu-dev/regi-api/internal/domain/repository"
	"github.com/ayumu-dev/regi-api/pkg/apperror"
	"github.com/ayumu-dev/regi-api/pkg/currency"
)

// MonthlySummary aggregates order activity over one calendar month.
type MonthlySummary struct {
	Year             int    `json:"year"`
	Month            int    `json:"month"`
	Label            string `json:"label"` // e.g. "Sep 2026"
	OrderCount       int64  `json:"order_count"`
	Revenue          int64  `json:"revenue"` // whole yen
	RevenueFormatted string `json:"revenue_formatted"`
	ShippingFees     int64  `json:"shipping_fees"`
}

// FinancialReport extends a monthly summary with estimated profit figures.
// Product cost is a configured ratio of net merchandise revenue; the fixed
// monthly expense covers rent, payroll and the like.
type FinancialReport struct {
	MonthlySummary
	ProductCost          int64  `json:"product_cost"`
	GrossProfit          int64  `json:"gross_profit"`
	GrossProfitFormatted string `json:"gross_profit_formatted"`
	NetProfit            int64  `json:"net_profit"`
	NetProfitFormatted   string `json:"net_profit_formatted"`
	FixedExpense         int64  `json:"fixed_expense"`
}

// ReportService computes monthly revenue and financial estimates from the
// order ledger. Months after the current one are rejected.
type ReportService struct {
	analytics repository.AnalyticsRepository
	finance   config.FinanceConfig
	now       func() time.Time
}

// NewReportService creates a new report service
func NewReportService(analytics repository.AnalyticsRepository, finance config.FinanceConfig) *ReportService {
	return &ReportService{
		analytics: analytics,
		finance:   finance,
		now:       time.Now,
	}
}

// MonthlySummary aggregates one calendar month. Cancelled orders are excluded
// by the underlying query.
func (s *ReportService) MonthlySummary(ctx context.Context, year int, month time.Month) (*MonthlySummary, error) {
	if err := s.checkNotFuture(year, month); err != nil {
		return nil, err
	}

	start := time.Date(year, month, 1, 0, 0, 0, 0, s.now().Location())
	end := start.AddDate(0, 1, 0)

	stats, err := s.analytics.GetMonthlyOrderStats(ctx, start, end)
	if err != nil {
		return nil, err
	}

	return &MonthlySummary{
		Year:             year,
		Month:            int(month),
		Label:            start.Format("Jan 2006"),
		OrderCount:       stats.OrderCount,
		Revenue:          stats.RevenueSum,
		RevenueFormatted: currency.FormatYen(stats.RevenueSum),
		ShippingFees:     stats.ShippingSum,
	}, nil
}

// TrailingSeries returns summaries for the given number of months ending with
// the current one, oldest first. Months with no orders appear with zeros.
func (s *ReportService) TrailingSeries(ctx context.Context, months int) ([]MonthlySummary, error) {
	if months < 1 {
		months = 6
	}
	if months > 24 {
		months = 24
	}

	now := s.now()
	first := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location()).AddDate(0, -(months - 1), 0)

	series := make([]MonthlySummary, 0, months)
	for i := 0; i < months; i++ {
		m := first.AddDate(0, i, 0)
		summary, err := s.MonthlySummary(ctx, m.Year(), m.Month())
		if err != nil {
			return nil, err
		}
		series = append(series, *summary)
	}
	return series, nil
}

// FinancialReport estimates gross and net profit for one month.
func (s *ReportService) FinancialReport(ctx context.Context, year int, month time.Month) (*FinancialReport, error) {
	summary, err := s.MonthlySummary(ctx, year, month)
	if err != nil {
		return nil, err
	}

	merchandise := summary.Revenue - summary.ShippingFees
	productCost := int64(float64(merchandise) * s.finance.CostRatio)
	gross := summary.Revenue - productCost
	net := gross - s.finance.FixedMonthlyExpense

	return &FinancialReport{
		MonthlySummary:       *summary,
		ProductCost:          productCost,
		GrossProfit:          gross,
		GrossProfitFormatted: currency.FormatYen(gross),
		NetProfit:            net,
		NetProfitFormatted:   currency.FormatYen(net),
		FixedExpense:         s.finance.FixedMonthlyExpense,
	}, nil
}

func (s *ReportService) checkNotFuture(year int, month time.Month) error {
	if month < time.January || month > time.December {
		return apperror.NewBadRequestError("Invalid month")
	}
	now := s.now()
	if year > now.Year() || (year == now.Year() && month > now.Month()) {
		return apperror.NewBadRequestError("Cannot report on a future month")
	}
	return nil
}
