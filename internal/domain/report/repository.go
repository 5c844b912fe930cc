package report

import "context"

type ReportRepository interface {
	GetMonthlyReport(ctx context.Context, month, year int) (*MonthlyReport, error)
	GetYearlyReport(ctx context.Context, year int) (*YearlyReport, error)
}
