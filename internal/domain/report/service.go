package report

import (
	"context"

	appErrors "github.com/harunoztuurk/otoservis/internal/errors"
)

type Service struct {
	Repository ReportRepository
}

func (s *Service) GetMonthlyReport(ctx context.Context, month, year int) (*MonthlyReport, error) {
	if month < 1 || month > 12 {
		return nil, appErrors.NewValidationError("month", "1 ile 12 arasında olmalıdır")
	}
	if year < 2000 || year > 2100 {
		return nil, appErrors.NewValidationError("year", "geçersiz yıl")
	}

	return s.Repository.GetMonthlyReport(ctx, month, year)
}

func (s *Service) GetYearlyReport(ctx context.Context, year int) (*YearlyReport, error) {
	if year < 2000 || year > 2100 {
		return nil, appErrors.NewValidationError("year", "geçersiz yıl")
	}

	return s.Repository.GetYearlyReport(ctx, year)
}
