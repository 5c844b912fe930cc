package infrastructure

import (
	"context"
	"time"

	"github.com/harunoztuurk/otoservis/internal/domain/report"
	appErrors "github.com/harunoztuurk/otoservis/internal/errors"

	"gorm.io/gorm"
)

type ReportRepository struct {
	DB *gorm.DB
}

func (r *ReportRepository) GetMonthlyReport(ctx context.Context, month, year int) (*report.MonthlyReport, error) {
	start := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(0, 1, 0)

	result := &report.MonthlyReport{
		Month:            month,
		Year:             year,
		PaymentsByMethod: make(map[string]float64),
	}

	db := r.DB.WithContext(ctx)

	err := db.Table("service_records").
		Where("service_date >= ? AND service_date < ?", start, end).
		Count(&result.ServiceCount).Error
	if err != nil {
		return nil, appErrors.NewDatabaseError(err)
	}

	err = db.Table("service_records").
		Where("service_date >= ? AND service_date < ? AND status = ?", start, end, "completed").
		Count(&result.CompletedCount).Error
	if err != nil {
		return nil, appErrors.NewDatabaseError(err)
	}

	err = db.Table("service_records").
		Where("service_date >= ? AND service_date < ? AND status = ?", start, end, "cancelled").
		Count(&result.CancelledCount).Error
	if err != nil {
		return nil, appErrors.NewDatabaseError(err)
	}

	err = db.Raw(`
		SELECT COALESCE(SUM(total), 0) FROM invoices
		WHERE issue_date >= ? AND issue_date < ?`, start, end).
		Scan(&result.InvoicedTotal).Error
	if err != nil {
		return nil, appErrors.NewDatabaseError(err)
	}

	err = db.Raw(`
		SELECT COALESCE(SUM(amount), 0) FROM payments
		WHERE paid_at >= ? AND paid_at < ?`, start, end).
		Scan(&result.CollectedTotal).Error
	if err != nil {
		return nil, appErrors.NewDatabaseError(err)
	}

	err = db.Raw(`
		SELECT COALESCE(SUM(total - paid_amount), 0) FROM invoices
		WHERE issue_date >= ? AND issue_date < ? AND status <> 'paid'`, start, end).
		Scan(&result.OutstandingTotal).Error
	if err != nil {
		return nil, appErrors.NewDatabaseError(err)
	}

	var methodRows []struct {
		Method string
		Total  float64
	}
	err = db.Raw(`
		SELECT method, COALESCE(SUM(amount), 0) AS total FROM payments
		WHERE paid_at >= ? AND paid_at < ?
		GROUP BY method`, start, end).
		Scan(&methodRows).Error
	if err != nil {
		return nil, appErrors.NewDatabaseError(err)
	}
	for _, row := range methodRows {
		result.PaymentsByMethod[row.Method] = row.Total
	}

	return result, nil
}

func (r *ReportRepository) GetYearlyReport(ctx context.Context, year int) (*report.YearlyReport, error) {
	start := time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(1, 0, 0)

	result := &report.YearlyReport{Year: year}

	db := r.DB.WithContext(ctx)

	err := db.Table("service_records").
		Where("service_date >= ? AND service_date < ?", start, end).
		Count(&result.ServiceCount).Error
	if err != nil {
		return nil, appErrors.NewDatabaseError(err)
	}

	var invoicedRows []struct {
		Month int
		Total float64
	}
	err = db.Raw(`
		SELECT EXTRACT(MONTH FROM issue_date)::int AS month, COALESCE(SUM(total), 0) AS total
		FROM invoices
		WHERE issue_date >= ? AND issue_date < ?
		GROUP BY month`, start, end).
		Scan(&invoicedRows).Error
	if err != nil {
		return nil, appErrors.NewDatabaseError(err)
	}

	var collectedRows []struct {
		Month int
		Total float64
	}
	err = db.Raw(`
		SELECT EXTRACT(MONTH FROM paid_at)::int AS month, COALESCE(SUM(amount), 0) AS total
		FROM payments
		WHERE paid_at >= ? AND paid_at < ?
		GROUP BY month`, start, end).
		Scan(&collectedRows).Error
	if err != nil {
		return nil, appErrors.NewDatabaseError(err)
	}

	months := make([]report.MonthlyBreakdown, 12)
	for i := range months {
		months[i].Month = i + 1
	}
	for _, row := range invoicedRows {
		if row.Month >= 1 && row.Month <= 12 {
			months[row.Month-1].Invoiced = row.Total
			result.TotalInvoiced += row.Total
		}
	}
	for _, row := range collectedRows {
		if row.Month >= 1 && row.Month <= 12 {
			months[row.Month-1].Collected = row.Total
			result.TotalCollected += row.Total
		}
	}
	result.Months = months

	return result, nil
}
