package infrastructure

import (
	"context"
	"time"

	"github.com/harunoztuurk/otoservis/internal/domain/dashboard"
	appErrors "github.com/harunoztuurk/otoservis/internal/errors"

	"gorm.io/gorm"
)

type DashboardRepository struct {
	DB *gorm.DB
}

func (r *DashboardRepository) GetCounts(ctx context.Context) (*dashboard.Counts, error) {
	counts := &dashboard.Counts{}
	db := r.DB.WithContext(ctx)

	if err := db.Table("customers").Count(&counts.Customers).Error; err != nil {
		return nil, appErrors.NewDatabaseError(err)
	}
	if err := db.Table("vehicles").Count(&counts.Vehicles).Error; err != nil {
		return nil, appErrors.NewDatabaseError(err)
	}
	err := db.Table("service_records").
		Where("status IN ?", []string{"waiting", "in_progress"}).
		Count(&counts.ActiveServices).Error
	if err != nil {
		return nil, appErrors.NewDatabaseError(err)
	}
	err = db.Table("invoices").
		Where("status IN ?", []string{"pending", "partial", "overdue"}).
		Count(&counts.OpenInvoices).Error
	if err != nil {
		return nil, appErrors.NewDatabaseError(err)
	}

	return counts, nil
}

func (r *DashboardRepository) GetReceivables(ctx context.Context) (*dashboard.Receivables, error) {
	receivables := &dashboard.Receivables{}
	db := r.DB.WithContext(ctx)

	err := db.Raw(`
		SELECT COALESCE(SUM(total - paid_amount), 0) FROM invoices
		WHERE status IN ('pending', 'partial', 'overdue')`).
		Scan(&receivables.OutstandingTotal).Error
	if err != nil {
		return nil, appErrors.NewDatabaseError(err)
	}

	err = db.Raw(`
		SELECT COALESCE(SUM(total - paid_amount), 0) FROM invoices
		WHERE status = 'overdue'`).
		Scan(&receivables.OverdueTotal).Error
	if err != nil {
		return nil, appErrors.NewDatabaseError(err)
	}

	err = db.Table("invoices").
		Where("status = ?", "overdue").
		Count(&receivables.OverdueCount).Error
	if err != nil {
		return nil, appErrors.NewDatabaseError(err)
	}

	return receivables, nil
}

func (r *DashboardRepository) GetRecentServices(ctx context.Context, limit int) ([]dashboard.RecentService, error) {
	var rows []dashboard.RecentService
	err := r.DB.WithContext(ctx).Raw(`
		SELECT sr.id, v.license_plate, sr.description, sr.status, sr.total_cost, sr.service_date
		FROM service_records sr
		JOIN vehicles v ON v.id = sr.vehicle_id
		ORDER BY sr.created_at DESC
		LIMIT ?`, limit).
		Scan(&rows).Error
	if err != nil {
		return nil, appErrors.NewDatabaseError(err)
	}
	if rows == nil {
		rows = []dashboard.RecentService{}
	}
	return rows, nil
}

func (r *DashboardRepository) GetDueInstallments(ctx context.Context, until time.Time, limit int) ([]dashboard.DueInstallment, error) {
	var rows []dashboard.DueInstallment
	err := r.DB.WithContext(ctx).Raw(`
		SELECT i.id, inv.invoice_number, i.sequence, i.amount, i.due_date, i.status
		FROM installments i
		JOIN invoices inv ON inv.id = i.invoice_id
		WHERE i.status IN ('pending', 'overdue') AND i.due_date <= ?
		ORDER BY i.due_date ASC
		LIMIT ?`, until, limit).
		Scan(&rows).Error
	if err != nil {
		return nil, appErrors.NewDatabaseError(err)
	}
	if rows == nil {
		rows = []dashboard.DueInstallment{}
	}
	return rows, nil
}
