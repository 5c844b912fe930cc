package infrastructure

import (
	"context"
	"time"

	"github.com/harunoztuurk/otoservis/internal/domain/invoice"
	"github.com/harunoztuurk/otoservis/internal/domain/lifecycle"
	appErrors "github.com/harunoztuurk/otoservis/internal/errors"
	"github.com/harunoztuurk/otoservis/internal/pkg"

	"github.com/oklog/ulid/v2"
	"gorm.io/gorm"
)

type InvoiceRepository struct {
	DB *gorm.DB
}

type invoiceDB struct {
	Id            string    `gorm:"type:varchar(26);primaryKey"`
	InvoiceNumber string    `gorm:"type:varchar(20);uniqueIndex:idx_invoices_number;not null"`
	ServiceId     string    `gorm:"type:varchar(26);uniqueIndex:idx_invoices_service_id;not null"`
	VehicleId     string    `gorm:"type:varchar(26);index:idx_invoices_vehicle_id"`
	CustomerId    string    `gorm:"type:varchar(26);index:idx_invoices_customer_id"`
	IssueDate     time.Time `gorm:"type:date;not null"`
	DueDate       time.Time `gorm:"type:date;not null"`
	Subtotal      float64   `gorm:"type:decimal(15,2);not null"`
	TaxRate       float64   `gorm:"type:decimal(5,2);not null"`
	TaxAmount     float64   `gorm:"type:decimal(15,2);not null"`
	Total         float64   `gorm:"type:decimal(15,2);not null"`
	PaidAmount    float64   `gorm:"type:decimal(15,2);not null;default:0"`
	PaymentMethod string    `gorm:"type:varchar(20);not null"`
	Status        string    `gorm:"type:varchar(20);not null;default:'pending';index:idx_invoices_status"`
	CreatedAt     time.Time `gorm:"autoCreateTime;not null"`
	UpdatedAt     time.Time `gorm:"autoUpdateTime;not null"`
}

func (invoiceDB) TableName() string {
	return "invoices"
}

type invoiceItemDB struct {
	Id          string  `gorm:"type:varchar(26);primaryKey"`
	InvoiceId   string  `gorm:"type:varchar(26);index:idx_invoice_items_invoice_id;not null"`
	Description string  `gorm:"type:varchar(255);not null"`
	Cost        float64 `gorm:"type:decimal(15,2);not null"`
	Type        string  `gorm:"type:varchar(10);not null"`
	Position    int     `gorm:"not null;default:0"`
}

func (invoiceItemDB) TableName() string {
	return "invoice_items"
}

type installmentDB struct {
	Id        string     `gorm:"type:varchar(26);primaryKey"`
	InvoiceId string     `gorm:"type:varchar(26);index:idx_installments_invoice_id;not null"`
	Sequence  int        `gorm:"not null"`
	Amount    float64    `gorm:"type:decimal(15,2);not null"`
	DueDate   time.Time  `gorm:"type:date;not null;index:idx_installments_due_date"`
	Status    string     `gorm:"type:varchar(20);not null;default:'pending'"`
	PaidAt    *time.Time `gorm:"type:date"`
	CreatedAt time.Time  `gorm:"autoCreateTime;not null"`
	UpdatedAt time.Time  `gorm:"autoUpdateTime;not null"`
}

func (installmentDB) TableName() string {
	return "installments"
}

type paymentDB struct {
	Id            string    `gorm:"type:varchar(26);primaryKey"`
	InvoiceId     string    `gorm:"type:varchar(26);index:idx_payments_invoice_id;not null"`
	InstallmentId string    `gorm:"type:varchar(26);index:idx_payments_installment_id"`
	Amount        float64   `gorm:"type:decimal(15,2);not null"`
	Method        string    `gorm:"type:varchar(20);not null"`
	PaidAt        time.Time `gorm:"not null"`
	ReceivedBy    string    `gorm:"type:varchar(26)"`
	Note          string    `gorm:"type:varchar(255)"`
	CreatedAt     time.Time `gorm:"autoCreateTime;not null"`
}

func (paymentDB) TableName() string {
	return "payments"
}

// invoiceSequenceDB holds the per-year counter behind FTR-YYYY-NNN numbers.
type invoiceSequenceDB struct {
	Year      int `gorm:"primaryKey"`
	LastValue int `gorm:"not null;default:0"`
}

func (invoiceSequenceDB) TableName() string {
	return "invoice_sequences"
}

func toDBInvoice(entity *invoice.Invoice) *invoiceDB {
	return &invoiceDB{
		Id:            entity.Id.String(),
		InvoiceNumber: entity.InvoiceNumber,
		ServiceId:     entity.ServiceId.String(),
		VehicleId:     entity.VehicleId.String(),
		CustomerId:    entity.CustomerId.String(),
		IssueDate:     entity.IssueDate,
		DueDate:       entity.DueDate,
		Subtotal:      entity.Subtotal,
		TaxRate:       entity.TaxRate,
		TaxAmount:     entity.TaxAmount,
		Total:         entity.Total,
		PaidAmount:    entity.PaidAmount,
		PaymentMethod: string(entity.PaymentMethod),
		Status:        string(entity.Status),
		CreatedAt:     entity.CreatedAt,
		UpdatedAt:     entity.UpdatedAt,
	}
}

func toDomainInvoice(idb *invoiceDB) (*invoice.Invoice, error) {
	id, err := parseID(idb.Id)
	if err != nil {
		return nil, err
	}
	serviceID, err := parseID(idb.ServiceId)
	if err != nil {
		return nil, err
	}

	entity := &invoice.Invoice{
		Id:            id,
		InvoiceNumber: idb.InvoiceNumber,
		ServiceId:     serviceID,
		IssueDate:     idb.IssueDate,
		DueDate:       idb.DueDate,
		Subtotal:      idb.Subtotal,
		TaxRate:       idb.TaxRate,
		TaxAmount:     idb.TaxAmount,
		Total:         idb.Total,
		PaidAmount:    idb.PaidAmount,
		PaymentMethod: invoice.PaymentMethod(idb.PaymentMethod),
		Status:        lifecycle.State(idb.Status),
		CreatedAt:     idb.CreatedAt,
		UpdatedAt:     idb.UpdatedAt,
	}
	if idb.VehicleId != "" {
		vehicleID, err := parseID(idb.VehicleId)
		if err != nil {
			return nil, err
		}
		entity.VehicleId = vehicleID
	}
	if idb.CustomerId != "" {
		customerID, err := parseID(idb.CustomerId)
		if err != nil {
			return nil, err
		}
		entity.CustomerId = customerID
	}
	return entity, nil
}

func toDomainInstallment(idb *installmentDB) (*invoice.Installment, error) {
	id, err := parseID(idb.Id)
	if err != nil {
		return nil, err
	}
	invoiceID, err := parseID(idb.InvoiceId)
	if err != nil {
		return nil, err
	}
	return &invoice.Installment{
		Id:        id,
		InvoiceId: invoiceID,
		Sequence:  idb.Sequence,
		Amount:    idb.Amount,
		DueDate:   idb.DueDate,
		Status:    lifecycle.State(idb.Status),
		PaidAt:    idb.PaidAt,
		CreatedAt: idb.CreatedAt,
		UpdatedAt: idb.UpdatedAt,
	}, nil
}

func toDBInstallment(entity *invoice.Installment) *installmentDB {
	return &installmentDB{
		Id:        entity.Id.String(),
		InvoiceId: entity.InvoiceId.String(),
		Sequence:  entity.Sequence,
		Amount:    entity.Amount,
		DueDate:   entity.DueDate,
		Status:    string(entity.Status),
		PaidAt:    entity.PaidAt,
		CreatedAt: entity.CreatedAt,
		UpdatedAt: entity.UpdatedAt,
	}
}

func toDBPayment(entity *invoice.Payment) *paymentDB {
	pdb := &paymentDB{
		Id:        entity.Id.String(),
		InvoiceId: entity.InvoiceId.String(),
		Amount:    entity.Amount,
		Method:    string(entity.Method),
		PaidAt:    entity.PaidAt,
		Note:      entity.Note,
		CreatedAt: entity.CreatedAt,
	}
	if entity.InstallmentId != nil {
		pdb.InstallmentId = entity.InstallmentId.String()
	}
	if !pkg.IsEmptyULID(entity.ReceivedBy) {
		pdb.ReceivedBy = entity.ReceivedBy.String()
	}
	return pdb
}

func toDomainPayment(pdb *paymentDB) (*invoice.Payment, error) {
	id, err := parseID(pdb.Id)
	if err != nil {
		return nil, err
	}
	invoiceID, err := parseID(pdb.InvoiceId)
	if err != nil {
		return nil, err
	}

	entity := &invoice.Payment{
		Id:        id,
		InvoiceId: invoiceID,
		Amount:    pdb.Amount,
		Method:    invoice.PaymentMethod(pdb.Method),
		PaidAt:    pdb.PaidAt,
		Note:      pdb.Note,
		CreatedAt: pdb.CreatedAt,
	}
	if pdb.InstallmentId != "" {
		installmentID, err := parseID(pdb.InstallmentId)
		if err != nil {
			return nil, err
		}
		entity.InstallmentId = &installmentID
	}
	if pdb.ReceivedBy != "" {
		receivedBy, err := parseID(pdb.ReceivedBy)
		if err != nil {
			return nil, err
		}
		entity.ReceivedBy = receivedBy
	}
	return entity, nil
}

func (r *InvoiceRepository) Create(ctx context.Context, entity *invoice.Invoice) error {
	err := r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Table("invoices").Create(toDBInvoice(entity)).Error; err != nil {
			return err
		}
		for i := range entity.Items {
			item := &entity.Items[i]
			idb := &invoiceItemDB{
				Id:          item.Id.String(),
				InvoiceId:   item.InvoiceId.String(),
				Description: item.Description,
				Cost:        item.Cost,
				Type:        item.Type,
				Position:    item.Position,
			}
			if err := tx.Table("invoice_items").Create(idb).Error; err != nil {
				return err
			}
		}
		for i := range entity.Installments {
			if err := tx.Table("installments").Create(toDBInstallment(&entity.Installments[i])).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return appErrors.NewDatabaseError(err)
	}
	return nil
}

func (r *InvoiceRepository) Update(ctx context.Context, entity *invoice.Invoice) error {
	idb := toDBInvoice(entity)
	if err := r.DB.WithContext(ctx).Table("invoices").Where("id = ?", idb.Id).Updates(idb).Error; err != nil {
		return appErrors.NewDatabaseError(err)
	}
	return nil
}

func (r *InvoiceRepository) GetById(ctx context.Context, id ulid.ULID) (*invoice.Invoice, error) {
	var idb invoiceDB
	if err := r.DB.WithContext(ctx).Table("invoices").Where("id = ?", id.String()).First(&idb).Error; err != nil {
		return nil, err
	}
	return r.loadAssociations(ctx, &idb)
}

func (r *InvoiceRepository) GetByNumber(ctx context.Context, number string) (*invoice.Invoice, error) {
	var idb invoiceDB
	if err := r.DB.WithContext(ctx).Table("invoices").Where("invoice_number = ?", number).First(&idb).Error; err != nil {
		return nil, err
	}
	return r.loadAssociations(ctx, &idb)
}

func (r *InvoiceRepository) GetByServiceId(ctx context.Context, serviceID ulid.ULID) (*invoice.Invoice, error) {
	var idb invoiceDB
	if err := r.DB.WithContext(ctx).Table("invoices").Where("service_id = ?", serviceID.String()).First(&idb).Error; err != nil {
		return nil, err
	}
	return r.loadAssociations(ctx, &idb)
}

func (r *InvoiceRepository) List(ctx context.Context, status string, pagination *pkg.PaginationParams) ([]*invoice.Invoice, int64, error) {
	query := r.DB.WithContext(ctx).Table("invoices")
	if status != "" {
		query = query.Where("status = ?", status)
	}
	return r.list(ctx, query, pagination)
}

func (r *InvoiceRepository) ListByCustomer(ctx context.Context, customerID ulid.ULID, pagination *pkg.PaginationParams) ([]*invoice.Invoice, int64, error) {
	query := r.DB.WithContext(ctx).Table("invoices").Where("customer_id = ?", customerID.String())
	return r.list(ctx, query, pagination)
}

func (r *InvoiceRepository) ListAll(ctx context.Context) ([]*invoice.Invoice, error) {
	var rows []invoiceDB
	if err := r.DB.WithContext(ctx).Table("invoices").Order("created_at DESC").Find(&rows).Error; err != nil {
		return nil, appErrors.NewDatabaseError(err)
	}

	result := make([]*invoice.Invoice, 0, len(rows))
	for i := range rows {
		entity, err := toDomainInvoice(&rows[i])
		if err != nil {
			return nil, err
		}
		result = append(result, entity)
	}
	return result, nil
}

func (r *InvoiceRepository) ListDue(ctx context.Context, before time.Time) ([]*invoice.Invoice, error) {
	var rows []invoiceDB
	err := r.DB.WithContext(ctx).
		Table("invoices").
		Where("status IN ?", []string{"pending", "partial"}).
		Where(
			"due_date < ? OR id IN (SELECT invoice_id FROM installments WHERE status = ? AND due_date < ?)",
			before, "pending", before,
		).
		Order("due_date ASC").
		Find(&rows).Error
	if err != nil {
		return nil, appErrors.NewDatabaseError(err)
	}

	result := make([]*invoice.Invoice, 0, len(rows))
	for i := range rows {
		entity, err := r.loadAssociations(ctx, &rows[i])
		if err != nil {
			return nil, err
		}
		result = append(result, entity)
	}
	return result, nil
}

func (r *InvoiceRepository) NextSequence(ctx context.Context, year int) (int, error) {
	var seq int
	err := r.DB.WithContext(ctx).Raw(`
		INSERT INTO invoice_sequences (year, last_value) VALUES (?, 1)
		ON CONFLICT (year) DO UPDATE SET last_value = invoice_sequences.last_value + 1
		RETURNING last_value`, year).Scan(&seq).Error
	if err != nil {
		return 0, appErrors.NewDatabaseError(err)
	}
	return seq, nil
}

func (r *InvoiceRepository) AddPayment(ctx context.Context, payment *invoice.Payment) error {
	if err := r.DB.WithContext(ctx).Table("payments").Create(toDBPayment(payment)).Error; err != nil {
		return appErrors.NewDatabaseError(err)
	}
	return nil
}

func (r *InvoiceRepository) UpdateInstallment(ctx context.Context, installment *invoice.Installment) error {
	idb := toDBInstallment(installment)
	if err := r.DB.WithContext(ctx).Table("installments").Where("id = ?", idb.Id).Updates(idb).Error; err != nil {
		return appErrors.NewDatabaseError(err)
	}
	return nil
}

func (r *InvoiceRepository) list(ctx context.Context, query *gorm.DB, pagination *pkg.PaginationParams) ([]*invoice.Invoice, int64, error) {
	pagination = pkg.NormalizePagination(pagination)

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, appErrors.NewDatabaseError(err)
	}

	var rows []invoiceDB
	err := query.
		Order("created_at DESC").
		Offset(pagination.Offset()).
		Limit(pagination.Limit).
		Find(&rows).Error
	if err != nil {
		return nil, 0, appErrors.NewDatabaseError(err)
	}

	result := make([]*invoice.Invoice, 0, len(rows))
	for i := range rows {
		entity, err := toDomainInvoice(&rows[i])
		if err != nil {
			return nil, 0, err
		}
		result = append(result, entity)
	}
	return result, total, nil
}

func (r *InvoiceRepository) loadAssociations(ctx context.Context, idb *invoiceDB) (*invoice.Invoice, error) {
	entity, err := toDomainInvoice(idb)
	if err != nil {
		return nil, err
	}

	var itemRows []invoiceItemDB
	err = r.DB.WithContext(ctx).
		Table("invoice_items").
		Where("invoice_id = ?", idb.Id).
		Order("position ASC").
		Find(&itemRows).Error
	if err != nil {
		return nil, appErrors.NewDatabaseError(err)
	}
	for i := range itemRows {
		row := &itemRows[i]
		itemID, err := parseID(row.Id)
		if err != nil {
			return nil, err
		}
		entity.Items = append(entity.Items, invoice.Item{
			Id:          itemID,
			InvoiceId:   entity.Id,
			Description: row.Description,
			Cost:        row.Cost,
			Type:        row.Type,
			Position:    row.Position,
		})
	}

	var installmentRows []installmentDB
	err = r.DB.WithContext(ctx).
		Table("installments").
		Where("invoice_id = ?", idb.Id).
		Order("sequence ASC").
		Find(&installmentRows).Error
	if err != nil {
		return nil, appErrors.NewDatabaseError(err)
	}
	for i := range installmentRows {
		installment, err := toDomainInstallment(&installmentRows[i])
		if err != nil {
			return nil, err
		}
		entity.Installments = append(entity.Installments, *installment)
	}

	var paymentRows []paymentDB
	err = r.DB.WithContext(ctx).
		Table("payments").
		Where("invoice_id = ?", idb.Id).
		Order("paid_at ASC").
		Find(&paymentRows).Error
	if err != nil {
		return nil, appErrors.NewDatabaseError(err)
	}
	for i := range paymentRows {
		payment, err := toDomainPayment(&paymentRows[i])
		if err != nil {
			return nil, err
		}
		entity.Payments = append(entity.Payments, *payment)
	}

	return entity, nil
}
