package infrastructure

import (
	"context"
	"time"

	"github.com/harunoztuurk/otoservis/internal/domain/lifecycle"
	"github.com/harunoztuurk/otoservis/internal/domain/service"
	appErrors "github.com/harunoztuurk/otoservis/internal/errors"
	"github.com/harunoztuurk/otoservis/internal/pkg"

	"github.com/oklog/ulid/v2"
	"gorm.io/gorm"
)

type ServiceRepository struct {
	DB *gorm.DB
}

type serviceRecordDB struct {
	Id                      string    `gorm:"type:varchar(26);primaryKey"`
	VehicleId               string    `gorm:"type:varchar(26);index:idx_service_records_vehicle_id;not null"`
	Description             string    `gorm:"type:varchar(255);not null"`
	ServiceDate             time.Time `gorm:"type:date;not null"`
	EstimatedCompletionDate time.Time `gorm:"type:date"`
	TechnicianId            string    `gorm:"type:varchar(26);index:idx_service_records_technician_id"`
	Priority                string    `gorm:"type:varchar(10);not null;default:'normal'"`
	Status                  string    `gorm:"type:varchar(20);not null;default:'waiting';index:idx_service_records_status"`
	TotalCost               float64   `gorm:"type:decimal(15,2);not null;default:0"`
	PaymentStatus           string    `gorm:"type:varchar(10);not null;default:'unpaid'"`
	CreatedAt               time.Time `gorm:"autoCreateTime;not null"`
	UpdatedAt               time.Time `gorm:"autoUpdateTime;not null"`
}

func (serviceRecordDB) TableName() string {
	return "service_records"
}

type serviceItemDB struct {
	Id          string    `gorm:"type:varchar(26);primaryKey"`
	ServiceId   string    `gorm:"type:varchar(26);index:idx_service_items_service_id;not null"`
	Description string    `gorm:"type:varchar(255);not null"`
	Cost        float64   `gorm:"type:decimal(15,2);not null"`
	Type        string    `gorm:"type:varchar(10);not null"`
	Position    int       `gorm:"not null;default:0"`
	CreatedAt   time.Time `gorm:"autoCreateTime;not null"`
}

func (serviceItemDB) TableName() string {
	return "service_items"
}

func toDomainRecord(rdb *serviceRecordDB, items []serviceItemDB) (*service.Record, error) {
	id, err := parseID(rdb.Id)
	if err != nil {
		return nil, err
	}
	vehicleID, err := parseID(rdb.VehicleId)
	if err != nil {
		return nil, err
	}

	entity := &service.Record{
		Id:                      id,
		VehicleId:               vehicleID,
		Description:             rdb.Description,
		ServiceDate:             rdb.ServiceDate,
		EstimatedCompletionDate: rdb.EstimatedCompletionDate,
		Priority:                service.Priority(rdb.Priority),
		Status:                  lifecycle.State(rdb.Status),
		TotalCost:               rdb.TotalCost,
		PaymentStatus:           service.PaymentStatus(rdb.PaymentStatus),
		CreatedAt:               rdb.CreatedAt,
		UpdatedAt:               rdb.UpdatedAt,
	}
	if rdb.TechnicianId != "" {
		technicianID, err := parseID(rdb.TechnicianId)
		if err != nil {
			return nil, err
		}
		entity.TechnicianId = technicianID
	}

	for i := range items {
		item, err := toDomainServiceItem(&items[i])
		if err != nil {
			return nil, err
		}
		entity.Items = append(entity.Items, *item)
	}
	return entity, nil
}

func toDomainServiceItem(idb *serviceItemDB) (*service.Item, error) {
	id, err := parseID(idb.Id)
	if err != nil {
		return nil, err
	}
	serviceID, err := parseID(idb.ServiceId)
	if err != nil {
		return nil, err
	}
	return &service.Item{
		Id:          id,
		ServiceId:   serviceID,
		Description: idb.Description,
		Cost:        idb.Cost,
		Type:        service.ItemType(idb.Type),
		Position:    idb.Position,
		CreatedAt:   idb.CreatedAt,
	}, nil
}

func toDBRecord(entity *service.Record) *serviceRecordDB {
	rdb := &serviceRecordDB{
		Id:                      entity.Id.String(),
		VehicleId:               entity.VehicleId.String(),
		Description:             entity.Description,
		ServiceDate:             entity.ServiceDate,
		EstimatedCompletionDate: entity.EstimatedCompletionDate,
		Priority:                string(entity.Priority),
		Status:                  string(entity.Status),
		TotalCost:               entity.TotalCost,
		PaymentStatus:           string(entity.PaymentStatus),
		CreatedAt:               entity.CreatedAt,
		UpdatedAt:               entity.UpdatedAt,
	}
	if !pkg.IsEmptyULID(entity.TechnicianId) {
		rdb.TechnicianId = entity.TechnicianId.String()
	}
	return rdb
}

func toDBServiceItem(item *service.Item) *serviceItemDB {
	return &serviceItemDB{
		Id:          item.Id.String(),
		ServiceId:   item.ServiceId.String(),
		Description: item.Description,
		Cost:        item.Cost,
		Type:        string(item.Type),
		Position:    item.Position,
		CreatedAt:   item.CreatedAt,
	}
}

func (r *ServiceRepository) Create(ctx context.Context, entity *service.Record) error {
	err := r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Table("service_records").Create(toDBRecord(entity)).Error; err != nil {
			return err
		}
		for i := range entity.Items {
			if err := tx.Table("service_items").Create(toDBServiceItem(&entity.Items[i])).Error; err != nil {
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

func (r *ServiceRepository) Update(ctx context.Context, entity *service.Record) error {
	rdb := toDBRecord(entity)
	if err := r.DB.WithContext(ctx).Table("service_records").Where("id = ?", rdb.Id).Updates(rdb).Error; err != nil {
		return appErrors.NewDatabaseError(err)
	}
	return nil
}

func (r *ServiceRepository) Delete(ctx context.Context, id ulid.ULID) error {
	err := r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Table("service_items").Where("service_id = ?", id.String()).Delete(&serviceItemDB{}).Error; err != nil {
			return err
		}
		return tx.Table("service_records").Where("id = ?", id.String()).Delete(&serviceRecordDB{}).Error
	})
	if err != nil {
		return appErrors.NewDatabaseError(err)
	}
	return nil
}

func (r *ServiceRepository) GetById(ctx context.Context, id ulid.ULID) (*service.Record, error) {
	var rdb serviceRecordDB
	if err := r.DB.WithContext(ctx).Table("service_records").Where("id = ?", id.String()).First(&rdb).Error; err != nil {
		return nil, err
	}

	items, err := r.itemsFor(ctx, []string{rdb.Id})
	if err != nil {
		return nil, err
	}
	return toDomainRecord(&rdb, items[rdb.Id])
}

func (r *ServiceRepository) List(ctx context.Context, status string, pagination *pkg.PaginationParams) ([]*service.Record, int64, error) {
	query := r.DB.WithContext(ctx).Table("service_records")
	if status != "" {
		query = query.Where("status = ?", status)
	}
	return r.list(ctx, query, pagination)
}

func (r *ServiceRepository) ListByVehicle(ctx context.Context, vehicleID ulid.ULID, pagination *pkg.PaginationParams) ([]*service.Record, int64, error) {
	query := r.DB.WithContext(ctx).Table("service_records").Where("vehicle_id = ?", vehicleID.String())
	return r.list(ctx, query, pagination)
}

func (r *ServiceRepository) ListAll(ctx context.Context) ([]*service.Record, error) {
	var rows []serviceRecordDB
	if err := r.DB.WithContext(ctx).Table("service_records").Order("created_at DESC").Find(&rows).Error; err != nil {
		return nil, appErrors.NewDatabaseError(err)
	}
	return r.withItems(ctx, rows)
}

func (r *ServiceRepository) AddItem(ctx context.Context, item *service.Item) error {
	if err := r.DB.WithContext(ctx).Table("service_items").Create(toDBServiceItem(item)).Error; err != nil {
		return appErrors.NewDatabaseError(err)
	}
	return nil
}

func (r *ServiceRepository) RemoveItem(ctx context.Context, itemID, serviceID ulid.ULID) error {
	err := r.DB.WithContext(ctx).
		Table("service_items").
		Where("id = ? AND service_id = ?", itemID.String(), serviceID.String()).
		Delete(&serviceItemDB{}).Error
	if err != nil {
		return appErrors.NewDatabaseError(err)
	}
	return nil
}

func (r *ServiceRepository) list(ctx context.Context, query *gorm.DB, pagination *pkg.PaginationParams) ([]*service.Record, int64, error) {
	pagination = pkg.NormalizePagination(pagination)

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, appErrors.NewDatabaseError(err)
	}

	var rows []serviceRecordDB
	err := query.
		Order("created_at DESC").
		Offset(pagination.Offset()).
		Limit(pagination.Limit).
		Find(&rows).Error
	if err != nil {
		return nil, 0, appErrors.NewDatabaseError(err)
	}

	records, err := r.withItems(ctx, rows)
	if err != nil {
		return nil, 0, err
	}
	return records, total, nil
}

func (r *ServiceRepository) withItems(ctx context.Context, rows []serviceRecordDB) ([]*service.Record, error) {
	ids := make([]string, len(rows))
	for i := range rows {
		ids[i] = rows[i].Id
	}

	itemsByRecord, err := r.itemsFor(ctx, ids)
	if err != nil {
		return nil, err
	}

	records := make([]*service.Record, 0, len(rows))
	for i := range rows {
		entity, err := toDomainRecord(&rows[i], itemsByRecord[rows[i].Id])
		if err != nil {
			return nil, err
		}
		records = append(records, entity)
	}
	return records, nil
}

func (r *ServiceRepository) itemsFor(ctx context.Context, serviceIDs []string) (map[string][]serviceItemDB, error) {
	result := make(map[string][]serviceItemDB, len(serviceIDs))
	if len(serviceIDs) == 0 {
		return result, nil
	}

	var rows []serviceItemDB
	err := r.DB.WithContext(ctx).
		Table("service_items").
		Where("service_id IN ?", serviceIDs).
		Order("position ASC").
		Find(&rows).Error
	if err != nil {
		return nil, appErrors.NewDatabaseError(err)
	}

	for i := range rows {
		result[rows[i].ServiceId] = append(result[rows[i].ServiceId], rows[i])
	}
	return result, nil
}
