package infrastructure

import (
	"context"
	"time"

	"github.com/harunoztuurk/otoservis/internal/domain/vehicle"
	appErrors "github.com/harunoztuurk/otoservis/internal/errors"
	"github.com/harunoztuurk/otoservis/internal/pkg"

	"github.com/oklog/ulid/v2"
	"gorm.io/gorm"
)

type VehicleRepository struct {
	DB *gorm.DB
}

type vehicleDB struct {
	Id            string    `gorm:"type:varchar(26);primaryKey"`
	LicensePlate  string    `gorm:"type:varchar(12);uniqueIndex:idx_vehicles_license_plate;not null"`
	Make          string    `gorm:"type:varchar(50);not null"`
	Model         string    `gorm:"type:varchar(50);not null"`
	Year          int       `gorm:"not null"`
	ChassisNumber string    `gorm:"type:varchar(17);uniqueIndex:idx_vehicles_chassis_number;not null"`
	EngineNumber  string    `gorm:"type:varchar(30)"`
	CustomerId    string    `gorm:"type:varchar(26);index:idx_vehicles_customer_id;not null"`
	CreatedAt     time.Time `gorm:"autoCreateTime;not null"`
	UpdatedAt     time.Time `gorm:"autoUpdateTime;not null"`
}

func (vehicleDB) TableName() string {
	return "vehicles"
}

func toDomainVehicle(vdb *vehicleDB) (*vehicle.Vehicle, error) {
	id, err := parseID(vdb.Id)
	if err != nil {
		return nil, err
	}
	customerID, err := parseID(vdb.CustomerId)
	if err != nil {
		return nil, err
	}
	return &vehicle.Vehicle{
		Id:            id,
		LicensePlate:  vdb.LicensePlate,
		Make:          vdb.Make,
		Model:         vdb.Model,
		Year:          vdb.Year,
		ChassisNumber: vdb.ChassisNumber,
		EngineNumber:  vdb.EngineNumber,
		CustomerId:    customerID,
		CreatedAt:     vdb.CreatedAt,
		UpdatedAt:     vdb.UpdatedAt,
	}, nil
}

func toDBVehicle(v *vehicle.Vehicle) *vehicleDB {
	return &vehicleDB{
		Id:            v.Id.String(),
		LicensePlate:  v.LicensePlate,
		Make:          v.Make,
		Model:         v.Model,
		Year:          v.Year,
		ChassisNumber: v.ChassisNumber,
		EngineNumber:  v.EngineNumber,
		CustomerId:    v.CustomerId.String(),
		CreatedAt:     v.CreatedAt,
		UpdatedAt:     v.UpdatedAt,
	}
}

func (r *VehicleRepository) Create(ctx context.Context, entity *vehicle.Vehicle) error {
	if err := r.DB.WithContext(ctx).Table("vehicles").Create(toDBVehicle(entity)).Error; err != nil {
		return appErrors.NewDatabaseError(err)
	}
	return nil
}

func (r *VehicleRepository) Update(ctx context.Context, entity *vehicle.Vehicle) error {
	vdb := toDBVehicle(entity)
	if err := r.DB.WithContext(ctx).Table("vehicles").Where("id = ?", vdb.Id).Updates(vdb).Error; err != nil {
		return appErrors.NewDatabaseError(err)
	}
	return nil
}

func (r *VehicleRepository) Delete(ctx context.Context, id ulid.ULID) error {
	if err := r.DB.WithContext(ctx).Table("vehicles").Where("id = ?", id.String()).Delete(&vehicleDB{}).Error; err != nil {
		return appErrors.NewDatabaseError(err)
	}
	return nil
}

func (r *VehicleRepository) GetById(ctx context.Context, id ulid.ULID) (*vehicle.Vehicle, error) {
	var vdb vehicleDB
	if err := r.DB.WithContext(ctx).Table("vehicles").Where("id = ?", id.String()).First(&vdb).Error; err != nil {
		return nil, err
	}
	return toDomainVehicle(&vdb)
}

func (r *VehicleRepository) GetByLicensePlate(ctx context.Context, plate string) (*vehicle.Vehicle, error) {
	var vdb vehicleDB
	if err := r.DB.WithContext(ctx).Table("vehicles").Where("license_plate = ?", plate).First(&vdb).Error; err != nil {
		return nil, err
	}
	return toDomainVehicle(&vdb)
}

func (r *VehicleRepository) GetByChassisNumber(ctx context.Context, chassis string) (*vehicle.Vehicle, error) {
	var vdb vehicleDB
	if err := r.DB.WithContext(ctx).Table("vehicles").Where("chassis_number = ?", chassis).First(&vdb).Error; err != nil {
		return nil, err
	}
	return toDomainVehicle(&vdb)
}

func (r *VehicleRepository) ListByCustomer(ctx context.Context, customerID ulid.ULID, pagination *pkg.PaginationParams) ([]*vehicle.Vehicle, int64, error) {
	return r.list(ctx, r.DB.WithContext(ctx).Table("vehicles").Where("customer_id = ?", customerID.String()), pagination)
}

func (r *VehicleRepository) List(ctx context.Context, pagination *pkg.PaginationParams) ([]*vehicle.Vehicle, int64, error) {
	return r.list(ctx, r.DB.WithContext(ctx).Table("vehicles"), pagination)
}

func (r *VehicleRepository) ListAll(ctx context.Context) ([]*vehicle.Vehicle, error) {
	var rows []vehicleDB
	if err := r.DB.WithContext(ctx).Table("vehicles").Order("created_at DESC").Find(&rows).Error; err != nil {
		return nil, appErrors.NewDatabaseError(err)
	}
	result, _, err := toDomainVehicles(rows, 0)
	return result, err
}

func (r *VehicleRepository) list(ctx context.Context, query *gorm.DB, pagination *pkg.PaginationParams) ([]*vehicle.Vehicle, int64, error) {
	pagination = pkg.NormalizePagination(pagination)

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, appErrors.NewDatabaseError(err)
	}

	var rows []vehicleDB
	err := query.
		Order("created_at DESC").
		Offset(pagination.Offset()).
		Limit(pagination.Limit).
		Find(&rows).Error
	if err != nil {
		return nil, 0, appErrors.NewDatabaseError(err)
	}

	return toDomainVehicles(rows, total)
}

func toDomainVehicles(rows []vehicleDB, total int64) ([]*vehicle.Vehicle, int64, error) {
	result := make([]*vehicle.Vehicle, 0, len(rows))
	for i := range rows {
		entity, err := toDomainVehicle(&rows[i])
		if err != nil {
			return nil, 0, err
		}
		result = append(result, entity)
	}
	return result, total, nil
}
