package infrastructure

import (
	"context"
	"time"

	"github.com/harunoztuurk/otoservis/internal/domain/customer"
	appErrors "github.com/harunoztuurk/otoservis/internal/errors"
	"github.com/harunoztuurk/otoservis/internal/pkg"

	"github.com/oklog/ulid/v2"
	"gorm.io/gorm"
)

type CustomerRepository struct {
	DB *gorm.DB
}

type customerDB struct {
	Id               string    `gorm:"type:varchar(26);primaryKey"`
	Name             string    `gorm:"type:varchar(100);not null"`
	Surname          string    `gorm:"type:varchar(100);not null"`
	Phone            string    `gorm:"type:varchar(20);not null"`
	Email            string    `gorm:"type:varchar(100)"`
	Address          string    `gorm:"type:varchar(255)"`
	TaxNumber        string    `gorm:"type:varchar(11);index:idx_customers_tax_number"`
	RegistrationDate time.Time `gorm:"type:date;not null"`
	CreatedAt        time.Time `gorm:"autoCreateTime;not null"`
	UpdatedAt        time.Time `gorm:"autoUpdateTime;not null"`
}

func (customerDB) TableName() string {
	return "customers"
}

func toDomainCustomer(cdb *customerDB) (*customer.Customer, error) {
	id, err := parseID(cdb.Id)
	if err != nil {
		return nil, err
	}
	return &customer.Customer{
		Id:               id,
		Name:             cdb.Name,
		Surname:          cdb.Surname,
		Phone:            cdb.Phone,
		Email:            cdb.Email,
		Address:          cdb.Address,
		TaxNumber:        cdb.TaxNumber,
		RegistrationDate: cdb.RegistrationDate,
		CreatedAt:        cdb.CreatedAt,
		UpdatedAt:        cdb.UpdatedAt,
	}, nil
}

func toDBCustomer(c *customer.Customer) *customerDB {
	return &customerDB{
		Id:               c.Id.String(),
		Name:             c.Name,
		Surname:          c.Surname,
		Phone:            c.Phone,
		Email:            c.Email,
		Address:          c.Address,
		TaxNumber:        c.TaxNumber,
		RegistrationDate: c.RegistrationDate,
		CreatedAt:        c.CreatedAt,
		UpdatedAt:        c.UpdatedAt,
	}
}

func (r *CustomerRepository) Create(ctx context.Context, entity *customer.Customer) error {
	if err := r.DB.WithContext(ctx).Table("customers").Create(toDBCustomer(entity)).Error; err != nil {
		return appErrors.NewDatabaseError(err)
	}
	return nil
}

func (r *CustomerRepository) Update(ctx context.Context, entity *customer.Customer) error {
	cdb := toDBCustomer(entity)
	if err := r.DB.WithContext(ctx).Table("customers").Where("id = ?", cdb.Id).Updates(cdb).Error; err != nil {
		return appErrors.NewDatabaseError(err)
	}
	return nil
}

func (r *CustomerRepository) Delete(ctx context.Context, id ulid.ULID) error {
	if err := r.DB.WithContext(ctx).Table("customers").Where("id = ?", id.String()).Delete(&customerDB{}).Error; err != nil {
		return appErrors.NewDatabaseError(err)
	}
	return nil
}

func (r *CustomerRepository) GetById(ctx context.Context, id ulid.ULID) (*customer.Customer, error) {
	var cdb customerDB
	if err := r.DB.WithContext(ctx).Table("customers").Where("id = ?", id.String()).First(&cdb).Error; err != nil {
		return nil, err
	}
	return toDomainCustomer(&cdb)
}

func (r *CustomerRepository) List(ctx context.Context, pagination *pkg.PaginationParams) ([]*customer.Customer, int64, error) {
	pagination = pkg.NormalizePagination(pagination)

	var total int64
	if err := r.DB.WithContext(ctx).Table("customers").Count(&total).Error; err != nil {
		return nil, 0, appErrors.NewDatabaseError(err)
	}

	var rows []customerDB
	err := r.DB.WithContext(ctx).
		Table("customers").
		Order("created_at DESC").
		Offset(pagination.Offset()).
		Limit(pagination.Limit).
		Find(&rows).Error
	if err != nil {
		return nil, 0, appErrors.NewDatabaseError(err)
	}

	return toDomainCustomers(rows, total)
}

func (r *CustomerRepository) ListAll(ctx context.Context) ([]*customer.Customer, error) {
	var rows []customerDB
	if err := r.DB.WithContext(ctx).Table("customers").Order("created_at DESC").Find(&rows).Error; err != nil {
		return nil, appErrors.NewDatabaseError(err)
	}
	result, _, err := toDomainCustomers(rows, 0)
	return result, err
}

func toDomainCustomers(rows []customerDB, total int64) ([]*customer.Customer, int64, error) {
	result := make([]*customer.Customer, 0, len(rows))
	for i := range rows {
		entity, err := toDomainCustomer(&rows[i])
		if err != nil {
			return nil, 0, err
		}
		result = append(result, entity)
	}
	return result, total, nil
}
