package infrastructure

import (
	"context"
	"time"

	"github.com/harunoztuurk/otoservis/internal/domain/staff"
	appErrors "github.com/harunoztuurk/otoservis/internal/errors"
	"github.com/harunoztuurk/otoservis/internal/pkg"

	"github.com/oklog/ulid/v2"
	"gorm.io/gorm"
)

type StaffRepository struct {
	DB *gorm.DB
}

type staffDB struct {
	Id        string    `gorm:"type:varchar(26);primaryKey"`
	Username  string    `gorm:"type:varchar(50);uniqueIndex:idx_staff_username;not null"`
	FullName  string    `gorm:"type:varchar(100);not null"`
	Password  string    `gorm:"type:varchar(255);not null"`
	Role      string    `gorm:"type:varchar(20);not null;default:'personnel'"`
	CreatedAt time.Time `gorm:"autoCreateTime;not null"`
	UpdatedAt time.Time `gorm:"autoUpdateTime;not null"`
}

func (staffDB) TableName() string {
	return "staff"
}

func toDomainStaff(sdb *staffDB) (*staff.Staff, error) {
	id, err := parseID(sdb.Id)
	if err != nil {
		return nil, err
	}
	return &staff.Staff{
		Id:        id,
		Username:  sdb.Username,
		FullName:  sdb.FullName,
		Password:  sdb.Password,
		Role:      staff.Role(sdb.Role),
		CreatedAt: sdb.CreatedAt,
		UpdatedAt: sdb.UpdatedAt,
	}, nil
}

func toDBStaff(s *staff.Staff) *staffDB {
	return &staffDB{
		Id:        s.Id.String(),
		Username:  s.Username,
		FullName:  s.FullName,
		Password:  s.Password,
		Role:      string(s.Role),
		CreatedAt: s.CreatedAt,
		UpdatedAt: s.UpdatedAt,
	}
}

func (r *StaffRepository) Create(ctx context.Context, entity *staff.Staff) error {
	if err := r.DB.WithContext(ctx).Table("staff").Create(toDBStaff(entity)).Error; err != nil {
		return appErrors.NewDatabaseError(err)
	}
	return nil
}

func (r *StaffRepository) Update(ctx context.Context, entity *staff.Staff) error {
	sdb := toDBStaff(entity)
	if err := r.DB.WithContext(ctx).Table("staff").Where("id = ?", sdb.Id).Updates(sdb).Error; err != nil {
		return appErrors.NewDatabaseError(err)
	}
	return nil
}

func (r *StaffRepository) Delete(ctx context.Context, id ulid.ULID) error {
	if err := r.DB.WithContext(ctx).Table("staff").Where("id = ?", id.String()).Delete(&staffDB{}).Error; err != nil {
		return appErrors.NewDatabaseError(err)
	}
	return nil
}

func (r *StaffRepository) GetById(ctx context.Context, id ulid.ULID) (*staff.Staff, error) {
	var sdb staffDB
	if err := r.DB.WithContext(ctx).Table("staff").Where("id = ?", id.String()).First(&sdb).Error; err != nil {
		return nil, err
	}
	return toDomainStaff(&sdb)
}

func (r *StaffRepository) GetByUsername(ctx context.Context, username string) (*staff.Staff, error) {
	var sdb staffDB
	if err := r.DB.WithContext(ctx).Table("staff").Where("username = ?", username).First(&sdb).Error; err != nil {
		return nil, err
	}
	return toDomainStaff(&sdb)
}

func (r *StaffRepository) List(ctx context.Context, pagination *pkg.PaginationParams) ([]*staff.Staff, int64, error) {
	pagination = pkg.NormalizePagination(pagination)

	var total int64
	if err := r.DB.WithContext(ctx).Table("staff").Count(&total).Error; err != nil {
		return nil, 0, appErrors.NewDatabaseError(err)
	}

	var rows []staffDB
	err := r.DB.WithContext(ctx).
		Table("staff").
		Order("created_at DESC").
		Offset(pagination.Offset()).
		Limit(pagination.Limit).
		Find(&rows).Error
	if err != nil {
		return nil, 0, appErrors.NewDatabaseError(err)
	}

	result := make([]*staff.Staff, 0, len(rows))
	for i := range rows {
		entity, err := toDomainStaff(&rows[i])
		if err != nil {
			return nil, 0, err
		}
		result = append(result, entity)
	}
	return result, total, nil
}
