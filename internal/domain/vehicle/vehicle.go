package vehicle

import (
	"time"

	"github.com/oklog/ulid/v2"
)

type Vehicle struct {
	Id            ulid.ULID `gorm:"type:varchar(26);primaryKey" json:"id"`
	LicensePlate  string    `gorm:"type:varchar(12);uniqueIndex:idx_vehicles_license_plate;not null" json:"licensePlate"`
	Make          string    `gorm:"type:varchar(50);not null" json:"make"`
	Model         string    `gorm:"type:varchar(50);not null" json:"model"`
	Year          int       `gorm:"not null" json:"year"`
	ChassisNumber string    `gorm:"type:varchar(17);uniqueIndex:idx_vehicles_chassis_number;not null" json:"chassisNumber"`
	EngineNumber  string    `gorm:"type:varchar(30)" json:"engineNumber"`
	CustomerId    ulid.ULID `gorm:"type:varchar(26);index:idx_vehicles_customer_id;not null" json:"customerId"`
	CreatedAt     time.Time `gorm:"autoCreateTime;not null" json:"createdAt"`
	UpdatedAt     time.Time `gorm:"autoUpdateTime;not null" json:"updatedAt"`
}

func (Vehicle) TableName() string {
	return "vehicles"
}
