package customer

import (
	"time"

	"github.com/oklog/ulid/v2"
)

type Customer struct {
	Id               ulid.ULID `gorm:"type:varchar(26);primaryKey" json:"id"`
	Name             string    `gorm:"type:varchar(100);not null" json:"name"`
	Surname          string    `gorm:"type:varchar(100);not null" json:"surname"`
	Phone            string    `gorm:"type:varchar(20);not null" json:"phone"`
	Email            string    `gorm:"type:varchar(100)" json:"email"`
	Address          string    `gorm:"type:varchar(255)" json:"address"`
	TaxNumber        string    `gorm:"type:varchar(11);index:idx_customers_tax_number" json:"taxNumber"`
	RegistrationDate time.Time `gorm:"type:date;not null" json:"registrationDate"`
	CreatedAt        time.Time `gorm:"autoCreateTime;not null" json:"createdAt"`
	UpdatedAt        time.Time `gorm:"autoUpdateTime;not null" json:"updatedAt"`
}

func (Customer) TableName() string {
	return "customers"
}

// FullName is what the search screens match against.
func (c *Customer) FullName() string {
	return c.Name + " " + c.Surname
}
