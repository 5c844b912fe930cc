package staff

import (
	"time"

	"github.com/oklog/ulid/v2"
)

type Staff struct {
	Id        ulid.ULID `gorm:"type:varchar(26);primaryKey" json:"id"`
	Username  string    `gorm:"type:varchar(50);uniqueIndex:idx_staff_username;not null" json:"username"`
	FullName  string    `gorm:"type:varchar(100);not null" json:"fullName"`
	Password  string    `gorm:"type:varchar(255);not null" json:"-"`
	Role      Role      `gorm:"type:varchar(20);not null;default:'personnel'" json:"role"`
	CreatedAt time.Time `gorm:"autoCreateTime;not null" json:"createdAt"`
	UpdatedAt time.Time `gorm:"autoUpdateTime;not null" json:"updatedAt"`
}

func (Staff) TableName() string {
	return "staff"
}

type Role string

const (
	RoleAdmin     Role = "admin"
	RolePersonnel Role = "personnel"
)

func (r Role) IsValid() bool {
	switch r {
	case RoleAdmin, RolePersonnel:
		return true
	}
	return false
}
