package contracts

import (
	"time"

	"github.com/harunoztuurk/otoservis/internal/domain/staff"
)

type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type LoginResponse struct {
	Token     string       `json:"token"`
	ExpiresAt time.Time    `json:"expiresAt"`
	Staff     *staff.Staff `json:"staff"`
}
