package routes

import (
	"net/http"

	"github.com/harunoztuurk/otoservis/internal/contracts"
	"github.com/harunoztuurk/otoservis/internal/domain/auth"
	appErrors "github.com/harunoztuurk/otoservis/internal/errors"

	"github.com/gin-gonic/gin"
)

func (h *Handler) Authenticate(c *gin.Context) {
	var body contracts.LoginRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		h.respondError(c, appErrors.ParseValidationErrors(err))
		return
	}

	ctx := c.Request.Context()
	member, err := h.AuthService.Login(ctx, auth.Login{
		Username: body.Username,
		Password: body.Password,
	})
	if err != nil {
		h.respondError(c, err)
		return
	}

	token, expiresAt, err := h.JwtService.GenerateToken(member)
	if err != nil {
		h.respondError(c, appErrors.ErrInternalServer.WithError(err))
		return
	}

	c.JSON(http.StatusOK, contracts.LoginResponse{
		Token:     token,
		ExpiresAt: expiresAt,
		Staff:     member,
	})
}
