package middleware

import (
	"errors"
	"strings"
	"time"

	"github.com/harunoztuurk/otoservis/config"
	"github.com/harunoztuurk/otoservis/internal/domain/staff"
	appErrors "github.com/harunoztuurk/otoservis/internal/errors"
	"github.com/harunoztuurk/otoservis/internal/pkg"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

type JwtService struct {
	secret       []byte
	expiresIn    time.Duration
	staffService *staff.Service
}

type Claims struct {
	Username string `json:"username"`
	Role     string `json:"role"`
	jwt.RegisteredClaims
}

func NewJwtService(cfg config.JWTConfig, staffService *staff.Service) (*JwtService, error) {
	if cfg.Secret == "" {
		return nil, errors.New("JWT secret boş olamaz")
	}
	return &JwtService{
		secret:       []byte(cfg.Secret),
		expiresIn:    cfg.ExpiresIn,
		staffService: staffService,
	}, nil
}

func (s *JwtService) GenerateToken(member *staff.Staff) (string, time.Time, error) {
	expiresAt := time.Now().Add(s.expiresIn)

	claims := Claims{
		Username: member.Username,
		Role:     string(member.Role),
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   member.Id.String(),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", time.Time{}, err
	}
	return signed, expiresAt, nil
}

func (s *JwtService) ValidateToken(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("beklenmeyen imzalama yöntemi")
		}
		return s.secret, nil
	})
	if err != nil {
		return nil, appErrors.ErrUnauthorized.WithError(err)
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, appErrors.ErrUnauthorized
	}
	return claims, nil
}

// AuthMiddleware validates the bearer token and stores the staff identity on
// the request context.
func AuthMiddleware(jwtSvc *JwtService) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" {
			abortUnauthorized(c, "Authorization başlığı eksik")
			return
		}

		parts := strings.SplitN(header, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			abortUnauthorized(c, "Geçersiz Authorization başlığı")
			return
		}

		claims, err := jwtSvc.ValidateToken(parts[1])
		if err != nil {
			abortUnauthorized(c, "Geçersiz veya süresi dolmuş token")
			return
		}

		// Deleted accounts keep a valid token until it expires; reject them here.
		staffID, err := pkg.ParseULID(claims.Subject)
		if err != nil {
			abortUnauthorized(c, "Geçersiz token kimliği")
			return
		}
		if err := jwtSvc.staffService.Exists(c.Request.Context(), staffID); err != nil {
			abortUnauthorized(c, "Personel kaydı bulunamadı")
			return
		}

		c.Set("staff_id", claims.Subject)
		c.Set("username", claims.Username)
		c.Set("role", claims.Role)
		c.Next()
	}
}

func abortUnauthorized(c *gin.Context, message string) {
	c.JSON(appErrors.ErrUnauthorized.StatusCode, gin.H{
		"error":   appErrors.ErrUnauthorized.Code,
		"message": message,
	})
	c.Abort()
}
