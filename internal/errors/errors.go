package errors

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/go-playground/validator/v10"
)

var (
	ErrNotFound           = NewAppError("NOT_FOUND", "Kayıt bulunamadı", http.StatusNotFound)
	ErrUnauthorized       = NewAppError("UNAUTHORIZED", "Yetkisiz erişim", http.StatusUnauthorized)
	ErrForbidden          = NewAppError("FORBIDDEN", "Erişim reddedildi", http.StatusForbidden)
	ErrBadRequest         = NewAppError("BAD_REQUEST", "Geçersiz istek", http.StatusBadRequest)
	ErrInternalServer     = NewAppError("INTERNAL_SERVER_ERROR", "Sunucu hatası", http.StatusInternalServerError)
	ErrConflict           = NewAppError("CONFLICT", "Kayıt çakışması", http.StatusConflict)
	ErrValidation         = NewAppError("VALIDATION_ERROR", "Doğrulama hatası", http.StatusBadRequest)
	ErrDatabase           = NewAppError("DATABASE_ERROR", "Veritabanı hatası", http.StatusInternalServerError)
	ErrInvalidCredentials = NewAppError("INVALID_CREDENTIALS", "Kullanıcı adı veya şifre hatalı", http.StatusUnauthorized)
	ErrStaffNotFound      = NewAppError("STAFF_NOT_FOUND", "Personel bulunamadı", http.StatusNotFound)
	ErrCustomerNotFound   = NewAppError("CUSTOMER_NOT_FOUND", "Müşteri bulunamadı", http.StatusNotFound)
	ErrVehicleNotFound    = NewAppError("VEHICLE_NOT_FOUND", "Araç bulunamadı", http.StatusNotFound)
	ErrServiceNotFound    = NewAppError("SERVICE_NOT_FOUND", "Servis kaydı bulunamadı", http.StatusNotFound)
	ErrInvoiceNotFound    = NewAppError("INVOICE_NOT_FOUND", "Fatura bulunamadı", http.StatusNotFound)
)

type AppError struct {
	Code       string
	Message    string
	StatusCode int
	Details    map[string]interface{}
	Err        error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s - %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

func (e *AppError) WithDetails(details map[string]interface{}) *AppError {
	clone := e.clone()
	if details == nil {
		clone.Details = make(map[string]interface{})
		return clone
	}
	clone.Details = make(map[string]interface{}, len(details))
	for k, v := range details {
		clone.Details[k] = v
	}
	return clone
}

func (e *AppError) WithError(err error) *AppError {
	clone := e.clone()
	clone.Err = err
	return clone
}

func NewAppError(code, message string, statusCode int) *AppError {
	return &AppError{
		Code:       code,
		Message:    message,
		StatusCode: statusCode,
		Details:    make(map[string]interface{}),
	}
}

func WrapError(err error, code, message string, statusCode int) *AppError {
	return &AppError{
		Code:       code,
		Message:    message,
		StatusCode: statusCode,
		Err:        err,
		Details:    make(map[string]interface{}),
	}
}

func (e *AppError) clone() *AppError {
	if e == nil {
		return nil
	}
	clone := *e
	if e.Details != nil {
		clone.Details = make(map[string]interface{}, len(e.Details))
		for k, v := range e.Details {
			clone.Details[k] = v
		}
	} else {
		clone.Details = make(map[string]interface{})
	}
	return &clone
}

func IsAppError(err error) bool {
	_, ok := err.(*AppError)
	return ok
}

func AsAppError(err error) (*AppError, bool) {
	appErr, ok := err.(*AppError)
	return appErr, ok
}

func FromError(err error) *AppError {
	if appErr, ok := err.(*AppError); ok {
		return appErr
	}

	if errors.Is(err, context.Canceled) {
		return WrapError(err, "REQUEST_CANCELED", "İstek istemci tarafından iptal edildi", http.StatusRequestTimeout)
	}

	return WrapError(err, "UNKNOWN_ERROR", "Bilinmeyen hata", http.StatusInternalServerError)
}

func NewValidationError(field, message string) *AppError {
	return &AppError{
		Code:       "VALIDATION_ERROR",
		Message:    message,
		StatusCode: http.StatusBadRequest,
		Details: map[string]interface{}{
			"field": field,
		},
	}
}

// NewInvalidTransitionError reports an illegal state edge. The entity id and both
// states travel in the details so callers can log the exact rejection.
func NewInvalidTransitionError(entityType, entityID, from, to string) *AppError {
	return &AppError{
		Code:       "INVALID_TRANSITION",
		Message:    fmt.Sprintf("%s durumundan %s durumuna geçiş yapılamaz", from, to),
		StatusCode: http.StatusConflict,
		Details: map[string]interface{}{
			"entityType": entityType,
			"entityId":   entityID,
			"fromState":  from,
			"toState":    to,
		},
	}
}

// NewPreconditionError reports a legal edge whose business rule is unmet.
func NewPreconditionError(entityType, entityID, message string) *AppError {
	return &AppError{
		Code:       "PRECONDITION_FAILED",
		Message:    message,
		StatusCode: http.StatusUnprocessableEntity,
		Details: map[string]interface{}{
			"entityType": entityType,
			"entityId":   entityID,
		},
	}
}

func NewDatabaseError(err error) *AppError {
	return WrapError(err, "DATABASE_ERROR", "Veritabanı işlemi sırasında hata oluştu", http.StatusInternalServerError)
}

func NewNotFoundError(resource string) *AppError {
	return &AppError{
		Code:       "NOT_FOUND",
		Message:    fmt.Sprintf("%s bulunamadı", resource),
		StatusCode: http.StatusNotFound,
		Details: map[string]interface{}{
			"resource": resource,
		},
	}
}

func NewConflictError(resource string) *AppError {
	return &AppError{
		Code:       "CONFLICT",
		Message:    fmt.Sprintf("%s zaten mevcut", resource),
		StatusCode: http.StatusConflict,
		Details: map[string]interface{}{
			"resource": resource,
		},
	}
}

func NewAuthError(code, message string) *AppError {
	return &AppError{
		Code:       code,
		Message:    message,
		StatusCode: http.StatusUnauthorized,
		Details:    make(map[string]interface{}),
	}
}

func ParseValidationErrors(err error) *AppError {
	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return ErrBadRequest.WithError(err)
	}

	fieldErrors := make([]map[string]string, 0, len(validationErrors))
	for _, fieldErr := range validationErrors {
		translatedField := translateFieldName(fieldErr.Field())
		fieldErrors = append(fieldErrors, map[string]string{
			"field":   translatedField,
			"message": translateValidationError(fieldErr),
		})
	}

	return &AppError{
		Code:       "VALIDATION_ERROR",
		Message:    "Alan doğrulama hatası",
		StatusCode: http.StatusBadRequest,
		Details: map[string]interface{}{
			"fields": fieldErrors,
		},
	}
}

func translateFieldName(field string) string {
	fieldLower := strings.ToLower(field)
	fieldMap := map[string]string{
		"name":          "ad",
		"surname":       "soyad",
		"phone":         "telefon",
		"email":         "e-posta",
		"address":       "adres",
		"username":      "kullanıcı adı",
		"password":      "şifre",
		"fullname":      "ad soyad",
		"licenseplate":  "plaka",
		"make":          "marka",
		"model":         "model",
		"year":          "yıl",
		"chassisnumber": "şasi numarası",
		"enginenumber":  "motor numarası",
		"description":   "açıklama",
		"amount":        "tutar",
		"cost":          "tutar",
		"duedate":       "vade tarihi",
		"priority":      "öncelik",
		"status":        "durum",
		"paymentmethod": "ödeme yöntemi",
	}
	if translated, ok := fieldMap[fieldLower]; ok {
		return translated
	}
	return field
}

func translateValidationError(fe validator.FieldError) string {
	fieldName := translateFieldName(fe.Field())

	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s zorunludur", fieldName)
	case "email":
		return "Geçersiz e-posta adresi"
	case "min":
		return fmt.Sprintf("%s en az %s karakter olmalıdır", fieldName, fe.Param())
	case "max":
		return fmt.Sprintf("%s en fazla %s karakter olmalıdır", fieldName, fe.Param())
	case "gte":
		return fmt.Sprintf("%s %s değerinden büyük veya eşit olmalıdır", fieldName, fe.Param())
	case "lte":
		return fmt.Sprintf("%s %s değerinden küçük veya eşit olmalıdır", fieldName, fe.Param())
	case "gt":
		return fmt.Sprintf("%s %s değerinden büyük olmalıdır", fieldName, fe.Param())
	case "len":
		return fmt.Sprintf("%s tam olarak %s karakter olmalıdır", fieldName, fe.Param())
	case "oneof":
		return fmt.Sprintf("%s şu değerlerden biri olmalıdır: %s", fieldName, fe.Param())
	case "datetime":
		return fmt.Sprintf("%s geçerli bir tarih olmalıdır", fieldName)
	case "numeric":
		return fmt.Sprintf("%s sayısal bir değer olmalıdır", fieldName)
	default:
		return fmt.Sprintf("%s alanı için '%s' doğrulaması başarısız", fieldName, fe.Tag())
	}
}
