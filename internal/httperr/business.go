package httperr

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
)

// Códigos de negocio usados por los casos de uso. Los handlers los
// traducen a HTTP con FromBusiness; todo lo demás es internal_error.
const (
	CodeNotFound        = "not_found"
	CodeConflict        = "conflict"
	CodeInvalidState    = "invalid_state"
	CodeLimitExceeded   = "limit_exceeded"
	CodeValidationError = "validation_error"
)

type BusinessError struct {
	Code string
	// Detalle opcional para el cliente; nunca incluye información interna
	Message string
}

func (e BusinessError) Error() string {
	return e.Code
}

func ErrBusiness(code string) error {
	return BusinessError{Code: code}
}

func ErrBusinessMsg(code, message string) error {
	return BusinessError{Code: code, Message: message}
}

func IsBusiness(err error, code string) bool {
	var be BusinessError
	if errors.As(err, &be) {
		return be.Code == code
	}
	return false
}

var statusByCode = map[string]int{
	CodeNotFound:        http.StatusNotFound,
	CodeConflict:        http.StatusConflict,
	CodeInvalidState:    http.StatusUnprocessableEntity,
	CodeLimitExceeded:   http.StatusUnprocessableEntity,
	CodeValidationError: http.StatusBadRequest,
}

// FromBusiness escribe la respuesta HTTP para un error de negocio y
// devuelve true. Para cualquier otro error devuelve false: el handler
// debe loguearlo y responder internal_error.
func FromBusiness(c *gin.Context, err error) bool {
	var be BusinessError
	if !errors.As(err, &be) {
		return false
	}

	status, ok := statusByCode[be.Code]
	if !ok {
		status = http.StatusBadRequest
	}

	msg := be.Message
	if msg == "" {
		msg = be.Code
	}

	Write(c, status, be.Code, msg)
	return true
}
