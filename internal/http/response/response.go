package response

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/openshelf/catalog-backend/internal/domain/catalog"
)

type APIError struct {
	Message string `json:"message"`
	Code    string `json:"code,omitempty"`
}

type ErrorEnvelope struct {
	Error APIError `json:"error"`
}

func RespondError(c *gin.Context, status int, code string, err error) {
	msg := "unknown error"
	if err != nil {
		msg = err.Error()
	}
	c.JSON(status, ErrorEnvelope{
		Error: APIError{
			Message: msg,
			Code:    code,
		},
	})
}

func RespondOK(c *gin.Context, payload any) {
	c.JSON(http.StatusOK, payload)
}

func RespondCreated(c *gin.Context, payload any) {
	c.JSON(http.StatusCreated, payload)
}

// RespondDomainError maps catalog error codes onto HTTP statuses. Anything
// untyped falls through as a 500 so taxonomy gaps show up loudly.
func RespondDomainError(c *gin.Context, err error) {
	var cerr *catalog.Error
	if !errors.As(err, &cerr) {
		RespondError(c, http.StatusInternalServerError, string(catalog.CodeInternal), err)
		return
	}
	status := http.StatusInternalServerError
	switch cerr.Code {
	case catalog.CodeValidation:
		status = http.StatusBadRequest
	case catalog.CodeNotFound:
		status = http.StatusNotFound
	case catalog.CodeConflict, catalog.CodeDuplicate:
		status = http.StatusConflict
	case catalog.CodeExhausted, catalog.CodeInternal:
		status = http.StatusInternalServerError
	}
	RespondError(c, status, string(cerr.Code), err)
}
