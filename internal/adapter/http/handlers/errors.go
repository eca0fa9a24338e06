package handlers

import (
	"errors"
	"net/http"

	"lab_management/internal/domain/entities"
	"lab_management/pkg"

	"github.com/gin-gonic/gin"
)

var errInvalidRequest = pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)

// mapDomainError maps the domain error kinds shared by every use case.
// ok is false for anything that is not one of them.
func mapDomainError(err error) (*pkg.AppError, bool) {
	var ve *entities.ValidationError
	var ae *entities.AnomalyError
	var ce *entities.ConfigurationError
	switch {
	case errors.As(err, &ae):
		return pkg.NewDomainError("DATA_ANOMALY", "Stored result data is inconsistent", err, http.StatusConflict), true
	case errors.As(err, &ce):
		return pkg.NewDomainError("NOT_CONFIGURED", "Service is not fully configured", err, http.StatusServiceUnavailable), true
	case errors.As(err, &ve):
		return pkg.NewDomainError("VALIDATION_FAILED", "Validation failed", err, http.StatusUnprocessableEntity), true
	}
	return nil, false
}

func internalError(err error) *pkg.AppError {
	return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
}

func abortWithError(c *gin.Context, appErr *pkg.AppError) {
	if appErr.Err != nil {
		_ = c.Error(appErr.Err)
	}
	c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
}

func invalidRequest(c *gin.Context, err error) {
	abortWithError(c, errInvalidRequest.WithDetails(err))
}
