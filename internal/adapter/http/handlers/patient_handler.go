package handlers

import (
	"errors"
	"net/http"

	request "lab_management/internal/adapter/http/dto/request"
	"lab_management/internal/usecase"
	"lab_management/pkg"

	"github.com/gin-gonic/gin"
)

type PatientHandler struct {
	usecase usecase.IPatientUseCase
}

func NewPatientHandler(uc usecase.IPatientUseCase) *PatientHandler {
	return &PatientHandler{usecase: uc}
}

func (h *PatientHandler) Register(c *gin.Context) {
	var payload request.PatientRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		invalidRequest(c, err)
		return
	}
	created, err := h.usecase.Register(c.Request.Context(), payload.ToEntity(""))
	if err != nil {
		abortWithError(c, mapPatientError(err))
		return
	}
	c.JSON(http.StatusCreated, created)
}

func (h *PatientHandler) List(c *gin.Context) {
	list, err := h.usecase.List(c.Request.Context())
	if err != nil {
		abortWithError(c, mapPatientError(err))
		return
	}
	c.JSON(http.StatusOK, list)
}

func (h *PatientHandler) Get(c *gin.Context) {
	p, err := h.usecase.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		abortWithError(c, mapPatientError(err))
		return
	}
	c.JSON(http.StatusOK, p)
}

func (h *PatientHandler) Update(c *gin.Context) {
	var payload request.PatientRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		invalidRequest(c, err)
		return
	}
	updated, err := h.usecase.Update(c.Request.Context(), payload.ToEntity(c.Param("id")))
	if err != nil {
		abortWithError(c, mapPatientError(err))
		return
	}
	c.JSON(http.StatusOK, updated)
}

func mapPatientError(err error) *pkg.AppError {
	if errors.Is(err, usecase.ErrPatientNotFound) {
		return pkg.NewDomainErrorSimple("PATIENT_NOT_FOUND", "Patient not found", http.StatusNotFound)
	}
	if appErr, ok := mapDomainError(err); ok {
		return appErr
	}
	return internalError(err)
}
