package handlers

import (
	"errors"
	"net/http"

	request "lab_management/internal/adapter/http/dto/request"
	response "lab_management/internal/adapter/http/dto/response"
	"lab_management/internal/adapter/http/middleware"
	"lab_management/internal/domain/entities"
	"lab_management/internal/domain/workflow"
	"lab_management/internal/usecase"
	"lab_management/pkg"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

// TestResultHandler exposes the result workflow: opening results, editing
// the selection, values, amounts and patient details, and the lifecycle
// actions.
type TestResultHandler struct {
	usecase usecase.ITestResultUseCase
}

func NewTestResultHandler(uc usecase.ITestResultUseCase) *TestResultHandler {
	return &TestResultHandler{usecase: uc}
}

func (h *TestResultHandler) Create(c *gin.Context) {
	var payload request.CreateResultRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		invalidRequest(c, err)
		return
	}
	created, err := h.usecase.Create(c.Request.Context(), payload.ToInput())
	if err != nil {
		abortWithError(c, mapTestResultError(err))
		return
	}
	c.JSON(http.StatusCreated, response.FromTestResult(created))
}

// Preview returns the synchronized lines and bill without storing anything.
func (h *TestResultHandler) Preview(c *gin.Context) {
	var payload request.PreviewResultRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		invalidRequest(c, err)
		return
	}
	preview, err := h.usecase.Preview(c.Request.Context(), payload.ToEntity())
	if err != nil {
		abortWithError(c, mapTestResultError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromTestResult(preview))
}

// List accepts optional state and patient_id query filters.
func (h *TestResultHandler) List(c *gin.Context) {
	f := entities.ResultFilter{
		State:     entities.ResultState(c.Query("state")),
		PatientID: c.Query("patient_id"),
	}
	list, err := h.usecase.List(c.Request.Context(), f)
	if err != nil {
		abortWithError(c, mapTestResultError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromTestResults(list))
}

func (h *TestResultHandler) Get(c *gin.Context) {
	r, err := h.usecase.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		abortWithError(c, mapTestResultError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromTestResult(r))
}

func (h *TestResultHandler) UpdateTests(c *gin.Context) {
	var payload request.UpdateTestsRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		invalidRequest(c, err)
		return
	}
	r, err := h.usecase.UpdateTests(c.Request.Context(), c.Param("id"), payload.TestIDs)
	if err != nil {
		abortWithError(c, mapTestResultError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromTestResult(r))
}

func (h *TestResultHandler) RecordValues(c *gin.Context) {
	var payload request.RecordValuesRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		invalidRequest(c, err)
		return
	}
	r, err := h.usecase.RecordValues(c.Request.Context(), c.Param("id"), payload.Values)
	if err != nil {
		abortWithError(c, mapTestResultError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromTestResult(r))
}

func (h *TestResultHandler) OverrideBillAmount(c *gin.Context) {
	var payload request.BillLineAmountRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		invalidRequest(c, err)
		return
	}
	r, err := h.usecase.OverrideBillAmount(c.Request.Context(), c.Param("id"), c.Param("line_id"), *payload.Amount)
	if err != nil {
		abortWithError(c, mapTestResultError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromTestResult(r))
}

func (h *TestResultHandler) UpdateDemographics(c *gin.Context) {
	var payload request.DemographicsRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		invalidRequest(c, err)
		return
	}
	r, err := h.usecase.UpdateDemographics(c.Request.Context(), c.Param("id"), payload.ToEntity())
	if err != nil {
		abortWithError(c, mapTestResultError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromTestResult(r))
}

// ApplyAction runs one lifecycle action with the caller's capabilities.
func (h *TestResultHandler) ApplyAction(c *gin.Context) {
	action, err := workflow.ParseAction(c.Param("action"))
	if err != nil {
		abortWithError(c, pkg.NewDomainError("UNKNOWN_ACTION", "Unknown result action", err, http.StatusNotFound))
		return
	}
	caps := middleware.CapabilitiesFrom(c)
	r, err := h.usecase.ApplyAction(c.Request.Context(), c.Param("id"), action, caps)
	if err != nil {
		log.Debug().Err(err).Str("component", "result.handler").Str("result_id", c.Param("id")).
			Str("action", string(action)).Str("subject", middleware.SubjectFrom(c)).Msg("action rejected")
		abortWithError(c, mapTestResultError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromTestResult(r))
}

func mapTestResultError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrResultNotFound):
		return pkg.NewDomainErrorSimple("RESULT_NOT_FOUND", "Test result not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrResultLineNotFound):
		return pkg.NewDomainError("RESULT_LINE_NOT_FOUND", "Result line not found", err, http.StatusNotFound)
	case errors.Is(err, usecase.ErrBillLineNotFound):
		return pkg.NewDomainError("BILL_LINE_NOT_FOUND", "Bill line not found", err, http.StatusNotFound)
	case errors.Is(err, usecase.ErrPatientNotFound):
		return pkg.NewDomainErrorSimple("PATIENT_NOT_FOUND", "Patient not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrResultConflict):
		return pkg.NewDomainErrorSimple("RESULT_CONFLICT", "Result was changed by another request; reload and retry", http.StatusConflict)
	case errors.Is(err, workflow.ErrCancelNotManager):
		return pkg.NewDomainError("FORBIDDEN", "Only a manager may cancel", err, http.StatusForbidden)
	}
	if appErr, ok := mapDomainError(err); ok {
		return appErr
	}
	return internalError(err)
}
