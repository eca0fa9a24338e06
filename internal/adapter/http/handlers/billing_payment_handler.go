package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	request "lab_management/internal/adapter/http/dto/request"
	response "lab_management/internal/adapter/http/dto/response"
	"lab_management/internal/usecase"
	"lab_management/pkg"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

const componentPaymentHandler = "payment.handler"

// BillingPaymentHandler handles HTTP requests for result payments.
type BillingPaymentHandler struct {
	usecase  usecase.IBillingPaymentUseCase
	mockMode bool
}

// NewBillingPaymentHandler builds the handler. In mock mode an unreadable
// body is replaced by an empty payload instead of being rejected.
func NewBillingPaymentHandler(uc usecase.IBillingPaymentUseCase, mockMode bool) *BillingPaymentHandler {
	return &BillingPaymentHandler{usecase: uc, mockMode: mockMode}
}

// CreatePaymentByResultID pays the current bill total of a result.
func (h *BillingPaymentHandler) CreatePaymentByResultID(c *gin.Context) {
	resultID := c.Param("result_id")
	logger := log.With().Str("component", componentPaymentHandler).Str("result_id", resultID).Logger()

	mpPayload, err := readMPPayload(c)
	if err != nil {
		if !h.mockMode {
			logger.Warn().Err(err).Msg("invalid payload")
			invalidRequest(c, err)
			return
		}
		logger.Debug().Err(err).Msg("payload invalid in mock mode; using empty payload")
		mpPayload = json.RawMessage("{}")
	}

	created, err := h.usecase.CreateAndApprove(c.Request.Context(), resultID, mpPayload)
	if err != nil {
		appErr := mapBillingPaymentError(err)
		logger.Warn().Err(err).Int("status", appErr.HTTPStatus).Msg("create failed")
		abortWithError(c, appErr)
		return
	}
	logger.Info().Str("payment_id", created.ID).Str("status", string(created.Status)).Msg("payment created")
	c.JSON(http.StatusCreated, response.FromBillingPayment(created))
}

// GetPaymentByResultID returns the latest payment of a result.
func (h *BillingPaymentHandler) GetPaymentByResultID(c *gin.Context) {
	resultID := c.Param("result_id")

	payments, err := h.usecase.ListByResultID(c.Request.Context(), resultID)
	if err != nil {
		abortWithError(c, mapBillingPaymentError(err))
		return
	}
	if len(payments) == 0 {
		abortWithError(c, mapBillingPaymentError(usecase.ErrBillingPaymentNotFound))
		return
	}

	// newest first
	c.JSON(http.StatusOK, response.FromBillingPayment(payments[0]))
}

func readMPPayload(c *gin.Context) (json.RawMessage, error) {
	raw, err := c.GetRawData()
	if err != nil {
		return nil, err
	}
	if len(strings.TrimSpace(string(raw))) == 0 {
		return json.RawMessage("{}"), nil
	}
	if !json.Valid(raw) {
		return nil, errors.New("request body is not valid json")
	}

	var envelope map[string]json.RawMessage
	if err := json.Unmarshal(raw, &envelope); err == nil {
		if _, ok := envelope["mp_payload"]; ok {
			var req request.BillingPaymentCreateRequest
			if err := json.Unmarshal(raw, &req); err != nil {
				return nil, err
			}
			wrapped := strings.TrimSpace(string(req.MPPayload))
			if wrapped == "" || wrapped == "null" {
				return nil, errors.New("mp_payload cannot be empty")
			}
			return req.MPPayload, nil
		}
	}
	return json.RawMessage(raw), nil
}

func mapBillingPaymentError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidPaymentResultID), errors.Is(err, usecase.ErrInvalidMPPayload), errors.Is(err, usecase.ErrPaymentGatewayBadRequest):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrPaymentGatewayCustomerNotFound):
		return pkg.NewDomainErrorSimple("PAYMENT_PROVIDER_CUSTOMER_NOT_FOUND", "Payer not found for this Mercado Pago test context", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrPaymentGatewayInvalidUsers):
		return pkg.NewDomainErrorSimple("PAYMENT_PROVIDER_INVALID_USERS", "Invalid users involved between seller token and payer test user", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrPaymentGatewayUnauthorized):
		return pkg.NewDomainErrorSimple("PAYMENT_PROVIDER_UNAUTHORIZED", "Payment provider unauthorized", http.StatusBadGateway)
	case errors.Is(err, usecase.ErrPaymentGatewayNotConfigured):
		return pkg.NewDomainErrorSimple("PAYMENT_PROVIDER_NOT_CONFIGURED", "Payment provider not configured", http.StatusServiceUnavailable)
	case errors.Is(err, usecase.ErrResultNotFound):
		return pkg.NewDomainErrorSimple("RESULT_NOT_FOUND", "Test result not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrResultNotBilled):
		return pkg.NewDomainErrorSimple("RESULT_NOT_BILLED", "Test result has not been billed", http.StatusConflict)
	case errors.Is(err, usecase.ErrResultAlreadyPaid):
		return pkg.NewDomainErrorSimple("RESULT_ALREADY_PAID", "Test result already has an approved payment", http.StatusConflict)
	case errors.Is(err, usecase.ErrNothingToPay):
		return pkg.NewDomainErrorSimple("NOTHING_TO_PAY", "Test result bill total is zero", http.StatusConflict)
	case errors.Is(err, usecase.ErrBillingPaymentNotFound):
		return pkg.NewDomainErrorSimple("PAYMENT_NOT_FOUND", "Payment not found", http.StatusNotFound)
	default:
		return internalError(err)
	}
}
