package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"lab_management/internal/domain/entities"
	"lab_management/internal/usecase/interfaces"

	"github.com/rs/zerolog/log"
)

const componentPayment = "payment.usecase"

var (
	ErrBillingPaymentNotFound         = errors.New("billing payment not found")
	ErrInvalidPaymentResultID         = errors.New("invalid result_id")
	ErrInvalidMPPayload               = errors.New("invalid mercado pago payload")
	ErrResultNotBilled                = errors.New("result has not been billed")
	ErrNothingToPay                   = errors.New("result bill total is zero")
	ErrResultAlreadyPaid              = errors.New("result already has an approved payment")
	ErrPaymentGatewayNotConfigured    = errors.New("payment gateway not configured")
	ErrPaymentGatewayBadRequest       = errors.New("payment gateway bad request")
	ErrPaymentGatewayUnauthorized     = errors.New("payment gateway unauthorized")
	ErrPaymentGatewayInvalidUsers     = errors.New("payment gateway invalid users involved")
	ErrPaymentGatewayCustomerNotFound = errors.New("payment gateway customer not found")
)

// PaymentOptions tunes how payer data is completed before it is sent to the
// provider.
//
// In Mock mode the payload is not checked for payer or payment method, since
// the gateway approves everything.
type PaymentOptions struct {
	Mock            bool
	SandboxToken    bool
	TestPayerEmail  string
	TestPayerUserID string
}

// IBillingPaymentUseCase settles the bill of a result through the payment
// provider and keeps the provider response.
type IBillingPaymentUseCase interface {
	CreateAndApprove(ctx context.Context, resultID string, mpPayload json.RawMessage) (entities.BillingPayment, error)
	GetByID(ctx context.Context, id string) (entities.BillingPayment, error)
	ListByResultID(ctx context.Context, resultID string) ([]entities.BillingPayment, error)
}

type BillingPaymentUseCase struct {
	repo    interfaces.IBillingPaymentRepository
	results interfaces.ITestResultRepository
	gateway interfaces.IPaymentGateway
	opts    PaymentOptions
}

var _ IBillingPaymentUseCase = (*BillingPaymentUseCase)(nil)

func NewBillingPaymentUseCase(repo interfaces.IBillingPaymentRepository, results interfaces.ITestResultRepository, gateway interfaces.IPaymentGateway, opts PaymentOptions) *BillingPaymentUseCase {
	return &BillingPaymentUseCase{repo: repo, results: results, gateway: gateway, opts: opts}
}

// CreateAndApprove charges the current total of a billed result. The amount
// and external reference always come from the stored result, whatever the
// caller put in the payload. A result is charged at most once: after an
// approved payment every further attempt is rejected.
func (u *BillingPaymentUseCase) CreateAndApprove(ctx context.Context, resultID string, mpPayload json.RawMessage) (entities.BillingPayment, error) {
	resultID = strings.TrimSpace(resultID)
	logger := log.With().Str("component", componentPayment).Str("result_id", resultID).Logger()
	logger.Info().Int("payload_len", len(mpPayload)).Msg("create-and-approve start")

	if resultID == "" {
		return entities.BillingPayment{}, ErrInvalidPaymentResultID
	}
	if len(mpPayload) == 0 || !json.Valid(mpPayload) {
		if !u.opts.Mock {
			logger.Warn().Msg("invalid payload")
			return entities.BillingPayment{}, ErrInvalidMPPayload
		}
		mpPayload = json.RawMessage("{}")
	}
	if u.gateway == nil {
		logger.Error().Msg("gateway not configured")
		return entities.BillingPayment{}, ErrPaymentGatewayNotConfigured
	}

	r, err := u.results.GetByID(ctx, resultID)
	if err != nil {
		logger.Error().Err(err).Msg("failed loading result")
		return entities.BillingPayment{}, err
	}
	if r.ID == "" {
		return entities.BillingPayment{}, ErrResultNotFound
	}
	switch r.State {
	case entities.ResultStateBilled, entities.ResultStateInProgress, entities.ResultStateDone:
	default:
		logger.Info().Str("state", string(r.State)).Msg("result not payable")
		return entities.BillingPayment{}, ErrResultNotBilled
	}
	amount := r.TotalAmount()
	if amount <= 0 {
		return entities.BillingPayment{}, ErrNothingToPay
	}
	paid, err := u.approvedPayment(ctx, r.ID)
	if err != nil {
		logger.Error().Err(err).Msg("failed loading result payments")
		return entities.BillingPayment{}, err
	}
	if paid.ID != "" {
		logger.Info().Str("payment_id", paid.ID).Msg("result already paid")
		return entities.BillingPayment{}, ErrResultAlreadyPaid
	}

	var reqMap map[string]any
	if err := json.Unmarshal(mpPayload, &reqMap); err != nil || reqMap == nil {
		logger.Warn().Err(err).Msg("payload is not a json object")
		return entities.BillingPayment{}, ErrInvalidMPPayload
	}
	if !u.opts.Mock {
		if !hasNonEmptyString(reqMap, "payment_method_id") {
			logger.Warn().Msg("missing payment_method_id")
			return entities.BillingPayment{}, ErrInvalidMPPayload
		}
		u.normalizeSandboxPayer(reqMap)
		u.ensurePayerDefaults(reqMap, r.Demographics)
		if !hasPayer(reqMap) {
			logger.Warn().Msg("missing or invalid payer")
			return entities.BillingPayment{}, ErrInvalidMPPayload
		}
	}
	reqMap["external_reference"] = r.ResultNo
	if _, ok := reqMap["description"]; !ok {
		reqMap["description"] = fmt.Sprintf("Lab result %s", r.ResultNo)
	}
	reqMap["transaction_amount"] = amount
	mpPayload, err = json.Marshal(reqMap)
	if err != nil {
		return entities.BillingPayment{}, err
	}

	providerPaymentID, providerStatus, providerResp, err := u.gateway.CreatePayment(ctx, mpPayload)
	if err != nil {
		logger.Error().Err(err).Msg("payment gateway failed")
		return entities.BillingPayment{}, classifyGatewayError(err)
	}
	logger.Info().Str("provider_payment_id", providerPaymentID).Str("provider_status", providerStatus).Msg("payment gateway success")

	var parsed map[string]interface{}
	if err := json.Unmarshal(providerResp, &parsed); err != nil {
		logger.Warn().Err(err).Msg("provider response unmarshal failed")
	}

	p := entities.BillingPayment{
		ID:                 providerPaymentID,
		ResultID:           r.ID,
		ResultNo:           r.ResultNo,
		Amount:             amount,
		Date:               time.Now().UTC(),
		Status:             paymentStatusFromProvider(providerStatus),
		ProviderPayloadRaw: providerResp,
		ProviderPayload:    parsed,
	}

	created, err := u.repo.Create(ctx, p)
	if err != nil {
		logger.Error().Err(err).Str("payment_id", p.ID).Msg("payment repository create failed")
		return entities.BillingPayment{}, err
	}
	logger.Info().Str("payment_id", created.ID).Str("status", string(created.Status)).Float64("amount", amount).Msg("create-and-approve success")
	return created, nil
}

func (u *BillingPaymentUseCase) GetByID(ctx context.Context, id string) (entities.BillingPayment, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.BillingPayment{}, ErrBillingPaymentNotFound
	}

	p, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.BillingPayment{}, err
	}
	if p.ID == "" {
		return entities.BillingPayment{}, ErrBillingPaymentNotFound
	}
	return p, nil
}

// ListByResultID returns the payments of a result, newest first.
func (u *BillingPaymentUseCase) ListByResultID(ctx context.Context, resultID string) ([]entities.BillingPayment, error) {
	resultID = strings.TrimSpace(resultID)
	if resultID == "" {
		return nil, ErrInvalidPaymentResultID
	}
	payments, err := u.repo.ListByResultID(ctx, resultID)
	if err != nil {
		return nil, err
	}
	sort.SliceStable(payments, func(i, j int) bool { return payments[i].Date.After(payments[j].Date) })
	return payments, nil
}

// approvedPayment returns the approved payment of a result, or a zero payment
// when there is none.
func (u *BillingPaymentUseCase) approvedPayment(ctx context.Context, resultID string) (entities.BillingPayment, error) {
	payments, err := u.repo.ListByResultID(ctx, resultID)
	if err != nil {
		return entities.BillingPayment{}, err
	}
	for _, p := range payments {
		if p.Status == entities.PaymentStatusApproved {
			return p, nil
		}
	}
	return entities.BillingPayment{}, nil
}

func paymentStatusFromProvider(status string) entities.PaymentStatus {
	switch strings.ToLower(strings.TrimSpace(status)) {
	case "approved", "accredited":
		return entities.PaymentStatusApproved
	case "rejected", "cancelled", "refunded", "charged_back":
		return entities.PaymentStatusDenied
	default:
		return entities.PaymentStatusPending
	}
}

func hasNonEmptyString(m map[string]any, key string) bool {
	s, ok := m[key].(string)
	return ok && strings.TrimSpace(s) != ""
}

func hasPayer(m map[string]any) bool {
	payer, ok := m["payer"].(map[string]any)
	if !ok {
		return false
	}
	return hasNonEmptyString(payer, "email") || hasPayerID(payer)
}

func hasPayerID(payer map[string]any) bool {
	v, ok := payer["id"]
	if !ok || v == nil {
		return false
	}
	s := strings.TrimSpace(fmt.Sprintf("%v", v))
	return s != "" && s != "<nil>"
}

// ensurePayerDefaults fills the payer email from the result's patient, then
// from the configured sandbox payer.
func (u *BillingPaymentUseCase) ensurePayerDefaults(m map[string]any, d entities.Demographics) {
	payer, ok := m["payer"].(map[string]any)
	if !ok {
		payer = map[string]any{}
		m["payer"] = payer
	}
	if _, ok := payer["type"]; !ok {
		payer["type"] = "customer"
	}
	if hasPayerID(payer) || hasNonEmptyString(payer, "email") {
		return
	}
	switch {
	case d.Email != "":
		payer["email"] = d.Email
	case u.opts.TestPayerEmail != "":
		payer["email"] = u.opts.TestPayerEmail
	case u.opts.SandboxToken:
		payer["email"] = "test_user_br@testuser.com"
	}
}

// normalizeSandboxPayer swaps the configured sandbox payer user id for its
// email, which is what the sandbox accepts.
func (u *BillingPaymentUseCase) normalizeSandboxPayer(m map[string]any) {
	payer, ok := m["payer"].(map[string]any)
	if !ok || !u.opts.SandboxToken {
		return
	}
	if !hasPayerID(payer) || hasNonEmptyString(payer, "email") {
		return
	}
	if u.opts.TestPayerUserID == "" || u.opts.TestPayerEmail == "" {
		return
	}
	if strings.TrimSpace(fmt.Sprintf("%v", payer["id"])) != u.opts.TestPayerUserID {
		return
	}
	payer["email"] = u.opts.TestPayerEmail
	delete(payer, "id")
	log.Debug().Str("component", componentPayment).Msg("mapped sandbox payer user_id to payer.email")
}

func classifyGatewayError(err error) error {
	msg := strings.ToLower(err.Error())
	switch {
	case strings.Contains(msg, "customer not found") || strings.Contains(msg, "\"code\":2002"):
		return ErrPaymentGatewayCustomerNotFound
	case strings.Contains(msg, "invalid users involved") || strings.Contains(msg, "\"code\":2034"):
		return ErrPaymentGatewayInvalidUsers
	case strings.Contains(msg, "\"error\":\"unauthorized\"") || strings.Contains(msg, "\"status\":401"):
		return ErrPaymentGatewayUnauthorized
	case strings.Contains(msg, "\"error\":\"bad_request\"") || strings.Contains(msg, "\"status\":400"):
		return ErrPaymentGatewayBadRequest
	}
	return err
}
