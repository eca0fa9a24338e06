package entities

import (
	"encoding/json"
	"time"
)

// PaymentStatus represents the payment processing outcome.
type PaymentStatus string

const (
	PaymentStatusPending  PaymentStatus = "pending"
	PaymentStatusApproved PaymentStatus = "approved"
	PaymentStatusDenied   PaymentStatus = "denied"
)

// BillingPayment settles the bill of a TestResult.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (result_id-index): result_id
//
// ProviderPayloadRaw keeps the provider response body for traceability;
// ProviderPayload is its parsed form, when it parses.
type BillingPayment struct {
	ID       string        `json:"id"`
	ResultID string        `json:"result_id"`
	ResultNo string        `json:"result_no"`
	Amount   float64       `json:"amount"`
	Date     time.Time     `json:"date"`
	Status   PaymentStatus `json:"status"`

	ProviderPayloadRaw json.RawMessage        `json:"provider_payload_raw,omitempty"`
	ProviderPayload    map[string]interface{} `json:"provider_payload,omitempty"`
}
