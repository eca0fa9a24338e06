package response

import (
	"time"

	"lab_management/internal/domain/entities"
)

type BillingPaymentResponse struct {
	ID       string    `json:"id"`
	ResultID string    `json:"result_id"`
	ResultNo string    `json:"result_no"`
	Amount   float64   `json:"amount"`
	Date     time.Time `json:"date"`
	Status   string    `json:"status"`

	MPPayloadRaw string                 `json:"mp_payload_raw,omitempty"`
	MPPayload    map[string]interface{} `json:"mp_payload,omitempty"`
}

func FromBillingPayment(p entities.BillingPayment) BillingPaymentResponse {
	return BillingPaymentResponse{
		ID:           p.ID,
		ResultID:     p.ResultID,
		ResultNo:     p.ResultNo,
		Amount:       p.Amount,
		Date:         p.Date,
		Status:       string(p.Status),
		MPPayloadRaw: string(p.ProviderPayloadRaw),
		MPPayload:    p.ProviderPayload,
	}
}
