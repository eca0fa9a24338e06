package request

import "encoding/json"

// BillingPaymentCreateRequest is the optional envelope of the pay route.
//
// `mp_payload` is forwarded to Mercado Pago as raw JSON; a body without the
// envelope is taken as the payload itself.
type BillingPaymentCreateRequest struct {
	MPPayload json.RawMessage `json:"mp_payload"`
}
