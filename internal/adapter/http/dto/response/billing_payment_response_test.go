package response

import (
	"encoding/json"
	"testing"
	"time"

	"lab_management/internal/domain/entities"
)

func TestFromBillingPayment(t *testing.T) {
	now := time.Now().UTC()
	payload := map[string]interface{}{"a": "b"}
	raw := json.RawMessage(`{"id":123}`)

	p := entities.BillingPayment{
		ID:                 "pay-1",
		ResultID:           "res-1",
		ResultNo:           "LAB00001",
		Amount:             65,
		Date:               now,
		Status:             entities.PaymentStatusApproved,
		ProviderPayloadRaw: raw,
		ProviderPayload:    payload,
	}

	res := FromBillingPayment(p)
	if res.ID != "pay-1" || res.ResultID != "res-1" || res.ResultNo != "LAB00001" {
		t.Fatalf("unexpected ids: %+v", res)
	}
	if res.Amount != 65 || res.Status != "approved" {
		t.Fatalf("unexpected fields: %+v", res)
	}
	if !res.Date.Equal(now) {
		t.Fatalf("unexpected date: %+v", res)
	}
	if res.MPPayloadRaw != string(raw) {
		t.Fatalf("unexpected raw payload: %s", res.MPPayloadRaw)
	}
	if res.MPPayload["a"] != "b" {
		t.Fatalf("unexpected parsed payload: %+v", res.MPPayload)
	}
}
