package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"lab_management/internal/adapter/http/handlers/mocks"
	"lab_management/internal/domain/entities"
	"lab_management/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

type failingReadCloser struct{}

func (failingReadCloser) Read(_ []byte) (int, error) { return 0, errors.New("read error") }
func (failingReadCloser) Close() error               { return nil }

func paymentRouter(h *BillingPaymentHandler) *gin.Engine {
	r := gin.New()
	r.POST("/v1/payments/:result_id", h.CreatePaymentByResultID)
	r.GET("/v1/payments/:result_id", h.GetPaymentByResultID)
	return r
}

func TestBillingPaymentHandler_CreatePaymentByResultID(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("invalid payload", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIBillingPaymentUseCase(ctrl)
		r := paymentRouter(NewBillingPaymentHandler(uc, false))

		req := httptest.NewRequest(http.MethodPost, "/v1/payments/res-1", bytes.NewBufferString("{"))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("invalid payload in mock mode falls back to empty payload", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIBillingPaymentUseCase(ctrl)
		r := paymentRouter(NewBillingPaymentHandler(uc, true))

		uc.EXPECT().CreateAndApprove(gomock.Any(), "res-1", json.RawMessage("{}")).
			Return(entities.BillingPayment{ID: "pay-1", ResultID: "res-1", Status: entities.PaymentStatusApproved}, nil)

		req := httptest.NewRequest(http.MethodPost, "/v1/payments/res-1", bytes.NewBufferString("{"))
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", w.Code)
		}
	})

	t.Run("result not billed", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIBillingPaymentUseCase(ctrl)
		r := paymentRouter(NewBillingPaymentHandler(uc, false))

		uc.EXPECT().CreateAndApprove(gomock.Any(), "res-1", gomock.Any()).Return(entities.BillingPayment{}, usecase.ErrResultNotBilled)

		req := httptest.NewRequest(http.MethodPost, "/v1/payments/res-1", bytes.NewBufferString(`{"payment_method_id":"pix","payer":{"email":"x@test.com"}}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIBillingPaymentUseCase(ctrl)
		r := paymentRouter(NewBillingPaymentHandler(uc, false))

		now := time.Now().UTC()
		uc.EXPECT().CreateAndApprove(gomock.Any(), "res-1", json.RawMessage(`{"payment_method_id":"pix","payer":{"email":"x@test.com"}}`)).
			Return(entities.BillingPayment{ID: "pay-1", ResultID: "res-1", ResultNo: "LAB00001", Amount: 65, Date: now, Status: entities.PaymentStatusApproved}, nil)

		req := httptest.NewRequest(http.MethodPost, "/v1/payments/res-1", bytes.NewBufferString(`{"mp_payload":{"payment_method_id":"pix","payer":{"email":"x@test.com"}}}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", w.Code)
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["id"] != "pay-1" || body["result_no"] != "LAB00001" || body["amount"] != 65.0 {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})
}

func TestBillingPaymentHandler_GetPaymentByResultID(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("list error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIBillingPaymentUseCase(ctrl)
		r := paymentRouter(NewBillingPaymentHandler(uc, false))

		uc.EXPECT().ListByResultID(gomock.Any(), "res-1").Return(nil, usecase.ErrInvalidPaymentResultID)

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/v1/payments/res-1", nil))

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIBillingPaymentUseCase(ctrl)
		r := paymentRouter(NewBillingPaymentHandler(uc, false))

		uc.EXPECT().ListByResultID(gomock.Any(), "res-1").Return([]entities.BillingPayment{}, nil)

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/v1/payments/res-1", nil))

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("success returns newest", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIBillingPaymentUseCase(ctrl)
		r := paymentRouter(NewBillingPaymentHandler(uc, false))

		latest := entities.BillingPayment{ID: "latest", ResultID: "res-1", Date: time.Now(), Status: entities.PaymentStatusApproved}
		old := entities.BillingPayment{ID: "old", ResultID: "res-1", Date: time.Now().Add(-time.Hour), Status: entities.PaymentStatusPending}
		uc.EXPECT().ListByResultID(gomock.Any(), "res-1").Return([]entities.BillingPayment{latest, old}, nil)

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/v1/payments/res-1", nil))

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["id"] != "latest" {
			t.Fatalf("expected latest payment, got body: %s", w.Body.String())
		}
	})
}

func TestReadMPPayload(t *testing.T) {
	gin.SetMode(gin.TestMode)

	newContext := func(raw string) *gin.Context {
		c, _ := gin.CreateTestContext(httptest.NewRecorder())
		c.Request = httptest.NewRequest(http.MethodPost, "/v1/payments/res-1", bytes.NewBufferString(raw))
		c.Request.Header.Set("Content-Type", "application/json")
		return c
	}

	cases := []struct {
		name    string
		body    string
		want    string
		wantErr bool
	}{
		{name: "blank body", body: "  \n", want: "{}"},
		{name: "broken json", body: `{"payer":`, wantErr: true},
		{name: "null envelope", body: `{"mp_payload":null}`, wantErr: true},
		{name: "envelope", body: `{"mp_payload":{"payment_method_id":"pix"}}`, want: `{"payment_method_id":"pix"}`},
		{name: "bare payload", body: `{"payer":{"email":"lab@test.com"}}`, want: `{"payer":{"email":"lab@test.com"}}`},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := readMPPayload(newContext(tc.body))
			if tc.wantErr {
				if err == nil {
					t.Fatalf("expected an error, got payload %s", got)
				}
				return
			}
			if err != nil || string(got) != tc.want {
				t.Fatalf("expected %s, got %s (err=%v)", tc.want, got, err)
			}
		})
	}

	t.Run("unreadable body", func(t *testing.T) {
		c := newContext("{}")
		c.Request.Body = failingReadCloser{}
		if _, err := readMPPayload(c); err == nil {
			t.Fatalf("expected a read error")
		}
	})
}

func TestMapBillingPaymentError(t *testing.T) {
	cases := []struct {
		err  error
		code int
	}{
		{usecase.ErrInvalidPaymentResultID, http.StatusBadRequest},
		{usecase.ErrInvalidMPPayload, http.StatusBadRequest},
		{usecase.ErrPaymentGatewayBadRequest, http.StatusBadRequest},
		{usecase.ErrPaymentGatewayCustomerNotFound, http.StatusBadRequest},
		{usecase.ErrPaymentGatewayInvalidUsers, http.StatusBadRequest},
		{usecase.ErrPaymentGatewayUnauthorized, http.StatusBadGateway},
		{usecase.ErrPaymentGatewayNotConfigured, http.StatusServiceUnavailable},
		{usecase.ErrResultNotFound, http.StatusNotFound},
		{usecase.ErrResultNotBilled, http.StatusConflict},
		{usecase.ErrNothingToPay, http.StatusConflict},
		{usecase.ErrResultAlreadyPaid, http.StatusConflict},
		{usecase.ErrBillingPaymentNotFound, http.StatusNotFound},
		{errors.New("other"), http.StatusInternalServerError},
	}

	for _, tc := range cases {
		got := mapBillingPaymentError(tc.err)
		if got.HTTPStatus != tc.code {
			t.Fatalf("for err %v expected %d got %d", tc.err, tc.code, got.HTTPStatus)
		}
	}
}
