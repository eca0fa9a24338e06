package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"lab_management/internal/adapter/http/handlers/mocks"
	"lab_management/internal/adapter/http/middleware"
	"lab_management/internal/domain/entities"
	"lab_management/internal/domain/workflow"
	"lab_management/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func resultRouter(h *TestResultHandler) *gin.Engine {
	r := gin.New()
	g := r.Group("/v1", middleware.Auth(middleware.AuthConfig{ManagerRoles: []string{"lab_manager"}}))
	g.POST("/results", h.Create)
	g.POST("/results/preview", h.Preview)
	g.GET("/results", h.List)
	g.GET("/results/:id", h.Get)
	g.PUT("/results/:id/tests", h.UpdateTests)
	g.PATCH("/results/:id/values", h.RecordValues)
	g.PATCH("/results/:id/bill-lines/:line_id", h.OverrideBillAmount)
	g.PUT("/results/:id/patient", h.UpdateDemographics)
	g.POST("/results/:id/actions/:action", h.ApplyAction)
	return r
}

func doJSON(r http.Handler, method, path, body string, headers ...string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
	}
	for i := 0; i+1 < len(headers); i += 2 {
		req.Header.Set(headers[i], headers[i+1])
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

var billedCBC = entities.TestResult{
	ID:       "res-1",
	ResultNo: "LAB00001",
	State:    entities.ResultStateBilled,
	TestIDs:  []string{"cbc"},
	ResultLines: []entities.ResultLine{
		{ID: "rl-hb", ParameterID: "hb", ParameterName: "Hemoglobin", Value: "14.2"},
	},
	BillLines: []entities.BillLine{{ID: "bl-cbc", TestTypeID: "cbc", Amount: 25}},
}

func TestTestResultHandler_Create(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("typed demographics", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockITestResultUseCase(ctrl)
		r := resultRouter(NewTestResultHandler(uc))

		uc.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(func(_ any, in usecase.CreateResultInput) (entities.TestResult, error) {
			if in.Demographics.Name != "John Doe" || in.Demographics.Age != 34 || len(in.TestIDs) != 1 {
				t.Fatalf("unexpected input: %+v", in)
			}
			return entities.TestResult{ID: "res-1", ResultNo: "LAB00001", State: entities.ResultStateDraft, TestIDs: in.TestIDs,
				BillLines: []entities.BillLine{{ID: "bl-cbc", TestTypeID: "cbc", Amount: 25}}}, nil
		})

		w := doJSON(r, http.MethodPost, "/v1/results", `{"patient":{"patient_name":"John Doe","age":34,"gender":"male"},"test_ids":["cbc"]}`)
		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d (%s)", w.Code, w.Body.String())
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["result_no"] != "LAB00001" || body["total_amount"] != 25.0 {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})

	t.Run("sequence not configured", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockITestResultUseCase(ctrl)
		r := resultRouter(NewTestResultHandler(uc))

		uc.EXPECT().Create(gomock.Any(), gomock.Any()).
			Return(entities.TestResult{}, entities.NewConfigurationError("result number sequence is not configured", errors.New("missing")))

		w := doJSON(r, http.MethodPost, "/v1/results", `{"patient_id":"pat-1","test_ids":[]}`)
		if w.Code != http.StatusServiceUnavailable {
			t.Fatalf("expected 503, got %d", w.Code)
		}
	})

	t.Run("malformed body", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockITestResultUseCase(ctrl)
		r := resultRouter(NewTestResultHandler(uc))

		w := doJSON(r, http.MethodPost, "/v1/results", `{"test_ids":"cbc"}`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})
}

func TestTestResultHandler_UpdateTests(t *testing.T) {
	gin.SetMode(gin.TestMode)

	cases := []struct {
		name   string
		err    error
		status int
	}{
		{name: "success", status: http.StatusOK},
		{name: "finalized", err: workflow.ErrResultFinalized, status: http.StatusUnprocessableEntity},
		{name: "unknown test", err: workflow.ErrUnknownTest, status: http.StatusUnprocessableEntity},
		{name: "anomaly", err: &entities.AnomalyError{Collection: workflow.CollectionResultLines, Key: "hb", Reason: "duplicate"}, status: http.StatusConflict},
		{name: "conflict", err: usecase.ErrResultConflict, status: http.StatusConflict},
		{name: "not found", err: usecase.ErrResultNotFound, status: http.StatusNotFound},
		{name: "store failure", err: errors.New("dynamodb down"), status: http.StatusInternalServerError},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			uc := mocks.NewMockITestResultUseCase(ctrl)
			r := resultRouter(NewTestResultHandler(uc))

			ret := entities.TestResult{}
			if tc.err == nil {
				ret = billedCBC
			}
			uc.EXPECT().UpdateTests(gomock.Any(), "res-1", []string{"cbc", "lft"}).Return(ret, tc.err)

			w := doJSON(r, http.MethodPut, "/v1/results/res-1/tests", `{"test_ids":["cbc","lft"]}`)
			if w.Code != tc.status {
				t.Fatalf("expected %d, got %d (%s)", tc.status, w.Code, w.Body.String())
			}
		})
	}
}

func TestTestResultHandler_UpdateTestsRequiresSelection(t *testing.T) {
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc := mocks.NewMockITestResultUseCase(ctrl)
	r := resultRouter(NewTestResultHandler(uc))

	w := doJSON(r, http.MethodPut, "/v1/results/res-1/tests", `{}`)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}
}

func TestTestResultHandler_LineEdits(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("record values", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockITestResultUseCase(ctrl)
		r := resultRouter(NewTestResultHandler(uc))

		uc.EXPECT().RecordValues(gomock.Any(), "res-1", map[string]string{"rl-hb": "14.2"}).Return(billedCBC, nil)

		w := doJSON(r, http.MethodPatch, "/v1/results/res-1/values", `{"values":{"rl-hb":"14.2"}}`)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("unknown line", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockITestResultUseCase(ctrl)
		r := resultRouter(NewTestResultHandler(uc))

		uc.EXPECT().RecordValues(gomock.Any(), "res-1", gomock.Any()).Return(entities.TestResult{}, usecase.ErrResultLineNotFound)

		w := doJSON(r, http.MethodPatch, "/v1/results/res-1/values", `{"values":{"nope":"1"}}`)
		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("override amount", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockITestResultUseCase(ctrl)
		r := resultRouter(NewTestResultHandler(uc))

		uc.EXPECT().OverrideBillAmount(gomock.Any(), "res-1", "bl-cbc", 0.0).Return(billedCBC, nil)

		w := doJSON(r, http.MethodPatch, "/v1/results/res-1/bill-lines/bl-cbc", `{"amount":0}`)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d (%s)", w.Code, w.Body.String())
		}
	})

	t.Run("override amount missing", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockITestResultUseCase(ctrl)
		r := resultRouter(NewTestResultHandler(uc))

		w := doJSON(r, http.MethodPatch, "/v1/results/res-1/bill-lines/bl-cbc", `{}`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("demographics of linked result", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockITestResultUseCase(ctrl)
		r := resultRouter(NewTestResultHandler(uc))

		uc.EXPECT().UpdateDemographics(gomock.Any(), "res-1", gomock.Any()).Return(entities.TestResult{}, usecase.ErrDemographicsLinked)

		w := doJSON(r, http.MethodPut, "/v1/results/res-1/patient", `{"patient_name":"Jane","age":30,"gender":"female"}`)
		if w.Code != http.StatusUnprocessableEntity {
			t.Fatalf("expected 422, got %d", w.Code)
		}
	})
}

func TestTestResultHandler_ApplyAction(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("manager capability comes from roles", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockITestResultUseCase(ctrl)
		r := resultRouter(NewTestResultHandler(uc))

		cancelled := billedCBC
		cancelled.State = entities.ResultStateCancel
		uc.EXPECT().ApplyAction(gomock.Any(), "res-1", workflow.ActionCancelTest, gomock.Any()).
			DoAndReturn(func(_ any, _ string, _ workflow.Action, caps workflow.Capabilities) (entities.TestResult, error) {
				if !caps.Has(workflow.CapabilityManager) {
					t.Fatalf("expected manager capability")
				}
				return cancelled, nil
			})

		w := doJSON(r, http.MethodPost, "/v1/results/res-1/actions/cancel_test", "", middleware.HeaderRoles, "lab_manager")
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["state"] != "cancel" {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})

	t.Run("non manager cancel is forbidden", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockITestResultUseCase(ctrl)
		r := resultRouter(NewTestResultHandler(uc))

		uc.EXPECT().ApplyAction(gomock.Any(), "res-1", workflow.ActionCancelTest, gomock.Any()).
			Return(entities.TestResult{}, workflow.ErrCancelNotManager)

		w := doJSON(r, http.MethodPost, "/v1/results/res-1/actions/cancel_test", "", middleware.HeaderRoles, "technician")
		if w.Code != http.StatusForbidden {
			t.Fatalf("expected 403, got %d", w.Code)
		}
	})

	t.Run("guard failure", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockITestResultUseCase(ctrl)
		r := resultRouter(NewTestResultHandler(uc))

		uc.EXPECT().ApplyAction(gomock.Any(), "res-1", workflow.ActionPrintResult, gomock.Any()).
			Return(entities.TestResult{}, workflow.ErrNoResultLines)

		w := doJSON(r, http.MethodPost, "/v1/results/res-1/actions/print_result", "")
		if w.Code != http.StatusUnprocessableEntity {
			t.Fatalf("expected 422, got %d", w.Code)
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["details"] != workflow.ErrNoResultLines.Error() {
			t.Fatalf("expected guard reason in details, got %s", w.Body.String())
		}
	})

	t.Run("unknown action", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockITestResultUseCase(ctrl)
		r := resultRouter(NewTestResultHandler(uc))

		w := doJSON(r, http.MethodPost, "/v1/results/res-1/actions/archive", "")
		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})
}

func TestTestResultHandler_ListAndGet(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("list with filters", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockITestResultUseCase(ctrl)
		r := resultRouter(NewTestResultHandler(uc))

		uc.EXPECT().List(gomock.Any(), entities.ResultFilter{State: entities.ResultStateBilled, PatientID: "pat-1"}).
			Return([]entities.TestResult{billedCBC}, nil)

		w := doJSON(r, http.MethodGet, "/v1/results?state=billed&patient_id=pat-1", "")
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body []map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if len(body) != 1 || body[0]["total_amount"] != 25.0 {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})

	t.Run("get not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockITestResultUseCase(ctrl)
		r := resultRouter(NewTestResultHandler(uc))

		uc.EXPECT().GetByID(gomock.Any(), "missing").Return(entities.TestResult{}, usecase.ErrResultNotFound)

		w := doJSON(r, http.MethodGet, "/v1/results/missing", "")
		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("preview", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockITestResultUseCase(ctrl)
		r := resultRouter(NewTestResultHandler(uc))

		uc.EXPECT().Preview(gomock.Any(), gomock.Any()).DoAndReturn(func(_ any, draft entities.TestResult) (entities.TestResult, error) {
			if draft.ID != "" || len(draft.TestIDs) != 2 {
				t.Fatalf("unexpected draft: %+v", draft)
			}
			draft.ResultLines = []entities.ResultLine{{ParameterID: "hb"}, {ParameterID: "alt"}}
			return draft, nil
		})

		w := doJSON(r, http.MethodPost, "/v1/results/preview", `{"test_ids":["cbc","lft"]}`)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})
}
