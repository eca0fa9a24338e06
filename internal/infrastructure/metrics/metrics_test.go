package metrics

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestMetrics_Counters(t *testing.T) {
	m := New()
	m.TransitionObserved("save_and_bill", "applied")
	m.TransitionObserved("save_and_bill", "applied")
	m.TransitionObserved("cancel_test", "rejected")
	m.LinesSynced("result_line_ids", "add", 3)
	m.LinesSynced("result_line_ids", "remove", 0)

	if got := testutil.ToFloat64(m.transitionsTotal.WithLabelValues("save_and_bill", "applied")); got != 2 {
		t.Fatalf("expected 2 applied transitions, got %v", got)
	}
	if got := testutil.ToFloat64(m.lineSyncChanges.WithLabelValues("result_line_ids", "add")); got != 3 {
		t.Fatalf("expected 3 added lines, got %v", got)
	}
	if got := testutil.CollectAndCount(m.lineSyncChanges); got != 1 {
		t.Fatalf("zero-sized changes must not create series, got %d", got)
	}
}

func TestMetrics_MiddlewareAndHandler(t *testing.T) {
	gin.SetMode(gin.TestMode)
	m := New()

	r := gin.New()
	r.Use(m.Middleware())
	r.GET("/v1/results/:id", func(c *gin.Context) { c.Status(http.StatusOK) })
	r.GET("/metrics", gin.WrapH(m.Handler()))

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/v1/results/abc", nil))
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	body := w.Body.String()
	if !strings.Contains(body, `http_requests_total{endpoint="/v1/results/:id",method="GET",status_code="200"} 1`) {
		t.Fatalf("request not counted by route template:\n%s", body)
	}
}
