package middleware

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"lab_management/internal/domain/workflow"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/rs/zerolog"
)

var signingKey = []byte("test-signing-key")

func signToken(t *testing.T, key []byte, issuer string, roles ...string) string {
	t.Helper()
	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   "user-1",
			Issuer:    issuer,
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
		Roles: roles,
	}
	s, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(key)
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}
	return s
}

// capsRouter answers 200 with "manager" or "staff" depending on the
// resolved capabilities.
func capsRouter(cfg AuthConfig) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/whoami", Auth(cfg), func(c *gin.Context) {
		if CapabilitiesFrom(c).Has(workflow.CapabilityManager) {
			c.String(http.StatusOK, "manager:"+SubjectFrom(c))
			return
		}
		c.String(http.StatusOK, "staff:"+SubjectFrom(c))
	})
	return r
}

func TestAuth_Bearer(t *testing.T) {
	cfg := AuthConfig{SigningKey: signingKey, Issuer: "lab-management", ManagerRoles: []string{"lab_manager", "admin"}}
	r := capsRouter(cfg)

	cases := []struct {
		name   string
		header string
		status int
		body   string
	}{
		{name: "missing header", header: "", status: http.StatusUnauthorized},
		{name: "wrong scheme", header: "Basic abc", status: http.StatusUnauthorized},
		{name: "bad signature", header: "Bearer " + signToken(t, []byte("other"), "lab-management", "admin"), status: http.StatusUnauthorized},
		{name: "wrong issuer", header: "Bearer " + signToken(t, signingKey, "someone-else", "admin"), status: http.StatusUnauthorized},
		{name: "manager role", header: "Bearer " + signToken(t, signingKey, "lab-management", "Lab_Manager"), status: http.StatusOK, body: "manager:user-1"},
		{name: "staff role", header: "Bearer " + signToken(t, signingKey, "lab-management", "technician"), status: http.StatusOK, body: "staff:user-1"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
			if tc.header != "" {
				req.Header.Set("Authorization", tc.header)
			}
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)

			if w.Code != tc.status {
				t.Fatalf("expected %d, got %d (%s)", tc.status, w.Code, w.Body.String())
			}
			if tc.body != "" && w.Body.String() != tc.body {
				t.Fatalf("expected body %q, got %q", tc.body, w.Body.String())
			}
		})
	}
}

func TestAuth_DevelopmentRolesHeader(t *testing.T) {
	r := capsRouter(AuthConfig{ManagerRoles: []string{"lab_manager", "admin"}})

	t.Run("defaults to admin", func(t *testing.T) {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/whoami", nil))
		if w.Body.String() != "manager:dev-user" {
			t.Fatalf("unexpected body %q", w.Body.String())
		}
	})

	t.Run("explicit non manager roles", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
		req.Header.Set(HeaderRoles, "technician, receptionist")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		if w.Body.String() != "staff:dev-user" {
			t.Fatalf("unexpected body %q", w.Body.String())
		}
	})
}

func TestCapabilitiesFrom_WithoutAuth(t *testing.T) {
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	if CapabilitiesFrom(c).Has(workflow.CapabilityManager) {
		t.Fatalf("expected no capabilities")
	}
}

func TestRequestIDAndLogger(t *testing.T) {
	gin.SetMode(gin.TestMode)
	var buf bytes.Buffer
	r := gin.New()
	r.Use(RequestID(), Logger(zerolog.New(&buf)))
	r.GET("/ping", func(c *gin.Context) { c.String(http.StatusOK, "pong") })

	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.Header.Set(HeaderRequestID, "req-42")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if got := w.Header().Get(HeaderRequestID); got != "req-42" {
		t.Fatalf("expected request id to be echoed, got %q", got)
	}
	line := buf.String()
	for _, want := range []string{`"request_id":"req-42"`, `"path":"/ping"`, `"status":200`} {
		if !strings.Contains(line, want) {
			t.Fatalf("log line %q misses %s", line, want)
		}
	}
}

func TestRecovery(t *testing.T) {
	gin.SetMode(gin.TestMode)
	var buf bytes.Buffer
	r := gin.New()
	r.Use(Recovery(zerolog.New(&buf)))
	r.GET("/boom", func(c *gin.Context) { panic("boom") })

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/boom", nil))

	if w.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", w.Code)
	}
	if !strings.Contains(buf.String(), "panic recovered") {
		t.Fatalf("expected panic to be logged, got %q", buf.String())
	}
}
