package middleware

import (
	"net/http"
	"strings"

	"lab_management/internal/domain/workflow"
	"lab_management/pkg"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

const (
	ctxSubject      = "auth_subject"
	ctxCapabilities = "auth_capabilities"

	// HeaderRoles carries the caller roles in development when no signing
	// key is configured.
	HeaderRoles     = "X-Roles"
	defaultDevRoles = "admin"
)

var (
	errMissingToken = pkg.NewDomainErrorSimple("UNAUTHORIZED", "Missing bearer token", http.StatusUnauthorized)
	errInvalidToken = pkg.NewDomainErrorSimple("UNAUTHORIZED", "Invalid token", http.StatusUnauthorized)
)

type Claims struct {
	jwt.RegisteredClaims
	Roles []string `json:"roles"`
}

// AuthConfig configures the bearer token check. Without a signing key the
// middleware runs in development mode and trusts the X-Roles header.
type AuthConfig struct {
	SigningKey   []byte
	Issuer       string
	ManagerRoles []string
}

// Auth resolves the caller's capabilities and stores them on the gin context
// for the handlers.
func Auth(cfg AuthConfig) gin.HandlerFunc {
	manager := make(map[string]struct{}, len(cfg.ManagerRoles))
	for _, r := range cfg.ManagerRoles {
		manager[strings.ToLower(r)] = struct{}{}
	}
	capsFor := func(roles []string) workflow.Capabilities {
		caps := workflow.NewCapabilities()
		for _, r := range roles {
			if _, ok := manager[strings.ToLower(strings.TrimSpace(r))]; ok {
				caps[workflow.CapabilityManager] = struct{}{}
			}
		}
		return caps
	}

	if len(cfg.SigningKey) == 0 {
		return func(c *gin.Context) {
			header := c.GetHeader(HeaderRoles)
			if strings.TrimSpace(header) == "" {
				header = defaultDevRoles
			}
			c.Set(ctxSubject, "dev-user")
			c.Set(ctxCapabilities, capsFor(strings.Split(header, ",")))
			c.Next()
		}
	}

	opts := []jwt.ParserOption{jwt.WithValidMethods([]string{"HS256"})}
	if cfg.Issuer != "" {
		opts = append(opts, jwt.WithIssuer(cfg.Issuer))
	}
	return func(c *gin.Context) {
		scheme, token, ok := strings.Cut(c.GetHeader("Authorization"), " ")
		if !ok || !strings.EqualFold(scheme, "bearer") || strings.TrimSpace(token) == "" {
			c.AbortWithStatusJSON(errMissingToken.HTTPStatus, errMissingToken.ToHTTPError())
			return
		}

		claims := &Claims{}
		parsed, err := jwt.ParseWithClaims(strings.TrimSpace(token), claims, func(*jwt.Token) (interface{}, error) {
			return cfg.SigningKey, nil
		}, opts...)
		if err != nil || !parsed.Valid {
			c.AbortWithStatusJSON(errInvalidToken.HTTPStatus, errInvalidToken.ToHTTPError())
			return
		}

		c.Set(ctxSubject, claims.Subject)
		c.Set(ctxCapabilities, capsFor(claims.Roles))
		c.Next()
	}
}

// CapabilitiesFrom returns what the authenticated caller may do. A request
// that never went through Auth has no capabilities.
func CapabilitiesFrom(c *gin.Context) workflow.Capabilities {
	if v, ok := c.Get(ctxCapabilities); ok {
		if caps, ok := v.(workflow.Capabilities); ok {
			return caps
		}
	}
	return workflow.NewCapabilities()
}

func SubjectFrom(c *gin.Context) string {
	return c.GetString(ctxSubject)
}
