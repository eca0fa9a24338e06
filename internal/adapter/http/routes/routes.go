// Package routes assembles the HTTP engine: middlewares, public endpoints and
// the authenticated /v1 API.
package routes

import (
	"net/http"

	_ "lab_management/docs"
	"lab_management/internal/adapter/http/handlers"
	"lab_management/internal/adapter/http/middleware"
	"lab_management/internal/infrastructure/metrics"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

const (
	PathV1      = "/v1"
	PathPing    = "/ping"
	PathMetrics = "/metrics"
	PathSwagger = "/swagger/*any"
)

// Handlers groups the API handlers mounted under /v1.
type Handlers struct {
	Catalog  *handlers.CatalogHandler
	Patients *handlers.PatientHandler
	Results  *handlers.TestResultHandler
	Payments *handlers.BillingPaymentHandler
}

type Options struct {
	Logger zerolog.Logger
	Auth   middleware.AuthConfig
	// Metrics is optional; when nil no collectors are installed and
	// /metrics is not served.
	Metrics *metrics.Metrics
}

// New builds the gin engine serving h.
func New(h Handlers, opts Options) *gin.Engine {
	router := gin.New()
	setMiddlewares(router, opts)

	router.GET(PathSwagger, ginSwagger.WrapHandler(swaggerFiles.Handler))
	if opts.Metrics != nil {
		router.GET(PathMetrics, gin.WrapH(opts.Metrics.Handler()))
	}

	v1 := router.Group(PathV1)
	addPingRoutes(v1)

	// Rotas autenticadas
	api := v1.Group("", middleware.Auth(opts.Auth))
	addCatalogRoutes(api, h.Catalog)
	addPatientRoutes(api, h.Patients)
	addResultRoutes(api, h.Results)
	addBillingRoutes(api, h.Payments)
	return router
}

func setMiddlewares(router *gin.Engine, opts Options) {
	router.Use(middleware.RequestID())
	router.Use(middleware.Recovery(opts.Logger))
	router.Use(middleware.Logger(opts.Logger))
	if opts.Metrics != nil {
		router.Use(opts.Metrics.Middleware())
	}
}

func addPingRoutes(rg *gin.RouterGroup) {
	rg.GET(PathPing, func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong"})
	})
}
