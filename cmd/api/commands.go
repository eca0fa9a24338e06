package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"lab_management/internal/adapter/http/handlers"
	"lab_management/internal/adapter/http/middleware"
	"lab_management/internal/adapter/http/routes"
	"lab_management/internal/adapter/persistence/postgres"
	"lab_management/internal/adapter/persistence/repository"
	"lab_management/internal/config"
	"lab_management/internal/infrastructure/database"
	"lab_management/internal/infrastructure/logger"
	"lab_management/internal/infrastructure/metrics"
	"lab_management/internal/infrastructure/payments"
	"lab_management/internal/usecase"
	"lab_management/internal/usecase/interfaces"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

const shutdownTimeout = 10 * time.Second

// bootstrap loads the configuration and installs the global logger.
func bootstrap() (*config.Config, zerolog.Logger, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, zerolog.Nop(), err
	}
	l := logger.New(cfg.Env, cfg.LogLevel)
	logger.Init(l)
	return cfg, l, nil
}

func serveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP API",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServer(cmd.Context())
		},
	}
}

func migrateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Apply pending PostgreSQL migrations",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, l, err := bootstrap()
			if err != nil {
				return err
			}
			if cfg.StoreBackend != config.StorePostgres {
				return fmt.Errorf("migrate needs STORE_BACKEND=%s, got %q", config.StorePostgres, cfg.StoreBackend)
			}
			pool, err := database.NewPool(cmd.Context(), cfg)
			if err != nil {
				return err
			}
			defer pool.Close()

			n, err := postgres.Migrate(cmd.Context(), pool)
			if err != nil {
				return err
			}
			if err := postgres.NewSequenceRepository(pool).Configure(cmd.Context(), resultSequence(cfg)); err != nil {
				return fmt.Errorf("configure result sequence: %w", err)
			}
			l.Info().Int("applied", n).Msg("migrations complete")
			return nil
		},
	}
}

func createTablesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "create-tables",
		Short: "Create the DynamoDB tables if they do not exist",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, l, err := bootstrap()
			if err != nil {
				return err
			}
			if cfg.StoreBackend != config.StoreDynamoDB {
				return fmt.Errorf("create-tables needs STORE_BACKEND=%s, got %q", config.StoreDynamoDB, cfg.StoreBackend)
			}
			ddb, err := database.ConnectDynamoDB(cmd.Context(), cfg)
			if err != nil {
				return err
			}
			tables := database.NewTables(cfg.TablePrefix)
			if err := database.CreateTables(cmd.Context(), ddb, tables); err != nil {
				return err
			}
			if err := repository.NewSequenceDynamoRepository(ddb, tables).Configure(cmd.Context(), resultSequence(cfg)); err != nil {
				return fmt.Errorf("configure result sequence: %w", err)
			}
			l.Info().Str("prefix", cfg.TablePrefix).Msg("tables ready")
			return nil
		},
	}
}

func runServer(ctx context.Context) error {
	cfg, l, err := bootstrap()
	if err != nil {
		return err
	}
	if !cfg.IsDev() {
		gin.SetMode(gin.ReleaseMode)
	}

	st, err := openStores(ctx, cfg)
	if err != nil {
		return err
	}
	defer st.close()
	l.Info().Str("backend", cfg.StoreBackend).Msg("store ready")

	if err := st.configureSequence(ctx, resultSequence(cfg)); err != nil {
		return fmt.Errorf("configure result sequence: %w", err)
	}

	var m *metrics.Metrics
	var observer interfaces.IResultObserver
	if cfg.MetricsEnabled {
		m = metrics.New()
		observer = m
	}

	catalogUseCase := usecase.NewCatalogUseCase(st.catalog, st.results)
	patientUseCase := usecase.NewPatientUseCase(st.patients)
	resultUseCase := usecase.NewTestResultUseCase(st.results, st.catalog, st.patients, st.sequence, cfg.ResultSequence, observer)
	paymentUseCase := usecase.NewBillingPaymentUseCase(st.payments, st.results, paymentGateway(cfg, l), usecase.PaymentOptions{
		Mock:           cfg.PaymentGatewayMock,
		SandboxToken:   strings.HasPrefix(cfg.MercadoPagoAccessToken, "TEST-"),
		TestPayerEmail: cfg.MercadoPagoPayerEmail,
	})

	router := routes.New(routes.Handlers{
		Catalog:  handlers.NewCatalogHandler(catalogUseCase),
		Patients: handlers.NewPatientHandler(patientUseCase),
		Results:  handlers.NewTestResultHandler(resultUseCase),
		Payments: handlers.NewBillingPaymentHandler(paymentUseCase, cfg.PaymentGatewayMock),
	}, routes.Options{
		Logger: l,
		Auth: middleware.AuthConfig{
			SigningKey:   []byte(cfg.AuthSigningKey),
			Issuer:       cfg.AuthIssuer,
			ManagerRoles: cfg.ManagerRoleList(),
		},
		Metrics: m,
	})
	if cfg.AuthSigningKey == "" {
		l.Warn().Str("header", middleware.HeaderRoles).Msg("no signing key; trusting role header")
	}

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		l.Info().Str("addr", srv.Addr).Msg("starting server")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("server: %w", err)
		}
		return nil
	case <-quit:
	}

	l.Info().Msg("shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server shutdown: %w", err)
	}
	l.Info().Msg("server stopped")
	return nil
}

// paymentGateway returns nil when Mercado Pago is not configured; the
// payment use case then answers with a configuration error.
func paymentGateway(cfg *config.Config, l zerolog.Logger) interfaces.IPaymentGateway {
	gw, err := payments.NewMercadoPagoGateway(cfg.MercadoPagoAccessToken, cfg.PaymentGatewayMock)
	if err != nil {
		l.Warn().Err(err).Msg("Mercado Pago gateway not configured")
		return nil
	}
	if cfg.PaymentGatewayMock {
		l.Warn().Msg("payment gateway running in mock mode")
	}
	return gw
}
