package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"gstbook/internal/config"
	"gstbook/internal/handler"
	"gstbook/internal/hsn"
	"gstbook/internal/logger"
	"gstbook/internal/metrics"
	"gstbook/internal/repository/postgres"
	"gstbook/internal/router"
	"gstbook/internal/service"
)

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	zl, err := logger.New(logger.Config{
		ServiceName: "gstbook",
		Environment: cfg.Server.Environment,
		Level:       cfg.Log.Level,
		Format:      cfg.Log.Format,
	})
	if err != nil {
		return fmt.Errorf("failed to build logger: %w", err)
	}
	defer func() { _ = zl.Sync() }()

	if cfg.Server.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	// Money goes over the wire as JSON numbers.
	decimal.MarshalJSONWithoutQuotes = true

	weights, err := config.LoadHSNWeights(cfg.HSN.TuningFile)
	if err != nil {
		return err
	}

	db, err := postgres.NewDB(&cfg.DB)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer db.Close()

	m := metrics.New(prometheus.DefaultRegisterer)

	// Initialize repositories
	hsnRepo := postgres.NewHSNRepo(db)
	businessRepo := postgres.NewBusinessRepo(db)
	customerRepo := postgres.NewCustomerRepo(db)
	invoiceRepo := postgres.NewInvoiceRepo(db)
	paymentRepo := postgres.NewPaymentRepo(db)
	libraryRepo := postgres.NewLibraryItemRepo(db)
	masterServiceRepo := postgres.NewMasterServiceRepo(db)
	templateRepo := postgres.NewTemplateRepo(db)

	// Initialize services
	hsnSvc := service.NewHSNService(hsnRepo, hsn.NewMatcher(hsn.WithWeights(weights)), service.HSNServiceConfig{
		SearchLimit:    cfg.HSN.SearchLimit,
		MaxSearchLimit: cfg.HSN.MaxSearchLimit,
	}, m, zl)
	businessSvc := service.NewBusinessService(businessRepo)
	customerSvc := service.NewCustomerService(customerRepo)
	invoiceSvc := service.NewInvoiceService(invoiceRepo, customerRepo, businessRepo, paymentRepo,
		service.InvoiceServiceConfig{NumberPrefix: cfg.Invoice.NumberPrefix, Lines: hsnSvc}, m, zl)
	paymentSvc := service.NewPaymentService(paymentRepo, invoiceRepo, nil, m, zl)
	librarySvc := service.NewItemLibraryService(libraryRepo)
	masterSvc := service.NewMasterDataService(masterServiceRepo, hsnRepo)
	templateSvc := service.NewTemplateService(templateRepo, zl)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Warm the catalog before serving and keep it fresh in the background.
	refresher := service.NewCatalogRefresher(hsnSvc, cfg.HSN.ReloadInterval, zl)
	go refresher.Start(ctx)

	var metricsHandler http.Handler
	if cfg.Metrics.Enabled {
		metricsHandler = promhttp.Handler()
	}

	r := router.Setup(router.Handlers{
		Health:   handler.NewHealthHandler(db),
		HSN:      handler.NewHSNHandler(hsnSvc),
		Tax:      handler.NewTaxHandler(invoiceSvc),
		Business: handler.NewBusinessHandler(businessSvc),
		Customer: handler.NewCustomerHandler(customerSvc, invoiceSvc),
		Invoice:  handler.NewInvoiceHandler(invoiceSvc),
		Payment:  handler.NewPaymentHandler(paymentSvc),
		Library:  handler.NewItemLibraryHandler(librarySvc),
		Master:   handler.NewMasterDataHandler(masterSvc),
		Template: handler.NewTemplateHandler(templateSvc),
	}, router.Options{
		AllowedOrigins: cfg.CORS.AllowedOrigins,
		MetricsPath:    cfg.Metrics.Path,
		MetricsHandler: metricsHandler,
		Metrics:        m,
		Logger:         zl,
	})

	srv := &http.Server{
		Addr:         cfg.Server.Port,
		Handler:      r,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		zl.Info("server starting", zap.String("addr", cfg.Server.Port))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("server failed: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	zl.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server shutdown: %w", err)
	}
	return nil
}
