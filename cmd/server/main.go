package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Verderen/MoneyHiver/internal/api"
	"github.com/Verderen/MoneyHiver/internal/config"
	"github.com/Verderen/MoneyHiver/internal/database"
	"github.com/Verderen/MoneyHiver/internal/mailer"
	"github.com/Verderen/MoneyHiver/internal/quotes"
	"github.com/Verderen/MoneyHiver/internal/repository"
	"github.com/Verderen/MoneyHiver/internal/scheduler"
	"github.com/Verderen/MoneyHiver/internal/service"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Open database connection and apply migrations
	db, err := database.Open(cfg.Database.Path)
	if err != nil {
		log.Fatalf("Failed to open database: %v", err)
	}
	defer db.Close()

	log.Printf("Connected to database: %s", cfg.Database.Path)

	// Provider clients
	binanceClient := quotes.NewBinanceClient(cfg.Providers.BinanceBaseURL, cfg.Providers.FetchTimeout)
	openExchangeClient := quotes.NewOpenExchangeClient(
		cfg.Providers.OpenExchangeBaseURL,
		cfg.Providers.OpenExchangeAppID,
		cfg.Providers.FetchTimeout,
	)
	finnhubClient := quotes.NewFinnhubClient(
		cfg.Providers.FinnhubBaseURL,
		cfg.Providers.FinnhubAPIKey,
		cfg.Providers.FetchTimeout,
	)

	// Create repositories
	calculationRepo := repository.NewCalculationRepository(db)
	assetRepo := repository.NewAssetRepository(db)
	alertRepo := repository.NewAlertRepository(db)

	// Create services
	systemService := service.NewSystemService(db)
	quoteService := service.NewQuoteService(binanceClient, openExchangeClient, finnhubClient)
	calculationService := service.NewCalculationService(calculationRepo)
	assetService := service.NewAssetService(assetRepo)

	var alertService *service.AlertService
	if cfg.Alerts.FernetKey != "" {
		smtpMailer := mailer.NewSMTPMailer(cfg.SMTP)
		alertService, err = service.NewAlertService(
			alertRepo, quoteService, smtpMailer, cfg.Alerts.FernetKey, cfg.SMTP.Address,
		)
		if err != nil {
			log.Fatalf("Failed to initialize alerts: %v", err)
		}
	} else {
		log.Println("ALERT_FERNET_KEY not set, price alerts disabled")
	}

	// Chart sources: crypto pairs have candle history, everything else is
	// synthesized from the latest scalar price.
	candleCharts := quotes.NewChartSource(binanceClient, quoteService.LatestPrice)
	scalarCharts := quotes.NewChartSource(nil, quoteService.LatestPrice)

	// Background refresh jobs
	var sweep func(ctx context.Context) error
	if alertService != nil {
		sweep = alertService.Sweep
	}
	jobs := scheduler.RefreshJobs(
		cfg.Refresh,
		quoteService.RefreshCrypto,
		quoteService.RefreshCurrency,
		quoteService.RefreshStocks,
		sweep,
	)
	sched, err := scheduler.New(jobs)
	if err != nil {
		log.Fatalf("Failed to create scheduler: %v", err)
	}
	sched.Start()
	defer sched.Stop()

	// Create router
	router := api.NewRouter(api.Services{
		System:       systemService,
		Quotes:       quoteService,
		Calculations: calculationService,
		Assets:       assetService,
		Alerts:       alertService,
		CandleCharts: candleCharts,
		ScalarCharts: scalarCharts,
	}, cfg)

	// Create HTTP server
	server := &http.Server{
		Addr:         cfg.Server.Addr,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start server in a goroutine
	go func() {
		log.Printf("Starting server on %s", cfg.Server.Addr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server failed to start: %v", err)
		}
	}()

	// Wait for interrupt signal for graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down server...")

	// Graceful shutdown with timeout
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	log.Println("Server exited")
}
