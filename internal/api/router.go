package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/Verderen/MoneyHiver/internal/api/handlers"
	custommiddleware "github.com/Verderen/MoneyHiver/internal/api/middleware"
	"github.com/Verderen/MoneyHiver/internal/config"
	"github.com/Verderen/MoneyHiver/internal/quotes"
	"github.com/Verderen/MoneyHiver/internal/service"
)

// Services bundles everything the router needs. AlertService may be nil
// when alerting is disabled.
type Services struct {
	System       *service.SystemService
	Quotes       *service.QuoteService
	Calculations *service.CalculationService
	Assets       *service.AssetService
	Alerts       *service.AlertService
	CandleCharts *quotes.ChartSource
	ScalarCharts *quotes.ChartSource
}

// NewRouter creates and configures the HTTP router
func NewRouter(svcs Services, cfg *config.Config) http.Handler {
	r := chi.NewRouter()

	// Global middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(custommiddleware.Logger)
	r.Use(middleware.Recoverer)

	// CORS middleware
	corsMiddleware := custommiddleware.NewCORS(cfg.CORS.AllowedOrigins)
	r.Use(corsMiddleware.Handler)

	calculatorHandler := handlers.NewCalculatorHandler(svcs.Quotes)
	savedHandler := handlers.NewSavedCalculationHandler(svcs.Calculations)
	alertHandler := handlers.NewAlertHandler(svcs.Alerts)

	// Calculator endpoints
	r.Post("/calculate_profit_loss", calculatorHandler.ProfitLoss)
	r.Post("/dividend", calculatorHandler.Dividend)
	r.Post("/margin", calculatorHandler.Margin)
	r.Post("/rrr", calculatorHandler.RiskReward)
	r.Post("/calculate_conversion", calculatorHandler.Convert)

	// Saved-calculation store
	r.Get("/get_saved_pl", savedHandler.ListProfitLoss)
	r.Get("/get_saved_div", savedHandler.ListDividend)
	r.Get("/get_saved_rrr", savedHandler.ListRiskReward)
	r.Get("/get_pl_details", savedHandler.ProfitLossDetails)
	r.Get("/get_div_details", savedHandler.DividendDetails)
	r.Get("/get_rrr_details", savedHandler.RiskRewardDetails)
	r.Post("/save_pl", savedHandler.SaveProfitLoss)
	r.Post("/save_div", savedHandler.SaveDividend)
	r.Post("/save_rrr", savedHandler.SaveRiskReward)
	r.Post("/delete_pl", savedHandler.DeleteProfitLoss)
	r.Post("/delete_div", savedHandler.DeleteDividend)
	r.Post("/delete_rrr", savedHandler.DeleteRiskReward)

	// Alerts and contact form
	r.Post("/subscribe", alertHandler.Subscribe)
	r.Post("/message", alertHandler.Message)

	// API routes
	r.Route("/api", func(r chi.Router) {
		// System namespace
		r.Route("/system", func(r chi.Router) {
			systemHandler := handlers.NewSystemHandler(svcs.System)
			r.Get("/health", systemHandler.Health)
			r.Get("/version", systemHandler.Version)
		})

		quoteHandler := handlers.NewQuoteHandler(svcs.Quotes)
		r.Get("/crypto", quoteHandler.Crypto)
		r.Get("/currency", quoteHandler.Currency)
		r.Get("/currency/{code}", quoteHandler.CurrencyRate)
		r.Get("/stocks/{symbol}", quoteHandler.Stock)

		chartHandler := handlers.NewChartHandler(svcs.CandleCharts, svcs.ScalarCharts)
		r.Get("/charts/{asset}", chartHandler.Chart)

		r.Route("/assets", func(r chi.Router) {
			assetHandler := handlers.NewAssetHandler(svcs.Assets)
			r.Get("/", assetHandler.Assets)
			r.Post("/crypto", assetHandler.CreateCryptoAsset)
			r.Delete("/{type}/{id}", assetHandler.DeleteAsset)
		})
	})

	return r
}
