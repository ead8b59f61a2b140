// Command ticker runs a terminal dashboard loop against a MoneyHiver API
// server: it keeps the price boards fresh and reloads one chart, printing
// every update. It exercises the same client path the web dashboard uses.
package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/Verderen/MoneyHiver/internal/client"
	"github.com/Verderen/MoneyHiver/internal/config"
	"github.com/Verderen/MoneyHiver/internal/dashboard"
	"github.com/Verderen/MoneyHiver/internal/quotes"
	"github.com/Verderen/MoneyHiver/internal/service"
)

func main() {
	var (
		apiURL   = flag.String("api", "http://localhost:5001", "base URL of the API server")
		asset    = flag.String("asset", "BTC", "chart asset (BTC, ETH, usd, AAPL, ...)")
		days     = flag.String("days", "1", "chart day range (1, 7, 30, 90)")
		interval = flag.Duration("interval", 5*time.Second, "refresh interval")
	)
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	api := client.New(*apiURL, cfg.Providers.FetchTimeout)

	// The chart fallback resolves scalar prices through the API server, so
	// the loop works even without direct provider access.
	latest := func(ctx context.Context, name string) (float64, error) {
		switch upper := strings.ToUpper(name); upper {
		case "BTC", "BTCUSDT":
			board, err := api.CryptoPrices(ctx)
			return board.BTC, err
		case "ETH", "ETHUSDT":
			board, err := api.CryptoPrices(ctx)
			return board.ETH, err
		case "AAPL", "NVDA", "TSLA", "AMZN":
			return api.StockPrice(ctx, upper)
		default:
			board, err := api.CurrencyRates(ctx)
			if err != nil {
				return 0, err
			}
			return board.Rate(name)
		}
	}

	binanceClient := quotes.NewBinanceClient(cfg.Providers.BinanceBaseURL, cfg.Providers.FetchTimeout)
	candles := quotes.NewChartSource(binanceClient, latest)
	scalars := quotes.NewChartSource(nil, latest)

	refresher := dashboard.NewRefresher(api, candles, scalars, dashboard.NewState())
	state := refresher.State()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-quit
		cancel()
	}()

	if err := refresher.LoadChart(ctx, *asset, *days); err != nil {
		log.Printf("chart: %v", err)
	}

	ticker := time.NewTicker(*interval)
	defer ticker.Stop()

	for {
		if err := refresher.RefreshCrypto(ctx); err != nil {
			log.Printf("crypto: %v", err)
		}
		if err := refresher.RefreshCurrency(ctx); err != nil {
			log.Printf("currency: %v", err)
		}
		if err := refresher.RefreshStocks(ctx); err != nil {
			log.Printf("stocks: %v", err)
		}

		crypto := state.Crypto()
		rates := state.Currency()
		log.Printf("BTC %.2f  ETH %.2f  |  USD/RUB %.2f  EUR/RUB %.2f", crypto.BTC, crypto.ETH, rates.USD, rates.EUR)

		for _, symbol := range service.StockSymbols {
			if price, ok := state.Stock(symbol); ok {
				log.Printf("  %s %.2f", symbol, price)
			}
		}

		if series := state.Chart(); len(series.Points) > 0 {
			marker := ""
			if series.Fallback {
				marker = " (synthesized)"
			}
			log.Printf("  chart %s/%sd: %d points, last %.2f%s",
				*asset, *days, len(series.Points), series.Latest(), marker)
		}

		select {
		case <-ctx.Done():
			log.Println("ticker stopped")
			return
		case <-ticker.C:
		}
	}
}
