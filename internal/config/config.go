package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all configuration for the application
type Config struct {
	Server    ServerConfig
	Database  DatabaseConfig
	CORS      CORSConfig
	Providers ProviderConfig
	Refresh   RefreshConfig
	SMTP      SMTPConfig
	Alerts    AlertConfig
}

// ServerConfig holds server-specific configuration
type ServerConfig struct {
	Port string
	Host string
	Addr string // Combined host:port for convenience
}

// DatabaseConfig holds database-specific configuration
type DatabaseConfig struct {
	Path string
}

// CORSConfig holds CORS-specific configuration
type CORSConfig struct {
	AllowedOrigins []string
}

// ProviderConfig holds base URLs and credentials for the external
// market-data providers. Base URLs are configurable so tests can point
// clients at a local httptest server.
type ProviderConfig struct {
	BinanceBaseURL      string
	OpenExchangeBaseURL string
	OpenExchangeAppID   string
	FinnhubBaseURL      string
	FinnhubAPIKey       string
	FetchTimeout        time.Duration
}

// RefreshConfig holds the periods for the background refresh jobs.
type RefreshConfig struct {
	CryptoInterval   time.Duration
	CurrencyInterval time.Duration
	StockInterval    time.Duration
	AlertInterval    time.Duration
}

// SMTPConfig holds outbound mail settings for alerts and the contact form.
type SMTPConfig struct {
	Host     string
	Port     string
	Address  string
	Password string
}

// AlertConfig holds price alert settings. Key is a base64 fernet key used
// to encrypt subscriber e-mail addresses at rest; alerts are disabled when
// it is empty.
type AlertConfig struct {
	FernetKey string
}

// Load reads configuration from environment variables and .env file
func Load() (*Config, error) {
	// Try to load .env file (ignore error if it doesn't exist)
	_ = godotenv.Load()

	config := &Config{
		Server: ServerConfig{
			Port: getEnv("SERVER_PORT", "5001"),
			Host: getEnv("SERVER_HOST", "localhost"),
		},
		Database: DatabaseConfig{
			Path: getEnv("DB_PATH", "./data/moneyhiver.db"),
		},
		CORS: CORSConfig{
			AllowedOrigins: []string{
				"http://localhost:3000",
				"http://localhost",
			},
		},
		Providers: ProviderConfig{
			BinanceBaseURL:      getEnv("BINANCE_BASE_URL", "https://api.binance.com"),
			OpenExchangeBaseURL: getEnv("OPENEXCHANGE_BASE_URL", "https://openexchangerates.org"),
			OpenExchangeAppID:   getEnv("API_ID_ER", ""),
			FinnhubBaseURL:      getEnv("FINNHUB_BASE_URL", "https://finnhub.io"),
			FinnhubAPIKey:       getEnv("FINNHUB_API_KEY", ""),
			FetchTimeout:        getEnvDuration("FETCH_TIMEOUT", 10*time.Second),
		},
		Refresh: RefreshConfig{
			CryptoInterval:   getEnvDuration("CRYPTO_REFRESH_INTERVAL", 5*time.Second),
			CurrencyInterval: getEnvDuration("CURRENCY_REFRESH_INTERVAL", 10*time.Second),
			StockInterval:    getEnvDuration("STOCK_REFRESH_INTERVAL", 30*time.Second),
			AlertInterval:    getEnvDuration("ALERT_CHECK_INTERVAL", 5*time.Second),
		},
		SMTP: SMTPConfig{
			Host:     getEnv("SMTP_SERVER", ""),
			Port:     getEnv("SMTP_PORT", "587"),
			Address:  getEnv("SMTP_ADDRESS", ""),
			Password: getEnv("SMTP_PASSWORD", ""),
		},
		Alerts: AlertConfig{
			FernetKey: getEnv("ALERT_FERNET_KEY", ""),
		},
	}

	// Combine host and port
	config.Server.Addr = fmt.Sprintf("%s:%s", config.Server.Host, config.Server.Port)

	return config, nil
}

// getEnv gets an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

// getEnvDuration gets a duration environment variable, accepting either a
// Go duration string ("30s") or a plain number of seconds.
func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	if d, err := time.ParseDuration(value); err == nil {
		return d
	}
	if secs, err := strconv.Atoi(value); err == nil {
		return time.Duration(secs) * time.Second
	}
	return defaultValue
}
