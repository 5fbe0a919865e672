package config

import (
	"math/big"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"github.com/omarj21/solana-actions-backend/log"
	"go.uber.org/zap"
)

type Config struct {
	Env   string
	Debug bool
	Port  string

	// ProductLabel is the fixed label shown on discovery responses.
	ProductLabel string
	// BasePath prefixes every route and every action href.
	BasePath string

	LogPath   string
	SentryDsn string

	Marketplace MarketplaceConfig
}

type MarketplaceConfig struct {
	Url      string
	ApiKey   string
	Timeout  int
	RetryMax int
	Debug    bool
}

func Init() {
	err := godotenv.Load(".env")

	initLogger()

	if err != nil {
		zap.L().With(zap.Error(err)).Warn("No .env file loaded")
	}
}

func initLogger() {
	cfg := Get()
	log.NewLogger(cfg.LogPath, cfg.Debug, cfg.SentryDsn)
}

func Get() *Config {
	return &Config{
		Env:          getString("ENV", ""),
		Debug:        getBool("DEBUG", false),
		Port:         getString("PORT", "8080"),
		ProductLabel: getString("PRODUCT_LABEL", "NFT"),
		BasePath:     getString("BASE_PATH", ""),
		LogPath:      getString("LOG_PATH", ""),
		SentryDsn:    getString("SENTRY_DSN", ""),
		Marketplace: MarketplaceConfig{
			Url:      getString("MARKETPLACE_URL", ""),
			ApiKey:   getString("MARKETPLACE_API_KEY", ""),
			Timeout:  getInt("MARKETPLACE_TIMEOUT", 30),
			RetryMax: getInt("MARKETPLACE_RETRY_MAX", 0),
			Debug:    getBool("MARKETPLACE_DEBUG", false),
		},
	}
}

func getString(key string, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}

	return defaultValue
}

func getInt(key string, defaultValue int) int {
	valStr := getString(key, "")
	val, _, err := big.ParseFloat(valStr, 10, 0, big.ToNearestEven)
	if err != nil {
		return defaultValue
	}

	intVal, _ := val.Int64()
	return int(intVal)
}

func getBool(key string, defaultValue bool) bool {
	valStr := getString(key, "")
	if val, err := strconv.ParseBool(valStr); err == nil {
		return val
	}

	return defaultValue
}
