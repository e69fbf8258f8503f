package app

import (
	"github.com/openshelf/catalog-backend/internal/platform/envutil"
)

type Config struct {
	Env         string
	HTTPAddr    string
	MetricsAddr string
	RedisAddr   string
	Version     string
}

func LoadConfig() Config {
	return Config{
		Env:         envutil.String("APP_ENV", "development"),
		HTTPAddr:    envutil.String("HTTP_ADDR", ":8080"),
		MetricsAddr: envutil.String("METRICS_ADDR", ":9100"),
		RedisAddr:   envutil.String("REDIS_ADDR", ""),
		Version:     envutil.String("APP_VERSION", "dev"),
	}
}
