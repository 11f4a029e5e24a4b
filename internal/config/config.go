package config

import (
	"fmt"

	"github.com/spf13/viper"
)

// Config holds everything the process reads from the environment. The only
// required value is the store connection string.
type Config struct {
	DatabaseURL    string
	Addr           string
	RedisAddr      string
	JWTSecret      string
	RateLimitRPS   float64
	RateLimitBurst int
}

func Load() (Config, error) {
	v := viper.New()
	v.AutomaticEnv()

	v.SetDefault("ADDR", ":8080")
	v.SetDefault("JWT_SECRET", "super-secret-key") // override in any real deployment
	v.SetDefault("RATE_LIMIT_RPS", 10.0)
	v.SetDefault("RATE_LIMIT_BURST", 20)

	cfg := Config{
		DatabaseURL:    v.GetString("DATABASE_URL"),
		Addr:           v.GetString("ADDR"),
		RedisAddr:      v.GetString("REDIS_ADDR"),
		JWTSecret:      v.GetString("JWT_SECRET"),
		RateLimitRPS:   v.GetFloat64("RATE_LIMIT_RPS"),
		RateLimitBurst: v.GetInt("RATE_LIMIT_BURST"),
	}

	if cfg.DatabaseURL == "" {
		return Config{}, fmt.Errorf("environment variable DATABASE_URL not found")
	}
	return cfg, nil
}
