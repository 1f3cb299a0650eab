package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

type Config struct {
	Port           string   `mapstructure:"PORT"`
	Env            string   `mapstructure:"ENV"`
	DatabaseURL    string   `mapstructure:"DATABASE_URL"`
	DBMaxConns     int32    `mapstructure:"DB_MAX_CONNS"`
	DBMinConns     int32    `mapstructure:"DB_MIN_CONNS"`
	ScriptsDir     string   `mapstructure:"SCRIPTS_DIR"`
	CORSOrigins    []string `mapstructure:"CORS_ORIGINS"`
	RateLimitRPS   float64  `mapstructure:"RATE_LIMIT_RPS"`
	RateLimitBurst int      `mapstructure:"RATE_LIMIT_BURST"`

	RiskThresholdModerate float64 `mapstructure:"RISK_THRESHOLD_MODERATE"`
	RiskThresholdHigh     float64 `mapstructure:"RISK_THRESHOLD_HIGH"`
	RiskThresholdReferral float64 `mapstructure:"RISK_THRESHOLD_REFERRAL"`

	SimilarityThreshold float64 `mapstructure:"SIMILARITY_THRESHOLD"`
	MaxRecommendations  int     `mapstructure:"MAX_RECOMMENDATIONS"`
	ExtractCacheSize    int     `mapstructure:"EXTRACT_CACHE_SIZE"`
}

func Load() (*Config, error) {
	v := viper.New()
	v.SetConfigFile(".env")
	v.AutomaticEnv()

	// Defaults
	v.SetDefault("PORT", "8000")
	v.SetDefault("ENV", "development")
	v.SetDefault("DB_MAX_CONNS", 20)
	v.SetDefault("DB_MIN_CONNS", 5)
	v.SetDefault("SCRIPTS_DIR", "") // empty -> embedded corpus
	v.SetDefault("CORS_ORIGINS", "http://localhost:3000")
	v.SetDefault("RATE_LIMIT_RPS", 100)
	v.SetDefault("RATE_LIMIT_BURST", 200)
	v.SetDefault("RISK_THRESHOLD_MODERATE", 15.0)
	v.SetDefault("RISK_THRESHOLD_HIGH", 30.0)
	v.SetDefault("RISK_THRESHOLD_REFERRAL", 25.0)
	v.SetDefault("SIMILARITY_THRESHOLD", 0.25)
	v.SetDefault("MAX_RECOMMENDATIONS", 12)
	v.SetDefault("EXTRACT_CACHE_SIZE", 64)

	// Bind env vars explicitly so Unmarshal picks them up
	v.BindEnv("PORT")
	v.BindEnv("ENV")
	v.BindEnv("DATABASE_URL")
	v.BindEnv("DB_MAX_CONNS")
	v.BindEnv("DB_MIN_CONNS")
	v.BindEnv("SCRIPTS_DIR")
	v.BindEnv("CORS_ORIGINS")
	v.BindEnv("RATE_LIMIT_RPS")
	v.BindEnv("RATE_LIMIT_BURST")
	v.BindEnv("RISK_THRESHOLD_MODERATE")
	v.BindEnv("RISK_THRESHOLD_HIGH")
	v.BindEnv("RISK_THRESHOLD_REFERRAL")
	v.BindEnv("SIMILARITY_THRESHOLD")
	v.BindEnv("MAX_RECOMMENDATIONS")
	v.BindEnv("EXTRACT_CACHE_SIZE")

	// Try reading .env file, but don't fail if missing
	_ = v.ReadInConfig()

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	if cfg.CORSOrigins == nil {
		origins := v.GetString("CORS_ORIGINS")
		if origins != "" {
			cfg.CORSOrigins = strings.Split(origins, ",")
		}
	}

	if cfg.DatabaseURL == "" {
		return nil, fmt.Errorf("DATABASE_URL is required")
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) IsDev() bool {
	return c.Env == "development"
}

// IsProduction returns true when the server is configured for production mode.
func (c *Config) IsProduction() bool {
	return c.Env == "production"
}

// Validate checks that the configuration is internally consistent: the
// risk thresholds must keep their ordering or every triage collapses into
// a single band.
func (c *Config) Validate() error {
	if c.RiskThresholdModerate <= 0 {
		return fmt.Errorf("RISK_THRESHOLD_MODERATE must be positive")
	}
	if c.RiskThresholdHigh <= c.RiskThresholdModerate {
		return fmt.Errorf("RISK_THRESHOLD_HIGH (%.1f) must be above RISK_THRESHOLD_MODERATE (%.1f)",
			c.RiskThresholdHigh, c.RiskThresholdModerate)
	}
	if c.RiskThresholdReferral <= c.RiskThresholdModerate {
		return fmt.Errorf("RISK_THRESHOLD_REFERRAL (%.1f) must be above RISK_THRESHOLD_MODERATE (%.1f)",
			c.RiskThresholdReferral, c.RiskThresholdModerate)
	}
	if c.SimilarityThreshold <= 0 || c.SimilarityThreshold >= 1 {
		return fmt.Errorf("SIMILARITY_THRESHOLD must be in (0, 1), got %g", c.SimilarityThreshold)
	}
	if c.MaxRecommendations < 1 {
		return fmt.Errorf("MAX_RECOMMENDATIONS must be at least 1")
	}
	return nil
}
