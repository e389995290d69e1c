package config

import (
	"errors"
	"io/fs"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	EnvDevelopment = "development"
	EnvProduction  = "production"
)

type Config struct {
	Env       string
	Port      int
	APIPrefix string

	Redis     RedisConfig
	CORS      CORSConfig
	Log       LogConfig
	Dashboard DashboardConfig
	Warmup    WarmupConfig
	Dataset   DatasetConfig
	Exports   ExportsConfig
	Filters   FilterConfig
}

type RedisConfig struct {
	Host     string
	Port     int
	Password string
	DB       int
}

type CORSConfig struct {
	AllowedOrigins []string
}

type LogConfig struct {
	Level  string
	Format string
}

// DashboardConfig governs caching of composed dashboard views.
type DashboardConfig struct {
	CacheEnabled bool
	CacheTTL     time.Duration
}

// WarmupConfig controls the startup job that precomputes student dashboards.
type WarmupConfig struct {
	Enabled bool
	Workers int
}

// DatasetConfig points at an optional dataset file replacing the embedded one.
type DatasetConfig struct {
	Path string
}

// ExportsConfig toggles the student report downloads.
type ExportsConfig struct {
	Enabled bool
}

// FilterConfig bounds what the time filter accepts from clients.
type FilterConfig struct {
	MaxRangeWeeks int
	MinYear       int
	MaxYear       int
}

func Load() (*Config, error) {
	_ = godotenv.Load()

	v := viper.New()
	v.SetConfigFile(".env")
	v.SetConfigType("env")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && !errors.Is(err, fs.ErrNotExist) {
			return nil, err
		}
	}

	cfg := &Config{}

	cfg.Env = v.GetString("ENV")
	cfg.Port = v.GetInt("PORT")
	cfg.APIPrefix = v.GetString("API_PREFIX")

	cfg.Redis = RedisConfig{
		Host:     v.GetString("REDIS_HOST"),
		Port:     v.GetInt("REDIS_PORT"),
		Password: v.GetString("REDIS_PASSWORD"),
		DB:       v.GetInt("REDIS_DB"),
	}

	cfg.CORS = CORSConfig{AllowedOrigins: splitAndTrim(v.GetString("ALLOWED_ORIGINS"))}

	cfg.Log = LogConfig{
		Level:  v.GetString("LOG_LEVEL"),
		Format: v.GetString("LOG_FORMAT"),
	}

	cfg.Dashboard = DashboardConfig{
		CacheEnabled: v.GetBool("ENABLE_CACHE"),
		CacheTTL:     parseDuration(v.GetString("DASHBOARD_CACHE_TTL"), 5*time.Minute),
	}

	workers := v.GetInt("WARMUP_WORKERS")
	if workers <= 0 {
		workers = 1
	}
	cfg.Warmup = WarmupConfig{
		Enabled: v.GetBool("ENABLE_WARMUP"),
		Workers: workers,
	}

	cfg.Dataset = DatasetConfig{Path: strings.TrimSpace(v.GetString("DATASET_PATH"))}

	cfg.Exports = ExportsConfig{Enabled: v.GetBool("ENABLE_EXPORTS")}

	cfg.Filters = FilterConfig{
		MaxRangeWeeks: v.GetInt("MAX_RANGE_WEEKS"),
		MinYear:       v.GetInt("MIN_YEAR"),
		MaxYear:       v.GetInt("MAX_YEAR"),
	}
	if cfg.Filters.MaxRangeWeeks <= 0 {
		cfg.Filters.MaxRangeWeeks = 520
	}
	if cfg.Filters.MinYear > cfg.Filters.MaxYear {
		cfg.Filters.MinYear, cfg.Filters.MaxYear = cfg.Filters.MaxYear, cfg.Filters.MinYear
	}

	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("ENV", EnvDevelopment)
	v.SetDefault("PORT", 8080)
	v.SetDefault("API_PREFIX", "/api/v1")

	v.SetDefault("REDIS_HOST", "localhost")
	v.SetDefault("REDIS_PORT", 6379)
	v.SetDefault("REDIS_PASSWORD", "")
	v.SetDefault("REDIS_DB", 0)

	v.SetDefault("ALLOWED_ORIGINS", "")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("LOG_FORMAT", "json")

	v.SetDefault("ENABLE_CACHE", false)
	v.SetDefault("DASHBOARD_CACHE_TTL", "5m")
	v.SetDefault("ENABLE_WARMUP", false)
	v.SetDefault("WARMUP_WORKERS", 2)

	v.SetDefault("DATASET_PATH", "")
	v.SetDefault("ENABLE_EXPORTS", true)

	v.SetDefault("MAX_RANGE_WEEKS", 520)
	v.SetDefault("MIN_YEAR", 2000)
	v.SetDefault("MAX_YEAR", 2100)
}

func parseDuration(raw string, fallback time.Duration) time.Duration {
	if raw == "" {
		return fallback
	}

	d, err := time.ParseDuration(raw)
	if err != nil {
		return fallback
	}

	return d
}

func splitAndTrim(raw string) []string {
	if raw == "" {
		return nil
	}

	parts := strings.Split(raw, ",")
	result := make([]string, 0, len(parts))
	for _, part := range parts {
		trimmed := strings.TrimSpace(part)
		if trimmed != "" {
			result = append(result, trimmed)
		}
	}

	return result
}
