package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/vladimiradmaev/diabetes-tracker/internal/logger"
)

const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

type Config struct {
	TelegramToken string
	DB            DBConfig
	Redis         RedisConfig
	Readings      ReadingsConfig
	Doctors       DoctorsConfig
	Display       DisplayConfig
	Logger        LoggerConfig
}

type DBConfig struct {
	Driver     string
	Host       string
	Port       string
	User       string
	Password   string
	DBName     string
	SSLMode    string
	SQLitePath string
}

// RedisConfig is optional; an empty Host keeps the query cache and bot
// state in memory.
type RedisConfig struct {
	Host     string
	Port     string
	Password string
	DB       int
}

// Enabled reports whether a Redis server is configured
func (c RedisConfig) Enabled() bool {
	return c.Host != ""
}

// Addr returns host:port
func (c RedisConfig) Addr() string {
	return fmt.Sprintf("%s:%s", c.Host, c.Port)
}

type ReadingsConfig struct {
	Window          time.Duration
	RefreshInterval time.Duration
	MedicineLimit   int
}

type DoctorsConfig struct {
	DefaultLat float64
	DefaultLng float64
}

// DisplayConfig controls how times are shown to users
type DisplayConfig struct {
	Location *time.Location
}

type LoggerConfig struct {
	Level      logger.LogLevel
	OutputPath string
	Format     string
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func parseLogLevel(level string) logger.LogLevel {
	switch strings.ToLower(level) {
	case "debug":
		return logger.LevelDebug
	case "info":
		return logger.LevelInfo
	case "warn", "warning":
		return logger.LevelWarn
	case "error":
		return logger.LevelError
	default:
		return logger.LevelInfo
	}
}

// Load reads configuration from the environment and validates it. Parse
// failures and validation problems are joined into one error.
func Load() (*Config, error) {
	var errs []error

	intVar := func(key, def string) int {
		v, err := strconv.Atoi(getEnvOrDefault(key, def))
		if err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", key, err))
		}
		return v
	}
	floatVar := func(key, def string) float64 {
		v, err := strconv.ParseFloat(getEnvOrDefault(key, def), 64)
		if err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", key, err))
		}
		return v
	}
	durationVar := func(key, def string) time.Duration {
		v, err := time.ParseDuration(getEnvOrDefault(key, def))
		if err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", key, err))
		}
		return v
	}
	locationVar := func(key, def string) *time.Location {
		loc, err := time.LoadLocation(getEnvOrDefault(key, def))
		if err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", key, err))
			return time.UTC
		}
		return loc
	}

	cfg := &Config{
		TelegramToken: os.Getenv("TELEGRAM_BOT_TOKEN"),
		DB: DBConfig{
			Driver:     strings.ToLower(getEnvOrDefault("DB_DRIVER", DriverPostgres)),
			Host:       getEnvOrDefault("DB_HOST", "localhost"),
			Port:       getEnvOrDefault("DB_PORT", "5432"),
			User:       getEnvOrDefault("DB_USER", "postgres"),
			Password:   getEnvOrDefault("DB_PASSWORD", "postgres"),
			DBName:     getEnvOrDefault("DB_NAME", "diabetes_tracker"),
			SSLMode:    getEnvOrDefault("DB_SSLMODE", "disable"),
			SQLitePath: getEnvOrDefault("SQLITE_PATH", "data/diabetes_tracker.db"),
		},
		Redis: RedisConfig{
			Host:     os.Getenv("REDIS_HOST"),
			Port:     getEnvOrDefault("REDIS_PORT", "6379"),
			Password: os.Getenv("REDIS_PASSWORD"),
			DB:       intVar("REDIS_DB", "0"),
		},
		Readings: ReadingsConfig{
			Window:          time.Duration(intVar("READINGS_WINDOW_DAYS", "7")) * 24 * time.Hour,
			RefreshInterval: durationVar("READINGS_REFRESH_INTERVAL", "1s"),
			MedicineLimit:   intVar("MEDICINE_LOG_LIMIT", "5"),
		},
		Doctors: DoctorsConfig{
			DefaultLat: floatVar("DEFAULT_MAP_LAT", "40.7128"),
			DefaultLng: floatVar("DEFAULT_MAP_LNG", "-74.0060"),
		},
		Display: DisplayConfig{
			Location: locationVar("DISPLAY_TIMEZONE", "UTC"),
		},
		Logger: LoggerConfig{
			Level:      parseLogLevel(getEnvOrDefault("LOG_LEVEL", "info")),
			OutputPath: getEnvOrDefault("LOG_OUTPUT", "logs/app.log"),
			Format:     getEnvOrDefault("LOG_FORMAT", "json"),
		},
	}

	if err := cfg.Validate(); err != nil {
		errs = append(errs, err)
	}
	if len(errs) > 0 {
		return nil, errors.Join(errs...)
	}
	return cfg, nil
}

// Validate checks required values and ranges
func (c *Config) Validate() error {
	var errs []error

	if c.TelegramToken == "" {
		errs = append(errs, errors.New("TELEGRAM_BOT_TOKEN is required"))
	}

	switch c.DB.Driver {
	case DriverPostgres:
		if c.DB.Host == "" || c.DB.DBName == "" {
			errs = append(errs, errors.New("DB_HOST and DB_NAME are required for postgres"))
		}
	case DriverSQLite:
		if c.DB.SQLitePath == "" {
			errs = append(errs, errors.New("SQLITE_PATH is required for sqlite"))
		}
	default:
		errs = append(errs, fmt.Errorf("DB_DRIVER must be %q or %q, got %q", DriverPostgres, DriverSQLite, c.DB.Driver))
	}

	if c.Readings.Window <= 0 {
		errs = append(errs, errors.New("READINGS_WINDOW_DAYS must be positive"))
	}
	if c.Readings.RefreshInterval < 0 {
		errs = append(errs, errors.New("READINGS_REFRESH_INTERVAL must not be negative"))
	}
	if c.Readings.MedicineLimit <= 0 {
		errs = append(errs, errors.New("MEDICINE_LOG_LIMIT must be positive"))
	}
	// written as negated ranges so NaN is rejected too
	if !(c.Doctors.DefaultLat >= -90 && c.Doctors.DefaultLat <= 90) {
		errs = append(errs, errors.New("DEFAULT_MAP_LAT must be within [-90, 90]"))
	}
	if !(c.Doctors.DefaultLng >= -180 && c.Doctors.DefaultLng <= 180) {
		errs = append(errs, errors.New("DEFAULT_MAP_LNG must be within [-180, 180]"))
	}
	if c.Logger.Format != "json" && c.Logger.Format != "text" {
		errs = append(errs, fmt.Errorf("LOG_FORMAT must be json or text, got %q", c.Logger.Format))
	}

	return errors.Join(errs...)
}
