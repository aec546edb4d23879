package config

import (
	"log"
	"os"
	"strconv"
	"strings"
	"time"
	_ "time/tzdata" // APP_TIMEZONE must resolve on hosts without zoneinfo

	"github.com/joho/godotenv"

	"convoy_tracker/internal/logger"
)

type Config struct {
	App      *AppConfig
	Database *DatabaseConfig
	Log      *logger.Options
}

type AppConfig struct {
	Env                string
	Host               string
	Port               int
	Timezone           string
	Location           *time.Location // zone used for timestamps sent without an offset
	CORSAllowedOrigins []string
	ReadTimeout        time.Duration
	WriteTimeout       time.Duration
	ShutdownTimeout    time.Duration
}

type DatabaseConfig struct {
	Host         string
	Port         string
	User         string
	Password     string
	Name         string
	SSLMode      string
	Timezone     string
	MaxOpenConns int
	MaxIdleConns int
}

// Load reads .env (if present) and then the process environment.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found – relying on env vars")
	}

	app, err := loadAppConfig()
	if err != nil {
		return nil, err
	}
	return &Config{
		App:      app,
		Database: loadDatabaseConfig(),
		Log:      loadLogConfig(),
	}, nil
}

func loadAppConfig() (*AppConfig, error) {
	tz := getEnv("APP_TIMEZONE", "UTC")
	loc, err := time.LoadLocation(tz)
	if err != nil {
		return nil, err
	}
	return &AppConfig{
		Env:                getEnv("APP_ENV", "development"),
		Host:               getEnv("APP_HOST", "0.0.0.0"),
		Port:               getEnvAsInt("APP_PORT", 8080),
		Timezone:           tz,
		Location:           loc,
		CORSAllowedOrigins: getEnvAsSlice("CORS_ALLOWED_ORIGINS", nil),
		ReadTimeout:        getEnvAsDuration("APP_READ_TIMEOUT", 15*time.Second),
		WriteTimeout:       getEnvAsDuration("APP_WRITE_TIMEOUT", 30*time.Second),
		ShutdownTimeout:    getEnvAsDuration("APP_SHUTDOWN_TIMEOUT", 10*time.Second),
	}, nil
}

func loadDatabaseConfig() *DatabaseConfig {
	return &DatabaseConfig{
		Host:         getEnv("DB_HOST", "localhost"),
		Port:         getEnv("DB_PORT", "5432"),
		User:         getEnv("DB_USER", "postgres"),
		Password:     getEnv("DB_PASSWORD", "password"),
		Name:         getEnv("DB_NAME", "convoy"),
		SSLMode:      getEnv("DB_SSLMODE", "disable"),
		Timezone:     getEnv("DB_TIMEZONE", "UTC"),
		MaxOpenConns: getEnvAsInt("DB_MAX_OPEN_CONNS", 20),
		MaxIdleConns: getEnvAsInt("DB_MAX_IDLE_CONNS", 5),
	}
}

func loadLogConfig() *logger.Options {
	return &logger.Options{
		Level:      getEnv("LOG_LEVEL", "debug"),
		Format:     getEnv("LOG_FORMAT", "text"),
		File:       getEnv("LOG_FILE", "./logs/app.log"),
		MaxSizeMB:  getEnvAsInt("LOG_MAX_SIZE_MB", 10),
		MaxBackups: getEnvAsInt("LOG_MAX_BACKUPS", 7),
		MaxAgeDays: getEnvAsInt("LOG_MAX_AGE_DAYS", 7),
		Compress:   getEnvAsBool("LOG_COMPRESS", true),
	}
}

// getEnv reads an environment variable or returns the provided default
func getEnv(key, defaultValue string) string {
	if v, exists := os.LookupEnv(key); exists {
		return v
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if v, err := strconv.Atoi(getEnv(key, "")); err == nil {
		return v
	}
	return defaultValue
}

func getEnvAsBool(key string, defaultValue bool) bool {
	if v, err := strconv.ParseBool(getEnv(key, "")); err == nil {
		return v
	}
	return defaultValue
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	if v, err := time.ParseDuration(getEnv(key, "")); err == nil {
		return v
	}
	return defaultValue
}

func getEnvAsSlice(key string, defaultValue []string) []string {
	raw := getEnv(key, "")
	if raw == "" {
		return defaultValue
	}
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
