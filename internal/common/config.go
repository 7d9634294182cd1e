package common

import (
	"os"
	"strconv"
	"time"
)

// Config holds all application configuration
type Config struct {
	Database  DatabaseConfig
	Server    ServerConfig
	Extract   ExtractConfig
	Scheduler SchedulerConfig
}

// DatabaseConfig holds database-related configuration
type DatabaseConfig struct {
	DSN              string
	MaxConns         int32
	MinConns         int32
	MaxConnLifetime  time.Duration
	MaxConnIdleTime  time.Duration
	DialTimeout      time.Duration
	StatementTimeout time.Duration
}

// ServerConfig holds server-related configuration
type ServerConfig struct {
	GRPCAddr string
}

// ExtractConfig holds text-extraction configuration
type ExtractConfig struct {
	Pdftoppm       string
	Tesseract      string
	ImageConverter string
	TesseractLang  string
	TessdataDir    string
	DPI            int
	MaxPages       int
	Workers        int
	QueueSize      int
	SoftTimeout    time.Duration
	HardTimeout    time.Duration
}

// SchedulerConfig holds background-job configuration
type SchedulerConfig struct {
	UploadDir       string
	SweepInterval   time.Duration
	CleanupInterval time.Duration
	Retention       time.Duration
	BatchSize       int
}

// LoadConfig loads configuration from environment variables
func LoadConfig() *Config {
	return &Config{
		Database: DatabaseConfig{
			DSN:              getEnv("DB_URL", ""),
			MaxConns:         getEnvAsInt32("DB_MAX_CONNS", 20),
			MinConns:         getEnvAsInt32("DB_MIN_CONNS", 5),
			MaxConnLifetime:  getEnvAsDuration("DB_MAX_CONN_LIFETIME", 30*time.Minute),
			MaxConnIdleTime:  getEnvAsDuration("DB_MAX_CONN_IDLE_TIME", 5*time.Minute),
			DialTimeout:      getEnvAsDuration("DB_DIAL_TIMEOUT", 3*time.Second),
			StatementTimeout: getEnvAsDuration("DB_STATEMENT_TIMEOUT", 0),
		},
		Server: ServerConfig{
			GRPCAddr: getEnv("GRPC_ADDR", ":8080"),
		},
		Extract: ExtractConfig{
			Pdftoppm:       getEnv("PDFTOPPM_BIN", "pdftoppm"),
			Tesseract:      getEnv("TESSERACT_BIN", "tesseract"),
			ImageConverter: getEnv("IMAGE_CONVERTER", "magick"),
			TesseractLang:  getEnv("TESSERACT_LANG", "eng"),
			TessdataDir:    getEnv("TESSDATA_PREFIX", ""),
			DPI:            getEnvAsInt("OCR_DPI", 300),
			MaxPages:       getEnvAsInt("OCR_MAX_PAGES", 0),
			Workers:        getEnvAsInt("PIPELINE_WORKERS", 4),
			QueueSize:      getEnvAsInt("PIPELINE_QUEUE_SIZE", 256),
			SoftTimeout:    getEnvAsDuration("ATTEMPT_SOFT_TIMEOUT", 25*time.Minute),
			HardTimeout:    getEnvAsDuration("ATTEMPT_HARD_TIMEOUT", 30*time.Minute),
		},
		Scheduler: SchedulerConfig{
			UploadDir:       getEnv("UPLOAD_DIR", "uploads"),
			SweepInterval:   getEnvAsDuration("PENDING_SWEEP_INTERVAL", time.Minute),
			CleanupInterval: getEnvAsDuration("CLEANUP_INTERVAL", time.Hour),
			Retention:       getEnvAsDuration("UPLOAD_RETENTION", 7*24*time.Hour),
			BatchSize:       getEnvAsInt("PENDING_BATCH_SIZE", 5),
		},
	}
}

// Validate validates the loaded configuration
func (c *Config) Validate() error {
	if c.Database.DSN == "" {
		return NewAppError("CONFIG_ERROR", "DB_URL is required", ErrInvalidInput)
	}
	if c.Server.GRPCAddr == "" {
		return NewAppError("CONFIG_ERROR", "GRPC_ADDR is required", ErrInvalidInput)
	}
	if c.Extract.HardTimeout < c.Extract.SoftTimeout {
		return NewAppError("CONFIG_ERROR", "ATTEMPT_HARD_TIMEOUT must be >= ATTEMPT_SOFT_TIMEOUT", ErrInvalidInput)
	}
	return nil
}

// Helper functions for environment variable parsing
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func getEnvAsInt32(key string, defaultValue int32) int32 {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.ParseInt(value, 10, 32); err == nil {
			return int32(intVal)
		}
	}
	return defaultValue
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}
