package common

import (
	"os"
	"strconv"
	"time"
)

// Config holds all application configuration
type Config struct {
	Watch   WatchConfig
	Queue   QueueConfig
	OCR     OCRConfig
	Journal JournalConfig
	Infer   InferConfig
	Log     LogConfig
}

// WatchConfig holds folder-watching configuration
type WatchConfig struct {
	Root     string
	Debounce time.Duration
}

// QueueConfig holds worker-pool configuration
type QueueConfig struct {
	Workers int
	Size    int
}

// OCRConfig holds recognition-fallback configuration
type OCRConfig struct {
	Pdftoppm    string
	Tesseract   string
	Lang        string // tesseract language list, e.g. "deu+eng"
	DPI         int
	TessdataDir string
}

// JournalConfig holds the optional processing-history database
type JournalConfig struct {
	Path string // empty disables the journal
}

// InferConfig holds heuristics configuration
type InferConfig struct {
	ProfilePath string // optional JSON heuristics profile; empty uses built-in defaults
}

// LogConfig holds logging configuration
type LogConfig struct {
	Level string
}

// LoadConfig loads configuration from environment variables
func LoadConfig() *Config {
	return &Config{
		Watch: WatchConfig{
			Root:     getEnv("WATCH_DIR", ""),
			Debounce: getEnvAsDuration("WATCH_DEBOUNCE", 500*time.Millisecond),
		},
		Queue: QueueConfig{
			Workers: getEnvAsInt("QUEUE_WORKERS", 2),
			Size:    getEnvAsInt("QUEUE_SIZE", 256),
		},
		OCR: OCRConfig{
			Pdftoppm:    getEnv("PDFTOPPM", "pdftoppm"),
			Tesseract:   getEnv("TESSERACT", "tesseract"),
			Lang:        getEnv("OCR_LANG", "deu+eng"),
			DPI:         getEnvAsInt("OCR_DPI", 300),
			TessdataDir: getEnv("TESSDATA_PREFIX", ""),
		},
		Journal: JournalConfig{
			Path: getEnv("JOURNAL_PATH", ""),
		},
		Infer: InferConfig{
			ProfilePath: getEnv("HEURISTICS_PROFILE", ""),
		},
		Log: LogConfig{
			Level: getEnv("LOG_LEVEL", "info"),
		},
	}
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

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}

// Validate validates the loaded configuration
func (c *Config) Validate() error {
	if c.Watch.Root == "" {
		return NewAppError("CONFIG_ERROR", "WATCH_DIR is required", ErrInvalidInput)
	}
	if c.Queue.Workers <= 0 {
		return NewAppError("CONFIG_ERROR", "QUEUE_WORKERS must be positive", ErrInvalidInput)
	}
	if c.OCR.DPI <= 0 {
		return NewAppError("CONFIG_ERROR", "OCR_DPI must be positive", ErrInvalidInput)
	}
	return nil
}
