package utils

import (
	"log"
	"os"
)

// LoggerConfig defines the logger configuration
type LoggerConfig struct {
	// Output stream (os.Stdout, a file, etc.)
	Output *os.File
	// Enable/disable console colors for the prefix
	EnableColors bool
}

// InitLogger initializes and returns the logger
func InitLogger(config ...LoggerConfig) *log.Logger {
	var cfg LoggerConfig
	if len(config) > 0 {
		cfg = config[0]
	}

	if cfg.Output == nil {
		cfg.Output = os.Stdout
	}

	prefix := "[BrainHub] "
	if cfg.EnableColors {
		prefix = "\033[36m" + prefix + "\033[0m"
	}

	return log.New(cfg.Output, prefix, log.LstdFlags|log.LUTC)
}
