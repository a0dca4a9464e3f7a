// Package logger centralizes zap construction so every component logs the
// same shape.
package logger

import (
	"os"

	"go.uber.org/zap"
)

// New returns a production JSON logger, or a human-friendly development
// logger when APP_ENV=development.
func New() (*zap.Logger, error) {
	if os.Getenv("APP_ENV") == "development" {
		return zap.NewDevelopment()
	}
	return zap.NewProduction()
}
