package main

import (
	"log/slog"
	"os"

	"github.com/lite-lake/dnsops/internal/infrastructure/logger"
	"github.com/lite-lake/dnsops/internal/interfaces/cli"
)

func main() {
	logLevel := slog.LevelInfo
	if os.Getenv("DNSOPS_DEBUG") != "" {
		logLevel = slog.LevelDebug
	}

	logger.Init(&logger.Config{
		Level:     logLevel,
		Format:    os.Getenv("DNSOPS_LOG_FORMAT"),
		AddSource: os.Getenv("DNSOPS_DEBUG") != "",
	})

	cli.Execute()
}
