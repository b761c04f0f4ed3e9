package app

import (
	"io"
	"log/slog"

	"github.com/vk/fbxdomgo/internal/hcl"
)

// App encapsulates the application's dependencies, configuration, and
// lifecycle.
type App struct {
	outW   io.Writer
	logW   io.Writer
	logger *slog.Logger
	loader *hcl.Loader
}

// NewApp is the constructor for the main application. The report is written
// to outW; log output goes to logW so machine-readable reports stay clean.
func NewApp(outW, logW io.Writer, appConfig *Config, loader *hcl.Loader) *App {
	logger := newLogger(appConfig.LogLevel, appConfig.LogFormat, logW)
	logger.Debug("Logger configured successfully.")

	return &App{
		outW:   outW,
		logW:   logW,
		logger: logger,
		loader: loader,
	}
}
