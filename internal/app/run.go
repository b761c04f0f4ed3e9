package app

import (
	"context"
	"fmt"

	"github.com/vk/fbxdomgo/internal/ctxlog"
)

// Run executes the main application logic: load the scene document, classify
// every object, and write the inspection report.
func (a *App) Run(ctx context.Context, appConfig *Config) error {
	ctx = ctxlog.WithLogger(ctx, a.logger)
	a.logger.Debug("App.Run method started.")

	doc, err := a.loader.Load(ctx, appConfig.ScenePath)
	if err != nil {
		return fmt.Errorf("failed to load scene: %w", err)
	}
	a.logger.Info("Scene loaded.", "objects", len(doc.ObjectIDs()))

	if err := a.report(ctx, doc); err != nil {
		return fmt.Errorf("failed to write report: %w", err)
	}

	a.logger.Debug("App.Run method finished.")
	return nil
}
