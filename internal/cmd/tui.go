package cmd

import (
	"errors"
	"fmt"
	"net/http"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"itemstore/internal/catalog"
	"itemstore/internal/feedback"
	"itemstore/internal/ui"
)

var errCatalogUnavailable = errors.New("catalog could not be loaded")

// runTUI starts the interactive storefront.
func (e *env) runTUI(cmd *cobra.Command, _ []string) error {
	cfg := e.cfg
	loader := e.newLoader()
	client := feedback.NewClient(&http.Client{Timeout: cfg.Feedback.Timeout}, e.telemetry.Tracer(), e.logger)

	model := ui.NewAppModel(ui.Options{
		Loader:          loader,
		Source:          cfg.Catalog.Source,
		Feedback:        client,
		WebhookOverride: cfg.Feedback.Webhook,
		Logger:          e.logger,
	})
	p := tea.NewProgram(model.AsTeaModel(), tea.WithAltScreen(), tea.WithContext(cmd.Context()))

	if cfg.Catalog.Watch {
		if catalog.IsRemote(cfg.Catalog.Source) {
			e.logger.Warn("watch ignored for remote catalog", zap.String("source", cfg.Catalog.Source))
		} else {
			w, err := catalog.NewWatcher(cfg.Catalog.Source, loader, func(c *catalog.Catalog, err error) {
				p.Send(ui.CatalogReloadedMsg{Catalog: c, Err: err})
			}, e.logger)
			if err != nil {
				return fmt.Errorf("watch catalog: %w", err)
			}
			if err := w.Start(cmd.Context()); err != nil {
				return fmt.Errorf("watch catalog: %w", err)
			}
			defer func() { _ = w.Stop() }()
		}
	}

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("run storefront: %w", err)
	}
	if model.Mode == ui.ModeFailed {
		return errCatalogUnavailable
	}
	return nil
}
