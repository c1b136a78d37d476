package views

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"pkt.systems/pslog"

	"github.com/Dallionking/stepper-tabs/internal/stepfile"
	"github.com/Dallionking/stepper-tabs/internal/stepper"
	"github.com/Dallionking/stepper-tabs/internal/tui/models"
)

// RunStepper launches the interactive stepper TUI and blocks until the user
// quits. When watchPath is set the steps are reloaded whenever that file
// changes on disk.
func RunStepper(ctx context.Context, doc *stepfile.Document, cfg stepper.TabRenderConfig, watchPath string, log pslog.Logger) error {
	model, err := models.NewStepperModel(doc, cfg, log)
	if err != nil {
		return fmt.Errorf("building stepper: %w", err)
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	if watchPath != "" {
		watcher, err := stepfile.NewWatcher(watchPath)
		if err != nil {
			return err
		}
		// Watch closes the watcher once ctx is cancelled.
		model = model.WithUpdates(watcher.Watch(ctx))
		log.Info("watching step file", "path", watcher.Path())
	}

	p := tea.NewProgram(model,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
		tea.WithContext(ctx),
	)
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("running stepper: %w", err)
	}
	return nil
}
