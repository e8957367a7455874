package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/sirupsen/logrus"

	"github.com/janekbaraniewski/perfstats/internal/config"
	"github.com/janekbaraniewski/perfstats/internal/tui"
)

func runDashboard(path string, log *logrus.Logger) error {
	cfg, err := config.LoadFrom(path)
	if err != nil {
		return fmt.Errorf("loading config %s: %w", path, err)
	}
	tui.SetThemeByName(cfg.UI.Theme)

	widgets, err := config.BuildWidgets(cfg, config.BuildOptions{Logger: log})
	if err != nil {
		return fmt.Errorf("building widgets: %w", err)
	}

	model := tui.NewModel(widgets, cfg.FrameInterval(), tui.ParseLayout(cfg.UI.Layout), log)
	program := tea.NewProgram(model, tea.WithAltScreen())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	err = config.Watch(ctx, path, log, func(next config.Config, err error) {
		program.Send(reloadMsg(next, err, log))
	})
	if err != nil {
		log.WithError(err).Warn("config hot reload disabled")
	}

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigCh)
	go func() {
		select {
		case <-sigCh:
			cancel()
			program.Quit()
		case <-ctx.Done():
		}
	}()

	if _, err := program.Run(); err != nil {
		return fmt.Errorf("TUI error: %w", err)
	}
	return nil
}

// reloadMsg turns a reloaded config into the message the dashboard applies.
// A config that fails to load or build keeps the current widgets.
func reloadMsg(cfg config.Config, loadErr error, log logrus.FieldLogger) tea.Msg {
	if loadErr != nil {
		log.WithError(loadErr).Warn("config reload failed")
		return tui.StatusMsg("config error: " + loadErr.Error())
	}
	widgets, err := config.BuildWidgets(cfg, config.BuildOptions{Logger: log})
	if err != nil {
		log.WithError(err).Warn("config reload failed")
		return tui.StatusMsg("config error: " + err.Error())
	}
	return tui.WidgetsMsg{
		Widgets: widgets,
		Layout:  tui.ParseLayout(cfg.UI.Layout),
		Theme:   cfg.UI.Theme,
	}
}
