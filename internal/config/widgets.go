package config

import (
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/janekbaraniewski/perfstats/internal/core"
	"github.com/janekbaraniewski/perfstats/internal/stats"
)

// BuildOptions are the host-side dependencies injected into every widget.
type BuildOptions struct {
	Clock  core.Clock
	Logger logrus.FieldLogger
}

// BuildWidgets constructs one widget per configured entry, in order.
func BuildWidgets(cfg Config, opts BuildOptions) ([]*stats.Widget, error) {
	widgets := make([]*stats.Widget, 0, len(cfg.Widgets))
	for i, wc := range cfg.Widgets {
		sc, err := wc.StatsConfig()
		if err != nil {
			return nil, fmt.Errorf("widget %d: %w", i, err)
		}
		sc.Clock = opts.Clock
		sc.Logger = opts.Logger

		w, err := stats.New(sc)
		if err != nil {
			return nil, fmt.Errorf("widget %d (%s): %w", i, sc.Name, err)
		}
		widgets = append(widgets, w)
	}
	return widgets, nil
}
