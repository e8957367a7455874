package main

import (
	"fmt"
	"io"
	"time"

	"github.com/spf13/cobra"

	"github.com/janekbaraniewski/perfstats/internal/config"
	"github.com/janekbaraniewski/perfstats/internal/core"
	"github.com/janekbaraniewski/perfstats/internal/stats"
	"github.com/janekbaraniewski/perfstats/internal/tui"
)

// simEpoch is the fixed start of the simulated clock.
var simEpoch = time.UnixMilli(1_700_000_000_000)

type simOptions struct {
	frames  int
	frame   time.Duration
	jitter  time.Duration
	heapMiB float64
}

func newSimCommand(flags *globalFlags) *cobra.Command {
	opts := simOptions{}
	cmd := &cobra.Command{
		Use:   "sim",
		Short: "Run the widgets headless on a simulated clock and print them",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.LoadFrom(flags.path())
			if err != nil {
				return err
			}
			return runSim(cmd.OutOrStdout(), cfg, opts)
		},
	}
	cmd.Flags().IntVar(&opts.frames, "frames", 600, "number of frames to simulate")
	cmd.Flags().DurationVar(&opts.frame, "frame", 16*time.Millisecond, "simulated frame interval")
	cmd.Flags().DurationVar(&opts.jitter, "jitter", 4*time.Millisecond, "extra delay added to every third frame")
	cmd.Flags().Float64Var(&opts.heapMiB, "heap-mib", 64, "heap size reported to memory widgets")
	return cmd
}

// runSim drives every configured widget through opts.frames ticks of a
// manual clock. Memory widgets read a synthetic heap that grows by one
// MiB per simulated second so the output is reproducible.
func runSim(w io.Writer, cfg config.Config, opts simOptions) error {
	if opts.frames < 0 {
		return fmt.Errorf("frames must not be negative, got %d", opts.frames)
	}
	if opts.frame <= 0 {
		return fmt.Errorf("frame interval must be positive, got %s", opts.frame)
	}

	clock := core.NewManualClock(simEpoch)
	heap := func() uint64 {
		elapsed := clock.Now().Sub(simEpoch).Seconds()
		return uint64((opts.heapMiB + elapsed) * (1 << 20))
	}

	widgets := make([]*stats.Widget, 0, len(cfg.Widgets))
	for i, wc := range cfg.Widgets {
		sc, err := wc.StatsConfig()
		if err != nil {
			return fmt.Errorf("widget %d: %w", i, err)
		}
		if (wc.Preset == "mem" && wc.Source == "") || wc.Source == "memory" {
			sc.Source = core.MemorySource(heap)
		}
		sc.Clock = clock
		widget, err := stats.New(sc)
		if err != nil {
			return fmt.Errorf("widget %d: %w", i, err)
		}
		widgets = append(widgets, widget)
	}

	for f := 0; f < opts.frames; f++ {
		for _, widget := range widgets {
			widget.Tick()
		}
		step := opts.frame
		if opts.jitter > 0 && f%3 == 2 {
			step += opts.jitter
		}
		clock.Advance(step)
	}

	for _, widget := range widgets {
		fmt.Fprintln(w, tui.RenderElement(widget.Element()))
		snap := widget.Snapshot()
		if snap.Emissions == 0 {
			fmt.Fprintf(w, "%s: mode=%s no emissions\n\n", snap.Name, snap.Mode)
			continue
		}
		fmt.Fprintf(w, "%s: mode=%s last=%s min=%s max=%s emissions=%d\n\n",
			snap.Name, snap.Mode, core.FormatValue(snap.Last),
			core.FormatValue(snap.Min), core.FormatValue(snap.Max), snap.Emissions)
	}
	return nil
}
