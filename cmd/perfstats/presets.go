package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/janekbaraniewski/perfstats/internal/core"
	"github.com/janekbaraniewski/perfstats/internal/stats"
)

func newPresetsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "presets",
		Short: "List widget presets, palettes, modes and sample sources",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return writePresets(cmd.OutOrStdout())
		},
	}
}

func writePresets(w io.Writer) error {
	fmt.Fprintln(w, "Presets:")
	for _, name := range stats.PresetNames() {
		cfg, err := stats.PresetConfig(name)
		if err != nil {
			return err
		}
		fmt.Fprintf(w, "  %-5s mode=%s period=%s palette=%s/%s\n",
			name, cfg.Mode, cfg.Period, cfg.Palette.FG.Hex(), cfg.Palette.BG.Hex())
	}

	modes := make([]string, 0, len(core.ValidModes))
	for _, m := range core.ValidModes {
		modes = append(modes, m.String())
	}
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Modes:    "+strings.Join(modes, ", "))
	fmt.Fprintln(w, "Palettes: "+strings.Join(core.PaletteNames(), ", "))
	fmt.Fprintln(w, "Sources:  "+strings.Join(core.SourceNames(), ", "))
	return nil
}
