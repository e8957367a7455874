package main

import (
	"fmt"
	"io"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/janekbaraniewski/perfstats/internal/config"
	"github.com/janekbaraniewski/perfstats/internal/version"
)

func main() {
	if err := newRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}

type globalFlags struct {
	configPath string
	logFile    string
}

func newRootCommand() *cobra.Command {
	flags := &globalFlags{}

	root := &cobra.Command{
		Use:          "perfstats",
		Short:        "perfstats is a terminal performance monitor with rolling history graphs.",
		SilenceUsage: true,
		RunE: func(_ *cobra.Command, _ []string) error {
			log, closeLog, err := newLogger(os.Getenv("PERFSTATS_DEBUG") != "", flags.logFile)
			if err != nil {
				return err
			}
			defer closeLog()

			return runDashboard(flags.path(), log)
		},
	}
	root.PersistentFlags().StringVar(&flags.configPath, "config", "", "path to settings.json (default "+config.ConfigPath()+")")
	root.PersistentFlags().StringVar(&flags.logFile, "log-file", "", "write debug logs to this file")

	root.AddCommand(
		newSimCommand(flags),
		newPresetsCommand(),
		newConfigCommand(flags),
		newVersionCommand(),
	)
	return root
}

func (f *globalFlags) path() string {
	if f.configPath != "" {
		return f.configPath
	}
	return config.ConfigPath()
}

// newLogger returns a logger that discards everything unless debug is set.
// Debug output goes to logFile when given, stderr otherwise.
func newLogger(debug bool, logFile string) (*logrus.Logger, func(), error) {
	log := logrus.New()
	log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	if !debug && logFile == "" {
		log.SetOutput(io.Discard)
		return log, func() {}, nil
	}

	log.SetLevel(logrus.DebugLevel)
	if logFile == "" {
		log.SetOutput(os.Stderr)
		return log, func() {}, nil
	}

	f, err := os.OpenFile(logFile, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("opening log file: %w", err)
	}
	log.SetOutput(f)
	return log, func() { _ = f.Close() }, nil
}

func newVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print build information",
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintln(cmd.OutOrStdout(), "perfstats "+version.String())
		},
	}
}

func newConfigCommand(flags *globalFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage the settings file",
	}

	var force bool
	initCmd := &cobra.Command{
		Use:   "init",
		Short: "Write the default settings file",
		RunE: func(cmd *cobra.Command, _ []string) error {
			path := flags.path()
			if _, err := os.Stat(path); err == nil && !force {
				return fmt.Errorf("%s already exists (use --force to overwrite)", path)
			}
			if err := config.SaveTo(path, config.DefaultConfig()); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "wrote %s\n", path)
			return nil
		},
	}
	initCmd.Flags().BoolVar(&force, "force", false, "overwrite an existing file")

	pathCmd := &cobra.Command{
		Use:   "path",
		Short: "Print the settings file path",
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintln(cmd.OutOrStdout(), flags.path())
		},
	}

	cmd.AddCommand(initCmd, pathCmd)
	return cmd
}
