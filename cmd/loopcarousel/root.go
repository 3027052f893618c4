package main

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/depeter/loopcarousel/internal/config"
)

var (
	cfgFile     string
	debug       bool
	cells       int
	pitch       float64
	center      int
	sensitivity float64
	fullscreen  bool

	cfg    *config.Config
	logger *slog.Logger
)

var rootCmd = &cobra.Command{
	Use:   "loopcarousel",
	Short: "Infinite drag-controlled horizontal carousel",
	Long: `loopcarousel shows a small fixed set of cells that loop endlessly left
and right while you drag them. Without a subcommand it opens a window;
"loopcarousel term" runs the same carousel in the terminal.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		c, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		cfg = c
		return setupLogger()
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		return runWindow()
	},
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.StringVar(&cfgFile, "config", "", "config file (default is $XDG_CONFIG_HOME/loopcarousel/config.toml)")
	flags.BoolVar(&debug, "debug", false, "debug output")
	flags.IntVar(&cells, "cells", 0, "number of cells, odd and at least 3")
	flags.Float64Var(&pitch, "pitch", 0, "cell width including margins")
	flags.IntVar(&center, "center", 0, "logical index of the cell at the origin when the offset is 0")
	flags.Float64Var(&sensitivity, "sensitivity", 0, "drag sensitivity multiplier")
	rootCmd.Flags().BoolVar(&fullscreen, "fullscreen", false, "start in fullscreen")

	rootCmd.AddCommand(termCmd, initConfigCmd)
}

func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	var (
		c   *config.Config
		err error
	)
	if cfgFile != "" {
		c, err = config.LoadFile(cfgFile)
	} else {
		c, err = config.Load()
	}
	if err != nil {
		return nil, err
	}

	o := config.Overrides{Debug: debug}
	if cmd.Flags().Changed("cells") {
		o.Cells = &cells
	}
	if cmd.Flags().Changed("pitch") {
		o.Pitch = &pitch
	}
	if cmd.Flags().Changed("center") {
		o.InitialCenter = &center
	}
	if cmd.Flags().Changed("sensitivity") {
		o.Sensitivity = &sensitivity
	}
	if cmd.Flags().Changed("fullscreen") {
		o.Fullscreen = &fullscreen
	}
	if err := o.Apply(c); err != nil {
		return nil, err
	}
	return c, nil
}

func setupLogger() error {
	level, err := cfg.SlogLevel()
	if err != nil {
		return err
	}

	opts := &slog.HandlerOptions{
		Level: level,
	}

	handler := slog.NewTextHandler(os.Stderr, opts)

	logger = slog.New(handler)
	slog.SetDefault(logger)
	return nil
}
