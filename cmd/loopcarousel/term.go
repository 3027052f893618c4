package main

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"

	"github.com/gdamore/tcell/v2"
	"github.com/spf13/cobra"

	"github.com/depeter/loopcarousel/internal/term"
)

var termCmd = &cobra.Command{
	Use:   "term",
	Short: "Run the carousel in the terminal with mouse drag input",
	RunE: func(cmd *cobra.Command, args []string) error {
		screen, err := tcell.NewScreen()
		if err != nil {
			return err
		}
		if err := screen.Init(); err != nil {
			return err
		}
		defer screen.Fini()
		screen.EnableMouse()

		f, err := term.New(screen, cfg.Params(), cfg.Terminal.ColumnsPerCell, logger)
		if err != nil {
			return err
		}

		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		if err := f.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
			return err
		}
		return nil
	},
}
