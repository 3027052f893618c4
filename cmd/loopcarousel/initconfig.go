package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/depeter/loopcarousel/internal/config"
)

var forceInit bool

var initConfigCmd = &cobra.Command{
	Use:   "init-config",
	Short: "Write the effective configuration to the config file",
	RunE: func(cmd *cobra.Command, args []string) error {
		path := cfgFile
		if path == "" {
			p, err := config.ConfigPath()
			if err != nil {
				return err
			}
			path = p
		}
		if _, err := os.Stat(path); err == nil && !forceInit {
			return fmt.Errorf("%s already exists, use --force to overwrite", path)
		}
		if err := cfg.SaveFile(path); err != nil {
			return err
		}
		logger.Info("wrote config", "path", path)
		return nil
	},
}

func init() {
	initConfigCmd.Flags().BoolVar(&forceInit, "force", false, "overwrite an existing config file")
}
