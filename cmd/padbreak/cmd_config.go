package main

import (
	"fmt"
	"os"

	"padbreak/internal/config"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var forceConfigInit bool

// configCmd groups configuration subcommands
var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage the padbreak configuration file",
}

// configInitCmd writes the default configuration
var configInitCmd = &cobra.Command{
	Use:   "init [path]",
	Short: "Write a default configuration file",
	Long: `Writes the default configuration as YAML so it can be edited and passed
back with --config or PADBREAK_CONFIG. The path defaults to padbreak.yaml
in the current directory. An existing file is kept unless --force is given.

Example:
  padbreak config init
  padbreak config init --force ~/.config/padbreak.yaml`,
	Args: cobra.MaximumNArgs(1),
	RunE: runConfigInit,
}

func init() {
	configInitCmd.Flags().BoolVar(&forceConfigInit, "force", false, "Overwrite an existing file")
	configCmd.AddCommand(configInitCmd)
}

func runConfigInit(cmd *cobra.Command, args []string) error {
	path := "padbreak.yaml"
	if len(args) == 1 {
		path = args[0]
	}

	if _, err := os.Stat(path); err == nil && !forceConfigInit {
		return fmt.Errorf("%s already exists (use --force to overwrite)", path)
	}

	if err := config.DefaultConfig().Save(path); err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Wrote default configuration to %s\n", path)
	logger.Info("Config written", zap.String("path", path))
	return nil
}
