package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/akinaridici/stowagemaster/internal/infrastructure/config"
)

// NewRootCommand builds the stowagemaster CLI's command tree. Each
// subcommand is composed from its own New*Command() constructor,
// matching the teacher's composition-root style.
func NewRootCommand() *cobra.Command {
	var configPath string

	root := &cobra.Command{
		Use:   "stowagemaster",
		Short: "Stowage planning engine for liquid-cargo tankers",
		Long: `stowagemaster computes stowage plans for liquid-cargo tanker vessels.

Given a ship's tank layout and a list of cargo orders, it assigns cargo
fractions to tanks maximizing loaded volume under stability, minimum
fill, and cargo-grouping constraints.

Examples:
  stowagemaster optimize --ship tanker-a --cargo cargo.json
  stowagemaster score --plan plan-123
  stowagemaster ship list`,
	}

	root.PersistentFlags().StringVar(&configPath, "config", "", "path to config file")

	loadCfg := func() *config.Config {
		return config.LoadConfigOrDefault(configPath)
	}

	root.AddCommand(NewShipCommand(loadCfg))
	root.AddCommand(NewOptimizeCommand(loadCfg))
	root.AddCommand(NewScoreCommand(loadCfg))
	root.AddCommand(NewValidateCommand(loadCfg))
	root.AddCommand(NewPlanCommand(loadCfg))

	return root
}

// Execute runs the root command, exiting non-zero on error.
func Execute() {
	if err := NewRootCommand().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
