package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// NewValidateCommand creates the validate command.
func NewValidateCommand(loadCfg configLoader) *cobra.Command {
	var shipID string
	var shipFilePath string
	var cargoFilePath string

	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Check whether a ship/cargo combination is structurally feasible",
		Long: `Check that the cargo requests are structurally sound (positive
volumes, a non-empty ship) and that their total requested volume does not
exceed the ship's total capacity.

Examples:
  stowagemaster validate --ship tanker-a --cargo cargo.json`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if cargoFilePath == "" {
				return fmt.Errorf("--cargo flag is required")
			}

			cfg := loadCfg()
			db, err := openDB(cfg)
			if err != nil {
				return err
			}

			ship, err := resolveShip(db, shipID, shipFilePath)
			if err != nil {
				return err
			}

			cargoes, err := loadCargoFile(cargoFilePath)
			if err != nil {
				return err
			}

			client := newEngineClient(cfg)
			ctx := newContext()
			ok, msg, err := client.Validate(ctx, ship, cargoes)
			if err != nil {
				return fmt.Errorf("validate failed: %w", err)
			}

			if ok {
				fmt.Println("OK: ship and cargo requests are feasible")
				return nil
			}
			fmt.Printf("INFEASIBLE: %s\n", msg)
			return nil
		},
	}

	cmd.Flags().StringVar(&shipID, "ship", "", "saved ship profile id")
	cmd.Flags().StringVar(&shipFilePath, "ship-file", "", "path to a standalone ship JSON file")
	cmd.Flags().StringVar(&cargoFilePath, "cargo", "", "path to a cargo orders JSON file (required)")

	return cmd
}
