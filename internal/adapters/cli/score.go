package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/akinaridici/stowagemaster/internal/adapters/persistence"
)

// NewScoreCommand creates the score command.
func NewScoreCommand(loadCfg configLoader) *cobra.Command {
	var planID string
	var shipID string
	var shipFilePath string
	var cargoFilePath string

	cmd := &cobra.Command{
		Use:   "score",
		Short: "Score a saved plan's completion, utilization, and fill balance",
		Long: `Score a saved plan against the composite metric:

  0.4*completion + 0.3*utilization + 0.2*avg_tank_fill + (10 - 10*fraction_empty)

Examples:
  stowagemaster score --plan plan-123 --ship tanker-a --cargo cargo.json`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if planID == "" {
				return fmt.Errorf("--plan flag is required")
			}
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

			planRepo := persistence.NewPlanRepository(db)
			plan, err := planRepo.FindByID(planID)
			if err != nil {
				return fmt.Errorf("failed to load plan: %w", err)
			}
			if plan == nil {
				return fmt.Errorf("no plan found with id %q", planID)
			}

			client := newEngineClient(cfg)
			ctx := newContext()
			score, err := client.Score(ctx, plan, ship, cargoes)
			if err != nil {
				return fmt.Errorf("score failed: %w", err)
			}

			fmt.Printf("Plan %s score: %.2f / 100\n", plan.ID, score)
			return nil
		},
	}

	cmd.Flags().StringVar(&planID, "plan", "", "saved plan id (required)")
	cmd.Flags().StringVar(&shipID, "ship", "", "saved ship profile id")
	cmd.Flags().StringVar(&shipFilePath, "ship-file", "", "path to a standalone ship JSON file")
	cmd.Flags().StringVar(&cargoFilePath, "cargo", "", "path to a cargo orders JSON file (required)")

	return cmd
}
