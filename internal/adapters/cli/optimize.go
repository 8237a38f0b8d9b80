package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"gorm.io/gorm"

	engine "github.com/akinaridici/stowagemaster/internal/application/stowage"
	"github.com/akinaridici/stowagemaster/internal/adapters/persistence"
	"github.com/akinaridici/stowagemaster/internal/domain/stowage"
	"github.com/akinaridici/stowagemaster/internal/infrastructure/config"
)

// NewOptimizeCommand creates the optimize command, the primary entry
// point into the solver.
func NewOptimizeCommand(loadCfg configLoader) *cobra.Command {
	var shipID string
	var shipFilePath string
	var cargoFilePath string
	var excludedTanks []string
	var algorithm string
	var retries int
	var save bool
	var planName string

	cmd := &cobra.Command{
		Use:   "optimize",
		Short: "Compute a stowage plan for a ship and a set of cargo orders",
		Long: `Compute a stowage plan maximizing loaded volume under the ship's
stability, minimum-fill, and cargo-grouping constraints.

Reads cargo orders from a JSON file. The ship layout comes either from a
saved profile (--ship) or a standalone JSON file (--ship-file).

Examples:
  stowagemaster optimize --ship tanker-a --cargo cargo.json
  stowagemaster optimize --ship-file tanker-a.json --cargo cargo.json --algorithm phase
  stowagemaster optimize --ship tanker-a --cargo cargo.json --retries 5 --save`,
		RunE: func(cmd *cobra.Command, cmdArgs []string) error {
			cfg := loadCfg()
			db, err := openDB(cfg)
			if err != nil {
				return err
			}

			ship, err := resolveShip(db, shipID, shipFilePath)
			if err != nil {
				return err
			}

			if cargoFilePath == "" {
				return fmt.Errorf("--cargo flag is required")
			}
			cargoes, err := loadCargoFile(cargoFilePath)
			if err != nil {
				return err
			}

			settingsRepo := persistence.NewSettingsRepository(db)
			settings, err := settingsRepo.Load()
			if err != nil {
				return fmt.Errorf("failed to load settings: %w", err)
			}
			if algorithm != "" {
				settings.OptimizationAlgorithm = stowage.Algorithm(strings.ToLower(algorithm))
			}

			client := newEngineClient(cfg)
			ctx := newContext()

			optArgs := engine.OptimizeArgs{
				Ship:          ship,
				Cargoes:       cargoes,
				ExcludedTanks: excludedTanks,
				Settings:      settings,
			}

			var plan *stowage.Plan
			if retries > 0 {
				plan, err = client.OptimizeWithRetries(ctx, optArgs, retries)
			} else {
				plan, err = client.Optimize(ctx, optArgs)
			}
			if err != nil {
				return fmt.Errorf("optimize failed: %w", err)
			}

			shortfalls, err := client.Unfulfilled(ctx, plan, cargoes)
			if err != nil {
				return fmt.Errorf("failed to compute unfulfilled cargoes: %w", err)
			}
			printPlan(plan, ship, shortfalls)

			if save {
				if planName != "" {
					plan.Name = planName
				}
				planRepo := persistence.NewPlanRepository(db)
				if err := planRepo.Save(plan, ship.ID); err != nil {
					return fmt.Errorf("failed to save plan: %w", err)
				}
				fmt.Printf("\nSaved plan %q\n", plan.ID)

				if handler, err := config.NewUserConfigHandler(); err == nil {
					_ = handler.PushRecentPlan(plan.ID)
				}
			}

			return nil
		},
	}

	cmd.Flags().StringVar(&shipID, "ship", "", "saved ship profile id")
	cmd.Flags().StringVar(&shipFilePath, "ship-file", "", "path to a standalone ship JSON file")
	cmd.Flags().StringVar(&cargoFilePath, "cargo", "", "path to a cargo orders JSON file (required)")
	cmd.Flags().StringSliceVar(&excludedTanks, "exclude-tank", nil, "tank id to exclude from loading (repeatable)")
	cmd.Flags().StringVar(&algorithm, "algorithm", "", "override the configured algorithm: phase, genetic, or legacy")
	cmd.Flags().IntVar(&retries, "retries", 0, "number of retry orderings to try (phase solver only); 0 disables retries")
	cmd.Flags().BoolVar(&save, "save", false, "save the resulting plan")
	cmd.Flags().StringVar(&planName, "name", "", "name to give the saved plan")

	return cmd
}

// resolveShip prefers an explicit standalone file over a saved profile
// id, falling back to the user config's default profile id when neither
// is given.
func resolveShip(db *gorm.DB, shipID, shipFilePath string) (*stowage.Ship, error) {
	if shipFilePath != "" {
		return loadShipFile(shipFilePath)
	}

	id, err := resolveShipProfileID(shipID)
	if err != nil {
		return nil, err
	}

	repo := persistence.NewShipProfileRepository(db)
	ship, err := repo.FindByID(id)
	if err != nil {
		return nil, fmt.Errorf("failed to load ship profile: %w", err)
	}
	if ship == nil {
		return nil, fmt.Errorf("no ship profile found with id %q", id)
	}
	return ship, nil
}

func printPlan(plan *stowage.Plan, ship *stowage.Ship, shortfalls []engine.ShortfallEntry) {
	fmt.Printf("Plan %s\n", plan.ID)
	fmt.Printf("Loaded volume: %.2f / %.2f (%.1f%%)\n\n", plan.LoadedVolume(), ship.TotalCapacity(), 100*plan.LoadedVolume()/ship.TotalCapacity())

	for _, tank := range ship.Tanks {
		a, ok := plan.Assignments[tank.ID]
		if !ok || a.QuantityLoaded <= 0 {
			fmt.Printf("  %-10s %-16s empty\n", tank.ID, tank.Name)
			continue
		}
		fmt.Printf("  %-10s %-16s cargo=%-12s qty=%.2f/%.2f\n", tank.ID, tank.Name, a.CargoID, a.QuantityLoaded, tank.Volume)
	}

	if len(shortfalls) > 0 {
		fmt.Println("\nUnfulfilled:")
		for _, u := range shortfalls {
			fmt.Printf("  %-12s remaining=%.2f\n", u.CargoID, u.RemainingVolume)
		}
	}
}
