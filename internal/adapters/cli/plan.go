package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/akinaridici/stowagemaster/internal/adapters/persistence"
	"github.com/akinaridici/stowagemaster/internal/infrastructure/config"
)

// NewPlanCommand creates the plan command with subcommands for
// inspecting previously saved plans.
func NewPlanCommand(loadCfg configLoader) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "plan",
		Short: "Inspect saved stowage plans",
		Long: `Inspect stowage plans saved by a prior 'optimize --save' run.

Examples:
  stowagemaster plan list
  stowagemaster plan show plan-123
  stowagemaster plan recent
  stowagemaster plan delete plan-123`,
	}

	cmd.AddCommand(newPlanListCommand(loadCfg))
	cmd.AddCommand(newPlanShowCommand(loadCfg))
	cmd.AddCommand(newPlanDeleteCommand(loadCfg))
	cmd.AddCommand(newPlanRecentCommand())

	return cmd
}

func newPlanListCommand(loadCfg configLoader) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List saved plans, newest first",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := loadCfg()
			db, err := openDB(cfg)
			if err != nil {
				return err
			}
			repo := persistence.NewPlanRepository(db)
			plans, err := repo.ListAll()
			if err != nil {
				return fmt.Errorf("failed to list plans: %w", err)
			}
			if len(plans) == 0 {
				fmt.Println("No plans saved.")
				return nil
			}
			for _, plan := range plans {
				fmt.Printf("%-20s %-24s ship=%-16s created=%s\n", plan.ID, plan.Name, plan.ShipRef, plan.CreatedAt.Format("2006-01-02 15:04"))
			}
			return nil
		},
	}
}

func newPlanShowCommand(loadCfg configLoader) *cobra.Command {
	return &cobra.Command{
		Use:   "show <id>",
		Short: "Show a saved plan's tank assignments",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := loadCfg()
			db, err := openDB(cfg)
			if err != nil {
				return err
			}
			repo := persistence.NewPlanRepository(db)
			plan, err := repo.FindByID(args[0])
			if err != nil {
				return fmt.Errorf("failed to load plan: %w", err)
			}
			if plan == nil {
				return fmt.Errorf("no plan found with id %q", args[0])
			}

			fmt.Printf("Plan %s (%s)\n", plan.ID, plan.Name)
			fmt.Printf("Ship: %s   Created: %s\n\n", plan.ShipRef, plan.CreatedAt.Format("2006-01-02 15:04"))
			fmt.Printf("Loaded volume: %.2f\n\n", plan.LoadedVolume())
			for tankID, a := range plan.Assignments {
				fmt.Printf("  %-12s cargo=%-12s qty=%.2f\n", tankID, a.CargoID, a.QuantityLoaded)
			}
			if len(plan.ExcludedTanks) > 0 {
				fmt.Println("\nExcluded tanks:")
				for tankID := range plan.ExcludedTanks {
					fmt.Printf("  %s\n", tankID)
				}
			}
			return nil
		},
	}
}

func newPlanDeleteCommand(loadCfg configLoader) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a saved plan",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := loadCfg()
			db, err := openDB(cfg)
			if err != nil {
				return err
			}
			repo := persistence.NewPlanRepository(db)
			if err := repo.Delete(args[0]); err != nil {
				return fmt.Errorf("failed to delete plan: %w", err)
			}
			fmt.Printf("Deleted plan %q\n", args[0])
			return nil
		},
	}
}

func newPlanRecentCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "recent",
		Short: "List the most-recently-saved plan ids",
		RunE: func(cmd *cobra.Command, args []string) error {
			handler, err := config.NewUserConfigHandler()
			if err != nil {
				return err
			}
			userCfg, err := handler.Load()
			if err != nil {
				return err
			}
			if len(userCfg.RecentPlanPaths) == 0 {
				fmt.Println("No recent plans.")
				return nil
			}
			for _, id := range userCfg.RecentPlanPaths {
				fmt.Println(id)
			}
			return nil
		},
	}
}
