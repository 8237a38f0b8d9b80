package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/akinaridici/stowagemaster/internal/adapters/persistence"
	"github.com/akinaridici/stowagemaster/internal/infrastructure/config"
)

// NewShipCommand creates the ship command with subcommands for managing
// saved tank-layout profiles.
func NewShipCommand(loadCfg configLoader) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "ship",
		Short: "Manage saved ship tank-layout profiles",
		Long: `Manage saved ship tank-layout profiles.

A ship profile is a named, ordered list of tanks (port/starboard pairs by
row) that the optimize, score, and validate commands can reference by id
instead of re-reading a JSON file every time.

Examples:
  stowagemaster ship create --file tanker-a.json
  stowagemaster ship list
  stowagemaster ship show tanker-a
  stowagemaster ship set-default tanker-a`,
	}

	cmd.AddCommand(newShipCreateCommand(loadCfg))
	cmd.AddCommand(newShipListCommand(loadCfg))
	cmd.AddCommand(newShipShowCommand(loadCfg))
	cmd.AddCommand(newShipDeleteCommand(loadCfg))
	cmd.AddCommand(newShipSetDefaultCommand())

	return cmd
}

func newShipCreateCommand(loadCfg configLoader) *cobra.Command {
	var file string

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Load a ship profile from a tank-layout JSON file and save it",
		RunE: func(cmd *cobra.Command, args []string) error {
			if file == "" {
				return fmt.Errorf("--file flag is required")
			}
			ship, err := loadShipFile(file)
			if err != nil {
				return err
			}

			cfg := loadCfg()
			db, err := openDB(cfg)
			if err != nil {
				return err
			}
			repo := persistence.NewShipProfileRepository(db)
			if err := repo.Save(ship); err != nil {
				return fmt.Errorf("failed to save ship profile: %w", err)
			}

			fmt.Printf("Saved ship profile %q (%d tanks, %.2f total capacity)\n", ship.ID, len(ship.Tanks), ship.TotalCapacity())
			return nil
		},
	}

	cmd.Flags().StringVar(&file, "file", "", "path to a ship tank-layout JSON file (required)")
	cmd.MarkFlagRequired("file")

	return cmd
}

func newShipListCommand(loadCfg configLoader) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List saved ship profiles",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := loadCfg()
			db, err := openDB(cfg)
			if err != nil {
				return err
			}
			repo := persistence.NewShipProfileRepository(db)
			ships, err := repo.ListAll()
			if err != nil {
				return fmt.Errorf("failed to list ship profiles: %w", err)
			}
			if len(ships) == 0 {
				fmt.Println("No ship profiles saved.")
				return nil
			}
			for _, ship := range ships {
				fmt.Printf("%-20s %-24s tanks=%-4d capacity=%.2f\n", ship.ID, ship.Name, len(ship.Tanks), ship.TotalCapacity())
			}
			return nil
		},
	}
}

func newShipShowCommand(loadCfg configLoader) *cobra.Command {
	return &cobra.Command{
		Use:   "show <id>",
		Short: "Show a ship profile's tank layout",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := loadCfg()
			db, err := openDB(cfg)
			if err != nil {
				return err
			}
			repo := persistence.NewShipProfileRepository(db)
			ship, err := repo.FindByID(args[0])
			if err != nil {
				return fmt.Errorf("failed to load ship profile: %w", err)
			}
			if ship == nil {
				return fmt.Errorf("no ship profile found with id %q", args[0])
			}
			fmt.Printf("Ship %s (%s)\n", ship.ID, ship.Name)
			fmt.Printf("Rows: %d   Total capacity: %.2f\n\n", ship.TotalRows(), ship.TotalCapacity())
			for i, tank := range ship.Tanks {
				fmt.Printf("  [%2d] %-10s %-16s volume=%.2f\n", i, tank.ID, tank.Name, tank.Volume)
			}
			return nil
		},
	}
}

func newShipDeleteCommand(loadCfg configLoader) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a saved ship profile",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := loadCfg()
			db, err := openDB(cfg)
			if err != nil {
				return err
			}
			repo := persistence.NewShipProfileRepository(db)
			if err := repo.Delete(args[0]); err != nil {
				return fmt.Errorf("failed to delete ship profile: %w", err)
			}
			fmt.Printf("Deleted ship profile %q\n", args[0])
			return nil
		},
	}
}

func newShipSetDefaultCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "set-default <id>",
		Short: "Set the default ship profile used when --ship is omitted",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			handler, err := config.NewUserConfigHandler()
			if err != nil {
				return err
			}
			if err := handler.SetDefaultShipProfile(args[0]); err != nil {
				return fmt.Errorf("failed to set default ship profile: %w", err)
			}
			fmt.Printf("Default ship profile set to %q\n", args[0])
			return nil
		},
	}
}
