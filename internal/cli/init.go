package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/example/bpos/internal/config"
	"github.com/example/bpos/internal/db"
)

// InitCmd returns the init command
func InitCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "init",
		Short: "Initialize the bpos database and config",
		Long:  `Initialize the bpos database at ~/.bpos/bpos.db with the required schema and write a default config file.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			dir, err := configDir()
			if err != nil {
				return fmt.Errorf("failed to locate config directory: %w", err)
			}

			if dbPath, _ := cmd.Flags().GetString("db"); dbPath != "" {
				db.SetPath(dbPath)
			}

			database, err := db.GetDB()
			if err != nil {
				return fmt.Errorf("failed to initialize database: %w", err)
			}
			if err := db.RunMigrations(); err != nil {
				return fmt.Errorf("failed to run migrations: %w", err)
			}
			fmt.Println("✓ Database initialized")

			if err := initConfig(dir); err != nil {
				return fmt.Errorf("failed to initialize config: %w", err)
			}
			fmt.Printf("✓ Config file at %s\n", filepath.Join(dir, ".bpos", "config.json"))

			if seed, _ := cmd.Flags().GetBool("seed"); seed {
				if err := db.SeedFixtures(database); err != nil {
					return fmt.Errorf("failed to seed fixtures: %w", err)
				}
				fmt.Println("✓ Demo fixtures loaded")
			}

			fmt.Println()
			fmt.Println("Next steps:")
			fmt.Println("  bpos app create \"My App\"")
			fmt.Println("  bpos project create <app-id> \"My Project\"")

			return nil
		},
	}

	cmd.Flags().String("db", "", "Database file path (default ~/.bpos/bpos.db)")
	cmd.Flags().Bool("seed", false, "Load demo fixtures after initializing")

	return cmd
}

// initConfig writes a default config file if none exists yet.
func initConfig(dir string) error {
	path := filepath.Join(dir, ".bpos", "config.json")
	if _, err := os.Stat(path); err == nil {
		return nil // Already exists, skip
	}

	return config.SaveConfig(dir, &config.Config{
		Version: "1",
	})
}
