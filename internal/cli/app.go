package cli

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/example/bpos/internal/wire"
)

// AppCmd returns the app command
func AppCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "app",
		Short: "Manage apps (top-level products)",
		Long:  `Create, list, and manage apps. Every project belongs to an app.`,
	}

	cmd.AddCommand(appCreateCmd())
	cmd.AddCommand(appListCmd())
	cmd.AddCommand(appShowCmd())
	cmd.AddCommand(appUpdateCmd())
	cmd.AddCommand(appDeleteCmd())

	return cmd
}

func appCreateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "create [name]",
		Short: "Create a new app",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			configureWire()
			description, _ := cmd.Flags().GetString("description")
			return wire.AppAdapter().Create(context.Background(), args[0], description)
		},
	}
	cmd.Flags().StringP("description", "d", "", "App description")
	return cmd
}

func appListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List all apps",
		RunE: func(cmd *cobra.Command, args []string) error {
			configureWire()
			return wire.AppAdapter().List(context.Background())
		},
	}
}

func appShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show [app-id]",
		Short: "Show app details",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			configureWire()
			return wire.AppAdapter().Show(context.Background(), args[0])
		},
	}
}

func appUpdateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "update [app-id]",
		Short: "Update an app",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			configureWire()
			name, _ := cmd.Flags().GetString("name")
			description, _ := cmd.Flags().GetString("description")
			return wire.AppAdapter().Update(context.Background(), args[0], name, description)
		},
	}
	cmd.Flags().String("name", "", "New app name")
	cmd.Flags().StringP("description", "d", "", "New app description")
	return cmd
}

func appDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete [app-id]",
		Short: "Delete an app and all of its projects",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			configureWire()
			return wire.AppAdapter().Delete(context.Background(), args[0])
		},
	}
}
