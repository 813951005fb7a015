package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/example/bpos/internal/core/state"
	"github.com/example/bpos/internal/wire"
)

// ProjectCmd returns the project command
func ProjectCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "project",
		Short: "Manage projects and their lifecycle",
		Long:  `Create, list, and manage projects. Projects advance through a fixed lifecycle with readiness gates between states.`,
	}

	cmd.AddCommand(projectCreateCmd())
	cmd.AddCommand(projectListCmd())
	cmd.AddCommand(projectShowCmd())
	cmd.AddCommand(projectUpdateCmd())
	cmd.AddCommand(projectDeleteCmd())
	cmd.AddCommand(projectAdvanceCmd())
	cmd.AddCommand(projectRollbackCmd())
	cmd.AddCommand(projectGatesCmd())
	cmd.AddCommand(projectStatsCmd())
	cmd.AddCommand(projectActivityCmd())

	return cmd
}

func projectCreateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "create [app-id] [name]",
		Short: "Create a new project",
		Long: `Create a new project under an app. New projects always start in the
planning state.

Examples:
  bpos project create app-123 "Checkout redesign"
  bpos project create app-123 "Search v2" -d "Replace the legacy ranking"`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			configureWire()
			description, _ := cmd.Flags().GetString("description")
			return wire.ProjectAdapter().Create(context.Background(), args[0], args[1], description)
		},
	}
	cmd.Flags().StringP("description", "d", "", "Project description")
	return cmd
}

func projectListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List projects",
		RunE: func(cmd *cobra.Command, args []string) error {
			configureWire()
			appID, _ := cmd.Flags().GetString("app")
			stateFilter, _ := cmd.Flags().GetString("state")
			return wire.ProjectAdapter().List(context.Background(), appID, stateFilter)
		},
	}
	cmd.Flags().String("app", "", "Filter by app ID")
	cmd.Flags().String("state", "", "Filter by lifecycle state")
	return cmd
}

func projectShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show [project-id]",
		Short: "Show project details",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			configureWire()
			_, err := wire.ProjectAdapter().Show(context.Background(), args[0])
			return err
		},
	}
}

func projectUpdateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "update [project-id]",
		Short: "Update a project's name or description",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			configureWire()
			name, _ := cmd.Flags().GetString("name")
			description, _ := cmd.Flags().GetString("description")
			return wire.ProjectAdapter().Update(context.Background(), args[0], name, description)
		},
	}
	cmd.Flags().String("name", "", "New project name")
	cmd.Flags().StringP("description", "d", "", "New project description")
	return cmd
}

func projectDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete [project-id]",
		Short: "Delete a project and its dependent entities",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			configureWire()
			return wire.ProjectAdapter().Delete(context.Background(), args[0])
		},
	}
}

func projectAdvanceCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "advance [project-id]",
		Short: "Advance a project to the next lifecycle state",
		Long: `Advance a project to the next lifecycle state. The readiness gate for
the transition is evaluated first; a blocked gate stops the advance and
prints what is missing. --force bypasses the gate (the bypass is audited)
but never advances past the terminal state.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			configureWire()
			force, _ := cmd.Flags().GetBool("force")
			actor, _ := cmd.Flags().GetString("actor")
			return wire.LifecycleAdapter().Advance(context.Background(), args[0], actor, force)
		},
	}
	cmd.Flags().Bool("force", false, "Bypass the readiness gate (audited)")
	cmd.Flags().String("actor", "", "Actor ID recorded in the audit trail")
	return cmd
}

func projectRollbackCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "rollback [project-id]",
		Short: "Roll a project back to an earlier lifecycle state",
		Long: `Roll a project back to the previous state, or to an explicit earlier
state with --to. A reason is required. Rolling back a live project
additionally requires --yes.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			configureWire()
			reason, _ := cmd.Flags().GetString("reason")
			target, _ := cmd.Flags().GetString("to")
			yes, _ := cmd.Flags().GetBool("yes")
			actor, _ := cmd.Flags().GetString("actor")

			if target != "" && !state.IsValid(state.State(target)) {
				return fmt.Errorf("unknown state %q", target)
			}
			return wire.LifecycleAdapter().Rollback(context.Background(), args[0], actor, reason, state.State(target), yes)
		},
	}
	cmd.Flags().StringP("reason", "r", "", "Reason for the rollback (required)")
	cmd.Flags().String("to", "", "Target state (default: previous state)")
	cmd.Flags().Bool("yes", false, "Confirm rolling back a live project")
	cmd.Flags().String("actor", "", "Actor ID recorded in the audit trail")
	return cmd
}

func projectGatesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "gates [project-id]",
		Short: "Show the readiness gates ahead of a project",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			configureWire()
			target, _ := cmd.Flags().GetString("to")
			if target != "" && !state.IsValid(state.State(target)) {
				return fmt.Errorf("unknown state %q", target)
			}
			return wire.LifecycleAdapter().Gates(context.Background(), args[0], state.State(target))
		},
	}
	cmd.Flags().String("to", "", "Evaluate only the gate toward this state")
	return cmd
}

func projectStatsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "stats [project-id]",
		Short: "Show dependent-entity counts for a project",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			configureWire()
			return wire.ProjectAdapter().Stats(context.Background(), args[0])
		},
	}
}

func projectActivityCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "activity [project-id]",
		Short: "Show the audit trail for a project",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			configureWire()
			limit, _ := cmd.Flags().GetInt("limit")
			return wire.ActivityAdapter().List(context.Background(), args[0], limit)
		},
	}
	cmd.Flags().Int("limit", 0, "Maximum entries to show (default 50)")
	return cmd
}
