package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/example/bpos/internal/ports/primary"
	"github.com/example/bpos/internal/wire"
)

// ADRCmd returns the adr command
func ADRCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "adr",
		Short: "Manage architecture decision records",
		Long:  `Create and manage ADRs. An accepted or locked ADR gates the decisions_locked → building transition; a locked ADR's decision text is immutable.`,
	}

	cmd.AddCommand(adrCreateCmd())
	cmd.AddCommand(adrListCmd())
	cmd.AddCommand(adrShowCmd())
	cmd.AddCommand(adrStatusCmd())
	cmd.AddCommand(adrDeleteCmd())

	return cmd
}

func adrCreateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "create [project-id] [title]",
		Short: "Create a new ADR",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			configureWire()
			decision, _ := cmd.Flags().GetString("decision")
			adrContext, _ := cmd.Flags().GetString("context")
			consequences, _ := cmd.Flags().GetString("consequences")

			adr, err := wire.ADRService().CreateADR(context.Background(), primary.CreateADRRequest{
				ProjectID:    args[0],
				Title:        args[1],
				Decision:     decision,
				Context:      adrContext,
				Consequences: consequences,
			})
			if err != nil {
				return fmt.Errorf("failed to create ADR: %w", err)
			}

			fmt.Printf("✓ Created ADR %s: %s\n", adr.ID, adr.Title)
			return nil
		},
	}
	cmd.Flags().String("decision", "", "The decision text (required)")
	cmd.Flags().String("context", "", "Context behind the decision")
	cmd.Flags().String("consequences", "", "Consequences of the decision")
	return cmd
}

func adrListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list [project-id]",
		Short: "List ADRs for a project",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			configureWire()
			adrs, err := wire.ADRService().ListADRs(context.Background(), args[0])
			if err != nil {
				return fmt.Errorf("failed to list ADRs: %w", err)
			}

			if len(adrs) == 0 {
				fmt.Println("No ADRs found")
				return nil
			}

			fmt.Printf("\n%-38s %-12s %s\n", "ID", "STATUS", "TITLE")
			fmt.Println("────────────────────────────────────────────────────────────────────────")
			for _, adr := range adrs {
				fmt.Printf("%-38s %-12s %s\n", adr.ID, adr.Status, adr.Title)
			}
			fmt.Println()
			return nil
		},
	}
}

func adrShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show [adr-id]",
		Short: "Show ADR details",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			configureWire()
			adr, err := wire.ADRService().GetADR(context.Background(), args[0])
			if err != nil {
				return fmt.Errorf("failed to get ADR: %w", err)
			}

			fmt.Printf("\nADR:      %s\n", adr.ID)
			fmt.Printf("Title:    %s\n", adr.Title)
			fmt.Printf("Status:   %s\n", adr.Status)
			if adr.LockedAt != "" {
				fmt.Printf("Locked:   %s\n", adr.LockedAt)
			}
			if adr.Context != "" {
				fmt.Printf("\nContext:\n%s\n", adr.Context)
			}
			fmt.Printf("\nDecision:\n%s\n", adr.Decision)
			if adr.Consequences != "" {
				fmt.Printf("\nConsequences:\n%s\n", adr.Consequences)
			}
			fmt.Println()
			return nil
		},
	}
}

func adrStatusCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "status [adr-id] [status]",
		Short: "Change an ADR's status (draft, proposed, accepted, rejected, superseded, locked)",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			configureWire()
			ctx := context.Background()
			current, err := wire.ADRService().GetADR(ctx, args[0])
			if err != nil {
				return fmt.Errorf("failed to get ADR: %w", err)
			}

			adr, err := wire.ADRService().UpdateADR(ctx, primary.UpdateADRRequest{
				ADRID:        args[0],
				Title:        current.Title,
				Context:      current.Context,
				Decision:     current.Decision,
				Consequences: current.Consequences,
				Status:       args[1],
			})
			if err != nil {
				return fmt.Errorf("failed to update ADR: %w", err)
			}

			fmt.Printf("✓ ADR %s is now %s\n", adr.ID, adr.Status)
			return nil
		},
	}
}

func adrDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete [adr-id]",
		Short: "Delete an ADR",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			configureWire()
			if err := wire.ADRService().DeleteADR(context.Background(), args[0]); err != nil {
				return fmt.Errorf("failed to delete ADR: %w", err)
			}
			fmt.Printf("✓ Deleted ADR %s\n", args[0])
			return nil
		},
	}
}
