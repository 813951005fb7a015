package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/example/bpos/internal/ports/primary"
	"github.com/example/bpos/internal/wire"
)

// RiskCmd returns the risk command
func RiskCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "risk",
		Short: "Manage project risks",
	}

	cmd.AddCommand(riskCreateCmd())
	cmd.AddCommand(riskListCmd())
	cmd.AddCommand(riskDeleteCmd())

	return cmd
}

func riskCreateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "create [project-id] [title]",
		Short: "Create a new risk",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			configureWire()
			level, _ := cmd.Flags().GetString("level")
			description, _ := cmd.Flags().GetString("description")
			mitigation, _ := cmd.Flags().GetString("mitigation")

			risk, err := wire.RiskService().CreateRisk(context.Background(), primary.CreateRiskRequest{
				ProjectID:   args[0],
				Title:       args[1],
				Level:       level,
				Description: description,
				Mitigation:  mitigation,
			})
			if err != nil {
				return fmt.Errorf("failed to create risk: %w", err)
			}

			fmt.Printf("✓ Created risk %s: %s (%s)\n", risk.ID, risk.Title, risk.Level)
			return nil
		},
	}
	cmd.Flags().StringP("level", "l", "medium", "Risk level (low, medium, high, critical)")
	cmd.Flags().StringP("description", "d", "", "Risk description")
	cmd.Flags().StringP("mitigation", "m", "", "Mitigation plan")
	return cmd
}

func riskListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list [project-id]",
		Short: "List risks for a project",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			configureWire()
			risks, err := wire.RiskService().ListRisks(context.Background(), args[0])
			if err != nil {
				return fmt.Errorf("failed to list risks: %w", err)
			}

			if len(risks) == 0 {
				fmt.Println("No risks found")
				return nil
			}

			fmt.Printf("\n%-38s %-10s %s\n", "ID", "LEVEL", "TITLE")
			fmt.Println("────────────────────────────────────────────────────────────────────────")
			for _, risk := range risks {
				fmt.Printf("%-38s %-10s %s\n", risk.ID, risk.Level, risk.Title)
			}
			fmt.Println()
			return nil
		},
	}
}

func riskDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete [risk-id]",
		Short: "Delete a risk",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			configureWire()
			if err := wire.RiskService().DeleteRisk(context.Background(), args[0]); err != nil {
				return fmt.Errorf("failed to delete risk: %w", err)
			}
			fmt.Printf("✓ Deleted risk %s\n", args[0])
			return nil
		},
	}
}
