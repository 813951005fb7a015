package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/example/bpos/internal/ports/primary"
	"github.com/example/bpos/internal/wire"
)

// TestCmd returns the test command
func TestCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "test",
		Short: "Manage test records",
		Long:  `Create test records and record their results. A passed test gates the testing → ready_to_ship transition.`,
	}

	cmd.AddCommand(testCreateCmd())
	cmd.AddCommand(testListCmd())
	cmd.AddCommand(testResultCmd())
	cmd.AddCommand(testDeleteCmd())

	return cmd
}

func testCreateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "create [project-id] [title]",
		Short: "Create a new test record",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			configureWire()
			testType, _ := cmd.Flags().GetString("type")
			expected, _ := cmd.Flags().GetString("expected")

			test, err := wire.TestService().CreateTest(context.Background(), primary.CreateTestRequest{
				ProjectID:      args[0],
				Title:          args[1],
				TestType:       testType,
				ExpectedResult: expected,
			})
			if err != nil {
				return fmt.Errorf("failed to create test: %w", err)
			}

			fmt.Printf("✓ Created test %s: %s (%s)\n", test.ID, test.Title, test.TestType)
			return nil
		},
	}
	cmd.Flags().StringP("type", "t", "manual", "Test type (unit, integration, e2e, manual)")
	cmd.Flags().String("expected", "", "Expected result")
	return cmd
}

func testListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list [project-id]",
		Short: "List test records for a project",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			configureWire()
			tests, err := wire.TestService().ListTests(context.Background(), args[0])
			if err != nil {
				return fmt.Errorf("failed to list tests: %w", err)
			}

			if len(tests) == 0 {
				fmt.Println("No tests found")
				return nil
			}

			fmt.Printf("\n%-38s %-12s %-10s %s\n", "ID", "TYPE", "STATUS", "TITLE")
			fmt.Println("────────────────────────────────────────────────────────────────────────")
			for _, test := range tests {
				fmt.Printf("%-38s %-12s %-10s %s\n", test.ID, test.TestType, test.Status, test.Title)
			}
			fmt.Println()
			return nil
		},
	}
}

func testResultCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "result [test-id] [passed|failed]",
		Short: "Record a test execution result",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			configureWire()
			actual, _ := cmd.Flags().GetString("actual")

			test, err := wire.TestService().RecordResult(context.Background(), primary.RecordTestResultRequest{
				TestID:       args[0],
				Status:       args[1],
				ActualResult: actual,
			})
			if err != nil {
				return fmt.Errorf("failed to record result: %w", err)
			}

			fmt.Printf("✓ Test %s recorded as %s\n", test.ID, test.Status)
			return nil
		},
	}
	cmd.Flags().String("actual", "", "Observed result")
	return cmd
}

func testDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete [test-id]",
		Short: "Delete a test record",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			configureWire()
			if err := wire.TestService().DeleteTest(context.Background(), args[0]); err != nil {
				return fmt.Errorf("failed to delete test: %w", err)
			}
			fmt.Printf("✓ Deleted test %s\n", args[0])
			return nil
		},
	}
}
