package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/example/bpos/internal/ports/primary"
	"github.com/example/bpos/internal/wire"
)

// TaskCmd returns the task command
func TaskCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "task",
		Short: "Manage build tasks",
	}

	cmd.AddCommand(taskCreateCmd())
	cmd.AddCommand(taskListCmd())
	cmd.AddCommand(taskStatusCmd())
	cmd.AddCommand(taskCanStartCmd())
	cmd.AddCommand(taskDeleteCmd())

	return cmd
}

func taskCreateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "create [project-id] [title]",
		Short: "Create a new task",
		Long: `Create a new task in a project. Tasks may depend on one other task in
the same project; the dependency must be done before the task can start.

Examples:
  bpos task create proj-123 "Schema migration"
  bpos task create proj-123 "Wire API" --depends-on task-456 --assign alice`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			configureWire()
			description, _ := cmd.Flags().GetString("description")
			dependsOn, _ := cmd.Flags().GetString("depends-on")
			assignee, _ := cmd.Flags().GetString("assign")

			task, err := wire.TaskService().CreateTask(context.Background(), primary.CreateTaskRequest{
				ProjectID:       args[0],
				Title:           args[1],
				Description:     description,
				DependsOnTaskID: dependsOn,
				AssignedTo:      assignee,
			})
			if err != nil {
				return fmt.Errorf("failed to create task: %w", err)
			}

			fmt.Printf("✓ Created task %s: %s\n", task.ID, task.Title)
			return nil
		},
	}
	cmd.Flags().StringP("description", "d", "", "Task description")
	cmd.Flags().String("depends-on", "", "Task ID this task depends on")
	cmd.Flags().String("assign", "", "Assignee")
	return cmd
}

func taskListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list [project-id]",
		Short: "List tasks for a project",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			configureWire()
			tasks, err := wire.TaskService().ListTasks(context.Background(), args[0])
			if err != nil {
				return fmt.Errorf("failed to list tasks: %w", err)
			}

			if len(tasks) == 0 {
				fmt.Println("No tasks found")
				return nil
			}

			fmt.Printf("\n%-38s %-12s %-12s %s\n", "ID", "STATUS", "ASSIGNEE", "TITLE")
			fmt.Println("────────────────────────────────────────────────────────────────────────")
			for _, task := range tasks {
				assignee := task.AssignedTo
				if assignee == "" {
					assignee = "-"
				}
				fmt.Printf("%-38s %-12s %-12s %s\n", task.ID, task.Status, assignee, task.Title)
				if task.BlockedReason != "" {
					fmt.Printf("%38s blocked: %s\n", "", task.BlockedReason)
				}
			}
			fmt.Println()
			return nil
		},
	}
}

func taskStatusCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "status [task-id] [status]",
		Short: "Change a task's status (todo, in_progress, blocked, done)",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			configureWire()
			reason, _ := cmd.Flags().GetString("reason")

			ctx := context.Background()
			current, err := wire.TaskService().GetTask(ctx, args[0])
			if err != nil {
				return fmt.Errorf("failed to get task: %w", err)
			}

			task, err := wire.TaskService().UpdateTask(ctx, primary.UpdateTaskRequest{
				TaskID:        args[0],
				Title:         current.Title,
				Description:   current.Description,
				AssignedTo:    current.AssignedTo,
				Status:        args[1],
				BlockedReason: reason,
			})
			if err != nil {
				return fmt.Errorf("failed to update task: %w", err)
			}

			fmt.Printf("✓ Task %s is now %s\n", task.ID, task.Status)
			return nil
		},
	}
	cmd.Flags().StringP("reason", "r", "", "Blocked reason (only with blocked status)")
	return cmd
}

func taskCanStartCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "can-start [task-id]",
		Short: "Check whether a task is ready to begin",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			configureWire()
			readiness, err := wire.TaskService().CanStart(context.Background(), args[0])
			if err != nil {
				return fmt.Errorf("failed to evaluate task: %w", err)
			}

			if readiness.CanStart {
				fmt.Printf("✓ Task %s is ready to start\n", readiness.TaskID)
			} else {
				fmt.Printf("✗ Task %s cannot start: %s\n", readiness.TaskID, readiness.Reason)
				for _, blocker := range readiness.Blockers {
					fmt.Printf("  - %s\n", blocker)
				}
			}
			for _, warning := range readiness.Warnings {
				fmt.Printf("  ⚠ %s\n", warning)
			}
			return nil
		},
	}
}

func taskDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete [task-id]",
		Short: "Delete a task",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			configureWire()
			if err := wire.TaskService().DeleteTask(context.Background(), args[0]); err != nil {
				return fmt.Errorf("failed to delete task: %w", err)
			}
			fmt.Printf("✓ Deleted task %s\n", args[0])
			return nil
		},
	}
}
