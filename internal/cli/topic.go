package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/example/bpos/internal/ports/primary"
	"github.com/example/bpos/internal/wire"
)

// TopicCmd returns the topic command
func TopicCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "topic",
		Short: "Manage research topics",
		Long:  `Create, resolve, and list research topics. Three resolved topics gate the research → decisions_locked transition.`,
	}

	cmd.AddCommand(topicCreateCmd())
	cmd.AddCommand(topicListCmd())
	cmd.AddCommand(topicResolveCmd())
	cmd.AddCommand(topicDeleteCmd())

	return cmd
}

func topicCreateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "create [project-id] [title]",
		Short: "Create a new research topic",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			configureWire()
			question, _ := cmd.Flags().GetString("question")

			topic, err := wire.TopicService().CreateTopic(context.Background(), primary.CreateTopicRequest{
				ProjectID: args[0],
				Title:     args[1],
				Question:  question,
			})
			if err != nil {
				return fmt.Errorf("failed to create topic: %w", err)
			}

			fmt.Printf("✓ Created topic %s: %s\n", topic.ID, topic.Title)
			return nil
		},
	}
	cmd.Flags().StringP("question", "q", "", "The question this topic must answer (required)")
	return cmd
}

func topicListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list [project-id]",
		Short: "List research topics for a project",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			configureWire()
			topics, err := wire.TopicService().ListTopics(context.Background(), args[0])
			if err != nil {
				return fmt.Errorf("failed to list topics: %w", err)
			}

			if len(topics) == 0 {
				fmt.Println("No topics found")
				return nil
			}

			fmt.Printf("\n%-38s %-10s %s\n", "ID", "STATUS", "TITLE")
			fmt.Println("────────────────────────────────────────────────────────────────────────")
			for _, topic := range topics {
				fmt.Printf("%-38s %-10s %s\n", topic.ID, topic.Status, topic.Title)
			}
			fmt.Println()
			return nil
		},
	}
}

func topicResolveCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "resolve [topic-id]",
		Short: "Mark a research topic as resolved",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			configureWire()
			notes, _ := cmd.Flags().GetString("notes")

			ctx := context.Background()
			current, err := wire.TopicService().GetTopic(ctx, args[0])
			if err != nil {
				return fmt.Errorf("failed to get topic: %w", err)
			}
			if notes == "" {
				notes = current.ResearchNotes
			}

			topic, err := wire.TopicService().UpdateTopic(ctx, primary.UpdateTopicRequest{
				TopicID:       args[0],
				Title:         current.Title,
				Question:      current.Question,
				Status:        "resolved",
				ResearchNotes: notes,
			})
			if err != nil {
				return fmt.Errorf("failed to resolve topic: %w", err)
			}

			fmt.Printf("✓ Topic %s resolved\n", topic.ID)
			return nil
		},
	}
	cmd.Flags().StringP("notes", "n", "", "Research notes recorded with the resolution")
	return cmd
}

func topicDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete [topic-id]",
		Short: "Delete a research topic",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			configureWire()
			if err := wire.TopicService().DeleteTopic(context.Background(), args[0]); err != nil {
				return fmt.Errorf("failed to delete topic: %w", err)
			}
			fmt.Printf("✓ Deleted topic %s\n", args[0])
			return nil
		},
	}
}
