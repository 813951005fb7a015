package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/example/bpos/internal/ports/primary"
	"github.com/example/bpos/internal/wire"
)

// ArtifactCmd returns the artifact command
func ArtifactCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "artifact",
		Short: "Manage planning artifacts (PRDs, specs, designs)",
	}

	cmd.AddCommand(artifactCreateCmd())
	cmd.AddCommand(artifactListCmd())
	cmd.AddCommand(artifactShowCmd())
	cmd.AddCommand(artifactDeleteCmd())

	return cmd
}

func artifactCreateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "create [project-id] [title]",
		Short: "Create a new artifact",
		Long: `Create a new artifact attached to a project.

Examples:
  bpos artifact create proj-123 "Checkout PRD" --type prd
  bpos artifact create proj-123 "API sketch" --type technical_spec -c "..."`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			configureWire()
			artifactType, _ := cmd.Flags().GetString("type")
			content, _ := cmd.Flags().GetString("content")

			artifact, err := wire.ArtifactService().CreateArtifact(context.Background(), primary.CreateArtifactRequest{
				ProjectID:    args[0],
				Title:        args[1],
				ArtifactType: artifactType,
				Content:      content,
			})
			if err != nil {
				return fmt.Errorf("failed to create artifact: %w", err)
			}

			fmt.Printf("✓ Created artifact %s: %s (%s)\n", artifact.ID, artifact.Title, artifact.ArtifactType)
			return nil
		},
	}
	cmd.Flags().StringP("type", "t", "prd", "Artifact type (prd, technical_spec, design_doc, wireframe, user_story, roadmap, other)")
	cmd.Flags().StringP("content", "c", "", "Artifact content")
	return cmd
}

func artifactListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list [project-id]",
		Short: "List artifacts for a project",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			configureWire()
			artifacts, err := wire.ArtifactService().ListArtifacts(context.Background(), args[0])
			if err != nil {
				return fmt.Errorf("failed to list artifacts: %w", err)
			}

			if len(artifacts) == 0 {
				fmt.Println("No artifacts found")
				return nil
			}

			fmt.Printf("\n%-38s %-16s %s\n", "ID", "TYPE", "TITLE")
			fmt.Println("────────────────────────────────────────────────────────────────────────")
			for _, a := range artifacts {
				fmt.Printf("%-38s %-16s %s\n", a.ID, a.ArtifactType, a.Title)
			}
			fmt.Println()
			return nil
		},
	}
}

func artifactShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show [artifact-id]",
		Short: "Show artifact details",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			configureWire()
			artifact, err := wire.ArtifactService().GetArtifact(context.Background(), args[0])
			if err != nil {
				return fmt.Errorf("failed to get artifact: %w", err)
			}

			fmt.Printf("\nArtifact: %s\n", artifact.ID)
			fmt.Printf("Title:    %s\n", artifact.Title)
			fmt.Printf("Type:     %s\n", artifact.ArtifactType)
			fmt.Printf("Project:  %s\n", artifact.ProjectID)
			if artifact.AIGenerated {
				fmt.Println("Origin:   AI generated")
			}
			if artifact.Content != "" {
				fmt.Printf("\n%s\n", artifact.Content)
			}
			fmt.Println()
			return nil
		},
	}
}

func artifactDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete [artifact-id]",
		Short: "Delete an artifact",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			configureWire()
			if err := wire.ArtifactService().DeleteArtifact(context.Background(), args[0]); err != nil {
				return fmt.Errorf("failed to delete artifact: %w", err)
			}
			fmt.Printf("✓ Deleted artifact %s\n", args[0])
			return nil
		},
	}
}
