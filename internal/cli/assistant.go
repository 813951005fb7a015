package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/example/bpos/internal/ports/primary"
	"github.com/example/bpos/internal/wire"
)

// AssistantCmd returns the assistant command
func AssistantCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "assistant [action] [project-id] [prompt]",
		Short: "Generate draft text with the AI assistant",
		Long: `Generate draft text for a project. The project's name, state, and
description are folded into the prompt automatically.

Actions: draft_prd, draft_adr, suggest_topics, assess_risks

Examples:
  bpos assistant draft_prd proj-123 "Focus on the mobile checkout flow"
  bpos assistant suggest_topics proj-123 "We have not settled on a queue"`,
		Args: cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			configureWire()
			service := wire.AssistantService()
			if service == nil {
				return fmt.Errorf("assistant not configured: set assistant_api_key in the config or BPOS_ASSISTANT_API_KEY")
			}

			extra, _ := cmd.Flags().GetString("context")
			resp, err := service.Draft(context.Background(), primary.DraftRequest{
				Action:    args[0],
				ProjectID: args[1],
				Prompt:    args[2],
				Context:   extra,
			})
			if err != nil {
				return fmt.Errorf("assistant draft failed: %w", err)
			}

			fmt.Println(resp.Text)
			return nil
		},
	}
	cmd.Flags().StringP("context", "c", "", "Additional context for the prompt")
	return cmd
}
