package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/fatih/color"

	"github.com/example/bpos/internal/ports/primary"
)

// ActivityAdapter renders the audit trail for a project.
type ActivityAdapter struct {
	service primary.ActivityService
	out     io.Writer
}

// NewActivityAdapter creates a new ActivityAdapter with the given service.
func NewActivityAdapter(service primary.ActivityService, out io.Writer) *ActivityAdapter {
	return &ActivityAdapter{
		service: service,
		out:     out,
	}
}

// List prints the newest activity entries for a project, most recent first.
func (a *ActivityAdapter) List(ctx context.Context, projectID string, limit int) error {
	entries, err := a.service.ListActivity(ctx, projectID, limit)
	if err != nil {
		return fmt.Errorf("failed to list activity: %w", err)
	}

	if len(entries) == 0 {
		fmt.Fprintln(a.out, "No activity recorded")
		return nil
	}

	fmt.Fprintf(a.out, "\n%-21s %-16s %s\n", "WHEN", "EVENT", "DESCRIPTION")
	fmt.Fprintln(a.out, "────────────────────────────────────────────────────────────────────────")
	for _, e := range entries {
		marker := ""
		if e.IsRollback {
			marker = color.New(color.FgRed).Sprint(" [rollback]")
		} else if e.Forced {
			marker = color.New(color.FgYellow).Sprint(" [forced]")
		}
		fmt.Fprintf(a.out, "%-21s %-16s %s%s\n", e.CreatedAt, e.EventType, e.Description, marker)
		if e.RollbackReason != "" {
			fmt.Fprintf(a.out, "%-21s %-16s reason: %s\n", "", "", e.RollbackReason)
		}
	}
	fmt.Fprintln(a.out)

	return nil
}
