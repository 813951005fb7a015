package secondary

import "context"

// TextGenerator defines the secondary port for the external text-generation
// service backing the drafting assistant.
type TextGenerator interface {
	// Generate produces a completion for the prompt. system may be empty.
	Generate(ctx context.Context, system, prompt string) (string, error)
}
