package llm

import "context"

type Provider interface {
	// GenerateResponse returns the full completion for a single prompt.
	// The result is best-effort text; callers must tolerate non-JSON output.
	GenerateResponse(ctx context.Context, prompt string) (string, error)
	Close() error
}
