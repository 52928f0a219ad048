package ports

import "context"

// AIProvider generates freeform text for a prompt. Synchronous, no
// streaming; retries and timeouts are the provider's own concern.
type AIProvider interface {
	Generate(ctx context.Context, prompt string) (string, error)
}
