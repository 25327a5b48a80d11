package infrastructure

import (
	"context"

	tuningdomain "chisokulab/backend/internal/features/tuning/domain"
)

// TextGenerator defines a generic interface for a remote text-generation
// backend. Adapters are stateless request/response wrappers: one call in,
// one raw text out, error otherwise.
type TextGenerator interface {
	// Name returns the provider's provenance tag ("gemini", "groq").
	Name() string

	// Generate sends the prompt to the provider and returns the raw response
	// text. It fails on non-2xx status, missing response text, or transport
	// errors; rate-limit failures carry a "quota exceeded" message.
	Generate(ctx context.Context, prompt string, settings tuningdomain.GenerationSettings) (string, error)
}
