package generation

import "context"

// CallOptions selects the capabilities used for a single model call.
type CallOptions struct {
	// Browsing lets the model fetch and read URLs mentioned in the prompt.
	Browsing bool

	// Schema, when set, constrains the response to JSON matching it.
	Schema *Schema
}

// Gateway is the boundary between the generation pipeline and a language
// model provider, following the hexagonal architecture pattern.
//
// Implementations perform exactly one outbound call per Generate and never
// retry; fallback across models belongs to the Orchestrator. Implementations
// return ErrEmptyResponse when the model produced no text.
type Gateway interface {
	Generate(ctx context.Context, model, prompt string, opts CallOptions) (string, error)
}
