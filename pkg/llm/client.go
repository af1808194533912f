package llm

import "context"

// Generator produces free text for a system and user prompt.
type Generator interface {
	Generate(ctx context.Context, system, prompt string) (string, error)
	ModelName() string
}
