package ports

import "context"

// TextGenerator answers a prompt with a language model.
type TextGenerator interface {
	Generate(ctx context.Context, system, prompt string) (string, error)

	// Model identifies the underlying model in responses.
	Model() string
}
