package ports

import "context"

// TextGenerator produces free-form text from a natural-language prompt via an
// external model. Implementations must honor ctx cancellation and deadlines.
type TextGenerator interface {
	GenerateText(ctx context.Context, prompt string) (string, error)
}
