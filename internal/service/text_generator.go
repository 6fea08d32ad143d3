package service

import "context"

// TextGenerator is a single outbound generate-text call against a hosted model.
type TextGenerator interface {
	GenerateText(ctx context.Context, model string, prompt string) (string, error)
}
