// Package keys contains key-generation use cases.
package keys

import (
	"context"

	"github.com/auth-platform/backend/internal/domain/keygen"
)

// GenerateBatchKeysInput represents the input for batch key generation.
type GenerateBatchKeysInput struct {
	Type   string
	Length int
	Count  int
}

// GenerateBatchKeysOutput represents a batch of generated keys.
type GenerateBatchKeysOutput struct {
	Type  string
	Count int
	Keys  []string
}

// GenerateBatchKeysUseCase generates multiple independently drawn keys.
type GenerateBatchKeysUseCase struct{}

// NewGenerateBatchKeysUseCase creates a new GenerateBatchKeysUseCase instance.
func NewGenerateBatchKeysUseCase() *GenerateBatchKeysUseCase {
	return &GenerateBatchKeysUseCase{}
}

// Execute generates the requested batch. Count must be between 1 and 100.
func (uc *GenerateBatchKeysUseCase) Execute(ctx context.Context, input GenerateBatchKeysInput) (*GenerateBatchKeysOutput, error) {
	generated, err := keygen.Batch(input.Type, input.Length, input.Count)
	if err != nil {
		return nil, err
	}

	return &GenerateBatchKeysOutput{
		Type:  input.Type,
		Count: len(generated),
		Keys:  generated,
	}, nil
}
