// Package keys contains key-generation use cases.
package keys

import (
	"context"

	"github.com/auth-platform/backend/internal/domain/keygen"
)

// Key type tags accepted by GenerateKeyUseCase, extending the batch tags with
// the composite key types.
const (
	TypeAPIKey        = "api-key"
	TypeWebhookSecret = "webhook-secret"
	TypeSessionToken  = "session-token"
)

// GenerateKeyInput represents the input for single key generation.
type GenerateKeyInput struct {
	Type   string
	Length int
	Prefix string
}

// GenerateKeyOutput represents a generated key.
type GenerateKeyOutput struct {
	Type   string
	Key    string
	Length int
}

// GenerateKeyUseCase generates a single secure random key of a given type.
type GenerateKeyUseCase struct{}

// NewGenerateKeyUseCase creates a new GenerateKeyUseCase instance.
func NewGenerateKeyUseCase() *GenerateKeyUseCase {
	return &GenerateKeyUseCase{}
}

// Execute generates one key. For base64 and url-safe types Length counts
// random bytes; for alphanumeric, hex, and the api-key random part it counts
// output characters. Unrecognized types fall back to alphanumeric.
func (uc *GenerateKeyUseCase) Execute(ctx context.Context, input GenerateKeyInput) (*GenerateKeyOutput, error) {
	var key string
	var err error

	// Fixed-size key types report their own effective length.
	length := input.Length

	switch input.Type {
	case keygen.TypeHex:
		key, err = keygen.Hex(input.Length)
	case keygen.TypeBase64:
		key, err = keygen.Base64(input.Length)
	case keygen.TypeURLSafe:
		key, err = keygen.URLSafe(input.Length)
	case keygen.TypeUUID:
		key = keygen.UUID()
		length = len(key)
	case TypeAPIKey:
		key, err = keygen.APIKey(input.Prefix, input.Length)
	case TypeWebhookSecret:
		key, err = keygen.WebhookSecret()
		length = len(key)
	case TypeSessionToken:
		key, err = keygen.SessionToken()
		length = 32
	default:
		key, err = keygen.Alphanumeric(input.Length)
	}
	if err != nil {
		return nil, err
	}

	return &GenerateKeyOutput{
		Type:   input.Type,
		Key:    key,
		Length: length,
	}, nil
}
