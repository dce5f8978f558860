// Package keys contains key-generation use cases.
package keys

import (
	"context"
	"strings"
	"testing"

	domainerror "github.com/auth-platform/backend/internal/domain/error"
	"github.com/auth-platform/backend/internal/domain/keygen"
)

func TestGenerateKey_Types(t *testing.T) {
	uc := NewGenerateKeyUseCase()

	tests := []struct {
		name     string
		input    GenerateKeyInput
		checkKey func(t *testing.T, key string)
	}{
		{
			name:  "alphanumeric",
			input: GenerateKeyInput{Type: keygen.TypeAlphanumeric, Length: 32},
			checkKey: func(t *testing.T, key string) {
				if len(key) != 32 {
					t.Errorf("key has %d characters, want 32", len(key))
				}
			},
		},
		{
			name:  "hex",
			input: GenerateKeyInput{Type: keygen.TypeHex, Length: 64},
			checkKey: func(t *testing.T, key string) {
				if len(key) != 64 {
					t.Errorf("key has %d characters, want 64", len(key))
				}
			},
		},
		{
			name:  "uuid",
			input: GenerateKeyInput{Type: keygen.TypeUUID},
			checkKey: func(t *testing.T, key string) {
				if len(key) != 32 || strings.Contains(key, "-") {
					t.Errorf("uuid key = %q, want 32 hex characters without hyphens", key)
				}
			},
		},
		{
			name:  "api key",
			input: GenerateKeyInput{Type: TypeAPIKey, Prefix: "api", Length: 32},
			checkKey: func(t *testing.T, key string) {
				if !strings.HasPrefix(key, "api_") {
					t.Errorf("api key = %q, want api_ prefix", key)
				}
			},
		},
		{
			name:  "webhook secret",
			input: GenerateKeyInput{Type: TypeWebhookSecret},
			checkKey: func(t *testing.T, key string) {
				if len(key) != 64 {
					t.Errorf("webhook secret has %d characters, want 64", len(key))
				}
			},
		},
		{
			name:  "session token",
			input: GenerateKeyInput{Type: TypeSessionToken},
			checkKey: func(t *testing.T, key string) {
				if strings.ContainsAny(key, "+/=") {
					t.Errorf("session token %q is not url-safe", key)
				}
			},
		},
		{
			name:  "unknown type falls back to alphanumeric",
			input: GenerateKeyInput{Type: "mystery", Length: 10},
			checkKey: func(t *testing.T, key string) {
				if len(key) != 10 {
					t.Errorf("fallback key has %d characters, want 10", len(key))
				}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			output, err := uc.Execute(context.Background(), tt.input)
			if err != nil {
				t.Fatalf("Execute returned error: %v", err)
			}
			tt.checkKey(t, output.Key)
		})
	}
}

func TestGenerateKey_ReportsEffectiveLength(t *testing.T) {
	uc := NewGenerateKeyUseCase()

	tests := []struct {
		name       string
		input      GenerateKeyInput
		wantLength int
	}{
		{"hex echoes requested length", GenerateKeyInput{Type: keygen.TypeHex, Length: 16}, 16},
		{"uuid ignores requested length", GenerateKeyInput{Type: keygen.TypeUUID, Length: 7}, 32},
		{"webhook secret is fixed size", GenerateKeyInput{Type: TypeWebhookSecret}, 64},
		{"session token reports byte count", GenerateKeyInput{Type: TypeSessionToken}, 32},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			output, err := uc.Execute(context.Background(), tt.input)
			if err != nil {
				t.Fatalf("Execute returned error: %v", err)
			}
			if output.Length != tt.wantLength {
				t.Errorf("Length = %d, want %d", output.Length, tt.wantLength)
			}
		})
	}
}

func TestGenerateKey_InvalidLength(t *testing.T) {
	uc := NewGenerateKeyUseCase()

	_, err := uc.Execute(context.Background(), GenerateKeyInput{Type: keygen.TypeHex, Length: 0})
	if kind := domainerror.KindOf(err); kind != domainerror.KindInvalidArgument {
		t.Errorf("error kind = %q, want %q", kind, domainerror.KindInvalidArgument)
	}
}

func TestGenerateBatchKeys(t *testing.T) {
	uc := NewGenerateBatchKeysUseCase()

	output, err := uc.Execute(context.Background(), GenerateBatchKeysInput{
		Type:   keygen.TypeHex,
		Length: 16,
		Count:  5,
	})
	if err != nil {
		t.Fatalf("Execute returned error: %v", err)
	}
	if output.Count != 5 || len(output.Keys) != 5 {
		t.Fatalf("got %d keys (count=%d), want 5", len(output.Keys), output.Count)
	}
	for _, key := range output.Keys {
		if len(key) != 16 {
			t.Errorf("batch key %q has %d characters, want 16", key, len(key))
		}
	}
}

func TestGenerateBatchKeys_CountOutOfRange(t *testing.T) {
	uc := NewGenerateBatchKeysUseCase()

	for _, count := range []int{0, 101} {
		_, err := uc.Execute(context.Background(), GenerateBatchKeysInput{
			Type:   keygen.TypeAlphanumeric,
			Length: 16,
			Count:  count,
		})
		if kind := domainerror.KindOf(err); kind != domainerror.KindInvalidArgument {
			t.Errorf("count=%d: error kind = %q, want %q", count, kind, domainerror.KindInvalidArgument)
		}
	}
}
