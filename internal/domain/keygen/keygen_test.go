// Package keygen generates cryptographically secure random keys and tokens.
package keygen

import (
	"encoding/base64"
	"errors"
	"strings"
	"testing"

	domainerror "github.com/auth-platform/backend/internal/domain/error"
)

func assertInvalidArgument(t *testing.T, err error) {
	t.Helper()
	if err == nil {
		t.Fatal("expected an error, got nil")
	}
	var domainErr *domainerror.DomainError
	if !errors.As(err, &domainErr) {
		t.Fatalf("expected a DomainError, got %T: %v", err, err)
	}
	if domainErr.Kind != domainerror.KindInvalidArgument {
		t.Errorf("expected kind %q, got %q", domainerror.KindInvalidArgument, domainErr.Kind)
	}
}

func TestAlphanumeric(t *testing.T) {
	for _, length := range []int{1, 16, 32, 64} {
		key, err := Alphanumeric(length)
		if err != nil {
			t.Fatalf("Alphanumeric(%d) returned error: %v", length, err)
		}
		if len(key) != length {
			t.Errorf("Alphanumeric(%d) returned %d characters", length, len(key))
		}
		for _, r := range key {
			if !strings.ContainsRune(alphanumericChars, r) {
				t.Errorf("Alphanumeric(%d) produced out-of-charset character %q", length, r)
			}
		}
	}
}

func TestAlphanumeric_InvalidLength(t *testing.T) {
	for _, length := range []int{0, -1, -100} {
		_, err := Alphanumeric(length)
		assertInvalidArgument(t, err)
	}
}

func TestHex(t *testing.T) {
	for _, length := range []int{1, 7, 16, 64} {
		key, err := Hex(length)
		if err != nil {
			t.Fatalf("Hex(%d) returned error: %v", length, err)
		}
		if len(key) != length {
			t.Errorf("Hex(%d) returned %d characters", length, len(key))
		}
		for _, r := range key {
			if !strings.ContainsRune(hexChars, r) {
				t.Errorf("Hex(%d) produced out-of-charset character %q", length, r)
			}
		}
	}
}

func TestHex_InvalidLength(t *testing.T) {
	for _, length := range []int{0, -1} {
		_, err := Hex(length)
		assertInvalidArgument(t, err)
	}
}

func TestBase64_RoundTrip(t *testing.T) {
	key, err := Base64(32)
	if err != nil {
		t.Fatalf("Base64(32) returned error: %v", err)
	}
	decoded, err := base64.StdEncoding.DecodeString(key)
	if err != nil {
		t.Fatalf("Base64(32) produced undecodable output %q: %v", key, err)
	}
	if len(decoded) != 32 {
		t.Errorf("Base64(32) decodes to %d bytes, want 32", len(decoded))
	}
}

func TestBase64_InvalidLength(t *testing.T) {
	_, err := Base64(0)
	assertInvalidArgument(t, err)
}

func TestURLSafe_RoundTrip(t *testing.T) {
	key, err := URLSafe(32)
	if err != nil {
		t.Fatalf("URLSafe(32) returned error: %v", err)
	}
	if strings.ContainsAny(key, "+/=") {
		t.Errorf("URLSafe(32) produced non-url-safe output %q", key)
	}
	decoded, err := base64.RawURLEncoding.DecodeString(key)
	if err != nil {
		t.Fatalf("URLSafe(32) produced undecodable output %q: %v", key, err)
	}
	if len(decoded) != 32 {
		t.Errorf("URLSafe(32) decodes to %d bytes, want 32", len(decoded))
	}
}

func TestURLSafe_InvalidLength(t *testing.T) {
	_, err := URLSafe(-1)
	assertInvalidArgument(t, err)
}

func TestUUID(t *testing.T) {
	key := UUID()
	if len(key) != 32 {
		t.Fatalf("UUID() returned %d characters, want 32", len(key))
	}
	if strings.Contains(key, "-") {
		t.Errorf("UUID() contains hyphens: %q", key)
	}
	for _, r := range key {
		if !strings.ContainsRune("0123456789abcdef", r) {
			t.Errorf("UUID() produced non-hex character %q", r)
		}
	}
}

func TestAPIKey(t *testing.T) {
	key, err := APIKey("svc", 16)
	if err != nil {
		t.Fatalf("APIKey returned error: %v", err)
	}
	if !strings.HasPrefix(key, "svc_") {
		t.Errorf("APIKey = %q, want svc_ prefix", key)
	}
	if len(key) != len("svc_")+16 {
		t.Errorf("APIKey = %q, want 16 random characters after the prefix", key)
	}
}

func TestAPIKey_InvalidArguments(t *testing.T) {
	tests := []struct {
		name   string
		prefix string
		length int
	}{
		{"empty prefix", "", 16},
		{"blank prefix", "   ", 16},
		{"zero length", "api", 0},
		{"negative length", "api", -3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := APIKey(tt.prefix, tt.length)
			assertInvalidArgument(t, err)
		})
	}
}

func TestWebhookSecret(t *testing.T) {
	secret, err := WebhookSecret()
	if err != nil {
		t.Fatalf("WebhookSecret returned error: %v", err)
	}
	if len(secret) != 64 {
		t.Errorf("WebhookSecret returned %d characters, want 64", len(secret))
	}
	for _, r := range secret {
		if !strings.ContainsRune(hexChars, r) {
			t.Errorf("WebhookSecret produced non-hex character %q", r)
		}
	}
}

func TestSessionToken(t *testing.T) {
	token, err := SessionToken()
	if err != nil {
		t.Fatalf("SessionToken returned error: %v", err)
	}
	decoded, err := base64.RawURLEncoding.DecodeString(token)
	if err != nil {
		t.Fatalf("SessionToken produced undecodable output %q: %v", token, err)
	}
	if len(decoded) != 32 {
		t.Errorf("SessionToken decodes to %d bytes, want 32", len(decoded))
	}
}

func TestBatch(t *testing.T) {
	keys, err := Batch(TypeHex, 16, 5)
	if err != nil {
		t.Fatalf("Batch returned error: %v", err)
	}
	if len(keys) != 5 {
		t.Fatalf("Batch returned %d keys, want 5", len(keys))
	}
	for _, key := range keys {
		if len(key) != 16 {
			t.Errorf("batch key %q has %d characters, want 16", key, len(key))
		}
		for _, r := range key {
			if !strings.ContainsRune(hexChars, r) {
				t.Errorf("batch key %q contains non-hex character %q", key, r)
			}
		}
	}

	// Independent 64-bit-plus draws colliding would indicate a broken source.
	seen := make(map[string]bool, len(keys))
	for _, key := range keys {
		if seen[key] {
			t.Errorf("batch produced duplicate key %q", key)
		}
		seen[key] = true
	}
}

func TestBatch_UnknownTypeFallsBackToAlphanumeric(t *testing.T) {
	keys, err := Batch("nonsense", 12, 3)
	if err != nil {
		t.Fatalf("Batch returned error: %v", err)
	}
	for _, key := range keys {
		if len(key) != 12 {
			t.Errorf("fallback key %q has %d characters, want 12", key, len(key))
		}
		for _, r := range key {
			if !strings.ContainsRune(alphanumericChars, r) {
				t.Errorf("fallback key %q contains out-of-charset character %q", key, r)
			}
		}
	}
}

func TestBatch_UUIDIgnoresLength(t *testing.T) {
	keys, err := Batch(TypeUUID, 5, 2)
	if err != nil {
		t.Fatalf("Batch returned error: %v", err)
	}
	for _, key := range keys {
		if len(key) != 32 {
			t.Errorf("uuid batch key %q has %d characters, want 32", key, len(key))
		}
	}
}

func TestBatch_InvalidCount(t *testing.T) {
	for _, count := range []int{0, -1, 101, 1000} {
		_, err := Batch(TypeAlphanumeric, 16, count)
		assertInvalidArgument(t, err)
		if err == nil || err.Error() != "Count must be between 1 and 100" {
			t.Errorf("Batch count=%d error = %v, want count range message", count, err)
		}
	}
}
