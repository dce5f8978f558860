// Package keygen generates cryptographically secure random keys and tokens.
// All entropy is drawn from crypto/rand; crypto/rand.Reader is safe for
// concurrent use, so every function here is safe for unbounded concurrent
// invocation.
package keygen

import (
	"crypto/rand"
	"encoding/base64"
	"fmt"
	"math/big"
	"strings"

	"github.com/google/uuid"

	domainerror "github.com/auth-platform/backend/internal/domain/error"
)

const (
	alphanumericChars = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"
	hexChars          = "0123456789abcdef"
)

// Alphanumeric generates a random key of the given length, uniformly sampled
// from [A-Za-z0-9].
func Alphanumeric(length int) (string, error) {
	if length <= 0 {
		return "", domainerror.New(domainerror.KindInvalidArgument, "Length must be positive")
	}
	return randomString(alphanumericChars, length)
}

// Hex generates a random key of the given length, uniformly sampled from
// [0-9a-f]. The length counts hex characters, not bytes: two characters
// encode one byte of entropy.
func Hex(length int) (string, error) {
	if length <= 0 {
		return "", domainerror.New(domainerror.KindInvalidArgument, "Length must be positive")
	}
	return randomString(hexChars, length)
}

// Base64 generates byteLength secure random bytes encoded as standard Base64
// with padding.
func Base64(byteLength int) (string, error) {
	if byteLength <= 0 {
		return "", domainerror.New(domainerror.KindInvalidArgument, "Byte length must be positive")
	}
	bytes, err := randomBytes(byteLength)
	if err != nil {
		return "", err
	}
	return base64.StdEncoding.EncodeToString(bytes), nil
}

// URLSafe generates byteLength secure random bytes encoded with the URL-safe
// Base64 alphabet and no padding, suitable for direct embedding in URLs.
func URLSafe(byteLength int) (string, error) {
	if byteLength <= 0 {
		return "", domainerror.New(domainerror.KindInvalidArgument, "Byte length must be positive")
	}
	bytes, err := randomBytes(byteLength)
	if err != nil {
		return "", err
	}
	return base64.RawURLEncoding.EncodeToString(bytes), nil
}

// UUID generates a random version 4 UUID with the hyphen separators removed,
// yielding a 32-character hex string.
func UUID() string {
	return strings.ReplaceAll(uuid.New().String(), "-", "")
}

// APIKey generates a prefixed API key of the form "prefix_<alphanumeric>".
func APIKey(prefix string, length int) (string, error) {
	if strings.TrimSpace(prefix) == "" {
		return "", domainerror.New(domainerror.KindInvalidArgument, "Prefix cannot be empty")
	}
	if length <= 0 {
		return "", domainerror.New(domainerror.KindInvalidArgument, "Length must be positive")
	}

	key, err := Alphanumeric(length)
	if err != nil {
		return "", err
	}
	return prefix + "_" + key, nil
}

// WebhookSecret generates a 256-bit secret encoded as 64 hex characters.
func WebhookSecret() (string, error) {
	return Hex(64)
}

// SessionToken generates 32 random bytes encoded as unpadded URL-safe Base64.
func SessionToken() (string, error) {
	return URLSafe(32)
}

// randomBytes fills a buffer of the given size from the secure entropy source.
func randomBytes(size int) ([]byte, error) {
	bytes := make([]byte, size)
	if _, err := rand.Read(bytes); err != nil {
		return nil, fmt.Errorf("failed to read random bytes: %w", err)
	}
	return bytes, nil
}

// randomString samples length characters uniformly from charset.
func randomString(charset string, length int) (string, error) {
	max := big.NewInt(int64(len(charset)))
	var sb strings.Builder
	sb.Grow(length)
	for i := 0; i < length; i++ {
		index, err := rand.Int(rand.Reader, max)
		if err != nil {
			return "", fmt.Errorf("failed to sample random index: %w", err)
		}
		sb.WriteByte(charset[index.Int64()])
	}
	return sb.String(), nil
}
