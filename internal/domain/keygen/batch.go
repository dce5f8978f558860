package keygen

import (
	"strings"

	domainerror "github.com/auth-platform/backend/internal/domain/error"
)

// Key type tags accepted by Batch.
const (
	TypeAlphanumeric = "alphanumeric"
	TypeHex          = "hex"
	TypeBase64       = "base64"
	TypeURLSafe      = "url-safe"
	TypeUUID         = "uuid"
)

const (
	minBatchCount = 1
	maxBatchCount = 100
)

// Batch generates count independently drawn keys of the requested type.
// Count must be between 1 and 100. Unrecognized type tags fall back to
// alphanumeric generation rather than failing; the uuid type ignores length.
func Batch(keyType string, length, count int) ([]string, error) {
	if count < minBatchCount || count > maxBatchCount {
		return nil, domainerror.New(domainerror.KindInvalidArgument, "Count must be between 1 and 100")
	}

	keys := make([]string, count)
	for i := 0; i < count; i++ {
		var key string
		var err error

		switch strings.ToLower(keyType) {
		case TypeHex:
			key, err = Hex(length)
		case TypeBase64:
			key, err = Base64(length)
		case TypeURLSafe:
			key, err = URLSafe(length)
		case TypeUUID:
			key = UUID()
		default:
			key, err = Alphanumeric(length)
		}
		if err != nil {
			return nil, err
		}
		keys[i] = key
	}

	return keys, nil
}
