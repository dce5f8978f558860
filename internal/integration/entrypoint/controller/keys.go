// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/auth-platform/backend/internal/application/usecase/keys"
	domainerror "github.com/auth-platform/backend/internal/domain/error"
	"github.com/auth-platform/backend/internal/domain/keygen"
	"github.com/auth-platform/backend/internal/integration/entrypoint/dto"
)

// Default query parameter values for key generation endpoints.
const (
	defaultKeyLength   = "32"
	defaultHexLength   = "64"
	defaultByteLength  = "32"
	defaultAPIPrefix   = "api"
	defaultBatchType   = keygen.TypeAlphanumeric
	defaultBatchCount  = "5"
	defaultBatchLength = "32"
)

// KeysController handles key generation endpoints.
type KeysController struct {
	generateKeyUseCase       *keys.GenerateKeyUseCase
	generateBatchKeysUseCase *keys.GenerateBatchKeysUseCase
}

// NewKeysController creates a new keys controller instance.
func NewKeysController(
	generateKeyUseCase *keys.GenerateKeyUseCase,
	generateBatchKeysUseCase *keys.GenerateBatchKeysUseCase,
) *KeysController {
	return &KeysController{
		generateKeyUseCase:       generateKeyUseCase,
		generateBatchKeysUseCase: generateBatchKeysUseCase,
	}
}

// Alphanumeric handles GET /keys/alphanumeric requests.
func (c *KeysController) Alphanumeric(ctx *gin.Context) {
	c.generate(ctx, keygen.TypeAlphanumeric, defaultKeyLength)
}

// Hex handles GET /keys/hex requests.
func (c *KeysController) Hex(ctx *gin.Context) {
	c.generate(ctx, keygen.TypeHex, defaultHexLength)
}

// Base64 handles GET /keys/base64 requests.
func (c *KeysController) Base64(ctx *gin.Context) {
	c.generateFromBytes(ctx, keygen.TypeBase64)
}

// URLSafe handles GET /keys/url-safe requests.
func (c *KeysController) URLSafe(ctx *gin.Context) {
	c.generateFromBytes(ctx, keygen.TypeURLSafe)
}

// UUID handles GET /keys/uuid requests.
func (c *KeysController) UUID(ctx *gin.Context) {
	output, err := c.generateKeyUseCase.Execute(ctx.Request.Context(), keys.GenerateKeyInput{
		Type: keygen.TypeUUID,
	})
	if err != nil {
		handleDomainError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.KeyResponse{Type: output.Type, Key: output.Key, Length: output.Length})
}

// APIKey handles GET /keys/api-key requests.
func (c *KeysController) APIKey(ctx *gin.Context) {
	length, ok := c.intQuery(ctx, "length", defaultKeyLength)
	if !ok {
		return
	}

	output, err := c.generateKeyUseCase.Execute(ctx.Request.Context(), keys.GenerateKeyInput{
		Type:   keys.TypeAPIKey,
		Length: length,
		Prefix: ctx.DefaultQuery("prefix", defaultAPIPrefix),
	})
	if err != nil {
		handleDomainError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.KeyResponse{Type: output.Type, Key: output.Key, Length: output.Length})
}

// WebhookSecret handles GET /keys/webhook-secret requests.
func (c *KeysController) WebhookSecret(ctx *gin.Context) {
	output, err := c.generateKeyUseCase.Execute(ctx.Request.Context(), keys.GenerateKeyInput{
		Type: keys.TypeWebhookSecret,
	})
	if err != nil {
		handleDomainError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.KeyResponse{Type: output.Type, Key: output.Key, Length: output.Length})
}

// SessionToken handles GET /keys/session-token requests.
func (c *KeysController) SessionToken(ctx *gin.Context) {
	output, err := c.generateKeyUseCase.Execute(ctx.Request.Context(), keys.GenerateKeyInput{
		Type: keys.TypeSessionToken,
	})
	if err != nil {
		handleDomainError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.KeyResponse{Type: output.Type, Key: output.Key, Length: output.Length})
}

// Batch handles GET /keys/batch requests.
func (c *KeysController) Batch(ctx *gin.Context) {
	length, ok := c.intQuery(ctx, "length", defaultBatchLength)
	if !ok {
		return
	}
	count, ok := c.intQuery(ctx, "count", defaultBatchCount)
	if !ok {
		return
	}

	output, err := c.generateBatchKeysUseCase.Execute(ctx.Request.Context(), keys.GenerateBatchKeysInput{
		Type:   ctx.DefaultQuery("type", defaultBatchType),
		Length: length,
		Count:  count,
	})
	if err != nil {
		handleDomainError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.BatchKeysResponse{
		Type:  output.Type,
		Count: output.Count,
		Keys:  output.Keys,
	})
}

// generate handles the character-length key types.
func (c *KeysController) generate(ctx *gin.Context, keyType, defaultLength string) {
	length, ok := c.intQuery(ctx, "length", defaultLength)
	if !ok {
		return
	}

	output, err := c.generateKeyUseCase.Execute(ctx.Request.Context(), keys.GenerateKeyInput{
		Type:   keyType,
		Length: length,
	})
	if err != nil {
		handleDomainError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.KeyResponse{Type: output.Type, Key: output.Key, Length: output.Length})
}

// generateFromBytes handles the byte-length key types.
func (c *KeysController) generateFromBytes(ctx *gin.Context, keyType string) {
	byteLength, ok := c.intQuery(ctx, "bytes", defaultByteLength)
	if !ok {
		return
	}

	output, err := c.generateKeyUseCase.Execute(ctx.Request.Context(), keys.GenerateKeyInput{
		Type:   keyType,
		Length: byteLength,
	})
	if err != nil {
		handleDomainError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.KeyResponse{Type: output.Type, Key: output.Key, Length: output.Length})
}

// intQuery parses an integer query parameter, responding with a 400 on
// malformed input.
func (c *KeysController) intQuery(ctx *gin.Context, name, defaultValue string) (int, bool) {
	value, err := strconv.Atoi(ctx.DefaultQuery(name, defaultValue))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Parameter '" + name + "' must be an integer",
			Code:  string(domainerror.KindInvalidArgument),
		})
		return 0, false
	}
	return value, true
}
