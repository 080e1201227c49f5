// Package http provides HTTP handlers for vault key management, encryption,
// export, and file integrity operations.
package http

import (
	"encoding/base64"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	cryptoDomain "github.com/AnakAmira/amira-vault/internal/crypto/domain"
	"github.com/AnakAmira/amira-vault/internal/httputil"
	"github.com/AnakAmira/amira-vault/internal/vault/http/dto"
	vaultUseCase "github.com/AnakAmira/amira-vault/internal/vault/usecase"
	customValidation "github.com/AnakAmira/amira-vault/internal/validation"
)

// VaultHandler handles HTTP requests for vault operations.
type VaultHandler struct {
	vaultUseCase vaultUseCase.VaultUseCase // Business logic for vault operations
	logger       *slog.Logger              // Structured logger for request handling and error reporting
}

// NewVaultHandler creates a new vault handler with required dependencies.
func NewVaultHandler(
	vaultUC vaultUseCase.VaultUseCase,
	logger *slog.Logger,
) *VaultHandler {
	return &VaultHandler{
		vaultUseCase: vaultUC,
		logger:       logger,
	}
}

// GenerateKeyHandler generates a new encryption key under an identifier.
// POST /v1/keys - Returns 201 Created with the key metadata (material excluded).
func (h *VaultHandler) GenerateKeyHandler(c *gin.Context) {
	var req dto.GenerateKeyRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.HandleBadRequestGin(c, err, h.logger)
		return
	}

	if err := req.Validate(); err != nil {
		httputil.HandleValidationErrorGin(c, customValidation.WrapValidationError(err), h.logger)
		return
	}

	key, err := h.vaultUseCase.GenerateKey(
		c.Request.Context(),
		req.Identifier,
		cryptoDomain.Algorithm(req.Algorithm),
		req.RequireUserPresence,
	)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusCreated, dto.MapKeyToResponse(key))
}

// DeleteKeyHandler removes an encryption key.
// DELETE /v1/keys/:identifier - Returns 204 No Content, also for absent keys.
func (h *VaultHandler) DeleteKeyHandler(c *gin.Context) {
	identifier := c.Param("identifier")
	if identifier == "" {
		httputil.HandleBadRequestGin(c, fmt.Errorf("key identifier cannot be empty"), h.logger)
		return
	}

	if err := h.vaultUseCase.DeleteKey(c.Request.Context(), identifier); err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.Status(http.StatusNoContent)
}

// EncryptHandler encrypts plaintext using the key stored under the identifier.
// POST /v1/keys/:identifier/encrypt - Returns 200 OK with base64 ciphertext, nonce, and tag.
func (h *VaultHandler) EncryptHandler(c *gin.Context) {
	identifier := c.Param("identifier")
	if identifier == "" {
		httputil.HandleBadRequestGin(c, fmt.Errorf("key identifier cannot be empty"), h.logger)
		return
	}

	var req dto.EncryptRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.HandleBadRequestGin(c, err, h.logger)
		return
	}

	if err := req.Validate(); err != nil {
		httputil.HandleValidationErrorGin(c, customValidation.WrapValidationError(err), h.logger)
		return
	}

	plaintext, err := base64.StdEncoding.DecodeString(req.Plaintext)
	if err != nil {
		httputil.HandleBadRequestGin(c, fmt.Errorf("invalid base64 plaintext: %w", err), h.logger)
		return
	}
	defer cryptoDomain.Zero(plaintext)

	encrypted, err := h.vaultUseCase.EncryptData(c.Request.Context(), plaintext, identifier)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.MapEncryptedDataToResponse(encrypted))
}

// DecryptHandler decrypts data using the key stored under the identifier.
// POST /v1/keys/:identifier/decrypt - Returns 200 OK with base64 plaintext.
// SECURITY: Plaintext is zeroed after the response is written.
func (h *VaultHandler) DecryptHandler(c *gin.Context) {
	identifier := c.Param("identifier")
	if identifier == "" {
		httputil.HandleBadRequestGin(c, fmt.Errorf("key identifier cannot be empty"), h.logger)
		return
	}

	var req dto.DecryptRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.HandleBadRequestGin(c, err, h.logger)
		return
	}

	if err := req.Validate(); err != nil {
		httputil.HandleValidationErrorGin(c, customValidation.WrapValidationError(err), h.logger)
		return
	}

	encrypted, err := dto.ParseEncryptedData(req.Ciphertext, req.Nonce, req.AuthTag)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	plaintext, err := h.vaultUseCase.DecryptData(c.Request.Context(), encrypted, identifier)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	defer cryptoDomain.Zero(plaintext)

	c.JSON(http.StatusOK, dto.MapDecryptResponse(plaintext))
}

// EncryptFileHandler encrypts a local file in place of the mobile client.
// POST /v1/files/encrypt - Returns 200 OK with the base64 nonce.
func (h *VaultHandler) EncryptFileHandler(c *gin.Context) {
	var req dto.EncryptFileRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.HandleBadRequestGin(c, err, h.logger)
		return
	}

	if err := req.Validate(); err != nil {
		httputil.HandleValidationErrorGin(c, customValidation.WrapValidationError(err), h.logger)
		return
	}

	nonce, err := h.vaultUseCase.EncryptFile(c.Request.Context(), req.SourcePath, req.DestPath, req.KeyIdentifier)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.EncryptFileResponse{Nonce: nonce})
}

// DecryptFileHandler decrypts a file produced by EncryptFileHandler.
// POST /v1/files/decrypt - Returns 204 No Content on success.
func (h *VaultHandler) DecryptFileHandler(c *gin.Context) {
	var req dto.DecryptFileRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.HandleBadRequestGin(c, err, h.logger)
		return
	}

	if err := req.Validate(); err != nil {
		httputil.HandleValidationErrorGin(c, customValidation.WrapValidationError(err), h.logger)
		return
	}

	err := h.vaultUseCase.DecryptFile(
		c.Request.Context(),
		req.SourcePath,
		req.DestPath,
		req.KeyIdentifier,
		req.Nonce,
	)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.Status(http.StatusNoContent)
}

// ExportHandler wraps encrypted data in a password-protected container.
// POST /v1/export - Returns 200 OK with the base64 container.
func (h *VaultHandler) ExportHandler(c *gin.Context) {
	var req dto.ExportRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.HandleBadRequestGin(c, err, h.logger)
		return
	}

	if err := req.Validate(); err != nil {
		httputil.HandleValidationErrorGin(c, customValidation.WrapValidationError(err), h.logger)
		return
	}

	encrypted, err := dto.ParseEncryptedData(req.Ciphertext, req.Nonce, req.AuthTag)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	container, err := h.vaultUseCase.Export(c.Request.Context(), encrypted, req.KeyIdentifier, req.Password)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.ExportResponse{
		Container: base64.StdEncoding.EncodeToString(container),
	})
}

// ImportHandler unwraps a password-protected export container.
// POST /v1/import - Returns 200 OK with the inner encrypted data and key identifier.
func (h *VaultHandler) ImportHandler(c *gin.Context) {
	var req dto.ImportRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.HandleBadRequestGin(c, err, h.logger)
		return
	}

	if err := req.Validate(); err != nil {
		httputil.HandleValidationErrorGin(c, customValidation.WrapValidationError(err), h.logger)
		return
	}

	container, err := base64.StdEncoding.DecodeString(req.Container)
	if err != nil {
		httputil.HandleBadRequestGin(c, fmt.Errorf("invalid base64 container: %w", err), h.logger)
		return
	}

	data, keyIdentifier, err := h.vaultUseCase.Import(c.Request.Context(), container, req.Password)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.MapImportResponse(data, keyIdentifier))
}

// ChecksumFileHandler computes the SHA-256 digest of a local file.
// POST /v1/integrity/checksum - Returns 200 OK with the hex digest.
func (h *VaultHandler) ChecksumFileHandler(c *gin.Context) {
	var req dto.ChecksumFileRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.HandleBadRequestGin(c, err, h.logger)
		return
	}

	if err := req.Validate(); err != nil {
		httputil.HandleValidationErrorGin(c, customValidation.WrapValidationError(err), h.logger)
		return
	}

	checksum, err := h.vaultUseCase.ChecksumFile(c.Request.Context(), req.Path)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.ChecksumFileResponse{Checksum: checksum})
}

// VerifyFileHandler checks a local file against an expected SHA-256 digest.
// POST /v1/integrity/verify - Returns 200 OK with the match result; a digest
// mismatch is a valid result, not an error.
func (h *VaultHandler) VerifyFileHandler(c *gin.Context) {
	var req dto.VerifyFileRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.HandleBadRequestGin(c, err, h.logger)
		return
	}

	if err := req.Validate(); err != nil {
		httputil.HandleValidationErrorGin(c, customValidation.WrapValidationError(err), h.logger)
		return
	}

	match, err := h.vaultUseCase.VerifyFileIntegrity(c.Request.Context(), req.Path, req.Checksum)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.VerifyFileResponse{Match: match})
}
