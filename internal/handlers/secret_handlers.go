package handlers

import (
	"net/http"

	"github.com/tinhat/dirtysecrets/internal/constants"
	"github.com/tinhat/dirtysecrets/internal/models"
	"github.com/tinhat/dirtysecrets/internal/utils"
	"github.com/tinhat/dirtysecrets/internal/validation"
)

// SecretHandler handles secret-related routes
type SecretHandler struct {
	secretService SecretServiceInterface
}

// NewSecretHandler creates a new SecretHandler
func NewSecretHandler(secretService SecretServiceInterface) *SecretHandler {
	return &SecretHandler{
		secretService: secretService,
	}
}

// CreateSecret stores a new secret from a JSON body carrying user_id, title
// and contents. A nonexistent owner is rejected by the store's foreign key.
func (h *SecretHandler) CreateSecret(w http.ResponseWriter, r *http.Request) {
	fields, err := bodyFields(r)
	if err != nil {
		utils.ErrorFromAppError(w, utils.ParseError(err))
		return
	}

	sanitized, failures := validation.Validate(constants.EndpointSecretCreate, fields)
	if len(failures) > 0 {
		utils.ValidationFailed(w, failures)
		return
	}

	userID, err := parseID(constants.ColumnUserID, sanitized[constants.ColumnUserID])
	if err != nil {
		utils.ErrorFromAppError(w, utils.ParseError(err))
		return
	}

	secret, err := h.secretService.CreateSecret(
		r.Context(),
		userID,
		sanitized[constants.ColumnTitle],
		sanitized[constants.ColumnContents],
	)
	if err != nil {
		utils.ErrorFromAppError(w, utils.ParseError(err))
		return
	}

	utils.JSON(w, constants.StatusOK, secret)
}

// GetAllSecrets lists every stored secret
func (h *SecretHandler) GetAllSecrets(w http.ResponseWriter, r *http.Request) {
	secrets, err := h.secretService.GetAllSecrets(r.Context())
	if err != nil {
		utils.ErrorFromAppError(w, utils.ParseError(err))
		return
	}

	if len(secrets) == 0 {
		utils.NotFound(w, constants.MsgNoSecretsData)
		return
	}

	utils.JSONWithMeta(w, constants.StatusOK, secrets, &utils.Meta{Total: len(secrets)})
}

// GetSecretsByUser lists the secrets owned by the user_id query parameter
func (h *SecretHandler) GetSecretsByUser(w http.ResponseWriter, r *http.Request) {
	sanitized, failures := validation.Validate(constants.EndpointSecretFindByUser, queryFields(r))
	if len(failures) > 0 {
		utils.ValidationFailed(w, failures)
		return
	}

	userID, err := parseID(constants.ColumnUserID, sanitized[constants.ColumnUserID])
	if err != nil {
		utils.ErrorFromAppError(w, utils.ParseError(err))
		return
	}

	secrets, err := h.secretService.GetSecretsByUser(r.Context(), userID)
	if err != nil {
		utils.ErrorFromAppError(w, utils.ParseError(err))
		return
	}

	// A user with no secrets is indistinguishable from an unknown user here
	if len(secrets) == 0 {
		utils.NotFound(w, constants.MsgNoSecretsData)
		return
	}

	utils.JSONWithMeta(w, constants.StatusOK, secrets, &utils.Meta{Total: len(secrets)})
}

// GetSecret returns a single secret selected by the secret_id query parameter
func (h *SecretHandler) GetSecret(w http.ResponseWriter, r *http.Request) {
	sanitized, failures := validation.Validate(constants.EndpointSecretFindOne, queryFields(r))
	if len(failures) > 0 {
		utils.ValidationFailed(w, failures)
		return
	}

	secretID, err := parseID(constants.ColumnSecretID, sanitized[constants.ColumnSecretID])
	if err != nil {
		utils.ErrorFromAppError(w, utils.ParseError(err))
		return
	}

	secret, err := h.secretService.GetSecretByID(r.Context(), secretID)
	if err != nil {
		utils.ErrorFromAppError(w, utils.ParseError(err))
		return
	}

	utils.JSON(w, constants.StatusOK, secret)
}

// UpdateSecret rewrites a secret's title and contents from a JSON body. The
// row only changes when both secret_id and the owning user_id match.
func (h *SecretHandler) UpdateSecret(w http.ResponseWriter, r *http.Request) {
	fields, err := bodyFields(r)
	if err != nil {
		utils.ErrorFromAppError(w, utils.ParseError(err))
		return
	}

	sanitized, failures := validation.Validate(constants.EndpointSecretUpdate, fields)
	if len(failures) > 0 {
		utils.ValidationFailed(w, failures)
		return
	}

	secretID, err := parseID(constants.ColumnSecretID, sanitized[constants.ColumnSecretID])
	if err != nil {
		utils.ErrorFromAppError(w, utils.ParseError(err))
		return
	}
	userID, err := parseID(constants.ColumnUserID, sanitized[constants.ColumnUserID])
	if err != nil {
		utils.ErrorFromAppError(w, utils.ParseError(err))
		return
	}

	secret := &models.Secret{
		SecretID: secretID,
		UserID:   userID,
		Title:    sanitized[constants.ColumnTitle],
		Contents: sanitized[constants.ColumnContents],
	}

	affected, err := h.secretService.UpdateSecret(r.Context(), secret)
	if err != nil {
		utils.ErrorFromAppError(w, utils.ParseError(err))
		return
	}

	if affected == 0 {
		utils.NotFound(w, "")
		return
	}

	utils.JSON(w, constants.StatusOK, map[string]interface{}{
		"message": constants.MsgSecretUpdated,
	})
}

// DeleteSecret removes a secret selected by the secret_id query parameter
func (h *SecretHandler) DeleteSecret(w http.ResponseWriter, r *http.Request) {
	sanitized, failures := validation.Validate(constants.EndpointSecretDelete, queryFields(r))
	if len(failures) > 0 {
		utils.ValidationFailed(w, failures)
		return
	}

	secretID, err := parseID(constants.ColumnSecretID, sanitized[constants.ColumnSecretID])
	if err != nil {
		utils.ErrorFromAppError(w, utils.ParseError(err))
		return
	}

	affected, err := h.secretService.DeleteSecret(r.Context(), secretID)
	if err != nil {
		utils.ErrorFromAppError(w, utils.ParseError(err))
		return
	}

	if affected == 0 {
		utils.NotFound(w, "")
		return
	}

	utils.JSON(w, constants.StatusOK, map[string]interface{}{
		"message": constants.MsgSecretDeleted,
	})
}
