package handlers

import (
	"net/http"

	"github.com/tinhat/dirtysecrets/internal/constants"
	"github.com/tinhat/dirtysecrets/internal/models"
	"github.com/tinhat/dirtysecrets/internal/utils"
	"github.com/tinhat/dirtysecrets/internal/validation"
)

// UserHandler handles user-related routes
type UserHandler struct {
	userService UserServiceInterface
}

// NewUserHandler creates a new UserHandler
func NewUserHandler(userService UserServiceInterface) *UserHandler {
	return &UserHandler{
		userService: userService,
	}
}

// CreateUser stores a new user from a JSON body carrying fname and lname
func (h *UserHandler) CreateUser(w http.ResponseWriter, r *http.Request) {
	fields, err := bodyFields(r)
	if err != nil {
		utils.ErrorFromAppError(w, utils.ParseError(err))
		return
	}

	sanitized, failures := validation.Validate(constants.EndpointUserCreate, fields)
	if len(failures) > 0 {
		utils.ValidationFailed(w, failures)
		return
	}

	user, err := h.userService.CreateUser(
		r.Context(),
		sanitized[constants.ColumnFirstName],
		sanitized[constants.ColumnLastName],
	)
	if err != nil {
		utils.ErrorFromAppError(w, utils.ParseError(err))
		return
	}

	utils.JSON(w, constants.StatusOK, user)
}

// GetAllUsers lists every stored user
func (h *UserHandler) GetAllUsers(w http.ResponseWriter, r *http.Request) {
	users, err := h.userService.GetAllUsers(r.Context())
	if err != nil {
		utils.ErrorFromAppError(w, utils.ParseError(err))
		return
	}

	if len(users) == 0 {
		utils.NotFound(w, constants.MsgNoUsersData)
		return
	}

	utils.JSONWithMeta(w, constants.StatusOK, users, &utils.Meta{Total: len(users)})
}

// GetUser returns a single user selected by the user_id query parameter
func (h *UserHandler) GetUser(w http.ResponseWriter, r *http.Request) {
	sanitized, failures := validation.Validate(constants.EndpointUserFindOne, queryFields(r))
	if len(failures) > 0 {
		utils.ValidationFailed(w, failures)
		return
	}

	id, err := parseID(constants.ColumnUserID, sanitized[constants.ColumnUserID])
	if err != nil {
		utils.ErrorFromAppError(w, utils.ParseError(err))
		return
	}

	user, err := h.userService.GetUserByID(r.Context(), id)
	if err != nil {
		utils.ErrorFromAppError(w, utils.ParseError(err))
		return
	}

	utils.JSON(w, constants.StatusOK, user)
}

// UpdateUser rewrites a user's names from a JSON body
func (h *UserHandler) UpdateUser(w http.ResponseWriter, r *http.Request) {
	fields, err := bodyFields(r)
	if err != nil {
		utils.ErrorFromAppError(w, utils.ParseError(err))
		return
	}

	sanitized, failures := validation.Validate(constants.EndpointUserUpdate, fields)
	if len(failures) > 0 {
		utils.ValidationFailed(w, failures)
		return
	}

	id, err := parseID(constants.ColumnUserID, sanitized[constants.ColumnUserID])
	if err != nil {
		utils.ErrorFromAppError(w, utils.ParseError(err))
		return
	}

	user := &models.User{
		UserID:    id,
		FirstName: sanitized[constants.ColumnFirstName],
		LastName:  sanitized[constants.ColumnLastName],
	}

	affected, err := h.userService.UpdateUser(r.Context(), user)
	if err != nil {
		utils.ErrorFromAppError(w, utils.ParseError(err))
		return
	}

	// Zero affected rows means the ID matched nothing
	if affected == 0 {
		utils.NotFound(w, "")
		return
	}

	utils.JSON(w, constants.StatusOK, map[string]interface{}{
		"message": constants.MsgUserUpdated,
	})
}

// DeleteUser removes a user selected by the user_id query parameter
func (h *UserHandler) DeleteUser(w http.ResponseWriter, r *http.Request) {
	sanitized, failures := validation.Validate(constants.EndpointUserDelete, queryFields(r))
	if len(failures) > 0 {
		utils.ValidationFailed(w, failures)
		return
	}

	id, err := parseID(constants.ColumnUserID, sanitized[constants.ColumnUserID])
	if err != nil {
		utils.ErrorFromAppError(w, utils.ParseError(err))
		return
	}

	affected, err := h.userService.DeleteUser(r.Context(), id)
	if err != nil {
		utils.ErrorFromAppError(w, utils.ParseError(err))
		return
	}

	if affected == 0 {
		utils.NotFound(w, "")
		return
	}

	utils.JSON(w, constants.StatusOK, map[string]interface{}{
		"message": constants.MsgUserDeleted,
	})
}
