package validation

import (
	"github.com/tinhat/dirtysecrets/internal/constants"
)

// idSteps is the chain applied to numeric identifier fields.
func idSteps() []Step {
	return []Step{Trim, Required, Numeric, Escape}
}

// nameSteps is the chain applied to person name fields.
func nameSteps() []Step {
	return []Step{Trim, Required, AlphaSpace, Escape}
}

// textSteps is the chain applied to free-text fields.
func textSteps() []Step {
	return []Step{Trim, Required, Escape}
}

// ruleSets registers the validation rules per endpoint. Find-all endpoints
// take no input and carry an empty set.
var ruleSets = map[string]RuleSet{
	constants.EndpointUserCreate: {
		{Field: constants.ColumnFirstName, Message: constants.MsgInvalidFirstName, Steps: nameSteps()},
		{Field: constants.ColumnLastName, Message: constants.MsgInvalidLastName, Steps: nameSteps()},
	},
	constants.EndpointUserFindAll: {},
	constants.EndpointUserFindOne: {
		{Field: constants.ColumnUserID, Message: constants.MsgCheckUserID, Steps: idSteps()},
	},
	constants.EndpointUserUpdate: {
		{Field: constants.ColumnUserID, Message: constants.MsgCheckUserID, Steps: idSteps()},
		{Field: constants.ColumnFirstName, Message: constants.MsgInvalidFirstName, Steps: nameSteps()},
		{Field: constants.ColumnLastName, Message: constants.MsgInvalidLastName, Steps: nameSteps()},
	},
	constants.EndpointUserDelete: {
		{Field: constants.ColumnUserID, Message: constants.MsgCheckUserID, Steps: idSteps()},
	},
	constants.EndpointSecretCreate: {
		{Field: constants.ColumnUserID, Message: constants.MsgInvalidUserID, Steps: idSteps()},
		{Field: constants.ColumnTitle, Message: constants.MsgInvalidTitle, Steps: textSteps()},
		{Field: constants.ColumnContents, Message: constants.MsgInvalidContents, Steps: textSteps()},
	},
	constants.EndpointSecretFindAll: {},
	constants.EndpointSecretFindByUser: {
		{Field: constants.ColumnUserID, Message: constants.MsgCheckUserID, Steps: idSteps()},
	},
	constants.EndpointSecretFindOne: {
		{Field: constants.ColumnSecretID, Message: constants.MsgCheckSecretID, Steps: idSteps()},
	},
	constants.EndpointSecretUpdate: {
		{Field: constants.ColumnSecretID, Message: constants.MsgCheckSecretID, Steps: idSteps()},
		{Field: constants.ColumnUserID, Message: constants.MsgCheckUserID, Steps: idSteps()},
		{Field: constants.ColumnTitle, Message: constants.MsgInvalidTitle, Steps: textSteps()},
		{Field: constants.ColumnContents, Message: constants.MsgInvalidContents, Steps: textSteps()},
	},
	constants.EndpointSecretDelete: {
		{Field: constants.ColumnSecretID, Message: constants.MsgCheckSecretID, Steps: idSteps()},
	},
}
