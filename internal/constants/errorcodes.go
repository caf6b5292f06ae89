// Package constants provides shared constant values used throughout the application.
//
// The errorcodes.go file defines user-facing error messages. Messages are
// informative without revealing implementation details: statement text, driver
// errors, and connection failures are logged server-side and never echoed to
// the client.
package constants

// User-Facing Error Messages define standardized messages that can be safely presented to clients.
const (
	// MsgInternalServerError provides a generic server error message.
	MsgInternalServerError = "An internal server error occurred"

	// MsgResourceNotFound indicates the requested resource does not exist.
	MsgResourceNotFound = "The requested resource was not found"

	// MsgStoreUnavailable indicates the backing store could not serve the request.
	MsgStoreUnavailable = "Database service unavailable"

	// MsgNotCreated indicates the store accepted the statement but reported no inserted row.
	MsgNotCreated = "The resource could not be created"

	// MsgValidationFailed is the summary message for rejected requests.
	MsgValidationFailed = "Validation failed"

	// MsgMalformedJSON indicates the request body is not valid JSON.
	MsgMalformedJSON = "Request body contains malformed JSON"

	// MsgEmptyRequestBody indicates a body was expected but absent.
	MsgEmptyRequestBody = "Request body must not be empty"

	// MsgMethodNotAllowed indicates an unsupported HTTP method for the route.
	MsgMethodNotAllowed = "Method not allowed for this resource"

	// MsgNoUsersData indicates the users table holds no rows.
	MsgNoUsersData = "No available users data."

	// MsgNoSecretsData indicates the secrets table holds no rows.
	MsgNoSecretsData = "No available secrets data."

	// MsgUserUpdated confirms a user row was rewritten.
	MsgUserUpdated = "User updated"

	// MsgUserDeleted confirms a user row was removed.
	MsgUserDeleted = "User deleted"

	// MsgSecretUpdated confirms a secret row was rewritten.
	MsgSecretUpdated = "Secret updated"

	// MsgSecretDeleted confirms a secret row was removed.
	MsgSecretDeleted = "Secret deleted"
)

// Field Validation Messages define the per-field messages emitted by the
// validation rule chains. They match the source system's wording per endpoint.
const (
	// MsgInvalidFirstName is reported when fname fails its rule chain.
	MsgInvalidFirstName = "Invalid first name."

	// MsgInvalidLastName is reported when lname fails its rule chain.
	MsgInvalidLastName = "Invalid last name."

	// MsgCheckUserID is reported when user_id fails its rule chain.
	MsgCheckUserID = "Check user id."

	// MsgInvalidUserID is reported when user_id fails its rule chain on secret creation.
	MsgInvalidUserID = "Invalid user id."

	// MsgCheckSecretID is reported when secret_id fails its rule chain.
	MsgCheckSecretID = "Check secret id."

	// MsgInvalidTitle is reported when title fails its rule chain.
	MsgInvalidTitle = "Invalid title."

	// MsgInvalidContents is reported when contents fails its rule chain.
	MsgInvalidContents = "Invalid contents."
)
