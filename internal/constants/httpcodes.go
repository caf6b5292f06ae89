// Package constants provides shared constant values used throughout the application.
//
// The httpcodes.go file defines HTTP-related constants such as status codes,
// machine-readable response codes, headers, and content types. These constants
// ensure consistent HTTP communication patterns across the application and
// provide standardized responses to API clients.
package constants

// HTTP Status Codes define the standard HTTP response status codes used in the application.
const (
	// StatusOK indicates that the request has succeeded.
	StatusOK = 200

	// StatusBadRequest indicates that the server cannot process the request due to client error.
	StatusBadRequest = 400

	// StatusNotFound indicates that the server cannot find the requested resource.
	StatusNotFound = 404

	// StatusMethodNotAllowed indicates that the request method is not supported for the requested resource.
	StatusMethodNotAllowed = 405

	// StatusInternalServerError indicates that the server encountered an unexpected condition.
	StatusInternalServerError = 500

	// StatusServiceUnavailable indicates that the backing store rejected or could not serve the request.
	StatusServiceUnavailable = 503
)

// HTTP Response Code Types define application-specific response codes.
// These codes provide more detail about the response beyond HTTP status codes.
const (
	// ResponseSuccess indicates that the request was processed successfully.
	ResponseSuccess = true

	// ResponseFailure indicates that the request processing failed.
	ResponseFailure = false

	// CodeBadRequest indicates a malformed or invalid request.
	CodeBadRequest = "bad_request"

	// CodeNotFound indicates the requested resource does not exist.
	CodeNotFound = "not_found"

	// CodeMethodNotAllowed indicates an unsupported HTTP method.
	CodeMethodNotAllowed = "method_not_allowed"

	// CodeValidationError indicates that one or more request fields failed validation.
	CodeValidationError = "validation_error"

	// CodeServiceUnavailable indicates the backing store is unreachable or rejected a write.
	CodeServiceUnavailable = "service_unavailable"

	// CodeInternalError indicates an unexpected server-side failure.
	CodeInternalError = "internal_error"
)

// HTTP Headers define the header names used by the application.
const (
	// HeaderContentType is the Content-Type header name.
	HeaderContentType = "Content-Type"

	// HeaderRequestID is the header carrying the per-request correlation ID.
	HeaderRequestID = "X-Request-ID"
)

// Content Types define the media types emitted by the application.
const (
	// ContentTypeJSON is the media type for JSON responses.
	ContentTypeJSON = "application/json"
)

// Security Headers applied to every response.
const (
	// HeaderXContentTypeOptions prevents MIME type sniffing.
	HeaderXContentTypeOptions = "X-Content-Type-Options"

	// HeaderXFrameOptions prevents clickjacking via framing.
	HeaderXFrameOptions = "X-Frame-Options"

	// ValueNoSniff is the value for X-Content-Type-Options.
	ValueNoSniff = "nosniff"

	// ValueDenyFrames is the value for X-Frame-Options.
	ValueDenyFrames = "DENY"
)
