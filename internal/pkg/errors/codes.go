package errors

import "net/http"

const CodeNotFound = "NOT_FOUND"

var (
	ErrInvalidRequest = New(
		"INVALID_REQUEST",
		"Invalid request parameters",
		http.StatusBadRequest,
	)

	ErrMissingRequestBody = New(
		"MISSING_REQUEST_BODY",
		"Missing request body",
		http.StatusBadRequest,
	)

	ErrMissingProjectID = New(
		"MISSING_PROJECT_ID",
		"Missing required path param: projectId",
		http.StatusBadRequest,
	)

	ErrInvalidStateCode = New(
		"INVALID_STATE_CODE",
		"Only changing to Archived and Planning states is currently allowed.",
		http.StatusBadRequest,
	)

	ErrLastProjectLead = New(
		"LAST_PROJECT_LEAD",
		"Cannot remove the only Project Lead participant",
		http.StatusBadRequest,
	)

	ErrUnauthorized = New(
		"UNAUTHORIZED",
		"Missing or invalid credentials",
		http.StatusUnauthorized,
	)

	ErrForbidden = New(
		"FORBIDDEN",
		"Insufficient role for this operation",
		http.StatusForbidden,
	)

	ErrDatabaseError = New(
		"DATABASE_ERROR",
		"Database operation failed",
		http.StatusInternalServerError,
	)

	ErrCacheError = New(
		"CACHE_ERROR",
		"Cache operation failed",
		http.StatusInternalServerError,
	)

	ErrInternalServer = New(
		"INTERNAL_SERVER_ERROR",
		"Internal server error",
		http.StatusInternalServerError,
	)
)
