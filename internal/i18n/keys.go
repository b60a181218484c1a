// Package i18n provides internationalization support for the invoice service.
package i18n

// Error message translation keys.
const (
	// ErrKeyInvalidRequest indicates an invalid request.
	ErrKeyInvalidRequest = "error.invalid_request"
	// ErrKeyInvalidRequestBody indicates a body that is not a valid invoice.
	ErrKeyInvalidRequestBody = "error.invalid_request_body"
	// ErrKeyInvalidID indicates a path id that is not an integer.
	ErrKeyInvalidID = "error.invalid_id"
	// ErrKeyInternalError indicates an internal server error.
	ErrKeyInternalError = "error.internal_error"
	// ErrKeyNotFound indicates a resource was not found.
	ErrKeyNotFound = "error.not_found"
	// ErrKeyInvoiceNotFound indicates no invoice has the requested id.
	ErrKeyInvoiceNotFound = "error.invoice_not_found"
	// ErrKeyRateLimitExceeded indicates rate limit exceeded.
	ErrKeyRateLimitExceeded = "error.rate_limit_exceeded"
	// ErrKeyConflict indicates a conflict with current state.
	ErrKeyConflict = "error.conflict"
	// ErrKeyTimeout indicates a request timeout.
	ErrKeyTimeout = "error.timeout"
	// ErrKeyServiceUnavailable indicates a backing store is unavailable.
	ErrKeyServiceUnavailable = "error.service_unavailable"
)

// Success message translation keys.
const (
	// SuccessKeyInvoiceDeleted confirms a delete. Takes the invoice id.
	SuccessKeyInvoiceDeleted = "success.invoice_deleted"
)
