// Package apierror defines the error envelopes every 4xx/5xx response uses.
// Handlers never serialize raw errors: internal detail (driver errors, stack
// traces) stays out of the wire format.
package apierror

// APIError is the canonical single-message error envelope.
type APIError struct {
	Detail string `json:"detail"`
}

func New(msg string) *APIError {
	return &APIError{Detail: msg}
}

// ValidationError carries per-field messages from request binding.
type ValidationError struct {
	Detail string            `json:"detail"`
	Fields map[string]string `json:"fields"`
}

func NewValidation(fields map[string]string) *ValidationError {
	return &ValidationError{Detail: "Error de validacion", Fields: fields}
}
