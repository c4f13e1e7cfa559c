package errors

const (
	HttpInternalError        = "internal_error"
	HttpInvalidJsonError     = "invalid_json"
	HttpInvalidInputError    = "invalid_input"
	HttpInvalidQueryError    = "invalid_query"
	HttpEmptyDatasetError    = "empty_dataset"
	HttpPayloadTooLargeError = "payload_too_large"
)

// ErrorResponse is the error body returned by every API endpoint.
type ErrorResponse struct {
	ErrorType string      `json:"error_type"`
	Message   string      `json:"message"`
	Details   interface{} `json:"details,omitempty"`
}
