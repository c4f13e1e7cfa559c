package ingestion

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"

	v1 "github.com/aevon-lab/sales-analytics/internal/api/v1"
	httperr "github.com/aevon-lab/sales-analytics/internal/core/errors"
	"github.com/aevon-lab/sales-analytics/internal/core/storage"
	"github.com/gin-gonic/gin"
)

const (
	msgReadBodyFailed  = "Failed to read request body"
	msgInvalidJSON     = "Invalid JSON body"
	msgInvalidPayload  = "Invalid data"
	msgPersistFailed   = "Failed to store transactions"
	msgUploaded        = "Transactions uploaded"
	payloadTransaction = "transactions"
)

// ingestionError carries the structured HTTP error shape from a helper back to the orchestrator.
// Helpers return this instead of writing to gin.Context directly, keeping them decoupled from HTTP.
type ingestionError struct {
	statusCode int
	errorType  string
	message    string
	details    interface{}
}

func (e *ingestionError) Error() string {
	return e.message
}

// UploadResponse is the body of a successful POST /transactions.
type UploadResponse struct {
	Message string `json:"message"`
	storage.InsertResult
}

// ClearResponse is the body of DELETE /transactions.
type ClearResponse struct {
	Message string `json:"message"`
	Cleared int    `json:"cleared"`
}

// UploadHandler handles POST /transactions.
// The body must be an object whose "transactions" key holds an array of records.
func (s *Service) UploadHandler(c *gin.Context) {
	records, payloadSize, err := s.parseBatch(c)
	if err != nil {
		writeError(c, err)
		return
	}

	txns, rejected := convertRecords(records)

	result, storeErr := s.store.InsertBatch(c.Request.Context(), txns)
	if storeErr != nil {
		slog.Error("Failed to store transactions", "error", storeErr, "batch_size", len(records))
		writeError(c, &ingestionError{
			statusCode: http.StatusInternalServerError,
			errorType:  httperr.HttpInternalError,
			message:    msgPersistFailed,
		})
		return
	}
	result.Rejected += rejected

	slog.Info("Received transaction batch",
		"batch_size", len(records),
		"added", result.Added,
		"duplicates", result.Duplicates,
		"rejected", result.Rejected,
		"total_count", result.Total,
		"payload_size", payloadSize)

	c.JSON(http.StatusCreated, UploadResponse{Message: msgUploaded, InsertResult: result})
}

// parseBatch reads the raw request body and extracts the record array.
// Returns the records and the raw payload size (used for structured logging upstream).
func (s *Service) parseBatch(c *gin.Context) ([]interface{}, int, *ingestionError) {
	// Enforce maximum body size to prevent OOM attacks
	maxBytes := int64(s.maxBodySizeBytes)
	limitedBody := io.LimitReader(c.Request.Body, maxBytes+1) // +1 to detect oversized requests

	bodyBytes, err := io.ReadAll(limitedBody)
	if err != nil {
		slog.Error("Failed to read request body", "error", err)
		return nil, 0, &ingestionError{
			statusCode: http.StatusInternalServerError,
			errorType:  httperr.HttpInternalError,
			message:    msgReadBodyFailed,
		}
	}

	if int64(len(bodyBytes)) > maxBytes {
		slog.Warn("Request body exceeds maximum size", "size", len(bodyBytes), "max", maxBytes)
		return nil, len(bodyBytes), &ingestionError{
			statusCode: http.StatusRequestEntityTooLarge,
			errorType:  httperr.HttpPayloadTooLargeError,
			message:    "Request body exceeds maximum allowed size",
			details: map[string]interface{}{
				"max_size_mb": maxBytes / (1024 * 1024),
			},
		}
	}

	// Numbers stay json.Number so large integer ids survive decoding intact.
	var payload map[string]interface{}
	dec := json.NewDecoder(bytes.NewReader(bodyBytes))
	dec.UseNumber()
	if err := dec.Decode(&payload); err != nil {
		slog.Warn("Invalid JSON body received", "error", err, "payload_size", len(bodyBytes))
		return nil, len(bodyBytes), &ingestionError{
			statusCode: http.StatusBadRequest,
			errorType:  httperr.HttpInvalidJsonError,
			message:    msgInvalidJSON,
		}
	}

	raw, ok := payload[payloadTransaction]
	if !ok {
		return nil, len(bodyBytes), invalidPayload(`missing "transactions" key`)
	}
	records, ok := raw.([]interface{})
	if !ok {
		return nil, len(bodyBytes), invalidPayload(fmt.Sprintf(`"transactions" must be an array, got %T`, raw))
	}

	return records, len(bodyBytes), nil
}

// convertRecords coerces raw records into transactions, dropping the ones
// that cannot form a valid transaction. Returns the survivors and the count dropped.
func convertRecords(records []interface{}) ([]v1.Transaction, int) {
	txns := make([]v1.Transaction, 0, len(records))
	rejected := 0
	for i, raw := range records {
		record, ok := raw.(map[string]interface{})
		if !ok {
			slog.Warn("Rejected transaction record", "index", i, "error", "record is not an object")
			rejected++
			continue
		}
		txn, err := v1.TransactionFromRecord(record)
		if err != nil {
			slog.Warn("Rejected transaction record", "index", i, "error", err)
			rejected++
			continue
		}
		txns = append(txns, txn)
	}
	return txns, rejected
}

// ListHandler handles GET /transactions.
// Query parameters: page (default 1), per_page (default and cap from config)
func (s *Service) ListHandler(c *gin.Context) {
	var query struct {
		Page    int `form:"page"`
		PerPage int `form:"per_page"`
	}
	if err := c.ShouldBindQuery(&query); err != nil {
		c.JSON(http.StatusBadRequest, httperr.ErrorResponse{
			ErrorType: httperr.HttpInvalidQueryError,
			Message:   "Invalid query parameters",
			Details:   err.Error(),
		})
		return
	}

	if _, ok := c.GetQuery("page"); !ok {
		query.Page = 1
	}
	if _, ok := c.GetQuery("per_page"); !ok {
		query.PerPage = s.defaultPageSize
	}
	if query.PerPage > s.maxPageSize {
		query.PerPage = s.maxPageSize
	}

	page, err := s.store.List(c.Request.Context(), query.Page, query.PerPage)
	if err != nil {
		if errors.Is(err, storage.ErrInvalidInput) {
			c.JSON(http.StatusBadRequest, httperr.ErrorResponse{
				ErrorType: httperr.HttpInvalidQueryError,
				Message:   "Invalid query parameters",
				Details:   err.Error(),
			})
			return
		}

		slog.Error("Failed to list transactions", "error", err)
		c.JSON(http.StatusInternalServerError, httperr.ErrorResponse{
			ErrorType: httperr.HttpInternalError,
			Message:   "Failed to list transactions",
			Details:   err.Error(),
		})
		return
	}

	if page.Transactions == nil {
		page.Transactions = []v1.Transaction{}
	}
	c.JSON(http.StatusOK, page)
}

// ClearHandler handles DELETE /transactions.
func (s *Service) ClearHandler(c *gin.Context) {
	cleared, err := s.store.Clear(c.Request.Context())
	if err != nil {
		slog.Error("Failed to clear transactions", "error", err)
		c.JSON(http.StatusInternalServerError, httperr.ErrorResponse{
			ErrorType: httperr.HttpInternalError,
			Message:   "Failed to clear transactions",
			Details:   err.Error(),
		})
		return
	}

	slog.Info("Cleared transactions", "cleared", cleared)
	c.JSON(http.StatusOK, ClearResponse{
		Message: fmt.Sprintf("Cleared %d transactions", cleared),
		Cleared: cleared,
	})
}

func invalidPayload(details string) *ingestionError {
	slog.Warn("Invalid upload payload", "details", details)
	return &ingestionError{
		statusCode: http.StatusBadRequest,
		errorType:  httperr.HttpInvalidInputError,
		message:    msgInvalidPayload,
		details:    details,
	}
}

// writeError serializes an ingestionError as the JSON HTTP response.
func writeError(c *gin.Context, err *ingestionError) {
	c.JSON(err.statusCode, httperr.ErrorResponse{
		ErrorType: err.errorType,
		Message:   err.message,
		Details:   err.details,
	})
}
