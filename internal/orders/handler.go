package orders

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"

	httperr "github.com/aevon-lab/sales-analytics/internal/core/errors"
	"github.com/gin-gonic/gin"
)

// Service exposes the order aggregator over HTTP. It holds no order state.
type Service struct {
	maxBodySizeBytes int64
}

func NewService(maxBodySizeMB int) *Service {
	if maxBodySizeMB <= 0 {
		maxBodySizeMB = 1
	}
	return &Service{maxBodySizeBytes: int64(maxBodySizeMB) * 1024 * 1024}
}

// RegisterRoutes registers the order routes.
func (s *Service) RegisterRoutes(r gin.IRouter) {
	r.POST("/orders/totals", s.HandleTotals)
}

// HandleTotals handles POST /orders/totals with body {"orders": [...]}.
// Entries that are not objects are counted as skipped.
func (s *Service) HandleTotals(c *gin.Context) {
	bodyBytes, err := io.ReadAll(io.LimitReader(c.Request.Body, s.maxBodySizeBytes+1))
	if err != nil {
		slog.Error("Failed to read request body", "error", err)
		c.JSON(http.StatusInternalServerError, httperr.ErrorResponse{
			ErrorType: httperr.HttpInternalError,
			Message:   "Failed to read request body",
		})
		return
	}
	if int64(len(bodyBytes)) > s.maxBodySizeBytes {
		c.JSON(http.StatusRequestEntityTooLarge, httperr.ErrorResponse{
			ErrorType: httperr.HttpPayloadTooLargeError,
			Message:   "Request body exceeds maximum allowed size",
		})
		return
	}

	var payload struct {
		Orders []interface{} `json:"orders"`
	}
	dec := json.NewDecoder(bytes.NewReader(bodyBytes))
	dec.UseNumber()
	if err := dec.Decode(&payload); err != nil {
		slog.Warn("Invalid JSON body received", "error", err, "payload_size", len(bodyBytes))
		c.JSON(http.StatusBadRequest, httperr.ErrorResponse{
			ErrorType: httperr.HttpInvalidJsonError,
			Message:   "Invalid JSON body",
			Details:   err.Error(),
		})
		return
	}
	if payload.Orders == nil {
		c.JSON(http.StatusBadRequest, httperr.ErrorResponse{
			ErrorType: httperr.HttpInvalidInputError,
			Message:   "Invalid data",
			Details:   `"orders" must be an array`,
		})
		return
	}

	records := make([]map[string]interface{}, 0, len(payload.Orders))
	notObjects := 0
	for _, raw := range payload.Orders {
		record, ok := raw.(map[string]interface{})
		if !ok {
			notObjects++
			continue
		}
		records = append(records, record)
	}

	result := Aggregate(records)
	result.Skipped += notObjects

	slog.Info("Totalled orders",
		"orders", len(payload.Orders),
		"customers", len(result.Totals),
		"skipped", result.Skipped)

	c.JSON(http.StatusOK, result)
}
