package analytics

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	v1 "github.com/aevon-lab/sales-analytics/internal/api/v1"
	httperr "github.com/aevon-lab/sales-analytics/internal/core/errors"
	"github.com/aevon-lab/sales-analytics/internal/core/storage"
	"github.com/gin-gonic/gin"
)

// RegisterRoutes registers all analytics API routes on the given router.
func (s *Service) RegisterRoutes(r gin.IRouter) {
	r.GET("/sales/per-product", s.HandleProductTotals)
	r.GET("/customers/top", s.HandleTopCustomers)
	r.GET("/customers/:customer_id/transactions", s.HandleCustomerHistory)
	r.GET("/transactions/filter", s.HandleFilter)
	r.GET("/analytics/summary", s.HandleSummary)
}

// HandleProductTotals handles GET /sales/per-product
func (s *Service) HandleProductTotals(c *gin.Context) {
	rows, err := s.ProductTotals(c.Request.Context())
	if err != nil {
		writeViewError(c, err, "Failed to compute product totals")
		return
	}
	c.JSON(http.StatusOK, ProductsResponse{Products: rows})
}

// HandleTopCustomers handles GET /customers/top
// Query parameters: limit
func (s *Service) HandleTopCustomers(c *gin.Context) {
	limit := 0
	if raw, ok := c.GetQuery("limit"); ok {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 {
			c.JSON(http.StatusBadRequest, httperr.ErrorResponse{
				ErrorType: httperr.HttpInvalidQueryError,
				Message:   "Invalid query parameters",
				Details:   "limit must be a positive integer",
			})
			return
		}
		limit = n
	}

	rows, err := s.TopCustomers(c.Request.Context(), limit)
	if err != nil {
		writeViewError(c, err, "Failed to compute top customers")
		return
	}
	c.JSON(http.StatusOK, TopCustomersResponse{TopCustomers: rows})
}

// HandleFilter handles GET /transactions/filter
// Query parameters: start_date, end_date, product_name
func (s *Service) HandleFilter(c *gin.Context) {
	var params FilterParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, httperr.ErrorResponse{
			ErrorType: httperr.HttpInvalidQueryError,
			Message:   "Invalid query parameters",
			Details:   err.Error(),
		})
		return
	}

	txns, err := s.Filter(c.Request.Context(), params)
	if err != nil {
		writeViewError(c, err, "Failed to filter transactions")
		return
	}
	c.JSON(http.StatusOK, TransactionsResponse{Transactions: nonNil(txns), Count: len(txns)})
}

// HandleSummary handles GET /analytics/summary
func (s *Service) HandleSummary(c *gin.Context) {
	summary, err := s.Summary(c.Request.Context())
	if err != nil {
		writeViewError(c, err, "Failed to compute summary")
		return
	}
	c.JSON(http.StatusOK, summary)
}

// HandleCustomerHistory handles GET /customers/:customer_id/transactions
func (s *Service) HandleCustomerHistory(c *gin.Context) {
	customerID := c.Param("customer_id")

	txns, err := s.CustomerHistory(c.Request.Context(), customerID)
	if err != nil {
		writeViewError(c, err, "Failed to load customer transactions")
		return
	}
	c.JSON(http.StatusOK, CustomerHistoryResponse{
		CustomerID:   customerID,
		Transactions: nonNil(txns),
		Count:        len(txns),
	})
}

func writeViewError(c *gin.Context, err error, message string) {
	switch {
	case errors.Is(err, storage.ErrEmptyDataset):
		c.JSON(http.StatusNotFound, httperr.ErrorResponse{
			ErrorType: httperr.HttpEmptyDatasetError,
			Message:   "No transactions available",
		})
	case errors.Is(err, ErrInvalidQuery):
		c.JSON(http.StatusBadRequest, httperr.ErrorResponse{
			ErrorType: httperr.HttpInvalidQueryError,
			Message:   "Invalid query parameters",
			Details:   err.Error(),
		})
	default:
		slog.Error(message, "path", c.FullPath(), "error", err)
		c.JSON(http.StatusInternalServerError, httperr.ErrorResponse{
			ErrorType: httperr.HttpInternalError,
			Message:   message,
			Details:   err.Error(),
		})
	}
}

// nonNil keeps empty results encoding as [] rather than null.
func nonNil(txns []v1.Transaction) []v1.Transaction {
	if txns == nil {
		return []v1.Transaction{}
	}
	return txns
}
