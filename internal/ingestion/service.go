package ingestion

import (
	"github.com/aevon-lab/sales-analytics/internal/core/storage"
	"github.com/gin-gonic/gin"
)

// Options tune the ingestion endpoints.
type Options struct {
	MaxBodySizeMB   int
	DefaultPageSize int
	MaxPageSize     int
}

type Service struct {
	store            storage.TransactionStore
	maxBodySizeBytes int
	defaultPageSize  int
	maxPageSize      int
}

func NewService(repo storage.TransactionStore, opts Options) *Service {
	if repo == nil {
		panic("ingestion: store must not be nil")
	}
	if opts.MaxBodySizeMB <= 0 {
		opts.MaxBodySizeMB = 1 // default to 1MB
	}
	if opts.DefaultPageSize <= 0 {
		opts.DefaultPageSize = 100
	}
	if opts.MaxPageSize < opts.DefaultPageSize {
		opts.MaxPageSize = opts.DefaultPageSize
	}
	return &Service{
		store:            repo,
		maxBodySizeBytes: opts.MaxBodySizeMB * 1024 * 1024,
		defaultPageSize:  opts.DefaultPageSize,
		maxPageSize:      opts.MaxPageSize,
	}
}

// RegisterRoutes registers the ingestion service routes.
func (s *Service) RegisterRoutes(r gin.IRouter) {
	r.POST("/transactions", s.UploadHandler)
	r.GET("/transactions", s.ListHandler)
	r.DELETE("/transactions", s.ClearHandler)
}
