package mocks

//go:generate mockery --name TransactionStore --srcpkg github.com/aevon-lab/sales-analytics/internal/core/storage --output ./storage --outpkg storagemocks --with-expecter
