package repository

import "context"

// TransactionManager runs a read-check-write sequence atomically without the
// usecase layer depending on GORM.
type TransactionManager interface {
	// Execute runs fn within a database transaction. A returned error rolls it back.
	Execute(ctx context.Context, fn func(txRepoFactory RepositoryFactory) error) error
}

// RepositoryFactory hands out repositories bound to the current transaction.
type RepositoryFactory interface {
	// NewServiceRepository returns a ServiceRepository bound to the current transaction.
	NewServiceRepository() ServiceRepository
}
