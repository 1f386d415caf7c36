package repository

import "context"

// TransactionManager runs a unit of work inside one storefront-store
// transaction. The operations store is deliberately NOT reachable from a
// factory: the two stores share no transaction boundary, and keeping
// operations-store repositories out of the factory makes it impossible to
// accidentally pretend otherwise.
type TransactionManager interface {
	// Execute runs fn within a database transaction. If fn returns an
	// error, the transaction is rolled back; otherwise it is committed.
	// All repositories obtained from the factory share the transaction.
	Execute(ctx context.Context, fn func(txRepoFactory RepositoryFactory) error) error
}

// RepositoryFactory provides repository instances bound to one storefront
// transaction.
type RepositoryFactory interface {
	// NewCartRepository returns a CartRepository bound to the current transaction.
	NewCartRepository() CartRepository

	// NewOrderRepository returns an OrderRepository bound to the current transaction.
	NewOrderRepository() OrderRepository

	// NewProductRepository returns a ProductRepository bound to the current transaction.
	NewProductRepository() ProductRepository
}
