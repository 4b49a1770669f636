package domain

import "context"

// Repositories are bound to the transaction of the unit of work that handed them out.
type Repositories struct {
	Categories   CategoryRepository
	Transactions TransactionRepository
}

// UnitOfWork runs fn with repositories sharing one database transaction. The
// transaction commits when fn returns nil and rolls back otherwise.
type UnitOfWork interface {
	Do(ctx context.Context, fn func(repos Repositories) error) error
}
