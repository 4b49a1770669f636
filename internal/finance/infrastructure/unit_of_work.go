package infrastructure

import (
	"context"
	"database/sql"

	database "github.com/sebuszqo/FinanceTracker/internal/db"
	"github.com/sebuszqo/FinanceTracker/internal/finance/domain"
)

// UnitOfWork hands out repositories bound to the gateway's transaction.
type UnitOfWork struct {
	db *database.DBService
}

func NewUnitOfWork(db *database.DBService) *UnitOfWork {
	return &UnitOfWork{db: db}
}

func (u *UnitOfWork) Do(ctx context.Context, fn func(repos domain.Repositories) error) error {
	return u.db.WithUnitOfWork(ctx, func(tx *sql.Tx) error {
		return fn(domain.Repositories{
			Categories:   NewCategoryRepository(tx),
			Transactions: NewTransactionRepository(tx),
		})
	})
}
