package infrastructure

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	database "github.com/sebuszqo/FinanceTracker/internal/db"
	"github.com/sebuszqo/FinanceTracker/internal/finance/domain"
	financeErrors "github.com/sebuszqo/FinanceTracker/internal/finance/errors"
)

const transactionColumns = `id, amount, type, description, transaction_date, category_id`

type TransactionRepository struct {
	db database.Querier
}

func NewTransactionRepository(db database.Querier) *TransactionRepository {
	return &TransactionRepository{db: db}
}

func (r *TransactionRepository) Create(ctx context.Context, transaction *domain.Transaction) error {
	err := r.db.QueryRowContext(ctx,
		`INSERT INTO "transaction" (amount, type, description, transaction_date, category_id)
        VALUES ($1, $2, $3, $4, $5) RETURNING id`,
		transaction.Amount, transaction.Type.String(), transaction.Description,
		transaction.TransactionDate, transaction.CategoryID,
	).Scan(&transaction.ID)
	if err != nil {
		if isForeignKeyViolation(err) {
			return financeErrors.ErrUnknownCategory
		}
		return fmt.Errorf("could not create transaction: %w", err)
	}
	return nil
}

func (r *TransactionRepository) FindAll(ctx context.Context) ([]domain.Transaction, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT `+transactionColumns+` FROM "transaction" ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("could not list transactions: %w", err)
	}
	defer rows.Close()

	transactions := []domain.Transaction{}
	for rows.Next() {
		transaction, err := scanTransaction(rows)
		if err != nil {
			return nil, err
		}
		transactions = append(transactions, *transaction)
	}
	return transactions, rows.Err()
}

func (r *TransactionRepository) FindByID(ctx context.Context, transactionID int64) (*domain.Transaction, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+transactionColumns+` FROM "transaction" WHERE id = $1`, transactionID)
	transaction, err := scanTransaction(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, financeErrors.ErrTransactionNotFound
		}
		return nil, fmt.Errorf("could not find transaction: %w", err)
	}
	return transaction, nil
}

func (r *TransactionRepository) Update(ctx context.Context, transaction *domain.Transaction) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE "transaction"
        SET amount = $1, type = $2, description = $3, transaction_date = $4, category_id = $5
        WHERE id = $6`,
		transaction.Amount, transaction.Type.String(), transaction.Description,
		transaction.TransactionDate, transaction.CategoryID, transaction.ID,
	)
	if err != nil {
		if isForeignKeyViolation(err) {
			return financeErrors.ErrUnknownNewCategory
		}
		return fmt.Errorf("could not update transaction: %w", err)
	}
	return expectAffected(res, financeErrors.ErrTransactionNotFound)
}

func (r *TransactionRepository) Delete(ctx context.Context, transactionID int64) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM "transaction" WHERE id = $1`, transactionID)
	if err != nil {
		return fmt.Errorf("could not delete transaction: %w", err)
	}
	return expectAffected(res, financeErrors.ErrTransactionNotFound)
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanTransaction(row rowScanner) (*domain.Transaction, error) {
	var transaction domain.Transaction
	if err := row.Scan(&transaction.ID, &transaction.Amount, &transaction.Type, &transaction.Description,
		&transaction.TransactionDate, &transaction.CategoryID); err != nil {
		return nil, err
	}
	transaction.TransactionDate = transaction.TransactionDate.UTC()
	return &transaction, nil
}
