package application

import (
	"context"
	"time"

	"github.com/sebuszqo/FinanceTracker/internal/finance/domain"
	financeErrors "github.com/sebuszqo/FinanceTracker/internal/finance/errors"
)

// Clock supplies the default transaction_date.
type Clock func() time.Time

func SystemClock() time.Time {
	return time.Now().UTC()
}

type TransactionService struct {
	uow   domain.UnitOfWork
	clock Clock
}

func NewTransactionService(uow domain.UnitOfWork, clock Clock) *TransactionService {
	if clock == nil {
		clock = SystemClock
	}
	return &TransactionService{uow: uow, clock: clock}
}

func (s *TransactionService) transactionDate(input domain.TransactionInput) time.Time {
	if input.TransactionDate != nil {
		return input.TransactionDate.UTC()
	}
	return s.clock().UTC()
}

func (s *TransactionService) CreateTransaction(ctx context.Context, input domain.TransactionInput) (*domain.Transaction, error) {
	if _, err := domain.ParseTransactionType(input.Type.String()); err != nil {
		return nil, err
	}

	transaction := &domain.Transaction{
		Amount:          input.Amount,
		Type:            input.Type,
		Description:     input.Description,
		TransactionDate: s.transactionDate(input),
		CategoryID:      input.CategoryID,
	}

	err := s.uow.Do(ctx, func(repos domain.Repositories) error {
		exists, err := categoryExists(ctx, repos.Categories, input.CategoryID)
		if err != nil {
			return err
		}
		if !exists {
			return financeErrors.ErrUnknownCategory
		}
		return repos.Transactions.Create(ctx, transaction)
	})
	if err != nil {
		return nil, err
	}
	return transaction, nil
}

func (s *TransactionService) GetAllTransactions(ctx context.Context) ([]domain.Transaction, error) {
	var transactions []domain.Transaction
	err := s.uow.Do(ctx, func(repos domain.Repositories) error {
		var err error
		transactions, err = repos.Transactions.FindAll(ctx)
		return err
	})
	if err != nil {
		return nil, err
	}
	if transactions == nil {
		return []domain.Transaction{}, nil
	}
	return transactions, nil
}

// UpdateTransaction replaces every mutable field. The category reference is
// only re-checked when it changes.
func (s *TransactionService) UpdateTransaction(ctx context.Context, transactionID int64, input domain.TransactionInput) (*domain.Transaction, error) {
	if _, err := domain.ParseTransactionType(input.Type.String()); err != nil {
		return nil, err
	}

	var transaction *domain.Transaction
	err := s.uow.Do(ctx, func(repos domain.Repositories) error {
		var err error
		transaction, err = repos.Transactions.FindByID(ctx, transactionID)
		if err != nil {
			return err
		}

		if input.CategoryID != transaction.CategoryID {
			exists, err := categoryExists(ctx, repos.Categories, input.CategoryID)
			if err != nil {
				return err
			}
			if !exists {
				return financeErrors.ErrUnknownNewCategory
			}
			transaction.CategoryID = input.CategoryID
		}

		transaction.Amount = input.Amount
		transaction.Type = input.Type
		transaction.Description = input.Description
		transaction.TransactionDate = s.transactionDate(input)
		return repos.Transactions.Update(ctx, transaction)
	})
	if err != nil {
		return nil, err
	}
	return transaction, nil
}

func (s *TransactionService) DeleteTransaction(ctx context.Context, transactionID int64) error {
	return s.uow.Do(ctx, func(repos domain.Repositories) error {
		if _, err := repos.Transactions.FindByID(ctx, transactionID); err != nil {
			return err
		}
		return repos.Transactions.Delete(ctx, transactionID)
	})
}
