package domain

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/sebuszqo/FinanceTracker/internal/finance/errors"
)

type TransactionType string

const (
	TransactionTypeIncome  TransactionType = "income"
	TransactionTypeExpense TransactionType = "expense"
)

// ParseTransactionType accepts exactly "income" or "expense".
func ParseTransactionType(s string) (TransactionType, error) {
	switch TransactionType(s) {
	case TransactionTypeIncome, TransactionTypeExpense:
		return TransactionType(s), nil
	default:
		return "", errors.NewValidationError("Type must be 'income' or 'expense'")
	}
}

func (t TransactionType) String() string {
	return string(t)
}

func (t *TransactionType) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return errors.NewValidationError("Type must be 'income' or 'expense'")
	}
	parsed, err := ParseTransactionType(s)
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}

// Scan reads the column value written by the repositories.
func (t *TransactionType) Scan(src any) error {
	var s string
	switch v := src.(type) {
	case string:
		s = v
	case []byte:
		s = string(v)
	default:
		return fmt.Errorf("cannot scan %T into TransactionType", src)
	}
	parsed, err := ParseTransactionType(s)
	if err != nil {
		return fmt.Errorf("stored transaction type %q: %w", s, err)
	}
	*t = parsed
	return nil
}

type Transaction struct {
	ID              int64           `json:"id"`
	Amount          float64         `json:"amount"`
	Type            TransactionType `json:"type"`
	Description     *string         `json:"description"`
	TransactionDate time.Time       `json:"transaction_date"`
	CategoryID      int64           `json:"category_id"`
}

// TransactionInput carries the client-supplied fields of a create or a full update.
// A nil TransactionDate is filled from the service clock.
type TransactionInput struct {
	Amount          float64
	Type            TransactionType
	Description     *string
	CategoryID      int64
	TransactionDate *time.Time
}

type TransactionRepository interface {
	Create(ctx context.Context, transaction *Transaction) error
	FindAll(ctx context.Context) ([]Transaction, error)
	FindByID(ctx context.Context, transactionID int64) (*Transaction, error)
	Update(ctx context.Context, transaction *Transaction) error
	Delete(ctx context.Context, transactionID int64) error
}
