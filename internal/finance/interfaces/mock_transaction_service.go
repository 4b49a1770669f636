package interfaces

import (
	"context"
	"time"

	"github.com/sebuszqo/FinanceTracker/internal/finance/domain"
)

var mockNow = time.Date(2024, time.May, 1, 9, 0, 0, 0, time.UTC)

type MockTransactionService struct {
	transactions []domain.Transaction
	err          error

	lastInput domain.TransactionInput
	updatedID int64
	deletedID int64
	calls     int
}

func (m *MockTransactionService) toTransaction(id int64, input domain.TransactionInput) *domain.Transaction {
	date := mockNow
	if input.TransactionDate != nil {
		date = *input.TransactionDate
	}
	return &domain.Transaction{
		ID:              id,
		Amount:          input.Amount,
		Type:            input.Type,
		Description:     input.Description,
		TransactionDate: date,
		CategoryID:      input.CategoryID,
	}
}

func (m *MockTransactionService) CreateTransaction(_ context.Context, input domain.TransactionInput) (*domain.Transaction, error) {
	m.calls++
	m.lastInput = input
	if m.err != nil {
		return nil, m.err
	}
	return m.toTransaction(int64(len(m.transactions)+1), input), nil
}

func (m *MockTransactionService) GetAllTransactions(_ context.Context) ([]domain.Transaction, error) {
	m.calls++
	if m.err != nil {
		return nil, m.err
	}
	return m.transactions, nil
}

func (m *MockTransactionService) UpdateTransaction(_ context.Context, transactionID int64, input domain.TransactionInput) (*domain.Transaction, error) {
	m.calls++
	m.updatedID = transactionID
	m.lastInput = input
	if m.err != nil {
		return nil, m.err
	}
	return m.toTransaction(transactionID, input), nil
}

func (m *MockTransactionService) DeleteTransaction(_ context.Context, transactionID int64) error {
	m.calls++
	m.deletedID = transactionID
	return m.err
}
