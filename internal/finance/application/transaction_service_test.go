package application

import (
	"context"
	"testing"
	"time"

	"github.com/sebuszqo/FinanceTracker/internal/finance/domain"
	financeErrors "github.com/sebuszqo/FinanceTracker/internal/finance/errors"
	"github.com/sebuszqo/FinanceTracker/internal/finance/infrastructure"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var fixedNow = time.Date(2024, time.May, 1, 9, 0, 0, 0, time.UTC)

func fixedClock() time.Time {
	return fixedNow
}

func strPtr(s string) *string {
	return &s
}

// newServices seeds the given category names and returns both services over one store.
func newServices(t *testing.T, names ...string) (*infrastructure.MockUnitOfWork, *TransactionService, []domain.Category) {
	t.Helper()
	uow := infrastructure.NewMockUnitOfWork()
	categoryService := NewCategoryService(uow)

	var categories []domain.Category
	for _, name := range names {
		c, err := categoryService.CreateCategory(context.Background(), name)
		require.NoError(t, err)
		categories = append(categories, *c)
	}
	return uow, NewTransactionService(uow, fixedClock), categories
}

func TestCreateTransaction_DefaultsDateToClock(t *testing.T) {
	uow, service, categories := newServices(t, "Groceries")

	transaction, err := service.CreateTransaction(context.Background(), domain.TransactionInput{
		Amount:     42.5,
		Type:       domain.TransactionTypeExpense,
		CategoryID: categories[0].ID,
	})
	require.NoError(t, err)

	expected := domain.Transaction{
		ID:              1,
		Amount:          42.5,
		Type:            domain.TransactionTypeExpense,
		TransactionDate: fixedNow,
		CategoryID:      categories[0].ID,
	}
	assert.Equal(t, expected, *transaction)
	assert.Equal(t, []domain.Transaction{expected}, uow.Transactions())
}

func TestCreateTransaction_KeepsClientDate(t *testing.T) {
	_, service, categories := newServices(t, "Salary")
	date := time.Date(2023, time.December, 24, 18, 0, 0, 0, time.FixedZone("CET", 3600))

	transaction, err := service.CreateTransaction(context.Background(), domain.TransactionInput{
		Amount:          3000,
		Type:            domain.TransactionTypeIncome,
		Description:     strPtr("December salary"),
		CategoryID:      categories[0].ID,
		TransactionDate: &date,
	})
	require.NoError(t, err)

	assert.True(t, date.Equal(transaction.TransactionDate))
	assert.Equal(t, time.UTC, transaction.TransactionDate.Location())
	assert.Equal(t, "December salary", *transaction.Description)
}

func TestCreateTransaction_UnknownCategory(t *testing.T) {
	uow, service, _ := newServices(t)

	_, err := service.CreateTransaction(context.Background(), domain.TransactionInput{
		Amount: 10, Type: domain.TransactionTypeExpense, CategoryID: 7,
	})
	assert.ErrorIs(t, err, financeErrors.ErrUnknownCategory)
	assert.True(t, financeErrors.IsReferenceError(err))
	assert.Empty(t, uow.Transactions())
}

func TestCreateTransaction_InvalidType(t *testing.T) {
	uow, service, categories := newServices(t, "Groceries")

	_, err := service.CreateTransaction(context.Background(), domain.TransactionInput{
		Amount: 10, Type: domain.TransactionType("gift"), CategoryID: categories[0].ID,
	})
	assert.True(t, financeErrors.IsValidationError(err))
	assert.Empty(t, uow.Transactions())
}

func TestCreateTransaction_NegativeAmountAllowed(t *testing.T) {
	_, service, categories := newServices(t, "Refunds")

	transaction, err := service.CreateTransaction(context.Background(), domain.TransactionInput{
		Amount: -15.25, Type: domain.TransactionTypeExpense, CategoryID: categories[0].ID,
	})
	require.NoError(t, err)
	assert.Equal(t, -15.25, transaction.Amount)
}

func TestGetAllTransactions_RoundTrip(t *testing.T) {
	_, service, categories := newServices(t, "Groceries", "Salary")
	ctx := context.Background()

	inputs := []domain.TransactionInput{
		{Amount: 12.3, Type: domain.TransactionTypeExpense, Description: strPtr("milk"), CategoryID: categories[0].ID},
		{Amount: 2500, Type: domain.TransactionTypeIncome, CategoryID: categories[1].ID},
	}
	for _, in := range inputs {
		_, err := service.CreateTransaction(ctx, in)
		require.NoError(t, err)
	}

	transactions, err := service.GetAllTransactions(ctx)
	require.NoError(t, err)
	require.Len(t, transactions, 2)
	for i, in := range inputs {
		assert.Equal(t, int64(i+1), transactions[i].ID)
		assert.Equal(t, in.Amount, transactions[i].Amount)
		assert.Equal(t, in.Type, transactions[i].Type)
		assert.Equal(t, in.Description, transactions[i].Description)
		assert.Equal(t, in.CategoryID, transactions[i].CategoryID)
		assert.Equal(t, fixedNow, transactions[i].TransactionDate)
	}
}

func TestUpdateTransaction(t *testing.T) {
	ctx := context.Background()
	newDate := time.Date(2024, time.June, 2, 0, 0, 0, 0, time.UTC)

	t.Run("full replace", func(t *testing.T) {
		uow, service, categories := newServices(t, "Groceries", "Dining")
		created, err := service.CreateTransaction(ctx, domain.TransactionInput{
			Amount: 10, Type: domain.TransactionTypeExpense, Description: strPtr("old"), CategoryID: categories[0].ID,
		})
		require.NoError(t, err)

		updated, err := service.UpdateTransaction(ctx, created.ID, domain.TransactionInput{
			Amount: 25, Type: domain.TransactionTypeIncome, CategoryID: categories[1].ID, TransactionDate: &newDate,
		})
		require.NoError(t, err)

		expected := domain.Transaction{
			ID: created.ID, Amount: 25, Type: domain.TransactionTypeIncome,
			TransactionDate: newDate, CategoryID: categories[1].ID,
		}
		assert.Equal(t, expected, *updated)
		assert.Equal(t, []domain.Transaction{expected}, uow.Transactions())
	})

	t.Run("omitted date falls back to clock", func(t *testing.T) {
		_, service, categories := newServices(t, "Groceries")
		created, err := service.CreateTransaction(ctx, domain.TransactionInput{
			Amount: 10, Type: domain.TransactionTypeExpense, CategoryID: categories[0].ID, TransactionDate: &newDate,
		})
		require.NoError(t, err)

		updated, err := service.UpdateTransaction(ctx, created.ID, domain.TransactionInput{
			Amount: 11, Type: domain.TransactionTypeExpense, CategoryID: categories[0].ID,
		})
		require.NoError(t, err)
		assert.Equal(t, fixedNow, updated.TransactionDate)
	})

	t.Run("unknown new category keeps stored reference", func(t *testing.T) {
		uow, service, categories := newServices(t, "Groceries")
		created, err := service.CreateTransaction(ctx, domain.TransactionInput{
			Amount: 10, Type: domain.TransactionTypeExpense, CategoryID: categories[0].ID,
		})
		require.NoError(t, err)

		_, err = service.UpdateTransaction(ctx, created.ID, domain.TransactionInput{
			Amount: 99, Type: domain.TransactionTypeExpense, CategoryID: 404,
		})
		assert.ErrorIs(t, err, financeErrors.ErrUnknownNewCategory)

		stored := uow.Transactions()
		require.Len(t, stored, 1)
		assert.Equal(t, categories[0].ID, stored[0].CategoryID)
		assert.Equal(t, 10.0, stored[0].Amount)
	})

	t.Run("unknown transaction", func(t *testing.T) {
		_, service, categories := newServices(t, "Groceries")

		_, err := service.UpdateTransaction(ctx, 5, domain.TransactionInput{
			Amount: 1, Type: domain.TransactionTypeIncome, CategoryID: categories[0].ID,
		})
		assert.ErrorIs(t, err, financeErrors.ErrTransactionNotFound)
	})

	t.Run("invalid type", func(t *testing.T) {
		_, service, _ := newServices(t)

		_, err := service.UpdateTransaction(ctx, 1, domain.TransactionInput{Type: "bonus"})
		assert.True(t, financeErrors.IsValidationError(err))
	})
}

func TestDeleteTransaction(t *testing.T) {
	ctx := context.Background()
	uow, service, categories := newServices(t, "Groceries")
	created, err := service.CreateTransaction(ctx, domain.TransactionInput{
		Amount: 10, Type: domain.TransactionTypeExpense, CategoryID: categories[0].ID,
	})
	require.NoError(t, err)

	require.NoError(t, service.DeleteTransaction(ctx, created.ID))
	assert.Empty(t, uow.Transactions())

	err = service.DeleteTransaction(ctx, created.ID)
	assert.ErrorIs(t, err, financeErrors.ErrTransactionNotFound)
}
