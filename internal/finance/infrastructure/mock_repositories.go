package infrastructure

import (
	"context"
	"sort"
	"sync"

	"github.com/sebuszqo/FinanceTracker/internal/finance/domain"
	financeErrors "github.com/sebuszqo/FinanceTracker/internal/finance/errors"
)

// MockUnitOfWork keeps categories and transactions in memory. Do snapshots the
// state and restores it when fn fails, so a failed unit leaves nothing behind.
// Units are serialised.
type MockUnitOfWork struct {
	mu           sync.Mutex
	categories   map[int64]domain.Category
	transactions map[int64]domain.Transaction
	nextCategory int64
	nextTx       int64

	// FailWith, when set, is returned by every repository call.
	FailWith error
	// Calls counts Do invocations.
	Calls int
}

func NewMockUnitOfWork() *MockUnitOfWork {
	return &MockUnitOfWork{
		categories:   map[int64]domain.Category{},
		transactions: map[int64]domain.Transaction{},
	}
}

func (m *MockUnitOfWork) Do(_ context.Context, fn func(repos domain.Repositories) error) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Calls++

	categories := make(map[int64]domain.Category, len(m.categories))
	for k, v := range m.categories {
		categories[k] = v
	}
	transactions := make(map[int64]domain.Transaction, len(m.transactions))
	for k, v := range m.transactions {
		transactions[k] = v
	}
	nextCategory, nextTx := m.nextCategory, m.nextTx

	err := fn(domain.Repositories{
		Categories:   &mockCategoryRepository{uow: m},
		Transactions: &mockTransactionRepository{uow: m},
	})
	if err != nil {
		m.categories, m.transactions = categories, transactions
		m.nextCategory, m.nextTx = nextCategory, nextTx
	}
	return err
}

// Categories returns a copy of the stored categories ordered by id.
func (m *MockUnitOfWork) Categories() []domain.Category {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]domain.Category, 0, len(m.categories))
	for _, c := range m.categories {
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// Transactions returns a copy of the stored transactions ordered by id.
func (m *MockUnitOfWork) Transactions() []domain.Transaction {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.sortedTransactions()
}

func (m *MockUnitOfWork) sortedTransactions() []domain.Transaction {
	out := make([]domain.Transaction, 0, len(m.transactions))
	for _, t := range m.transactions {
		out = append(out, t)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

type mockCategoryRepository struct {
	uow *MockUnitOfWork
}

func (r *mockCategoryRepository) Create(_ context.Context, category *domain.Category) error {
	if r.uow.FailWith != nil {
		return r.uow.FailWith
	}
	for _, c := range r.uow.categories {
		if c.Name == category.Name {
			return financeErrors.ErrCategoryNameTaken
		}
	}
	r.uow.nextCategory++
	category.ID = r.uow.nextCategory
	r.uow.categories[category.ID] = *category
	return nil
}

func (r *mockCategoryRepository) FindAll(_ context.Context) ([]domain.Category, error) {
	if r.uow.FailWith != nil {
		return nil, r.uow.FailWith
	}
	out := make([]domain.Category, 0, len(r.uow.categories))
	for _, c := range r.uow.categories {
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *mockCategoryRepository) FindByID(_ context.Context, categoryID int64) (*domain.Category, error) {
	if r.uow.FailWith != nil {
		return nil, r.uow.FailWith
	}
	c, ok := r.uow.categories[categoryID]
	if !ok {
		return nil, financeErrors.ErrCategoryNotFound
	}
	return &c, nil
}

func (r *mockCategoryRepository) Update(_ context.Context, category *domain.Category) error {
	if r.uow.FailWith != nil {
		return r.uow.FailWith
	}
	if _, ok := r.uow.categories[category.ID]; !ok {
		return financeErrors.ErrCategoryNotFound
	}
	for id, c := range r.uow.categories {
		if id != category.ID && c.Name == category.Name {
			return financeErrors.ErrCategoryNameTaken
		}
	}
	r.uow.categories[category.ID] = *category
	return nil
}

func (r *mockCategoryRepository) Delete(_ context.Context, categoryID int64) error {
	if r.uow.FailWith != nil {
		return r.uow.FailWith
	}
	if _, ok := r.uow.categories[categoryID]; !ok {
		return financeErrors.ErrCategoryNotFound
	}
	for _, t := range r.uow.transactions {
		if t.CategoryID == categoryID {
			return financeErrors.ErrCategoryInUse
		}
	}
	delete(r.uow.categories, categoryID)
	return nil
}

func (r *mockCategoryRepository) ExistsByName(_ context.Context, name string, excludingID *int64) (bool, error) {
	if r.uow.FailWith != nil {
		return false, r.uow.FailWith
	}
	for id, c := range r.uow.categories {
		if excludingID != nil && id == *excludingID {
			continue
		}
		if c.Name == name {
			return true, nil
		}
	}
	return false, nil
}

func (r *mockCategoryRepository) ExistsByID(_ context.Context, categoryID int64) (bool, error) {
	if r.uow.FailWith != nil {
		return false, r.uow.FailWith
	}
	_, ok := r.uow.categories[categoryID]
	return ok, nil
}

func (r *mockCategoryRepository) HasTransactions(_ context.Context, categoryID int64) (bool, error) {
	if r.uow.FailWith != nil {
		return false, r.uow.FailWith
	}
	for _, t := range r.uow.transactions {
		if t.CategoryID == categoryID {
			return true, nil
		}
	}
	return false, nil
}

type mockTransactionRepository struct {
	uow *MockUnitOfWork
}

func (r *mockTransactionRepository) Create(_ context.Context, transaction *domain.Transaction) error {
	if r.uow.FailWith != nil {
		return r.uow.FailWith
	}
	if _, ok := r.uow.categories[transaction.CategoryID]; !ok {
		return financeErrors.ErrUnknownCategory
	}
	r.uow.nextTx++
	transaction.ID = r.uow.nextTx
	r.uow.transactions[transaction.ID] = *transaction
	return nil
}

func (r *mockTransactionRepository) FindAll(_ context.Context) ([]domain.Transaction, error) {
	if r.uow.FailWith != nil {
		return nil, r.uow.FailWith
	}
	return r.uow.sortedTransactions(), nil
}

func (r *mockTransactionRepository) FindByID(_ context.Context, transactionID int64) (*domain.Transaction, error) {
	if r.uow.FailWith != nil {
		return nil, r.uow.FailWith
	}
	t, ok := r.uow.transactions[transactionID]
	if !ok {
		return nil, financeErrors.ErrTransactionNotFound
	}
	return &t, nil
}

func (r *mockTransactionRepository) Update(_ context.Context, transaction *domain.Transaction) error {
	if r.uow.FailWith != nil {
		return r.uow.FailWith
	}
	if _, ok := r.uow.transactions[transaction.ID]; !ok {
		return financeErrors.ErrTransactionNotFound
	}
	if _, ok := r.uow.categories[transaction.CategoryID]; !ok {
		return financeErrors.ErrUnknownNewCategory
	}
	r.uow.transactions[transaction.ID] = *transaction
	return nil
}

func (r *mockTransactionRepository) Delete(_ context.Context, transactionID int64) error {
	if r.uow.FailWith != nil {
		return r.uow.FailWith
	}
	if _, ok := r.uow.transactions[transactionID]; !ok {
		return financeErrors.ErrTransactionNotFound
	}
	delete(r.uow.transactions, transactionID)
	return nil
}
