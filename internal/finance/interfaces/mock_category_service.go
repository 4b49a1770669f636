package interfaces

import (
	"context"

	"github.com/sebuszqo/FinanceTracker/internal/finance/domain"
)

type MockCategoryService struct {
	categories []domain.Category
	err        error

	createdName string
	updatedID   int64
	deletedID   int64
}

func (m *MockCategoryService) CreateCategory(_ context.Context, name string) (*domain.Category, error) {
	m.createdName = name
	if m.err != nil {
		return nil, m.err
	}
	return &domain.Category{ID: int64(len(m.categories) + 1), Name: name}, nil
}

func (m *MockCategoryService) GetAllCategories(_ context.Context) ([]domain.Category, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.categories, nil
}

func (m *MockCategoryService) UpdateCategory(_ context.Context, categoryID int64, name string) (*domain.Category, error) {
	m.updatedID = categoryID
	if m.err != nil {
		return nil, m.err
	}
	return &domain.Category{ID: categoryID, Name: name}, nil
}

func (m *MockCategoryService) DeleteCategory(_ context.Context, categoryID int64) error {
	m.deletedID = categoryID
	return m.err
}
