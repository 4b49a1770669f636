package application

import (
	"context"
	"strings"

	"github.com/sebuszqo/FinanceTracker/internal/finance/domain"
	financeErrors "github.com/sebuszqo/FinanceTracker/internal/finance/errors"
)

type CategoryService struct {
	uow domain.UnitOfWork
}

func NewCategoryService(uow domain.UnitOfWork) *CategoryService {
	return &CategoryService{uow: uow}
}

func validateCategoryName(name string) error {
	if strings.TrimSpace(name) == "" {
		return financeErrors.NewValidationError("Category name must not be empty")
	}
	return nil
}

func (s *CategoryService) CreateCategory(ctx context.Context, name string) (*domain.Category, error) {
	if err := validateCategoryName(name); err != nil {
		return nil, err
	}

	category := &domain.Category{Name: name}
	err := s.uow.Do(ctx, func(repos domain.Repositories) error {
		exists, err := categoryNameExists(ctx, repos.Categories, name, nil)
		if err != nil {
			return err
		}
		if exists {
			return financeErrors.ErrCategoryNameTaken
		}
		return repos.Categories.Create(ctx, category)
	})
	if err != nil {
		return nil, err
	}
	return category, nil
}

func (s *CategoryService) GetAllCategories(ctx context.Context) ([]domain.Category, error) {
	var categories []domain.Category
	err := s.uow.Do(ctx, func(repos domain.Repositories) error {
		var err error
		categories, err = repos.Categories.FindAll(ctx)
		return err
	})
	if err != nil {
		return nil, err
	}
	if categories == nil {
		return []domain.Category{}, nil
	}
	return categories, nil
}

func (s *CategoryService) UpdateCategory(ctx context.Context, categoryID int64, name string) (*domain.Category, error) {
	if err := validateCategoryName(name); err != nil {
		return nil, err
	}

	var category *domain.Category
	err := s.uow.Do(ctx, func(repos domain.Repositories) error {
		var err error
		category, err = repos.Categories.FindByID(ctx, categoryID)
		if err != nil {
			return err
		}

		if name != category.Name {
			exists, err := categoryNameExists(ctx, repos.Categories, name, &categoryID)
			if err != nil {
				return err
			}
			if exists {
				return financeErrors.ErrCategoryNameTaken
			}
		}

		category.Name = name
		return repos.Categories.Update(ctx, category)
	})
	if err != nil {
		return nil, err
	}
	return category, nil
}

// DeleteCategory refuses to delete a category that transactions still reference.
func (s *CategoryService) DeleteCategory(ctx context.Context, categoryID int64) error {
	return s.uow.Do(ctx, func(repos domain.Repositories) error {
		if _, err := repos.Categories.FindByID(ctx, categoryID); err != nil {
			return err
		}

		inUse, err := repos.Categories.HasTransactions(ctx, categoryID)
		if err != nil {
			return err
		}
		if inUse {
			return financeErrors.ErrCategoryInUse
		}
		return repos.Categories.Delete(ctx, categoryID)
	})
}
