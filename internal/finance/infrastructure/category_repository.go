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

type CategoryRepository struct {
	db database.Querier
}

func NewCategoryRepository(db database.Querier) *CategoryRepository {
	return &CategoryRepository{db: db}
}

func (r *CategoryRepository) Create(ctx context.Context, category *domain.Category) error {
	query := `INSERT INTO category (name) VALUES ($1) RETURNING id`
	err := r.db.QueryRowContext(ctx, query, category.Name).Scan(&category.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return financeErrors.ErrCategoryNameTaken
		}
		return fmt.Errorf("could not create category: %w", err)
	}
	return nil
}

func (r *CategoryRepository) FindAll(ctx context.Context) ([]domain.Category, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT id, name FROM category ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("could not list categories: %w", err)
	}
	defer rows.Close()

	categories := []domain.Category{}
	for rows.Next() {
		var category domain.Category
		if err := rows.Scan(&category.ID, &category.Name); err != nil {
			return nil, err
		}
		categories = append(categories, category)
	}
	return categories, rows.Err()
}

func (r *CategoryRepository) FindByID(ctx context.Context, categoryID int64) (*domain.Category, error) {
	var category domain.Category
	err := r.db.QueryRowContext(ctx, `SELECT id, name FROM category WHERE id = $1`, categoryID).
		Scan(&category.ID, &category.Name)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, financeErrors.ErrCategoryNotFound
		}
		return nil, fmt.Errorf("could not find category: %w", err)
	}
	return &category, nil
}

func (r *CategoryRepository) Update(ctx context.Context, category *domain.Category) error {
	res, err := r.db.ExecContext(ctx, `UPDATE category SET name = $1 WHERE id = $2`, category.Name, category.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return financeErrors.ErrCategoryNameTaken
		}
		return fmt.Errorf("could not update category: %w", err)
	}
	return expectAffected(res, financeErrors.ErrCategoryNotFound)
}

func (r *CategoryRepository) Delete(ctx context.Context, categoryID int64) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM category WHERE id = $1`, categoryID)
	if err != nil {
		if isForeignKeyViolation(err) {
			return financeErrors.ErrCategoryInUse
		}
		return fmt.Errorf("could not delete category: %w", err)
	}
	return expectAffected(res, financeErrors.ErrCategoryNotFound)
}

func (r *CategoryRepository) ExistsByName(ctx context.Context, name string, excludingID *int64) (bool, error) {
	query := "SELECT EXISTS(SELECT 1 FROM category WHERE name = $1)"
	args := []any{name}
	if excludingID != nil {
		query = "SELECT EXISTS(SELECT 1 FROM category WHERE name = $1 AND id <> $2)"
		args = append(args, *excludingID)
	}

	var exists bool
	if err := r.db.QueryRowContext(ctx, query, args...).Scan(&exists); err != nil {
		return false, fmt.Errorf("could not check category name: %w", err)
	}
	return exists, nil
}

func (r *CategoryRepository) ExistsByID(ctx context.Context, categoryID int64) (bool, error) {
	var exists bool
	query := "SELECT EXISTS(SELECT 1 FROM category WHERE id = $1)"
	if err := r.db.QueryRowContext(ctx, query, categoryID).Scan(&exists); err != nil {
		return false, fmt.Errorf("could not check category: %w", err)
	}
	return exists, nil
}

func (r *CategoryRepository) HasTransactions(ctx context.Context, categoryID int64) (bool, error) {
	var exists bool
	query := `SELECT EXISTS(SELECT 1 FROM "transaction" WHERE category_id = $1)`
	if err := r.db.QueryRowContext(ctx, query, categoryID).Scan(&exists); err != nil {
		return false, fmt.Errorf("could not check category usage: %w", err)
	}
	return exists, nil
}

func expectAffected(res sql.Result, notFound error) error {
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return notFound
	}
	return nil
}
