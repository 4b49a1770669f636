package application

import (
	"context"

	"github.com/sebuszqo/FinanceTracker/internal/finance/domain"
)

// categoryNameExists reports whether another category already uses name.
// Pass the id of the category being renamed as excludingID on the update path.
func categoryNameExists(ctx context.Context, repo domain.CategoryRepository, name string, excludingID *int64) (bool, error) {
	return repo.ExistsByName(ctx, name, excludingID)
}

func categoryExists(ctx context.Context, repo domain.CategoryRepository, categoryID int64) (bool, error) {
	return repo.ExistsByID(ctx, categoryID)
}
