package domain

import "context"

type Category struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

type CategoryRepository interface {
	Create(ctx context.Context, category *Category) error
	FindAll(ctx context.Context) ([]Category, error)
	FindByID(ctx context.Context, categoryID int64) (*Category, error)
	Update(ctx context.Context, category *Category) error
	Delete(ctx context.Context, categoryID int64) error
	// ExistsByName does an exact, case-sensitive match. A category whose id
	// equals excludingID is ignored when excludingID is not nil.
	ExistsByName(ctx context.Context, name string, excludingID *int64) (bool, error)
	ExistsByID(ctx context.Context, categoryID int64) (bool, error)
	HasTransactions(ctx context.Context, categoryID int64) (bool, error)
}
