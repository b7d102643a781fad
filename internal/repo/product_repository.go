package repo

import (
	"context"
	"errors"

	"github.com/rogerio-castellano/storefront/internal/models"
)

// ProductRepository defines the interface for product data operations.
// Every call commits on its own; there are no multi-statement transactions.
type ProductRepository interface {
	Create(ctx context.Context, product models.Product) (models.Product, error)
	GetAll(ctx context.Context) ([]models.Product, error)
	GetByID(ctx context.Context, id int) (models.Product, error)
	Update(ctx context.Context, product models.Product) (models.Product, error)
	Delete(ctx context.Context, id int) error
}

var (
	// ErrProductNotFound is returned when a product is not found in the repository.
	ErrProductNotFound = errors.New("product not found")
	// ErrNameTooLong is returned when a product name does not fit the p_name column.
	ErrNameTooLong = errors.New("product name too long")
)

func checkName(name string) error {
	if len([]rune(name)) > models.MaxProductNameLength {
		return ErrNameTooLong
	}
	return nil
}
