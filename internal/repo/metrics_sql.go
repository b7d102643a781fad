package repo

import (
	"context"

	"github.com/jmoiron/sqlx"
)

type SQLMetricsRepository struct {
	db *sqlx.DB
}

func NewSQLMetricsRepository(db *sqlx.DB) *SQLMetricsRepository {
	return &SQLMetricsRepository{db: db}
}

func (r *SQLMetricsRepository) GetCatalogMetrics(ctx context.Context) (CatalogMetrics, error) {
	const query = `
		SELECT
			COUNT(*) AS total_products,
			COALESCE(SUM(p_quantity), 0) AS total_units,
			COALESCE(SUM(CAST(p_price AS BIGINT) * p_quantity), 0) AS stock_value,
			COUNT(CASE WHEN p_quantity <= 0 THEN 1 END) AS out_of_stock_count
		FROM product`

	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	var m CatalogMetrics
	err := r.db.GetContext(ctx, &m, query)
	return m, err
}
