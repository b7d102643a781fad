package repo

import "context"

// CatalogMetrics summarises the product table.
type CatalogMetrics struct {
	TotalProducts   int   `json:"total_products" db:"total_products"`
	TotalUnits      int   `json:"total_units" db:"total_units"`
	StockValue      int64 `json:"stock_value" db:"stock_value"`
	OutOfStockCount int   `json:"out_of_stock_count" db:"out_of_stock_count"`
}

type MetricsRepository interface {
	GetCatalogMetrics(ctx context.Context) (CatalogMetrics, error)
}
