package repo

import "context"

// InMemoryMetricsRepository computes metrics by scanning a product repository.
type InMemoryMetricsRepository struct {
	productRepo ProductRepository
}

func NewInMemoryMetricsRepository(productRepo ProductRepository) *InMemoryMetricsRepository {
	return &InMemoryMetricsRepository{productRepo: productRepo}
}

func (i *InMemoryMetricsRepository) GetCatalogMetrics(ctx context.Context) (CatalogMetrics, error) {
	var m CatalogMetrics

	products, err := i.productRepo.GetAll(ctx)
	if err != nil {
		return m, err
	}

	m.TotalProducts = len(products)
	for _, p := range products {
		m.TotalUnits += p.Quantity
		m.StockValue += int64(p.Price) * int64(p.Quantity)
		if p.Quantity <= 0 {
			m.OutOfStockCount++
		}
	}
	return m, nil
}
