package models

// MaxProductNameLength is the width of the p_name column.
const MaxProductNameLength = 100

// Product represents a catalog entry in the storefront.
type Product struct {
	ID       int    `json:"id" db:"id"`
	Name     string `json:"name" db:"p_name"`
	Price    int    `json:"price" db:"p_price"`
	Quantity int    `json:"quantity" db:"p_quantity"`
}
