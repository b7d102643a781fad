package handlers

// ProductRequest is the JSON body of the product API. Every field is required.
type ProductRequest struct {
	Name     string `json:"name"`
	Price    *int   `json:"price"`
	Quantity *int   `json:"quantity"`
}

type ProductResponse struct {
	Id       int    `json:"id"`
	Name     string `json:"name"`
	Price    int    `json:"price"`
	Quantity int    `json:"quantity"`
}

type OrderResponse struct {
	OrderID string `json:"order_id"`
	Amount  int64  `json:"amount"`
}

type PredictionResponse struct {
	PredictedPrice string `json:"predicted_price"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}

type checkoutPage struct {
	KeyID    string
	Amount   int64
	Currency string
}

type productForm struct {
	Action   string
	Name     string
	Price    string
	Quantity string
	Errors   []ProductValidationError
}

type ImportProductsResult struct {
	ImportedProductsCount int                      `json:"imported"`
	Errors                []ProductValidationError `json:"errors"`
}
