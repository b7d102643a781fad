package handlers

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/rogerio-castellano/storefront/internal/models"
)

type ProductValidationError struct {
	Field       string `json:"field"`
	Description string `json:"description"`
}

// parseProductForm reads p_name, p_price and p_quantity. Only presence and
// integer syntax are checked; sign and length are left to the store.
func parseProductForm(r *http.Request) (models.Product, productForm, []ProductValidationError) {
	form := productForm{
		Name:     r.PostFormValue("p_name"),
		Price:    strings.TrimSpace(r.PostFormValue("p_price")),
		Quantity: strings.TrimSpace(r.PostFormValue("p_quantity")),
	}

	errs := []ProductValidationError{}
	p := models.Product{Name: form.Name}

	if strings.TrimSpace(form.Name) == "" {
		errs = append(errs, ProductValidationError{Field: "p_name", Description: "Name is required"})
	}

	var err error
	if p.Price, err = strconv.Atoi(form.Price); err != nil {
		errs = append(errs, ProductValidationError{Field: "p_price", Description: "Price must be a whole number"})
	}
	if p.Quantity, err = strconv.Atoi(form.Quantity); err != nil {
		errs = append(errs, ProductValidationError{Field: "p_quantity", Description: "Quantity must be a whole number"})
	}

	return p, form, errs
}

func validateProduct(p ProductRequest) []ProductValidationError {
	errs := []ProductValidationError{}
	if strings.TrimSpace(p.Name) == "" {
		errs = append(errs, ProductValidationError{Field: "Name", Description: "Name is required"})
	}
	if p.Price == nil {
		errs = append(errs, ProductValidationError{Field: "Price", Description: "Price is required"})
	}
	if p.Quantity == nil {
		errs = append(errs, ProductValidationError{Field: "Quantity", Description: "Quantity is required"})
	}
	return errs
}
