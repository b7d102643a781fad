package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/gocarina/gocsv"
	models "github.com/rogerio-castellano/storefront/internal/models"
)

// csvRow keeps every column as text so one bad cell fails its row only.
type csvRow struct {
	Name     string `csv:"p_name"`
	Price    string `csv:"p_price"`
	Quantity string `csv:"p_quantity"`
}

func (r csvRow) product() (models.Product, error) {
	if strings.TrimSpace(r.Name) == "" {
		return models.Product{}, errors.New("missing name")
	}
	price, err := strconv.Atoi(strings.TrimSpace(r.Price))
	if err != nil {
		return models.Product{}, errors.New("invalid price")
	}
	quantity, err := strconv.Atoi(strings.TrimSpace(r.Quantity))
	if err != nil {
		return models.Product{}, errors.New("invalid quantity")
	}
	return models.Product{Name: r.Name, Price: price, Quantity: quantity}, nil
}

// ImportProductsHandler godoc
// @Summary Import products via CSV
// @Description Columns p_name, p_price, p_quantity. Each valid row creates one product.
// @Tags products
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "CSV file"
// @Success 200 {object} ImportProductsResult
// @Failure 400 {string} string "Invalid file"
// @Router /api/products/import [post]
func (s *Server) ImportProductsHandler(w http.ResponseWriter, r *http.Request) {
	file, _, err := r.FormFile("file")
	if err != nil {
		http.Error(w, "missing file", http.StatusBadRequest)
		return
	}
	defer file.Close()

	var rows []csvRow
	if err := gocsv.Unmarshal(file, &rows); err != nil {
		http.Error(w, fmt.Sprintf("invalid CSV: %v", err), http.StatusBadRequest)
		return
	}

	result := ImportProductsResult{Errors: []ProductValidationError{}}
	for i, row := range rows {
		rowNum := i + 2 // header is row 1

		product, err := row.product()
		if err != nil {
			result.Errors = append(result.Errors, ProductValidationError{Description: fmt.Sprintf("row %d: %v", rowNum, err)})
			continue
		}

		if _, err := s.productRepo.Create(r.Context(), product); err != nil {
			result.Errors = append(result.Errors, ProductValidationError{Description: fmt.Sprintf("row %d: %v", rowNum, err)})
			continue
		}
		result.ImportedProductsCount++
	}

	writeJSON(w, http.StatusOK, result)
}
