package handlers_test_suite

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	handler "github.com/rogerio-castellano/storefront/internal/http/handlers"
)

func importCSV(r http.Handler, csvData string) *httptest.ResponseRecorder {
	buf, contentType := multipartCSV(csvData, "products.csv")
	req := httptest.NewRequest(http.MethodPost, "/api/products/import", buf)
	req.Header.Set("Content-Type", contentType)
	return serve(r, req)
}

func TestImportProductsHandler(t *testing.T) {
	r := newRouter()

	t.Run("File with valid products", func(t *testing.T) {
		t.Cleanup(clearAllProducts)
		csvData := `p_name,p_price,p_quantity
Mouse,25,10
Keyboard,45,5`

		w := importCSV(r, csvData)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200 OK, got %d", w.Code)
		}

		var resp handler.ImportProductsResult
		if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
			t.Fatalf("failed to decode response: %v", err)
		}

		if resp.ImportedProductsCount != 2 {
			t.Errorf("expected 2 imported products, got %d", resp.ImportedProductsCount)
		}
		if len(resp.Errors) != 0 {
			t.Errorf("expected no errors, got %v", resp.Errors)
		}

		products, _ := productRepo.GetAll(context.Background())
		if len(products) != 2 {
			t.Errorf("expected 2 stored products, got %d", len(products))
		}
	})

	t.Run("File with one invalid product", func(t *testing.T) {
		t.Cleanup(clearAllProducts)
		csvData := `p_name,p_price,p_quantity
Mouse,25,10
Broken,abc,3
Keyboard,45,5`

		w := importCSV(r, csvData)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200 OK, got %d", w.Code)
		}

		var resp handler.ImportProductsResult
		if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
			t.Fatalf("failed to decode response: %v", err)
		}

		if resp.ImportedProductsCount != 2 {
			t.Errorf("expected 2 imported products, got %d", resp.ImportedProductsCount)
		}
		if len(resp.Errors) != 1 {
			t.Fatalf("expected 1 error, got %d", len(resp.Errors))
		}
		if !strings.Contains(resp.Errors[0].Description, "row 3") {
			t.Errorf("expected error on row 3, got %q", resp.Errors[0].Description)
		}
	})

	t.Run("Missing file", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/api/products/import", nil)
		w := serve(r, req)
		if w.Code != http.StatusBadRequest {
			t.Errorf("expected 400 Bad Request, got %d", w.Code)
		}
	})
}
