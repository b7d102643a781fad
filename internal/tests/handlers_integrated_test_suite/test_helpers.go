package handlers_integrated_test_suite

import (
	"bytes"
	"context"
	"fmt"
	"log"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/rogerio-castellano/storefront/internal/db"
	api "github.com/rogerio-castellano/storefront/internal/http"
	handler "github.com/rogerio-castellano/storefront/internal/http/handlers"
	"github.com/rogerio-castellano/storefront/internal/payment"
	"github.com/rogerio-castellano/storefront/internal/repo"
)

var (
	productRepo *repo.SQLProductRepository
	database    *sqlx.DB
)

// setupTestRepos connects to Postgres when DATABASE_URL is set and to a
// throwaway SQLite file in dir otherwise.
func setupTestRepos(dir string) {
	driver, dsn := db.DriverSQLite, filepath.Join(dir, "storefront_test.db")
	if dbURL := os.Getenv("DATABASE_URL"); dbURL != "" {
		driver, dsn = db.DriverPostgres, dbURL
	}

	var err error
	database, err = db.Connect(driver, dsn)
	if err != nil {
		log.Fatal("❌ Could not connect to database:", err)
	}

	productRepo = repo.NewSQLProductRepository(database)
}

type noOrders struct{}

func (noOrders) Create(map[string]interface{}, map[string]string) (map[string]interface{}, error) {
	return map[string]interface{}{"id": "order_integration"}, nil
}

func newRouter(opts api.Options) http.Handler {
	opts.Catalog = true
	s := handler.NewServer(handler.Deps{
		Products: productRepo,
		Gateway:  payment.NewGateway(noOrders{}, "secret"),
	})
	return api.NewRouter(s, opts)
}

func clearAllProducts() {
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	query := "DELETE FROM product"
	if database.DriverName() == db.DriverPostgres {
		query = "TRUNCATE TABLE product RESTART IDENTITY"
	}
	if _, err := database.ExecContext(ctx, query); err != nil {
		fmt.Println(fmt.Errorf("failed to clear product table: %w", err))
	}
}

func serve(r http.Handler, req *http.Request) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func postForm(r http.Handler, path string, values url.Values) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(values.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return serve(r, req)
}

func get(r http.Handler, path string) *httptest.ResponseRecorder {
	return serve(r, httptest.NewRequest(http.MethodGet, path, nil))
}

func multipartCSV(csvContent string, filename string) (*bytes.Buffer, string) {
	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)

	part, _ := writer.CreateFormFile("file", filename)
	part.Write([]byte(csvContent))

	writer.Close()
	return &buf, writer.FormDataContentType()
}
