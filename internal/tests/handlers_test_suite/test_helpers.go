package handlers_test_suite

import (
	"bytes"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"sync"

	api "github.com/rogerio-castellano/storefront/internal/http"
	handler "github.com/rogerio-castellano/storefront/internal/http/handlers"
	"github.com/rogerio-castellano/storefront/internal/payment"
	"github.com/rogerio-castellano/storefront/internal/predict"
	"github.com/rogerio-castellano/storefront/internal/repo"
)

const (
	keyID     = "rzp_test_key"
	keySecret = "test_secret"
)

// intercept -10, coefficients 0.1, 5, 2.5: 1000 sqft, 2 bhk, 2 bath gives 105.
const testModel = `{"features":["total_sqft","bhk","bath"],"intercept":-10,"coefficients":[0.1,5,2.5]}`

var (
	productRepo *repo.InMemoryProductRepository
	orders      *fakeOrders
	model       *predict.LinearModel
)

func init() {
	productRepo = repo.NewInMemoryProductRepository()
	orders = &fakeOrders{}

	var err error
	model, err = predict.ParseModel([]byte(testModel))
	if err != nil {
		panic(fmt.Sprintf("error parsing test model: %v", err))
	}
}

// fakeOrders stands in for the Razorpay order resource.
type fakeOrders struct {
	mu   sync.Mutex
	last map[string]interface{}
	err  error
}

func (f *fakeOrders) Create(data map[string]interface{}, _ map[string]string) (map[string]interface{}, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.last = data
	if f.err != nil {
		return nil, f.err
	}
	return map[string]interface{}{"id": "order_test123", "amount": data["amount"], "currency": data["currency"]}, nil
}

func (f *fakeOrders) lastRequest() map[string]interface{} {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.last
}

func clearAllProducts() {
	productRepo.Clear()
}

func newRouter() http.Handler {
	return newRouterWith(payment.NewGateway(orders, keySecret), api.Options{Catalog: true, Prediction: true})
}

func newCheckoutRouter() http.Handler {
	s := handler.NewServer(handler.Deps{
		Gateway:       payment.NewGateway(orders, keySecret),
		RazorpayKeyID: keyID,
	})
	return api.NewRouter(s, api.Options{})
}

func newRouterWith(gateway payment.Gateway, opts api.Options) http.Handler {
	s := handler.NewServer(handler.Deps{
		Products:      productRepo,
		Predictor:     model,
		Gateway:       gateway,
		RazorpayKeyID: keyID,
	})
	return api.NewRouter(s, opts)
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

func productValues(name, price, quantity string) url.Values {
	return url.Values{"p_name": {name}, "p_price": {price}, "p_quantity": {quantity}}
}

func createProduct(r http.Handler, p handler.ProductRequest) *httptest.ResponseRecorder {
	body, _ := json.Marshal(p)
	req := httptest.NewRequest(http.MethodPost, "/api/products", bytes.NewReader(body))
	return serve(r, req)
}

func postJSON(r http.Handler, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	return serve(r, req)
}

func multipartCSV(csvContent string, filename string) (*bytes.Buffer, string) {
	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)

	part, _ := writer.CreateFormFile("file", filename)
	part.Write([]byte(csvContent))

	writer.Close()
	return &buf, writer.FormDataContentType()
}

func signature(orderID, paymentID string) string {
	mac := hmac.New(sha256.New, []byte(keySecret))
	mac.Write([]byte(orderID + "|" + paymentID))
	return hex.EncodeToString(mac.Sum(nil))
}

func intPtr(v int) *int {
	return &v
}
