package http_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/rogerio-castellano/product-catalog/internal/antiforgery"
	api "github.com/rogerio-castellano/product-catalog/internal/http"
	handler "github.com/rogerio-castellano/product-catalog/internal/http/handlers"
	rl "github.com/rogerio-castellano/product-catalog/internal/http/rate_limiter"
	"github.com/rogerio-castellano/product-catalog/internal/models"
	"github.com/rogerio-castellano/product-catalog/internal/repo"
	"github.com/shopspring/decimal"
)

var (
	productRepo   *repo.InMemoryProductRepository
	referenceRepo *repo.InMemoryReferenceRepository
	protector     *antiforgery.Protector

	sessionID string
	token     string
)

const (
	beveragesID  = 1
	condimentsID = 2
	exoticID     = 1
	cajunID      = 2
)

func init() {
	setupTestRepos()

	protector = antiforgery.NewProtector([]byte("handlers-test-secret-0123"), time.Hour, false)
	sessionID = uuid.NewString()

	var err error
	token, err = protector.GenerateToken(sessionID)
	if err != nil {
		panic(fmt.Sprintf("error generating token: %v", err))
	}
}

func setupTestRepos() {
	referenceRepo = repo.NewInMemoryReferenceRepository()
	referenceRepo.AddCategory(models.Category{CategoryID: beveragesID, CategoryName: "Beverages"})
	referenceRepo.AddCategory(models.Category{CategoryID: condimentsID, CategoryName: "Condiments"})
	referenceRepo.AddSupplier(models.Supplier{SupplierID: exoticID, CompanyName: "Exotic Liquids"})
	referenceRepo.AddSupplier(models.Supplier{SupplierID: cajunID, CompanyName: "New Orleans Cajun Delights"})

	productRepo = repo.NewInMemoryProductRepository(referenceRepo)
	handler.SetProductRepo(productRepo)
	handler.SetReferenceRepo(referenceRepo)
}

func newRouter() http.Handler {
	return api.NewRouter(api.RouterConfig{
		Protector: protector,
		Limiter:   rl.NewLimiter(1000, 1000),
	})
}

func clearAllProducts() {
	productRepo.Clear()
}

// seedProducts stores Chai, Chang and Aniseed Syrup with ids 1, 2 and 3.
func seedProducts(t *testing.T) []models.Product {
	t.Helper()
	seed := []models.Product{
		{ProductName: "Chai", CategoryID: beveragesID, SupplierID: exoticID, QuantityPerUnit: "10 boxes x 20 bags", UnitPrice: decimal.RequireFromString("18.00"), UnitsInStock: 39, ReorderLevel: 10},
		{ProductName: "Chang", CategoryID: beveragesID, SupplierID: exoticID, QuantityPerUnit: "24 - 12 oz bottles", UnitPrice: decimal.RequireFromString("19.00"), UnitsInStock: 17, UnitsOnOrder: 40, ReorderLevel: 25},
		{ProductName: "Aniseed Syrup", CategoryID: condimentsID, SupplierID: exoticID, QuantityPerUnit: "12 - 550 ml bottles", UnitPrice: decimal.RequireFromString("10.00"), UnitsInStock: 13, UnitsOnOrder: 70, ReorderLevel: 25},
	}

	created := make([]models.Product, 0, len(seed))
	for _, p := range seed {
		c, err := productRepo.Create(t.Context(), p)
		if err != nil {
			t.Fatalf("error seeding product %q: %v", p.ProductName, err)
		}
		created = append(created, c)
	}
	return created
}

func productCount(t *testing.T) int {
	t.Helper()
	products, err := productRepo.GetAll(t.Context())
	if err != nil {
		t.Fatalf("error listing products: %v", err)
	}
	return len(products)
}

func getJSON(r http.Handler, path string, dst any) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	req.Header.Set("Accept", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if dst != nil && w.Code < 300 {
		_ = json.NewDecoder(bytes.NewReader(w.Body.Bytes())).Decode(dst)
	}
	return w
}

// postForm submits values the way the HTML forms do, with the session cookie
// and its anti-forgery token.
func postForm(r http.Handler, path string, values url.Values) *httptest.ResponseRecorder {
	if values == nil {
		values = url.Values{}
	}
	values.Set(antiforgery.FormField, token)

	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(values.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("Accept", "application/json")
	req.AddCookie(&http.Cookie{Name: antiforgery.CookieName, Value: sessionID})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func postJSON(r http.Handler, path string, body any) *httptest.ResponseRecorder {
	payload, _ := json.Marshal(body)
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	req.Header.Set(antiforgery.HeaderName, token)
	req.AddCookie(&http.Cookie{Name: antiforgery.CookieName, Value: sessionID})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func productValues(p models.Product) url.Values {
	return url.Values{
		"ProductId":       {fmt.Sprint(p.ProductID)},
		"ProductName":     {p.ProductName},
		"SupplierId":      {fmt.Sprint(p.SupplierID)},
		"CategoryId":      {fmt.Sprint(p.CategoryID)},
		"QuantityPerUnit": {p.QuantityPerUnit},
		"UnitPrice":       {p.UnitPrice.StringFixed(2)},
		"UnitsInStock":    {fmt.Sprint(p.UnitsInStock)},
		"UnitsOnOrder":    {fmt.Sprint(p.UnitsOnOrder)},
		"ReorderLevel":    {fmt.Sprint(p.ReorderLevel)},
		"Discontinued":    {fmt.Sprint(p.Discontinued)},
		"Version":         {fmt.Sprint(p.Version)},
	}
}

func expectRedirectToList(t *testing.T, w *httptest.ResponseRecorder) {
	t.Helper()
	if w.Code != http.StatusFound {
		t.Fatalf("expected 302 Found, got %d: %s", w.Code, w.Body.String())
	}
	if loc := w.Header().Get("Location"); loc != "/Products" {
		t.Errorf("expected redirect to /Products, got %q", loc)
	}
}

func productNames(products []models.Product) []string {
	names := make([]string, len(products))
	for i, p := range products {
		names[i] = p.ProductName
	}
	return names
}
