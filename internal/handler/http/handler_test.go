package http

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	goredis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/timursarsembai/crochet-shop/internal/event"
	"github.com/timursarsembai/crochet-shop/internal/repository/memory"
	redisrepo "github.com/timursarsembai/crochet-shop/internal/repository/redis"
	"github.com/timursarsembai/crochet-shop/internal/service"
	"github.com/timursarsembai/crochet-shop/pkg/health"
	"github.com/timursarsembai/crochet-shop/pkg/middleware"
)

func newTestRouter(t *testing.T) http.Handler {
	t.Helper()

	mr := miniredis.RunT(t)
	client := goredis.NewClient(&goredis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	log := slog.New(slog.NewJSONHandler(io.Discard, nil))
	ttl := time.Hour
	events := event.NoopPublisher{}

	catalog := memory.NewCatalogRepository()
	carts := redisrepo.NewCartRepository(client, ttl)
	wishlists := redisrepo.NewWishlistRepository(client, ttl)
	orders := redisrepo.NewOrderRepository(client, ttl)
	navs := redisrepo.NewNavigationRepository(client, ttl)

	catalogSvc := service.NewCatalogService(catalog, log)
	cartSvc := service.NewCartService(carts, catalog, events, log)
	wishlistSvc := service.NewWishlistService(wishlists, catalog, cartSvc, events, log)
	checkoutSvc := service.NewCheckoutService(orders, navs, cartSvc, events, log, time.Hour, time.Hour)
	t.Cleanup(checkoutSvc.Stop)
	navSvc := service.NewNavigationService(navs, catalog, cartSvc, log)
	navSvc.BindCheckout(checkoutSvc)
	inquirySvc := service.NewInquiryService(events, log)

	return NewRouter(RouterDeps{
		ServiceName: "storefront-test",
		Logger:      log,
		CORS:        middleware.DefaultCORSConfig(),
		Catalog:     NewCatalogHandler(catalogSvc, log),
		Cart:        NewCartHandler(cartSvc, log),
		Wishlist:    NewWishlistHandler(wishlistSvc, log),
		Checkout:    NewCheckoutHandler(checkoutSvc, log),
		Navigation:  NewNavigationHandler(navSvc, log),
		Inquiry:     NewInquiryHandler(inquirySvc, log),
		Health:      health.NewHandler(),
	})
}

func doRequest(t *testing.T, router http.Handler, method, path, sessionID string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(data)
	}

	req := httptest.NewRequest(method, path, reader)
	if sessionID != "" {
		req.Header.Set(SessionHeader, sessionID)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func decodeData(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()

	var envelope struct {
		Data map[string]any `json:"data"`
	}
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&envelope))
	return envelope.Data
}

func TestRouter_Healthz(t *testing.T) {
	router := newTestRouter(t)

	rec := doRequest(t, router, http.MethodGet, "/healthz", "", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestProducts_List(t *testing.T) {
	router := newTestRouter(t)

	rec := doRequest(t, router, http.MethodGet, "/api/v1/products", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var envelope struct {
		Data []map[string]any `json:"data"`
	}
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&envelope))
	assert.Len(t, envelope.Data, 12)
}

func TestProducts_ListByCategory(t *testing.T) {
	router := newTestRouter(t)

	rec := doRequest(t, router, http.MethodGet, "/api/v1/products?category=baby", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var envelope struct {
		Data []map[string]any `json:"data"`
	}
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&envelope))
	assert.Len(t, envelope.Data, 2)

	rec = doRequest(t, router, http.MethodGet, "/api/v1/products?category=vehicles", "", nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestProducts_Get(t *testing.T) {
	router := newTestRouter(t)

	rec := doRequest(t, router, http.MethodGet, "/api/v1/products/1", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	data := decodeData(t, rec)
	assert.Equal(t, "Milo the Octopus", data["name"])
	assert.Equal(t, "$24.99", data["price"])
	assert.NotEmpty(t, data["details"])

	rec = doRequest(t, router, http.MethodGet, "/api/v1/products/999", "", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = doRequest(t, router, http.MethodGet, "/api/v1/products/banana", "", nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestCart_RequiresSession(t *testing.T) {
	router := newTestRouter(t)

	rec := doRequest(t, router, http.MethodGet, "/api/v1/cart", "", nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "MISSING_SESSION")
}

func TestCart_AddUpdateRemove(t *testing.T) {
	router := newTestRouter(t)

	rec := doRequest(t, router, http.MethodPost, "/api/v1/cart/items", "sess-1",
		map[string]any{"product_id": 1, "quantity": 2})
	require.Equal(t, http.StatusOK, rec.Code)

	data := decodeData(t, rec)
	items := data["items"].([]any)
	require.Len(t, items, 1)
	assert.Equal(t, float64(2), items[0].(map[string]any)["quantity"])

	// Update clamps zero to one.
	rec = doRequest(t, router, http.MethodPut, "/api/v1/cart/items/1", "sess-1",
		map[string]any{"quantity": 0})
	require.Equal(t, http.StatusOK, rec.Code)
	items = decodeData(t, rec)["items"].([]any)
	assert.Equal(t, float64(1), items[0].(map[string]any)["quantity"])

	rec = doRequest(t, router, http.MethodDelete, "/api/v1/cart/items/1", "sess-1", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = doRequest(t, router, http.MethodGet, "/api/v1/cart", "sess-1", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Empty(t, decodeData(t, rec)["items"])
}

func TestCart_AddUnknownProduct(t *testing.T) {
	router := newTestRouter(t)

	rec := doRequest(t, router, http.MethodPost, "/api/v1/cart/items", "sess-1",
		map[string]any{"product_id": 999, "quantity": 1})
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestCart_Summary(t *testing.T) {
	router := newTestRouter(t)

	rec := doRequest(t, router, http.MethodPost, "/api/v1/cart/items", "sess-1",
		map[string]any{"product_id": 1, "quantity": 1})
	require.Equal(t, http.StatusOK, rec.Code)

	rec = doRequest(t, router, http.MethodGet, "/api/v1/cart/summary", "sess-1", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	data := decodeData(t, rec)
	assert.Equal(t, "$24.99", data["subtotal"])
	assert.Equal(t, "$5.99", data["shipping"])
	assert.Equal(t, "$30.98", data["total"])
}

func TestCart_Clear(t *testing.T) {
	router := newTestRouter(t)

	rec := doRequest(t, router, http.MethodPost, "/api/v1/cart/items", "sess-1",
		map[string]any{"product_id": 1})
	require.Equal(t, http.StatusOK, rec.Code)

	rec = doRequest(t, router, http.MethodDelete, "/api/v1/cart", "sess-1", nil)
	assert.Equal(t, http.StatusNoContent, rec.Code)
}

func TestWishlist_Flow(t *testing.T) {
	router := newTestRouter(t)

	rec := doRequest(t, router, http.MethodPost, "/api/v1/wishlist/items", "sess-1",
		map[string]any{"product_id": 7})
	require.Equal(t, http.StatusOK, rec.Code)

	rec = doRequest(t, router, http.MethodGet, "/api/v1/wishlist/items/7", "sess-1", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, true, decodeData(t, rec)["saved"])

	rec = doRequest(t, router, http.MethodPost, "/api/v1/wishlist/items/7/move-to-cart", "sess-1", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	items := decodeData(t, rec)["items"].([]any)
	require.Len(t, items, 1)

	// The wishlist entry survives the move.
	rec = doRequest(t, router, http.MethodGet, "/api/v1/wishlist", "sess-1", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Len(t, decodeData(t, rec)["items"], 1)

	rec = doRequest(t, router, http.MethodDelete, "/api/v1/wishlist/items/7", "sess-1", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Empty(t, decodeData(t, rec)["items"])
}

func TestCheckout_PlaceOrder(t *testing.T) {
	router := newTestRouter(t)

	rec := doRequest(t, router, http.MethodPost, "/api/v1/cart/items", "sess-1",
		map[string]any{"product_id": 2, "quantity": 2})
	require.Equal(t, http.StatusOK, rec.Code)

	rec = doRequest(t, router, http.MethodPost, "/api/v1/checkout/orders", "sess-1", map[string]any{
		"shipping_tier":  "standard",
		"payment_method": "card",
		"address": map[string]any{
			"full_name": "Aigerim Bekova",
			"email":     "aigerim@example.com",
			"street":    "12 Yarn Lane",
			"city":      "Almaty",
			"zip":       "050000",
			"country":   "KZ",
		},
	})
	require.Equal(t, http.StatusCreated, rec.Code)

	data := decodeData(t, rec)
	assert.Equal(t, "processing", data["status"])
	assert.Equal(t, float64(4997), data["total_cents"])

	orderID := data["id"].(string)
	rec = doRequest(t, router, http.MethodGet, "/api/v1/checkout/orders/"+orderID, "", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, orderID, decodeData(t, rec)["id"])
}

func TestCheckout_EmptyCart(t *testing.T) {
	router := newTestRouter(t)

	rec := doRequest(t, router, http.MethodPost, "/api/v1/checkout/orders", "sess-1", map[string]any{
		"shipping_tier":  "standard",
		"payment_method": "card",
		"address": map[string]any{
			"full_name": "A", "email": "a@example.com", "street": "s",
			"city": "c", "zip": "z", "country": "KZ",
		},
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestCheckout_ValidationErrors(t *testing.T) {
	router := newTestRouter(t)

	rec := doRequest(t, router, http.MethodPost, "/api/v1/checkout/orders", "sess-1",
		map[string]any{"shipping_tier": "standard"})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "VALIDATION_ERROR")
}

func TestCheckout_OptionCatalogs(t *testing.T) {
	router := newTestRouter(t)

	rec := doRequest(t, router, http.MethodGet, "/api/v1/checkout/shipping-options", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "express")

	rec = doRequest(t, router, http.MethodGet, "/api/v1/checkout/payment-methods", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "paypal")
}

func TestCheckout_Quote(t *testing.T) {
	router := newTestRouter(t)

	rec := doRequest(t, router, http.MethodPost, "/api/v1/cart/items", "sess-1",
		map[string]any{"product_id": 2, "quantity": 2})
	require.Equal(t, http.StatusOK, rec.Code)

	rec = doRequest(t, router, http.MethodGet, "/api/v1/checkout/quote?tier=express", "sess-1", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	data := decodeData(t, rec)
	assert.Equal(t, float64(3998), data["subtotal_cents"])
	assert.Equal(t, float64(1599), data["shipping_cents"])
	assert.Equal(t, float64(400), data["tax_cents"])
	assert.Equal(t, float64(5997), data["total_cents"])
}

func TestNavigation_Flow(t *testing.T) {
	router := newTestRouter(t)

	rec := doRequest(t, router, http.MethodGet, "/api/v1/navigation", "sess-1", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "home", decodeData(t, rec)["current_page"])

	rec = doRequest(t, router, http.MethodPost, "/api/v1/navigation", "sess-1",
		map[string]any{"page": "product", "product_id": 3})
	require.Equal(t, http.StatusOK, rec.Code)
	data := decodeData(t, rec)
	assert.Equal(t, "product", data["current_page"])
	assert.Equal(t, float64(3), data["selected_product_id"])

	// Checkout with an empty cart lands on the cart page.
	rec = doRequest(t, router, http.MethodPost, "/api/v1/navigation", "sess-1",
		map[string]any{"page": "checkout"})
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "cart", decodeData(t, rec)["current_page"])
}

func TestInquiries_Contact(t *testing.T) {
	router := newTestRouter(t)

	rec := doRequest(t, router, http.MethodPost, "/api/v1/inquiries/contact", "", map[string]any{
		"name":    "Dana",
		"email":   "dana@example.com",
		"message": "Do you ship to Astana?",
	})
	require.Equal(t, http.StatusCreated, rec.Code)
	assert.NotEmpty(t, decodeData(t, rec)["id"])

	rec = doRequest(t, router, http.MethodPost, "/api/v1/inquiries/contact", "",
		map[string]any{"name": "Dana"})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestInquiries_CustomOrder(t *testing.T) {
	router := newTestRouter(t)

	rec := doRequest(t, router, http.MethodPost, "/api/v1/inquiries/custom-order", "", map[string]any{
		"name":        "Dana",
		"email":       "dana@example.com",
		"description": "A purple dragon with golden wings",
	})
	assert.Equal(t, http.StatusCreated, rec.Code)
}
