package httpx

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	kafkago "github.com/segmentio/kafka-go"

	"github.com/malidadi/storefront/internal/admin"
	"github.com/malidadi/storefront/internal/cart"
	"github.com/malidadi/storefront/internal/catalog"
	"github.com/malidadi/storefront/internal/checkout"
	"github.com/malidadi/storefront/internal/orders"
)

// stubPublisher records published messages in order.
type stubPublisher struct {
	mu   sync.Mutex
	msgs []kafkago.Message
}

func (s *stubPublisher) Publish(key, value []byte, headers ...kafkago.Header) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.msgs = append(s.msgs, kafkago.Message{Key: key, Value: value, Headers: headers})
}

func (s *stubPublisher) count() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.msgs)
}

func (s *stubPublisher) last(t *testing.T) (orders.Envelope, []byte) {
	t.Helper()
	s.mu.Lock()
	defer s.mu.Unlock()
	require.NotEmpty(t, s.msgs)
	var env orders.Envelope
	require.NoError(t, json.Unmarshal(s.msgs[len(s.msgs)-1].Value, &env))
	return env, s.msgs[len(s.msgs)-1].Key
}

type fixture struct {
	router *chi.Mux
	cart   *cart.Store
	orders *stubPublisher
	news   *stubPublisher
}

func newFixture() *fixture {
	cartStore := cart.NewStore(cart.NewMemory())
	op := &stubPublisher{}
	np := &stubPublisher{}
	h := &StorefrontHandler{
		Catalog:     admin.NewService(catalog.Seed, nil),
		Cart:        cartStore,
		Checkout:    checkout.NewMachine(cartStore),
		OrderEvents: op,
		NewsEvents:  np,
		Service:     "storefront-api-test",
	}
	r := chi.NewRouter()
	h.Register(r)
	return &fixture{router: r, cart: cartStore, orders: op, news: np}
}

// do issues a request under a fixed session so state carries across calls.
func (f *fixture) do(t *testing.T, method, path string, body any) (*httptest.ResponseRecorder, map[string]json.RawMessage) {
	t.Helper()
	var rd *bytes.Reader
	if body != nil {
		b, err := json.Marshal(body)
		require.NoError(t, err)
		rd = bytes.NewReader(b)
	} else {
		rd = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, path, rd)
	req.AddCookie(&http.Cookie{Name: "sid", Value: "test-session"})
	rec := httptest.NewRecorder()
	f.router.ServeHTTP(rec, req)

	var resp map[string]json.RawMessage
	if rec.Body.Len() > 0 {
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	}
	return rec, resp
}

func TestSessionCookieIssuedOnce(t *testing.T) {
	f := newFixture()

	req := httptest.NewRequest(http.MethodGet, "/cart", nil)
	rec := httptest.NewRecorder()
	f.router.ServeHTTP(rec, req)

	cookies := rec.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, "sid", cookies[0].Name)
	assert.NotEmpty(t, cookies[0].Value)
	assert.True(t, cookies[0].HttpOnly)

	// a request that already carries the cookie gets no new one
	rec2, _ := f.do(t, http.MethodGet, "/cart", nil)
	assert.Empty(t, rec2.Result().Cookies())
}

func TestHome(t *testing.T) {
	f := newFixture()
	rec, resp := f.do(t, http.MethodGet, "/", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var featured []catalog.Product
	require.NoError(t, json.Unmarshal(resp["featured"], &featured))
	require.Len(t, featured, 4)
	// featured ranks by review count
	assert.GreaterOrEqual(t, featured[0].ReviewCount, featured[3].ReviewCount)

	var slides []catalog.Slide
	require.NoError(t, json.Unmarshal(resp["slides"], &slides))
	assert.Len(t, slides, 3)
}

func TestListProductsFilters(t *testing.T) {
	f := newFixture()
	rec, resp := f.do(t, http.MethodGet, "/products?q=necklace", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var products []catalog.Product
	require.NoError(t, json.Unmarshal(resp["products"], &products))
	require.NotEmpty(t, products)
	for _, p := range products {
		assert.True(t, catalog.Matches(p, catalog.Criteria{Query: "necklace"}))
	}

	rec, resp = f.do(t, http.MethodGet, "/products?q=zzz-no-such-product", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "0", string(resp["total"]))
}

func TestGetProduct(t *testing.T) {
	f := newFixture()

	rec, resp := f.do(t, http.MethodGet, "/products/1", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var p catalog.Product
	require.NoError(t, json.Unmarshal(resp["product"], &p))
	assert.Equal(t, 1, p.ID)

	var related []catalog.Product
	require.NoError(t, json.Unmarshal(resp["related"], &related))
	assert.LessOrEqual(t, len(related), 4)
	for _, rp := range related {
		assert.NotEqual(t, p.ID, rp.ID)
	}

	rec, _ = f.do(t, http.MethodGet, "/products/999", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec, _ = f.do(t, http.MethodGet, "/products/abc", nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func cartCount(t *testing.T, resp map[string]json.RawMessage) int {
	t.Helper()
	var n int
	require.NoError(t, json.Unmarshal(resp["count"], &n))
	return n
}

func TestCartFlow(t *testing.T) {
	f := newFixture()

	rec, resp := f.do(t, http.MethodPost, "/cart/items", map[string]any{"product_id": 1, "quantity": 2})
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 2, cartCount(t, resp))

	// duplicate add merges
	rec, resp = f.do(t, http.MethodPost, "/cart/items", map[string]any{"product_id": 1, "quantity": 1})
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 3, cartCount(t, resp))
	var lines []cart.Line
	require.NoError(t, json.Unmarshal(resp["lines"], &lines))
	require.Len(t, lines, 1)

	rec, resp = f.do(t, http.MethodPatch, "/cart/items/1", map[string]any{"quantity": 5})
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 5, cartCount(t, resp))

	rec, _ = f.do(t, http.MethodPatch, "/cart/items/1", map[string]any{"quantity": 0})
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)

	rec, resp = f.do(t, http.MethodDelete, "/cart/items/1", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 0, cartCount(t, resp))
}

func TestAddUnknownProduct(t *testing.T) {
	f := newFixture()
	rec, _ := f.do(t, http.MethodPost, "/cart/items", map[string]any{"product_id": 999, "quantity": 1})
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestApplyPromo(t *testing.T) {
	f := newFixture()
	_, _ = f.do(t, http.MethodPost, "/cart/items", map[string]any{"product_id": 1, "quantity": 1})

	rec, resp := f.do(t, http.MethodPost, "/cart/promo", map[string]any{"code": "save10"})
	require.Equal(t, http.StatusOK, rec.Code)
	var promo struct {
		Code string `json:"code"`
	}
	require.NoError(t, json.Unmarshal(resp["promo"], &promo))
	assert.Equal(t, "SAVE10", promo.Code)

	rec, resp = f.do(t, http.MethodPost, "/cart/promo", map[string]any{"code": "NOPE"})
	require.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.Contains(t, string(resp["error"]), "SAVE10")
}

func shippingBody() map[string]any {
	return map[string]any{
		"first_name": "Ama",
		"last_name":  "Mensah",
		"email":      "ama@example.com",
		"address":    "1 Market St",
		"city":       "Los Angeles",
		"state":      "ca",
		"zip_code":   "90001",
		"country":    "us",
	}
}

func TestCheckoutFlow(t *testing.T) {
	f := newFixture()
	_, _ = f.do(t, http.MethodPost, "/cart/items", map[string]any{"product_id": 1, "quantity": 2})

	rec, resp := f.do(t, http.MethodGet, "/checkout", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, `"shipping"`, string(resp["step"]))

	// payment before shipping is rejected
	rec, _ = f.do(t, http.MethodPost, "/checkout/payment", map[string]any{"method": "wallet"})
	assert.Equal(t, http.StatusConflict, rec.Code)

	// invalid shipping reports the field to focus
	bad := shippingBody()
	bad["email"] = "not-an-email"
	rec, resp = f.do(t, http.MethodPost, "/checkout/shipping", bad)
	require.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.Equal(t, `"email"`, string(resp["first_field"]))

	rec, resp = f.do(t, http.MethodPost, "/checkout/shipping", shippingBody())
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, `"payment"`, string(resp["step"]))

	rec, resp = f.do(t, http.MethodPost, "/checkout/payment", map[string]any{"method": "wallet", "provider": "paypal"})
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, `"review"`, string(resp["step"]))

	// backward navigation keeps the form
	rec, _ = f.do(t, http.MethodPost, "/checkout/back", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	_, resp = f.do(t, http.MethodGet, "/checkout", nil)
	var form checkout.Form
	require.NoError(t, json.Unmarshal(resp["form"], &form))
	assert.Equal(t, "ama@example.com", form.Shipping.Email)

	_, _ = f.do(t, http.MethodPost, "/checkout/payment", map[string]any{"method": "wallet", "provider": "paypal"})

	// placing without terms is blocked
	rec, _ = f.do(t, http.MethodPost, "/checkout/place", map[string]any{"terms_accepted": false})
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)

	rec, resp = f.do(t, http.MethodPost, "/checkout/place", map[string]any{"terms_accepted": true})
	require.Equal(t, http.StatusAccepted, rec.Code)
	assert.Equal(t, "false", string(resp["idempotent"]))

	var order orders.OrderPlacedPayload
	require.NoError(t, json.Unmarshal(resp["order"], &order))
	assert.Equal(t, "ama@example.com", order.Email)
	assert.Equal(t, "Ama Mensah", order.Name)
	require.Len(t, order.Items, 1)
	assert.Equal(t, 2, order.Items[0].Quantity)

	// the cart is emptied and the event published
	_, resp = f.do(t, http.MethodGet, "/cart", nil)
	assert.Equal(t, 0, cartCount(t, resp))

	require.Equal(t, 1, f.orders.count())
	env, key := f.orders.last(t)
	assert.Equal(t, orders.EventOrderPlaced, env.EventType)
	assert.Equal(t, order.OrderID, env.CorrelationID)
	assert.Equal(t, order.OrderID, string(key))
	assert.Zero(t, f.news.count())
}

func TestPlaceWithEmptyCart(t *testing.T) {
	f := newFixture()
	_, _ = f.do(t, http.MethodPost, "/cart/items", map[string]any{"product_id": 1, "quantity": 1})
	_, _ = f.do(t, http.MethodPost, "/checkout/shipping", shippingBody())
	_, _ = f.do(t, http.MethodPost, "/checkout/payment", map[string]any{"method": "wallet"})
	_, _ = f.do(t, http.MethodDelete, "/cart", nil)

	rec, _ := f.do(t, http.MethodPost, "/checkout/place", map[string]any{"terms_accepted": true})
	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Zero(t, f.orders.count())
}

func TestNewsletterOptInPublishes(t *testing.T) {
	f := newFixture()
	_, _ = f.do(t, http.MethodPost, "/cart/items", map[string]any{"product_id": 2, "quantity": 1})
	_, _ = f.do(t, http.MethodPost, "/checkout/shipping", shippingBody())
	_, _ = f.do(t, http.MethodPost, "/checkout/payment", map[string]any{"method": "wallet"})

	rec, _ := f.do(t, http.MethodPost, "/checkout/place", map[string]any{"terms_accepted": true, "newsletter_opt_in": true})
	require.Equal(t, http.StatusAccepted, rec.Code)

	require.Equal(t, 1, f.news.count())
	env, key := f.news.last(t)
	assert.Equal(t, orders.EventNewsletterSubscribed, env.EventType)
	assert.Equal(t, "ama@example.com", string(key))
}

func TestSubscribeNewsletter(t *testing.T) {
	f := newFixture()

	rec, _ := f.do(t, http.MethodPost, "/newsletter/subscribe", map[string]any{"email": "ama@example.com"})
	require.Equal(t, http.StatusAccepted, rec.Code)
	require.Equal(t, 1, f.news.count())

	rec, _ = f.do(t, http.MethodPost, "/newsletter/subscribe", map[string]any{"email": "nope"})
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.Equal(t, 1, f.news.count())
}

func TestProfileWithoutRedis(t *testing.T) {
	f := newFixture()

	rec, resp := f.do(t, http.MethodGet, "/profile", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "null", string(resp["profile"]))

	rec, _ = f.do(t, http.MethodPut, "/profile", map[string]any{"name": "Ama", "email": "ama@example.com"})
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}
