package httpx

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	kafkago "github.com/segmentio/kafka-go"

	"github.com/malidadi/storefront/internal/admin"
	"github.com/malidadi/storefront/internal/cart"
	"github.com/malidadi/storefront/internal/catalog"
	"github.com/malidadi/storefront/internal/checkout"
	kafkax "github.com/malidadi/storefront/internal/kafka"
	"github.com/malidadi/storefront/internal/orders"
	"github.com/malidadi/storefront/internal/pricing"
	"github.com/malidadi/storefront/internal/redisx"
)

// Publisher is the slice of kafkax.Producer the handlers need.
type Publisher interface {
	Publish(key, value []byte, headers ...kafkago.Header)
}

type StorefrontHandler struct {
	Catalog     *admin.Service
	Cart        *cart.Store
	Checkout    *checkout.Machine
	OrderEvents Publisher
	NewsEvents  Publisher
	Redis       *redis.Client
	Service     string
}

func (h *StorefrontHandler) Register(r *chi.Mux) {
	r.Group(func(r chi.Router) {
		r.Use(WithSession)

		r.Get("/", h.home)
		r.Get("/products", h.listProducts)
		r.Get("/products/{id}", h.getProduct)
		r.Get("/products/{id}/{slug}", h.getProduct)

		r.Route("/cart", func(r chi.Router) {
			r.Get("/", h.getCart)
			r.Delete("/", h.clearCart)
			r.Post("/items", h.addItem)
			r.Patch("/items/{productID}", h.setQuantity)
			r.Delete("/items/{productID}", h.removeItem)
			r.Post("/promo", h.applyPromo)
		})

		r.Route("/checkout", func(r chi.Router) {
			r.Get("/", h.getCheckout)
			r.Post("/shipping", h.submitShipping)
			r.Post("/payment", h.submitPayment)
			r.Post("/back", h.stepBack)
			r.Post("/place", h.placeOrder)
		})

		r.Post("/newsletter/subscribe", h.subscribeNewsletter)
		r.Get("/profile", h.getProfile)
		r.Put("/profile", h.putProfile)
	})
}

// ---- home & catalog ----

func (h *StorefrontHandler) home(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 3*time.Second)
	defer cancel()

	products, err := h.Catalog.Merged(ctx)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}
	featured := catalog.Search(products, catalog.Criteria{}, catalog.SortFeatured)
	if len(featured) > 4 {
		featured = featured[:4]
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"slides":   catalog.Slides,
		"featured": featured,
	})
}

func (h *StorefrontHandler) listProducts(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 3*time.Second)
	defer cancel()

	products, err := h.Catalog.Merged(ctx)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}

	q := r.URL.Query()
	crit := catalog.Criteria{
		Query:      q.Get("q"),
		Categories: q["category"],
		Brands:     q["brand"],
	}
	if v := q.Get("min_rating"); v != "" {
		crit.MinRating, _ = strconv.ParseFloat(v, 64)
	}
	if v := q.Get("price_min"); v != "" {
		pr := catalog.PriceRange{}
		pr.Min, _ = strconv.ParseFloat(v, 64)
		if mv := q.Get("price_max"); mv != "" {
			max, _ := strconv.ParseFloat(mv, 64)
			pr.Max = &max
		}
		crit.PriceRange = &pr
	}

	result := catalog.Search(products, crit, catalog.SortKey(q.Get("sort")))
	writeJSON(w, http.StatusOK, map[string]any{"products": result, "total": len(result)})
}

func (h *StorefrontHandler) getProduct(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 3*time.Second)
	defer cancel()

	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid product id"})
		return
	}
	p, err := h.Catalog.Find(ctx, id)
	if errors.Is(err, catalog.ErrNotFound) {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "product not found"})
		return
	}
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}

	all, _ := h.Catalog.Merged(ctx)
	related := make([]catalog.Product, 0, 4)
	for _, o := range all {
		if o.ID == p.ID || len(related) == 4 {
			continue
		}
		if catalog.Matches(o, catalog.Criteria{Categories: p.Categories}) {
			related = append(related, o)
		}
	}
	writeJSON(w, http.StatusOK, map[string]any{"product": p, "slug": p.Slug(), "related": related})
}

// ---- cart ----

type cartResp struct {
	Lines   []cart.Line           `json:"lines"`
	Count   int                   `json:"count"`
	Totals  pricing.DisplayTotals `json:"totals"`
	Warning string                `json:"warning,omitempty"`
}

func (h *StorefrontHandler) cartResponse(ctx context.Context, sid string, warn error) cartResp {
	lines, err := h.Cart.Lines(ctx, sid)
	resp := cartResp{
		Lines:  lines,
		Count:  cart.TotalItems(lines),
		Totals: pricing.ComputeTotals(lines, nil).Display(),
	}
	if warn == nil {
		warn = err
	}
	if warn != nil {
		resp.Warning = warn.Error()
	}
	return resp
}

func (h *StorefrontHandler) getCart(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 3*time.Second)
	defer cancel()
	writeJSON(w, http.StatusOK, h.cartResponse(ctx, SessionID(r), nil))
}

type addItemReq struct {
	ProductID int           `json:"product_id"`
	Quantity  int           `json:"quantity"`
	Variant   *cart.Variant `json:"variant,omitempty"`
}

func (h *StorefrontHandler) addItem(w http.ResponseWriter, r *http.Request) {
	var req addItemReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid json"})
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	p, err := h.Catalog.Find(ctx, req.ProductID)
	if errors.Is(err, catalog.ErrNotFound) {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "product not found"})
		return
	}
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}
	if !p.Available() {
		writeJSON(w, http.StatusConflict, map[string]string{"error": "product is out of stock"})
		return
	}

	sid := SessionID(r)
	saveErr := h.Cart.AddItem(ctx, sid, p, req.Quantity, req.Variant)
	if saveErr != nil && !errors.Is(saveErr, cart.ErrNotSaved) {
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": saveErr.Error()})
		return
	}
	writeJSON(w, http.StatusOK, h.cartResponse(ctx, sid, saveErr))
}

func (h *StorefrontHandler) setQuantity(w http.ResponseWriter, r *http.Request) {
	productID, err := strconv.Atoi(chi.URLParam(r, "productID"))
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid product id"})
		return
	}
	var req struct {
		Quantity int `json:"quantity"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid json"})
		return
	}
	if req.Quantity < 1 {
		// quantity can only reach zero via remove, never via decrement
		writeJSON(w, http.StatusUnprocessableEntity, map[string]string{"error": "quantity must be at least 1"})
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	sid := SessionID(r)
	saveErr := h.Cart.SetQuantity(ctx, sid, productID, req.Quantity)
	if saveErr != nil && !errors.Is(saveErr, cart.ErrNotSaved) {
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": saveErr.Error()})
		return
	}
	writeJSON(w, http.StatusOK, h.cartResponse(ctx, sid, saveErr))
}

func (h *StorefrontHandler) removeItem(w http.ResponseWriter, r *http.Request) {
	productID, err := strconv.Atoi(chi.URLParam(r, "productID"))
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid product id"})
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	sid := SessionID(r)
	saveErr := h.Cart.RemoveItem(ctx, sid, productID)
	if saveErr != nil && !errors.Is(saveErr, cart.ErrNotSaved) {
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": saveErr.Error()})
		return
	}
	writeJSON(w, http.StatusOK, h.cartResponse(ctx, sid, saveErr))
}

func (h *StorefrontHandler) clearCart(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	sid := SessionID(r)
	saveErr := h.Cart.Clear(ctx, sid)
	if saveErr != nil && !errors.Is(saveErr, cart.ErrNotSaved) {
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": saveErr.Error()})
		return
	}
	writeJSON(w, http.StatusOK, h.cartResponse(ctx, sid, saveErr))
}

func (h *StorefrontHandler) applyPromo(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Code string `json:"code"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid json"})
		return
	}
	promo, err := pricing.LookupPromo(req.Code)
	if err != nil {
		writeJSON(w, http.StatusUnprocessableEntity, map[string]string{"error": err.Error()})
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), 3*time.Second)
	defer cancel()

	lines, _ := h.Cart.Lines(ctx, SessionID(r))
	writeJSON(w, http.StatusOK, map[string]any{
		"promo":  promo,
		"totals": pricing.ComputeTotals(lines, &promo).Display(),
	})
}

// ---- checkout ----

func (h *StorefrontHandler) getCheckout(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 3*time.Second)
	defer cancel()

	sid := SessionID(r)
	if p := h.loadProfile(ctx, sid); p != nil {
		h.Checkout.Prefill(sid, p.Shipping)
	}
	sess := h.Checkout.Session(sid)
	writeJSON(w, http.StatusOK, map[string]any{
		"step": sess.Step.String(),
		"form": sess.Form,
		"cart": h.cartResponse(ctx, sid, nil),
	})
}

func (h *StorefrontHandler) submitShipping(w http.ResponseWriter, r *http.Request) {
	var req checkout.ShippingInfo
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid json"})
		return
	}
	sess := h.Checkout.Session(SessionID(r))
	if sess.Step != checkout.StepShipping {
		writeJSON(w, http.StatusConflict, map[string]string{"error": "not on the shipping step"})
		return
	}
	sess.Form.Shipping = req
	if errs, err := sess.Next(); err != nil {
		writeValidation(w, errs, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"step": sess.Step.String()})
}

type paymentReq struct {
	Method         string `json:"method"`
	CardNumber     string `json:"card_number"`
	CardName       string `json:"card_name"`
	ExpiryMonth    string `json:"expiry_month"`
	ExpiryYear     string `json:"expiry_year"`
	CVV            string `json:"cvv"`
	SameAsShipping bool   `json:"same_as_shipping"`
	Provider       string `json:"provider"`
}

func (h *StorefrontHandler) submitPayment(w http.ResponseWriter, r *http.Request) {
	var req paymentReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid json"})
		return
	}
	sess := h.Checkout.Session(SessionID(r))
	if sess.Step != checkout.StepPayment {
		writeJSON(w, http.StatusConflict, map[string]string{"error": "not on the payment step"})
		return
	}
	if req.Method == "wallet" {
		sess.Form.Payment = checkout.Wallet{Provider: req.Provider}
	} else {
		sess.Form.Payment = checkout.Card{
			CardNumber:     req.CardNumber,
			CardName:       req.CardName,
			ExpiryMonth:    req.ExpiryMonth,
			ExpiryYear:     req.ExpiryYear,
			CVV:            req.CVV,
			SameAsShipping: req.SameAsShipping,
		}
	}
	if errs, err := sess.Next(); err != nil {
		writeValidation(w, errs, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"step": sess.Step.String()})
}

func (h *StorefrontHandler) stepBack(w http.ResponseWriter, r *http.Request) {
	sess := h.Checkout.Session(SessionID(r))
	if err := sess.Back(); err != nil {
		writeJSON(w, http.StatusConflict, map[string]string{"error": err.Error()})
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"step": sess.Step.String()})
}

type placeOrderReq struct {
	TermsAccepted   bool   `json:"terms_accepted"`
	NewsletterOptIn bool   `json:"newsletter_opt_in"`
	PromoCode       string `json:"promo_code"`
}

func (h *StorefrontHandler) placeOrder(w http.ResponseWriter, r *http.Request) {
	var req placeOrderReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid json"})
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	sid := SessionID(r)

	// fast-path idempotency: a retried place returns the stored order
	if h.Redis != nil {
		idemKey := fmt.Sprintf(redisx.KeyIdemPlaceOrder, sid)
		if b, err := h.Redis.Get(ctx, idemKey).Bytes(); err == nil && len(b) > 0 {
			writeJSON(w, http.StatusOK, map[string]any{"order": json.RawMessage(b), "idempotent": true})
			return
		}
	}

	sess := h.Checkout.Session(sid)
	sess.Form.TermsAccepted = req.TermsAccepted
	sess.Form.NewsletterOptIn = sess.Form.NewsletterOptIn || req.NewsletterOptIn

	var promo *pricing.Promo
	if req.PromoCode != "" {
		if p, err := pricing.LookupPromo(req.PromoCode); err == nil {
			promo = &p
		}
	}

	shipping := sess.Form.Shipping
	optIn := sess.Form.NewsletterOptIn
	lines, err := h.Checkout.Place(ctx, sid)
	switch {
	case errors.Is(err, checkout.ErrTermsNotAccepted):
		writeJSON(w, http.StatusUnprocessableEntity, map[string]string{"error": err.Error()})
		return
	case errors.Is(err, checkout.ErrInvalidTransition), errors.Is(err, checkout.ErrEmptyCart):
		writeJSON(w, http.StatusConflict, map[string]string{"error": err.Error()})
		return
	case err != nil:
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}

	items := make([]orders.PlacedItem, 0, len(lines))
	for _, l := range lines {
		items = append(items, orders.PlacedItem{ProductID: l.ProductID, Name: l.Name, Quantity: l.Quantity, Price: l.Price})
	}
	order := orders.OrderPlacedPayload{
		OrderID:   uuid.NewString(),
		SessionID: sid,
		Email:     shipping.Email,
		Name:      shipping.FirstName + " " + shipping.LastName,
		Items:     items,
		Totals:    pricing.ComputeTotals(lines, promo).Display(),
		PlacedAt:  time.Now().UTC(),
	}

	if h.OrderEvents != nil {
		ev := orders.Envelope{
			EventID:       uuid.NewString(),
			EventType:     orders.EventOrderPlaced,
			EventVersion:  1,
			OccurredAt:    time.Now().UTC(),
			Producer:      h.Service,
			TraceID:       r.Header.Get("X-Request-Id"),
			CorrelationID: order.OrderID,
			Payload:       kafkax.MustMarshal(order),
		}
		h.OrderEvents.Publish(orders.PartitionKey(order.OrderID), kafkax.MustMarshal(ev),
			kafkago.Header{Key: "x-event-type", Value: []byte(orders.EventOrderPlaced)},
			kafkago.Header{Key: "x-event-version", Value: []byte("1")},
		)
	}
	if optIn {
		h.publishNewsletter(r, shipping.Email, "checkout")
	}

	if h.Redis != nil {
		idemKey := fmt.Sprintf(redisx.KeyIdemPlaceOrder, sid)
		_ = h.Redis.Set(ctx, idemKey, kafkax.MustMarshal(order), redisx.TTLIdempotency).Err()
	}

	writeJSON(w, http.StatusAccepted, map[string]any{"order": order, "idempotent": false})
}

// ---- newsletter & profile ----

func (h *StorefrontHandler) subscribeNewsletter(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Email string `json:"email"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid json"})
		return
	}
	if !checkout.ValidEmail(req.Email) {
		writeJSON(w, http.StatusUnprocessableEntity, map[string]string{"error": "Please enter a valid email address"})
		return
	}
	h.publishNewsletter(r, req.Email, "newsletter-form")
	writeJSON(w, http.StatusAccepted, map[string]string{"message": "Thanks for subscribing!"})
}

func (h *StorefrontHandler) publishNewsletter(r *http.Request, email, source string) {
	if h.NewsEvents == nil {
		return
	}
	ev := orders.Envelope{
		EventID:      uuid.NewString(),
		EventType:    orders.EventNewsletterSubscribed,
		EventVersion: 1,
		OccurredAt:   time.Now().UTC(),
		Producer:     h.Service,
		TraceID:      r.Header.Get("X-Request-Id"),
		Payload:      kafkax.MustMarshal(orders.NewsletterSubscribedPayload{Email: email, Source: source}),
	}
	h.NewsEvents.Publish([]byte(email), kafkax.MustMarshal(ev),
		kafkago.Header{Key: "x-event-type", Value: []byte(orders.EventNewsletterSubscribed)},
		kafkago.Header{Key: "x-event-version", Value: []byte("1")},
	)
}

type profileRecord struct {
	Name     string                `json:"name"`
	Email    string                `json:"email"`
	Shipping checkout.ShippingInfo `json:"shipping"`
}

func (h *StorefrontHandler) loadProfile(ctx context.Context, sid string) *profileRecord {
	if h.Redis == nil {
		return nil
	}
	b, err := h.Redis.Get(ctx, fmt.Sprintf(redisx.KeyProfile, sid)).Bytes()
	if err != nil {
		return nil
	}
	var p profileRecord
	if json.Unmarshal(b, &p) != nil {
		return nil
	}
	return &p
}

func (h *StorefrontHandler) getProfile(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 3*time.Second)
	defer cancel()

	p := h.loadProfile(ctx, SessionID(r))
	if p == nil {
		writeJSON(w, http.StatusOK, map[string]any{"profile": nil})
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"profile": p})
}

func (h *StorefrontHandler) putProfile(w http.ResponseWriter, r *http.Request) {
	var p profileRecord
	if err := json.NewDecoder(r.Body).Decode(&p); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid json"})
		return
	}
	if h.Redis == nil {
		writeJSON(w, http.StatusServiceUnavailable, map[string]string{"error": "profile storage unavailable"})
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), 3*time.Second)
	defer cancel()

	key := fmt.Sprintf(redisx.KeyProfile, SessionID(r))
	if err := h.Redis.Set(ctx, key, kafkax.MustMarshal(p), redisx.TTLProfile).Err(); err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"profile": p})
}

func writeValidation(w http.ResponseWriter, errs checkout.FieldErrors, err error) {
	if errors.Is(err, checkout.ErrValidation) {
		writeJSON(w, http.StatusUnprocessableEntity, map[string]any{
			"errors":      errs,
			"first_field": errs.First().Field,
		})
		return
	}
	writeJSON(w, http.StatusConflict, map[string]string{"error": err.Error()})
}
