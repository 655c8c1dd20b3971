package http

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/commercerack/commercerack-go/internal/cart"
	"github.com/commercerack/commercerack-go/internal/order"
)

type CartHandler struct {
	store          *cart.Store
	orders         order.Repository
	eventPublisher CartEventsPublisher
}

type CartEventsPublisher interface {
	PublishCartCheckedOut(ctx context.Context, c *cart.Cart, orderID string) error
}

func NewCartHandler(store *cart.Store, orders order.Repository, eventPublisher CartEventsPublisher) *CartHandler {
	return &CartHandler{store: store, orders: orders, eventPublisher: eventPublisher}
}

// CartResponse is the wire shape for every cart endpoint: the cart plus
// its derived aggregates, computed at response time.
type CartResponse struct {
	CartID    string          `json:"cartId"`
	Items     []cart.Item     `json:"items"`
	Subtotal  decimal.Decimal `json:"subtotal"`
	ItemCount int             `json:"itemCount"`
}

func toCartResponse(c *cart.Cart) CartResponse {
	items := c.Items
	if items == nil {
		items = []cart.Item{}
	}
	return CartResponse{
		CartID:    c.ID,
		Items:     items,
		Subtotal:  c.Subtotal(),
		ItemCount: c.ItemCount(),
	}
}

func (h *CartHandler) CreateCart(w http.ResponseWriter, r *http.Request) {
	id, err := h.store.CreateCart()
	if err != nil {
		writeError(w, http.StatusInternalServerError, "cart store unavailable")
		return
	}

	c, err := h.store.GetCart(id)
	if err != nil || c == nil {
		writeError(w, http.StatusInternalServerError, "cart store unavailable")
		return
	}

	writeJSON(w, http.StatusOK, toCartResponse(c))
}

func (h *CartHandler) GetCart(w http.ResponseWriter, r *http.Request) {
	cartID := chi.URLParam(r, "cartId")

	c, err := h.store.GetCart(cartID)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "cart store unavailable")
		return
	}
	if c == nil {
		writeError(w, http.StatusNotFound, "cart not found")
		return
	}

	writeJSON(w, http.StatusOK, toCartResponse(c))
}

func (h *CartHandler) AddItem(w http.ResponseWriter, r *http.Request) {
	cartID := chi.URLParam(r, "cartId")

	var body struct {
		SKU         string `json:"sku"`
		ProductName string `json:"productName"`
		Quantity    int    `json:"quantity"`
		UnitPrice   string `json:"unitPrice"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeError(w, http.StatusBadRequest, "invalid json")
		return
	}

	// Wire format carries the price as a decimal string; parse failures
	// stop here, before the cart is touched.
	unitPrice, err := decimal.NewFromString(body.UnitPrice)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid unitPrice")
		return
	}

	c, err := h.store.WithCart(cartID, func(c *cart.Cart) {
		c.AddItem(body.SKU, body.ProductName, body.Quantity, unitPrice)
	})
	if err != nil {
		writeError(w, http.StatusInternalServerError, "cart store unavailable")
		return
	}
	if c == nil {
		writeError(w, http.StatusNotFound, "cart not found")
		return
	}

	writeJSON(w, http.StatusOK, toCartResponse(c))
}

func (h *CartHandler) UpdateQuantity(w http.ResponseWriter, r *http.Request) {
	cartID := chi.URLParam(r, "cartId")
	sku := chi.URLParam(r, "sku")

	var body struct {
		Quantity int `json:"quantity"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeError(w, http.StatusBadRequest, "invalid json")
		return
	}

	var found bool
	c, err := h.store.WithCart(cartID, func(c *cart.Cart) {
		found = c.UpdateQuantity(sku, body.Quantity)
	})
	if err != nil {
		writeError(w, http.StatusInternalServerError, "cart store unavailable")
		return
	}
	if c == nil {
		writeError(w, http.StatusNotFound, "cart not found")
		return
	}
	if !found {
		writeError(w, http.StatusNotFound, "sku not in cart")
		return
	}

	writeJSON(w, http.StatusOK, toCartResponse(c))
}

func (h *CartHandler) RemoveItem(w http.ResponseWriter, r *http.Request) {
	cartID := chi.URLParam(r, "cartId")
	sku := chi.URLParam(r, "sku")

	var removed bool
	c, err := h.store.WithCart(cartID, func(c *cart.Cart) {
		removed = c.RemoveItem(sku)
	})
	if err != nil {
		writeError(w, http.StatusInternalServerError, "cart store unavailable")
		return
	}
	if c == nil {
		writeError(w, http.StatusNotFound, "cart not found")
		return
	}
	if !removed {
		writeError(w, http.StatusNotFound, "sku not in cart")
		return
	}

	writeJSON(w, http.StatusOK, toCartResponse(c))
}

func (h *CartHandler) ClearCart(w http.ResponseWriter, r *http.Request) {
	cartID := chi.URLParam(r, "cartId")

	c, err := h.store.WithCart(cartID, func(c *cart.Cart) {
		c.Clear()
	})
	if err != nil {
		writeError(w, http.StatusInternalServerError, "cart store unavailable")
		return
	}
	if c == nil {
		writeError(w, http.StatusNotFound, "cart not found")
		return
	}

	writeJSON(w, http.StatusOK, toCartResponse(c))
}

func (h *CartHandler) DeleteCart(w http.ResponseWriter, r *http.Request) {
	cartID := chi.URLParam(r, "cartId")

	ok, err := h.store.DeleteCart(cartID)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "cart store unavailable")
		return
	}
	if !ok {
		writeError(w, http.StatusNotFound, "cart not found")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// Checkout turns the cart into an order: snapshot the cart, write the
// order, publish CartCheckedOut, then clear the cart. The snapshot and
// the clear are separate critical sections on purpose so no network or
// database work runs under the store lock.
func (h *CartHandler) Checkout(w http.ResponseWriter, r *http.Request) {
	cartID := chi.URLParam(r, "cartId")

	claims := GetClaims(r.Context())
	if claims == nil {
		writeError(w, http.StatusUnauthorized, "missing credentials")
		return
	}
	customerID, err := claims.CustomerID()
	if err != nil {
		writeError(w, http.StatusUnauthorized, "invalid credentials")
		return
	}

	snap, err := h.store.GetCart(cartID)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "cart store unavailable")
		return
	}
	if snap == nil {
		writeError(w, http.StatusNotFound, "cart not found")
		return
	}
	if snap.IsEmpty() {
		writeError(w, http.StatusBadRequest, "cart is empty")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	o := &order.Order{
		MID:        claims.MID,
		OrderID:    uuid.NewString(),
		CustomerID: customerID,
		Total:      snap.Subtotal(),
		CartID:     snap.ID,
	}
	if err := h.orders.Create(ctx, o); err != nil {
		writeError(w, http.StatusInternalServerError, "failed to create order")
		return
	}

	if err := h.eventPublisher.PublishCartCheckedOut(ctx, snap, o.OrderID); err != nil {
		writeError(w, http.StatusInternalServerError, "failed to publish cart checked out event")
		return
	}

	if _, err := h.store.WithCart(cartID, func(c *cart.Cart) { c.Clear() }); err != nil {
		writeError(w, http.StatusInternalServerError, "cart store unavailable")
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"status": "checkout completed",
		"order":  o,
	})
}
