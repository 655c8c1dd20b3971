package http

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

type RouterDeps struct {
	Carts     *CartHandler
	Customers *CustomerHandler
	Products  *ProductHandler
	Orders    *OrderHandler
	JWTSecret string
}

func NewRouter(deps RouterDeps) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Logger)

	r.Get("/health", healthHandler)

	r.Post("/api/login", deps.Customers.Login)

	r.Route("/api/customers", func(r chi.Router) {
		r.Post("/", deps.Customers.Create)
		r.Get("/", deps.Customers.List)
		r.Get("/{mid}/{id}", deps.Customers.Get)
	})

	r.Route("/api/products", func(r chi.Router) {
		r.Post("/", deps.Products.Create)
		r.Get("/", deps.Products.List)
		r.Get("/{mid}/{id}", deps.Products.Get)
	})

	r.Route("/api/orders", func(r chi.Router) {
		r.With(RequireAuth(deps.JWTSecret)).Post("/", deps.Orders.Create)
		r.Get("/", deps.Orders.List)
		r.Get("/{mid}/{id}", deps.Orders.Get)
	})

	r.Route("/api/carts", func(r chi.Router) {
		r.Post("/", deps.Carts.CreateCart)
		r.Get("/{cartId}", deps.Carts.GetCart)
		r.Delete("/{cartId}", deps.Carts.DeleteCart)
		r.Post("/{cartId}/items", deps.Carts.AddItem)
		r.Put("/{cartId}/items/{sku}", deps.Carts.UpdateQuantity)
		r.Delete("/{cartId}/items/{sku}", deps.Carts.RemoveItem)
		r.Post("/{cartId}/clear", deps.Carts.ClearCart)
		r.With(RequireAuth(deps.JWTSecret)).Post("/{cartId}/checkout", deps.Carts.Checkout)
	})

	return r
}

func healthHandler(w http.ResponseWriter, r *http.Request) {
	resp := map[string]string{"status": "ok", "service": "commercerack"}
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(resp)
}
