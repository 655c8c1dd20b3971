package http

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"

	"github.com/commercerack/commercerack-go/internal/product"
)

type ProductHandler struct {
	repo product.Repository
}

func NewProductHandler(repo product.Repository) *ProductHandler {
	return &ProductHandler{repo: repo}
}

func (h *ProductHandler) Create(w http.ResponseWriter, r *http.Request) {
	var body struct {
		MID         int    `json:"mid"`
		Merchant    string `json:"merchant"`
		ProductCode string `json:"product"`
		ProductName string `json:"productName"`
		Category    string `json:"category"`
		BasePrice   string `json:"basePrice"`
		BaseCost    string `json:"baseCost"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeError(w, http.StatusBadRequest, "invalid json")
		return
	}
	if body.ProductCode == "" {
		writeError(w, http.StatusBadRequest, "missing product")
		return
	}

	basePrice, err := decimal.NewFromString(body.BasePrice)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid basePrice")
		return
	}
	baseCost := decimal.Zero
	if body.BaseCost != "" {
		baseCost, err = decimal.NewFromString(body.BaseCost)
		if err != nil {
			writeError(w, http.StatusBadRequest, "invalid baseCost")
			return
		}
	}

	p := &product.Product{
		MID:         body.MID,
		Merchant:    body.Merchant,
		ProductCode: body.ProductCode,
		ProductName: body.ProductName,
		Category:    body.Category,
		BasePrice:   basePrice,
		BaseCost:    baseCost,
	}

	ctx, cancel := context.WithTimeout(r.Context(), 3*time.Second)
	defer cancel()

	if err := h.repo.Create(ctx, p); err != nil {
		writeError(w, http.StatusInternalServerError, "failed to create product")
		return
	}

	writeJSON(w, http.StatusCreated, p)
}

func (h *ProductHandler) Get(w http.ResponseWriter, r *http.Request) {
	mid, err := strconv.Atoi(chi.URLParam(r, "mid"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid mid")
		return
	}
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid id")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 3*time.Second)
	defer cancel()

	p, err := h.repo.GetByID(ctx, mid, id)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to load product")
		return
	}
	if p == nil {
		writeError(w, http.StatusNotFound, "product not found")
		return
	}

	writeJSON(w, http.StatusOK, p)
}

func (h *ProductHandler) List(w http.ResponseWriter, r *http.Request) {
	mid, limit, offset, ok := listParams(w, r)
	if !ok {
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 3*time.Second)
	defer cancel()

	products, err := h.repo.List(ctx, mid, limit, offset)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to list products")
		return
	}
	total, err := h.repo.Count(ctx, mid)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to count products")
		return
	}

	if products == nil {
		products = []product.Product{}
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"products": products,
		"total":    total,
	})
}
