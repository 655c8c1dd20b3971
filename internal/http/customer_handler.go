package http

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/commercerack/commercerack-go/internal/auth"
	"github.com/commercerack/commercerack-go/internal/customer"
)

type CustomerHandler struct {
	repo      customer.Repository
	jwtSecret string
}

func NewCustomerHandler(repo customer.Repository, jwtSecret string) *CustomerHandler {
	return &CustomerHandler{repo: repo, jwtSecret: jwtSecret}
}

func (h *CustomerHandler) Create(w http.ResponseWriter, r *http.Request) {
	var body struct {
		MID       int    `json:"mid"`
		Email     string `json:"email"`
		FirstName string `json:"firstname"`
		LastName  string `json:"lastname"`
		Password  string `json:"password"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeError(w, http.StatusBadRequest, "invalid json")
		return
	}
	if body.Email == "" {
		writeError(w, http.StatusBadRequest, "missing email")
		return
	}

	c := &customer.Customer{
		MID:       body.MID,
		Email:     body.Email,
		FirstName: body.FirstName,
		LastName:  body.LastName,
	}
	if body.Password != "" {
		hash, err := customer.HashPassword(body.Password)
		if err != nil {
			writeError(w, http.StatusInternalServerError, "failed to hash password")
			return
		}
		c.PassHash = hash
	}

	ctx, cancel := context.WithTimeout(r.Context(), 3*time.Second)
	defer cancel()

	if err := h.repo.Create(ctx, c); err != nil {
		writeError(w, http.StatusInternalServerError, "failed to create customer")
		return
	}

	writeJSON(w, http.StatusCreated, c)
}

func (h *CustomerHandler) Get(w http.ResponseWriter, r *http.Request) {
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

	c, err := h.repo.GetByID(ctx, mid, id)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to load customer")
		return
	}
	if c == nil {
		writeError(w, http.StatusNotFound, "customer not found")
		return
	}

	writeJSON(w, http.StatusOK, c)
}

func (h *CustomerHandler) List(w http.ResponseWriter, r *http.Request) {
	mid, limit, offset, ok := listParams(w, r)
	if !ok {
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 3*time.Second)
	defer cancel()

	customers, err := h.repo.List(ctx, mid, limit, offset)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to list customers")
		return
	}
	total, err := h.repo.Count(ctx, mid)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to count customers")
		return
	}

	if customers == nil {
		customers = []customer.Customer{}
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"customers": customers,
		"total":     total,
	})
}

func (h *CustomerHandler) Login(w http.ResponseWriter, r *http.Request) {
	var body struct {
		MID      int    `json:"mid"`
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeError(w, http.StatusBadRequest, "invalid json")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 3*time.Second)
	defer cancel()

	c, err := h.repo.FindByEmail(ctx, body.MID, body.Email)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to load customer")
		return
	}
	// Same response for unknown email and wrong password.
	if c == nil || !c.CheckPassword(body.Password) {
		writeError(w, http.StatusUnauthorized, "invalid credentials")
		return
	}

	token, err := auth.IssueToken(h.jwtSecret, c.ID, c.MID)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to issue token")
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"token":    token,
		"customer": c,
	})
}

// listParams reads the shared mid/limit/offset query parameters. On a
// bad value it writes a 400 and reports false.
func listParams(w http.ResponseWriter, r *http.Request) (mid, limit, offset int, ok bool) {
	q := r.URL.Query()

	mid, err := strconv.Atoi(q.Get("mid"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid mid")
		return 0, 0, 0, false
	}

	limit = 50
	if v := q.Get("limit"); v != "" {
		limit, err = strconv.Atoi(v)
		if err != nil || limit < 1 {
			writeError(w, http.StatusBadRequest, "invalid limit")
			return 0, 0, 0, false
		}
	}

	offset = 0
	if v := q.Get("offset"); v != "" {
		offset, err = strconv.Atoi(v)
		if err != nil || offset < 0 {
			writeError(w, http.StatusBadRequest, "invalid offset")
			return 0, 0, 0, false
		}
	}

	return mid, limit, offset, true
}
