package api

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/jcanett1/Mar-de-Cortez/internal/model"
	"github.com/jcanett1/Mar-de-Cortez/internal/order"
	"github.com/jcanett1/Mar-de-Cortez/internal/store"
)

// OrdersHandler handles order endpoints.
type OrdersHandler struct {
	DB *sql.DB
}

type createOrderRequest struct {
	Lines []order.LineRequest `json:"lines"`
	Notes string              `json:"notes"`
}

type updateOrderStatusRequest struct {
	Status     string `json:"status"`
	AssignedTo string `json:"assigned_to"`
}

// storeProducts adapts the product table to the aggregator's lookup.
type storeProducts struct{ db *sql.DB }

func (s storeProducts) Product(ctx context.Context, id string) (*model.Product, error) {
	return store.GetProduct(ctx, s.db, id)
}

// storeAccounts adapts the accounts table to the aggregator's lookup.
type storeAccounts struct{ db *sql.DB }

func (s storeAccounts) Account(ctx context.Context, id string) (*model.Account, error) {
	return store.GetAccount(ctx, s.db, id)
}

// canSeeOrder reports whether the account may read the order: admins
// see everything, clients their own orders, suppliers orders resolved
// to them.
func canSeeOrder(account *model.Account, o *model.Order) bool {
	switch account.Role {
	case model.RoleAdmin:
		return true
	case model.RoleClient:
		return o.ClientID == account.ID
	case model.RoleSupplier:
		return o.SupplierID == account.ID
	}
	return false
}

// List handles GET /api/orders, scoped by the caller's role.
func (h *OrdersHandler) List(w http.ResponseWriter, r *http.Request) {
	account := CurrentAccount(r.Context())

	var clientID, supplierID string
	switch account.Role {
	case model.RoleClient:
		clientID = account.ID
	case model.RoleSupplier:
		supplierID = account.ID
	}

	orders, err := store.ListOrders(r.Context(), h.DB, clientID, supplierID)
	if err != nil {
		jsonError(w, http.StatusInternalServerError, "failed to list orders")
		return
	}
	if orders == nil {
		orders = []model.Order{}
	}
	jsonResponse(w, http.StatusOK, orders)
}

// Create handles POST /api/orders. Clients only; the supplier of a
// single-supplier order is notified after the order persists.
func (h *OrdersHandler) Create(w http.ResponseWriter, r *http.Request) {
	account := CurrentAccount(r.Context())

	var req createOrderRequest
	if err := decodeJSON(r, &req); err != nil {
		jsonError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	built, err := order.Build(r.Context(), storeProducts{h.DB}, storeAccounts{h.DB}, account, req.Lines, req.Notes)
	if err != nil {
		if errors.Is(err, order.ErrLineNotFound) {
			jsonError(w, http.StatusNotFound, err.Error())
			return
		}
		jsonError(w, http.StatusBadRequest, err.Error())
		return
	}

	created, err := store.CreateOrder(r.Context(), h.DB, built)
	if err != nil {
		jsonError(w, http.StatusInternalServerError, "failed to create order")
		return
	}

	// Best effort: a failed notification never fails the order.
	if created.SupplierID != "" {
		message := fmt.Sprintf("New order %s from %s", created.OrderNumber, created.ClientName)
		if _, err := store.EmitNotification(r.Context(), h.DB, created.SupplierID, message); err != nil {
			slog.Warn("notification not delivered", "order", created.OrderNumber, "error", err)
		}
	}

	slog.Info("order created", "order", created.OrderNumber, "client", created.ClientName, "total", created.Total)
	jsonResponse(w, http.StatusCreated, created)
}

// Get handles GET /api/orders/{id}.
func (h *OrdersHandler) Get(w http.ResponseWriter, r *http.Request) {
	account := CurrentAccount(r.Context())

	o, err := store.GetOrder(r.Context(), h.DB, r.PathValue("id"))
	if err != nil {
		jsonError(w, http.StatusInternalServerError, "failed to get order")
		return
	}
	if o == nil {
		jsonError(w, http.StatusNotFound, "order not found")
		return
	}
	if !canSeeOrder(account, o) {
		jsonError(w, http.StatusForbidden, "not your order")
		return
	}
	jsonResponse(w, http.StatusOK, o)
}

// UpdateStatus handles PUT /api/orders/{id}/status. Only forward
// transitions are accepted; the client is notified of every change.
func (h *OrdersHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	account := CurrentAccount(r.Context())

	o, err := store.GetOrder(r.Context(), h.DB, r.PathValue("id"))
	if err != nil {
		jsonError(w, http.StatusInternalServerError, "failed to get order")
		return
	}
	if o == nil {
		jsonError(w, http.StatusNotFound, "order not found")
		return
	}
	if account.Role != model.RoleAdmin && o.SupplierID != account.ID {
		jsonError(w, http.StatusForbidden, "not your order")
		return
	}

	var req updateOrderStatusRequest
	if err := decodeJSON(r, &req); err != nil {
		jsonError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if !model.ValidStatus(req.Status) {
		jsonError(w, http.StatusBadRequest, "invalid status")
		return
	}
	if !model.CanTransition(o.Status, req.Status) {
		jsonError(w, http.StatusConflict, fmt.Sprintf("cannot transition from %s to %s", o.Status, req.Status))
		return
	}

	if err := store.UpdateOrderStatus(r.Context(), h.DB, o.ID, req.Status, req.AssignedTo); err != nil {
		jsonError(w, http.StatusInternalServerError, "failed to update order status")
		return
	}

	message := fmt.Sprintf("Order %s is now %s", o.OrderNumber, req.Status)
	if _, err := store.EmitNotification(r.Context(), h.DB, o.ClientID, message); err != nil {
		slog.Warn("notification not delivered", "order", o.OrderNumber, "error", err)
	}

	slog.Info("order status updated", "order", o.OrderNumber, "from", o.Status, "to", req.Status)
	updated, err := store.GetOrder(r.Context(), h.DB, o.ID)
	if err != nil {
		jsonError(w, http.StatusInternalServerError, "failed to get order")
		return
	}
	jsonResponse(w, http.StatusOK, updated)
}
