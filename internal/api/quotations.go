package api

import (
	"database/sql"
	"encoding/base64"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/jcanett1/Mar-de-Cortez/internal/model"
	"github.com/jcanett1/Mar-de-Cortez/internal/store"
)

// QuotationsHandler handles quotation uploads on orders. Uploaded
// documents are embedded as base64; quotations are append-only.
type QuotationsHandler struct {
	DB *sql.DB
}

// Upload handles POST /api/orders/{id}/quotations. Any supplier may
// quote an unassigned order; an assigned order accepts quotations only
// from its resolved supplier.
func (h *QuotationsHandler) Upload(w http.ResponseWriter, r *http.Request) {
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
	if account.Role == model.RoleSupplier && o.SupplierID != "" && o.SupplierID != account.ID {
		jsonError(w, http.StatusForbidden, "order is assigned to another supplier")
		return
	}

	// Limit to 10 MB.
	r.Body = http.MaxBytesReader(w, r.Body, 10<<20)

	if err := r.ParseMultipartForm(10 << 20); err != nil {
		jsonError(w, http.StatusBadRequest, "file too large or invalid multipart form")
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		jsonError(w, http.StatusBadRequest, "quotation file required")
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		jsonError(w, http.StatusInternalServerError, "failed to read file")
		return
	}

	q := &model.Quotation{
		OrderID:      o.ID,
		SupplierID:   account.ID,
		SupplierName: account.Name,
		FileName:     header.Filename,
		FileData:     base64.StdEncoding.EncodeToString(data),
		Notes:        r.FormValue("notes"),
	}
	if raw := r.FormValue("amount"); raw != "" {
		amount, err := strconv.ParseFloat(raw, 64)
		if err != nil || amount < 0 {
			jsonError(w, http.StatusBadRequest, "invalid amount")
			return
		}
		q.Amount = &amount
	}

	created, err := store.CreateQuotation(r.Context(), h.DB, q)
	if err != nil {
		jsonError(w, http.StatusInternalServerError, "failed to create quotation")
		return
	}

	message := fmt.Sprintf("New quotation for order %s from %s", o.OrderNumber, account.Name)
	if _, err := store.EmitNotification(r.Context(), h.DB, o.ClientID, message); err != nil {
		slog.Warn("notification not delivered", "order", o.OrderNumber, "error", err)
	}

	slog.Info("quotation uploaded", "order", o.OrderNumber, "supplier", account.Name)
	jsonResponse(w, http.StatusCreated, created)
}

// List handles GET /api/orders/{id}/quotations.
func (h *QuotationsHandler) List(w http.ResponseWriter, r *http.Request) {
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
	// Mirrors Upload: suppliers may look at unassigned orders they are
	// free to quote, but an assigned order is visible only to its parties.
	openToSupplier := account.Role == model.RoleSupplier && o.SupplierID == ""
	if !canSeeOrder(account, o) && !openToSupplier {
		jsonError(w, http.StatusForbidden, "not your order")
		return
	}

	quotations, err := store.ListQuotations(r.Context(), h.DB, o.ID)
	if err != nil {
		jsonError(w, http.StatusInternalServerError, "failed to list quotations")
		return
	}
	if quotations == nil {
		quotations = []model.Quotation{}
	}

	// Suppliers see only their own quotations on shared orders.
	if account.Role == model.RoleSupplier && o.SupplierID != account.ID {
		own := quotations[:0]
		for _, q := range quotations {
			if q.SupplierID == account.ID {
				own = append(own, q)
			}
		}
		quotations = own
	}

	jsonResponse(w, http.StatusOK, quotations)
}
