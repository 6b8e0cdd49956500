package api

import (
	"database/sql"
	"errors"
	"log/slog"
	"net/http"

	"golang.org/x/crypto/bcrypt"

	"github.com/jcanett1/Mar-de-Cortez/internal/model"
	"github.com/jcanett1/Mar-de-Cortez/internal/store"
)

// AdminHandler handles administrator-only endpoints: dashboard stats,
// account management, registration review and direct catalog edits.
type AdminHandler struct {
	DB *sql.DB
}

type createUserRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Name     string `json:"name"`
	Role     string `json:"role"`
	Company  string `json:"company"`
}

type updateUserRequest struct {
	Email    *string `json:"email"`
	Password *string `json:"password"`
	Name     *string `json:"name"`
	Company  *string `json:"company"`
}

type approveRequest struct {
	Password string `json:"password"`
}

type adminProductRequest struct {
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Category    string  `json:"category"`
	Price       float64 `json:"price"`
	SupplierID  string  `json:"supplier_id"`
	SKU         string  `json:"sku"`
	ImageURL    string  `json:"image_url"`
}

// Stats handles GET /api/admin/stats.
func (h *AdminHandler) Stats(w http.ResponseWriter, r *http.Request) {
	stats, err := store.GetStats(r.Context(), h.DB)
	if err != nil {
		jsonError(w, http.StatusInternalServerError, "failed to compute stats")
		return
	}
	jsonResponse(w, http.StatusOK, stats)
}

// ListUsers handles GET /api/admin/users.
func (h *AdminHandler) ListUsers(w http.ResponseWriter, r *http.Request) {
	role := r.URL.Query().Get("role")
	if role != "" && !model.ValidRole(role) {
		jsonError(w, http.StatusBadRequest, "invalid role")
		return
	}

	accounts, err := store.ListAccounts(r.Context(), h.DB, role)
	if err != nil {
		jsonError(w, http.StatusInternalServerError, "failed to list users")
		return
	}
	if accounts == nil {
		accounts = []model.Account{}
	}
	jsonResponse(w, http.StatusOK, accounts)
}

// CreateUser handles POST /api/admin/users. Unlike self-registration,
// an administrator may create accounts of any role.
func (h *AdminHandler) CreateUser(w http.ResponseWriter, r *http.Request) {
	var req createUserRequest
	if err := decodeJSON(r, &req); err != nil {
		jsonError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if req.Name == "" {
		jsonError(w, http.StatusBadRequest, "name required")
		return
	}
	if err := model.ValidateEmail(req.Email); err != nil {
		jsonError(w, http.StatusBadRequest, err.Error())
		return
	}
	if err := model.ValidatePassword(req.Password); err != nil {
		jsonError(w, http.StatusBadRequest, err.Error())
		return
	}
	if !model.ValidRole(req.Role) {
		jsonError(w, http.StatusBadRequest, "invalid role")
		return
	}

	existing, err := store.GetAccountByEmail(r.Context(), h.DB, req.Email)
	if err != nil {
		jsonError(w, http.StatusInternalServerError, "internal error")
		return
	}
	if existing != nil {
		jsonError(w, http.StatusConflict, "email already registered")
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		jsonError(w, http.StatusInternalServerError, "failed to hash password")
		return
	}

	account, err := store.CreateAccount(r.Context(), h.DB, req.Email, string(hash), req.Name, req.Role, req.Company)
	if err != nil {
		jsonError(w, http.StatusInternalServerError, "failed to create user")
		return
	}

	slog.Info("user created by admin", "email", account.Email, "role", account.Role)
	jsonResponse(w, http.StatusCreated, account)
}

// UpdateUser handles PUT /api/admin/users/{id}. Only the provided
// fields change; the role never does.
func (h *AdminHandler) UpdateUser(w http.ResponseWriter, r *http.Request) {
	account, err := store.GetAccount(r.Context(), h.DB, r.PathValue("id"))
	if err != nil {
		jsonError(w, http.StatusInternalServerError, "internal error")
		return
	}
	if account == nil {
		jsonError(w, http.StatusNotFound, "user not found")
		return
	}

	var req updateUserRequest
	if err := decodeJSON(r, &req); err != nil {
		jsonError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if req.Email != nil {
		if err := model.ValidateEmail(*req.Email); err != nil {
			jsonError(w, http.StatusBadRequest, err.Error())
			return
		}
		other, err := store.GetAccountByEmail(r.Context(), h.DB, *req.Email)
		if err != nil {
			jsonError(w, http.StatusInternalServerError, "internal error")
			return
		}
		if other != nil && other.ID != account.ID {
			jsonError(w, http.StatusConflict, "email already registered")
			return
		}
	}

	var passwordHash *string
	if req.Password != nil {
		if err := model.ValidatePassword(*req.Password); err != nil {
			jsonError(w, http.StatusBadRequest, err.Error())
			return
		}
		hash, err := bcrypt.GenerateFromPassword([]byte(*req.Password), bcrypt.DefaultCost)
		if err != nil {
			jsonError(w, http.StatusInternalServerError, "failed to hash password")
			return
		}
		s := string(hash)
		passwordHash = &s
	}

	if err := store.UpdateAccount(r.Context(), h.DB, account.ID, req.Email, passwordHash, req.Name, req.Company); err != nil {
		jsonError(w, http.StatusInternalServerError, "failed to update user")
		return
	}

	updated, err := store.GetAccount(r.Context(), h.DB, account.ID)
	if err != nil {
		jsonError(w, http.StatusInternalServerError, "internal error")
		return
	}
	jsonResponse(w, http.StatusOK, updated)
}

// DeleteUser handles DELETE /api/admin/users/{id}. Administrator
// accounts cannot be deleted through the API.
func (h *AdminHandler) DeleteUser(w http.ResponseWriter, r *http.Request) {
	account, err := store.GetAccount(r.Context(), h.DB, r.PathValue("id"))
	if err != nil {
		jsonError(w, http.StatusInternalServerError, "internal error")
		return
	}
	if account == nil {
		jsonError(w, http.StatusNotFound, "user not found")
		return
	}
	if account.Role == model.RoleAdmin {
		jsonError(w, http.StatusForbidden, "admin accounts cannot be deleted")
		return
	}

	if err := store.DeleteAccount(r.Context(), h.DB, account.ID); err != nil {
		jsonError(w, http.StatusInternalServerError, "failed to delete user")
		return
	}

	slog.Info("user deleted by admin", "email", account.Email)
	jsonResponse(w, http.StatusOK, map[string]string{"message": "user deleted"})
}

// ListRegistrationRequests handles GET /api/admin/registration-requests.
func (h *AdminHandler) ListRegistrationRequests(w http.ResponseWriter, r *http.Request) {
	status := r.URL.Query().Get("status")
	requests, err := store.ListRegistrationRequests(r.Context(), h.DB, status)
	if err != nil {
		jsonError(w, http.StatusInternalServerError, "failed to list registration requests")
		return
	}
	if requests == nil {
		requests = []model.RegistrationRequest{}
	}
	jsonResponse(w, http.StatusOK, requests)
}

// ApproveRegistration handles POST /api/admin/registration-requests/{id}/approve.
// The request transitions out of pending exactly once; the transition
// guard makes the account creation single-shot as well.
func (h *AdminHandler) ApproveRegistration(w http.ResponseWriter, r *http.Request) {
	admin := CurrentAccount(r.Context())

	request, err := store.GetRegistrationRequest(r.Context(), h.DB, r.PathValue("id"))
	if err != nil {
		jsonError(w, http.StatusInternalServerError, "internal error")
		return
	}
	if request == nil {
		jsonError(w, http.StatusNotFound, "registration request not found")
		return
	}

	var req approveRequest
	if err := decodeJSON(r, &req); err != nil {
		jsonError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := model.ValidatePassword(req.Password); err != nil {
		jsonError(w, http.StatusBadRequest, err.Error())
		return
	}

	existing, err := store.GetAccountByEmail(r.Context(), h.DB, request.Email)
	if err != nil {
		jsonError(w, http.StatusInternalServerError, "internal error")
		return
	}
	if existing != nil {
		jsonError(w, http.StatusConflict, "email already registered")
		return
	}

	err = store.ProcessRegistrationRequest(r.Context(), h.DB, request.ID, model.RequestApproved, admin.ID)
	if errors.Is(err, store.ErrAlreadyProcessed) {
		jsonError(w, http.StatusConflict, "registration request already processed")
		return
	}
	if err != nil {
		jsonError(w, http.StatusInternalServerError, "failed to process registration request")
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		jsonError(w, http.StatusInternalServerError, "failed to hash password")
		return
	}

	account, err := store.CreateAccount(r.Context(), h.DB, request.Email, string(hash),
		request.CaptainName, model.RoleClient, request.BoatName)
	if err != nil {
		slog.Error("approved request but account creation failed", "request", request.ID, "error", err)
		jsonError(w, http.StatusInternalServerError, "failed to create account")
		return
	}

	if _, err := store.EmitNotification(r.Context(), h.DB, account.ID, "Your registration has been approved. Welcome aboard!"); err != nil {
		slog.Warn("notification not delivered", "account", account.ID, "error", err)
	}

	slog.Info("registration approved", "boat", request.BoatName, "email", request.Email, "by", admin.Email)
	jsonResponse(w, http.StatusCreated, account)
}

// RejectRegistration handles POST /api/admin/registration-requests/{id}/reject.
func (h *AdminHandler) RejectRegistration(w http.ResponseWriter, r *http.Request) {
	admin := CurrentAccount(r.Context())

	request, err := store.GetRegistrationRequest(r.Context(), h.DB, r.PathValue("id"))
	if err != nil {
		jsonError(w, http.StatusInternalServerError, "internal error")
		return
	}
	if request == nil {
		jsonError(w, http.StatusNotFound, "registration request not found")
		return
	}

	err = store.ProcessRegistrationRequest(r.Context(), h.DB, request.ID, model.RequestRejected, admin.ID)
	if errors.Is(err, store.ErrAlreadyProcessed) {
		jsonError(w, http.StatusConflict, "registration request already processed")
		return
	}
	if err != nil {
		jsonError(w, http.StatusInternalServerError, "failed to process registration request")
		return
	}

	slog.Info("registration rejected", "boat", request.BoatName, "email", request.Email, "by", admin.Email)
	updated, err := store.GetRegistrationRequest(r.Context(), h.DB, request.ID)
	if err != nil {
		jsonError(w, http.StatusInternalServerError, "internal error")
		return
	}
	jsonResponse(w, http.StatusOK, updated)
}

// ListOrders handles GET /api/admin/orders: every order, unscoped.
func (h *AdminHandler) ListOrders(w http.ResponseWriter, r *http.Request) {
	orders, err := store.ListOrders(r.Context(), h.DB, "", "")
	if err != nil {
		jsonError(w, http.StatusInternalServerError, "failed to list orders")
		return
	}
	if orders == nil {
		orders = []model.Order{}
	}
	jsonResponse(w, http.StatusOK, orders)
}

// CreateProduct handles POST /api/admin/products. Administrators set
// the final price directly; no pricing inputs are recorded.
func (h *AdminHandler) CreateProduct(w http.ResponseWriter, r *http.Request) {
	var req adminProductRequest
	if err := decodeJSON(r, &req); err != nil {
		jsonError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if req.Name == "" {
		jsonError(w, http.StatusBadRequest, "name required")
		return
	}
	if req.Price < 0 {
		jsonError(w, http.StatusBadRequest, "price must not be negative")
		return
	}

	supplier, err := store.GetAccount(r.Context(), h.DB, req.SupplierID)
	if err != nil {
		jsonError(w, http.StatusInternalServerError, "internal error")
		return
	}
	if supplier == nil || supplier.Role != model.RoleSupplier {
		jsonError(w, http.StatusBadRequest, "supplier_id must reference a supplier account")
		return
	}

	product, err := store.CreateProduct(r.Context(), h.DB, &model.Product{
		Name:         req.Name,
		Description:  req.Description,
		Category:     req.Category,
		Price:        req.Price,
		SupplierID:   supplier.ID,
		SupplierName: supplier.Name,
		SKU:          req.SKU,
		ImageURL:     req.ImageURL,
	})
	if err != nil {
		jsonError(w, http.StatusInternalServerError, "failed to create product")
		return
	}

	jsonResponse(w, http.StatusCreated, product)
}

// UpdateProduct handles PUT /api/admin/products/{id}. Like the admin
// create path, the final price is taken as given, so items without
// pricing inputs stay maintainable; any recorded inputs are cleared.
func (h *AdminHandler) UpdateProduct(w http.ResponseWriter, r *http.Request) {
	existing, err := store.GetProduct(r.Context(), h.DB, r.PathValue("id"))
	if err != nil {
		jsonError(w, http.StatusInternalServerError, "failed to get product")
		return
	}
	if existing == nil {
		jsonError(w, http.StatusNotFound, "product not found")
		return
	}

	var req adminProductRequest
	if err := decodeJSON(r, &req); err != nil {
		jsonError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if req.Name == "" {
		jsonError(w, http.StatusBadRequest, "name required")
		return
	}
	if req.Price < 0 {
		jsonError(w, http.StatusBadRequest, "price must not be negative")
		return
	}

	if err := store.UpdateProduct(r.Context(), h.DB, &model.Product{
		ID:           existing.ID,
		Name:         req.Name,
		Description:  req.Description,
		Category:     req.Category,
		Price:        req.Price,
		SupplierName: existing.SupplierName,
		SKU:          req.SKU,
		ImageURL:     req.ImageURL,
	}); err != nil {
		jsonError(w, http.StatusInternalServerError, "failed to update product")
		return
	}

	product, err := store.GetProduct(r.Context(), h.DB, existing.ID)
	if err != nil {
		jsonError(w, http.StatusInternalServerError, "failed to get product")
		return
	}
	jsonResponse(w, http.StatusOK, product)
}
