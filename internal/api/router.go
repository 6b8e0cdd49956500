package api

import (
	"database/sql"
	"net/http"

	"github.com/jcanett1/Mar-de-Cortez/internal/policy"
)

// NewRouter creates the API router with all endpoints registered.
func NewRouter(db *sql.DB, jwtSecret string) http.Handler {
	mux := http.NewServeMux()

	authHandler := &AuthHandler{DB: db, JWTSecret: jwtSecret}
	productsHandler := &ProductsHandler{DB: db}
	ordersHandler := &OrdersHandler{DB: db}
	quotationsHandler := &QuotationsHandler{DB: db}
	notificationsHandler := &NotificationsHandler{DB: db}
	categoriesHandler := &CategoriesHandler{DB: db}
	registrationsHandler := &RegistrationsHandler{DB: db}
	adminHandler := &AdminHandler{DB: db}

	authMW := AuthMiddleware(jwtSecret, db)
	handle := func(pattern string, op policy.Operation, fn http.HandlerFunc) {
		mux.Handle(pattern, authMW(Require(op)(fn)))
	}

	// Public.
	mux.HandleFunc("POST /api/auth/register", authHandler.Register)
	mux.HandleFunc("POST /api/auth/login", authHandler.Login)
	mux.HandleFunc("POST /api/registration-requests", registrationsHandler.Create)
	mux.HandleFunc("GET /api/categories", categoriesHandler.List)

	// Session.
	mux.Handle("GET /api/auth/me", authMW(http.HandlerFunc(authHandler.Me)))

	// Catalog.
	handle("GET /api/products", policy.OpReadProducts, productsHandler.List)
	handle("GET /api/products/{id}", policy.OpReadProducts, productsHandler.Get)
	handle("POST /api/products", policy.OpCreateProduct, productsHandler.Create)
	handle("PUT /api/products/{id}", policy.OpUpdateProduct, productsHandler.Update)
	handle("DELETE /api/products/{id}", policy.OpDeleteProduct, productsHandler.Delete)
	handle("PUT /api/products/{id}/image", policy.OpUpdateProduct, productsHandler.UploadImage)
	handle("GET /api/products/{id}/image", policy.OpReadProducts, productsHandler.GetImage)

	// Orders.
	handle("GET /api/orders", policy.OpReadOrder, ordersHandler.List)
	handle("POST /api/orders", policy.OpCreateOrder, ordersHandler.Create)
	handle("GET /api/orders/{id}", policy.OpReadOrder, ordersHandler.Get)
	handle("PUT /api/orders/{id}/status", policy.OpUpdateOrderStatus, ordersHandler.UpdateStatus)

	// Quotations.
	handle("POST /api/orders/{id}/quotations", policy.OpUploadQuotation, quotationsHandler.Upload)
	handle("GET /api/orders/{id}/quotations", policy.OpReadQuotations, quotationsHandler.List)

	// Notifications.
	handle("GET /api/notifications", policy.OpReadNotifications, notificationsHandler.List)
	handle("PUT /api/notifications/{id}/read", policy.OpReadNotifications, notificationsHandler.MarkRead)

	// Categories (writes).
	handle("POST /api/categories", policy.OpCreateCategory, categoriesHandler.Create)
	handle("DELETE /api/categories/{id}", policy.OpDeleteCategory, categoriesHandler.Delete)

	// Admin.
	handle("GET /api/admin/stats", policy.OpAdmin, adminHandler.Stats)
	handle("GET /api/admin/users", policy.OpAdmin, adminHandler.ListUsers)
	handle("POST /api/admin/users", policy.OpAdmin, adminHandler.CreateUser)
	handle("PUT /api/admin/users/{id}", policy.OpAdmin, adminHandler.UpdateUser)
	handle("DELETE /api/admin/users/{id}", policy.OpAdmin, adminHandler.DeleteUser)
	handle("GET /api/admin/registration-requests", policy.OpAdmin, adminHandler.ListRegistrationRequests)
	handle("POST /api/admin/registration-requests/{id}/approve", policy.OpAdmin, adminHandler.ApproveRegistration)
	handle("POST /api/admin/registration-requests/{id}/reject", policy.OpAdmin, adminHandler.RejectRegistration)
	handle("GET /api/admin/orders", policy.OpAdmin, adminHandler.ListOrders)
	handle("POST /api/admin/products", policy.OpAdmin, adminHandler.CreateProduct)
	handle("PUT /api/admin/products/{id}", policy.OpAdmin, adminHandler.UpdateProduct)

	return mux
}
