package api

import (
	"database/sql"
	"net/http"

	"github.com/jcanett1/Mar-de-Cortez/internal/model"
	"github.com/jcanett1/Mar-de-Cortez/internal/store"
)

// NotificationsHandler serves each account's own notifications.
type NotificationsHandler struct {
	DB *sql.DB
}

// List handles GET /api/notifications.
func (h *NotificationsHandler) List(w http.ResponseWriter, r *http.Request) {
	account := CurrentAccount(r.Context())

	notifications, err := store.ListNotifications(r.Context(), h.DB, account.ID)
	if err != nil {
		jsonError(w, http.StatusInternalServerError, "failed to list notifications")
		return
	}
	if notifications == nil {
		notifications = []model.Notification{}
	}
	jsonResponse(w, http.StatusOK, notifications)
}

// MarkRead handles PUT /api/notifications/{id}/read. The update is
// scoped to the owner, so another account's notification reads as
// missing rather than forbidden.
func (h *NotificationsHandler) MarkRead(w http.ResponseWriter, r *http.Request) {
	account := CurrentAccount(r.Context())

	ok, err := store.MarkNotificationRead(r.Context(), h.DB, r.PathValue("id"), account.ID)
	if err != nil {
		jsonError(w, http.StatusInternalServerError, "failed to mark notification read")
		return
	}
	if !ok {
		jsonError(w, http.StatusNotFound, "notification not found")
		return
	}
	jsonResponse(w, http.StatusOK, map[string]string{"message": "notification marked read"})
}
