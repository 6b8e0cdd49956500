package api

import (
	"database/sql"
	"log/slog"
	"net/http"

	"github.com/jcanett1/Mar-de-Cortez/internal/model"
	"github.com/jcanett1/Mar-de-Cortez/internal/store"
)

// RegistrationsHandler handles the public boat onboarding submission.
// Review and approval live on the admin endpoints.
type RegistrationsHandler struct {
	DB *sql.DB
}

type createRegistrationRequest struct {
	BoatName    string `json:"boat_name"`
	CaptainName string `json:"captain_name"`
	Phone       string `json:"phone"`
	Email       string `json:"email"`
}

// Create handles POST /api/registration-requests. Rejected when the
// email already belongs to an account or to another pending request.
func (h *RegistrationsHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createRegistrationRequest
	if err := decodeJSON(r, &req); err != nil {
		jsonError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if req.BoatName == "" || req.CaptainName == "" || req.Phone == "" {
		jsonError(w, http.StatusBadRequest, "boat_name, captain_name and phone required")
		return
	}
	if err := model.ValidateEmail(req.Email); err != nil {
		jsonError(w, http.StatusBadRequest, err.Error())
		return
	}

	account, err := store.GetAccountByEmail(r.Context(), h.DB, req.Email)
	if err != nil {
		jsonError(w, http.StatusInternalServerError, "internal error")
		return
	}
	if account != nil {
		jsonError(w, http.StatusConflict, "email already registered")
		return
	}

	pending, err := store.HasPendingRegistrationRequest(r.Context(), h.DB, req.Email)
	if err != nil {
		jsonError(w, http.StatusInternalServerError, "internal error")
		return
	}
	if pending {
		jsonError(w, http.StatusConflict, "a request for this email is already pending")
		return
	}

	created, err := store.CreateRegistrationRequest(r.Context(), h.DB, req.BoatName, req.CaptainName, req.Phone, req.Email)
	if err != nil {
		jsonError(w, http.StatusInternalServerError, "failed to create registration request")
		return
	}

	slog.Info("registration request received", "boat", created.BoatName, "email", created.Email)
	jsonResponse(w, http.StatusCreated, created)
}
