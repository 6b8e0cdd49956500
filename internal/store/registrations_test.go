package store

import (
	"context"
	"errors"
	"testing"

	"github.com/jcanett1/Mar-de-Cortez/internal/db"
	"github.com/jcanett1/Mar-de-Cortez/internal/model"
)

func TestCreateAndListRegistrationRequests(t *testing.T) {
	database := db.NewTestDB(t)
	ctx := context.Background()

	created, err := CreateRegistrationRequest(ctx, database, "La Sirena", "Carlos", "+52 612 000 0000", "carlos@example.com")
	if err != nil {
		t.Fatalf("CreateRegistrationRequest: %v", err)
	}
	if created.Status != model.RequestPending {
		t.Errorf("expected pending status, got %q", created.Status)
	}

	pending, _ := ListRegistrationRequests(ctx, database, model.RequestPending)
	if len(pending) != 1 {
		t.Errorf("expected 1 pending request, got %d", len(pending))
	}

	approved, _ := ListRegistrationRequests(ctx, database, model.RequestApproved)
	if len(approved) != 0 {
		t.Errorf("expected 0 approved requests, got %d", len(approved))
	}
}

func TestHasPendingRegistrationRequest(t *testing.T) {
	database := db.NewTestDB(t)
	ctx := context.Background()

	pending, _ := HasPendingRegistrationRequest(ctx, database, "nobody@example.com")
	if pending {
		t.Error("expected no pending request")
	}

	created, _ := CreateRegistrationRequest(ctx, database, "Boat", "Captain", "123", "captain@example.com")

	pending, _ = HasPendingRegistrationRequest(ctx, database, "captain@example.com")
	if !pending {
		t.Error("expected pending request")
	}

	ProcessRegistrationRequest(ctx, database, created.ID, model.RequestRejected, "admin-id")

	pending, _ = HasPendingRegistrationRequest(ctx, database, "captain@example.com")
	if pending {
		t.Error("processed request must not count as pending")
	}
}

func TestProcessRegistrationRequestOneShot(t *testing.T) {
	database := db.NewTestDB(t)
	ctx := context.Background()

	created, _ := CreateRegistrationRequest(ctx, database, "Boat", "Captain", "123", "captain@example.com")

	if err := ProcessRegistrationRequest(ctx, database, created.ID, model.RequestApproved, "admin-id"); err != nil {
		t.Fatalf("ProcessRegistrationRequest: %v", err)
	}

	got, _ := GetRegistrationRequest(ctx, database, created.ID)
	if got.Status != model.RequestApproved {
		t.Errorf("expected approved, got %q", got.Status)
	}
	if got.ProcessedBy != "admin-id" || got.ProcessedAt == nil {
		t.Errorf("processing metadata missing: %+v", got)
	}

	// Second transition must fail, in either direction.
	err := ProcessRegistrationRequest(ctx, database, created.ID, model.RequestRejected, "admin-id")
	if !errors.Is(err, ErrAlreadyProcessed) {
		t.Errorf("expected ErrAlreadyProcessed, got %v", err)
	}
}
