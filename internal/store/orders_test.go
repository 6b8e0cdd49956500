package store

import (
	"context"
	"database/sql"
	"testing"

	"github.com/google/uuid"

	"github.com/jcanett1/Mar-de-Cortez/internal/db"
	"github.com/jcanett1/Mar-de-Cortez/internal/model"
)

func createTestClient(t *testing.T, database *sql.DB, email string) *model.Account {
	t.Helper()
	account, err := CreateAccount(context.Background(), database, email, "hash", "Client", model.RoleClient, "")
	if err != nil {
		t.Fatalf("creating test client: %v", err)
	}
	return account
}

func testOrder(client *model.Account, supplierID string) *model.Order {
	id := uuid.NewString()
	o := &model.Order{
		ID:          id,
		OrderNumber: "ORD-20260901-TESTTEST",
		ClientID:    client.ID,
		ClientName:  client.Name,
		Lines: []model.OrderLine{
			{Kind: model.LineCatalog, ProductID: "p1", Name: "Rope", Quantity: 2, UnitPrice: 10, SupplierID: supplierID},
			{Kind: model.LineCustom, Name: "Custom sail", Quantity: 1},
		},
		Total:  20,
		Status: model.StatusPending,
		Notes:  "urgent",
	}
	if supplierID != "" {
		o.SupplierID = supplierID
		o.SupplierName = "Supplier"
	}
	return o
}

func TestCreateAndGetOrder(t *testing.T) {
	database := db.NewTestDB(t)
	ctx := context.Background()
	client := createTestClient(t, database, "client@example.com")

	created, err := CreateOrder(ctx, database, testOrder(client, ""))
	if err != nil {
		t.Fatalf("CreateOrder: %v", err)
	}

	got, err := GetOrder(ctx, database, created.ID)
	if err != nil {
		t.Fatalf("GetOrder: %v", err)
	}
	if len(got.Lines) != 2 {
		t.Fatalf("expected 2 lines after round trip, got %d", len(got.Lines))
	}
	if got.Lines[0].Kind != model.LineCatalog || got.Lines[1].Kind != model.LineCustom {
		t.Errorf("line kinds lost in round trip: %+v", got.Lines)
	}
	if got.Lines[0].UnitPrice != 10 {
		t.Errorf("unit price lost: %v", got.Lines[0].UnitPrice)
	}
	if got.Total != 20 {
		t.Errorf("expected total 20, got %v", got.Total)
	}
	if got.SupplierID != "" {
		t.Errorf("expected unassigned order, got supplier %q", got.SupplierID)
	}
}

func TestListOrdersScoping(t *testing.T) {
	database := db.NewTestDB(t)
	ctx := context.Background()
	c1 := createTestClient(t, database, "c1@example.com")
	c2 := createTestClient(t, database, "c2@example.com")
	supplier := createTestSupplier(t, database, "sup@example.com")

	CreateOrder(ctx, database, testOrder(c1, supplier.ID))
	CreateOrder(ctx, database, testOrder(c1, ""))
	CreateOrder(ctx, database, testOrder(c2, ""))

	all, _ := ListOrders(ctx, database, "", "")
	if len(all) != 3 {
		t.Errorf("expected 3 orders, got %d", len(all))
	}

	ofC1, _ := ListOrders(ctx, database, c1.ID, "")
	if len(ofC1) != 2 {
		t.Errorf("expected 2 orders for client, got %d", len(ofC1))
	}

	ofSupplier, _ := ListOrders(ctx, database, "", supplier.ID)
	if len(ofSupplier) != 1 {
		t.Errorf("expected 1 order for supplier, got %d", len(ofSupplier))
	}
}

func TestUpdateOrderStatus(t *testing.T) {
	database := db.NewTestDB(t)
	ctx := context.Background()
	client := createTestClient(t, database, "client@example.com")

	created, _ := CreateOrder(ctx, database, testOrder(client, ""))

	if err := UpdateOrderStatus(ctx, database, created.ID, model.StatusReceived, "Pedro"); err != nil {
		t.Fatalf("UpdateOrderStatus: %v", err)
	}

	got, _ := GetOrder(ctx, database, created.ID)
	if got.Status != model.StatusReceived {
		t.Errorf("expected status received, got %q", got.Status)
	}
	if got.AssignedTo != "Pedro" {
		t.Errorf("expected assignee, got %q", got.AssignedTo)
	}

	// Without an assignee the previous one is kept.
	if err := UpdateOrderStatus(ctx, database, created.ID, model.StatusInProgress, ""); err != nil {
		t.Fatalf("UpdateOrderStatus: %v", err)
	}
	got, _ = GetOrder(ctx, database, created.ID)
	if got.AssignedTo != "Pedro" {
		t.Errorf("assignee must survive status-only update, got %q", got.AssignedTo)
	}
}
