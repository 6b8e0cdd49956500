package store

import (
	"context"
	"testing"

	"github.com/jcanett1/Mar-de-Cortez/internal/db"
	"github.com/jcanett1/Mar-de-Cortez/internal/model"
)

func TestGetStatsEmpty(t *testing.T) {
	database := db.NewTestDB(t)

	stats, err := GetStats(context.Background(), database)
	if err != nil {
		t.Fatalf("GetStats: %v", err)
	}
	if stats.TotalUsers != 0 || stats.TotalOrders != 0 || stats.TotalRevenue != 0 {
		t.Errorf("expected zeroed stats, got %+v", stats)
	}
}

func TestGetStatsRevenueCountsOnlyCompleted(t *testing.T) {
	database := db.NewTestDB(t)
	ctx := context.Background()

	client := createTestClient(t, database, "client@example.com")
	supplier := createTestSupplier(t, database, "sup@example.com")

	completed := testOrder(client, supplier.ID)
	completed.Total = 150
	CreateOrder(ctx, database, completed)
	UpdateOrderStatus(ctx, database, completed.ID, model.StatusReceived, "")
	UpdateOrderStatus(ctx, database, completed.ID, model.StatusInProgress, "")
	UpdateOrderStatus(ctx, database, completed.ID, model.StatusCompleted, "")

	open := testOrder(client, "")
	open.Total = 999
	CreateOrder(ctx, database, open)

	CreateRegistrationRequest(ctx, database, "Boat", "Captain", "123", "captain@example.com")

	stats, err := GetStats(ctx, database)
	if err != nil {
		t.Fatalf("GetStats: %v", err)
	}
	if stats.TotalUsers != 2 || stats.TotalClients != 1 || stats.TotalSuppliers != 1 {
		t.Errorf("account counts wrong: %+v", stats)
	}
	if stats.TotalOrders != 2 {
		t.Errorf("expected 2 orders, got %d", stats.TotalOrders)
	}
	if stats.PendingRequests != 1 {
		t.Errorf("expected 1 pending request, got %d", stats.PendingRequests)
	}
	if stats.TotalRevenue != 150 {
		t.Errorf("revenue must count only completed orders, got %v", stats.TotalRevenue)
	}
}
