package order

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/jcanett1/Mar-de-Cortez/internal/model"
)

type fakeProducts map[string]*model.Product

func (f fakeProducts) Product(_ context.Context, id string) (*model.Product, error) {
	return f[id], nil
}

type fakeAccounts map[string]*model.Account

func (f fakeAccounts) Account(_ context.Context, id string) (*model.Account, error) {
	return f[id], nil
}

var testClient = &model.Account{ID: "c1", Name: "Capitana Norte", Role: model.RoleClient}

func testCatalog() (fakeProducts, fakeAccounts) {
	products := fakeProducts{
		"p1": {ID: "p1", Name: "Rope 50m", Price: 139.20, SupplierID: "s1"},
		"p2": {ID: "p2", Name: "Anchor", Price: 69.60, SupplierID: "s1"},
		"p3": {ID: "p3", Name: "Diesel filter", Price: 25.00, SupplierID: "s2"},
	}
	accounts := fakeAccounts{
		"s1": {ID: "s1", Name: "Marina Supply Co", Role: model.RoleSupplier},
		"s2": {ID: "s2", Name: "Puerto Parts", Role: model.RoleSupplier},
	}
	return products, accounts
}

func TestBuildSingleSupplier(t *testing.T) {
	products, accounts := testCatalog()

	o, err := Build(context.Background(), products, accounts, testClient, []LineRequest{
		{ProductID: "p1", Quantity: 2},
		{ProductID: "p2", Quantity: 1},
	}, "dockside delivery")
	if err != nil {
		t.Fatalf("Build: %v", err)
	}

	// 2*139.20 + 1*69.60 = 348.00
	if o.Total != 348.00 {
		t.Errorf("expected total 348.00, got %v", o.Total)
	}
	if o.SupplierID != "s1" {
		t.Errorf("expected supplier s1, got %q", o.SupplierID)
	}
	if o.SupplierName != "Marina Supply Co" {
		t.Errorf("expected supplier name snapshot, got %q", o.SupplierName)
	}
	if o.Status != model.StatusPending {
		t.Errorf("expected pending status, got %q", o.Status)
	}
	if o.Notes != "dockside delivery" {
		t.Errorf("notes not carried: %q", o.Notes)
	}
}

func TestBuildMultiSupplierUnassigned(t *testing.T) {
	products, accounts := testCatalog()

	o, err := Build(context.Background(), products, accounts, testClient, []LineRequest{
		{ProductID: "p1", Quantity: 1},
		{ProductID: "p3", Quantity: 1},
	}, "")
	if err != nil {
		t.Fatalf("Build: %v", err)
	}

	if o.SupplierID != "" || o.SupplierName != "" {
		t.Errorf("expected unassigned order, got supplier %q/%q", o.SupplierID, o.SupplierName)
	}
	if o.Total != 164.20 {
		t.Errorf("expected total 164.20, got %v", o.Total)
	}
}

func TestBuildCustomLineBlocksAssignment(t *testing.T) {
	products, accounts := testCatalog()

	// One supplier's catalog item plus a custom line: still unassigned.
	o, err := Build(context.Background(), products, accounts, testClient, []LineRequest{
		{ProductID: "p1", Quantity: 1},
		{Custom: true, Name: "Hand-carved tiller", Quantity: 1},
	}, "")
	if err != nil {
		t.Fatalf("Build: %v", err)
	}

	if o.SupplierID != "" {
		t.Errorf("expected unassigned order, got supplier %q", o.SupplierID)
	}
	// Custom lines contribute zero to the total.
	if o.Total != 139.20 {
		t.Errorf("expected total 139.20, got %v", o.Total)
	}
}

func TestBuildCustomOnly(t *testing.T) {
	products, accounts := testCatalog()

	o, err := Build(context.Background(), products, accounts, testClient, []LineRequest{
		{Custom: true, Name: "Custom sail", Description: "12m gaff rig", Quantity: 1},
	}, "")
	if err != nil {
		t.Fatalf("Build: %v", err)
	}

	if o.Total != 0 {
		t.Errorf("expected total 0, got %v", o.Total)
	}
	if o.SupplierID != "" {
		t.Errorf("expected no supplier, got %q", o.SupplierID)
	}
	if len(o.Lines) != 1 || o.Lines[0].Kind != model.LineCustom {
		t.Fatalf("expected one custom line, got %+v", o.Lines)
	}
	if o.Lines[0].UnitPrice != 0 {
		t.Errorf("custom line must not carry a price")
	}
}

func TestBuildSnapshotsPrice(t *testing.T) {
	products, accounts := testCatalog()

	o, err := Build(context.Background(), products, accounts, testClient, []LineRequest{
		{ProductID: "p3", Quantity: 4},
	}, "")
	if err != nil {
		t.Fatalf("Build: %v", err)
	}

	// Mutating the catalog afterwards must not change the order.
	products["p3"].Price = 999
	if o.Lines[0].UnitPrice != 25.00 {
		t.Errorf("expected snapshotted unit price 25.00, got %v", o.Lines[0].UnitPrice)
	}
	if o.Total != 100.00 {
		t.Errorf("expected total 100.00, got %v", o.Total)
	}
}

func TestBuildMissingProduct(t *testing.T) {
	products, accounts := testCatalog()

	_, err := Build(context.Background(), products, accounts, testClient, []LineRequest{
		{ProductID: "nope", Quantity: 1},
	}, "")
	if !errors.Is(err, ErrLineNotFound) {
		t.Errorf("expected ErrLineNotFound, got %v", err)
	}
}

func TestBuildValidation(t *testing.T) {
	products, accounts := testCatalog()
	ctx := context.Background()

	if _, err := Build(ctx, products, accounts, testClient, nil, ""); err == nil {
		t.Error("expected error for empty cart")
	}

	if _, err := Build(ctx, products, accounts, testClient, []LineRequest{
		{Custom: true, Quantity: 1},
	}, ""); err == nil || !strings.Contains(err.Error(), "name") {
		t.Errorf("expected custom-name error, got %v", err)
	}

	if _, err := Build(ctx, products, accounts, testClient, []LineRequest{
		{ProductID: "p1", Quantity: 0},
	}, ""); err == nil || !strings.Contains(err.Error(), "quantity") {
		t.Errorf("expected quantity error, got %v", err)
	}

	supplier := &model.Account{ID: "s1", Role: model.RoleSupplier}
	if _, err := Build(ctx, products, accounts, supplier, []LineRequest{
		{ProductID: "p1", Quantity: 1},
	}, ""); err == nil {
		t.Error("expected error for non-client caller")
	}
}

func TestOrderNumberFormat(t *testing.T) {
	products, accounts := testCatalog()

	o, err := Build(context.Background(), products, accounts, testClient, []LineRequest{
		{ProductID: "p1", Quantity: 1},
	}, "")
	if err != nil {
		t.Fatalf("Build: %v", err)
	}

	if !strings.HasPrefix(o.OrderNumber, "ORD-") {
		t.Errorf("unexpected order number %q", o.OrderNumber)
	}
	parts := strings.Split(o.OrderNumber, "-")
	if len(parts) != 3 || len(parts[1]) != 8 || len(parts[2]) != 8 {
		t.Errorf("unexpected order number shape %q", o.OrderNumber)
	}
	if parts[2] != strings.ToUpper(parts[2]) {
		t.Errorf("order number suffix not uppercased: %q", o.OrderNumber)
	}
}
