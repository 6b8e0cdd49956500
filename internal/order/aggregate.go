// Package order builds persisted orders out of a client's cart:
// validates each line, snapshots catalog prices, computes the total and
// decides whether the order maps to exactly one supplier.
package order

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/jcanett1/Mar-de-Cortez/internal/model"
	"github.com/jcanett1/Mar-de-Cortez/internal/pricing"
)

// ProductLookup resolves catalog items referenced by order lines.
type ProductLookup interface {
	Product(ctx context.Context, id string) (*model.Product, error)
}

// AccountLookup resolves the supplier account for the display-name
// snapshot on single-supplier orders.
type AccountLookup interface {
	Account(ctx context.Context, id string) (*model.Account, error)
}

// LineRequest is one requested position, before resolution. Custom
// lines carry a free-form name and description; catalog lines carry a
// product reference.
type LineRequest struct {
	ProductID   string `json:"product_id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Quantity    int    `json:"quantity"`
	ImageURL    string `json:"image_url"`
	Custom      bool   `json:"is_custom"`
}

// ErrLineNotFound is returned when a referenced catalog item is absent.
var ErrLineNotFound = errors.New("line item not found")

// Build resolves the requested lines into a ready-to-persist order for
// the client. Prices are snapshotted once per line at resolution time;
// later catalog changes never affect the order. The supplier is set
// only when all lines are catalog lines of one single supplier; any
// custom line or second supplier leaves the order unassigned.
func Build(ctx context.Context, products ProductLookup, accounts AccountLookup, client *model.Account, reqs []LineRequest, notes string) (*model.Order, error) {
	if client == nil || client.Role != model.RoleClient {
		return nil, fmt.Errorf("orders can only be created by clients")
	}
	if len(reqs) == 0 {
		return nil, fmt.Errorf("order requires at least one line item")
	}

	var (
		lines       []model.OrderLine
		total       float64
		supplierIDs = map[string]bool{}
		hasCustom   bool
	)

	for i, req := range reqs {
		line, err := resolveLine(ctx, products, req)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", i+1, err)
		}

		if line.Kind == model.LineCustom {
			hasCustom = true
		} else {
			supplierIDs[line.SupplierID] = true
			total += line.Subtotal()
		}
		lines = append(lines, *line)
	}

	id := uuid.NewString()
	o := &model.Order{
		ID:          id,
		OrderNumber: orderNumber(id, time.Now().UTC()),
		ClientID:    client.ID,
		ClientName:  client.Name,
		Lines:       lines,
		Total:       pricing.RoundCents(total),
		Status:      model.StatusPending,
		Notes:       notes,
		RequestedBy: client.Name,
	}

	if len(supplierIDs) == 1 && !hasCustom {
		for sid := range supplierIDs {
			o.SupplierID = sid
		}
		if supplier, err := accounts.Account(ctx, o.SupplierID); err != nil {
			return nil, fmt.Errorf("resolving supplier: %w", err)
		} else if supplier != nil {
			o.SupplierName = supplier.Name
		}
	}

	return o, nil
}

func resolveLine(ctx context.Context, products ProductLookup, req LineRequest) (*model.OrderLine, error) {
	if req.Quantity < 1 {
		return nil, fmt.Errorf("quantity must be at least 1")
	}

	if req.Custom {
		line := model.OrderLine{
			Kind:        model.LineCustom,
			Name:        req.Name,
			Description: req.Description,
			Quantity:    req.Quantity,
			ImageURL:    req.ImageURL,
		}
		if err := line.Validate(); err != nil {
			return nil, err
		}
		return &line, nil
	}

	if req.ProductID == "" {
		return nil, fmt.Errorf("catalog line requires a product id")
	}

	product, err := products.Product(ctx, req.ProductID)
	if err != nil {
		return nil, fmt.Errorf("resolving product: %w", err)
	}
	if product == nil {
		return nil, fmt.Errorf("product %s: %w", req.ProductID, ErrLineNotFound)
	}

	return &model.OrderLine{
		Kind:       model.LineCatalog,
		ProductID:  product.ID,
		Name:       product.Name,
		Quantity:   req.Quantity,
		UnitPrice:  product.Price,
		SupplierID: product.SupplierID,
	}, nil
}

// orderNumber formats a human-facing reference: the UTC date plus the
// first 8 characters of the order id, uppercased.
func orderNumber(id string, now time.Time) string {
	return fmt.Sprintf("ORD-%s-%s", now.Format("20060102"), strings.ToUpper(id[:8]))
}
