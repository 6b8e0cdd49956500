// Package policy is the central role-based access table. Handlers ask
// whether a role may invoke an operation at all; resource-level
// ownership is checked afterwards, so a missing resource surfaces as
// 404 before ownership surfaces as 403.
package policy

import "github.com/jcanett1/Mar-de-Cortez/internal/model"

// Operation identifies an API capability.
type Operation string

const (
	OpCreateOrder       Operation = "order:create"
	OpReadOrder         Operation = "order:read"
	OpUpdateOrderStatus Operation = "order:update_status"
	OpCreateProduct     Operation = "product:create"
	OpUpdateProduct     Operation = "product:update"
	OpDeleteProduct     Operation = "product:delete"
	OpReadProducts      Operation = "product:read"
	OpUploadQuotation   Operation = "quotation:upload"
	OpReadQuotations    Operation = "quotation:read"
	OpReadNotifications Operation = "notification:read"
	OpCreateCategory    Operation = "category:create"
	OpDeleteCategory    Operation = "category:delete"
	OpAdmin             Operation = "admin"
)

// table maps role -> operations the role may invoke. Admin is handled
// separately: it may invoke everything.
var table = map[string]map[Operation]bool{
	model.RoleClient: {
		OpCreateOrder:       true,
		OpReadOrder:         true,
		OpReadProducts:      true,
		OpReadQuotations:    true,
		OpReadNotifications: true,
	},
	model.RoleSupplier: {
		OpReadOrder:         true,
		OpUpdateOrderStatus: true,
		OpCreateProduct:     true,
		OpUpdateProduct:     true,
		OpDeleteProduct:     true,
		OpReadProducts:      true,
		OpUploadQuotation:   true,
		OpReadQuotations:    true,
		OpReadNotifications: true,
		OpCreateCategory:    true,
		OpDeleteCategory:    true,
	},
}

// Allows reports whether the role may invoke the operation.
// Unknown roles fail closed.
func Allows(role string, op Operation) bool {
	if role == model.RoleAdmin {
		return true
	}
	return table[role][op]
}
