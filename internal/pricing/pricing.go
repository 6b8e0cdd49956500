// Package pricing derives a sellable price from a supplier's cost
// inputs: base cost, a profit policy (percentage or fixed amount) and a
// tax rate. Results are rounded to cents, half away from zero.
package pricing

import (
	"errors"
	"math"
)

// Profit policies.
const (
	ProfitPercentage = "percentage"
	ProfitFixed      = "fixed"
)

// ErrInvalidInput is returned for negative cost, profit or tax inputs
// and for unknown profit policies. Inputs are never clamped.
var ErrInvalidInput = errors.New("invalid pricing input")

// SellPrice computes the final price:
//
//	subtotal = base + profit (percentage of base, or fixed amount)
//	price    = subtotal + subtotal * taxRate/100
func SellPrice(baseCost float64, profitType string, profitValue, taxRate float64) (float64, error) {
	if baseCost < 0 || profitValue < 0 || taxRate < 0 {
		return 0, ErrInvalidInput
	}
	if math.IsNaN(baseCost) || math.IsNaN(profitValue) || math.IsNaN(taxRate) {
		return 0, ErrInvalidInput
	}

	var subtotal float64
	switch profitType {
	case ProfitPercentage:
		subtotal = baseCost + baseCost*profitValue/100
	case ProfitFixed:
		subtotal = baseCost + profitValue
	default:
		return 0, ErrInvalidInput
	}

	return RoundCents(subtotal + subtotal*taxRate/100), nil
}

// RoundCents rounds to 2 decimal places, half away from zero.
func RoundCents(v float64) float64 {
	return math.Round(v*100) / 100
}
