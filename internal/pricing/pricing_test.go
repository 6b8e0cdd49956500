package pricing

import "testing"

func TestSellPricePercentage(t *testing.T) {
	// base=100, profit=20% -> subtotal=120, tax=16% -> 139.20
	price, err := SellPrice(100, ProfitPercentage, 20, 16)
	if err != nil {
		t.Fatalf("SellPrice: %v", err)
	}
	if price != 139.20 {
		t.Errorf("expected 139.20, got %v", price)
	}
}

func TestSellPriceFixed(t *testing.T) {
	// base=50, fixed profit=10 -> subtotal=60, tax=16% -> 69.60
	price, err := SellPrice(50, ProfitFixed, 10, 16)
	if err != nil {
		t.Fatalf("SellPrice: %v", err)
	}
	if price != 69.60 {
		t.Errorf("expected 69.60, got %v", price)
	}
}

func TestSellPriceZeroProfit(t *testing.T) {
	// Zero profit yields base plus tax only.
	price, err := SellPrice(100, ProfitPercentage, 0, 16)
	if err != nil {
		t.Fatalf("SellPrice: %v", err)
	}
	if price != 116.00 {
		t.Errorf("expected 116.00, got %v", price)
	}
}

func TestSellPriceZeroTax(t *testing.T) {
	price, err := SellPrice(100, ProfitFixed, 25, 0)
	if err != nil {
		t.Fatalf("SellPrice: %v", err)
	}
	if price != 125.00 {
		t.Errorf("expected 125.00, got %v", price)
	}
}

func TestSellPriceNegativeInputs(t *testing.T) {
	cases := []struct {
		name               string
		base, profit, tax  float64
		profitType         string
	}{
		{"negative base", -1, 10, 16, ProfitPercentage},
		{"negative profit", 100, -5, 16, ProfitFixed},
		{"negative tax", 100, 10, -16, ProfitPercentage},
	}
	for _, tc := range cases {
		if _, err := SellPrice(tc.base, tc.profitType, tc.profit, tc.tax); err != ErrInvalidInput {
			t.Errorf("%s: expected ErrInvalidInput, got %v", tc.name, err)
		}
	}
}

func TestSellPriceUnknownPolicy(t *testing.T) {
	if _, err := SellPrice(100, "markup", 10, 16); err != ErrInvalidInput {
		t.Errorf("expected ErrInvalidInput for unknown policy, got %v", err)
	}
}

func TestRoundCents(t *testing.T) {
	// Half away from zero. 0.125 is exactly representable, so the
	// midpoint behavior is observable without float noise.
	cases := []struct{ in, want float64 }{
		{0.125, 0.13},
		{-0.125, -0.13},
		{1.004, 1.00},
		{1.006, 1.01},
		{0, 0},
	}
	for _, tc := range cases {
		if got := RoundCents(tc.in); got != tc.want {
			t.Errorf("RoundCents(%v) = %v, want %v", tc.in, got, tc.want)
		}
	}
}
