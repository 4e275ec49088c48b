package routes

import "testing"

func TestEstimateRange(t *testing.T) {
	tests := []struct {
		price float64
		mode  string
		want  string
	}{
		{3500, "plane", "₹2450-4900"},
		{1500, "train", "₹750-2400"},
		{800, "bus", "₹480-1200"},
		{800, "Bus", "₹480-1200"},
		{1000, "air", "₹700-1400"},
		{1000, "ferry", "₹800-1500"},
		// 999 * 0.7 = 699.3, 999 * 1.4 = 1398.6: both floored.
		{999, "plane", "₹699-1398"},
		{0, "plane", "₹0-0"},
	}

	for _, tt := range tests {
		if got := EstimateRange(tt.price, tt.mode); got != tt.want {
			t.Errorf("EstimateRange(%v, %q) = %q, want %q", tt.price, tt.mode, got, tt.want)
		}
	}
}

func TestFormatPrice(t *testing.T) {
	if got := FormatPrice(800); got != "₹800" {
		t.Errorf("FormatPrice(800) = %q", got)
	}
	if got := FormatPrice(1234.5); got != "₹1234.5" {
		t.Errorf("FormatPrice(1234.5) = %q", got)
	}
}
