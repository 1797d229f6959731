package booking

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fptr(v float64) *float64 { return &v }

func TestResolvePricingType(t *testing.T) {
	tests := []struct {
		name    string
		variant ServiceVariant
		want    PricingType
	}{
		{name: "explicit tag wins", variant: ServiceVariant{PricingType: PricingHourly, UnitPrice: fptr(5)}, want: PricingHourly},
		{name: "unit price infers per_unit", variant: ServiceVariant{UnitPrice: fptr(5)}, want: PricingPerUnit},
		{name: "unit measure infers per_unit", variant: ServiceVariant{UnitMeasure: "sqm"}, want: PricingPerUnit},
		{name: "default is fixed", variant: ServiceVariant{Price: fptr(100)}, want: PricingFixed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ResolvePricingType(tt.variant))
		})
	}
}

func TestComputeCostFixed(t *testing.T) {
	rates := DefaultRates()
	svc := Service{Title: "Deep Cleaning", Category: "cleaning"}
	variant := ServiceVariant{Title: "3-room apartment", Price: fptr(100)}

	tests := []struct {
		name     string
		quantity string
		want     float64
	}{
		{name: "quantity times price", quantity: "2", want: 200},
		{name: "blank quantity defaults to one", quantity: "", want: 100},
		{name: "garbage quantity degrades to zero", quantity: "two", want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := rates.ComputeCost(svc, variant, PricingFixed, CostInputs{Quantity: tt.quantity})
			assert.Equal(t, tt.want, got.TotalAmount)
			assert.Nil(t, got.Breakdown)
		})
	}

	t.Run("missing price means zero total", func(t *testing.T) {
		got := rates.ComputeCost(svc, ServiceVariant{Title: "unpriced"}, PricingFixed, CostInputs{Quantity: "2"})
		assert.Zero(t, got.TotalAmount)
	})
}

func TestComputeCostPerUnit(t *testing.T) {
	rates := DefaultRates()
	svc := Service{Title: "Painting", Category: "painting"}

	t.Run("measurement times unit price", func(t *testing.T) {
		variant := ServiceVariant{Title: "Wall painting", UnitPrice: fptr(5), UnitMeasure: "sqm"}
		got := rates.ComputeCost(svc, variant, PricingPerUnit, CostInputs{Measurement: "25.5"})
		assert.InDelta(t, 127.5, got.TotalAmount, 1e-9)
	})

	t.Run("falls back to flat price", func(t *testing.T) {
		variant := ServiceVariant{Title: "Wall painting", Price: fptr(4), UnitMeasure: "sqm"}
		got := rates.ComputeCost(svc, variant, PricingPerUnit, CostInputs{Measurement: "10"})
		assert.InDelta(t, 40, got.TotalAmount, 1e-9)
	})

	t.Run("blank measurement means zero total", func(t *testing.T) {
		variant := ServiceVariant{Title: "Wall painting", UnitPrice: fptr(5)}
		got := rates.ComputeCost(svc, variant, PricingPerUnit, CostInputs{})
		assert.Zero(t, got.TotalAmount)
	})
}

func TestComputeCostHouseMoving(t *testing.T) {
	rates := DefaultRates()
	svc := Service{Title: "House Moving", Category: "moving"}

	t.Run("per unit area with full breakdown", func(t *testing.T) {
		variant := ServiceVariant{Title: "Apartment move", UnitPrice: fptr(10), UnitMeasure: "sqm"}
		got := rates.ComputeCost(svc, variant, PricingPerUnit, CostInputs{
			Measurement:   "50",
			Distance:      "25.5",
			NumberOfBoxes: "10",
		})

		require.NotNil(t, got.Breakdown)
		b := got.Breakdown
		assert.InDelta(t, 500, b.AreaCost, 1e-9)
		assert.InDelta(t, 12.75, b.DistanceCost, 1e-9)
		assert.InDelta(t, 25, b.BoxesCost, 1e-9)
		assert.InDelta(t, 537.75, b.Subtotal, 1e-9)
		assert.InDelta(t, 102.1725, b.VAT, 1e-9)
		assert.InDelta(t, 639.9225, b.Total, 1e-9)
		assert.InDelta(t, b.Total, got.TotalAmount, 1e-9)
		assert.InDelta(t, b.AreaCost+b.DistanceCost+b.BoxesCost, b.Subtotal, 1e-9)
	})

	t.Run("fixed pricing reads area from quantity", func(t *testing.T) {
		variant := ServiceVariant{Title: "Small move", Price: fptr(20)}
		got := rates.ComputeCost(svc, variant, PricingFixed, CostInputs{
			Quantity: "3",
			Distance: "10",
		})

		require.NotNil(t, got.Breakdown)
		assert.InDelta(t, 60, got.Breakdown.AreaCost, 1e-9)
		assert.InDelta(t, 5, got.Breakdown.DistanceCost, 1e-9)
		assert.Zero(t, got.Breakdown.BoxesCost)
	})

	t.Run("blank extras cost nothing", func(t *testing.T) {
		variant := ServiceVariant{Title: "Apartment move", UnitPrice: fptr(10)}
		got := rates.ComputeCost(svc, variant, PricingPerUnit, CostInputs{Measurement: "40"})

		require.NotNil(t, got.Breakdown)
		assert.InDelta(t, 400, got.Breakdown.Subtotal, 1e-9)
	})
}

func TestIsHouseMoving(t *testing.T) {
	assert.True(t, IsHouseMoving(Service{Title: "House Moving"}, ServiceVariant{}))
	assert.True(t, IsHouseMoving(Service{Category: "moving"}, ServiceVariant{}))
	assert.True(t, IsHouseMoving(Service{}, ServiceVariant{Title: "Moving boxes included"}))
	assert.False(t, IsHouseMoving(Service{Title: "Office Setup", Category: "office"}, ServiceVariant{Title: "Desks"}))
}
