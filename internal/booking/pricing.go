package booking

import (
	"math"
	"strconv"
	"strings"
)

// PricingType tags how a variant is billed.
type PricingType string

const (
	PricingFixed   PricingType = "fixed"
	PricingPerUnit PricingType = "per_unit"
	PricingHourly  PricingType = "hourly"
)

// ResolvePricingType picks the billing model for a variant. An explicit tag
// wins; otherwise the presence of unit pricing fields means per-unit, and the
// default is fixed. Callers must resolve once per submission and thread the
// result through cost calculation and payload assembly so both agree.
func ResolvePricingType(v ServiceVariant) PricingType {
	if v.PricingType != "" {
		return v.PricingType
	}
	if v.UnitPrice != nil || v.UnitMeasure != "" {
		return PricingPerUnit
	}
	return PricingFixed
}

// Rates holds the region-dependent constants of the cost model.
type Rates struct {
	VAT           float64 // surcharge on the house-moving subtotal
	DistancePerKm float64 // EUR per km driven
	PricePerBox   float64 // EUR per packed box
}

// DefaultRates returns the rates currently in force (Germany).
func DefaultRates() Rates {
	return Rates{
		VAT:           0.19,
		DistancePerKm: 0.50,
		PricePerBox:   2.50,
	}
}

// CostInputs carries the raw form values, untouched. Blank and garbage values
// degrade to defaults instead of failing; the UI surfaces field errors itself.
type CostInputs struct {
	Quantity      string
	Measurement   string
	Distance      string
	NumberOfBoxes string
}

// CostResult is the calculator output. Breakdown is only set for house moving.
type CostResult struct {
	TotalAmount float64
	Breakdown   *CostBreakdown
}

// IsHouseMoving reports whether the service or variant belongs to the
// house-moving family, which gets the area/distance/boxes formula.
func IsHouseMoving(svc Service, v ServiceVariant) bool {
	for _, s := range []string{svc.Title, svc.Category, v.Title} {
		s = strings.ToLower(s)
		if strings.Contains(s, "moving") || strings.Contains(s, "house") {
			return true
		}
	}
	return false
}

// ComputeCost computes the monetary total for a submission. Amounts are
// returned unrounded; rounding to two decimals is a presentation concern.
func (r Rates) ComputeCost(svc Service, v ServiceVariant, pt PricingType, in CostInputs) CostResult {
	if IsHouseMoving(svc, v) {
		return r.movingCost(v, pt, in)
	}

	switch pt {
	case PricingPerUnit:
		measurement := parseAmount(in.Measurement, 0)
		return CostResult{TotalAmount: measurement * unitRate(v)}
	default:
		// Quantity defaults to 1: a booking for zero items is meaningless,
		// while a zero measurement is just a not-yet-filled form.
		quantity := parseAmount(in.Quantity, 1)
		return CostResult{TotalAmount: quantity * fixedRate(v)}
	}
}

// movingCost applies the house-moving formula. The pricing type still decides
// which raw input stands for the area.
func (r Rates) movingCost(v ServiceVariant, pt PricingType, in CostInputs) CostResult {
	var area, rate float64
	if pt == PricingPerUnit {
		area = parseAmount(in.Measurement, 0)
		rate = unitRate(v)
	} else {
		area = parseAmount(in.Quantity, 1)
		rate = fixedRate(v)
	}
	distance := parseAmount(in.Distance, 0)
	boxes := parseAmount(in.NumberOfBoxes, 0)

	b := CostBreakdown{
		AreaCost:     area * rate,
		DistanceCost: distance * r.DistancePerKm,
		BoxesCost:    boxes * r.PricePerBox,
	}
	b.Subtotal = b.AreaCost + b.DistanceCost + b.BoxesCost
	b.VAT = b.Subtotal * r.VAT
	b.Total = b.Subtotal + b.VAT

	return CostResult{TotalAmount: b.Total, Breakdown: &b}
}

// unitRate is the per-unit price with the flat price as fallback.
func unitRate(v ServiceVariant) float64 {
	if v.UnitPrice != nil {
		return *v.UnitPrice
	}
	return fixedRate(v)
}

// fixedRate is the flat price; missing price data means a zero total, which
// the review step flags, not an error here.
func fixedRate(v ServiceVariant) float64 {
	if v.Price != nil {
		return *v.Price
	}
	return 0
}

// parseAmount parses a raw numeric form value. Blank values take the field's
// default; anything unparseable degrades to 0.
func parseAmount(s string, blankDefault float64) float64 {
	s = strings.TrimSpace(s)
	if s == "" {
		return blankDefault
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return v
}
