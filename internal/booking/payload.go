package booking

import (
	"fmt"
	"strings"
)

// ValidationError reports a rejected submission field.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// BuildInput is everything a submission attempt collected: the catalog data,
// the raw form values and the customer details. All numeric values stay raw
// strings; the builder owns every parsing and defaulting rule.
type BuildInput struct {
	Service Service
	Variant ServiceVariant

	Quantity      string
	Measurement   string
	Distance      string
	NumberOfBoxes string

	Date          string
	Time          string
	SelectedDates []DateEntry

	CustomerName        string
	CustomerEmail       string
	CustomerPhone       string
	ServiceAddress      string
	SpecialInstructions string
}

// Builder assembles canonical booking payloads. Both the customer checkout
// flow and the admin creation flow go through the same builder, so prices and
// dates cannot drift between them.
type Builder struct {
	rates Rates
}

func NewBuilder(rates Rates) *Builder {
	return &Builder{rates: rates}
}

// Build validates the submission and assembles the payload. It is pure:
// identical input yields a structurally identical payload. The only hard
// error is a blank service address; every other bad input degrades to a safe
// default per the calculator's rules.
func (b *Builder) Build(in BuildInput) (*Payload, error) {
	if strings.TrimSpace(in.ServiceAddress) == "" {
		return nil, &ValidationError{Field: "service_address", Message: "service address is required"}
	}

	pricingType := ResolvePricingType(in.Variant)
	dateSet := ExpandDates(in.Date, in.Time, in.SelectedDates)
	cost := b.rates.ComputeCost(in.Service, in.Variant, pricingType, CostInputs{
		Quantity:      in.Quantity,
		Measurement:   in.Measurement,
		Distance:      in.Distance,
		NumberOfBoxes: in.NumberOfBoxes,
	})

	durationMinutes, ok := ParseDuration(in.Variant.Duration)
	if !ok {
		durationMinutes = DefaultDurationMinutes
	}

	variant := in.Variant
	p := &Payload{
		ServiceID:           in.Variant.ID,
		BookingDate:         dateSet.PrimaryDate,
		BookingTime:         dateSet.PrimaryTime,
		BookingDates:        []DateEntry{},
		DurationMinutes:     durationMinutes,
		CustomerName:        in.CustomerName,
		CustomerEmail:       in.CustomerEmail,
		CustomerPhone:       strings.TrimSpace(in.CustomerPhone),
		ServiceAddress:      in.ServiceAddress,
		SpecialInstructions: strings.TrimSpace(in.SpecialInstructions),
		TotalAmount:         cost.TotalAmount,
		VATRate:             b.rates.VAT,
		PricingType:         pricingType,
		IsMultiDay:          dateSet.IsMultiDay,
		ServiceVariant:      &variant,
		CostBreakdown:       cost.Breakdown,
	}

	// Non-empty booking_dates is the backend's multi-day signal; single-day
	// bookings keep it empty and rely on booking_date/booking_time alone.
	if dateSet.IsMultiDay {
		p.BookingDates = dateSet.Dates
		p.SelectedDates = dateSet.Dates
	}

	userInputs := map[string]string{"pricing_type": string(pricingType)}

	if cost.Breakdown != nil {
		p.IsHouseMoving = true
		moving := MovingData{
			DistanceKm:    parseAmount(in.Distance, 0),
			NumberOfBoxes: parseAmount(in.NumberOfBoxes, 0),
		}
		if pricingType == PricingPerUnit {
			moving.AreaSqm = parseAmount(in.Measurement, 0)
			userInputs["measurement"] = in.Measurement
		} else {
			moving.AreaSqm = parseAmount(in.Quantity, 1)
			userInputs["quantity"] = in.Quantity
		}
		userInputs["area"] = fmt.Sprintf("%g", moving.AreaSqm)
		userInputs["distance"] = in.Distance
		userInputs["boxes"] = in.NumberOfBoxes

		p.MovingService = &moving
		p.AreaSqm = &moving.AreaSqm
		p.DistanceKm = &moving.DistanceKm
		p.NumberOfBoxes = &moving.NumberOfBoxes
		p.AreaCost = &cost.Breakdown.AreaCost
		p.DistanceCost = &cost.Breakdown.DistanceCost
		p.BoxesCost = &cost.Breakdown.BoxesCost
		p.SubtotalBeforeVAT = &cost.Breakdown.Subtotal
		p.VATAmount = &cost.Breakdown.VAT
	} else if pricingType == PricingPerUnit {
		userInputs["measurement"] = in.Measurement
		if in.Variant.UnitMeasure != "" {
			userInputs["unit_measure"] = in.Variant.UnitMeasure
		}
	} else {
		userInputs["quantity"] = in.Quantity
	}

	if pricingType == PricingPerUnit {
		measurement := parseAmount(in.Measurement, 0)
		rate := unitRate(in.Variant)
		p.MeasurementValue = &measurement
		p.UnitPrice = &rate
		if in.Variant.UnitMeasure != "" {
			unit := in.Variant.UnitMeasure
			p.MeasurementUnit = &unit
		}
	}

	p.UserInputs = userInputs
	return p, nil
}
