package booking

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fixedInput() BuildInput {
	return BuildInput{
		Service:        Service{ID: "svc-1", Title: "Deep Cleaning", Category: "cleaning"},
		Variant:        ServiceVariant{ID: "var-1", Title: "3-room apartment", Price: fptr(100), Duration: "4-10 hours"},
		Quantity:       "2",
		Date:           "2026-09-01",
		Time:           "09:00",
		CustomerName:   "Ana Torres",
		CustomerEmail:  "ana@example.com",
		ServiceAddress: "Hauptstrasse 12, Berlin",
	}
}

func TestBuildValidatesAddress(t *testing.T) {
	b := NewBuilder(DefaultRates())

	for _, addr := range []string{"", "   ", "\t\n"} {
		in := fixedInput()
		in.ServiceAddress = addr
		p, err := b.Build(in)
		assert.Nil(t, p)
		var verr *ValidationError
		require.ErrorAs(t, err, &verr)
		assert.Equal(t, "service_address", verr.Field)
	}
}

func TestBuildFixedPayload(t *testing.T) {
	b := NewBuilder(DefaultRates())
	p, err := b.Build(fixedInput())
	require.NoError(t, err)

	assert.Equal(t, "var-1", p.ServiceID)
	assert.Equal(t, PricingFixed, p.PricingType)
	assert.InDelta(t, 200, p.TotalAmount, 1e-9)
	assert.Equal(t, 420, p.DurationMinutes)
	assert.Equal(t, "2026-09-01", p.BookingDate)
	assert.Equal(t, "09:00", p.BookingTime)
	assert.False(t, p.IsMultiDay)
	assert.Empty(t, p.BookingDates)
	assert.Nil(t, p.SelectedDates)
	assert.False(t, p.IsHouseMoving)
	assert.Nil(t, p.CostBreakdown)
	assert.Nil(t, p.AreaSqm)
	assert.Nil(t, p.MeasurementValue)
	assert.Equal(t, 0.19, p.VATRate)
	assert.Equal(t, "2", p.UserInputs["quantity"])
	assert.Equal(t, "fixed", p.UserInputs["pricing_type"])
}

func TestBuildDefaultsDuration(t *testing.T) {
	b := NewBuilder(DefaultRates())
	in := fixedInput()
	in.Variant.Duration = nil
	p, err := b.Build(in)
	require.NoError(t, err)
	assert.Equal(t, DefaultDurationMinutes, p.DurationMinutes)
}

func TestBuildPerUnitPayload(t *testing.T) {
	b := NewBuilder(DefaultRates())
	in := fixedInput()
	in.Variant = ServiceVariant{ID: "var-2", Title: "Wall painting", UnitPrice: fptr(5), UnitMeasure: "sqm"}
	in.Quantity = ""
	in.Measurement = "25.5"

	p, err := b.Build(in)
	require.NoError(t, err)

	assert.Equal(t, PricingPerUnit, p.PricingType)
	assert.InDelta(t, 127.5, p.TotalAmount, 1e-9)
	require.NotNil(t, p.MeasurementValue)
	assert.InDelta(t, 25.5, *p.MeasurementValue, 1e-9)
	require.NotNil(t, p.MeasurementUnit)
	assert.Equal(t, "sqm", *p.MeasurementUnit)
	require.NotNil(t, p.UnitPrice)
	assert.InDelta(t, 5, *p.UnitPrice, 1e-9)
	assert.Equal(t, "25.5", p.UserInputs["measurement"])
	assert.Equal(t, "sqm", p.UserInputs["unit_measure"])
}

func TestBuildHouseMovingPayload(t *testing.T) {
	b := NewBuilder(DefaultRates())
	in := fixedInput()
	in.Service = Service{ID: "svc-9", Title: "House Moving", Category: "moving"}
	in.Variant = ServiceVariant{ID: "var-9", Title: "Apartment move", UnitPrice: fptr(10), UnitMeasure: "sqm"}
	in.Measurement = "50"
	in.Distance = "25.5"
	in.NumberOfBoxes = "10"

	p, err := b.Build(in)
	require.NoError(t, err)

	assert.True(t, p.IsHouseMoving)
	require.NotNil(t, p.CostBreakdown)
	assert.InDelta(t, 537.75, *p.SubtotalBeforeVAT, 1e-9)
	assert.InDelta(t, 102.1725, *p.VATAmount, 1e-9)
	assert.InDelta(t, 639.9225, p.TotalAmount, 1e-9)
	require.NotNil(t, p.AreaSqm)
	assert.InDelta(t, 50, *p.AreaSqm, 1e-9)
	require.NotNil(t, p.DistanceKm)
	assert.InDelta(t, 25.5, *p.DistanceKm, 1e-9)
	require.NotNil(t, p.NumberOfBoxes)
	assert.InDelta(t, 10, *p.NumberOfBoxes, 1e-9)
	require.NotNil(t, p.MovingService)
	assert.Equal(t, "25.5", p.UserInputs["distance"])
	assert.Equal(t, "10", p.UserInputs["boxes"])
}

func TestBuildMultiDayPayload(t *testing.T) {
	b := NewBuilder(DefaultRates())
	in := fixedInput()
	in.Date = ""
	in.Time = ""
	in.SelectedDates = []DateEntry{
		{Date: "2026-09-03", Time: "10:00"},
		{Date: "2026-09-01", Time: "10:00"},
		{Date: "2026-09-02", Time: "10:00"},
	}

	p, err := b.Build(in)
	require.NoError(t, err)

	assert.True(t, p.IsMultiDay)
	require.Len(t, p.BookingDates, 3)
	assert.Equal(t, "2026-09-01", p.BookingDate)
	assert.Equal(t, p.BookingDates, p.SelectedDates)
}

func TestBuildIsDeterministic(t *testing.T) {
	b := NewBuilder(DefaultRates())
	in := fixedInput()
	in.SelectedDates = []DateEntry{
		{Date: "2026-09-02", Time: "10:00"},
		{Date: "2026-09-01", Time: "10:00"},
	}

	first, err := b.Build(in)
	require.NoError(t, err)
	second, err := b.Build(in)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestPayloadJSONShape(t *testing.T) {
	b := NewBuilder(DefaultRates())
	p, err := b.Build(fixedInput())
	require.NoError(t, err)

	raw, err := json.Marshal(p)
	require.NoError(t, err)

	var m map[string]any
	require.NoError(t, json.Unmarshal(raw, &m))

	// optional customer fields are omitted, not sent as empty strings
	assert.NotContains(t, m, "customer_phone")
	assert.NotContains(t, m, "special_instructions")
	// non-moving bookings still carry explicit nulls for the moving columns
	assert.Contains(t, m, "area_sqm")
	assert.Nil(t, m["area_sqm"])
	assert.Equal(t, false, m["is_multi_day_booking"])
	assert.Equal(t, []any{}, m["booking_dates"])
	assert.Nil(t, m["selected_dates"])
}
