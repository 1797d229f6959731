package booking

// Service is the catalog entry a variant belongs to.
type Service struct {
	ID       string `json:"id"`
	Title    string `json:"title"`
	Category string `json:"category"`
}

// ServiceVariant is one purchasable unit of a service as the catalog describes it.
// Price fields are optional on purpose: which ones are present depends on how the
// variant is billed. The engine never mutates a variant.
type ServiceVariant struct {
	ID             string      `json:"id"`
	Title          string      `json:"title"`
	Description    string      `json:"description,omitempty"`
	Price          *float64    `json:"price,omitempty"`
	UnitPrice      *float64    `json:"unit_price,omitempty"`
	UnitMeasure    string      `json:"unit_measure,omitempty"`
	PricingType    PricingType `json:"pricing_type,omitempty"`
	Duration       any         `json:"duration,omitempty"`
	MinMeasurement *float64    `json:"min_measurement,omitempty"`
	MaxMeasurement *float64    `json:"max_measurement,omitempty"`
}

// DateEntry is a single booked calendar day.
type DateEntry struct {
	Date string `json:"date"` // "YYYY-MM-DD"
	Time string `json:"time"` // "HH:MM"
}

// CostBreakdown is only produced for house-moving bookings.
type CostBreakdown struct {
	AreaCost     float64 `json:"area_cost"`
	DistanceCost float64 `json:"distance_cost"`
	BoxesCost    float64 `json:"boxes_cost"`
	Subtotal     float64 `json:"subtotal"`
	VAT          float64 `json:"vat"`
	Total        float64 `json:"total"`
}

// MovingData is the house-moving audit record embedded in the payload.
type MovingData struct {
	AreaSqm       float64 `json:"area_sqm"`
	DistanceKm    float64 `json:"distance_km"`
	NumberOfBoxes float64 `json:"number_of_boxes"`
}

// Payload is the canonical booking record both the customer and admin flows
// send to the booking endpoint. Built once per submission, never mutated.
type Payload struct {
	ServiceID           string      `json:"service_id"`
	BookingDate         string      `json:"booking_date"`
	BookingTime         string      `json:"booking_time"`
	BookingDates        []DateEntry `json:"booking_dates"`
	DurationMinutes     int         `json:"duration_minutes"`
	CustomerName        string      `json:"customer_name"`
	CustomerEmail       string      `json:"customer_email"`
	CustomerPhone       string      `json:"customer_phone,omitempty"`
	ServiceAddress      string      `json:"service_address"`
	SpecialInstructions string      `json:"special_instructions,omitempty"`
	TotalAmount         float64     `json:"total_amount"`

	IsHouseMoving     bool     `json:"is_house_moving"`
	AreaSqm           *float64 `json:"area_sqm"`
	DistanceKm        *float64 `json:"distance_km"`
	NumberOfBoxes     *float64 `json:"number_of_boxes"`
	AreaCost          *float64 `json:"area_cost"`
	DistanceCost      *float64 `json:"distance_cost"`
	BoxesCost         *float64 `json:"boxes_cost"`
	SubtotalBeforeVAT *float64 `json:"subtotal_before_vat"`
	VATAmount         *float64 `json:"vat_amount"`
	VATRate           float64  `json:"vat_rate"`

	MeasurementValue *float64 `json:"measurement_value"`
	MeasurementUnit  *string  `json:"measurement_unit"`
	UnitPrice        *float64 `json:"unit_price"`

	PricingType    PricingType       `json:"pricing_type"`
	SelectedDates  []DateEntry       `json:"selected_dates"`
	IsMultiDay     bool              `json:"is_multi_day_booking"`
	UserInputs     map[string]string `json:"user_inputs"`
	ServiceVariant *ServiceVariant   `json:"service_variant_data"`
	MovingService  *MovingData       `json:"moving_service_data"`
	CostBreakdown  *CostBreakdown    `json:"cost_breakdown"`
}
