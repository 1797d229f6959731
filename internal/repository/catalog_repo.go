package repository

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/deepcleaninghub-hue/deepcleaninghubmain-sub002/internal/booking"
	"github.com/deepcleaninghub-hue/deepcleaninghubmain-sub002/internal/entities"
)

// CatalogRepository reads the service catalog. The catalog is maintained
// elsewhere; this service only ever reads it.
type CatalogRepository struct {
	DB *sql.DB
}

func NewCatalogRepository(db *sql.DB) *CatalogRepository {
	return &CatalogRepository{DB: db}
}

// GetVariant loads a variant together with its parent service.
func (r *CatalogRepository) GetVariant(variantID string) (booking.Service, booking.ServiceVariant, error) {
	query := `
		SELECT
			s.id, s.title, s.category,
			v.id, v.title, COALESCE(v.description, ''),
			v.price, v.unit_price, COALESCE(v.unit_measure, ''),
			COALESCE(v.pricing_type, ''), v.duration,
			v.min_measurement, v.max_measurement
		FROM service_variants v
		JOIN services s ON s.id = v.service_id
		WHERE v.id = $1`

	var svc booking.Service
	var variant booking.ServiceVariant
	var price, unitPrice, minM, maxM sql.NullFloat64
	var pricingType string
	var duration sql.NullString

	err := r.DB.QueryRow(query, variantID).Scan(
		&svc.ID, &svc.Title, &svc.Category,
		&variant.ID, &variant.Title, &variant.Description,
		&price, &unitPrice, &variant.UnitMeasure,
		&pricingType, &duration,
		&minM, &maxM,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return svc, variant, fmt.Errorf("service variant '%s' not found: %w", variantID, err)
		}
		return svc, variant, fmt.Errorf("error querying service variant: %w", err)
	}

	variant.PricingType = booking.PricingType(pricingType)
	variant.Price = nullableFloat(price)
	variant.UnitPrice = nullableFloat(unitPrice)
	variant.MinMeasurement = nullableFloat(minM)
	variant.MaxMeasurement = nullableFloat(maxM)
	if duration.Valid {
		variant.Duration = duration.String
	}
	return svc, variant, nil
}

// ListServices returns the whole catalog grouped by service.
func (r *CatalogRepository) ListServices(category string) ([]entities.CatalogService, error) {
	query := `
		SELECT
			s.id, s.title, s.category,
			v.id, v.title, COALESCE(v.description, ''),
			v.price, v.unit_price, COALESCE(v.unit_measure, ''),
			COALESCE(v.pricing_type, ''), v.duration
		FROM services s
		JOIN service_variants v ON v.service_id = s.id
		WHERE ($1 = '' OR s.category = $1)
		ORDER BY s.title, v.title`

	rows, err := r.DB.Query(query, category)
	if err != nil {
		return nil, fmt.Errorf("error querying catalog: %w", err)
	}
	defer rows.Close()

	var services []entities.CatalogService
	index := map[string]int{}
	for rows.Next() {
		var svc booking.Service
		var variant booking.ServiceVariant
		var price, unitPrice sql.NullFloat64
		var pricingType string
		var duration sql.NullString
		if err := rows.Scan(
			&svc.ID, &svc.Title, &svc.Category,
			&variant.ID, &variant.Title, &variant.Description,
			&price, &unitPrice, &variant.UnitMeasure,
			&pricingType, &duration,
		); err != nil {
			return nil, fmt.Errorf("error scanning catalog row: %w", err)
		}
		variant.PricingType = booking.PricingType(pricingType)
		variant.Price = nullableFloat(price)
		variant.UnitPrice = nullableFloat(unitPrice)
		if duration.Valid {
			variant.Duration = duration.String
		}

		i, ok := index[svc.ID]
		if !ok {
			services = append(services, entities.CatalogService{ID: svc.ID, Title: svc.Title, Category: svc.Category})
			i = len(services) - 1
			index[svc.ID] = i
		}
		services[i].Variants = append(services[i].Variants, variant)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error after iterating catalog rows: %w", err)
	}
	return services, nil
}

func nullableFloat(v sql.NullFloat64) *float64 {
	if !v.Valid {
		return nil
	}
	f := v.Float64
	return &f
}
