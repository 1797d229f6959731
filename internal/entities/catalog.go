package entities

import "github.com/deepcleaninghub-hue/deepcleaninghubmain-sub002/internal/booking"

// CatalogService is one bookable service with its purchasable variants.
type CatalogService struct {
	ID       string                   `json:"id"`
	Title    string                   `json:"title"`
	Category string                   `json:"category"`
	Variants []booking.ServiceVariant `json:"variants"`
}
