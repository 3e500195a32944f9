package repository

import (
	"context"

	"github.com/AdrianaGRO/PyArch.dev/internal/domain"
)

// JSONPricingRepository implements PricingRepository on top of pricing.json.
type JSONPricingRepository struct {
	doc document
}

// NewJSONPricingRepository creates a pricing repository. Pricing is
// normally loaded in Lenient mode.
func NewJSONPricingRepository(path string, mode LoadMode) *JSONPricingRepository {
	return &JSONPricingRepository{doc: document{name: "pricing", path: path, mode: mode}}
}

// Mode returns the load mode the repository was built with.
func (r *JSONPricingRepository) Mode() LoadMode { return r.doc.mode }

// Path returns the backing file.
func (r *JSONPricingRepository) Path() string { return r.doc.path }

// Load reads the pricing document.
func (r *JSONPricingRepository) Load(ctx context.Context) (*domain.Pricing, error) {
	pricing, err := readDocument(ctx, r.doc, domain.Pricing{})
	if err != nil {
		return nil, err
	}
	return &pricing, nil
}
