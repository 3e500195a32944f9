package domain

// Pricing is the single pricing.json document. It is read-only.
type Pricing struct {
	Services           map[string]any `json:"services,omitempty"`
	PricingTiers       map[string]any `json:"pricing_tiers,omitempty"`
	Contact            map[string]any `json:"contact,omitempty"`
	Demo               map[string]any `json:"demo,omitempty"`
	PerformanceMetrics map[string]any `json:"performance_metrics,omitempty"`
	UseCases           []any          `json:"use_cases,omitempty"`
}

// ServiceInfo returns the entry for key, or an empty map.
func (p *Pricing) ServiceInfo(key string) map[string]any {
	if p == nil {
		return map[string]any{}
	}
	info, ok := p.Services[key].(map[string]any)
	if !ok {
		return map[string]any{}
	}
	return info
}

// PricingTierInfo returns all pricing tiers.
func (p *Pricing) PricingTierInfo() map[string]any {
	if p == nil {
		return map[string]any{}
	}
	return orEmpty(p.PricingTiers)
}

// ContactInfo returns the contact section.
func (p *Pricing) ContactInfo() map[string]any {
	if p == nil {
		return map[string]any{}
	}
	return orEmpty(p.Contact)
}

// DemoInfo returns the demo section.
func (p *Pricing) DemoInfo() map[string]any {
	if p == nil {
		return map[string]any{}
	}
	return orEmpty(p.Demo)
}

// Metrics returns the performance_metrics section.
func (p *Pricing) Metrics() map[string]any {
	if p == nil {
		return map[string]any{}
	}
	return orEmpty(p.PerformanceMetrics)
}

// UseCaseList returns the use_cases section.
func (p *Pricing) UseCaseList() []any {
	if p == nil || p.UseCases == nil {
		return []any{}
	}
	return p.UseCases
}

func orEmpty(m map[string]any) map[string]any {
	if m == nil {
		return map[string]any{}
	}
	return m
}
