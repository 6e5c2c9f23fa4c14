// Package comps normalizes comparable-sale records out of the backend's
// heterogeneous wire shapes and computes aggregate statistics over them. All
// shape variance stops at this boundary; the rest of the system only sees
// the canonical Comp.
package comps

import "math"

// Comp is the canonical comparable-sale record. Comps are an immutable
// snapshot attached to one lookup or analysis response and are replaced
// wholesale by the next; they carry no lifecycle of their own.
type Comp struct {
	Address string `json:"address"`
	City    string `json:"city,omitempty"`
	State   string `json:"state,omitempty"`
	Zip     string `json:"zip,omitempty"`

	Price          float64 `json:"price"`
	LivingAreaSqft int     `json:"living_area_sqft"`

	// PricePerSqft is trusted as-is when the source supplies it and derived
	// as round(price/sqft) otherwise. Nil when the living area is unknown or
	// zero; such comps stay in the list but are excluded from the
	// price-per-sqft average.
	PricePerSqft *float64 `json:"price_per_sqft,omitempty"`

	Beds  float64 `json:"beds,omitempty"`
	Baths float64 `json:"baths,omitempty"`

	DistanceMiles *float64 `json:"distance_miles,omitempty"`
	SoldDate      string   `json:"sold_date,omitempty"`

	ExternalListingURL string `json:"zillow_url,omitempty"`
	PhotoURL           string `json:"image_url,omitempty"`
}

// Normalize converts raw records into canonical comps. It never divides by
// zero: a comp without a positive living area keeps a nil PricePerSqft.
func Normalize(raw []Raw) []Comp {
	out := make([]Comp, 0, len(raw))
	for _, r := range raw {
		out = append(out, normalizeOne(r))
	}
	return out
}

func normalizeOne(r Raw) Comp {
	c := Comp{
		Address:            r.Address.Street,
		City:               r.Address.City,
		State:              r.Address.State,
		Zip:                r.Address.Zip,
		SoldDate:           r.SoldDate,
		DistanceMiles:      r.DistanceMiles,
		ExternalListingURL: r.ZillowURL,
		PhotoURL:           r.ImageURL,
	}

	// Flat address fields fill whatever the nested form did not carry.
	if c.Address == "" {
		c.Address = r.StreetAddress
	}
	if c.City == "" {
		c.City = r.City
	}
	if c.State == "" {
		c.State = r.State
	}
	if c.Zip == "" {
		c.Zip = r.Zipcode
	}

	if r.Price.Set {
		c.Price = r.Price.Value
	}
	if r.LivingArea != nil {
		c.LivingAreaSqft = int(*r.LivingArea)
	}
	if r.Bedrooms != nil {
		c.Beds = *r.Bedrooms
	}
	if r.Bathrooms != nil {
		c.Baths = *r.Bathrooms
	}
	if c.SoldDate == "" && r.Listing != nil {
		c.SoldDate = r.Listing.DateSold
	}

	switch {
	case r.PricePerSqft != nil:
		c.PricePerSqft = r.PricePerSqft
	case r.Price.Set && c.LivingAreaSqft > 0:
		v := math.Round(c.Price / float64(c.LivingAreaSqft))
		c.PricePerSqft = &v
	}
	return c
}
