// Package property holds the subject-property record and the lookup client
// that populates it from the property service's heterogeneous responses.
package property

// Coordinates is a latitude/longitude pair. It is applied both-or-neither; a
// response carrying only one half is treated as carrying none.
type Coordinates struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// SubjectProperty is the session-scoped record for the property under
// analysis. It is created with defaults, merged from lookup responses, and
// edited freely by the user. It has no persisted form.
type SubjectProperty struct {
	Address string `json:"address"`

	LivingAreaSqft int     `json:"sqft"`
	Beds           float64 `json:"beds"`
	Baths          float64 `json:"baths"`
	LotSizeAcres   float64 `json:"lot_size"`
	YearBuilt      int     `json:"year_built"`

	// ValuationEstimate of zero means unknown.
	ValuationEstimate       float64 `json:"zestimate"`
	RentalValuationEstimate float64 `json:"rent_zestimate,omitempty"`

	Coordinates *Coordinates `json:"coordinates,omitempty"`
	Zip         string       `json:"zipcode,omitempty"`

	ExternalID         string `json:"zpid,omitempty"`
	ExternalListingURL string `json:"zillow_url,omitempty"`
	PhotoURL           string `json:"image_url,omitempty"`
	Status             string `json:"status,omitempty"`
}

// NewSubject returns a subject with the session defaults.
func NewSubject() SubjectProperty {
	return SubjectProperty{
		Beds:         3,
		Baths:        2,
		LotSizeAcres: 0.25,
		YearBuilt:    2000,
	}
}

// Partial is a set of subject fields with explicit presence. Both lookup
// responses and user edits arrive as partials; Merge applies only the fields
// that are actually present, which is what keeps a slow lookup response from
// clobbering edits the user made while it was in flight.
type Partial struct {
	Address                 *string
	LivingAreaSqft          *int
	Beds                    *float64
	Baths                   *float64
	LotSizeAcres            *float64
	YearBuilt               *int
	ValuationEstimate       *float64
	RentalValuationEstimate *float64
	Latitude                *float64
	Longitude               *float64
	Zip                     *string
	ExternalID              *string
	ExternalListingURL      *string
	PhotoURL                *string
	Status                  *string
}

// Merge applies the present fields of p onto s. Fields p omits are left
// untouched. Coordinates are only applied when both halves are present.
func (s *SubjectProperty) Merge(p Partial) {
	if p.Address != nil {
		s.Address = *p.Address
	}
	if p.LivingAreaSqft != nil {
		s.LivingAreaSqft = *p.LivingAreaSqft
	}
	if p.Beds != nil {
		s.Beds = *p.Beds
	}
	if p.Baths != nil {
		s.Baths = *p.Baths
	}
	if p.LotSizeAcres != nil {
		s.LotSizeAcres = *p.LotSizeAcres
	}
	if p.YearBuilt != nil {
		s.YearBuilt = *p.YearBuilt
	}
	if p.ValuationEstimate != nil {
		s.ValuationEstimate = *p.ValuationEstimate
	}
	if p.RentalValuationEstimate != nil {
		s.RentalValuationEstimate = *p.RentalValuationEstimate
	}
	if p.Latitude != nil && p.Longitude != nil {
		s.Coordinates = &Coordinates{Latitude: *p.Latitude, Longitude: *p.Longitude}
	}
	if p.Zip != nil {
		s.Zip = *p.Zip
	}
	if p.ExternalID != nil {
		s.ExternalID = *p.ExternalID
	}
	if p.ExternalListingURL != nil {
		s.ExternalListingURL = *p.ExternalListingURL
	}
	if p.PhotoURL != nil {
		s.PhotoURL = *p.PhotoURL
	}
	if p.Status != nil {
		s.Status = *p.Status
	}
}
