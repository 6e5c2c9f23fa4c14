// Package analysis builds and issues the scenario-analysis request and
// assembles the AnalysisResult aggregate from the response.
package analysis

import (
	"fmt"
	"strings"

	"github.com/jdelgado/dealscope/internal/comps"
	"github.com/jdelgado/dealscope/internal/property"
)

// ValidationError identifies the input field that blocked the request. No
// network call is made when validation fails.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// Request is the analysis payload: the subject property, the user's purchase
// price, and the comp snapshot. Field names follow the service contract.
type Request struct {
	Address       string  `json:"address"`
	PurchasePrice float64 `json:"purchasePrice"`
	CurrentSqft   int     `json:"currentSqft"`
	Beds          float64 `json:"beds"`
	Baths         float64 `json:"baths"`
	LotSize       float64 `json:"lotSize"`
	YearBuilt     int     `json:"yearBuilt"`

	Zipcode       string   `json:"zipcode,omitempty"`
	Latitude      *float64 `json:"latitude,omitempty"`
	Longitude     *float64 `json:"longitude,omitempty"`
	Zestimate     float64  `json:"zestimate,omitempty"`
	RentZestimate float64  `json:"rent_zestimate,omitempty"`

	Comps []comps.Comp `json:"comps,omitempty"`
}

// BuildRequest validates the required inputs and assembles the payload.
// Address, purchase price, and square footage must all be present; each
// violation names its field.
func BuildRequest(subject property.SubjectProperty, purchasePrice float64, list []comps.Comp) (Request, error) {
	if strings.TrimSpace(subject.Address) == "" {
		return Request{}, &ValidationError{Field: "address", Reason: "required"}
	}
	if purchasePrice <= 0 {
		return Request{}, &ValidationError{Field: "purchasePrice", Reason: "must be a positive number"}
	}
	if subject.LivingAreaSqft <= 0 {
		return Request{}, &ValidationError{Field: "currentSqft", Reason: "must be a positive number"}
	}

	req := Request{
		Address:       subject.Address,
		PurchasePrice: purchasePrice,
		CurrentSqft:   subject.LivingAreaSqft,
		Beds:          subject.Beds,
		Baths:         subject.Baths,
		LotSize:       subject.LotSizeAcres,
		YearBuilt:     subject.YearBuilt,
		Zipcode:       subject.Zip,
		Zestimate:     subject.ValuationEstimate,
		RentZestimate: subject.RentalValuationEstimate,
		Comps:         list,
	}
	if subject.Coordinates != nil {
		lat, lon := subject.Coordinates.Latitude, subject.Coordinates.Longitude
		req.Latitude = &lat
		req.Longitude = &lon
	}
	return req, nil
}
