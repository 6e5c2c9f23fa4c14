package comps

import (
	"bytes"
	"encoding/json"
)

// Money decodes the two price encodings the backend is known to emit: a bare
// number, or an object with a "value" key. Set reports whether the field was
// present at all, since zero is a legal price.
type Money struct {
	Value float64
	Set   bool
}

func (m *Money) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		return nil
	}
	if data[0] == '{' {
		var obj struct {
			Value *float64 `json:"value"`
		}
		if err := json.Unmarshal(data, &obj); err != nil {
			return err
		}
		if obj.Value != nil {
			m.Value = *obj.Value
			m.Set = true
		}
		return nil
	}
	var n float64
	if err := json.Unmarshal(data, &n); err != nil {
		return err
	}
	m.Value = n
	m.Set = true
	return nil
}

func (m Money) MarshalJSON() ([]byte, error) {
	if !m.Set {
		return []byte("null"), nil
	}
	return json.Marshal(m.Value)
}

// AddressField decodes either a plain address string or the nested
// {streetAddress, city, state, zipcode} object.
type AddressField struct {
	Street string
	City   string
	State  string
	Zip    string
}

func (a *AddressField) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		return nil
	}
	if data[0] == '"' {
		return json.Unmarshal(data, &a.Street)
	}
	var obj struct {
		StreetAddress string `json:"streetAddress"`
		City          string `json:"city"`
		State         string `json:"state"`
		Zipcode       string `json:"zipcode"`
	}
	if err := json.Unmarshal(data, &obj); err != nil {
		return err
	}
	a.Street = obj.StreetAddress
	a.City = obj.City
	a.State = obj.State
	a.Zip = obj.Zipcode
	return nil
}

// Raw is a comparable-sale record exactly as the backend sends it, across
// every shape variant observed: address nested or flat, price bare or
// wrapped, sold date at the top level or under listing.
type Raw struct {
	Address       AddressField `json:"address"`
	StreetAddress string       `json:"streetAddress"`
	City          string       `json:"city"`
	State         string       `json:"state"`
	Zipcode       string       `json:"zipcode"`

	Price        Money    `json:"price"`
	Bedrooms     *float64 `json:"bedrooms"`
	Bathrooms    *float64 `json:"bathrooms"`
	LivingArea   *float64 `json:"livingArea"`
	PricePerSqft *float64 `json:"price_per_sqft"`

	DistanceMiles *float64 `json:"distance_miles"`
	Latitude      *float64 `json:"latitude"`
	Longitude     *float64 `json:"longitude"`

	SoldDate string `json:"sold_date"`
	Listing  *struct {
		DateSold string `json:"dateSold"`
	} `json:"listing"`

	ZillowURL string `json:"zillow_url"`
	ImageURL  string `json:"image_url"`
}
