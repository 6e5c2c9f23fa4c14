package property

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestLookupFlatResponse(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/lookup-property" {
			t.Errorf("path = %s", r.URL.Path)
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{
			"address": "100 Main St, Atlanta, GA 30303",
			"sqft": 1800,
			"beds": 4,
			"baths": 2.5,
			"lot_size": 0.3,
			"year_built": 1998,
			"zestimate": 310000,
			"rent_zestimate": 2100,
			"latitude": 33.75,
			"longitude": -84.39,
			"zipcode": "30303",
			"zillow_url": "https://example.com/home",
			"status": "Off Market"
		}`))
	}))
	defer srv.Close()

	resp, err := NewClient(srv.URL).Lookup(context.Background(), "100 Main St")
	if err != nil {
		t.Fatal(err)
	}
	p := resp.Subject
	if p.LivingAreaSqft == nil || *p.LivingAreaSqft != 1800 {
		t.Fatalf("sqft = %v", p.LivingAreaSqft)
	}
	if p.Beds == nil || *p.Beds != 4 {
		t.Fatalf("beds = %v", p.Beds)
	}
	if p.ValuationEstimate == nil || *p.ValuationEstimate != 310000 {
		t.Fatalf("zestimate = %v", p.ValuationEstimate)
	}
	if p.RentalValuationEstimate == nil || *p.RentalValuationEstimate != 2100 {
		t.Fatalf("rent zestimate = %v", p.RentalValuationEstimate)
	}
	if p.Latitude == nil || p.Longitude == nil {
		t.Fatal("coordinates missing")
	}
	if p.Status == nil || *p.Status != "Off Market" {
		t.Fatalf("status = %v", p.Status)
	}
}

func TestLookupNestedSubjectWithComps(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{
			"subject": {
				"address": "5 Oak Ave, Decatur, GA 30030",
				"sqft": 1500,
				"zestimate": {"value": 280000},
				"zipcode": "30030"
			},
			"comps": [
				{"streetAddress": "7 Oak Ave", "price": 295000, "livingArea": 1475},
				{"address": {"streetAddress": "9 Oak Ave"}, "price": {"value": 301000}, "livingArea": 1520}
			]
		}`))
	}))
	defer srv.Close()

	resp, err := NewClient(srv.URL).Lookup(context.Background(), "5 Oak Ave")
	if err != nil {
		t.Fatal(err)
	}
	if resp.Subject.LivingAreaSqft == nil || *resp.Subject.LivingAreaSqft != 1500 {
		t.Fatalf("sqft = %v", resp.Subject.LivingAreaSqft)
	}
	if resp.Subject.ValuationEstimate == nil || *resp.Subject.ValuationEstimate != 280000 {
		t.Fatalf("wrapped zestimate = %v", resp.Subject.ValuationEstimate)
	}
	if len(resp.Comps) != 2 {
		t.Fatalf("got %d comps, want 2", len(resp.Comps))
	}
	if resp.Comps[0].Address != "7 Oak Ave" || resp.Comps[1].Address != "9 Oak Ave" {
		t.Fatalf("comp addresses: %q, %q", resp.Comps[0].Address, resp.Comps[1].Address)
	}
	if resp.Comps[1].Price != 301000 {
		t.Fatalf("wrapped comp price = %v", resp.Comps[1].Price)
	}
}

func TestLookupOmittedFieldsStayAbsent(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"beds": 3, "zipcode": "30030"}`))
	}))
	defer srv.Close()

	resp, err := NewClient(srv.URL).Lookup(context.Background(), "somewhere")
	if err != nil {
		t.Fatal(err)
	}
	p := resp.Subject
	if p.LivingAreaSqft != nil || p.ValuationEstimate != nil || p.Status != nil || p.Address != nil {
		t.Fatalf("absent fields present in partial: %+v", p)
	}
	if p.Beds == nil || *p.Beds != 3 {
		t.Fatalf("beds = %v", p.Beds)
	}
}

func TestLookupNotFound(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error": "Property not found"}`, http.StatusNotFound)
	}))
	defer srv.Close()

	_, err := NewClient(srv.URL).Lookup(context.Background(), "nowhere")
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("err = %v, want ErrNotFound", err)
	}
}

func TestLookupEmptyAddressRejectedLocally(t *testing.T) {
	c := NewClient("http://127.0.0.1:0")
	if _, err := c.Lookup(context.Background(), "  "); err == nil {
		t.Fatal("want error for empty address")
	}
}
