package property

import "testing"

func strPtr(s string) *string { return &s }
func intPtr(v int) *int       { return &v }
func fPtr(v float64) *float64 { return &v }

func TestMergeAppliesOnlyPresentFields(t *testing.T) {
	s := NewSubject()
	s.Address = "100 Main St, Atlanta, GA 30303"
	s.LivingAreaSqft = 1850 // user typed this already

	s.Merge(Partial{
		Beds:              fPtr(4),
		ValuationEstimate: fPtr(325000),
		Zip:               strPtr("30303"),
	})

	if s.LivingAreaSqft != 1850 {
		t.Fatalf("sqft = %d, want user value 1850 preserved", s.LivingAreaSqft)
	}
	if s.Beds != 4 {
		t.Fatalf("beds = %v, want 4", s.Beds)
	}
	if s.Baths != 2 {
		t.Fatalf("baths = %v, want default 2 untouched", s.Baths)
	}
	if s.ValuationEstimate != 325000 {
		t.Fatalf("valuation = %v, want 325000", s.ValuationEstimate)
	}
	if s.Zip != "30303" {
		t.Fatalf("zip = %q", s.Zip)
	}
}

func TestMergeNeverClearsOmittedFields(t *testing.T) {
	s := NewSubject()
	s.Address = "1 Test Way"
	s.LivingAreaSqft = 1200
	s.ValuationEstimate = 250000
	s.Status = "Off Market"

	s.Merge(Partial{YearBuilt: intPtr(1985)})

	if s.LivingAreaSqft != 1200 || s.ValuationEstimate != 250000 || s.Status != "Off Market" {
		t.Fatalf("omitted fields were cleared: %+v", s)
	}
	if s.YearBuilt != 1985 {
		t.Fatalf("year built = %d, want 1985", s.YearBuilt)
	}
}

func TestMergeCoordinatesBothOrNeither(t *testing.T) {
	s := NewSubject()
	s.Merge(Partial{Latitude: fPtr(33.75)})
	if s.Coordinates != nil {
		t.Fatalf("coordinates set from latitude alone: %+v", s.Coordinates)
	}
	s.Merge(Partial{Latitude: fPtr(33.75), Longitude: fPtr(-84.39)})
	if s.Coordinates == nil || s.Coordinates.Latitude != 33.75 || s.Coordinates.Longitude != -84.39 {
		t.Fatalf("coordinates = %+v", s.Coordinates)
	}
}

func TestNewSubjectDefaults(t *testing.T) {
	s := NewSubject()
	if s.Beds != 3 || s.Baths != 2 || s.LotSizeAcres != 0.25 || s.YearBuilt != 2000 {
		t.Fatalf("defaults wrong: %+v", s)
	}
	if s.ValuationEstimate != 0 {
		t.Fatalf("valuation = %v, want 0 (unknown)", s.ValuationEstimate)
	}
}
