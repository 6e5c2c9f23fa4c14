package property

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/jdelgado/dealscope/internal/comps"
)

// ErrNotFound is returned when the property service has no record for the
// address. It is recoverable: the user proceeds with manual entry.
var ErrNotFound = errors.New("property not found")

// LookupResponse is the canonical result of one lookup: a subject partial
// carrying only the fields the service actually returned, plus the comp
// snapshot when the deployment bundles comps with the lookup.
type LookupResponse struct {
	Subject Partial
	Comps   []comps.Comp
}

// lookupRecord covers both wire variants of the subject payload. Prices may
// be bare numbers or {value} objects; comps.Money absorbs both.
type lookupRecord struct {
	Address       string      `json:"address"`
	Sqft          *float64    `json:"sqft"`
	Beds          *float64    `json:"beds"`
	Baths         *float64    `json:"baths"`
	LotSize       *float64    `json:"lot_size"`
	YearBuilt     *int        `json:"year_built"`
	Zestimate     comps.Money `json:"zestimate"`
	RentZestimate comps.Money `json:"rent_zestimate"`
	Latitude      *float64    `json:"latitude"`
	Longitude     *float64    `json:"longitude"`
	Zipcode       string      `json:"zipcode"`
	Zpid          string      `json:"zpid"`
	ZillowURL     string      `json:"zillow_url"`
	ImageURL      string      `json:"image_url"`
	Status        string      `json:"status"`
}

// Client calls the property lookup endpoint and normalizes its response.
type Client struct {
	baseURL string
	http    *http.Client
}

func NewClient(baseURL string) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: 120 * time.Second},
	}
}

// Lookup fetches property details for a non-empty address. A 404 maps to
// ErrNotFound; transport and other status failures are wrapped. Either way
// the caller's state is untouched.
func (c *Client) Lookup(ctx context.Context, address string) (LookupResponse, error) {
	if strings.TrimSpace(address) == "" {
		return LookupResponse{}, fmt.Errorf("lookup: address is empty")
	}
	payload, _ := json.Marshal(map[string]string{"address": address})
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/api/lookup-property", bytes.NewReader(payload))
	if err != nil {
		return LookupResponse{}, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return LookupResponse{}, fmt.Errorf("lookup: %w", err)
	}
	defer resp.Body.Close()
	blob, _ := io.ReadAll(resp.Body)

	if resp.StatusCode == http.StatusNotFound {
		return LookupResponse{}, ErrNotFound
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return LookupResponse{}, fmt.Errorf("lookup: status %d", resp.StatusCode)
	}
	return parseLookup(blob)
}

// parseLookup dispatches on the envelope shape: some deployments nest the
// subject under a "subject" key, others return it flat.
func parseLookup(blob []byte) (LookupResponse, error) {
	var envelope struct {
		Subject *lookupRecord `json:"subject"`
		Comps   []comps.Raw   `json:"comps"`
	}
	if err := json.Unmarshal(blob, &envelope); err != nil {
		return LookupResponse{}, fmt.Errorf("lookup: decode response: %w", err)
	}
	if envelope.Subject != nil {
		return parseNested(*envelope.Subject, envelope.Comps), nil
	}
	return parseFlat(blob)
}

func parseFlat(blob []byte) (LookupResponse, error) {
	var rec lookupRecord
	if err := json.Unmarshal(blob, &rec); err != nil {
		return LookupResponse{}, fmt.Errorf("lookup: decode response: %w", err)
	}
	var raw struct {
		Comps []comps.Raw `json:"comps"`
	}
	_ = json.Unmarshal(blob, &raw)
	return LookupResponse{Subject: rec.partial(), Comps: comps.Normalize(raw.Comps)}, nil
}

func parseNested(rec lookupRecord, rawComps []comps.Raw) LookupResponse {
	return LookupResponse{Subject: rec.partial(), Comps: comps.Normalize(rawComps)}
}

// partial keeps only the fields the response actually carried. Empty strings
// and absent numbers never make it into the merge.
func (r lookupRecord) partial() Partial {
	var p Partial
	if s := strings.TrimSpace(r.Address); s != "" {
		p.Address = &s
	}
	if r.Sqft != nil {
		v := int(*r.Sqft)
		p.LivingAreaSqft = &v
	}
	p.Beds = r.Beds
	p.Baths = r.Baths
	p.LotSizeAcres = r.LotSize
	p.YearBuilt = r.YearBuilt
	if r.Zestimate.Set {
		v := r.Zestimate.Value
		p.ValuationEstimate = &v
	}
	if r.RentZestimate.Set {
		v := r.RentZestimate.Value
		p.RentalValuationEstimate = &v
	}
	p.Latitude = r.Latitude
	p.Longitude = r.Longitude
	if r.Zipcode != "" {
		p.Zip = &r.Zipcode
	}
	if r.Zpid != "" {
		p.ExternalID = &r.Zpid
	}
	if r.ZillowURL != "" {
		p.ExternalListingURL = &r.ZillowURL
	}
	if r.ImageURL != "" {
		p.PhotoURL = &r.ImageURL
	}
	if r.Status != "" {
		p.Status = &r.Status
	}
	return p
}
