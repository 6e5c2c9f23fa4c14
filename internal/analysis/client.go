package analysis

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/jdelgado/dealscope/internal/comps"
	"github.com/jdelgado/dealscope/internal/scenario"
)

// APIError is a non-2xx response from the analysis service. Message is the
// service's own error text when it sent one, surfaced verbatim.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return fmt.Sprintf("analysis failed (status %d)", e.Status)
}

// Result is the aggregate built atomically from one successful analysis
// response. Best references alias Scenarios. A failed call never produces a
// partial Result.
type Result struct {
	Address string `json:"address"`

	// Valuation context from the service.
	Valuation      float64 `json:"zestimate,omitempty"`
	EstimatedValue float64 `json:"estimated_value,omitempty"`

	Comps     []comps.Comp    `json:"comps"`
	CompStats comps.Aggregate `json:"comp_stats"`

	Scenarios []scenario.Scenario `json:"scenarios"`

	Ranking scenario.Ranking `json:"-"`
}

// responseEnvelope is the service's wire shape. The best_* hints and the
// pre-partitioned scenario lists some variants send are ignored: ranking is
// derived locally from the raw list per the documented rules.
type responseEnvelope struct {
	Address   string         `json:"address"`
	Zestimate comps.Money    `json:"zestimate"`
	Scenarios []scenario.Raw `json:"scenarios"`
	Comps     struct {
		TotalFound          int         `json:"total_found"`
		AveragePrice        float64     `json:"average_price"`
		AveragePricePerSqft float64     `json:"average_price_per_sqft"`
		EstimatedValue      float64     `json:"estimated_value"`
		Properties          []comps.Raw `json:"properties"`
	} `json:"comps"`
}

// Client calls the analysis service.
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

// Analyze posts the request and assembles the Result. Transport failures are
// wrapped as-is; non-2xx responses become an *APIError carrying the
// service's message when one was present.
func (c *Client) Analyze(ctx context.Context, req Request) (*Result, error) {
	payload, err := json.Marshal(req)
	if err != nil {
		return nil, err
	}
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/api/analyze", bytes.NewReader(payload))
	if err != nil {
		return nil, err
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("analysis request: %w", err)
	}
	defer resp.Body.Close()
	blob, _ := io.ReadAll(resp.Body)

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		apiErr := &APIError{Status: resp.StatusCode}
		var body struct {
			Error string `json:"error"`
		}
		if json.Unmarshal(blob, &body) == nil {
			apiErr.Message = strings.TrimSpace(body.Error)
		}
		return nil, apiErr
	}

	var env responseEnvelope
	if err := json.Unmarshal(blob, &env); err != nil {
		return nil, fmt.Errorf("analysis: decode response: %w", err)
	}
	return buildResult(req, env), nil
}

func buildResult(req Request, env responseEnvelope) *Result {
	res := &Result{
		Address:        env.Address,
		EstimatedValue: env.Comps.EstimatedValue,
		Comps:          comps.Normalize(env.Comps.Properties),
		Scenarios:      scenario.Normalize(env.Scenarios),
	}
	if res.Address == "" {
		res.Address = req.Address
	}
	if env.Zestimate.Set {
		res.Valuation = env.Zestimate.Value
	} else {
		res.Valuation = req.Zestimate
	}
	res.CompStats = comps.Summarize(res.Comps)
	res.Ranking = scenario.Rank(res.Scenarios)
	return res
}

// Health probes the service's health endpoint. Used as a connectivity
// preflight; any error means the service is unreachable or unhealthy.
func (c *Client) Health(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/health", nil)
	if err != nil {
		return err
	}
	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("health check: %w", err)
	}
	defer resp.Body.Close()
	io.Copy(io.Discard, resp.Body)
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("health check: status %d", resp.StatusCode)
	}
	return nil
}
