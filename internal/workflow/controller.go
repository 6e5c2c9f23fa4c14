// Package workflow sequences the analysis pipeline: address resolution,
// property lookup, manual entry, scenario analysis, and export. The
// controller owns the single session-scoped state and is the only thing
// that mutates it, always in response to one completed I/O call or one user
// input event.
package workflow

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/jdelgado/dealscope/internal/analysis"
	"github.com/jdelgado/dealscope/internal/comps"
	"github.com/jdelgado/dealscope/internal/export"
	"github.com/jdelgado/dealscope/internal/property"
)

type Stage string

const (
	StageLookup   Stage = "lookup"
	StageAnalysis Stage = "analysis"
	StageExport   Stage = "export"
)

// ErrAnalysisInFlight gates concurrent analysis: a second run while one is
// pending is a no-op until the pending one resolves.
var ErrAnalysisInFlight = errors.New("analysis already in flight")

// ErrExportInFlight gates concurrent exports the same way.
var ErrExportInFlight = errors.New("export already in flight")

// StageError ties a failure to the pipeline stage it occurred in.
type StageError struct {
	Stage Stage
	Err   error
}

func (e *StageError) Error() string { return fmt.Sprintf("%s: %v", e.Stage, e.Err) }
func (e *StageError) Unwrap() error { return e.Err }

// ProgressFn receives stage transition notices.
type ProgressFn func(stage Stage, message string)

// LookupService resolves an address into a subject partial and comps.
type LookupService interface {
	Lookup(ctx context.Context, address string) (property.LookupResponse, error)
}

// AnalysisService computes scenarios for an assembled request.
type AnalysisService interface {
	Analyze(ctx context.Context, req analysis.Request) (*analysis.Result, error)
}

// ExportService generates and saves a report document.
type ExportService interface {
	Export(ctx context.Context, result *analysis.Result, format export.Format) (string, error)
}

// Session is the single in-memory state for one property under analysis. It
// is never persisted.
type Session struct {
	ID            uuid.UUID
	Subject       property.SubjectProperty
	PurchasePrice float64
	Comps         []comps.Comp
	CompStats     comps.Aggregate
	Result        *analysis.Result
}

// StageStatus is the per-stage loading/error pair the UI layer reads.
type StageStatus struct {
	InFlight bool
	Err      error
}

// Controller drives the workflow. All exported methods are safe for
// concurrent use; state is guarded by one mutex and each asynchronous stage
// is gated by its own in-flight flag. Lookup and a pending analysis may
// overlap since they touch disjoint state until the user re-triggers
// analysis.
type Controller struct {
	lookup   LookupService
	analyzer AnalysisService
	exporter ExportService
	log      *zap.Logger
	progress ProgressFn

	mu      sync.Mutex
	session Session
	status  map[Stage]*StageStatus
}

type Option func(*Controller)

func WithLogger(log *zap.Logger) Option {
	return func(c *Controller) { c.log = log }
}

func WithProgress(fn ProgressFn) Option {
	return func(c *Controller) { c.progress = fn }
}

func NewController(lookup LookupService, analyzer AnalysisService, exporter ExportService, opts ...Option) *Controller {
	c := &Controller{
		lookup:   lookup,
		analyzer: analyzer,
		exporter: exporter,
		log:      zap.NewNop(),
		status: map[Stage]*StageStatus{
			StageLookup:   {},
			StageAnalysis: {},
			StageExport:   {},
		},
	}
	for _, opt := range opts {
		opt(c)
	}
	c.resetSessionLocked()
	return c
}

// StartSession discards all state and begins a fresh session with default
// subject attributes.
func (c *Controller) StartSession() uuid.UUID {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.resetSessionLocked()
	return c.session.ID
}

func (c *Controller) resetSessionLocked() {
	c.session = Session{ID: uuid.New(), Subject: property.NewSubject()}
	for _, st := range c.status {
		st.InFlight = false
		st.Err = nil
	}
}

// AttachAddressProvider wires the autocomplete capability. A nil provider
// degrades silently to manual entry. Each confirmed selection sets the
// address and triggers exactly one lookup.
func (c *Controller) AttachAddressProvider(p SuggestionProvider) {
	if p == nil {
		p = noopProvider{}
	}
	p.Subscribe(func(address string) {
		c.OnAddressSelected(context.Background(), address)
	})
}

// OnAddressSelected records the resolved address and runs the lookup stage.
// The lookup error, if any, is recoverable and already recorded on the
// stage; callers that don't care can ignore the return.
func (c *Controller) OnAddressSelected(ctx context.Context, address string) error {
	c.mu.Lock()
	c.session.Subject.Address = address
	c.mu.Unlock()
	return c.RunLookup(ctx)
}

// RunLookup fetches property details for the session's current address and
// merges the response into the subject. Merging applies only the fields the
// response carried, so edits the user made while the request was in flight
// survive unless the response itself covers them. The comp snapshot, by
// contrast, is replaced wholesale. Failure leaves every field editable and
// never blocks manual entry or analysis.
func (c *Controller) RunLookup(ctx context.Context) error {
	c.mu.Lock()
	address := c.session.Subject.Address
	st := c.status[StageLookup]
	st.InFlight = true
	st.Err = nil
	c.mu.Unlock()

	c.emit(StageLookup, "Looking up property details...")
	resp, err := c.lookup.Lookup(ctx, address)

	c.mu.Lock()
	defer c.mu.Unlock()
	st.InFlight = false
	if err != nil {
		st.Err = &StageError{Stage: StageLookup, Err: err}
		c.log.Warn("lookup failed", zap.String("address", address), zap.Error(err))
		return st.Err
	}

	c.session.Subject.Merge(resp.Subject)
	if resp.Comps != nil {
		c.session.Comps = resp.Comps
		c.session.CompStats = comps.Summarize(resp.Comps)
	}
	c.log.Info("lookup complete",
		zap.String("address", address),
		zap.Int("comps", len(resp.Comps)))
	return nil
}

// Edit applies a manual field edit. Allowed at any time, including while a
// lookup or analysis is pending.
func (c *Controller) Edit(p property.Partial) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.session.Subject.Merge(p)
}

// SetPurchasePrice records the user's purchase price.
func (c *Controller) SetPurchasePrice(v float64) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.session.PurchasePrice = v
}

// RunAnalysis validates the session inputs, issues one analysis call, and
// atomically installs the result. While a call is pending further runs
// return ErrAnalysisInFlight. Validation failures name the offending field
// and perform no request. On any failure the previous result, if any, is
// retained untouched.
func (c *Controller) RunAnalysis(ctx context.Context) (*analysis.Result, error) {
	c.mu.Lock()
	st := c.status[StageAnalysis]
	if st.InFlight {
		c.mu.Unlock()
		return nil, ErrAnalysisInFlight
	}
	req, err := analysis.BuildRequest(c.session.Subject, c.session.PurchasePrice, c.session.Comps)
	if err != nil {
		st.Err = &StageError{Stage: StageAnalysis, Err: err}
		c.mu.Unlock()
		return nil, err
	}
	st.InFlight = true
	st.Err = nil
	c.mu.Unlock()

	c.emit(StageAnalysis, "Running scenario analysis...")
	result, err := c.analyzer.Analyze(ctx, req)

	c.mu.Lock()
	defer c.mu.Unlock()
	st.InFlight = false
	if err != nil {
		st.Err = &StageError{Stage: StageAnalysis, Err: err}
		c.log.Warn("analysis failed", zap.String("address", req.Address), zap.Error(err))
		return nil, st.Err
	}
	c.session.Result = result
	c.log.Info("analysis complete",
		zap.String("address", req.Address),
		zap.Int("scenarios", len(result.Scenarios)))
	return result, nil
}

// RunExport generates a document from the last successful analysis result
// and saves it locally, returning the written path. Without a result the
// action is a no-op returning export.ErrNoResult. Failures are isolated to
// this stage; retry needs no new analysis.
func (c *Controller) RunExport(ctx context.Context, format export.Format) (string, error) {
	c.mu.Lock()
	st := c.status[StageExport]
	if st.InFlight {
		c.mu.Unlock()
		return "", ErrExportInFlight
	}
	result := c.session.Result
	if result == nil {
		c.mu.Unlock()
		return "", export.ErrNoResult
	}
	st.InFlight = true
	st.Err = nil
	c.mu.Unlock()

	c.emit(StageExport, "Generating report...")
	path, err := c.exporter.Export(ctx, result, format)

	c.mu.Lock()
	defer c.mu.Unlock()
	st.InFlight = false
	if err != nil {
		st.Err = &StageError{Stage: StageExport, Err: err}
		c.log.Warn("export failed", zap.Error(err))
		return "", st.Err
	}
	c.log.Info("report saved", zap.String("path", path))
	return path, nil
}

// Snapshot returns a copy of the current session state.
func (c *Controller) Snapshot() Session {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.session
}

// StageState reports the loading/error state of one stage.
func (c *Controller) StageState(stage Stage) StageStatus {
	c.mu.Lock()
	defer c.mu.Unlock()
	if st, ok := c.status[stage]; ok {
		return *st
	}
	return StageStatus{}
}

func (c *Controller) emit(stage Stage, message string) {
	if c.progress != nil {
		c.progress(stage, message)
	}
}
