// Package export turns the current analysis result into a locally saved
// report document via the service's document-generation endpoints.
package export

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"time"

	"github.com/jdelgado/dealscope/internal/analysis"
)

// ErrNoResult is returned when export is attempted before any analysis has
// succeeded.
var ErrNoResult = errors.New("export: no analysis result")

type Format string

const (
	FormatPDF   Format = "pdf"
	FormatExcel Format = "excel"
)

func (f Format) extension() string {
	if f == FormatExcel {
		return ".xlsx"
	}
	return ".pdf"
}

func (f Format) endpoint() string {
	if f == FormatExcel {
		return "/api/report/excel"
	}
	return "/api/report/pdf"
}

// Dispatcher posts the full analysis result and persists the opaque binary
// response under the configured directory.
type Dispatcher struct {
	baseURL string
	dir     string
	http    *http.Client
}

func NewDispatcher(baseURL, dir string) *Dispatcher {
	return &Dispatcher{
		baseURL: strings.TrimRight(baseURL, "/"),
		dir:     dir,
		http:    &http.Client{Timeout: 120 * time.Second},
	}
}

// Export generates a document for the result and writes it locally,
// returning the written path. A failure leaves no other state changed; the
// caller may retry without re-running analysis.
func (d *Dispatcher) Export(ctx context.Context, result *analysis.Result, format Format) (string, error) {
	if result == nil {
		return "", ErrNoResult
	}
	payload, err := json.Marshal(result)
	if err != nil {
		return "", err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, d.baseURL+format.endpoint(), bytes.NewReader(payload))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := d.http.Do(req)
	if err != nil {
		return "", fmt.Errorf("export: %w", err)
	}
	defer resp.Body.Close()
	blob, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("export: read response: %w", err)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", fmt.Errorf("export: status %d", resp.StatusCode)
	}

	path := filepath.Join(d.dir, Filename(result.Address, format))
	if err := os.WriteFile(path, blob, 0o644); err != nil {
		return "", fmt.Errorf("export: save %s: %w", path, err)
	}
	return path, nil
}

var unsafeChars = regexp.MustCompile(`[^A-Za-z0-9]+`)

// Filename derives a filesystem-safe name from the address: runs of
// non-alphanumeric characters collapse to single underscores.
func Filename(address string, format Format) string {
	base := unsafeChars.ReplaceAllString(address, "_")
	base = strings.Trim(base, "_")
	if base == "" {
		base = "property"
	}
	return base + "_Analysis" + format.extension()
}
