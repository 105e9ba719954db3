// Package repository provides access to the remote rainfall API, which owns
// station storage and every statistical computation.
package repository

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

	"github.com/patrickmn/go-cache"

	"github.com/katiamach/rainfall-console/internal/logger"
)

// API paths.
const (
	stationsPath     = "/api/estaciones"
	predictPath      = "/api/predecir"
	historicalPath   = "/api/historico"
	seasonalityPath  = "/api/estacionalidad"
	stationarityPath = "/api/estacionariedad"
	validationPath   = "/api/validacion"
	uploadPath       = "/api/upload"
)

// Defaults applied to a zero Config.
const (
	DefaultTimeout        = 10 * time.Second
	DefaultSeriesCacheTTL = 5 * time.Minute
)

// ErrTransport wraps network and decoding failures. The caller should keep
// its last known-good state when it sees it.
var ErrTransport = errors.New("rainfall api request failed")

// APIError is an error reported by the API itself in an {"error": "..."} body.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	return e.Message
}

// Config holds the API client settings.
type Config struct {
	BaseURL        string
	Timeout        time.Duration
	SeriesCacheTTL time.Duration
	HTTPClient     *http.Client
}

// Repository is a client of the rainfall API.
type Repository struct {
	baseURL string
	timeout time.Duration
	client  *http.Client
	series  *cache.Cache
}

// New creates new repository for the API at cfg.BaseURL.
func New(cfg Config) *Repository {
	if cfg.Timeout <= 0 {
		cfg.Timeout = DefaultTimeout
	}
	if cfg.SeriesCacheTTL <= 0 {
		cfg.SeriesCacheTTL = DefaultSeriesCacheTTL
	}
	if cfg.HTTPClient == nil {
		cfg.HTTPClient = &http.Client{}
	}

	return &Repository{
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		timeout: cfg.Timeout,
		client:  cfg.HTTPClient,
		series:  cache.New(cfg.SeriesCacheTTL, 2*cfg.SeriesCacheTTL),
	}
}

// FlushSeries drops every cached series, used after new data is uploaded.
func (r *Repository) FlushSeries() {
	r.series.Flush()
}

func (r *Repository) doJSON(ctx context.Context, method, path string, payload, out interface{}) error {
	var body io.Reader
	if payload != nil {
		b, err := json.Marshal(payload)
		if err != nil {
			return fmt.Errorf("failed to encode request: %w", err)
		}
		body = bytes.NewReader(b)
	}

	contentType := ""
	if payload != nil {
		contentType = "application/json"
	}

	return r.do(ctx, method, path, body, contentType, out)
}

func (r *Repository) do(ctx context.Context, method, path string, body io.Reader, contentType string, out interface{}) error {
	ctxWithTimeout, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctxWithTimeout, method, r.baseURL+path, body)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	req.Header.Set("Accept", "application/json")

	started := time.Now()
	resp, err := r.client.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %s %s: %w", ErrTransport, method, path, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("%w: failed to read response body: %w", ErrTransport, err)
	}

	logger.WithFields(logger.Fields{
		"method":   method,
		"path":     path,
		"status":   resp.StatusCode,
		"duration": time.Since(started).String(),
	}).Debug("rainfall api call")

	if apiErr := decodeAPIError(resp.StatusCode, raw); apiErr != nil {
		return apiErr
	}

	if out == nil || len(bytes.TrimSpace(raw)) == 0 {
		return nil
	}

	if err := json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("%w: failed to decode response: %w", ErrTransport, err)
	}

	return nil
}

// decodeAPIError finds an {"error": "<message>"} body. A numeric "error"
// field, as in a successful prediction, is not an API error.
func decodeAPIError(status int, raw []byte) error {
	var body struct {
		Error json.RawMessage `json:"error"`
	}

	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) > 0 && trimmed[0] == '{' && json.Unmarshal(trimmed, &body) == nil {
		var msg string
		if len(body.Error) > 0 && json.Unmarshal(body.Error, &msg) == nil && msg != "" {
			return &APIError{Status: status, Message: msg}
		}
	}

	if status >= http.StatusBadRequest {
		return &APIError{Status: status, Message: http.StatusText(status)}
	}

	return nil
}
