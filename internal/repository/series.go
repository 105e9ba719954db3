package repository

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"

	"github.com/patrickmn/go-cache"

	"github.com/katiamach/rainfall-console/internal/logger"
	"github.com/katiamach/rainfall-console/internal/model"
)

// Predict asks the API for a rainfall forecast.
func (r *Repository) Predict(ctx context.Context, req model.PredictionRequest) (*model.PredictionResult, error) {
	res := new(model.PredictionResult)
	if err := r.doJSON(ctx, http.MethodPost, predictPath, req, res); err != nil {
		return nil, err
	}

	return res, nil
}

// GetHistorical gets the historical series of a station around the reference month.
func (r *Repository) GetHistorical(ctx context.Context, req model.SeriesRequest) ([]model.HistoricalPoint, error) {
	key := fmt.Sprintf("historical:%s:%d:%d", req.Location, req.Month, req.Year)

	var points []model.HistoricalPoint
	err := r.cachedSeries(ctx, key, historicalPath, req, &points)
	return points, err
}

// GetSeasonality gets the monthly means of a station.
func (r *Repository) GetSeasonality(ctx context.Context, location string) ([]model.SeasonalityPoint, error) {
	key := fmt.Sprintf("seasonality:%s", location)

	var points []model.SeasonalityPoint
	err := r.cachedSeries(ctx, key, seasonalityPath, model.SeriesRequest{Location: location}, &points)
	return points, err
}

// GetStationarity gets the rolling statistics of a station series.
func (r *Repository) GetStationarity(ctx context.Context, location string) ([]model.StationarityPoint, error) {
	key := fmt.Sprintf("stationarity:%s", location)

	var points []model.StationarityPoint
	err := r.cachedSeries(ctx, key, stationarityPath, model.SeriesRequest{Location: location}, &points)
	return points, err
}

// GetValidation gets the real-vs-predicted pairs of a station.
func (r *Repository) GetValidation(ctx context.Context, req model.SeriesRequest) (*model.ValidationResult, error) {
	key := fmt.Sprintf("validation:%s:%d:%d", req.Location, req.Month, req.Year)

	res := new(model.ValidationResult)
	if err := r.cachedSeries(ctx, key, validationPath, req, res); err != nil {
		return nil, err
	}

	return res, nil
}

// cachedSeries serves out from the series cache or fetches and stores it.
// out must be a pointer to the same type on every call with a given key.
func (r *Repository) cachedSeries(ctx context.Context, key, path string, req model.SeriesRequest, out interface{}) error {
	if cached, found := r.series.Get(key); found {
		if b, ok := cached.([]byte); ok {
			logger.WithFields(logger.Fields{"key": key}).Debug("series cache hit")
			return decodeCached(b, out)
		}
	}

	var raw json.RawMessage
	if err := r.doJSON(ctx, http.MethodPost, path, req, &raw); err != nil {
		return err
	}

	r.series.Set(key, []byte(raw), cache.DefaultExpiration)

	return decodeCached(raw, out)
}

func decodeCached(raw []byte, out interface{}) error {
	if err := json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("%w: failed to decode series: %w", ErrTransport, err)
	}

	return nil
}

// Upload sends a CSV file of rainfall records to the API and drops the
// cached series, which are stale afterwards.
func (r *Repository) Upload(ctx context.Context, filename string, content io.Reader) error {
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)

	part, err := mw.CreateFormFile("file", filename)
	if err != nil {
		return fmt.Errorf("failed to create form file: %w", err)
	}
	if _, err := io.Copy(part, content); err != nil {
		return fmt.Errorf("failed to copy upload content: %w", err)
	}
	if err := mw.Close(); err != nil {
		return fmt.Errorf("failed to close multipart writer: %w", err)
	}

	if err := r.do(ctx, http.MethodPost, uploadPath, &buf, mw.FormDataContentType(), nil); err != nil {
		return err
	}

	r.FlushSeries()
	return nil
}
