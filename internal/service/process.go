package service

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/katiamach/rainfall-console/internal/chart"
	"github.com/katiamach/rainfall-console/internal/logger"
	"github.com/katiamach/rainfall-console/internal/model"
)

// Chart kinds.
const (
	ChartHistorical   = "historical"
	ChartSeasonality  = "seasonality"
	ChartStationarity = "stationarity"
	ChartValidation   = "validation"
)

var chartCanvases = map[string]string{
	ChartHistorical:   "chart-historico",
	ChartSeasonality:  "chart-estacionalidad",
	ChartStationarity: "chart-estacionariedad",
	ChartValidation:   "chart-validacion",
}

// SeriesQuery selects the station, month and year of a forecast or chart.
// An empty Location falls back to the station picked on the map.
type SeriesQuery struct {
	Location string `json:"ubicacion"`
	Month    string `json:"mes"`
	Year     int    `json:"anho"`
}

// Predict requests the forecast for q and keeps it as the result card.
func (a *App) Predict(ctx context.Context, q SeriesQuery) (chart.PredictionCard, error) {
	req, err := a.predictionRequest(q)
	if err != nil {
		a.notifyErr(err)
		return chart.PredictionCard{}, err
	}

	res, err := a.repo.Predict(ctx, req)
	if err != nil {
		a.notifyErr(err)
		return chart.PredictionCard{}, fmt.Errorf("failed to predict rainfall for %s: %w", req.Location, err)
	}

	card := chart.Prediction(*res)

	a.mu.Lock()
	a.prediction = &card
	a.mu.Unlock()

	a.notices.Success("Predicción calculada con éxito.")
	a.refresh()

	return card, nil
}

func (a *App) predictionRequest(q SeriesQuery) (model.PredictionRequest, error) {
	location, err := a.resolveLocation(q.Location)
	if err != nil {
		return model.PredictionRequest{}, err
	}

	month, err := model.ParseMonth(q.Month)
	if err != nil {
		return model.PredictionRequest{}, err
	}

	return model.PredictionRequest{Month: month, Year: q.Year, Location: location}, nil
}

func (a *App) resolveLocation(location string) (string, error) {
	location = strings.TrimSpace(location)
	if location != "" {
		return location, nil
	}

	a.mu.Lock()
	defer a.mu.Unlock()

	if a.location == "" {
		return "", ErrNoLocation
	}

	return a.location, nil
}

// Chart draws the chart of the given kind, replacing the one on its canvas.
func (a *App) Chart(ctx context.Context, kind string, q SeriesQuery) (interface{}, error) {
	slot, ok := a.charts[kind]
	if !ok {
		return nil, ErrChartKind
	}

	location, err := a.resolveLocation(q.Location)
	if err != nil {
		a.notifyErr(err)
		return nil, err
	}

	var month model.Month
	if q.Month != "" {
		if month, err = model.ParseMonth(q.Month); err != nil {
			a.notifyErr(err)
			return nil, err
		}
	}

	req := model.SeriesRequest{Location: location, Month: month, Year: q.Year}

	var config interface{}
	err = slot.Replace(func() (interface{}, error) {
		c, err := a.buildChart(ctx, kind, req)
		config = c
		return c, err
	})
	if err != nil {
		a.notifyErr(err)
		return nil, fmt.Errorf("failed to draw %s chart for %s: %w", kind, location, err)
	}

	logger.WithFields(logger.Fields{"chart": kind, "location": location}).Debug("chart drawn")
	return config, nil
}

func (a *App) buildChart(ctx context.Context, kind string, req model.SeriesRequest) (interface{}, error) {
	switch kind {
	case ChartHistorical:
		points, err := a.repo.GetHistorical(ctx, req)
		if err != nil {
			return nil, err
		}
		ref := ""
		if req.Month.Valid() {
			ref = req.Month.String()
		}
		return chart.Historical(req.Location, points, ref), nil
	case ChartSeasonality:
		points, err := a.repo.GetSeasonality(ctx, req.Location)
		if err != nil {
			return nil, err
		}
		return chart.Seasonality(req.Location, points), nil
	case ChartStationarity:
		points, err := a.repo.GetStationarity(ctx, req.Location)
		if err != nil {
			return nil, err
		}
		return chart.Stationarity(req.Location, points), nil
	case ChartValidation:
		result, err := a.repo.GetValidation(ctx, req)
		if err != nil {
			return nil, err
		}
		return chart.Validation(req.Location, *result), nil
	default:
		return nil, ErrChartKind
	}
}

// ChartPNG writes the chart currently drawn for kind as a PNG image.
func (a *App) ChartPNG(kind string, w io.Writer) error {
	slot, ok := a.charts[kind]
	if !ok {
		return ErrChartKind
	}

	config, ok := slot.Config()
	if !ok {
		return ErrNoChart
	}

	exportable, ok := config.(chart.Exportable)
	if !ok {
		return ErrNoChart
	}

	return chart.RenderPNG(w, exportable)
}

// Upload sends a rainfall data file to the API, then reloads the stations.
func (a *App) Upload(ctx context.Context, filename string, content io.Reader) (Snapshot, error) {
	if filename == "" || content == nil {
		a.notifyErr(ErrNoFile)
		return a.Snapshot(), ErrNoFile
	}

	a.notices.Info("Subiendo datos...")

	if err := a.repo.Upload(ctx, filename, content); err != nil {
		a.notifyErr(err)
		return a.refresh(), fmt.Errorf("failed to upload %s: %w", filename, err)
	}

	a.notices.Success("Datos cargados correctamente.")

	if _, err := a.store.Load(ctx); err != nil {
		a.notifyErr(err)
		return a.refresh(), err
	}

	return a.refresh(), nil
}

// Resync reloads the stations in the background. Failures are only logged.
func (a *App) Resync(ctx context.Context) error {
	if _, err := a.store.Load(ctx); err != nil {
		return fmt.Errorf("failed to resync stations: %w", err)
	}

	a.refresh()
	return nil
}
