// Package chart turns the server time series into chart configurations.
package chart

import (
	"fmt"
	"strconv"

	"github.com/katiamach/rainfall-console/internal/model"
	"github.com/katiamach/rainfall-console/internal/numeric"
)

// SeasonalityWindow is the moving-average window of the seasonality chart.
const SeasonalityWindow = 3

// PointStyle is the emphasis of a single point.
type PointStyle string

// Point styles, in increasing precedence.
const (
	PointOrdinary  PointStyle = "ordinary"
	PointReference PointStyle = "reference"
	PointProjected PointStyle = "projected"
)

const (
	colorValue      = "rgba(54, 162, 235, 1)"
	colorReference  = "rgba(255, 99, 132, 1)"
	colorProjected  = "rgba(255, 159, 64, 1)"
	colorTrend      = "rgba(75, 192, 192, 1)"
	colorRegression = "rgba(153, 102, 255, 1)"
	colorStd        = "rgba(201, 203, 207, 1)"
	colorIdentity   = "rgba(100, 100, 100, 0.8)"
)

// Point is the styling of one point of a series.
type Point struct {
	Style  PointStyle `json:"style"`
	Color  string     `json:"color"`
	Radius float64    `json:"radius"`
}

// Series is one line of a LineChart.
type Series struct {
	Label  string    `json:"label"`
	Values []float64 `json:"values"`
	Color  string    `json:"color"`
	Dashed bool      `json:"dashed,omitempty"`
	Points []Point   `json:"points,omitempty"`
}

// LineChart is a chart over categorical labels.
type LineChart struct {
	Title  string   `json:"title"`
	YLabel string   `json:"y_label,omitempty"`
	Labels []string `json:"labels"`
	Series []Series `json:"series"`
}

// XY is a scatter point.
type XY struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// ScatterSeries is one group of a ScatterChart. Line series are drawn as a
// segment through their points.
type ScatterSeries struct {
	Label  string `json:"label"`
	Color  string `json:"color"`
	Points []XY   `json:"points"`
	Line   bool   `json:"line,omitempty"`
}

// ScatterChart plots real against predicted values.
type ScatterChart struct {
	Title    string          `json:"title"`
	Subtitle string          `json:"subtitle,omitempty"`
	XLabel   string          `json:"x_label"`
	YLabel   string          `json:"y_label"`
	Series   []ScatterSeries `json:"series"`
	RMSE     float64         `json:"rmse"`
	R2       float64         `json:"r2"`
}

// StyleOf returns the style of p for the selected reference month. A
// projected point keeps the projected style even in the reference month.
func StyleOf(p model.HistoricalPoint, refMonth string) PointStyle {
	switch {
	case p.Projected:
		return PointProjected
	case refMonth != "" && model.SameMonth(p.Month, refMonth):
		return PointReference
	default:
		return PointOrdinary
	}
}

func pointFor(style PointStyle) Point {
	switch style {
	case PointProjected:
		return Point{Style: style, Color: colorProjected, Radius: 5}
	case PointReference:
		return Point{Style: style, Color: colorReference, Radius: 6}
	default:
		return Point{Style: style, Color: colorValue, Radius: 3}
	}
}

// Historical builds the historical chart of a station: observed values with
// per-point styling, the normalized trend and a linear fit of the values.
func Historical(location string, points []model.HistoricalPoint, refMonth string) LineChart {
	labels := make([]string, 0, len(points))
	values := make([]float64, 0, len(points))
	normalized := make([]float64, 0, len(points))
	styles := make([]Point, 0, len(points))

	for _, p := range points {
		labels = append(labels, p.Label)
		values = append(values, p.Value)
		normalized = append(normalized, p.Normalized)
		styles = append(styles, pointFor(StyleOf(p, refMonth)))
	}

	title := location
	if refMonth != "" {
		title = fmt.Sprintf("%s (%s)", location, refMonth)
	}

	return LineChart{
		Title:  title,
		YLabel: "mm",
		Labels: labels,
		Series: []Series{
			{Label: "Precipitación Real (mm)", Values: values, Color: colorValue, Points: styles},
			{Label: "Tendencia Normalizada", Values: normalized, Color: colorTrend, Dashed: true},
			{Label: "Regresión Lineal", Values: numeric.LinearRegression(values), Color: colorRegression, Dashed: true},
		},
	}
}

// Seasonality builds the monthly mean chart with its smoothed curve.
func Seasonality(location string, points []model.SeasonalityPoint) LineChart {
	labels := make([]string, 0, len(points))
	means := make([]float64, 0, len(points))
	for _, p := range points {
		labels = append(labels, p.Month)
		means = append(means, p.Mean)
	}

	return LineChart{
		Title:  "Estacionalidad: " + location,
		YLabel: "mm",
		Labels: labels,
		Series: []Series{
			{Label: "Promedio mensual (mm)", Values: means, Color: colorValue},
			{Label: "Media móvil (" + strconv.Itoa(SeasonalityWindow) + " meses)", Values: numeric.CenteredMovingAverage(means, SeasonalityWindow), Color: colorReference, Dashed: true},
		},
	}
}

// Stationarity builds the rolling statistics chart.
func Stationarity(location string, points []model.StationarityPoint) LineChart {
	labels := make([]string, 0, len(points))
	original := make([]float64, 0, len(points))
	mean := make([]float64, 0, len(points))
	std := make([]float64, 0, len(points))
	for _, p := range points {
		labels = append(labels, p.Label)
		original = append(original, p.Original)
		mean = append(mean, p.Mean)
		std = append(std, p.Std)
	}

	return LineChart{
		Title:  "Estacionariedad: " + location,
		YLabel: "mm",
		Labels: labels,
		Series: []Series{
			{Label: "Serie original", Values: original, Color: colorValue},
			{Label: "Media móvil", Values: mean, Color: colorReference},
			{Label: "Desviación estándar", Values: std, Color: colorStd, Dashed: true},
		},
	}
}

// Validation builds the real-vs-predicted scatter: one group per year and an
// identity line across the extent of both axes. Missing metrics are computed
// from the pairs.
func Validation(location string, result model.ValidationResult) ScatterChart {
	pairs := make([]numeric.YearPair, 0, len(result.Pairs))
	reals := make([]float64, 0, len(result.Pairs))
	predicted := make([]float64, 0, len(result.Pairs))
	for _, p := range result.Pairs {
		pairs = append(pairs, numeric.YearPair{Year: p.Year, Real: p.Real, Predicted: p.Predicted})
		reals = append(reals, p.Real)
		predicted = append(predicted, p.Predicted)
	}

	palette := numeric.YearPalette(pairs)
	byYear := make(map[int][]XY, len(palette))
	for _, p := range pairs {
		byYear[p.Year] = append(byYear[p.Year], XY{X: p.Real, Y: p.Predicted})
	}

	c := ScatterChart{
		Title:  "Validación: " + location,
		XLabel: "Real (mm)",
		YLabel: "Predicho (mm)",
		Series: make([]ScatterSeries, 0, len(palette)+1),
	}
	for _, y := range numeric.Years(pairs) {
		c.Series = append(c.Series, ScatterSeries{
			Label:  strconv.Itoa(y),
			Color:  palette[y].String(),
			Points: byYear[y],
		})
	}

	if lo, hi, ok := numeric.MinMax(reals, predicted); ok {
		c.Series = append(c.Series, ScatterSeries{
			Label:  "Ideal (y = x)",
			Color:  colorIdentity,
			Points: []XY{{X: lo, Y: lo}, {X: hi, Y: hi}},
			Line:   true,
		})
	}

	c.RMSE = numeric.RMSE(pairs)
	if result.RMSE != nil {
		c.RMSE = *result.RMSE
	}
	c.R2 = numeric.R2(pairs)
	if result.R2 != nil {
		c.R2 = *result.R2
	}
	if len(pairs) > 0 {
		c.Subtitle = fmt.Sprintf("RMSE: %.2f mm | R²: %.3f", c.RMSE, c.R2)
	}

	return c
}

// Contrast compares a forecast with the observed value.
type Contrast struct {
	Real     float64  `json:"real"`
	AbsError *float64 `json:"error,omitempty"`
}

// PredictionCard is the forecast result block.
type PredictionCard struct {
	Estimate    float64   `json:"estimate"`
	Probability float64   `json:"probability"`
	Intensity   string    `json:"intensity"`
	Emoji       string    `json:"emoji"`
	Contrast    *Contrast `json:"contrast,omitempty"`
}

// Prediction builds the card of r. The contrast block is present only when
// the observed value is known.
func Prediction(r model.PredictionResult) PredictionCard {
	card := PredictionCard{
		Estimate:    r.Estimate,
		Probability: r.Probability,
		Intensity:   r.Intensity,
		Emoji:       r.Emoji,
	}
	if r.Real != nil {
		card.Contrast = &Contrast{Real: *r.Real, AbsError: r.AbsError}
	}

	return card
}
