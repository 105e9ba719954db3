package model

// PredictionRequest asks for a rainfall forecast.
type PredictionRequest struct {
	Month    Month  `json:"mes"`
	Year     int    `json:"anho"`
	Location string `json:"ubicacion"`
}

// PredictionResult is a forecast. Real and AbsError are set only when the
// observed value for the requested month is known.
type PredictionResult struct {
	Estimate    float64  `json:"estimacion"`
	Probability float64  `json:"probabilidad"`
	Intensity   string   `json:"intensidad"`
	Emoji       string   `json:"emoji"`
	Real        *float64 `json:"real"`
	AbsError    *float64 `json:"error"`
}

// SeriesRequest selects a station series. Month and Year are omitted by the
// endpoints that do not use them.
type SeriesRequest struct {
	Location string `json:"ubicacion"`
	Month    Month  `json:"mes,omitempty"`
	Year     int    `json:"anho,omitempty"`
}

// HistoricalPoint is one month of the historical series.
type HistoricalPoint struct {
	Label      string  `json:"label"`
	Value      float64 `json:"valor"`
	Normalized float64 `json:"valor_normalizado"`
	Month      string  `json:"mes"`
	Year       int     `json:"anho,omitempty"`
	Projected  bool    `json:"es_prediccion,omitempty"`
}

// SeasonalityPoint is the mean rainfall of a calendar month.
type SeasonalityPoint struct {
	Month string  `json:"mes"`
	Mean  float64 `json:"promedio"`
}

// StationarityPoint carries the rolling statistics of the series at one label.
type StationarityPoint struct {
	Label    string  `json:"label"`
	Original float64 `json:"original"`
	Mean     float64 `json:"mean"`
	Std      float64 `json:"std"`
}

// ValidationPair is an observed value next to the value the model predicted.
type ValidationPair struct {
	Real      float64 `json:"real"`
	Predicted float64 `json:"predicho"`
	Year      int     `json:"anho"`
	Month     string  `json:"mes"`
}

// ValidationResult is the real-vs-predicted comparison of a station.
type ValidationResult struct {
	Pairs []ValidationPair `json:"pairs"`
	RMSE  *float64         `json:"rmse"`
	R2    *float64         `json:"r2"`
}
