package repository

import (
	"context"
	"fmt"
	"net/http"

	"github.com/katiamach/rainfall-console/internal/model"
)

// GetStations gets every station known to the API.
func (r *Repository) GetStations(ctx context.Context) ([]model.Station, error) {
	var stations []model.Station
	if err := r.doJSON(ctx, http.MethodGet, stationsPath, nil, &stations); err != nil {
		return nil, err
	}

	if stations == nil {
		stations = []model.Station{}
	}

	return stations, nil
}

// InsertStation creates a station.
func (r *Repository) InsertStation(ctx context.Context, input model.StationInput) error {
	return r.doJSON(ctx, http.MethodPost, stationsPath, input, nil)
}

// UpdateStation applies a partial update to the station with the given id.
func (r *Repository) UpdateStation(ctx context.Context, id int64, patch model.StationPatch) error {
	return r.doJSON(ctx, http.MethodPut, stationPath(id), patch, nil)
}

// DeleteStation removes the station with the given id.
func (r *Repository) DeleteStation(ctx context.Context, id int64) error {
	return r.doJSON(ctx, http.MethodDelete, stationPath(id), nil, nil)
}

func stationPath(id int64) string {
	return fmt.Sprintf("%s/%d", stationsPath, id)
}
