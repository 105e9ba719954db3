// Package store holds the authoritative in-memory list of stations. The map
// markers and the station table are both rendered from it.
package store

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
	"sync"

	"github.com/umahmood/haversine"

	"github.com/katiamach/rainfall-console/internal/logger"
	"github.com/katiamach/rainfall-console/internal/model"
)

//go:generate mockgen -source=store.go -destination=mock/mock.go StationAPI

// Store errors.
var (
	ErrDefaultStation = errors.New("built-in stations cannot be deleted")
	ErrNoSuchStation  = errors.New("station does not exist")
	ErrBusy           = errors.New("another request for this station is still in flight")
	ErrReload         = errors.New("change saved but the station list could not be refreshed")
)

// StationAPI provides the remote station operations.
type StationAPI interface {
	GetStations(ctx context.Context) ([]model.Station, error)
	InsertStation(ctx context.Context, input model.StationInput) error
	UpdateStation(ctx context.Context, id int64, patch model.StationPatch) error
	DeleteStation(ctx context.Context, id int64) error
}

// Store is the client-side copy of the station list. It is never patched
// locally: every successful mutation is followed by a full reload.
type Store struct {
	api StationAPI

	mu       sync.RWMutex
	stations []model.Station

	flightMu sync.Mutex
	inFlight map[string]struct{}
}

// New creates new Store backed by api. The store starts empty until Load.
func New(api StationAPI) *Store {
	return &Store{
		api:      api,
		stations: []model.Station{},
		inFlight: make(map[string]struct{}),
	}
}

// DefaultStations returns the built-in stations shown when the API has none.
func DefaultStations() []model.Station {
	return []model.Station{
		{Name: "Mcal. Estigarribia", Department: "Boquerón", Location: &model.Coordinate{Lat: -22.0167, Lng: -60.6167}},
		{Name: "Paraguari", Department: "Paraguarí", Location: &model.Coordinate{Lat: -25.6167, Lng: -57.15}},
		{Name: "Asunción", Department: "Capital", Location: &model.Coordinate{Lat: -25.2637, Lng: -57.5759}},
	}
}

// Load fetches the station list and replaces the store contents with it.
// An empty list is replaced by the built-in stations. On failure the
// previous contents are kept.
func (s *Store) Load(ctx context.Context) ([]model.Station, error) {
	stations, err := s.api.GetStations(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load stations: %w", err)
	}

	if len(stations) == 0 {
		logger.Info("no stations stored yet, using built-in stations")
		stations = DefaultStations()
	}

	s.mu.Lock()
	s.stations = stations
	s.mu.Unlock()

	return cloneAll(stations), nil
}

// Stations returns a copy of the current contents.
func (s *Store) Stations() []model.Station {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return cloneAll(s.stations)
}

// Filter returns the stations whose name or department contains term,
// ignoring case and diacritics. An empty term matches every station.
func (s *Store) Filter(term string) []model.Station {
	return FilterStations(s.Stations(), term)
}

// FilterStations is the pure filter applied by Store.Filter.
func FilterStations(stations []model.Station, term string) []model.Station {
	needle := model.Fold(strings.TrimSpace(term))

	filtered := make([]model.Station, 0, len(stations))
	for _, st := range stations {
		if needle == "" ||
			strings.Contains(model.Fold(st.Name), needle) ||
			strings.Contains(model.Fold(st.Department), needle) {
			filtered = append(filtered, st.Clone())
		}
	}

	return filtered
}

// Find looks a station up by its name.
func (s *Store) Find(name string) (model.Station, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, st := range s.stations {
		if st.Name == name {
			return st.Clone(), true
		}
	}

	return model.Station{}, false
}

// FindByID looks a persisted station up by its id.
func (s *Store) FindByID(id int64) (model.Station, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, st := range s.stations {
		if st.ID != nil && *st.ID == id {
			return st.Clone(), true
		}
	}

	return model.Station{}, false
}

// Nearest finds the located station closest to c and its distance in km.
func (s *Store) Nearest(c model.Coordinate) (model.Station, float64, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	from := haversine.Coord{Lat: c.Lat, Lon: c.Lng}

	var nearest model.Station
	minDistance := math.Inf(1)
	for _, st := range s.stations {
		if !st.Located() {
			continue
		}

		_, km := haversine.Distance(from, haversine.Coord{Lat: st.Location.Lat, Lon: st.Location.Lng})
		if km < minDistance {
			minDistance = km
			nearest = st
		}
	}

	if math.IsInf(minDistance, 1) {
		return model.Station{}, 0, false
	}

	return nearest.Clone(), minDistance, true
}

// Create creates a station and reloads the store.
func (s *Store) Create(ctx context.Context, input model.StationInput) error {
	release, err := s.acquire("name:" + input.Name)
	if err != nil {
		return err
	}
	defer release()

	if err := s.api.InsertStation(ctx, input); err != nil {
		return fmt.Errorf("failed to create station: %w", err)
	}

	return s.reload(ctx)
}

// Update applies patch to the station with the given id and reloads the store.
func (s *Store) Update(ctx context.Context, id int64, patch model.StationPatch) error {
	release, err := s.acquire(idKey(id))
	if err != nil {
		return err
	}
	defer release()

	if err := s.api.UpdateStation(ctx, id, patch); err != nil {
		return fmt.Errorf("failed to update station: %w", err)
	}

	return s.reload(ctx)
}

// Delete removes the station with the given id and reloads the store. A nil
// id belongs to a built-in station and is refused without a network call.
func (s *Store) Delete(ctx context.Context, id *int64) error {
	if id == nil {
		return ErrDefaultStation
	}

	release, err := s.acquire(idKey(*id))
	if err != nil {
		return err
	}
	defer release()

	if err := s.api.DeleteStation(ctx, *id); err != nil {
		return fmt.Errorf("failed to delete station: %w", err)
	}

	return s.reload(ctx)
}

// acquire marks key as having a mutation in flight. A second mutation for
// the same station fails with ErrBusy until release is called.
func (s *Store) acquire(key string) (func(), error) {
	s.flightMu.Lock()
	defer s.flightMu.Unlock()

	if _, busy := s.inFlight[key]; busy {
		return nil, ErrBusy
	}
	s.inFlight[key] = struct{}{}

	return func() {
		s.flightMu.Lock()
		delete(s.inFlight, key)
		s.flightMu.Unlock()
	}, nil
}

func idKey(id int64) string {
	return "id:" + strconv.FormatInt(id, 10)
}

// reload refreshes the store after a mutation that already succeeded. Its
// failure is reported as ErrReload so callers do not retry the mutation.
func (s *Store) reload(ctx context.Context) error {
	if _, err := s.Load(ctx); err != nil {
		return fmt.Errorf("%w: %w", ErrReload, err)
	}

	return nil
}

func cloneAll(stations []model.Station) []model.Station {
	out := make([]model.Station, len(stations))
	for i, st := range stations {
		out[i] = st.Clone()
	}

	return out
}
