// Package service holds the state of one operator session and applies the
// page gestures to it.
package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/katiamach/rainfall-console/internal/chart"
	"github.com/katiamach/rainfall-console/internal/logger"
	"github.com/katiamach/rainfall-console/internal/model"
	"github.com/katiamach/rainfall-console/internal/notice"
	"github.com/katiamach/rainfall-console/internal/render"
	"github.com/katiamach/rainfall-console/internal/repository"
	"github.com/katiamach/rainfall-console/internal/selection"
	"github.com/katiamach/rainfall-console/internal/store"
)

//go:generate mockgen -source=service.go -destination=mock/mock.go Repository

// Service errors.
var (
	ErrNoLocation = errors.New("no forecast location selected")
	ErrNoFile     = errors.New("no file selected")
	ErrNoChart    = errors.New("chart has not been drawn")
	ErrChartKind  = errors.New("unknown chart")
)

// EventState carries a full Snapshot to the page.
const EventState = "state"

// DefaultNearbyRadiusKm is the distance under which a right-click reports
// the closest station.
const DefaultNearbyRadiusKm = 2.0

// Operator messages.
const (
	msgValidation   = "Complete nombre, departamento y haga clic derecho en el mapa."
	msgDefaultStn   = "No se puede eliminar una estación predefinida."
	msgBusy         = "Hay una operación en curso para esta estación."
	msgTransport    = "No se pudo conectar con el servidor."
	msgConfirmDel   = "¿Estás seguro de eliminar esta estación?"
	msgNoLocation   = "Por favor seleccione una ubicación en el mapa."
	msgUnknownMonth = "Seleccione un mes válido."
	msgNoFile       = "Seleccione un archivo."
	msgStale        = "Cambios guardados, pero no se pudo actualizar la lista de estaciones."
)

// Repository provides the remote API used by the session.
type Repository interface {
	GetStations(ctx context.Context) ([]model.Station, error)
	InsertStation(ctx context.Context, input model.StationInput) error
	UpdateStation(ctx context.Context, id int64, patch model.StationPatch) error
	DeleteStation(ctx context.Context, id int64) error
	Predict(ctx context.Context, req model.PredictionRequest) (*model.PredictionResult, error)
	GetHistorical(ctx context.Context, req model.SeriesRequest) ([]model.HistoricalPoint, error)
	GetSeasonality(ctx context.Context, location string) ([]model.SeasonalityPoint, error)
	GetStationarity(ctx context.Context, location string) ([]model.StationarityPoint, error)
	GetValidation(ctx context.Context, req model.SeriesRequest) (*model.ValidationResult, error)
	Upload(ctx context.Context, filename string, content io.Reader) error
}

// Publisher sends an event to the page.
type Publisher interface {
	Publish(event string, data interface{})
}

// Config holds the session settings.
type Config struct {
	NoticeTTL      time.Duration
	NearbyRadiusKm float64
}

// Snapshot is everything the page draws.
type Snapshot struct {
	Selection  selection.View        `json:"selection"`
	Rows       []render.Row          `json:"rows"`
	Markers    []render.PlacedMarker `json:"markers"`
	Map        render.MapView        `json:"map"`
	Filter     string                `json:"filter"`
	Location   string                `json:"location"`
	Notices    []notice.Notice       `json:"notices"`
	Prediction *chart.PredictionCard `json:"prediction,omitempty"`
}

// App is the session state and its gesture entry points.
type App struct {
	repo      Repository
	pub       Publisher
	store     *store.Store
	layer     *render.Layer
	renderer  *render.Renderer
	marker    *render.TemporaryMarker
	selection *selection.Controller
	notices   *notice.Board
	charts    map[string]*chart.Slot
	nearbyKm  float64

	mu         sync.Mutex
	filter     string
	location   string
	mapView    render.MapView
	prediction *chart.PredictionCard
}

// New creates new App over repo, publishing page events to pub.
func New(cfg Config, repo Repository, pub Publisher) *App {
	if cfg.NearbyRadiusKm <= 0 {
		cfg.NearbyRadiusKm = DefaultNearbyRadiusKm
	}

	layer := render.NewLayer()
	marker := render.NewTemporaryMarker(layer)
	st := store.New(repo)
	lib := chart.NewRemote(pub)

	charts := make(map[string]*chart.Slot, len(chartCanvases))
	for kind, canvas := range chartCanvases {
		charts[kind] = chart.NewSlot(lib, canvas)
	}

	return &App{
		repo:      repo,
		pub:       pub,
		store:     st,
		layer:     layer,
		renderer:  render.NewRenderer(layer),
		marker:    marker,
		selection: selection.NewController(st, marker),
		notices:   notice.NewBoard(cfg.NoticeTTL, pub),
		charts:    charts,
		nearbyKm:  cfg.NearbyRadiusKm,
		mapView:   render.MapView{Center: render.DefaultCenter, Zoom: render.DefaultZoom},
	}
}

// Snapshot returns the current page state.
func (a *App) Snapshot() Snapshot {
	stations := a.store.Stations()

	a.mu.Lock()
	defer a.mu.Unlock()

	filtered := store.FilterStations(stations, a.filter)
	rows := make([]render.Row, 0, len(filtered))
	for _, st := range filtered {
		rows = append(rows, render.RowFor(st))
	}

	return Snapshot{
		Selection:  selection.Project(a.selection.State()),
		Rows:       rows,
		Markers:    a.layer.Markers(),
		Map:        a.mapView,
		Filter:     a.filter,
		Location:   a.location,
		Notices:    a.notices.Active(),
		Prediction: a.prediction,
	}
}

// refresh redraws the markers from the store and publishes the new state.
func (a *App) refresh() Snapshot {
	a.mu.Lock()
	term := a.filter
	a.mu.Unlock()

	a.renderer.Render(a.store.Filter(term))

	snap := a.Snapshot()
	a.pub.Publish(EventState, snap)

	return snap
}

// Load fetches the station list and redraws.
func (a *App) Load(ctx context.Context) (Snapshot, error) {
	if _, err := a.store.Load(ctx); err != nil {
		a.notifyErr(err)
		return a.refresh(), err
	}

	return a.refresh(), nil
}

// SetFilter narrows the table and the markers to stations matching term.
func (a *App) SetFilter(term string) Snapshot {
	a.mu.Lock()
	a.filter = term
	a.mu.Unlock()

	return a.refresh()
}

// RightClick applies a map right-click. When the click would link a station
// and confirmed is false, nothing changes and the confirmation prompt is
// returned so the page can ask and repeat the click.
func (a *App) RightClick(ctx context.Context, point model.Coordinate, confirmed bool) (string, Snapshot, error) {
	var prompt string
	confirm := selection.ConfirmFunc(func(p string) bool {
		prompt = p
		return confirmed
	})

	linking, isLink := a.selection.State().(selection.LinkPending)

	effect, err := a.selection.RightClick(ctx, point, confirm)
	if err != nil {
		a.notifyErr(err)
		if effect == selection.EffectNone {
			return "", a.refresh(), err
		}
	}

	switch effect {
	case selection.EffectLinkDeclined:
		return prompt, a.Snapshot(), nil
	case selection.EffectLinked:
		if isLink {
			a.notices.Success(fmt.Sprintf("Ubicación asociada a %s", linking.StationName))
		}
	case selection.EffectMarkerPlaced:
		a.notices.Success(fmt.Sprintf("Coordenadas seleccionadas: %s", point))
		if st, km, ok := a.store.Nearest(point); ok && km <= a.nearbyKm {
			a.notices.Info(fmt.Sprintf("Estación cercana: %s (%.2f km)", st.Name, km))
		}
	}

	return "", a.refresh(), nil
}

// StartLink arms the next right-click to locate the station with id.
func (a *App) StartLink(id int64) (Snapshot, error) {
	st, ok := a.store.FindByID(id)
	if !ok {
		return a.Snapshot(), store.ErrNoSuchStation
	}

	if err := a.selection.StartLink(st); err != nil {
		return a.Snapshot(), err
	}

	a.notices.Warning(fmt.Sprintf("Seleccione la ubicación para %s haciendo clic derecho en el mapa.", st.Name))
	return a.refresh(), nil
}

// CancelLink leaves link mode.
func (a *App) CancelLink() Snapshot {
	if a.selection.CancelLink() {
		a.notices.Info("Asociación cancelada.")
	}

	return a.refresh()
}

// OpenAdd opens the form for a new station.
func (a *App) OpenAdd() Snapshot {
	a.selection.OpenAdd()
	return a.refresh()
}

// OpenEdit opens the form for the station with id.
func (a *App) OpenEdit(id int64) (Snapshot, error) {
	st, ok := a.store.FindByID(id)
	if !ok {
		return a.Snapshot(), store.ErrNoSuchStation
	}

	if err := a.selection.OpenEdit(st); err != nil {
		return a.Snapshot(), err
	}

	return a.refresh(), nil
}

// Submit saves the open form. A station that was saved but could not be
// reloaded afterwards closes the form with a stale-list warning.
func (a *App) Submit(ctx context.Context, input selection.FormInput) (Snapshot, error) {
	effect, err := a.selection.Submit(ctx, input)
	if err != nil {
		a.notifyErr(err)
		if effect == selection.EffectNone {
			return a.refresh(), err
		}
	}

	switch effect {
	case selection.EffectCreated:
		a.notices.Success("Estación añadida con éxito.")
	case selection.EffectUpdated:
		a.notices.Success("Estación actualizada con éxito.")
	}

	return a.refresh(), nil
}

// Cancel closes the form or drops the pending selection.
func (a *App) Cancel() Snapshot {
	a.selection.Cancel()
	return a.refresh()
}

// Delete removes a stored station. Built-in stations, which have no id, are
// refused. Without confirmed the prompt is returned and nothing is sent.
func (a *App) Delete(ctx context.Context, id *int64, confirmed bool) (string, Snapshot, error) {
	if id == nil {
		a.notifyErr(store.ErrDefaultStation)
		return "", a.Snapshot(), store.ErrDefaultStation
	}
	if !confirmed {
		return msgConfirmDel, a.Snapshot(), nil
	}

	if err := a.store.Delete(ctx, id); err != nil {
		a.notifyErr(err)
		if !errors.Is(err, store.ErrReload) {
			return "", a.refresh(), err
		}
	}

	a.notices.Success("Estación eliminada.")
	return "", a.refresh(), nil
}

// ViewOnMap centers the map on the named station.
func (a *App) ViewOnMap(name string) (Snapshot, error) {
	st, ok := a.store.Find(name)
	if !ok {
		return a.Snapshot(), store.ErrNoSuchStation
	}

	view, ok := render.Focus(st)
	if !ok {
		return a.Snapshot(), selection.ErrValidation
	}

	a.mu.Lock()
	a.mapView = view
	a.mu.Unlock()

	a.notices.Info("Centrando mapa en la estación...")
	return a.refresh(), nil
}

// SelectMarker makes the station of a clicked marker the forecast location.
func (a *App) SelectMarker(h render.MarkerHandle) (Snapshot, error) {
	m, ok := a.layer.Marker(h)
	if !ok || m.Station == "" {
		return a.Snapshot(), store.ErrNoSuchStation
	}

	a.mu.Lock()
	a.location = m.Station
	a.mu.Unlock()

	return a.refresh(), nil
}

// DismissNotice drops a notice early.
func (a *App) DismissNotice(id string) bool {
	return a.notices.Dismiss(id)
}

// notifyErr turns err into the notice the operator sees.
func (a *App) notifyErr(err error) {
	var apiErr *repository.APIError

	switch {
	case errors.Is(err, store.ErrReload):
		a.notices.Warning(msgStale)
	case errors.Is(err, selection.ErrValidation):
		a.notices.Warning(msgValidation)
	case errors.Is(err, store.ErrDefaultStation):
		a.notices.Warning(msgDefaultStn)
	case errors.Is(err, store.ErrBusy), errors.Is(err, selection.ErrBusy):
		a.notices.Warning(msgBusy)
	case errors.Is(err, ErrNoLocation):
		a.notices.Warning(msgNoLocation)
	case errors.Is(err, model.ErrUnknownMonth):
		a.notices.Warning(msgUnknownMonth)
	case errors.Is(err, ErrNoFile):
		a.notices.Warning(msgNoFile)
	case errors.As(err, &apiErr):
		a.notices.Danger(apiErr.Message)
	default:
		a.notices.Danger(msgTransport)
	}

	logger.Error(err)
}
