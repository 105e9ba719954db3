package handler

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/katiamach/rainfall-console/internal/chart"
	"github.com/katiamach/rainfall-console/internal/logger"
	"github.com/katiamach/rainfall-console/internal/model"
	"github.com/katiamach/rainfall-console/internal/render"
	"github.com/katiamach/rainfall-console/internal/selection"
	"github.com/katiamach/rainfall-console/internal/service"
)

//go:generate mockgen -source=handlers.go -destination=mock/mock.go ConsoleService

var errBadRequest = errors.New("malformed request")

// ConsoleService provides the operator session gestures.
type ConsoleService interface {
	Snapshot() service.Snapshot
	Load(ctx context.Context) (service.Snapshot, error)
	SetFilter(term string) service.Snapshot
	RightClick(ctx context.Context, point model.Coordinate, confirmed bool) (string, service.Snapshot, error)
	StartLink(id int64) (service.Snapshot, error)
	CancelLink() service.Snapshot
	OpenAdd() service.Snapshot
	OpenEdit(id int64) (service.Snapshot, error)
	Submit(ctx context.Context, input selection.FormInput) (service.Snapshot, error)
	Cancel() service.Snapshot
	Delete(ctx context.Context, id *int64, confirmed bool) (string, service.Snapshot, error)
	ViewOnMap(name string) (service.Snapshot, error)
	SelectMarker(h render.MarkerHandle) (service.Snapshot, error)
	DismissNotice(id string) bool
	Predict(ctx context.Context, q service.SeriesQuery) (chart.PredictionCard, error)
	Chart(ctx context.Context, kind string, q service.SeriesQuery) (interface{}, error)
	ChartPNG(kind string, w io.Writer) error
	Upload(ctx context.Context, filename string, content io.Reader) (service.Snapshot, error)
}

// ConsoleServer serves the console page gestures.
type ConsoleServer struct {
	service ConsoleService
}

// NewConsoleServer creates new ConsoleServer.
func NewConsoleServer(service ConsoleService) *ConsoleServer {
	return &ConsoleServer{service}
}

type contextMenuRequest struct {
	Lat     float64 `json:"lat"`
	Lng     float64 `json:"lng"`
	Confirm bool    `json:"confirm"`
}

type deleteRequest struct {
	ID      *int64 `json:"id"`
	Confirm bool   `json:"confirm"`
}

type filterRequest struct {
	Term string `json:"term"`
}

type viewRequest struct {
	Name string `json:"name"`
}

// GetStateHandler returns the current page state.
func (s *ConsoleServer) GetStateHandler(w http.ResponseWriter, r *http.Request) {
	respond(w, http.StatusOK, stateResponse{State: s.service.Snapshot()})
}

// GetTableHandler returns the station table rows as an HTML fragment.
func (s *ConsoleServer) GetTableHandler(w http.ResponseWriter, r *http.Request) {
	table, err := render.TableHTML(s.service.Snapshot().Rows)
	if err != nil {
		logger.Error(fmt.Errorf("failed to render station table: %w", err))
		respondErr(w, http.StatusInternalServerError, err)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	if _, err := io.WriteString(w, table); err != nil {
		logger.Error(fmt.Errorf("failed to write station table: %w", err))
	}
}

// ReloadHandler refetches the station list.
func (s *ConsoleServer) ReloadHandler(w http.ResponseWriter, r *http.Request) {
	snap, err := s.service.Load(r.Context())
	s.respondState(w, "", snap, err)
}

// FilterHandler narrows the table and markers.
func (s *ConsoleServer) FilterHandler(w http.ResponseWriter, r *http.Request) {
	var req filterRequest
	if err := decode(r, &req); err != nil {
		respondErr(w, http.StatusBadRequest, err)
		return
	}

	respond(w, http.StatusOK, stateResponse{State: s.service.SetFilter(req.Term)})
}

// ContextMenuHandler handles a map right-click.
func (s *ConsoleServer) ContextMenuHandler(w http.ResponseWriter, r *http.Request) {
	var req contextMenuRequest
	if err := decode(r, &req); err != nil {
		respondErr(w, http.StatusBadRequest, err)
		return
	}

	point := model.Coordinate{Lat: req.Lat, Lng: req.Lng}
	prompt, snap, err := s.service.RightClick(r.Context(), point, req.Confirm)
	s.respondState(w, prompt, snap, err)
}

// StartLinkHandler arms link mode for the station in the path.
func (s *ConsoleServer) StartLinkHandler(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		respondErr(w, http.StatusBadRequest, err)
		return
	}

	snap, err := s.service.StartLink(id)
	s.respondState(w, "", snap, err)
}

// CancelLinkHandler leaves link mode.
func (s *ConsoleServer) CancelLinkHandler(w http.ResponseWriter, r *http.Request) {
	respond(w, http.StatusOK, stateResponse{State: s.service.CancelLink()})
}

// OpenAddHandler opens the form for a new station.
func (s *ConsoleServer) OpenAddHandler(w http.ResponseWriter, r *http.Request) {
	respond(w, http.StatusOK, stateResponse{State: s.service.OpenAdd()})
}

// OpenEditHandler opens the form for the station in the path.
func (s *ConsoleServer) OpenEditHandler(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		respondErr(w, http.StatusBadRequest, err)
		return
	}

	snap, err := s.service.OpenEdit(id)
	s.respondState(w, "", snap, err)
}

// SubmitHandler saves the open form.
func (s *ConsoleServer) SubmitHandler(w http.ResponseWriter, r *http.Request) {
	var input selection.FormInput
	if err := decode(r, &input); err != nil {
		respondErr(w, http.StatusBadRequest, err)
		return
	}

	snap, err := s.service.Submit(r.Context(), input)
	s.respondState(w, "", snap, err)
}

// CancelFormHandler closes the form.
func (s *ConsoleServer) CancelFormHandler(w http.ResponseWriter, r *http.Request) {
	respond(w, http.StatusOK, stateResponse{State: s.service.Cancel()})
}

// DeleteHandler removes a station once the operator confirmed.
func (s *ConsoleServer) DeleteHandler(w http.ResponseWriter, r *http.Request) {
	var req deleteRequest
	if err := decode(r, &req); err != nil {
		respondErr(w, http.StatusBadRequest, err)
		return
	}

	prompt, snap, err := s.service.Delete(r.Context(), req.ID, req.Confirm)
	s.respondState(w, prompt, snap, err)
}

// ViewHandler centers the map on a station.
func (s *ConsoleServer) ViewHandler(w http.ResponseWriter, r *http.Request) {
	var req viewRequest
	if err := decode(r, &req); err != nil {
		respondErr(w, http.StatusBadRequest, err)
		return
	}

	snap, err := s.service.ViewOnMap(req.Name)
	s.respondState(w, "", snap, err)
}

// SelectMarkerHandler makes a clicked marker the forecast location.
func (s *ConsoleServer) SelectMarkerHandler(w http.ResponseWriter, r *http.Request) {
	h, err := pathID(r, "handle")
	if err != nil {
		respondErr(w, http.StatusBadRequest, err)
		return
	}

	snap, err := s.service.SelectMarker(render.MarkerHandle(h))
	s.respondState(w, "", snap, err)
}

// DismissNoticeHandler drops a notice before it expires.
func (s *ConsoleServer) DismissNoticeHandler(w http.ResponseWriter, r *http.Request) {
	if !s.service.DismissNotice(mux.Vars(r)["id"]) {
		respondErr(w, http.StatusNotFound, errors.New("notice not found"))
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (s *ConsoleServer) respondState(w http.ResponseWriter, prompt string, snap service.Snapshot, err error) {
	if err != nil {
		logger.Error(err)
		respondErr(w, statusOf(err), err)
		return
	}

	respond(w, http.StatusOK, stateResponse{Confirm: prompt, State: snap})
}

func decode(r *http.Request, v interface{}) error {
	if r.Body == nil || r.Body == http.NoBody {
		return nil
	}

	if err := json.NewDecoder(r.Body).Decode(v); err != nil && !errors.Is(err, io.EOF) {
		return fmt.Errorf("%w: %v", errBadRequest, err)
	}

	return nil
}

func pathID(r *http.Request, name string) (int64, error) {
	raw := mux.Vars(r)[name]
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %s %q is not a number", errBadRequest, name, raw)
	}

	return id, nil
}
