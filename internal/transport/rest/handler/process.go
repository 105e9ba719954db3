package handler

import (
	"bytes"
	"errors"
	"fmt"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/katiamach/rainfall-console/internal/logger"
	"github.com/katiamach/rainfall-console/internal/service"
)

const maxUploadBytes = 32 << 20

// PredictHandler requests a forecast.
func (s *ConsoleServer) PredictHandler(w http.ResponseWriter, r *http.Request) {
	var q service.SeriesQuery
	if err := decode(r, &q); err != nil {
		respondErr(w, http.StatusBadRequest, err)
		return
	}

	card, err := s.service.Predict(r.Context(), q)
	if err != nil {
		logger.Error(fmt.Errorf("failed to predict: %w", err))
		respondErr(w, statusOf(err), err)
		return
	}

	respond(w, http.StatusOK, card)
}

// ChartHandler draws the chart named in the path and returns its config.
func (s *ConsoleServer) ChartHandler(w http.ResponseWriter, r *http.Request) {
	var q service.SeriesQuery
	if err := decode(r, &q); err != nil {
		respondErr(w, http.StatusBadRequest, err)
		return
	}

	config, err := s.service.Chart(r.Context(), mux.Vars(r)["kind"], q)
	if err != nil {
		logger.Error(err)
		respondErr(w, statusOf(err), err)
		return
	}

	respond(w, http.StatusOK, config)
}

// ChartPNGHandler exports the chart currently drawn for a kind.
func (s *ConsoleServer) ChartPNGHandler(w http.ResponseWriter, r *http.Request) {
	var buf bytes.Buffer
	if err := s.service.ChartPNG(mux.Vars(r)["kind"], &buf); err != nil {
		logger.Error(err)
		respondErr(w, statusOf(err), err)
		return
	}

	w.Header().Set("Content-Type", "image/png")
	w.WriteHeader(http.StatusOK)
	if _, err := buf.WriteTo(w); err != nil {
		logger.Error(fmt.Errorf("failed to write chart image: %w", err))
	}
}

// UploadHandler forwards the multipart "file" field to the API.
func (s *ConsoleServer) UploadHandler(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxUploadBytes)

	file, header, err := r.FormFile("file")
	if err != nil && !errors.Is(err, http.ErrMissingFile) {
		respondErr(w, http.StatusBadRequest, fmt.Errorf("%w: %v", errBadRequest, err))
		return
	}

	if file == nil {
		snap, err := s.service.Upload(r.Context(), "", nil)
		s.respondState(w, "", snap, err)
		return
	}
	defer file.Close()

	snap, err := s.service.Upload(r.Context(), header.Filename, file)
	s.respondState(w, "", snap, err)
}
