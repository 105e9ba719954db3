package handler

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/katiamach/rainfall-console/internal/logger"
	"github.com/katiamach/rainfall-console/internal/model"
	"github.com/katiamach/rainfall-console/internal/repository"
	"github.com/katiamach/rainfall-console/internal/selection"
	"github.com/katiamach/rainfall-console/internal/service"
	"github.com/katiamach/rainfall-console/internal/store"
)

type errorResponse struct {
	Code    int
	Message string
}

// stateResponse carries the page state. Confirm is set when the gesture
// needs the operator's consent before it is repeated with confirm=true.
type stateResponse struct {
	Confirm string           `json:"confirm,omitempty"`
	State   service.Snapshot `json:"state"`
}

// Respond is a function to send http responses.
func respond(w http.ResponseWriter, code int, payload interface{}) {
	body, err := json.Marshal(payload)
	if err != nil {
		http.Error(w, fmt.Sprintf("can't marshal the given payload: %v", err), http.StatusInternalServerError)
		logger.Error(err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_, err = w.Write(body)
	if err != nil {
		logger.Error(fmt.Errorf("can't write response: %w", err))
		return
	}
}

// RespondErr is a function to make http error responses.
func respondErr(w http.ResponseWriter, code int, err error) {
	respErr := errorResponse{
		Code:    code,
		Message: err.Error(),
	}

	respond(w, code, respErr)
}

func statusOf(err error) int {
	var apiErr *repository.APIError

	switch {
	case errors.Is(err, errBadRequest),
		errors.Is(err, selection.ErrValidation),
		errors.Is(err, selection.ErrNotPersisted),
		errors.Is(err, store.ErrDefaultStation),
		errors.Is(err, service.ErrNoLocation),
		errors.Is(err, service.ErrNoFile),
		errors.Is(err, model.ErrUnknownMonth):
		return http.StatusBadRequest
	case errors.Is(err, store.ErrNoSuchStation),
		errors.Is(err, service.ErrNoChart),
		errors.Is(err, service.ErrChartKind):
		return http.StatusNotFound
	case errors.Is(err, store.ErrBusy),
		errors.Is(err, selection.ErrBusy),
		errors.Is(err, selection.ErrNoForm):
		return http.StatusConflict
	case errors.As(err, &apiErr), errors.Is(err, repository.ErrTransport):
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}
