package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/gorilla/mux"
	"github.com/tj/assert"

	"github.com/katiamach/rainfall-console/internal/chart"
	"github.com/katiamach/rainfall-console/internal/model"
	"github.com/katiamach/rainfall-console/internal/render"
	"github.com/katiamach/rainfall-console/internal/repository"
	"github.com/katiamach/rainfall-console/internal/selection"
	"github.com/katiamach/rainfall-console/internal/service"
	"github.com/katiamach/rainfall-console/internal/store"

	mock "github.com/katiamach/rainfall-console/internal/transport/rest/handler/mock"
)

var errTest = errors.New("test error")

func idleSnapshot() service.Snapshot {
	return service.Snapshot{Selection: selection.View{Mode: "idle"}}
}

func chartCard() chart.PredictionCard {
	return chart.PredictionCard{Estimate: 120, Probability: 70, Intensity: "Moderada", Emoji: "🌧️"}
}

func TestContextMenuHandler(t *testing.T) {
	ctx := context.Background()
	point := model.Coordinate{Lat: -25.3, Lng: -57.6}

	cases := []struct {
		name           string
		body           string
		prompt         string
		expectedStatus int
		expectedError  error
		isMockCalled   bool
	}{
		{
			name:           "malformed body",
			body:           `{"lat": "norte"}`,
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "needs confirmation",
			body:           `{"lat": -25.3, "lng": -57.6}`,
			prompt:         "¿Asociar esta ubicación a la estación Villarrica?",
			expectedStatus: http.StatusOK,
			isMockCalled:   true,
		},
		{
			name:           "station busy",
			body:           `{"lat": -25.3, "lng": -57.6}`,
			expectedStatus: http.StatusConflict,
			expectedError:  fmt.Errorf("failed to link station: %w", store.ErrBusy),
			isMockCalled:   true,
		},
		{
			name:           "ok",
			body:           `{"lat": -25.3, "lng": -57.6}`,
			expectedStatus: http.StatusOK,
			isMockCalled:   true,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			mockService := mock.NewMockConsoleService(ctrl)
			s := NewConsoleServer(mockService)

			w := httptest.NewRecorder()
			r := httptest.NewRequest(http.MethodPost, "/api/map/contextmenu", strings.NewReader(tc.body))

			if tc.isMockCalled {
				mockService.EXPECT().
					RightClick(ctx, point, false).
					Return(tc.prompt, idleSnapshot(), tc.expectedError)
			}

			s.ContextMenuHandler(w, r)

			res := w.Result()
			defer func() {
				err := res.Body.Close()
				assert.Nil(t, err)
			}()
			assert.Equal(t, tc.expectedStatus, res.StatusCode)

			if tc.expectedStatus != http.StatusOK {
				var resBody errorResponse
				err := json.NewDecoder(res.Body).Decode(&resBody)
				assert.Nil(t, err)
				assert.Equal(t, tc.expectedStatus, resBody.Code)
				return
			}

			var resBody stateResponse
			err := json.NewDecoder(res.Body).Decode(&resBody)
			assert.Nil(t, err)
			assert.Equal(t, tc.prompt, resBody.Confirm)
			assert.Equal(t, "idle", resBody.State.Selection.Mode)
		})
	}
}

func TestDeleteHandler(t *testing.T) {
	ctx := context.Background()
	id := int64(4)

	cases := []struct {
		name           string
		body           string
		id             *int64
		confirm        bool
		prompt         string
		expectedStatus int
		expectedError  error
	}{
		{
			name:           "built-in station",
			body:           `{"id": null, "confirm": true}`,
			confirm:        true,
			expectedStatus: http.StatusBadRequest,
			expectedError:  store.ErrDefaultStation,
		},
		{
			name:           "unconfirmed",
			body:           `{"id": 4}`,
			id:             &id,
			prompt:         "¿Estás seguro de eliminar esta estación?",
			expectedStatus: http.StatusOK,
		},
		{
			name:           "api rejected",
			body:           `{"id": 4, "confirm": true}`,
			id:             &id,
			confirm:        true,
			expectedStatus: http.StatusBadGateway,
			expectedError:  &repository.APIError{Status: 500, Message: "Error interno"},
		},
		{
			name:           "deleted",
			body:           `{"id": 4, "confirm": true}`,
			id:             &id,
			confirm:        true,
			expectedStatus: http.StatusOK,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			mockService := mock.NewMockConsoleService(ctrl)
			s := NewConsoleServer(mockService)

			w := httptest.NewRecorder()
			r := httptest.NewRequest(http.MethodPost, "/api/stations/delete", strings.NewReader(tc.body))

			mockService.EXPECT().
				Delete(ctx, tc.id, tc.confirm).
				Return(tc.prompt, idleSnapshot(), tc.expectedError)

			s.DeleteHandler(w, r)

			res := w.Result()
			defer res.Body.Close()
			assert.Equal(t, tc.expectedStatus, res.StatusCode)

			if tc.prompt != "" {
				var resBody stateResponse
				assert.Nil(t, json.NewDecoder(res.Body).Decode(&resBody))
				assert.Equal(t, tc.prompt, resBody.Confirm)
			}
		})
	}
}

func TestStartLinkHandler(t *testing.T) {
	cases := []struct {
		name           string
		id             string
		expectedStatus int
		expectedError  error
		isMockCalled   bool
	}{
		{
			name:           "id is not a number",
			id:             "villarrica",
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "unknown station",
			id:             "12",
			expectedStatus: http.StatusNotFound,
			expectedError:  store.ErrNoSuchStation,
			isMockCalled:   true,
		},
		{
			name:           "ok",
			id:             "12",
			expectedStatus: http.StatusOK,
			isMockCalled:   true,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			mockService := mock.NewMockConsoleService(ctrl)
			s := NewConsoleServer(mockService)

			w := httptest.NewRecorder()
			r := httptest.NewRequest(http.MethodPost, "/api/stations/"+tc.id+"/link", nil)
			r = mux.SetURLVars(r, map[string]string{"id": tc.id})

			if tc.isMockCalled {
				mockService.EXPECT().StartLink(int64(12)).Return(idleSnapshot(), tc.expectedError)
			}

			s.StartLinkHandler(w, r)
			assert.Equal(t, tc.expectedStatus, w.Result().StatusCode)
		})
	}
}

func TestSubmitHandler(t *testing.T) {
	ctx := context.Background()
	input := selection.FormInput{Name: "Pilar", Department: "Ñeembucú"}

	cases := []struct {
		name           string
		expectedStatus int
		expectedError  error
	}{
		{
			name:           "missing fields",
			expectedStatus: http.StatusBadRequest,
			expectedError:  selection.ErrValidation,
		},
		{
			name:           "double submit",
			expectedStatus: http.StatusConflict,
			expectedError:  selection.ErrBusy,
		},
		{
			name:           "unreachable api",
			expectedStatus: http.StatusBadGateway,
			expectedError:  fmt.Errorf("failed to create station: %w", repository.ErrTransport),
		},
		{
			name:           "unexpected",
			expectedStatus: http.StatusInternalServerError,
			expectedError:  errTest,
		},
		{
			name:           "ok",
			expectedStatus: http.StatusOK,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			mockService := mock.NewMockConsoleService(ctrl)
			s := NewConsoleServer(mockService)

			reqBody, err := json.Marshal(input)
			assert.Nil(t, err)

			w := httptest.NewRecorder()
			r := httptest.NewRequest(http.MethodPost, "/api/form/submit", bytes.NewReader(reqBody))

			mockService.EXPECT().Submit(ctx, input).Return(idleSnapshot(), tc.expectedError)

			s.SubmitHandler(w, r)
			assert.Equal(t, tc.expectedStatus, w.Result().StatusCode)
		})
	}
}

func TestPredictHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockService := mock.NewMockConsoleService(ctrl)
	s := NewConsoleServer(mockService)

	q := service.SeriesQuery{Location: "Pilar", Month: "Marzo", Year: 2025}
	mockService.EXPECT().
		Predict(context.Background(), q).
		Return(chartCard(), nil)

	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodPost, "/api/predict", strings.NewReader(`{"ubicacion":"Pilar","mes":"Marzo","anho":2025}`))

	s.PredictHandler(w, r)

	res := w.Result()
	defer res.Body.Close()
	assert.Equal(t, http.StatusOK, res.StatusCode)

	body, err := io.ReadAll(res.Body)
	assert.Nil(t, err)
	assert.JSONEq(t, `{"estimate":120,"probability":70,"intensity":"Moderada","emoji":"🌧️"}`, string(body))
}

func TestChartPNGHandler(t *testing.T) {
	cases := []struct {
		name           string
		expectedStatus int
		expectedError  error
	}{
		{name: "unknown chart", expectedStatus: http.StatusNotFound, expectedError: service.ErrChartKind},
		{name: "nothing drawn", expectedStatus: http.StatusNotFound, expectedError: service.ErrNoChart},
		{name: "ok", expectedStatus: http.StatusOK},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			mockService := mock.NewMockConsoleService(ctrl)
			s := NewConsoleServer(mockService)

			mockService.EXPECT().
				ChartPNG("historical", gomock.Any()).
				DoAndReturn(func(_ string, w io.Writer) error {
					if tc.expectedError != nil {
						return tc.expectedError
					}
					_, err := w.Write([]byte("\x89PNG"))
					return err
				})

			w := httptest.NewRecorder()
			r := httptest.NewRequest(http.MethodGet, "/api/charts/historical.png", nil)
			r = mux.SetURLVars(r, map[string]string{"kind": "historical"})

			s.ChartPNGHandler(w, r)

			res := w.Result()
			assert.Equal(t, tc.expectedStatus, res.StatusCode)
			if tc.expectedError == nil {
				assert.Equal(t, "image/png", res.Header.Get("Content-Type"))
				assert.Equal(t, "\x89PNG", w.Body.String())
			}
		})
	}
}

func TestUploadHandler(t *testing.T) {
	ctx := context.Background()

	t.Run("no file", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockService := mock.NewMockConsoleService(ctrl)
		s := NewConsoleServer(mockService)

		var body bytes.Buffer
		mw := multipart.NewWriter(&body)
		assert.Nil(t, mw.Close())

		mockService.EXPECT().Upload(ctx, "", nil).Return(idleSnapshot(), service.ErrNoFile)

		w := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodPost, "/api/upload", &body)
		r.Header.Set("Content-Type", mw.FormDataContentType())

		s.UploadHandler(w, r)
		assert.Equal(t, http.StatusBadRequest, w.Result().StatusCode)
	})

	t.Run("ok", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockService := mock.NewMockConsoleService(ctrl)
		s := NewConsoleServer(mockService)

		var body bytes.Buffer
		mw := multipart.NewWriter(&body)
		part, err := mw.CreateFormFile("file", "lluvias.csv")
		assert.Nil(t, err)
		_, err = part.Write([]byte("fecha,precipitacion\n2024-01,120\n"))
		assert.Nil(t, err)
		assert.Nil(t, mw.Close())

		mockService.EXPECT().
			Upload(gomock.Any(), "lluvias.csv", gomock.Any()).
			DoAndReturn(func(_ context.Context, _ string, content io.Reader) (service.Snapshot, error) {
				data, err := io.ReadAll(content)
				assert.Nil(t, err)
				assert.Equal(t, "fecha,precipitacion\n2024-01,120\n", string(data))
				return idleSnapshot(), nil
			})

		w := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodPost, "/api/upload", &body)
		r.Header.Set("Content-Type", mw.FormDataContentType())

		s.UploadHandler(w, r)
		assert.Equal(t, http.StatusOK, w.Result().StatusCode)
	})
}

func TestGetTableHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockService := mock.NewMockConsoleService(ctrl)
	s := NewConsoleServer(mockService)

	id := int64(3)
	snap := idleSnapshot()
	snap.Rows = []render.Row{render.RowFor(model.Station{ID: &id, Name: "Villarrica", Department: "Guairá"})}
	mockService.EXPECT().Snapshot().Return(snap)

	w := httptest.NewRecorder()
	s.GetTableHandler(w, httptest.NewRequest(http.MethodGet, "/api/table", nil))

	assert.Equal(t, http.StatusOK, w.Result().StatusCode)
	assert.Contains(t, w.Body.String(), `data-station="Villarrica"`)
	assert.Contains(t, w.Body.String(), "btn-link")
}

func TestDismissNoticeHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockService := mock.NewMockConsoleService(ctrl)
	s := NewConsoleServer(mockService)

	gomock.InOrder(
		mockService.EXPECT().DismissNotice("n-1").Return(true),
		mockService.EXPECT().DismissNotice("n-1").Return(false),
	)

	for _, expected := range []int{http.StatusNoContent, http.StatusNotFound} {
		w := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodDelete, "/api/notices/n-1", nil)
		r = mux.SetURLVars(r, map[string]string{"id": "n-1"})

		s.DismissNoticeHandler(w, r)
		assert.Equal(t, expected, w.Result().StatusCode)
	}
}

func TestStatusOf(t *testing.T) {
	cases := []struct {
		err      error
		expected int
	}{
		{err: fmt.Errorf("%w: eof", errBadRequest), expected: http.StatusBadRequest},
		{err: selection.ErrNotPersisted, expected: http.StatusBadRequest},
		{err: model.ErrUnknownMonth, expected: http.StatusBadRequest},
		{err: service.ErrNoLocation, expected: http.StatusBadRequest},
		{err: store.ErrNoSuchStation, expected: http.StatusNotFound},
		{err: selection.ErrNoForm, expected: http.StatusConflict},
		{err: &repository.APIError{Status: 200, Message: "Estación duplicada"}, expected: http.StatusBadGateway},
		{err: errTest, expected: http.StatusInternalServerError},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.expected, statusOf(tc.err), tc.err.Error())
	}
}
