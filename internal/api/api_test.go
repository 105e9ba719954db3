package api

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/tj/assert"

	"github.com/katiamach/rainfall-console/internal/config"
	"github.com/katiamach/rainfall-console/internal/logger"
	"github.com/katiamach/rainfall-console/internal/model"
	"github.com/katiamach/rainfall-console/internal/render"
	"github.com/katiamach/rainfall-console/internal/service"
	"github.com/katiamach/rainfall-console/internal/transport/rest/handler"

	mock "github.com/katiamach/rainfall-console/internal/transport/rest/handler/mock"
)

func setupRouter(t *testing.T) (http.Handler, *mock.MockConsoleService) {
	ctrl := gomock.NewController(t)
	mockService := mock.NewMockConsoleService(ctrl)

	events := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	})

	return NewRouter(handler.NewConsoleServer(mockService), events), mockService
}

func TestRoutes(t *testing.T) {
	cases := []struct {
		name           string
		method         string
		path           string
		body           string
		expect         func(m *mock.MockConsoleService)
		expectedStatus int
	}{
		{
			name:   "state",
			method: http.MethodGet,
			path:   "/api/state",
			expect: func(m *mock.MockConsoleService) {
				m.EXPECT().Snapshot().Return(service.Snapshot{})
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:           "events",
			method:         http.MethodGet,
			path:           "/api/events",
			expect:         func(m *mock.MockConsoleService) {},
			expectedStatus: http.StatusTeapot,
		},
		{
			name:   "link",
			method: http.MethodPost,
			path:   "/api/stations/7/link",
			expect: func(m *mock.MockConsoleService) {
				m.EXPECT().StartLink(int64(7)).Return(service.Snapshot{}, nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:   "edit",
			method: http.MethodPost,
			path:   "/api/stations/7/edit",
			expect: func(m *mock.MockConsoleService) {
				m.EXPECT().OpenEdit(int64(7)).Return(service.Snapshot{}, nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:   "context menu",
			method: http.MethodPost,
			path:   "/api/map/contextmenu",
			body:   `{"lat": -25.5, "lng": -57.1, "confirm": true}`,
			expect: func(m *mock.MockConsoleService) {
				m.EXPECT().
					RightClick(gomock.Any(), model.Coordinate{Lat: -25.5, Lng: -57.1}, true).
					Return("", service.Snapshot{}, nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:   "select marker",
			method: http.MethodPost,
			path:   "/api/markers/3/select",
			expect: func(m *mock.MockConsoleService) {
				m.EXPECT().SelectMarker(render.MarkerHandle(3)).Return(service.Snapshot{}, nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:   "chart",
			method: http.MethodPost,
			path:   "/api/charts/seasonality",
			body:   `{"ubicacion": "Pilar"}`,
			expect: func(m *mock.MockConsoleService) {
				m.EXPECT().
					Chart(gomock.Any(), "seasonality", service.SeriesQuery{Location: "Pilar"}).
					Return(map[string]string{"title": "Estacionalidad: Pilar"}, nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:   "chart image",
			method: http.MethodGet,
			path:   "/api/charts/validation.png",
			expect: func(m *mock.MockConsoleService) {
				m.EXPECT().ChartPNG("validation", gomock.Any()).Return(service.ErrNoChart)
			},
			expectedStatus: http.StatusNotFound,
		},
		{
			name:   "dismiss notice",
			method: http.MethodDelete,
			path:   "/api/notices/abc",
			expect: func(m *mock.MockConsoleService) {
				m.EXPECT().DismissNotice("abc").Return(true)
			},
			expectedStatus: http.StatusNoContent,
		},
		{
			name:           "non numeric id",
			method:         http.MethodPost,
			path:           "/api/stations/pilar/link",
			expect:         func(m *mock.MockConsoleService) {},
			expectedStatus: http.StatusNotFound,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			r, mockService := setupRouter(t)
			tc.expect(mockService)

			w := httptest.NewRecorder()
			req := httptest.NewRequest(tc.method, tc.path, strings.NewReader(tc.body))
			r.ServeHTTP(w, req)

			assert.Equal(t, tc.expectedStatus, w.Result().StatusCode)
		})
	}
}

func TestCorsPreflight(t *testing.T) {
	logger.SetOutput(&strings.Builder{})

	r, _ := setupRouter(t)
	h := NewHandler(config.Config{Origin: "https://consola.example.org"}, r)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodOptions, "/api/form/submit", nil)
	req.Header.Set("Origin", "https://consola.example.org")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)

	h.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Result().StatusCode)
	assert.Equal(t, "https://consola.example.org", w.Result().Header.Get("Access-Control-Allow-Origin"))
}
