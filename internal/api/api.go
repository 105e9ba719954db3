package api

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gorilla/handlers"
	"github.com/gorilla/mux"

	"github.com/katiamach/rainfall-console/internal/config"
	"github.com/katiamach/rainfall-console/internal/logger"
	"github.com/katiamach/rainfall-console/internal/repository"
	"github.com/katiamach/rainfall-console/internal/service"
	"github.com/katiamach/rainfall-console/internal/sse"
	"github.com/katiamach/rainfall-console/internal/transport/rest/handler"
)

const shutdownTimeout = 10 * time.Second

// NewRouter registers the console routes. events serves the page event stream.
func NewRouter(server *handler.ConsoleServer, events http.Handler) *mux.Router {
	r := mux.NewRouter()
	api := r.PathPrefix("/api").Subrouter()

	api.Handle("/events", events).Methods("GET")
	api.HandleFunc("/state", server.GetStateHandler).Methods("GET")
	api.HandleFunc("/table", server.GetTableHandler).Methods("GET")
	api.HandleFunc("/filter", server.FilterHandler).Methods("POST")

	api.HandleFunc("/stations/reload", server.ReloadHandler).Methods("POST")
	api.HandleFunc("/stations/delete", server.DeleteHandler).Methods("POST")
	api.HandleFunc("/stations/view", server.ViewHandler).Methods("POST")
	api.HandleFunc("/stations/{id:[0-9]+}/link", server.StartLinkHandler).Methods("POST")
	api.HandleFunc("/stations/{id:[0-9]+}/edit", server.OpenEditHandler).Methods("POST")

	api.HandleFunc("/map/contextmenu", server.ContextMenuHandler).Methods("POST")
	api.HandleFunc("/markers/{handle:[0-9]+}/select", server.SelectMarkerHandler).Methods("POST")
	api.HandleFunc("/link/cancel", server.CancelLinkHandler).Methods("POST")

	api.HandleFunc("/form/add", server.OpenAddHandler).Methods("POST")
	api.HandleFunc("/form/submit", server.SubmitHandler).Methods("POST")
	api.HandleFunc("/form/cancel", server.CancelFormHandler).Methods("POST")

	api.HandleFunc("/predict", server.PredictHandler).Methods("POST")
	api.HandleFunc("/charts/{kind:[a-z]+}", server.ChartHandler).Methods("POST")
	api.HandleFunc("/charts/{kind:[a-z]+}.png", server.ChartPNGHandler).Methods("GET")
	api.HandleFunc("/upload", server.UploadHandler).Methods("POST")

	api.HandleFunc("/notices/{id}", server.DismissNoticeHandler).Methods("DELETE")

	return r
}

// NewHandler wraps the router with CORS and access logging.
func NewHandler(cfg config.Config, r http.Handler) http.Handler {
	options := setupCorsOptions(cfg.Origin)
	return handlers.CombinedLoggingHandler(logger.Writer(), handlers.CORS(options...)(r))
}

// RunAPI runs the rainfall console until ctx is cancelled.
func RunAPI(ctx context.Context, cfg config.Config) error {
	repo := repository.New(repository.Config{
		BaseURL:        cfg.APIBaseURL,
		Timeout:        cfg.APITimeout,
		SeriesCacheTTL: cfg.SeriesCacheTTL,
	})

	events := sse.NewManager()
	app := service.New(service.Config{
		NoticeTTL:      cfg.NoticeTTL,
		NearbyRadiusKm: cfg.NearbyRadiusKm,
	}, repo, events)

	events.SetClientConnectCallback(func(clientID string) {
		events.SendToClient(clientID, sse.Message{Type: service.EventState, Data: app.Snapshot()})
	})

	if _, err := app.Load(ctx); err != nil {
		logger.Warn(fmt.Sprintf("initial station load failed, station list stays empty until the next reload: %v", err))
	}

	if cfg.ResyncSchedule != "" {
		scheduler, err := NewScheduler(cfg.ResyncSchedule, app, cfg.APITimeout)
		if err != nil {
			return err
		}
		scheduler.Start()
		defer func() {
			stopCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
			defer cancel()
			if err := scheduler.Stop(stopCtx); err != nil {
				logger.Error(fmt.Errorf("failed to stop resync scheduler: %w", err))
			}
		}()
	}

	server := handler.NewConsoleServer(app)
	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           NewHandler(cfg, NewRouter(server, sse.Handler(events))),
		ReadHeaderTimeout: 10 * time.Second,
	}

	logger.Info(fmt.Sprintf("Starting rainfall console at port %s", cfg.Port))

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	logger.Info("Shutting down rainfall console")
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("failed to shut down server: %w", err)
	}

	return nil
}
