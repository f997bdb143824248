package api

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net"
	"net/http"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog/log"

	"github.com/saksham-app/delivery-agent/internal/entities"
	"github.com/saksham-app/delivery-agent/internal/errs"
)

const (
	readTimeout       = 5 * time.Second
	readHeaderTimeout = 2 * time.Second
	writeTimeout      = 10 * time.Second
	healthTimeout     = 2 * time.Second
)

type (
	IAdvisorService interface {
		State() (state entities.NetworkState, known bool)
	}

	IDeliveryService interface {
		Plan(shortID string) (plan entities.DeliveryPlan, err error)
		Feed() (plans entities.DeliveryPlans, err error)
	}

	ICatalogService interface {
		List() (shorts entities.CareerShorts, err error)
	}

	// Server exposes network state, catalog and delivery plans to media renderers over HTTP.
	Server struct {
		address         string
		advisorService  IAdvisorService
		deliveryService IDeliveryService
		catalogService  ICatalogService
		wsHandler       http.Handler

		mx       sync.RWMutex
		checkers []HealthChecker
		server   *http.Server
	}
)

func NewServer(
	address string,
	advisorService IAdvisorService,
	deliveryService IDeliveryService,
	catalogService ICatalogService,
	wsHandler http.Handler,
) *Server {
	return &Server{
		address:         address,
		advisorService:  advisorService,
		deliveryService: deliveryService,
		catalogService:  catalogService,
		wsHandler:       wsHandler,
	}
}

func (s *Server) AddChecker(checker HealthChecker) {
	s.mx.Lock()
	defer s.mx.Unlock()

	s.checkers = append(s.checkers, checker)
}

// Router builds http routes.
func (s *Server) Router() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(requestLogger)

	r.Get("/health", s.handleHealth)
	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/network", s.handleNetwork)
		r.Get("/feed", s.handleFeed)
		r.Get("/shorts", s.handleShorts)
		r.Get("/shorts/{id}/plan", s.handlePlan)

		if s.wsHandler != nil {
			r.Get("/ws", s.wsHandler.ServeHTTP)
		}
	})

	return r
}

// Start binds listener and serves requests in background.
func (s *Server) Start() (err error) {
	s.mx.Lock()
	defer s.mx.Unlock()

	if s.server != nil {
		return fmt.Errorf("Start: api server already started")
	}

	listener, err := net.Listen("tcp", s.address)
	if err != nil {
		return fmt.Errorf("Start: %w", err)
	}

	s.server = &http.Server{
		Handler:           s.Router(),
		ReadTimeout:       readTimeout,
		ReadHeaderTimeout: readHeaderTimeout,
		WriteTimeout:      writeTimeout,
	}

	log.Info().Str("address", listener.Addr().String()).Msg("Start: api server started")

	server := s.server
	go func() {
		if err := server.Serve(listener); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error().Err(err).Msg("Start: api server error")
		}
	}()

	return nil
}

func (s *Server) Stop(ctx context.Context) (err error) {
	s.mx.Lock()
	server := s.server
	s.server = nil
	s.mx.Unlock()

	if server == nil {
		return nil
	}

	if err = server.Shutdown(ctx); err != nil {
		return fmt.Errorf("Stop: %w", err)
	}

	return nil
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	s.mx.RLock()
	checkers := make([]HealthChecker, len(s.checkers))
	copy(checkers, s.checkers)
	s.mx.RUnlock()

	ctx, cancel := context.WithTimeout(r.Context(), healthTimeout)
	defer cancel()

	response := HealthResponse{
		Status:     StatusHealthy,
		Components: make([]ComponentHealth, 0, len(checkers)),
		Timestamp:  time.Now().UTC(),
	}

	for _, checker := range checkers {
		status, message := checker.Check(ctx)
		response.Components = append(response.Components, ComponentHealth{
			Name:    checker.Name(),
			Status:  status,
			Message: message,
		})

		switch {
		case status == StatusUnhealthy:
			response.Status = StatusUnhealthy
		case status == StatusDegraded && response.Status == StatusHealthy:
			response.Status = StatusDegraded
		}
	}

	statusCode := http.StatusOK
	if response.Status == StatusUnhealthy {
		statusCode = http.StatusServiceUnavailable
	}

	writeJSON(w, statusCode, response)
}

func (s *Server) handleNetwork(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, entities.NewNetworkStatus(s.advisorService.State()))
}

func (s *Server) handleShorts(w http.ResponseWriter, _ *http.Request) {
	shorts, err := s.catalogService.List()
	if err != nil {
		log.Error().Err(err).Msg("handleShorts")
		writeError(w, http.StatusInternalServerError, err)
		return
	}

	writeJSON(w, http.StatusOK, shorts)
}

func (s *Server) handleFeed(w http.ResponseWriter, _ *http.Request) {
	plans, err := s.deliveryService.Feed()
	if err != nil {
		log.Error().Err(err).Msg("handleFeed")
		writeError(w, http.StatusInternalServerError, err)
		return
	}

	writeJSON(w, http.StatusOK, plans)
}

func (s *Server) handlePlan(w http.ResponseWriter, r *http.Request) {
	plan, err := s.deliveryService.Plan(chi.URLParam(r, "id"))
	switch {
	case errors.Is(err, errs.ErrShortNotFound):
		writeError(w, http.StatusNotFound, err)
		return

	case err != nil:
		log.Error().Err(err).Msg("handlePlan")
		writeError(w, http.StatusInternalServerError, err)
		return
	}

	writeJSON(w, http.StatusOK, plan)
}

type errorResponse struct {
	Error string `json:"error"`
}

func writeError(w http.ResponseWriter, statusCode int, err error) {
	writeJSON(w, statusCode, errorResponse{Error: err.Error()})
}

func writeJSON(w http.ResponseWriter, statusCode int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)

	if err := json.NewEncoder(w).Encode(body); err != nil {
		log.Error().Err(err).Msg("writeJSON: encode response error")
	}
}

func requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		started := time.Now()

		next.ServeHTTP(ww, r)

		log.Debug().
			Str("method", r.Method).
			Str("path", r.URL.Path).
			Str("request id", middleware.GetReqID(r.Context())).
			Int("status", ww.Status()).
			Dur("duration", time.Since(started)).
			Msg("requestLogger")
	})
}
