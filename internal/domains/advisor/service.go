package advisor

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/saksham-app/delivery-agent/internal/entities"
	"github.com/saksham-app/delivery-agent/internal/errs"
	"github.com/saksham-app/delivery-agent/internal/observable"
)

type (
	IProbe interface {
		Probe(ctx context.Context) (result entities.ProbeResult, err error)
	}
)

// Service keeps the latest network snapshot and derives delivery recommendations from it.
type Service struct {
	probe        IProbe
	interval     time.Duration
	probeTimeout time.Duration
	slowTypes    []entities.ConnectionType

	snapshot     atomic.Pointer[entities.NetworkState]
	stateChanged *observable.Observable[entities.NetworkState]

	// mx guards lifecycle fields and serializes snapshot replacement against Stop.
	mx      sync.Mutex
	stopped bool
	runCtx  context.Context
	cancel  context.CancelFunc
	done    chan struct{}
}

func NewService(probe IProbe, interval, probeTimeout time.Duration, slowTypes []entities.ConnectionType) *Service {
	return &Service{
		probe:        probe,
		interval:     interval,
		probeTimeout: probeTimeout,
		slowTypes:    slowTypes,

		stateChanged: observable.New[entities.NetworkState](),
	}
}

// StateChanged emits snapshots whose consumer-visible fields differ from the previous one.
func (s *Service) StateChanged() *observable.Observable[entities.NetworkState] {
	return s.stateChanged
}

// State returns the latest snapshot and whether any probe has succeeded yet.
func (s *Service) State() (state entities.NetworkState, known bool) {
	current := s.snapshot.Load()
	if current == nil {
		return state, false
	}

	return *current, true
}

// CurrentQuality returns offline, low or high for the latest snapshot.
func (s *Service) CurrentQuality() entities.Quality {
	state, _ := s.State()
	return state.Quality()
}

// ShouldPreload returns true iff connected and not slow.
func (s *Service) ShouldPreload() bool {
	state, _ := s.State()
	return state.ShouldPreload()
}

// Refresh probes connectivity and replaces the held snapshot. On probe failure previous snapshot is kept.
func (s *Service) Refresh(ctx context.Context) (err error) {
	if s.isStopped() {
		return fmt.Errorf("Refresh: %w", errs.ErrAdvisorStopped)
	}

	result, err := s.safeProbe(ctx)
	if err != nil {
		log.Warn().
			Err(err).
			Msg("Refresh: probe failed, keeping previous network state")

		return fmt.Errorf("Refresh: %w: %w", errs.ErrProbeFailure, err)
	}

	state := entities.NewNetworkState(result, s.slowTypes, time.Now())

	s.mx.Lock()
	if s.tornDown() {
		s.mx.Unlock()
		log.Debug().Msg("Refresh: advisor stopped, probe result discarded")
		return fmt.Errorf("Refresh: %w", errs.ErrAdvisorStopped)
	}
	previous := s.snapshot.Swap(&state)
	s.mx.Unlock()

	if previous == nil || previous.Differs(state) {
		log.Info().
			Bool("connected", state.IsConnected()).
			Bool("internet reachable", state.IsInternetReachable()).
			Str("type", state.Type().String()).
			Str("quality", state.Quality().String()).
			Bool("preload", state.ShouldPreload()).
			Msg("Refresh: network state changed")

		s.stateChanged.Notify(state)
	}

	return nil
}

// Start runs refresh immediately and then on every interval until ctx is done or Stop is called.
func (s *Service) Start(ctx context.Context) (err error) {
	s.mx.Lock()
	defer s.mx.Unlock()

	if s.stopped {
		return fmt.Errorf("Start: %w", errs.ErrAdvisorStopped)
	}

	if s.cancel != nil {
		return fmt.Errorf("Start: %w", errs.ErrAdvisorStarted)
	}

	runCtx, cancel := context.WithCancel(ctx)
	s.runCtx = runCtx
	s.cancel = cancel
	s.done = make(chan struct{})

	go s.run(runCtx, s.done)
	return nil
}

// Stop cancels schedule. Results of in-flight probes are discarded.
// Cancelling the context passed to Start has the same effect.
func (s *Service) Stop() {
	s.mx.Lock()
	defer s.mx.Unlock()

	if s.stopped {
		return
	}

	s.stopped = true
	if s.cancel != nil {
		s.cancel()
	}
}

// Done is closed when schedule goroutine exits. Returns closed channel if advisor was never started.
func (s *Service) Done() <-chan struct{} {
	s.mx.Lock()
	defer s.mx.Unlock()

	if s.done == nil {
		done := make(chan struct{})
		close(done)
		return done
	}

	return s.done
}

func (s *Service) run(ctx context.Context, done chan struct{}) {
	defer close(done)

	s.scheduledRefresh(ctx)

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			log.Debug().Msg("run: network advisor schedule cancelled")
			s.Stop()
			return
		case <-ticker.C:
			s.scheduledRefresh(ctx)
		}
	}
}

func (s *Service) scheduledRefresh(ctx context.Context) {
	// in-flight probe is not aborted on teardown, only bounded by timeout
	probeCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), s.probeTimeout)
	defer cancel()

	// errors are already reported by Refresh, next tick acts as retry
	_ = s.Refresh(probeCtx)
}

func (s *Service) safeProbe(ctx context.Context) (result entities.ProbeResult, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("safeProbe: probe panicked: %v", r)
		}
	}()

	if result, err = s.probe.Probe(ctx); err != nil {
		return result, fmt.Errorf("safeProbe: %w", err)
	}

	return result, nil
}

func (s *Service) isStopped() bool {
	s.mx.Lock()
	defer s.mx.Unlock()

	return s.tornDown()
}

// tornDown reports whether Stop was called or schedule context is done. Caller must hold mx.
func (s *Service) tornDown() bool {
	if s.stopped {
		return true
	}

	if s.runCtx != nil && s.runCtx.Err() != nil {
		s.stopped = true
		return true
	}

	return false
}
