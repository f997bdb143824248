package netstate

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"
	"github.com/sourcegraph/conc/pool"

	"github.com/saksham-app/delivery-agent/internal/entities"
)

type (
	ILinkProbe interface {
		ProbeLink(ctx context.Context) (link Link, err error)
	}

	IReachabilityChecker interface {
		CheckReachable(ctx context.Context) (reachable bool, err error)
	}
)

// Probe merges link state and internet reachability into one probe result.
type Probe struct {
	linkProbe    ILinkProbe
	reachability IReachabilityChecker
}

// NewProbe creates probe. With nil reachability checker internet is considered reachable when link is up.
func NewProbe(linkProbe ILinkProbe, reachability IReachabilityChecker) *Probe {
	return &Probe{
		linkProbe:    linkProbe,
		reachability: reachability,
	}
}

func (p *Probe) Probe(ctx context.Context) (result entities.ProbeResult, err error) {
	var (
		link               Link
		linkErr            error
		reachable          bool
		reachErr           error
		checksReachability = p.reachability != nil
	)

	workers := pool.New().WithMaxGoroutines(2)
	workers.Go(func() {
		link, linkErr = p.linkProbe.ProbeLink(ctx)
	})
	if checksReachability {
		workers.Go(func() {
			reachable, reachErr = p.reachability.CheckReachable(ctx)
		})
	}
	workers.Wait()

	if linkErr != nil {
		return result, fmt.Errorf("Probe: %w", linkErr)
	}

	if reachErr != nil {
		log.Debug().
			Err(reachErr).
			Msg("Probe: internet reachability check failed")
	}

	if !checksReachability {
		reachable = link.Connected
	}

	return entities.ProbeResult{
		Connected:         link.Connected,
		InternetReachable: reachable,
		Type:              link.Type,
	}, nil
}

// StaticProbe always returns the same result.
type StaticProbe struct {
	result entities.ProbeResult
}

func NewStaticProbe(result entities.ProbeResult) *StaticProbe {
	return &StaticProbe{
		result: result,
	}
}

func (p *StaticProbe) Probe(_ context.Context) (result entities.ProbeResult, err error) {
	return p.result, nil
}
