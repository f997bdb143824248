package api

import (
	"context"
	"time"
)

type Status string

const (
	StatusHealthy   Status = "healthy"
	StatusUnhealthy Status = "unhealthy"
	StatusDegraded  Status = "degraded"
)

type (
	ComponentHealth struct {
		Name    string `json:"name"`
		Status  Status `json:"status"`
		Message string `json:"message,omitempty"`
	}

	HealthResponse struct {
		Status     Status            `json:"status"`
		Components []ComponentHealth `json:"components"`
		Timestamp  time.Time         `json:"timestamp"`
	}

	HealthChecker interface {
		Name() string
		Check(ctx context.Context) (status Status, message string)
	}
)

// FuncChecker adapts a plain check function to HealthChecker.
type FuncChecker struct {
	name  string
	check func(ctx context.Context) (Status, string)
}

func NewFuncChecker(name string, check func(ctx context.Context) (Status, string)) *FuncChecker {
	return &FuncChecker{
		name:  name,
		check: check,
	}
}

func (c *FuncChecker) Name() string {
	return c.name
}

func (c *FuncChecker) Check(ctx context.Context) (Status, string) {
	return c.check(ctx)
}

// NewAdvisorChecker reports degraded until the first probe succeeds or when snapshot is older than maxAge.
func NewAdvisorChecker(advisorService IAdvisorService, maxAge time.Duration) *FuncChecker {
	return NewFuncChecker("advisor", func(_ context.Context) (Status, string) {
		state, known := advisorService.State()
		if !known {
			return StatusDegraded, "network state is not known yet"
		}

		if age := time.Since(state.ProbedAt()); age > maxAge {
			return StatusDegraded, "network state is stale for " + age.Truncate(time.Second).String()
		}

		return StatusHealthy, ""
	})
}
