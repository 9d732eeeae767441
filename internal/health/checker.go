// Package health runs periodic liveness checks against the state store,
// the notification inbox and the Lingo home directory.
package health

import (
	"context"
	"fmt"
	"os"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/globallingo/lingo/internal/infra/metrics"
)

// DefaultInterval is how often Run re-checks.
const DefaultInterval = 30 * time.Second

// Check defines a single health check with optional recovery action.
type Check struct {
	Name      string
	CheckFn   func(ctx context.Context) error
	RecoverFn func(ctx context.Context) error
}

// Status represents the result of a health check.
type Status struct {
	Name      string    `json:"name"`
	Healthy   bool      `json:"healthy"`
	Error     string    `json:"error,omitempty"`
	CheckedAt time.Time `json:"checked_at"`
}

// Pinger is anything with a connectivity probe (SQLite, Redis).
type Pinger interface {
	Ping(ctx context.Context) error
}

// Checker runs periodic health checks.
type Checker struct {
	mu       sync.RWMutex
	checks   []Check
	statuses []Status
	interval time.Duration
	timeout  time.Duration
	log      *zap.Logger
}

// NewChecker creates a checker over the given checks.
func NewChecker(log *zap.Logger, checks ...Check) *Checker {
	if log == nil {
		log = zap.NewNop()
	}
	return &Checker{
		checks:   checks,
		interval: DefaultInterval,
		timeout:  5 * time.Second,
		log:      log,
	}
}

// PingCheck probes p with Ping.
func PingCheck(name string, p Pinger) Check {
	return Check{
		Name:    name,
		CheckFn: p.Ping,
	}
}

// DirCheck verifies dir exists and is a directory, creating it on recovery.
func DirCheck(name, dir string) Check {
	return Check{
		Name: name,
		CheckFn: func(ctx context.Context) error {
			info, err := os.Stat(dir)
			if err != nil {
				return fmt.Errorf("stat %s: %w", dir, err)
			}
			if !info.IsDir() {
				return fmt.Errorf("%s is not a directory", dir)
			}
			return nil
		},
		RecoverFn: func(ctx context.Context) error {
			return os.MkdirAll(dir, 0700)
		},
	}
}

// Run starts the health check loop. Call in a goroutine.
func (c *Checker) Run(ctx context.Context) {
	c.RunOnce(ctx)

	ticker := time.NewTicker(c.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			c.RunOnce(ctx)
		}
	}
}

// RunOnce runs every check once and records the results.
func (c *Checker) RunOnce(ctx context.Context) {
	statuses := make([]Status, len(c.checks))
	for i, check := range c.checks {
		s := Status{
			Name:      check.Name,
			CheckedAt: time.Now(),
		}

		cctx, cancel := context.WithTimeout(ctx, c.timeout)
		err := check.CheckFn(cctx)
		cancel()

		if err != nil {
			s.Error = err.Error()
			c.log.Warn("health check failed", zap.String("check", check.Name), zap.Error(err))
			if check.RecoverFn != nil {
				if rerr := check.RecoverFn(ctx); rerr != nil {
					c.log.Error("health recovery failed", zap.String("check", check.Name), zap.Error(rerr))
				}
			}
		} else {
			s.Healthy = true
		}

		up := 0.0
		if s.Healthy {
			up = 1
		}
		metrics.HealthCheck.WithLabelValues(check.Name).Set(up)
		statuses[i] = s
	}

	c.mu.Lock()
	c.statuses = statuses
	c.mu.Unlock()
}

// Statuses returns the latest health check results.
func (c *Checker) Statuses() []Status {
	c.mu.RLock()
	defer c.mu.RUnlock()
	result := make([]Status, len(c.statuses))
	copy(result, c.statuses)
	return result
}

// IsHealthy returns true if all checks pass.
func (c *Checker) IsHealthy() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	for _, s := range c.statuses {
		if !s.Healthy {
			return false
		}
	}
	return true
}
