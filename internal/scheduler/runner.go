// Package scheduler re-runs recurring-rule automation on a fixed interval.
package scheduler

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	portssvc "github.com/SscSPs/mtrack/internal/core/ports/services"
)

// Runner invokes the automation engine once on Start and then every interval.
// It is safe for concurrent use.
type Runner struct {
	automation portssvc.AutomationSvc
	interval   time.Duration
	logger     *slog.Logger

	mu        sync.Mutex
	wg        sync.WaitGroup
	closeChan chan struct{}
	started   bool
	stopped   bool
}

// NewRunner creates a runner. An interval of zero or less disables the periodic runs and only
// the startup run happens.
func NewRunner(automation portssvc.AutomationSvc, interval time.Duration, logger *slog.Logger) *Runner {
	if logger == nil {
		logger = slog.Default()
	}
	return &Runner{
		automation: automation,
		interval:   interval,
		logger:     logger,
		closeChan:  make(chan struct{}),
	}
}

// Start runs the automation engine once and, if an interval is set, keeps running it in the
// background until ctx is cancelled or Stop is called.
func (r *Runner) Start(ctx context.Context) error {
	r.mu.Lock()
	if r.stopped {
		r.mu.Unlock()
		return fmt.Errorf("runner is stopped")
	}
	if r.started {
		r.mu.Unlock()
		return fmt.Errorf("runner already started")
	}
	r.started = true
	r.mu.Unlock()

	r.runOnce(ctx)

	if r.interval <= 0 {
		r.logger.InfoContext(ctx, "Periodic automation disabled")
		return nil
	}

	r.wg.Add(1)
	go r.loop(ctx)
	return nil
}

func (r *Runner) loop(ctx context.Context) {
	defer r.wg.Done()

	ticker := time.NewTicker(r.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-r.closeChan:
			return
		case <-ticker.C:
			r.runOnce(ctx)
		}
	}
}

func (r *Runner) runOnce(ctx context.Context) {
	// The engine logs its own summary.
	if _, err := r.automation.RunAutomation(ctx); err != nil {
		r.logger.ErrorContext(ctx, "Automation run failed", slog.String("error", err.Error()))
	}
}

// Stop ends the periodic runs and waits for an in-flight run to finish, or for ctx to expire.
func (r *Runner) Stop(ctx context.Context) error {
	r.mu.Lock()
	if r.stopped {
		r.mu.Unlock()
		return nil
	}
	r.stopped = true
	close(r.closeChan)
	r.mu.Unlock()

	done := make(chan struct{})
	go func() {
		r.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return fmt.Errorf("timeout waiting for automation run: %w", ctx.Err())
	}
}
