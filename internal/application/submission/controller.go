// Package submission owns the command submission lifecycle: one request in
// flight at a time, the latest result or error, and the mode that produced it.
package submission

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"golang.org/x/sync/semaphore"

	"github.com/doeshing/autopilot-go/internal/domain"
	"github.com/doeshing/autopilot-go/internal/ports"
)

// State is a point-in-time copy of the controller.
type State struct {
	IsSubmitting bool
	LastError    string
	LastResult   *domain.AutomationResult
	// ResultMode is the mode LastResult was requested under. Renderers must
	// use it instead of ActiveMode.
	ResultMode domain.Mode
	ActiveMode domain.Mode
}

// Controller submits commands to the automation backend.
type Controller struct {
	backend  ports.AutomationBackend
	logger   ports.Logger
	inFlight *semaphore.Weighted

	mu         sync.RWMutex
	submitting bool
	activeMode domain.Mode
	resultMode domain.Mode
	lastResult *domain.AutomationResult
	lastError  string
	sequence   uint64
}

// New builds a controller starting in mode.
func New(backend ports.AutomationBackend, logger ports.Logger, mode domain.Mode) *Controller {
	if !mode.Valid() {
		mode = domain.ModeInteract
	}
	return &Controller{
		backend:    backend,
		logger:     logger,
		inFlight:   semaphore.NewWeighted(1),
		activeMode: mode,
	}
}

// Submit sends command under mode and records the outcome. It refuses blank
// commands and refuses, without queueing, while another submission is
// outstanding. A transport failure is both recorded and returned.
func (c *Controller) Submit(ctx context.Context, command string, mode domain.Mode) error {
	if c.backend == nil || c.logger == nil {
		return errors.New("submission.Controller dependencies not satisfied")
	}

	req, err := domain.NewAutomationRequest(command, mode)
	if err != nil {
		return err
	}
	if !c.inFlight.TryAcquire(1) {
		return domain.ErrSubmissionInFlight
	}
	defer c.inFlight.Release(1)

	c.mu.Lock()
	c.sequence++
	seq := c.sequence
	c.submitting = true
	c.lastResult = nil
	c.lastError = ""
	c.mu.Unlock()

	fields := map[string]interface{}{"mode": req.Mode.String(), "sequence": seq}
	c.logger.Info("submitting command", fields)

	start := time.Now()
	result, err := c.backend.Submit(ctx, req)
	fields["duration_ms"] = time.Since(start).Milliseconds()

	c.mu.Lock()
	defer c.mu.Unlock()
	c.submitting = false
	if err != nil {
		c.lastResult = nil
		c.lastError = DescribeFailure(err)
		c.logger.Error("submission failed", err, fields)
		return fmt.Errorf("submit %s command: %w", req.Mode, err)
	}

	c.lastResult = &result
	c.resultMode = req.Mode
	c.lastError = ""
	fields["status"] = string(result.Status)
	c.logger.Info("submission completed", fields)
	return nil
}

// SetMode changes the active mode. The stored result and error are kept.
func (c *Controller) SetMode(mode domain.Mode) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.activeMode = mode
}

// CanSubmit reports whether a submission of command would be offered.
func (c *Controller) CanSubmit(command string) bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return !c.submitting && strings.TrimSpace(command) != ""
}

// Snapshot returns the current state.
func (c *Controller) Snapshot() State {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return State{
		IsSubmitting: c.submitting,
		LastError:    c.lastError,
		LastResult:   c.lastResult,
		ResultMode:   c.resultMode,
		ActiveMode:   c.activeMode,
	}
}

// DescribeFailure turns a failure into banner text, falling back to a
// generic message when the error has none.
func DescribeFailure(err error) string {
	if err == nil {
		return domain.GenericFailureMessage
	}
	if message := strings.TrimSpace(err.Error()); message != "" {
		return message
	}
	return domain.GenericFailureMessage
}
