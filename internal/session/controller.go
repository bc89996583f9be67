// Package session orchestrates one diagnostic attempt: a validated image
// submission, the awaited classifier call with its simulated progress
// affordance, and the success or demo-fallback hand-off.
package session

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/phytoscan/phytoscan/internal/models"
	"github.com/phytoscan/phytoscan/internal/result"
	"github.com/phytoscan/phytoscan/internal/validate"
)

// State names one phase of the session lifecycle.
type State string

const (
	StateIdle         State = "idle"
	StateFileSelected State = "file-selected"
	StateSubmitting   State = "submitting"
	StateSucceeded    State = "succeeded"
	StateFallbackDemo State = "fallback-demo"
	StateCompleted    State = "completed"
)

// ErrNoSubmission is returned by Submit when no validated image is held.
var ErrNoSubmission = errors.New("no image selected")

// ErrSubmitting is returned by Reset while a submission is in flight.
var ErrSubmitting = errors.New("submission in flight")

// Classifier is the remote call the controller awaits. Satisfied by
// api.Client.
type Classifier interface {
	Predict(ctx context.Context, filename string, image io.Reader) (models.DiagnosticResult, error)
}

// Submission is the validated image held by the session.
type Submission struct {
	Path      string
	MediaType string
	Size      int64
	Preview   string
}

// Outcome is what the controller hands off to result rendering.
type Outcome struct {
	Result  models.DiagnosticResult
	Preview string
}

// Controller is the diagnostic session state machine. At most one
// submission is in flight at a time; a Submit while already submitting is
// a no-op.
type Controller struct {
	classifier Classifier

	tick         time.Duration
	handoffDelay time.Duration
	onProgress   func(float64)

	mu         sync.Mutex
	state      State
	submission *Submission
	progress   float64
	generation int
}

// Option configures a Controller.
type Option func(*Controller)

// WithProgressFunc registers a callback invoked on every progress change.
// The callback runs outside the controller lock.
func WithProgressFunc(fn func(float64)) Option {
	return func(c *Controller) { c.onProgress = fn }
}

// WithTick overrides the simulated-progress tick interval.
func WithTick(d time.Duration) Option {
	return func(c *Controller) { c.tick = d }
}

// WithHandoffDelay overrides the post-success delay before hand-off.
func WithHandoffDelay(d time.Duration) Option {
	return func(c *Controller) { c.handoffDelay = d }
}

// New creates an idle session controller.
func New(classifier Classifier, opts ...Option) *Controller {
	c := &Controller{
		classifier:   classifier,
		tick:         250 * time.Millisecond,
		handoffDelay: 300 * time.Millisecond,
		state:        StateIdle,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// State reports the current lifecycle phase.
func (c *Controller) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// Progress reports the displayed progress percentage.
func (c *Controller) Progress() float64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.progress
}

// SelectFile validates an image and, on acceptance, holds it as the
// session's submission. Rejections leave the session state untouched, so
// the user simply re-selects. Preview rendering is best-effort.
func (c *Controller) SelectFile(path string) error {
	c.mu.Lock()
	state := c.state
	c.mu.Unlock()
	if state != StateIdle && state != StateFileSelected {
		return fmt.Errorf("cannot select a file while %s", state)
	}

	checked, err := validate.ValidateFile(path)
	if err != nil {
		return err
	}
	if !checked.Accepted {
		return checked.Err()
	}

	preview, err := validate.Preview(path, checked.MediaType)
	if err != nil {
		slog.Warn("Preview rendering failed", "path", path, "error", err)
		preview = ""
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	c.submission = &Submission{
		Path:      path,
		MediaType: checked.MediaType,
		Size:      checked.Size,
		Preview:   preview,
	}
	c.state = StateFileSelected
	return nil
}

// Submission returns a copy of the held submission, if any.
func (c *Controller) Submission() (Submission, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.submission == nil {
		return Submission{}, false
	}
	return *c.submission, true
}

// Submit runs the held submission through the classifier and blocks until
// the session completes. Any remote failure degrades to the deterministic
// demo result; Submit only errors when there is nothing to submit or the
// context was cancelled. A call while already submitting is a no-op and
// returns a nil outcome.
func (c *Controller) Submit(ctx context.Context) (*Outcome, error) {
	c.mu.Lock()
	if c.state == StateSubmitting {
		c.mu.Unlock()
		return nil, nil
	}
	if c.state != StateFileSelected || c.submission == nil {
		c.mu.Unlock()
		return nil, ErrNoSubmission
	}
	sub := *c.submission
	c.state = StateSubmitting
	c.progress = 0
	c.generation++
	gen := c.generation
	c.mu.Unlock()

	stop := c.startProgress(gen)
	started := time.Now()
	res, err := c.callClassifier(ctx, sub)
	// The simulated timer never outlives the remote call.
	stop()

	c.mu.Lock()
	if c.generation != gen {
		// The session was abandoned while the call was in flight; a
		// late response must not resurrect it.
		c.mu.Unlock()
		slog.Debug("Discarding stale classifier response", "generation", gen)
		return nil, nil
	}
	c.mu.Unlock()

	if err != nil {
		if ctx.Err() != nil {
			c.abandon(gen)
			return nil, ctx.Err()
		}
		slog.Warn("Classifier unavailable, falling back to demo result", "error", err)
		return c.fallback(gen, sub)
	}

	res.Mode = models.ModeLive
	if res.ElapsedSec == 0 {
		res.ElapsedSec = time.Since(started).Seconds()
	}
	result.Finalize(&res)
	return c.succeed(gen, sub, res)
}

func (c *Controller) callClassifier(ctx context.Context, sub Submission) (models.DiagnosticResult, error) {
	file, err := os.Open(sub.Path)
	if err != nil {
		return models.DiagnosticResult{}, fmt.Errorf("failed to open image: %w", err)
	}
	defer file.Close()
	return c.classifier.Predict(ctx, filepath.Base(sub.Path), file)
}

func (c *Controller) succeed(gen int, sub Submission, res models.DiagnosticResult) (*Outcome, error) {
	c.setProgress(gen, 100)
	c.setState(gen, StateSucceeded)

	// Perceived-smoothness pause between the full bar and the hand-off.
	time.Sleep(c.handoffDelay)

	c.setState(gen, StateCompleted)
	return &Outcome{Result: res, Preview: sub.Preview}, nil
}

func (c *Controller) fallback(gen int, sub Submission) (*Outcome, error) {
	c.setProgress(gen, 0)
	c.setState(gen, StateFallbackDemo)
	res := DemoResult()
	c.setState(gen, StateCompleted)
	return &Outcome{Result: res, Preview: sub.Preview}, nil
}

func (c *Controller) abandon(gen int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.generation != gen {
		return
	}
	c.generation++
	c.state = StateIdle
	c.submission = nil
	c.progress = 0
}

// Reset returns the session to idle, discarding the held submission and
// progress. Invalid while a submission is in flight.
func (c *Controller) Reset() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.state == StateSubmitting {
		return ErrSubmitting
	}
	c.generation++
	c.state = StateIdle
	c.submission = nil
	c.progress = 0
	return nil
}

func (c *Controller) setState(gen int, state State) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.generation != gen {
		return
	}
	c.state = state
}

func (c *Controller) setProgress(gen int, value float64) {
	c.mu.Lock()
	if c.generation != gen {
		c.mu.Unlock()
		return
	}
	c.progress = value
	fn := c.onProgress
	c.mu.Unlock()

	if fn != nil {
		fn(value)
	}
}
