package session

import (
	"context"
	"io"
	"strings"
	"sync"

	"github.com/rs/zerolog"

	"wallpaper/internal/domain"
	"wallpaper/internal/imagegen"
	"wallpaper/internal/infra"
)

// Controller owns the session state and drives the generate lifecycle.
// All methods are safe for concurrent use.
type Controller struct {
	gen    imagegen.Generator
	logger *infra.Logger

	mu          sync.Mutex
	state       State
	subscribers []func(State)

	// notifyMu is taken before mu is released so snapshots reach
	// subscribers in the order the mutations happened.
	notifyMu sync.Mutex
}

func NewController(gen imagegen.Generator, logger *infra.Logger) *Controller {
	if logger == nil {
		l := zerolog.New(io.Discard)
		logger = &l
	}
	return &Controller{gen: gen, logger: logger, state: NewState()}
}

// Subscribe registers fn to receive a snapshot after every state change.
// Snapshots arrive in mutation order, possibly from another goroutine. fn
// must not call back into the controller; hand the snapshot off instead.
func (c *Controller) Subscribe(fn func(State)) {
	c.mu.Lock()
	c.subscribers = append(c.subscribers, fn)
	c.mu.Unlock()
}

// State returns a copy of the current state.
func (c *Controller) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// SetPrompt replaces the prompt text. It never changes the phase.
func (c *Controller) SetPrompt(prompt string) {
	c.update(func(s *State) bool {
		if s.Prompt == prompt {
			return false
		}
		s.Prompt = prompt
		return true
	})
}

// SelectDevice changes the target device. Unknown profiles are ignored.
func (c *Controller) SelectDevice(d domain.DeviceProfile) {
	if !d.Valid() {
		return
	}
	c.update(func(s *State) bool {
		if s.Device == d {
			return false
		}
		s.Device = d
		return true
	})
}

// Generate starts one request for the current prompt and device. It returns
// nil when the command is ignored: a request is already in flight or the
// prompt is blank. Otherwise the returned channel is closed once the outcome
// has been applied to the state.
func (c *Controller) Generate(ctx context.Context) <-chan struct{} {
	c.mu.Lock()
	if c.state.IsLoading || strings.TrimSpace(c.state.Prompt) == "" {
		c.mu.Unlock()
		return nil
	}
	c.state.IsLoading = true
	c.state.Error = ""
	c.state.Image = ""
	c.state.Generation++
	prompt := c.state.Prompt
	ratio := c.state.AspectRatio()
	seq := c.state.Generation
	c.publishLocked()

	c.logger.Debug().
		Uint64("generation", seq).
		Str("aspect_ratio", string(ratio)).
		Msg("session: generate started")

	done := make(chan struct{})
	go func() {
		defer close(done)
		image, err := c.gen.Generate(ctx, prompt, ratio)
		c.finish(seq, image, err)
	}()
	return done
}

func (c *Controller) finish(seq uint64, image string, err error) {
	c.update(func(s *State) bool {
		s.IsLoading = false
		if err != nil {
			s.Error = domain.Message(err)
			s.Image = ""
			return true
		}
		if image == "" {
			s.Error = domain.Message(domain.ErrEmptyResult)
			s.Image = ""
			return true
		}
		s.Image = image
		s.Error = ""
		return true
	})

	if err != nil {
		c.logger.Warn().Err(err).Uint64("generation", seq).Msg("session: generate failed")
		return
	}
	c.logger.Debug().Uint64("generation", seq).Msg("session: generate succeeded")
}

func (c *Controller) update(mutate func(*State) bool) {
	c.mu.Lock()
	if !mutate(&c.state) {
		c.mu.Unlock()
		return
	}
	c.publishLocked()
}

// publishLocked must be called with mu held and releases it.
func (c *Controller) publishLocked() {
	snap, subs := c.state, c.subscribers
	c.notifyMu.Lock()
	c.mu.Unlock()
	defer c.notifyMu.Unlock()
	for _, fn := range subs {
		fn(snap)
	}
}
