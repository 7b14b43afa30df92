// Package controller runs the client state machine. It serializes
// transitions, executes the effects they request and feeds the outcomes of
// requests and timers back in as further transitions.
package controller

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/dmitrijs2005/notesummarizer/internal/client/api"
	"github.com/dmitrijs2005/notesummarizer/internal/client/config"
	"github.com/dmitrijs2005/notesummarizer/internal/client/host"
	"github.com/dmitrijs2005/notesummarizer/internal/client/models"
	"github.com/dmitrijs2005/notesummarizer/internal/client/state"
	"github.com/dmitrijs2005/notesummarizer/internal/logging"
)

// Transition is one state change. Method expressions such as
// state.State.Generate are transitions.
type Transition func(state.State) (state.State, []state.Effect)

// Bind turns a transition that takes an argument into a Transition.
func Bind[A any](f func(state.State, A) (state.State, []state.Effect), arg A) Transition {
	return func(s state.State) (state.State, []state.Effect) {
		return f(s, arg)
	}
}

// Observer receives the state before and after every dispatched transition.
type Observer func(prev, next state.State)

type change struct {
	prev, next state.State
}

type Controller struct {
	mu       sync.Mutex
	st       state.State
	closed   bool
	timers   map[uuid.UUID]*time.Timer
	inflight map[uuid.UUID]context.CancelFunc

	changes  []change
	draining bool

	obsMu     sync.Mutex
	observers map[int]Observer
	nextObs   int

	svc     api.Service
	page    host.ScrollLock
	log     logging.Logger
	timeout time.Duration

	ctx    context.Context
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// New builds a controller in the initial state derived from cfg.
func New(cfg *config.Config, svc api.Service, page host.ScrollLock, log logging.Logger) *Controller {
	ctx, cancel := context.WithCancel(context.Background())
	return &Controller{
		st: state.New(state.Options{
			DefaultPrompt:  cfg.DefaultPrompt,
			DefaultSubject: cfg.DefaultSubject,
			SuccessDismiss: cfg.SuccessDismissDelay,
			FailureDismiss: cfg.FailureDismissDelay,
		}),
		timers:    make(map[uuid.UUID]*time.Timer),
		inflight:  make(map[uuid.UUID]context.CancelFunc),
		observers: make(map[int]Observer),
		svc:       svc,
		page:      page,
		log:       log,
		timeout:   cfg.RequestTimeout,
		ctx:       ctx,
		cancel:    cancel,
	}
}

// Dispatch applies tr to the current state and runs the resulting effects.
// Effects never block: requests and timers complete later through further
// dispatches. After Close, Dispatch does nothing.
//
// Observers see changes in dispatch order. When another goroutine is already
// delivering, the change is queued and delivered by that goroutine, so an
// observer may dispatch without deadlocking.
func (c *Controller) Dispatch(tr Transition) {
	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return
	}
	prev := c.st
	st, effects := tr(prev)
	c.st = st
	for _, e := range effects {
		c.apply(e)
	}
	c.changes = append(c.changes, change{prev: prev, next: st})
	deliver := !c.draining
	c.draining = true
	c.mu.Unlock()

	if deliver {
		c.drain()
	}
}

// Snapshot returns the current state.
func (c *Controller) Snapshot() state.State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.st
}

// Subscribe registers fn for state changes and returns a function that
// removes it. Observers run outside the controller lock, one change at a
// time, and may be called from request or timer goroutines.
func (c *Controller) Subscribe(fn Observer) func() {
	c.obsMu.Lock()
	defer c.obsMu.Unlock()
	id := c.nextObs
	c.nextObs++
	c.observers[id] = fn
	return func() {
		c.obsMu.Lock()
		defer c.obsMu.Unlock()
		delete(c.observers, id)
	}
}

// Close tears the client down: the dialog is closed, the scroll lock is
// released, pending timers are stopped and in-flight requests are canceled.
// Results that arrive afterwards are dropped. Close waits for request
// goroutines to exit and is safe to call more than once.
func (c *Controller) Close() {
	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return
	}
	st, effects := c.st.Teardown()
	c.st = st
	for _, e := range effects {
		c.apply(e)
	}
	c.closed = true
	for tag, t := range c.timers {
		t.Stop()
		delete(c.timers, tag)
	}
	c.mu.Unlock()

	c.cancel()
	c.wg.Wait()
	c.log.Debug(context.Background(), "controller closed")
}

// drain delivers queued changes until the queue is empty. Only one
// goroutine drains at a time.
func (c *Controller) drain() {
	for {
		c.mu.Lock()
		if len(c.changes) == 0 {
			c.draining = false
			c.mu.Unlock()
			return
		}
		ch := c.changes[0]
		c.changes = c.changes[1:]
		c.mu.Unlock()

		c.notify(ch)
	}
}

func (c *Controller) notify(ch change) {
	c.obsMu.Lock()
	obs := make([]Observer, 0, len(c.observers))
	for _, fn := range c.observers {
		obs = append(obs, fn)
	}
	c.obsMu.Unlock()

	for _, fn := range obs {
		fn(ch.prev, ch.next)
	}
}

// apply runs one effect. Called with c.mu held.
func (c *Controller) apply(e state.Effect) {
	switch e := e.(type) {
	case state.SummarizeEffect:
		c.startSummarize(e)
	case state.SendEmailEffect:
		c.startSendEmail(e)
	case state.ScheduleDismissEffect:
		c.schedule(e.Tag, e.After)
	case state.CancelDismissEffect:
		if t, ok := c.timers[e.Tag]; ok {
			t.Stop()
			delete(c.timers, e.Tag)
		}
	case state.AcquireScrollEffect:
		c.page.Suppress()
	case state.ReleaseScrollEffect:
		c.page.Restore()
	default:
		c.log.Warn(c.ctx, "unknown effect", "effect", e)
	}
}

func (c *Controller) requestContext(id uuid.UUID) context.Context {
	var (
		ctx    context.Context
		cancel context.CancelFunc
	)
	if c.timeout > 0 {
		ctx, cancel = context.WithTimeout(c.ctx, c.timeout)
	} else {
		ctx, cancel = context.WithCancel(c.ctx)
	}
	c.inflight[id] = cancel
	c.wg.Add(1)
	return ctx
}

func (c *Controller) finish(id uuid.UUID) {
	c.mu.Lock()
	cancel, ok := c.inflight[id]
	delete(c.inflight, id)
	c.mu.Unlock()
	if ok {
		cancel()
	}
	c.wg.Done()
}

func (c *Controller) startSummarize(e state.SummarizeEffect) {
	ctx := c.requestContext(e.ID)
	c.log.Info(ctx, "summarize started", "request_id", e.ID)

	go func() {
		defer c.finish(e.ID)

		resp, err := c.svc.Summarize(ctx, e.Request)
		f := c.classify(ctx, "summarize", e.ID, err)
		if f != nil {
			resp = nil
		}
		c.Dispatch(func(s state.State) (state.State, []state.Effect) {
			return s.SummaryDone(e.ID, resp, f)
		})
	}()
}

func (c *Controller) startSendEmail(e state.SendEmailEffect) {
	ctx := c.requestContext(e.ID)
	c.log.Info(ctx, "email send started", "request_id", e.ID, "recipients", len(e.Request.To))

	go func() {
		defer c.finish(e.ID)

		resp, err := c.svc.SendEmail(ctx, e.Request)
		f := c.classify(ctx, "email", e.ID, err)
		if f != nil {
			resp = nil
		}
		c.Dispatch(func(s state.State) (state.State, []state.Effect) {
			return s.EmailDone(e.ID, resp, f)
		})
	}()
}

func (c *Controller) classify(ctx context.Context, op string, id uuid.UUID, err error) *models.Failure {
	f := api.Classify(err)
	if f == nil {
		c.log.Info(ctx, op+" finished", "request_id", id)
		return nil
	}
	c.log.Warn(ctx, op+" failed", "request_id", id, "kind", f.Kind.String(), "status", f.Status, "error", err)
	return f
}

func (c *Controller) schedule(tag uuid.UUID, after time.Duration) {
	c.timers[tag] = time.AfterFunc(after, func() {
		c.mu.Lock()
		delete(c.timers, tag)
		c.mu.Unlock()

		c.Dispatch(func(s state.State) (state.State, []state.Effect) {
			return s.DismissFired(tag)
		})
	})
}
