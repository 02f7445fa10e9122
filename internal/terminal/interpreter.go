package terminal

import (
	"context"
	"strings"
	"sync"
	"time"

	"go.uber.org/zap"
)

const defaultRequestTimeout = 10 * time.Second

// Interpreter turns submitted lines into history records.
type Interpreter struct {
	history  *History
	registry *Registry
	timeout  time.Duration
	logger   *zap.Logger
	onClose  func()
	onUpdate func()

	mu      sync.Mutex
	section string

	ctx    context.Context
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

type Option func(*Interpreter)

// WithRequestTimeout bounds every asynchronous command.
func WithRequestTimeout(d time.Duration) Option {
	return func(i *Interpreter) {
		if d > 0 {
			i.timeout = d
		}
	}
}

func WithLogger(logger *zap.Logger) Option {
	return func(i *Interpreter) { i.logger = logger }
}

// OnClose registers the callback run by the exit command.
func OnClose(fn func()) Option {
	return func(i *Interpreter) { i.onClose = fn }
}

// OnUpdate registers a callback run after every history change, including
// placeholders resolved from background goroutines.
func OnUpdate(fn func()) Option {
	return func(i *Interpreter) { i.onUpdate = fn }
}

func NewInterpreter(history *History, registry *Registry, opts ...Option) *Interpreter {
	ctx, cancel := context.WithCancel(context.Background())
	i := &Interpreter{
		history:  history,
		registry: registry,
		timeout:  defaultRequestTimeout,
		logger:   zap.NewNop(),
		ctx:      ctx,
		cancel:   cancel,
	}
	for _, opt := range opts {
		opt(i)
	}
	return i
}

// Submit interprets one line of input. Blank input is ignored. Asynchronous
// commands append a loading placeholder and return immediately.
func (i *Interpreter) Submit(raw string) {
	input := strings.TrimSpace(raw)
	if input == "" {
		return
	}

	outcome := i.registry.Dispatch(strings.ToLower(input))

	switch outcome.Action {
	case ActionClear:
		i.history.Clear()
		i.setSection("")
		i.notify()
		return
	case ActionExit:
		if i.onClose != nil {
			i.onClose()
		}
		return
	}

	i.setSection(outcome.Section)
	rec := i.history.Append(input, outcome.Result)
	i.notify()

	if outcome.Fetch != nil {
		i.resolve(rec.ID, input, outcome.Fetch)
	}
}

func (i *Interpreter) resolve(id, input string, fetch FetchFunc) {
	i.wg.Add(1)
	go func() {
		defer i.wg.Done()

		ctx, cancel := context.WithTimeout(i.ctx, i.timeout)
		defer cancel()

		result := fetch(ctx)
		if !i.history.Replace(id, result) {
			i.logger.Debug("dropped response for cleared record", zap.String("id", id), zap.String("input", input))
			return
		}
		i.logger.Debug("resolved record", zap.String("id", id), zap.String("input", input), zap.Stringer("kind", result.Kind))
		i.notify()
	}()
}

// Section is the breadcrumb of the last section command, or "".
func (i *Interpreter) Section() string {
	i.mu.Lock()
	defer i.mu.Unlock()
	return i.section
}

func (i *Interpreter) History() *History {
	return i.history
}

// Wait blocks until every in-flight request has resolved.
func (i *Interpreter) Wait() {
	i.wg.Wait()
}

// Close cancels in-flight requests and waits for them.
func (i *Interpreter) Close() {
	i.cancel()
	i.wg.Wait()
}

func (i *Interpreter) setSection(section string) {
	i.mu.Lock()
	defer i.mu.Unlock()
	i.section = section
}

func (i *Interpreter) notify() {
	if i.onUpdate != nil {
		i.onUpdate()
	}
}
