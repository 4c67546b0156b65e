package ordering

import (
	"context"
	"sync"

	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/jpp0ca/LinkBio-API/internal/domain"
)

// State is the phase of a drag session.
type State int

const (
	Idle State = iota
	Dragging
	Reordering
	Reconciling
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Dragging:
		return "dragging"
	case Reordering:
		return "reordering"
	case Reconciling:
		return "reconciling"
	}
	return "unknown"
}

// ErrBusy is returned when an action is not allowed in the current state.
var ErrBusy = errors.New("ordering session busy")

// Persister sends a reorder batch to the authoritative store.
type Persister interface {
	UpdateLinkOrder(ctx context.Context, ids []string) (*domain.OrderResult, error)
}

// Fetcher reads the owner's authoritative listing.
type Fetcher interface {
	ListLinks(ctx context.Context) ([]domain.Link, error)
}

// Engine runs drag sessions for one owner:
// Idle -> Dragging -> Reordering -> Reconciling -> Idle.
type Engine struct {
	owner     string
	cache     *Cache
	persister Persister
	fetcher   Fetcher
	logger    *zap.SugaredLogger

	mu    sync.Mutex
	state State
	scope Scope
}

func NewEngine(owner string, cache *Cache, persister Persister, fetcher Fetcher, logger *zap.SugaredLogger) *Engine {
	if logger == nil {
		logger = zap.NewNop().Sugar()
	}
	return &Engine{
		owner:     owner,
		cache:     cache,
		persister: persister,
		fetcher:   fetcher,
		logger:    logger,
	}
}

func (e *Engine) State() State {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.state
}

// IDs returns the ids of the current scope in display order.
func (e *Engine) IDs(scope Scope) []string {
	return e.cache.IDs(e.owner, scope)
}

// BeginDrag starts a session over scope. Only one scope is active at a time.
func (e *Engine) BeginDrag(scope Scope) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.state != Idle {
		return errors.Wrapf(ErrBusy, "begin drag while %s", e.state)
	}
	e.state = Dragging
	e.scope = scope
	return nil
}

// CancelDrag abandons a drag without touching the list.
func (e *Engine) CancelDrag() {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.state == Dragging {
		e.state = Idle
	}
}

// Drop ends the drag. When from != to the cache is rearranged immediately,
// the scoped list is persisted as one batch and the cache is then replaced
// by a fresh listing. A failed batch is returned as an error and the
// optimistic order stays in the cache. A nil result means nothing moved.
func (e *Engine) Drop(ctx context.Context, from, to int) (*domain.OrderResult, error) {
	e.mu.Lock()
	if e.state != Dragging {
		state := e.state
		e.mu.Unlock()
		return nil, errors.Wrapf(ErrBusy, "drop while %s", state)
	}
	if from == to {
		e.state = Idle
		e.mu.Unlock()
		return nil, nil
	}
	scope := e.scope
	e.state = Reordering
	e.mu.Unlock()

	ids, err := e.cache.ApplyMove(e.owner, scope, from, to)
	if err != nil {
		e.setState(Idle)
		return nil, err
	}

	result, err := e.persister.UpdateLinkOrder(ctx, ids)
	if err != nil {
		e.setState(Idle)
		e.logger.Warnw("reorder not saved", "owner", e.owner, "scope", scope.String(), "error", err)
		return nil, errors.Wrap(err, "persist order")
	}
	if result.Partial() {
		e.logger.Infow("reorder partially applied", "owner", e.owner, "dropped", result.Dropped)
	}

	e.setState(Reconciling)
	err = e.reconcile(ctx)
	e.setState(Idle)
	if err != nil {
		return result, err
	}
	return result, nil
}

// Reconcile replaces the cache with the authoritative listing. It is only
// allowed between sessions.
func (e *Engine) Reconcile(ctx context.Context) error {
	e.mu.Lock()
	if e.state != Idle {
		state := e.state
		e.mu.Unlock()
		return errors.Wrapf(ErrBusy, "reconcile while %s", state)
	}
	e.state = Reconciling
	e.mu.Unlock()

	defer e.setState(Idle)
	return e.reconcile(ctx)
}

func (e *Engine) reconcile(ctx context.Context) error {
	links, err := e.fetcher.ListLinks(ctx)
	if err != nil {
		return errors.Wrap(err, "reconcile")
	}
	e.cache.Replace(e.owner, links)
	return nil
}

func (e *Engine) setState(s State) {
	e.mu.Lock()
	e.state = s
	e.mu.Unlock()
}
