package services

import (
	"context"
	"errors"
	"sync"
	"time"

	"techhelp-dashboard/internal/entities"
)

type Phase string

const (
	PhaseLoading  Phase = "loading"
	PhaseReady    Phase = "ready"
	PhaseFailed   Phase = "failed"
	PhaseTimedOut Phase = "timed_out"
)

// ViewState is one of Loading, Ready, Failed or TimedOut.
type ViewState interface {
	Phase() Phase
	viewState()
}

type Loading struct{}

// Ready carries the snapshot accepted by the load.
type Ready struct {
	Snapshot entities.Snapshot
}

// Failed means the main summary document was not accepted.
type Failed struct {
	Reason error
}

// TimedOut means the load deadline passed before the summary document settled.
type TimedOut struct {
	After time.Duration
}

func (Loading) Phase() Phase  { return PhaseLoading }
func (Ready) Phase() Phase    { return PhaseReady }
func (Failed) Phase() Phase   { return PhaseFailed }
func (TimedOut) Phase() Phase { return PhaseTimedOut }

func (Loading) viewState()  {}
func (Ready) viewState()    {}
func (Failed) viewState()   {}
func (TimedOut) viewState() {}

// Loader produces the terminal state of one page load.
type Loader interface {
	Load(ctx context.Context) ViewState
}

// DashboardView owns the state of one page load. It leaves Loading at most
// once; results arriving after Dispose or after the load context was
// cancelled are dropped.
type DashboardView struct {
	mu       sync.Mutex
	state    ViewState
	started  bool
	disposed bool
	loader   Loader
}

func NewDashboardView(loader Loader) *DashboardView {
	return &DashboardView{state: Loading{}, loader: loader}
}

// Load runs the loader and applies its result. Subsequent calls return the
// current state without loading again.
func (v *DashboardView) Load(ctx context.Context) ViewState {
	v.mu.Lock()
	if v.started || v.disposed {
		state := v.state
		v.mu.Unlock()
		return state
	}
	v.started = true
	v.mu.Unlock()

	result := v.loader.Load(ctx)

	v.mu.Lock()
	defer v.mu.Unlock()
	if v.disposed || errors.Is(ctx.Err(), context.Canceled) {
		return v.state
	}
	v.state = result
	return v.state
}

// Dispose marks the view as gone. It is safe to call more than once.
func (v *DashboardView) Dispose() {
	v.mu.Lock()
	v.disposed = true
	v.mu.Unlock()
}

func (v *DashboardView) State() ViewState {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.state
}
