package eventbus

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"
)

// listenerTimeout bounds a single listener call.
const listenerTimeout = 30 * time.Second

// Event is anything published on the bus.
type Event interface {
	Name() string
}

// Listener handles one event.
type Listener func(ctx context.Context, event Event) error

// Bus is an in-process publish/subscribe bus. Listeners run in their own
// goroutines and never block the publisher.
type Bus struct {
	listeners map[string][]Listener
	mu        sync.RWMutex
	inflight  sync.WaitGroup
	logger    *zap.Logger
}

func New(logger *zap.Logger) *Bus {
	return &Bus{
		listeners: make(map[string][]Listener),
		logger:    logger,
	}
}

// Subscribe registers listener for events named eventName.
func (b *Bus) Subscribe(eventName string, listener Listener) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.listeners[eventName] = append(b.listeners[eventName], listener)
}

// Publish dispatches event to every subscriber. The publisher's context is
// not passed on: listeners outlive the request that produced the event.
func (b *Bus) Publish(_ context.Context, event Event) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	eventName := event.Name()
	for _, listener := range b.listeners[eventName] {
		b.inflight.Add(1)
		go func(l Listener) {
			defer b.inflight.Done()
			defer func() {
				if r := recover(); r != nil {
					b.logger.Error("event listener panicked",
						zap.String("event", eventName),
						zap.Any("panic", r),
					)
				}
			}()

			ctx, cancel := context.WithTimeout(context.Background(), listenerTimeout)
			defer cancel()

			if err := l(ctx, event); err != nil {
				b.logger.Error("event listener failed",
					zap.String("event", eventName),
					zap.Error(err),
				)
			}
		}(listener)
	}
}

// Drain blocks until every dispatched listener has returned.
func (b *Bus) Drain() {
	b.inflight.Wait()
}
