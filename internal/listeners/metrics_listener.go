package listeners

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"techhelp-dashboard/internal/events"
	"techhelp-dashboard/pkg/eventbus"
	"techhelp-dashboard/pkg/monitoring"
)

// MetricsListener turns dashboard load events into Prometheus samples.
type MetricsListener struct {
	logger *zap.Logger
}

func NewMetricsListener(logger *zap.Logger) *MetricsListener {
	return &MetricsListener{logger: logger}
}

// Register subscribes the listener to every event it handles.
func (l *MetricsListener) Register(bus *eventbus.Bus) {
	bus.Subscribe(events.ResourceSettledEventName, l.OnResourceSettled)
	bus.Subscribe(events.DashboardLoadedEventName, l.OnDashboardLoaded)
}

func (l *MetricsListener) OnResourceSettled(_ context.Context, event eventbus.Event) error {
	e, ok := event.(events.ResourceSettledEvent)
	if !ok {
		return fmt.Errorf("unexpected event type %T for %s", event, event.Name())
	}

	monitoring.ResourceFetchTotal.WithLabelValues(string(e.Resource), string(e.Outcome)).Inc()
	if e.Warnings > 0 {
		monitoring.ResourceWarningsTotal.WithLabelValues(string(e.Resource)).Add(float64(e.Warnings))
	}
	return nil
}

func (l *MetricsListener) OnDashboardLoaded(_ context.Context, event eventbus.Event) error {
	e, ok := event.(events.DashboardLoadedEvent)
	if !ok {
		return fmt.Errorf("unexpected event type %T for %s", event, event.Name())
	}

	monitoring.DashboardLoadsTotal.WithLabelValues(e.State).Inc()
	monitoring.DashboardLoadDuration.Observe(e.Duration.Seconds())
	l.logger.Debug("dashboard load recorded",
		zap.String("load_id", e.LoadID),
		zap.String("state", e.State),
		zap.Duration("duration", e.Duration),
	)
	return nil
}
