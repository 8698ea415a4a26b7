package events

import (
	"time"

	"techhelp-dashboard/internal/entities"
)

const (
	ResourceSettledEventName = "dashboard.resource.settled"
	DashboardLoadedEventName = "dashboard.loaded"
)

// ResourceSettledEvent is published once per document per page load.
type ResourceSettledEvent struct {
	LoadID   string
	Resource entities.ResourceName
	Outcome  entities.ResourceOutcome
	Warnings int
}

func (e ResourceSettledEvent) Name() string { return ResourceSettledEventName }

// DashboardLoadedEvent is published when a page load reaches its terminal state.
type DashboardLoadedEvent struct {
	LoadID   string
	State    string
	Duration time.Duration
}

func (e DashboardLoadedEvent) Name() string { return DashboardLoadedEventName }
