package services

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"techhelp-dashboard/internal/entities"
)

func sampleSnapshot() entities.Snapshot {
	return entities.Snapshot{
		LoadID:   "load-42",
		LoadedAt: time.Date(2026, 3, 2, 9, 30, 0, 0, time.UTC),
		Summary: entities.DashboardSummary{
			OpenCount:          1000,
			ClosedCount:        750,
			AvgResolutionHours: 4.26,
			TopTechnician:      entities.TopTechnician{Name: "Ana Souza", ClosedCount: 120},
			RecurringCategories: []entities.CategoryCount{
				{Category: "Rede", Count: 40},
			},
			AvgSatisfaction: 4.26,
			SatisfactionDistribution: []entities.SatisfactionCount{
				{Label: "Bom", Count: 10},
			},
		},
		ResolutionRates: []entities.ResolutionRatePoint{{PeriodLabel: "S1", Rate: 80}},
		CategoryTimes:   []entities.CategoryResolutionTime{},
		Resources: []entities.ResourceReport{
			{Resource: entities.ResourceDashboard, Outcome: entities.OutcomeAccepted},
			{Resource: entities.ResourceResolutionRate, Outcome: entities.OutcomeAccepted},
			{Resource: entities.ResourceCategoryTime, Outcome: entities.OutcomeFailed},
		},
	}
}

func TestBuildDashboardView_Ready(t *testing.T) {
	view := BuildDashboardView(Ready{Snapshot: sampleSnapshot()}, DarkTheme)

	assert.Equal(t, "ready", view.State)
	assert.Equal(t, "load-42", view.LoadID)
	assert.Empty(t, view.Message)

	require.Len(t, view.Tiles, 4)
	assert.Equal(t, "1000", view.Tiles[0].Value)
	assert.Equal(t, "750", view.Tiles[1].Value)
	assert.Equal(t, "75.0% de resolução", view.Tiles[1].Caption)
	assert.Equal(t, "4.3h", view.Tiles[2].Value)
	assert.Equal(t, "4.3/5", view.Tiles[3].Value)

	require.NotNil(t, view.Leaderboard)
	assert.Equal(t, "Ana Souza", view.Leaderboard.Name)
	assert.Equal(t, "120 chamados encerrados", view.Leaderboard.Caption)

	require.Len(t, view.Charts, 4)
	assert.False(t, view.Charts[0].Empty)
	assert.True(t, view.Charts[3].Empty, "category times were not loaded")

	require.Len(t, view.Resources, 3)
	assert.Equal(t, "failed", view.Resources[2].Outcome)

	assert.Equal(t, "dark", view.Theme.Name)
	assert.Equal(t, "light", view.Theme.ToggleName)
	assert.Equal(t, "☀", view.Theme.ToggleGlyph)
}

func TestBuildDashboardView_NoOpenTickets(t *testing.T) {
	snap := sampleSnapshot()
	snap.Summary.OpenCount = 0

	view := BuildDashboardView(Ready{Snapshot: snap}, LightTheme)

	assert.Equal(t, "— de resolução", view.Tiles[1].Caption)
	assert.Equal(t, "☾", view.Theme.ToggleGlyph)
}

func TestBuildDashboardView_HugeValuesStayFinite(t *testing.T) {
	snap := sampleSnapshot()
	snap.Summary.AvgResolutionHours = 1e308
	snap.Summary.AvgSatisfaction = 1.7e308

	view := BuildDashboardView(Ready{Snapshot: snap}, DarkTheme)

	assert.NotContains(t, view.Tiles[2].Value, "Inf")
	assert.Regexp(t, `^[0-9]+\.0h$`, view.Tiles[2].Value)
	assert.NotContains(t, view.Tiles[3].Value, "Inf")
	assert.Regexp(t, `^[0-9]+\.0/5$`, view.Tiles[3].Value)
}

func TestBuildDashboardView_Failed(t *testing.T) {
	view := BuildDashboardView(Failed{Reason: errors.New("status error")}, DarkTheme)

	assert.Equal(t, "failed", view.State)
	assert.Equal(t, FailedMessage, view.Message)
	assert.Equal(t, ErrorTitle, view.ErrorTitle)
	assert.Empty(t, view.Tiles)
	assert.Empty(t, view.Charts)
	assert.Nil(t, view.Leaderboard)
}

func TestBuildDashboardView_TimedOut(t *testing.T) {
	view := BuildDashboardView(TimedOut{After: 10 * time.Second}, DarkTheme)

	assert.Equal(t, "timed_out", view.State)
	assert.Equal(t, TimedOutMessage, view.Message)
	assert.NotEqual(t, FailedMessage, view.Message)
	assert.Empty(t, view.Tiles)
}
