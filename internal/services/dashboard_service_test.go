package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"techhelp-dashboard/internal/entities"
	"techhelp-dashboard/internal/events"
	apperrors "techhelp-dashboard/pkg/errors"
	"techhelp-dashboard/pkg/eventbus"
)

const summaryOK = `{
  "status": "success",
  "data": {
    "total_abertos": 1000,
    "total_encerrados": 750,
    "tempo_medio_resolucao_horas": 4.26,
    "tecnico_mais_produtivo": {"Tecnico": "Ana <b>Souza</b>", "Chamados_Encerrados": 120},
    "categorias_recorrentes": [
      {"Categoria": "Rede", "Contagem": 40},
      {"Categoria": "Impressoras", "Contagem": 25}
    ],
    "satisfacao_media": 4.26,
    "satisfacao_distribuicao": [
      {"Satisfacao": "Excelente", "Contagem": 60},
      {"Satisfacao": "Ruim", "Contagem": 4}
    ]
  }
}`

const categoryTimesOK = `[
  {"Categoria": "Rede", "Tempo_Medio": 3.5, "Total_Resolvidos": 40},
  {"Categoria": "Hardware", "Tempo_Medio": 11.2, "Total_Resolvidos": 9}
]`

// fakeRepo serves canned bodies. Names in block wait for the context to end.
type fakeRepo struct {
	bodies map[entities.ResourceName]string
	errs   map[entities.ResourceName]error
	block  map[entities.ResourceName]bool
	panics map[entities.ResourceName]bool
}

func (r *fakeRepo) Fetch(ctx context.Context, name entities.ResourceName) ([]byte, error) {
	if r.panics[name] {
		panic("boom")
	}
	if r.block[name] {
		<-ctx.Done()
		return nil, ctx.Err()
	}
	if err, ok := r.errs[name]; ok {
		return nil, err
	}
	body, ok := r.bodies[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s not found", apperrors.ErrResourceUnavailable, name)
	}
	return []byte(body), nil
}

func ratesJSON(n int) string {
	parts := make([]string, 0, n)
	for i := 1; i <= n; i++ {
		parts = append(parts, fmt.Sprintf(`{"Semana": "P%02d", "Taxa": %d}`, i, 60+i))
	}
	return "[" + strings.Join(parts, ",") + "]"
}

func healthyRepo() *fakeRepo {
	return &fakeRepo{bodies: map[entities.ResourceName]string{
		entities.ResourceDashboard:      summaryOK,
		entities.ResourceResolutionRate: ratesJSON(15),
		entities.ResourceCategoryTime:   categoryTimesOK,
	}}
}

func newTestService(repo *fakeRepo, timeout time.Duration) *DashboardService {
	return NewDashboardService(repo, nil, timeout, zap.NewNop())
}

func requireReady(t *testing.T, state ViewState) entities.Snapshot {
	t.Helper()
	ready, ok := state.(Ready)
	require.True(t, ok, "expected Ready, got %s", state.Phase())
	return ready.Snapshot
}

func TestDashboardService_Load_Ready(t *testing.T) {
	svc := newTestService(healthyRepo(), time.Second)

	snap := requireReady(t, svc.Load(context.Background()))

	assert.NotEmpty(t, snap.LoadID)
	assert.Equal(t, int64(1000), snap.Summary.OpenCount)
	assert.Equal(t, int64(750), snap.Summary.ClosedCount)
	assert.Equal(t, "Ana Souza", snap.Summary.TopTechnician.Name, "markup is stripped from labels")
	assert.Len(t, snap.Summary.RecurringCategories, 2)
	assert.Len(t, snap.CategoryTimes, 2)

	require.Len(t, snap.Resources, 3)
	for _, r := range snap.Resources {
		assert.Equal(t, entities.OutcomeAccepted, r.Outcome, string(r.Resource))
	}
}

func TestDashboardService_Load_KeepsLatestTwelvePeriods(t *testing.T) {
	svc := newTestService(healthyRepo(), time.Second)

	snap := requireReady(t, svc.Load(context.Background()))

	require.Len(t, snap.ResolutionRates, LatestPeriods)
	assert.Equal(t, "P04", snap.ResolutionRates[0].PeriodLabel)
	assert.Equal(t, "P15", snap.ResolutionRates[11].PeriodLabel)
	for i, p := range snap.ResolutionRates {
		assert.Equal(t, fmt.Sprintf("P%02d", i+4), p.PeriodLabel)
	}
}

func TestDashboardService_Load_ShortSeriesUnchanged(t *testing.T) {
	for _, n := range []int{0, 1, 12} {
		t.Run(fmt.Sprintf("%d points", n), func(t *testing.T) {
			repo := healthyRepo()
			repo.bodies[entities.ResourceResolutionRate] = ratesJSON(n)

			snap := requireReady(t, newTestService(repo, time.Second).Load(context.Background()))

			require.Len(t, snap.ResolutionRates, n)
			if n > 0 {
				assert.Equal(t, "P01", snap.ResolutionRates[0].PeriodLabel)
			}
		})
	}
}

func TestDashboardService_Load_SummaryRejected(t *testing.T) {
	tests := map[string]string{
		"status error":       `{"status": "error", "data": {"total_abertos": 1}}`,
		"status missing":     `{"data": {"total_abertos": 1}}`,
		"status not string":  `{"status": true, "data": {}}`,
		"data not an object": `{"status": "success", "data": [1, 2]}`,
		"wrong field type":   `{"status": "success", "data": {"total_abertos": "many"}}`,
		"not json":           `<html>502 Bad Gateway</html>`,
		"empty body":         ``,
	}
	for name, body := range tests {
		t.Run(name, func(t *testing.T) {
			repo := healthyRepo()
			repo.bodies[entities.ResourceDashboard] = body

			state := newTestService(repo, time.Second).Load(context.Background())

			failed, ok := state.(Failed)
			require.True(t, ok, "expected Failed, got %s", state.Phase())
			assert.ErrorIs(t, failed.Reason, apperrors.ErrDashboardUnavailable)
		})
	}
}

func TestDashboardService_Load_SummaryUnavailable(t *testing.T) {
	repo := healthyRepo()
	repo.errs = map[entities.ResourceName]error{
		entities.ResourceDashboard: fmt.Errorf("%w: GET returned 500", apperrors.ErrResourceUnavailable),
	}

	state := newTestService(repo, time.Second).Load(context.Background())

	failed, ok := state.(Failed)
	require.True(t, ok)
	assert.ErrorIs(t, failed.Reason, apperrors.ErrResourceUnavailable)
}

func TestDashboardService_Load_SecondaryFailureStillReady(t *testing.T) {
	repo := healthyRepo()
	repo.bodies[entities.ResourceResolutionRate] = `{"oops": true}`
	delete(repo.bodies, entities.ResourceCategoryTime)

	snap := requireReady(t, newTestService(repo, time.Second).Load(context.Background()))

	assert.NotNil(t, snap.ResolutionRates)
	assert.Empty(t, snap.ResolutionRates)
	assert.NotNil(t, snap.CategoryTimes)
	assert.Empty(t, snap.CategoryTimes)
	assert.Equal(t, entities.OutcomeRejected, snap.Resources[1].Outcome)
	assert.ErrorIs(t, snap.Resources[1].Err, apperrors.ErrResourceRejected)
	assert.Equal(t, entities.OutcomeFailed, snap.Resources[2].Outcome)

	view := BuildDashboardView(Ready{Snapshot: snap}, DarkTheme)
	require.Len(t, view.Charts, 4)
	assert.True(t, view.Charts[2].Empty)
	assert.Equal(t, NoDataNotice, view.Charts[2].Notice)
}

func TestDashboardService_Load_MalformedRateSeries(t *testing.T) {
	repo := healthyRepo()
	repo.bodies[entities.ResourceResolutionRate] = `[{"Semana": "P01", "Taxa": "high"}]`

	snap := requireReady(t, newTestService(repo, time.Second).Load(context.Background()))

	assert.Empty(t, snap.ResolutionRates)
	assert.Equal(t, entities.OutcomeRejected, snap.Resources[1].Outcome)
}

func TestDashboardService_Load_TimedOut(t *testing.T) {
	repo := healthyRepo()
	repo.block = map[entities.ResourceName]bool{entities.ResourceDashboard: true}

	state := newTestService(repo, 30*time.Millisecond).Load(context.Background())

	timedOut, ok := state.(TimedOut)
	require.True(t, ok, "expected TimedOut, got %s", state.Phase())
	assert.Equal(t, 30*time.Millisecond, timedOut.After)
}

func TestDashboardService_Load_SecondaryTimeoutStillReady(t *testing.T) {
	repo := healthyRepo()
	repo.block = map[entities.ResourceName]bool{entities.ResourceCategoryTime: true}

	snap := requireReady(t, newTestService(repo, 30*time.Millisecond).Load(context.Background()))

	assert.Equal(t, entities.OutcomeTimedOut, snap.Resources[2].Outcome)
	assert.ErrorIs(t, snap.Resources[2].Err, apperrors.ErrLoadTimedOut)
}

func TestDashboardService_Load_RecoversFromPanic(t *testing.T) {
	repo := healthyRepo()
	repo.panics = map[entities.ResourceName]bool{entities.ResourceDashboard: true}

	state := newTestService(repo, time.Second).Load(context.Background())

	assert.Equal(t, PhaseFailed, state.Phase())
}

func TestDashboardService_Load_OutOfRangeValuesAreWarnings(t *testing.T) {
	repo := healthyRepo()
	repo.bodies[entities.ResourceDashboard] = strings.Replace(summaryOK, `"satisfacao_media": 4.26`, `"satisfacao_media": 7.5`, 1)
	repo.bodies[entities.ResourceResolutionRate] = `[{"Semana": "P01", "Taxa": 140}, {"Semana": "P02", "Taxa": 90}]`

	snap := requireReady(t, newTestService(repo, time.Second).Load(context.Background()))

	assert.Equal(t, 7.5, snap.Summary.AvgSatisfaction, "values are shown as received")
	assert.Equal(t, 1, snap.Resources[0].Warnings)
	assert.Equal(t, 1, snap.Resources[1].Warnings)
	assert.Len(t, snap.ResolutionRates, 2)
}

func TestDashboardService_Load_PublishesEvents(t *testing.T) {
	bus := eventbus.New(zap.NewNop())

	var (
		mu      sync.Mutex
		settled []events.ResourceSettledEvent
		loaded  []events.DashboardLoadedEvent
	)
	bus.Subscribe(events.ResourceSettledEventName, func(_ context.Context, e eventbus.Event) error {
		mu.Lock()
		defer mu.Unlock()
		settled = append(settled, e.(events.ResourceSettledEvent))
		return nil
	})
	bus.Subscribe(events.DashboardLoadedEventName, func(_ context.Context, e eventbus.Event) error {
		mu.Lock()
		defer mu.Unlock()
		loaded = append(loaded, e.(events.DashboardLoadedEvent))
		return nil
	})

	svc := NewDashboardService(healthyRepo(), bus, time.Second, zap.NewNop())
	snap := requireReady(t, svc.Load(context.Background()))
	bus.Drain()

	mu.Lock()
	defer mu.Unlock()
	assert.Len(t, settled, 3)
	require.Len(t, loaded, 1)
	assert.Equal(t, string(PhaseReady), loaded[0].State)
	assert.Equal(t, snap.LoadID, loaded[0].LoadID)
	for _, e := range settled {
		assert.Equal(t, snap.LoadID, e.LoadID)
	}
}

func TestDashboardService_Load_ParentCancelled(t *testing.T) {
	repo := healthyRepo()
	repo.block = map[entities.ResourceName]bool{entities.ResourceDashboard: true}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	state := newTestService(repo, time.Second).Load(ctx)

	failed, ok := state.(Failed)
	require.True(t, ok, "a cancelled request is not a timeout, got %s", state.Phase())
	assert.True(t, errors.Is(failed.Reason, context.Canceled))
}

func TestTailWindow(t *testing.T) {
	items := []int{1, 2, 3, 4, 5}

	assert.Equal(t, []int{3, 4, 5}, TailWindow(items, 3))
	assert.Equal(t, items, TailWindow(items, 5))
	assert.Equal(t, items, TailWindow(items, 12))
	assert.Empty(t, TailWindow(items, 0))
	assert.Empty(t, TailWindow([]int{}, 3))

	out := TailWindow(items, 2)
	out[0] = 99
	assert.Equal(t, 4, items[3], "the window is a copy")
}
