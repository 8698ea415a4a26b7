package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/tidwall/gjson"
	"go.uber.org/zap"

	"techhelp-dashboard/internal/entities"
	"techhelp-dashboard/internal/events"
	"techhelp-dashboard/internal/repositories"
	apperrors "techhelp-dashboard/pkg/errors"
	"techhelp-dashboard/pkg/eventbus"
	"techhelp-dashboard/pkg/utils"
	"techhelp-dashboard/pkg/validation"
)

// LatestPeriods is how many resolution-rate periods the dashboard keeps.
const LatestPeriods = 12

type DashboardServiceInterface interface {
	Load(ctx context.Context) ViewState
}

type DashboardService struct {
	repo     repositories.ResourceRepositoryInterface
	bus      *eventbus.Bus
	timeout  time.Duration
	validate *validator.Validate
	logger   *zap.Logger
	now      func() time.Time
}

// NewDashboardService builds the loader. bus may be nil.
func NewDashboardService(repo repositories.ResourceRepositoryInterface, bus *eventbus.Bus, timeout time.Duration, logger *zap.Logger) *DashboardService {
	return &DashboardService{
		repo:     repo,
		bus:      bus,
		timeout:  timeout,
		validate: validation.NewEngine(),
		logger:   logger,
		now:      time.Now,
	}
}

// Load fetches the three documents concurrently and returns the terminal
// view state. Every fetch settles on its own; only the summary document
// decides between Ready, Failed and TimedOut.
func (s *DashboardService) Load(ctx context.Context) ViewState {
	started := s.now()
	loadID := uuid.NewString()
	logger := s.logger.With(zap.String("load_id", loadID))

	loadCtx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	var (
		wg      sync.WaitGroup
		summary entities.DashboardSummary
		rates   []entities.ResolutionRatePoint
		times   []entities.CategoryResolutionTime
		reports = make([]entities.ResourceReport, len(entities.AllResources))
	)

	addTask := func(idx int, name entities.ResourceName, accept func(body []byte) (int, error)) {
		wg.Add(1)
		go func() {
			defer wg.Done()
			reports[idx] = s.settle(loadCtx, name, accept, logger)
		}()
	}

	addTask(0, entities.ResourceDashboard, func(body []byte) (warnings int, err error) {
		summary, warnings, err = s.acceptSummary(body)
		return
	})
	addTask(1, entities.ResourceResolutionRate, func(body []byte) (warnings int, err error) {
		rates, warnings, err = s.acceptResolutionRates(body)
		return
	})
	addTask(2, entities.ResourceCategoryTime, func(body []byte) (warnings int, err error) {
		times, warnings, err = s.acceptCategoryTimes(body)
		return
	})

	wg.Wait()

	for _, r := range reports {
		s.publish(ctx, events.ResourceSettledEvent{
			LoadID:   loadID,
			Resource: r.Resource,
			Outcome:  r.Outcome,
			Warnings: r.Warnings,
		})
	}

	var state ViewState
	primary := reports[0]
	switch {
	case primary.Accepted():
		if !reports[1].Accepted() {
			rates = []entities.ResolutionRatePoint{}
		}
		if !reports[2].Accepted() {
			times = []entities.CategoryResolutionTime{}
		}
		state = Ready{Snapshot: entities.Snapshot{
			LoadID:          loadID,
			LoadedAt:        s.now(),
			Summary:         summary,
			ResolutionRates: rates,
			CategoryTimes:   times,
			Resources:       reports,
		}}
	case primary.Outcome == entities.OutcomeTimedOut:
		state = TimedOut{After: s.timeout}
	default:
		state = Failed{Reason: fmt.Errorf("%w: %w", apperrors.ErrDashboardUnavailable, primary.Err)}
	}

	duration := s.now().Sub(started)
	logger.Info("dashboard load finished",
		zap.String("state", string(state.Phase())),
		zap.Duration("duration", duration),
	)
	s.publish(ctx, events.DashboardLoadedEvent{
		LoadID:   loadID,
		State:    string(state.Phase()),
		Duration: duration,
	})

	return state
}

// settle fetches one document and runs accept on it. It never panics.
func (s *DashboardService) settle(ctx context.Context, name entities.ResourceName, accept func([]byte) (int, error), logger *zap.Logger) (report entities.ResourceReport) {
	report.Resource = name
	logger = logger.With(zap.String("resource", string(name)))

	defer func() {
		if r := recover(); r != nil {
			logger.Error("resource handling panicked", zap.Any("panic", r))
			report.Outcome = entities.OutcomeFailed
			report.Err = fmt.Errorf("%w: panic: %v", apperrors.ErrResourceUnavailable, r)
		}
	}()

	body, err := s.repo.Fetch(ctx, name)
	if err != nil {
		report.Err = err
		if errors.Is(err, context.DeadlineExceeded) || errors.Is(ctx.Err(), context.DeadlineExceeded) {
			report.Outcome = entities.OutcomeTimedOut
			report.Err = fmt.Errorf("%w: %w", apperrors.ErrLoadTimedOut, err)
			logger.Warn("resource fetch timed out", zap.Error(err))
			return report
		}
		report.Outcome = entities.OutcomeFailed
		logger.Warn("resource fetch failed", zap.Error(err))
		return report
	}

	warnings, err := accept(body)
	if err != nil {
		report.Outcome = entities.OutcomeRejected
		report.Err = err
		logger.Warn("resource rejected", zap.Error(err))
		return report
	}

	report.Outcome = entities.OutcomeAccepted
	report.Warnings = warnings
	if warnings > 0 {
		logger.Warn("resource accepted with out-of-range values", zap.Int("warnings", warnings))
	}
	return report
}

func (s *DashboardService) acceptSummary(body []byte) (entities.DashboardSummary, int, error) {
	var summary entities.DashboardSummary
	if !gjson.ValidBytes(body) {
		return summary, 0, apperrors.ErrMalformedResource
	}

	status := gjson.GetBytes(body, "status")
	if status.Type != gjson.String || status.Str != "success" {
		return summary, 0, fmt.Errorf("%w: status is %s", apperrors.ErrResourceRejected, status.Raw)
	}

	data := gjson.GetBytes(body, "data")
	if !data.IsObject() {
		return summary, 0, fmt.Errorf("%w: data is not an object", apperrors.ErrResourceRejected)
	}
	if err := json.Unmarshal([]byte(data.Raw), &summary); err != nil {
		return summary, 0, fmt.Errorf("%w: %w", apperrors.ErrResourceRejected, err)
	}
	if summary.RecurringCategories == nil {
		summary.RecurringCategories = []entities.CategoryCount{}
	}
	if summary.SatisfactionDistribution == nil {
		summary.SatisfactionDistribution = []entities.SatisfactionCount{}
	}

	summary.TopTechnician.Name = utils.PlainText(summary.TopTechnician.Name)
	for i := range summary.RecurringCategories {
		summary.RecurringCategories[i].Category = utils.PlainText(summary.RecurringCategories[i].Category)
	}
	for i := range summary.SatisfactionDistribution {
		summary.SatisfactionDistribution[i].Label = utils.PlainText(summary.SatisfactionDistribution[i].Label)
	}

	return summary, s.countWarnings(summary), nil
}

func (s *DashboardService) acceptResolutionRates(body []byte) ([]entities.ResolutionRatePoint, int, error) {
	raw, err := arrayBody(body)
	if err != nil {
		return nil, 0, err
	}

	points := []entities.ResolutionRatePoint{}
	if err := json.Unmarshal(raw, &points); err != nil {
		return nil, 0, fmt.Errorf("%w: %w", apperrors.ErrResourceRejected, err)
	}

	points = TailWindow(points, LatestPeriods)
	warnings := 0
	for i := range points {
		points[i].PeriodLabel = utils.PlainText(points[i].PeriodLabel)
		warnings += s.countWarnings(points[i])
	}
	return points, warnings, nil
}

func (s *DashboardService) acceptCategoryTimes(body []byte) ([]entities.CategoryResolutionTime, int, error) {
	raw, err := arrayBody(body)
	if err != nil {
		return nil, 0, err
	}

	times := []entities.CategoryResolutionTime{}
	if err := json.Unmarshal(raw, &times); err != nil {
		return nil, 0, fmt.Errorf("%w: %w", apperrors.ErrResourceRejected, err)
	}

	warnings := 0
	for i := range times {
		times[i].Category = utils.PlainText(times[i].Category)
		warnings += s.countWarnings(times[i])
	}
	return times, warnings, nil
}

// countWarnings reports how many fields of v are out of range. Range
// violations are logged, the value is still shown.
func (s *DashboardService) countWarnings(v interface{}) int {
	err := s.validate.Struct(v)
	if err == nil {
		return 0
	}
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		return len(verrs)
	}
	return 1
}

func (s *DashboardService) publish(ctx context.Context, event eventbus.Event) {
	if s.bus == nil {
		return
	}
	s.bus.Publish(ctx, event)
}

func arrayBody(body []byte) ([]byte, error) {
	if !gjson.ValidBytes(body) {
		return nil, apperrors.ErrMalformedResource
	}
	parsed := gjson.ParseBytes(body)
	if !parsed.IsArray() {
		return nil, fmt.Errorf("%w: expected a JSON array", apperrors.ErrResourceRejected)
	}
	return []byte(parsed.Raw), nil
}

// TailWindow returns a copy of the last n elements of items, order kept.
func TailWindow[T any](items []T, n int) []T {
	if n < 0 {
		n = 0
	}
	start := 0
	if len(items) > n {
		start = len(items) - n
	}
	out := make([]T, len(items)-start)
	copy(out, items[start:])
	return out
}
