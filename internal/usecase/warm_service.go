package usecase

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/panjf2000/ants/v2"
	"github.com/sourcegraph/conc"

	"github.com/rmarques/futstats/internal/platform/logging"
)

const (
	warmStatusSuccess = "success"
	warmStatusFailed  = "failed"

	defaultWarmWorkers = 4
	maxWarmWorkers     = 16
)

type WarmInput struct {
	LeagueIDs  []int64
	Season     int
	MaxWorkers int
}

type WarmTaskResult struct {
	LeagueID   int64  `json:"leagueId"`
	Season     int    `json:"season"`
	Status     string `json:"status"`
	Message    string `json:"message,omitempty"`
	DurationMs int64  `json:"durationMs"`
}

type WarmResult struct {
	TaskCount    int              `json:"taskCount"`
	WorkerCount  int              `json:"workerCount"`
	SuccessCount int              `json:"successCount"`
	FailedCount  int              `json:"failedCount"`
	Tasks        []WarmTaskResult `json:"tasks"`
}

// WarmService pre-fills the TTL cache ahead of traffic spikes. One worker
// task per league; inside a task the standings and scorer fetches run
// concurrently, plus a single shared live-fixtures warm.
type WarmService struct {
	fixtures  *FixtureService
	standings *StandingService
	scorers   *ScorerService
	logger    *logging.Logger
}

func NewWarmService(fixtures *FixtureService, standings *StandingService, scorers *ScorerService, logger *logging.Logger) *WarmService {
	if logger == nil {
		logger = logging.Default()
	}
	return &WarmService{
		fixtures:  fixtures,
		standings: standings,
		scorers:   scorers,
		logger:    logger,
	}
}

func (s *WarmService) Warm(ctx context.Context, input WarmInput) (WarmResult, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.WarmService.Warm")
	defer span.End()

	leagueIDs := dedupeLeagueIDs(input.LeagueIDs)
	if len(leagueIDs) == 0 {
		return WarmResult{}, fmt.Errorf("%w: at least one league id is required", ErrInvalidInput)
	}

	if _, err := s.fixtures.Live(ctx, 0); err != nil {
		s.logger.WarnContext(ctx, "live fixtures warm failed", "error", err)
	}

	workerCount := normalizeWarmWorkerCount(input.MaxWorkers, len(leagueIDs))
	result := WarmResult{
		TaskCount:   len(leagueIDs),
		WorkerCount: workerCount,
		Tasks:       make([]WarmTaskResult, 0, len(leagueIDs)),
	}

	pool, err := ants.NewPool(workerCount)
	if err != nil {
		return WarmResult{}, fmt.Errorf("create worker pool: %w", err)
	}
	defer pool.Release()

	results := make(chan WarmTaskResult, len(leagueIDs))
	var successCount atomic.Int32
	var failedCount atomic.Int32

	var workers sync.WaitGroup
	for _, leagueID := range leagueIDs {
		leagueID := leagueID
		workers.Add(1)
		if err := pool.Submit(func() {
			defer workers.Done()

			start := time.Now()
			row := WarmTaskResult{LeagueID: leagueID, Season: input.Season}

			if err := s.warmLeague(ctx, leagueID, input.Season); err != nil {
				row.Status = warmStatusFailed
				row.Message = err.Error()
				failedCount.Add(1)
			} else {
				row.Status = warmStatusSuccess
				successCount.Add(1)
			}
			row.DurationMs = time.Since(start).Milliseconds()

			results <- row
		}); err != nil {
			workers.Done()
			return WarmResult{}, fmt.Errorf("submit task to worker pool: %w", err)
		}
	}

	workers.Wait()
	close(results)

	for row := range results {
		result.Tasks = append(result.Tasks, row)
	}
	sort.SliceStable(result.Tasks, func(i, j int) bool {
		return result.Tasks[i].LeagueID < result.Tasks[j].LeagueID
	})

	result.SuccessCount = int(successCount.Load())
	result.FailedCount = int(failedCount.Load())
	return result, nil
}

// warmLeague runs the per-league fetches concurrently and reports every
// failure, not just the first.
func (s *WarmService) warmLeague(ctx context.Context, leagueID int64, season int) error {
	var mu sync.Mutex
	var problems []string

	record := func(kind string, err error) {
		if err == nil {
			return
		}
		mu.Lock()
		problems = append(problems, fmt.Sprintf("%s: %v", kind, err))
		mu.Unlock()
	}

	var wg conc.WaitGroup
	wg.Go(func() {
		_, err := s.standings.Table(ctx, leagueID, season)
		record("standings", err)
	})
	wg.Go(func() {
		_, err := s.scorers.TopScorers(ctx, leagueID, season)
		record("scorers", err)
	})
	wg.Wait()

	if len(problems) > 0 {
		sort.Strings(problems)
		return fmt.Errorf("%s", strings.Join(problems, "; "))
	}
	return nil
}

func dedupeLeagueIDs(ids []int64) []int64 {
	seen := make(map[int64]struct{}, len(ids))
	out := make([]int64, 0, len(ids))
	for _, id := range ids {
		if id <= 0 {
			continue
		}
		if _, dup := seen[id]; dup {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}

func normalizeWarmWorkerCount(value, taskCount int) int {
	if value <= 0 {
		value = defaultWarmWorkers
	}
	if value > maxWarmWorkers {
		value = maxWarmWorkers
	}
	if taskCount > 0 && value > taskCount {
		value = taskCount
	}
	return value
}
