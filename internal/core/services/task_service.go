package services

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/Dhruv-958/TaskMaster-Backend/internal/core/period"
	"github.com/Dhruv-958/TaskMaster-Backend/internal/core/ports"
	"github.com/Dhruv-958/TaskMaster-Backend/internal/domain"
	"github.com/Dhruv-958/TaskMaster-Backend/internal/infrastructure/logger"
	"github.com/google/uuid"
)

// DefaultDailyTaskLimit caps how many tasks an owner may create per
// calendar day when no limit is configured.
const DefaultDailyTaskLimit = 3

type taskService struct {
	repo       ports.TaskRepository
	scorer     ports.ScoringClient
	logger     *logger.Logger
	now        func() time.Time
	dailyLimit int
	mu         sync.Mutex
	locks      map[string]*sync.Mutex
}

type TaskServiceConfig struct {
	Repository ports.TaskRepository
	Scorer     ports.ScoringClient
	Logger     *logger.Logger
	Now        func() time.Time
	DailyLimit int
}

func NewTaskService(cfg TaskServiceConfig) ports.TaskService {
	now := cfg.Now
	if now == nil {
		now = time.Now
	}
	limit := cfg.DailyLimit
	if limit <= 0 {
		limit = DefaultDailyTaskLimit
	}
	return &taskService{
		repo:       cfg.Repository,
		scorer:     cfg.Scorer,
		logger:     cfg.Logger,
		now:        now,
		dailyLimit: limit,
		locks:      make(map[string]*sync.Mutex),
	}
}

// lockKeys serializes writers per key. The quota check and insert for a
// given (owner, day) must never interleave, whatever isolation level the
// store runs at.
func (s *taskService) lockKeys(keys ...string) func() {
	if len(keys) == 0 {
		return func() {}
	}
	sort.Strings(keys)
	s.mu.Lock()
	acquired := make([]*sync.Mutex, 0, len(keys))
	for _, k := range keys {
		m := s.locks[k]
		if m == nil {
			m = &sync.Mutex{}
			s.locks[k] = m
		}
		acquired = append(acquired, m)
	}
	s.mu.Unlock()
	for _, m := range acquired {
		m.Lock()
	}
	return func() {
		for i := len(acquired) - 1; i >= 0; i-- {
			acquired[i].Unlock()
		}
	}
}

// CreateTask runs the quota check, the scoring call and the persist in
// strict order; each step is a hard gate and nothing is written unless all
// three pass. The creation instant is captured once, before any blocking
// call, so the quota window and the persisted timestamp cannot disagree
// when a request straddles midnight.
func (s *taskService) CreateTask(ctx context.Context, input ports.CreateTaskInput) (*domain.Task, error) {
	if err := validateTaskInput(input); err != nil {
		return nil, err
	}

	now := s.now()
	dayStart := period.StartOfDay(now)
	dayEnd := period.EndOfDayExclusive(now)

	count, err := s.repo.CountByOwnerInRange(ctx, input.OwnerID, dayStart, dayEnd)
	if err != nil {
		s.logger.Errorw("task_quota_count_failed", "owner_id", input.OwnerID, "error", err)
		return nil, fmt.Errorf("%w: %v", ErrTaskPersistenceFailed, err)
	}
	if count >= int64(s.dailyLimit) {
		s.logger.Warnw("task_quota_exceeded", "owner_id", input.OwnerID, "count", count)
		return nil, ErrTaskQuotaExceeded
	}

	// No lock is held across the scoring call; the insert below re-checks
	// the quota under the per-owner-day lock.
	score, err := s.scorer.Score(ctx, input.Title, input.Description, input.TimeTaken)
	if err != nil {
		s.logger.Errorw("task_scoring_failed", "owner_id", input.OwnerID, "error", err)
		return nil, fmt.Errorf("%w: %v", ErrTaskScoringUnavailable, err)
	}

	task := &domain.Task{
		ID:          uuid.New().String(),
		Title:       input.Title,
		Description: input.Description,
		TimeTaken:   input.TimeTaken,
		Score:       score,
		OwnerID:     input.OwnerID,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	unlock := s.lockKeys(fmt.Sprintf("quota:%s:%s", input.OwnerID, dayStart.Format("2006-01-02")))
	defer unlock()

	if err := s.repo.CreateWithDailyLimit(ctx, task, dayStart, dayEnd, s.dailyLimit); err != nil {
		if errors.Is(err, ports.ErrDailyLimitReached) {
			s.logger.Warnw("task_quota_exceeded_on_insert", "owner_id", input.OwnerID)
			return nil, ErrTaskQuotaExceeded
		}
		s.logger.Errorw("task_persist_failed", "owner_id", input.OwnerID, "error", err)
		return nil, fmt.Errorf("%w: %v", ErrTaskPersistenceFailed, err)
	}

	s.logger.Infow("task_created", "id", task.ID, "owner_id", task.OwnerID, "score", task.Score)
	return task, nil
}

func (s *taskService) GetTaskByID(ctx context.Context, id, ownerID string) (*domain.Task, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, ErrTaskInvalidID
	}
	task, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, ErrTaskNotFound
	}
	if task.OwnerID != ownerID {
		// Tasks are only addressable by their owner.
		return nil, ErrTaskNotFound
	}
	return task, nil
}

func (s *taskService) GetAllTasks(ctx context.Context) ([]domain.Task, error) {
	return s.repo.GetAll(ctx)
}

func (s *taskService) DeleteTask(ctx context.Context, id, ownerID string) error {
	if _, err := uuid.Parse(id); err != nil {
		return ErrTaskInvalidID
	}
	if err := s.repo.Delete(ctx, id, ownerID); err != nil {
		return ErrTaskNotFound
	}
	return nil
}

func validateTaskInput(input ports.CreateTaskInput) error {
	if input.Title == "" || input.Description == "" {
		return ErrTaskInvalidInput
	}
	if input.TimeTaken < 0 {
		return ErrTaskInvalidInput
	}
	return nil
}
