package services

import (
	"context"
	"errors"
	"sort"
	"sync"
	"testing"
	"time"

	"github.com/Dhruv-958/TaskMaster-Backend/internal/config"
	"github.com/Dhruv-958/TaskMaster-Backend/internal/core/ports"
	"github.com/Dhruv-958/TaskMaster-Backend/internal/domain"
	"github.com/Dhruv-958/TaskMaster-Backend/internal/infrastructure/logger"
	"gorm.io/gorm"
)

func newTestLogger(t *testing.T) *logger.Logger {
	t.Helper()
	log, err := logger.New(config.LoggerConfig{
		Level:            "error",
		Encoding:         "console",
		OutputPaths:      []string{"stderr"},
		ErrorOutputPaths: []string{"stderr"},
	})
	if err != nil {
		t.Fatalf("failed to build test logger: %v", err)
	}
	return log
}

// fakeTaskRepo is an in-memory TaskRepository. With countInsertGap zero,
// CreateWithDailyLimit is atomic under the repo mutex; with a gap set, the
// quota count is released before the insert, like a read-committed
// transaction that does not serialize count-then-insert.
type fakeTaskRepo struct {
	mu             sync.Mutex
	tasks          []domain.Task
	failCreate     bool
	failCount      bool
	countInsertGap time.Duration
}

func (r *fakeTaskRepo) CreateWithDailyLimit(ctx context.Context, task *domain.Task, dayStart, dayEnd time.Time, limit int) error {
	r.mu.Lock()
	if r.failCreate {
		r.mu.Unlock()
		return errors.New("store unavailable")
	}
	var count int
	for _, t := range r.tasks {
		if t.OwnerID == task.OwnerID && !t.CreatedAt.Before(dayStart) && t.CreatedAt.Before(dayEnd) {
			count++
		}
	}
	if r.countInsertGap > 0 {
		r.mu.Unlock()
		time.Sleep(r.countInsertGap)
		r.mu.Lock()
	}
	defer r.mu.Unlock()
	if count >= limit {
		return ports.ErrDailyLimitReached
	}
	r.tasks = append(r.tasks, *task)
	return nil
}

func (r *fakeTaskRepo) GetByID(ctx context.Context, id string) (*domain.Task, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.tasks {
		if r.tasks[i].ID == id {
			task := r.tasks[i]
			return &task, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *fakeTaskRepo) GetByOwner(ctx context.Context, ownerID string) ([]domain.Task, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []domain.Task
	for _, t := range r.tasks {
		if t.OwnerID == ownerID {
			out = append(out, t)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (r *fakeTaskRepo) GetAll(ctx context.Context) ([]domain.Task, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]domain.Task(nil), r.tasks...), nil
}

func (r *fakeTaskRepo) CountByOwnerInRange(ctx context.Context, ownerID string, from, to time.Time) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.failCount {
		return 0, errors.New("store unavailable")
	}
	var count int64
	for _, t := range r.tasks {
		if t.OwnerID == ownerID && !t.CreatedAt.Before(from) && t.CreatedAt.Before(to) {
			count++
		}
	}
	return count, nil
}

func (r *fakeTaskRepo) SumScoresByOwnerInRange(ctx context.Context, from, to time.Time) (map[string]int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	totals := make(map[string]int64)
	for _, t := range r.tasks {
		if !t.CreatedAt.Before(from) && !t.CreatedAt.After(to) {
			totals[t.OwnerID] += int64(t.Score)
		}
	}
	return totals, nil
}

func (r *fakeTaskRepo) Delete(ctx context.Context, id, ownerID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.tasks {
		if r.tasks[i].ID == id && r.tasks[i].OwnerID == ownerID {
			r.tasks = append(r.tasks[:i], r.tasks[i+1:]...)
			return nil
		}
	}
	return gorm.ErrRecordNotFound
}

func (r *fakeTaskRepo) DeleteByOwner(ctx context.Context, ownerID string) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var kept []domain.Task
	var deleted int64
	for _, t := range r.tasks {
		if t.OwnerID == ownerID {
			deleted++
			continue
		}
		kept = append(kept, t)
	}
	r.tasks = kept
	return deleted, nil
}

func (r *fakeTaskRepo) count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.tasks)
}

// fakeUserRepo is an in-memory UserRepository keyed by id. getErr, when
// set, is returned from GetByID in place of a lookup.
type fakeUserRepo struct {
	mu     sync.Mutex
	users  map[string]domain.User
	getErr error
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[string]domain.User)}
}

func (r *fakeUserRepo) Create(ctx context.Context, user *domain.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.users[user.ID] = *user
	return nil
}

func (r *fakeUserRepo) GetByID(ctx context.Context, id string) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.getErr != nil {
		return nil, r.getErr
	}
	user, ok := r.users[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return &user, nil
}

func (r *fakeUserRepo) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.users {
		if u.Email == email {
			user := u
			return &user, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *fakeUserRepo) GetAll(ctx context.Context) ([]domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]domain.User, 0, len(r.users))
	for _, u := range r.users {
		out = append(out, u)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.Before(out[j].CreatedAt) })
	return out, nil
}

func (r *fakeUserRepo) Update(ctx context.Context, user *domain.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.users[user.ID]; !ok {
		return gorm.ErrRecordNotFound
	}
	r.users[user.ID] = *user
	return nil
}

func (r *fakeUserRepo) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.users[id]; !ok {
		return gorm.ErrRecordNotFound
	}
	delete(r.users, id)
	return nil
}

// fakeScorer returns a fixed score or error, optionally sleeping first so
// tests can hold several creations inside the scoring step at once.
type fakeScorer struct {
	mu    sync.Mutex
	score int
	err   error
	delay time.Duration
	calls int
}

func (s *fakeScorer) Score(ctx context.Context, title, description string, timeTaken int64) (int, error) {
	s.mu.Lock()
	s.calls++
	s.mu.Unlock()
	if s.delay > 0 {
		time.Sleep(s.delay)
	}
	if s.err != nil {
		return 0, s.err
	}
	return s.score, nil
}

func (s *fakeScorer) callCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.calls
}
