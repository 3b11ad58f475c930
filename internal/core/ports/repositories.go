package ports

import (
	"context"
	"errors"
	"time"

	"github.com/Dhruv-958/TaskMaster-Backend/internal/domain"
)

// ErrDailyLimitReached is returned by CreateWithDailyLimit when the insert
// would push the owner past the per-day limit.
var ErrDailyLimitReached = errors.New("task repository: daily limit reached")

type TaskRepository interface {
	// CreateWithDailyLimit inserts the task only if the owner has fewer
	// than limit tasks with CreatedAt in [dayStart, dayEnd). The count and
	// the insert run in a single transaction; domain-level serialization
	// per (owner, day) is the caller's responsibility.
	CreateWithDailyLimit(ctx context.Context, task *domain.Task, dayStart, dayEnd time.Time, limit int) error
	GetByID(ctx context.Context, id string) (*domain.Task, error)
	GetByOwner(ctx context.Context, ownerID string) ([]domain.Task, error)
	GetAll(ctx context.Context) ([]domain.Task, error)
	CountByOwnerInRange(ctx context.Context, ownerID string, from, to time.Time) (int64, error)
	// SumScoresByOwnerInRange returns per-owner score totals for tasks with
	// CreatedAt in [from, to], one map entry per owner that has tasks there.
	SumScoresByOwnerInRange(ctx context.Context, from, to time.Time) (map[string]int64, error)
	Delete(ctx context.Context, id, ownerID string) error
	DeleteByOwner(ctx context.Context, ownerID string) (int64, error)
}

type UserRepository interface {
	Create(ctx context.Context, user *domain.User) error
	GetByID(ctx context.Context, id string) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	GetAll(ctx context.Context) ([]domain.User, error)
	Update(ctx context.Context, user *domain.User) error
	Delete(ctx context.Context, id string) error
}
