package ports

import (
	"context"

	"github.com/Dhruv-958/TaskMaster-Backend/internal/domain"
)

type TaskService interface {
	CreateTask(ctx context.Context, input CreateTaskInput) (*domain.Task, error)
	GetTaskByID(ctx context.Context, id, ownerID string) (*domain.Task, error)
	GetAllTasks(ctx context.Context) ([]domain.Task, error)
	DeleteTask(ctx context.Context, id, ownerID string) error
}

type CreateTaskInput struct {
	OwnerID     string
	Title       string
	Description string
	TimeTaken   int64
}

// ScoringClient is the outbound boundary to the external scoring model.
// One call per invocation, no caching, no retry; implementations must
// reject any response outside [0,100].
type ScoringClient interface {
	Score(ctx context.Context, title, description string, timeTaken int64) (int, error)
}

type UserService interface {
	GetProfile(ctx context.Context, userID string) (*Profile, error)
	GetProfileByID(ctx context.Context, userID string) (*Profile, error)
	Leaderboard(ctx context.Context) ([]LeaderboardEntry, error)
	UpdateProfile(ctx context.Context, userID string, input UpdateProfileInput) (*domain.User, error)
	ChangePassword(ctx context.Context, userID, currentPassword, newPassword string) error
	DeleteTasks(ctx context.Context, userID string) (int64, error)
	DeleteAccount(ctx context.Context, userID string) error
}

type UpdateProfileInput struct {
	Name  string
	Email string
}

type Profile struct {
	User         *domain.User
	Tasks        []domain.Task
	TotalScore   int64
	MonthlyScore int64
}

type LeaderboardEntry struct {
	UserID     string `json:"id"`
	Name       string `json:"name"`
	Email      string `json:"email"`
	TotalScore int64  `json:"total_score"`
}

type AuthService interface {
	SignUp(ctx context.Context, input SignUpInput) (*domain.User, string, error)
	SignIn(ctx context.Context, email, password string) (*domain.User, string, error)
}

type SignUpInput struct {
	Name     string
	Email    string
	Password string
}
