package services

import (
	"context"
	"errors"
	"sort"
	"time"

	"github.com/Dhruv-958/TaskMaster-Backend/internal/core/period"
	"github.com/Dhruv-958/TaskMaster-Backend/internal/core/ports"
	"github.com/Dhruv-958/TaskMaster-Backend/internal/domain"
	"github.com/Dhruv-958/TaskMaster-Backend/internal/infrastructure/logger"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type userService struct {
	userRepo ports.UserRepository
	taskRepo ports.TaskRepository
	logger   *logger.Logger
	now      func() time.Time
}

type UserServiceConfig struct {
	UserRepo ports.UserRepository
	TaskRepo ports.TaskRepository
	Logger   *logger.Logger
	Now      func() time.Time
}

func NewUserService(cfg UserServiceConfig) ports.UserService {
	now := cfg.Now
	if now == nil {
		now = time.Now
	}
	return &userService{
		userRepo: cfg.UserRepo,
		taskRepo: cfg.TaskRepo,
		logger:   cfg.Logger,
		now:      now,
	}
}

// fetchUser maps only a missing row to ErrUserNotFound; any other store
// error is passed through so callers can report it as a server failure.
func (s *userService) fetchUser(ctx context.Context, userID string) (*domain.User, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		s.logger.Errorw("user_fetch_failed", "user_id", userID, "error", err)
		return nil, err
	}
	return user, nil
}

// GetProfile returns the user's tasks newest first together with the
// lifetime score total and the current-calendar-month total.
func (s *userService) GetProfile(ctx context.Context, userID string) (*ports.Profile, error) {
	user, err := s.fetchUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	tasks, err := s.taskRepo.GetByOwner(ctx, userID)
	if err != nil {
		s.logger.Errorw("profile_tasks_fetch_failed", "user_id", userID, "error", err)
		return nil, err
	}

	now := s.now()
	monthStart := period.StartOfMonth(now)
	monthEnd := period.EndOfMonthInclusive(now)

	var total, monthly int64
	for _, t := range tasks {
		total += int64(t.Score)
		if !t.CreatedAt.Before(monthStart) && !t.CreatedAt.After(monthEnd) {
			monthly += int64(t.Score)
		}
	}

	return &ports.Profile{
		User:         user,
		Tasks:        tasks,
		TotalScore:   total,
		MonthlyScore: monthly,
	}, nil
}

// GetProfileByID is the admin/public variant that accepts an arbitrary id
// from the caller, so the id is validated before touching the store.
func (s *userService) GetProfileByID(ctx context.Context, userID string) (*ports.Profile, error) {
	if _, err := uuid.Parse(userID); err != nil {
		return nil, ErrUserInvalidID
	}
	return s.GetProfile(ctx, userID)
}

// Leaderboard ranks every user by current-month score, zero-task users
// included at zero. Ties break deterministically on ascending user id.
func (s *userService) Leaderboard(ctx context.Context) ([]ports.LeaderboardEntry, error) {
	users, err := s.userRepo.GetAll(ctx)
	if err != nil {
		s.logger.Errorw("leaderboard_users_fetch_failed", "error", err)
		return nil, err
	}

	now := s.now()
	totals, err := s.taskRepo.SumScoresByOwnerInRange(ctx, period.StartOfMonth(now), period.EndOfMonthInclusive(now))
	if err != nil {
		s.logger.Errorw("leaderboard_totals_failed", "error", err)
		return nil, err
	}

	entries := make([]ports.LeaderboardEntry, 0, len(users))
	for _, u := range users {
		entries = append(entries, ports.LeaderboardEntry{
			UserID:     u.ID,
			Name:       u.Name,
			Email:      u.Email,
			TotalScore: totals[u.ID],
		})
	}

	sort.Slice(entries, func(i, j int) bool {
		if entries[i].TotalScore != entries[j].TotalScore {
			return entries[i].TotalScore > entries[j].TotalScore
		}
		return entries[i].UserID < entries[j].UserID
	})

	return entries, nil
}

func (s *userService) UpdateProfile(ctx context.Context, userID string, input ports.UpdateProfileInput) (*domain.User, error) {
	if input.Name == "" || input.Email == "" {
		return nil, ErrUserInvalidInput
	}

	user, err := s.fetchUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	user.Name = input.Name
	user.Email = input.Email
	if err := s.userRepo.Update(ctx, user); err != nil {
		s.logger.Errorw("profile_update_failed", "user_id", userID, "error", err)
		return nil, err
	}

	s.logger.Infow("profile_updated", "user_id", userID)
	return user, nil
}

func (s *userService) ChangePassword(ctx context.Context, userID, currentPassword, newPassword string) error {
	if currentPassword == "" || newPassword == "" {
		return ErrUserInvalidInput
	}

	user, err := s.fetchUser(ctx, userID)
	if err != nil {
		return err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(currentPassword)); err != nil {
		return ErrAuthInvalidCredentials
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	user.PasswordHash = string(hash)
	if err := s.userRepo.Update(ctx, user); err != nil {
		s.logger.Errorw("password_update_failed", "user_id", userID, "error", err)
		return err
	}

	s.logger.Infow("password_updated", "user_id", userID)
	return nil
}

// DeleteTasks removes every task the user owns and reports how many were
// deleted. The profile itself is untouched.
func (s *userService) DeleteTasks(ctx context.Context, userID string) (int64, error) {
	deleted, err := s.taskRepo.DeleteByOwner(ctx, userID)
	if err != nil {
		s.logger.Errorw("user_tasks_delete_failed", "user_id", userID, "error", err)
		return 0, err
	}
	if deleted == 0 {
		return 0, ErrUserNoTasks
	}
	s.logger.Infow("user_tasks_deleted", "user_id", userID, "count", deleted)
	return deleted, nil
}

// DeleteAccount removes the user's tasks and then the profile.
func (s *userService) DeleteAccount(ctx context.Context, userID string) error {
	if _, err := s.fetchUser(ctx, userID); err != nil {
		return err
	}

	if _, err := s.taskRepo.DeleteByOwner(ctx, userID); err != nil {
		s.logger.Errorw("account_tasks_delete_failed", "user_id", userID, "error", err)
		return err
	}

	if err := s.userRepo.Delete(ctx, userID); err != nil {
		s.logger.Errorw("account_delete_failed", "user_id", userID, "error", err)
		return err
	}

	s.logger.Infow("account_deleted", "user_id", userID)
	return nil
}
