package dto

import (
	"time"

	"github.com/Dhruv-958/TaskMaster-Backend/internal/core/ports"
	"github.com/Dhruv-958/TaskMaster-Backend/internal/domain"
)

type UserResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
}

func UserToResponse(user *domain.User) UserResponse {
	return UserResponse{
		ID:        user.ID,
		Name:      user.Name,
		Email:     user.Email,
		CreatedAt: user.CreatedAt,
	}
}

type ProfileResponse struct {
	User         UserResponse   `json:"user"`
	Tasks        []TaskResponse `json:"tasks"`
	TotalScore   int64          `json:"total_score"`
	MonthlyScore int64          `json:"monthly_score"`
}

func ProfileToResponse(profile *ports.Profile) ProfileResponse {
	return ProfileResponse{
		User:         UserToResponse(profile.User),
		Tasks:        TasksToResponse(profile.Tasks),
		TotalScore:   profile.TotalScore,
		MonthlyScore: profile.MonthlyScore,
	}
}

type UpdateProfileRequest struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

func (r *UpdateProfileRequest) Validate() []string {
	var errors []string

	if r.Name == "" {
		errors = append(errors, "name is required")
	}

	if r.Email == "" {
		errors = append(errors, "email is required")
	}

	return errors
}

type ChangePasswordRequest struct {
	CurrentPassword string `json:"current_password"`
	NewPassword     string `json:"new_password"`
}

type DeleteTasksResponse struct {
	Message      string `json:"message"`
	DeletedCount int64  `json:"deleted_count"`
}
