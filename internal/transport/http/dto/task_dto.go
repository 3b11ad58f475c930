package dto

import (
	"time"

	"github.com/Dhruv-958/TaskMaster-Backend/internal/domain"
)

type CreateTaskRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	TimeTaken   int64  `json:"time_taken"`
}

func (r *CreateTaskRequest) Validate() []string {
	var errors []string

	if r.Title == "" {
		errors = append(errors, "title is required")
	}

	if r.Description == "" {
		errors = append(errors, "description is required")
	}

	if r.TimeTaken < 0 {
		errors = append(errors, "time_taken must not be negative")
	}

	return errors
}

type TaskResponse struct {
	ID          string             `json:"id"`
	Title       string             `json:"title"`
	Description string             `json:"description"`
	TimeTaken   int64              `json:"time_taken"`
	Score       int                `json:"score"`
	OwnerID     string             `json:"owner_id"`
	Owner       *TaskOwnerResponse `json:"owner,omitempty"`
	CreatedAt   time.Time          `json:"created_at"`
	UpdatedAt   time.Time          `json:"updated_at"`
}

// TaskOwnerResponse is attached when the owner row was loaded with the
// task, as in the admin-wide listing.
type TaskOwnerResponse struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

func TaskToResponse(task *domain.Task) TaskResponse {
	resp := TaskResponse{
		ID:          task.ID,
		Title:       task.Title,
		Description: task.Description,
		TimeTaken:   task.TimeTaken,
		Score:       task.Score,
		OwnerID:     task.OwnerID,
		CreatedAt:   task.CreatedAt,
		UpdatedAt:   task.UpdatedAt,
	}
	if task.Owner != nil {
		resp.Owner = &TaskOwnerResponse{
			ID:    task.Owner.ID,
			Name:  task.Owner.Name,
			Email: task.Owner.Email,
		}
	}
	return resp
}

func TasksToResponse(tasks []domain.Task) []TaskResponse {
	responses := make([]TaskResponse, len(tasks))
	for i, task := range tasks {
		responses[i] = TaskToResponse(&task)
	}
	return responses
}

type ErrorResponse struct {
	Error   string   `json:"error"`
	Details []string `json:"details,omitempty"`
}

type SuccessResponse struct {
	Message string `json:"message"`
}
