package dto

import (
	"testing"

	"github.com/Dhruv-958/TaskMaster-Backend/internal/domain"
)

func TestTaskToResponseIncludesLoadedOwner(t *testing.T) {
	task := domain.Task{
		ID:      "task-1",
		Title:   "t",
		OwnerID: "user-1",
		Owner:   &domain.User{ID: "user-1", Name: "Alice", Email: "alice@example.com"},
	}

	resp := TaskToResponse(&task)
	if resp.Owner == nil {
		t.Fatal("owner must be serialized when it was loaded with the task")
	}
	if resp.Owner.Name != "Alice" || resp.Owner.Email != "alice@example.com" {
		t.Errorf("owner = %+v", resp.Owner)
	}
}

func TestTaskToResponseOmitsUnloadedOwner(t *testing.T) {
	resp := TaskToResponse(&domain.Task{ID: "task-1", OwnerID: "user-1"})
	if resp.Owner != nil {
		t.Error("owner must stay nil when the row was not loaded")
	}
}
