package handlers

import (
	"errors"

	"github.com/Dhruv-958/TaskMaster-Backend/internal/core/ports"
	"github.com/Dhruv-958/TaskMaster-Backend/internal/core/services"
	"github.com/Dhruv-958/TaskMaster-Backend/internal/infrastructure/logger"
	"github.com/Dhruv-958/TaskMaster-Backend/internal/transport/http/dto"
	"github.com/Dhruv-958/TaskMaster-Backend/internal/transport/http/middleware"
	"github.com/gofiber/fiber/v2"
)

type TaskHandler struct {
	service ports.TaskService
	logger  *logger.Logger
}

func NewTaskHandler(service ports.TaskService, logger *logger.Logger) *TaskHandler {
	return &TaskHandler{service: service, logger: logger}
}

func (h *TaskHandler) CreateTask(c *fiber.Ctx) error {
	var req dto.CreateTaskRequest
	if err := c.BodyParser(&req); err != nil {
		h.logger.Warnw("task_create_body_parse_failed", "error", err)
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: "invalid request body",
		})
	}

	if errs := req.Validate(); len(errs) > 0 {
		h.logger.Warnw("task_create_validation_failed", "details", errs)
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error:   "validation failed",
			Details: errs,
		})
	}

	ownerID, _ := c.Locals(middleware.UserIDKey).(string)
	input := ports.CreateTaskInput{
		OwnerID:     ownerID,
		Title:       req.Title,
		Description: req.Description,
		TimeTaken:   req.TimeTaken,
	}

	h.logger.Infow("task_create_request", "owner_id", ownerID, "title", req.Title)
	task, err := h.service.CreateTask(c.Context(), input)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrTaskQuotaExceeded):
			h.logger.Warnw("task_create_quota", "owner_id", ownerID)
			return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{
				Error: "daily task limit reached",
			})
		case errors.Is(err, services.ErrTaskScoringUnavailable):
			h.logger.Errorw("task_create_scoring_failed", "owner_id", ownerID, "error", err)
			return c.Status(fiber.StatusBadGateway).JSON(dto.ErrorResponse{
				Error: "task scoring failed",
			})
		case errors.Is(err, services.ErrTaskInvalidInput):
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
				Error: err.Error(),
			})
		}
		h.logger.Errorw("task_create_failed", "owner_id", ownerID, "error", err)
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: "failed to create task",
		})
	}

	h.logger.Infow("task_create_success", "id", task.ID, "owner_id", ownerID, "score", task.Score)
	return c.Status(fiber.StatusCreated).JSON(dto.TaskToResponse(task))
}

func (h *TaskHandler) GetTask(c *fiber.Ctx) error {
	ownerID, _ := c.Locals(middleware.UserIDKey).(string)
	task, err := h.service.GetTaskByID(c.Context(), c.Params("id"), ownerID)
	if err != nil {
		if errors.Is(err, services.ErrTaskInvalidID) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
				Error: "invalid task id",
			})
		}
		h.logger.Warnw("task_get_not_found", "id", c.Params("id"), "owner_id", ownerID)
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
			Error: "task not found",
		})
	}

	return c.JSON(dto.TaskToResponse(task))
}

func (h *TaskHandler) GetAllTasks(c *fiber.Ctx) error {
	tasks, err := h.service.GetAllTasks(c.Context())
	if err != nil {
		h.logger.Errorw("tasks_list_failed", "error", err)
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: "failed to fetch tasks",
		})
	}

	h.logger.Infow("tasks_list_success", "count", len(tasks))
	return c.JSON(dto.TasksToResponse(tasks))
}

func (h *TaskHandler) DeleteTask(c *fiber.Ctx) error {
	ownerID, _ := c.Locals(middleware.UserIDKey).(string)
	if err := h.service.DeleteTask(c.Context(), c.Params("id"), ownerID); err != nil {
		if errors.Is(err, services.ErrTaskInvalidID) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
				Error: "invalid task id",
			})
		}
		h.logger.Warnw("task_delete_not_found", "id", c.Params("id"), "owner_id", ownerID)
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
			Error: "task not found",
		})
	}

	h.logger.Infow("task_delete_success", "id", c.Params("id"), "owner_id", ownerID)
	return c.JSON(dto.SuccessResponse{
		Message: "task deleted successfully",
	})
}
