package handlers

import (
	"context"
	"errors"
	"time"

	"github.com/Dhruv-958/TaskMaster-Backend/internal/core/ports"
	"github.com/Dhruv-958/TaskMaster-Backend/internal/core/services"
	"github.com/Dhruv-958/TaskMaster-Backend/internal/infrastructure/logger"
	"github.com/Dhruv-958/TaskMaster-Backend/internal/transport/http/dto"
	"github.com/Dhruv-958/TaskMaster-Backend/internal/transport/http/middleware"
	"github.com/gofiber/fiber/v2"
)

// LeaderboardCache is the optional month-keyed cache in front of the
// leaderboard query.
type LeaderboardCache interface {
	Get(ctx context.Context, now time.Time) ([]ports.LeaderboardEntry, bool)
	Set(ctx context.Context, now time.Time, entries []ports.LeaderboardEntry)
}

type UserHandler struct {
	service          ports.UserService
	logger           *logger.Logger
	leaderboardCache LeaderboardCache
	now              func() time.Time
}

// NewUserHandler wires the aggregation endpoints. leaderboardCache may be
// nil, in which case every leaderboard request hits the store.
func NewUserHandler(service ports.UserService, logger *logger.Logger, leaderboardCache LeaderboardCache) *UserHandler {
	return &UserHandler{
		service:          service,
		logger:           logger,
		leaderboardCache: leaderboardCache,
		now:              time.Now,
	}
}

func (h *UserHandler) GetProfile(c *fiber.Ctx) error {
	userID, _ := c.Locals(middleware.UserIDKey).(string)
	profile, err := h.service.GetProfile(c.Context(), userID)
	if err != nil {
		if errors.Is(err, services.ErrUserNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
				Error: "user not found",
			})
		}
		h.logger.Errorw("profile_get_failed", "user_id", userID, "error", err)
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: "failed to load profile",
		})
	}

	return c.JSON(dto.ProfileToResponse(profile))
}

func (h *UserHandler) GetProfileByID(c *fiber.Ctx) error {
	id := c.Params("id")
	profile, err := h.service.GetProfileByID(c.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrUserInvalidID):
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
				Error: "invalid user id",
			})
		case errors.Is(err, services.ErrUserNotFound):
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
				Error: "user not found",
			})
		}
		h.logger.Errorw("profile_get_by_id_failed", "id", id, "error", err)
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: "failed to load profile",
		})
	}

	return c.JSON(dto.ProfileToResponse(profile))
}

func (h *UserHandler) GetLeaderboard(c *fiber.Ctx) error {
	// The cache key and the underlying query must agree on the month, so
	// both derive from the same clock.
	now := h.now()
	if h.leaderboardCache != nil {
		if entries, ok := h.leaderboardCache.Get(c.Context(), now); ok {
			return c.JSON(entries)
		}
	}

	entries, err := h.service.Leaderboard(c.Context())
	if err != nil {
		h.logger.Errorw("leaderboard_failed", "error", err)
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: "failed to compute leaderboard",
		})
	}

	if h.leaderboardCache != nil {
		h.leaderboardCache.Set(c.Context(), now, entries)
	}
	return c.JSON(entries)
}

func (h *UserHandler) UpdateProfile(c *fiber.Ctx) error {
	var req dto.UpdateProfileRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: "invalid request body",
		})
	}

	if errs := req.Validate(); len(errs) > 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error:   "validation failed",
			Details: errs,
		})
	}

	userID, _ := c.Locals(middleware.UserIDKey).(string)
	user, err := h.service.UpdateProfile(c.Context(), userID, ports.UpdateProfileInput{
		Name:  req.Name,
		Email: req.Email,
	})
	if err != nil {
		if errors.Is(err, services.ErrUserNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
				Error: "user not found",
			})
		}
		h.logger.Errorw("profile_update_failed", "user_id", userID, "error", err)
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: "failed to update profile",
		})
	}

	return c.JSON(dto.UserToResponse(user))
}

func (h *UserHandler) ChangePassword(c *fiber.Ctx) error {
	var req dto.ChangePasswordRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: "invalid request body",
		})
	}

	userID, _ := c.Locals(middleware.UserIDKey).(string)
	err := h.service.ChangePassword(c.Context(), userID, req.CurrentPassword, req.NewPassword)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrUserInvalidInput):
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
				Error: "both passwords are required",
			})
		case errors.Is(err, services.ErrAuthInvalidCredentials):
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
				Error: "current password is incorrect",
			})
		case errors.Is(err, services.ErrUserNotFound):
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
				Error: "user not found",
			})
		}
		h.logger.Errorw("password_change_failed", "user_id", userID, "error", err)
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: "failed to change password",
		})
	}

	return c.JSON(dto.SuccessResponse{
		Message: "password updated successfully",
	})
}

func (h *UserHandler) DeleteTasks(c *fiber.Ctx) error {
	userID, _ := c.Locals(middleware.UserIDKey).(string)
	deleted, err := h.service.DeleteTasks(c.Context(), userID)
	if err != nil {
		if errors.Is(err, services.ErrUserNoTasks) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
				Error: "no tasks found for this user",
			})
		}
		h.logger.Errorw("user_tasks_delete_failed", "user_id", userID, "error", err)
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: "failed to delete tasks",
		})
	}

	return c.JSON(dto.DeleteTasksResponse{
		Message:      "all tasks deleted successfully",
		DeletedCount: deleted,
	})
}

func (h *UserHandler) DeleteAccount(c *fiber.Ctx) error {
	userID, _ := c.Locals(middleware.UserIDKey).(string)
	if err := h.service.DeleteAccount(c.Context(), userID); err != nil {
		if errors.Is(err, services.ErrUserNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
				Error: "user not found",
			})
		}
		h.logger.Errorw("account_delete_failed", "user_id", userID, "error", err)
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: "failed to delete account",
		})
	}

	return c.JSON(dto.SuccessResponse{
		Message: "user profile deleted successfully",
	})
}
