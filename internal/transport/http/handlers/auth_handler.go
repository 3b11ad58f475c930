package handlers

import (
	"errors"

	"github.com/Dhruv-958/TaskMaster-Backend/internal/core/ports"
	"github.com/Dhruv-958/TaskMaster-Backend/internal/core/services"
	"github.com/Dhruv-958/TaskMaster-Backend/internal/infrastructure/logger"
	"github.com/Dhruv-958/TaskMaster-Backend/internal/transport/http/dto"
	"github.com/gofiber/fiber/v2"
)

type AuthHandler struct {
	service ports.AuthService
	logger  *logger.Logger
}

func NewAuthHandler(service ports.AuthService, logger *logger.Logger) *AuthHandler {
	return &AuthHandler{service: service, logger: logger}
}

func (h *AuthHandler) SignUp(c *fiber.Ctx) error {
	var req dto.SignUpRequest
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

	user, token, err := h.service.SignUp(c.Context(), ports.SignUpInput{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		if errors.Is(err, services.ErrUserEmailTaken) {
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{
				Error: "email already registered",
			})
		}
		h.logger.Errorw("signup_failed", "email", req.Email, "error", err)
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: "failed to sign up",
		})
	}

	return c.Status(fiber.StatusCreated).JSON(dto.AuthResponse{
		Token: token,
		User:  dto.UserToResponse(user),
	})
}

func (h *AuthHandler) SignIn(c *fiber.Ctx) error {
	var req dto.SignInRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: "invalid request body",
		})
	}

	user, token, err := h.service.SignIn(c.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, services.ErrUserInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
				Error: "email and password are required",
			})
		}
		h.logger.Warnw("signin_failed", "email", req.Email)
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Error: "invalid credentials",
		})
	}

	return c.JSON(dto.AuthResponse{
		Token: token,
		User:  dto.UserToResponse(user),
	})
}
