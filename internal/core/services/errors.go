package services

import "errors"

// Task errors
var (
	ErrTaskQuotaExceeded      = errors.New("task: daily task limit reached")
	ErrTaskScoringUnavailable = errors.New("task: scoring failed")
	ErrTaskPersistenceFailed  = errors.New("task: persistence failed")
	ErrTaskNotFound           = errors.New("task: not found")
	ErrTaskInvalidID          = errors.New("task: invalid task id")
	ErrTaskInvalidInput       = errors.New("task: invalid input")
)

// User errors
var (
	ErrUserNotFound     = errors.New("user: not found")
	ErrUserInvalidID    = errors.New("user: invalid user id")
	ErrUserInvalidInput = errors.New("user: invalid input")
	ErrUserEmailTaken   = errors.New("user: email already registered")
	ErrUserNoTasks      = errors.New("user: no tasks found")
)

// Auth errors
var (
	ErrAuthInvalidCredentials = errors.New("auth: invalid credentials")
	ErrAuthInvalidToken       = errors.New("auth: invalid token")
)
