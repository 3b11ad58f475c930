package services

import (
	"context"
	"strings"
	"time"

	"github.com/Dhruv-958/TaskMaster-Backend/internal/core/ports"
	"github.com/Dhruv-958/TaskMaster-Backend/internal/domain"
	"github.com/Dhruv-958/TaskMaster-Backend/internal/infrastructure/logger"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

type authService struct {
	userRepo  ports.UserRepository
	logger    *logger.Logger
	jwtSecret []byte
	tokenTTL  time.Duration
}

type AuthServiceConfig struct {
	UserRepo  ports.UserRepository
	Logger    *logger.Logger
	JWTSecret string
	TokenTTL  time.Duration
}

func NewAuthService(cfg AuthServiceConfig) ports.AuthService {
	ttl := cfg.TokenTTL
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}
	return &authService{
		userRepo:  cfg.UserRepo,
		logger:    cfg.Logger,
		jwtSecret: []byte(cfg.JWTSecret),
		tokenTTL:  ttl,
	}
}

func (s *authService) SignUp(ctx context.Context, input ports.SignUpInput) (*domain.User, string, error) {
	if input.Name == "" || input.Email == "" || input.Password == "" {
		return nil, "", ErrUserInvalidInput
	}

	email := strings.ToLower(strings.TrimSpace(input.Email))
	if existing, _ := s.userRepo.GetByEmail(ctx, email); existing != nil {
		s.logger.Warnw("signup_email_taken", "email", email)
		return nil, "", ErrUserEmailTaken
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, "", err
	}

	user := &domain.User{
		ID:           uuid.New().String(),
		Name:         input.Name,
		Email:        email,
		PasswordHash: string(hash),
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		s.logger.Errorw("signup_create_failed", "email", email, "error", err)
		return nil, "", err
	}

	token, err := s.issueToken(user.ID)
	if err != nil {
		return nil, "", err
	}

	s.logger.Infow("user_signed_up", "user_id", user.ID)
	return user, token, nil
}

func (s *authService) SignIn(ctx context.Context, email, password string) (*domain.User, string, error) {
	if email == "" || password == "" {
		return nil, "", ErrUserInvalidInput
	}

	user, err := s.userRepo.GetByEmail(ctx, strings.ToLower(strings.TrimSpace(email)))
	if err != nil {
		return nil, "", ErrAuthInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		s.logger.Warnw("signin_bad_password", "user_id", user.ID)
		return nil, "", ErrAuthInvalidCredentials
	}

	token, err := s.issueToken(user.ID)
	if err != nil {
		return nil, "", err
	}

	s.logger.Infow("user_signed_in", "user_id", user.ID)
	return user, token, nil
}

func (s *authService) issueToken(userID string) (string, error) {
	now := time.Now()
	claims := jwt.RegisteredClaims{
		Subject:   userID,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(s.tokenTTL)),
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.jwtSecret)
}
