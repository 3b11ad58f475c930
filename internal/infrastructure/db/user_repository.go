package db

import (
	"context"

	"github.com/Dhruv-958/TaskMaster-Backend/internal/core/ports"
	"github.com/Dhruv-958/TaskMaster-Backend/internal/domain"
	"github.com/Dhruv-958/TaskMaster-Backend/internal/infrastructure/logger"
	"gorm.io/gorm"
)

type userRepository struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewUserRepository(db *gorm.DB, log *logger.Logger) ports.UserRepository {
	return &userRepository{db: db, log: log}
}

func (r *userRepository) Create(ctx context.Context, user *domain.User) error {
	if err := r.db.WithContext(ctx).Create(user).Error; err != nil {
		r.log.Errorw("user_repo_create_failed", "email", user.Email, "error", err)
		return err
	}
	r.log.Infow("user_repo_create_ok", "id", user.ID)
	return nil
}

func (r *userRepository) GetByID(ctx context.Context, id string) (*domain.User, error) {
	var user domain.User
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&user).Error; err != nil {
		r.log.Errorw("user_repo_get_failed", "id", id, "error", err)
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	var user domain.User
	if err := r.db.WithContext(ctx).Where("email = ?", email).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) GetAll(ctx context.Context) ([]domain.User, error) {
	var users []domain.User
	if err := r.db.WithContext(ctx).Order("created_at ASC").Find(&users).Error; err != nil {
		r.log.Errorw("user_repo_list_failed", "error", err)
		return nil, err
	}
	return users, nil
}

func (r *userRepository) Update(ctx context.Context, user *domain.User) error {
	if err := r.db.WithContext(ctx).Save(user).Error; err != nil {
		r.log.Errorw("user_repo_update_failed", "id", user.ID, "error", err)
		return err
	}
	r.log.Infow("user_repo_update_ok", "id", user.ID)
	return nil
}

func (r *userRepository) Delete(ctx context.Context, id string) error {
	if err := r.db.WithContext(ctx).Where("id = ?", id).Delete(&domain.User{}).Error; err != nil {
		r.log.Errorw("user_repo_delete_failed", "id", id, "error", err)
		return err
	}
	r.log.Infow("user_repo_delete_ok", "id", id)
	return nil
}
