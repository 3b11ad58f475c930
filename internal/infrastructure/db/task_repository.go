package db

import (
	"context"
	"time"

	"github.com/Dhruv-958/TaskMaster-Backend/internal/core/ports"
	"github.com/Dhruv-958/TaskMaster-Backend/internal/domain"
	"github.com/Dhruv-958/TaskMaster-Backend/internal/infrastructure/logger"
	"gorm.io/gorm"
)

type taskRepository struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewTaskRepository(db *gorm.DB, log *logger.Logger) ports.TaskRepository {
	return &taskRepository{db: db, log: log}
}

func (r *taskRepository) CreateWithDailyLimit(ctx context.Context, task *domain.Task, dayStart, dayEnd time.Time, limit int) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&domain.Task{}).
			Where("owner_id = ? AND created_at >= ? AND created_at < ?", task.OwnerID, dayStart, dayEnd).
			Count(&count).Error; err != nil {
			return err
		}
		if count >= int64(limit) {
			return ports.ErrDailyLimitReached
		}
		return tx.Create(task).Error
	})
	if err != nil {
		if err == ports.ErrDailyLimitReached {
			r.log.Warnw("task_repo_daily_limit", "owner_id", task.OwnerID)
		} else {
			r.log.Errorw("task_repo_create_failed", "owner_id", task.OwnerID, "error", err)
		}
		return err
	}
	r.log.Infow("task_repo_create_ok", "id", task.ID, "owner_id", task.OwnerID)
	return nil
}

func (r *taskRepository) GetByID(ctx context.Context, id string) (*domain.Task, error) {
	var task domain.Task
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&task).Error; err != nil {
		r.log.Errorw("task_repo_get_failed", "id", id, "error", err)
		return nil, err
	}
	return &task, nil
}

func (r *taskRepository) GetByOwner(ctx context.Context, ownerID string) ([]domain.Task, error) {
	var tasks []domain.Task
	if err := r.db.WithContext(ctx).
		Where("owner_id = ?", ownerID).
		Order("created_at DESC").
		Find(&tasks).Error; err != nil {
		r.log.Errorw("task_repo_list_by_owner_failed", "owner_id", ownerID, "error", err)
		return nil, err
	}
	return tasks, nil
}

func (r *taskRepository) GetAll(ctx context.Context) ([]domain.Task, error) {
	var tasks []domain.Task
	if err := r.db.WithContext(ctx).Preload("Owner").Order("created_at DESC").Find(&tasks).Error; err != nil {
		r.log.Errorw("task_repo_list_failed", "error", err)
		return nil, err
	}
	r.log.Infow("task_repo_list_ok", "count", len(tasks))
	return tasks, nil
}

func (r *taskRepository) CountByOwnerInRange(ctx context.Context, ownerID string, from, to time.Time) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&domain.Task{}).
		Where("owner_id = ? AND created_at >= ? AND created_at < ?", ownerID, from, to).
		Count(&count).Error; err != nil {
		r.log.Errorw("task_repo_count_failed", "owner_id", ownerID, "error", err)
		return 0, err
	}
	return count, nil
}

func (r *taskRepository) SumScoresByOwnerInRange(ctx context.Context, from, to time.Time) (map[string]int64, error) {
	type ownerTotal struct {
		OwnerID string
		Total   int64
	}
	var rows []ownerTotal
	if err := r.db.WithContext(ctx).Model(&domain.Task{}).
		Select("owner_id, SUM(score) AS total").
		Where("created_at >= ? AND created_at <= ?", from, to).
		Group("owner_id").
		Scan(&rows).Error; err != nil {
		r.log.Errorw("task_repo_sum_failed", "error", err)
		return nil, err
	}

	totals := make(map[string]int64, len(rows))
	for _, row := range rows {
		totals[row.OwnerID] = row.Total
	}
	return totals, nil
}

func (r *taskRepository) Delete(ctx context.Context, id, ownerID string) error {
	res := r.db.WithContext(ctx).Where("id = ? AND owner_id = ?", id, ownerID).Delete(&domain.Task{})
	if res.Error != nil {
		r.log.Errorw("task_repo_delete_failed", "id", id, "error", res.Error)
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	r.log.Infow("task_repo_delete_ok", "id", id, "owner_id", ownerID)
	return nil
}

func (r *taskRepository) DeleteByOwner(ctx context.Context, ownerID string) (int64, error) {
	res := r.db.WithContext(ctx).Where("owner_id = ?", ownerID).Delete(&domain.Task{})
	if res.Error != nil {
		r.log.Errorw("task_repo_delete_by_owner_failed", "owner_id", ownerID, "error", res.Error)
		return 0, res.Error
	}
	r.log.Infow("task_repo_delete_by_owner_ok", "owner_id", ownerID, "count", res.RowsAffected)
	return res.RowsAffected, nil
}
