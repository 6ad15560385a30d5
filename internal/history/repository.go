package history

import (
	"context"

	"gorm.io/gorm"
)

type Repository interface {
	Append(ctx context.Context, entry *SessionLog) error
	Recent(ctx context.Context, userID string, limit int) ([]SessionLog, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Append(ctx context.Context, entry *SessionLog) error {
	return r.db.WithContext(ctx).Create(entry).Error
}

func (r *repository) Recent(ctx context.Context, userID string, limit int) ([]SessionLog, error) {
	var entries []SessionLog
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Limit(limit).
		Find(&entries).Error; err != nil {
		return nil, err
	}
	return entries, nil
}
