package repository

import (
	"context"
	"errors"

	"github.com/fadilmartias/cv-optimizer/internal/model"
	"gorm.io/gorm"
)

var ErrNotFound = errors.New("record not found")

type CVUploadRepository struct {
	db *gorm.DB
}

func NewCVUploadRepository(db *gorm.DB) *CVUploadRepository {
	return &CVUploadRepository{db}
}

func (r *CVUploadRepository) Create(ctx context.Context, upload *model.CVUpload) error {
	return r.db.WithContext(ctx).Create(upload).Error
}

func (r *CVUploadRepository) Update(ctx context.Context, upload *model.CVUpload) error {
	return r.db.WithContext(ctx).Save(upload).Error
}

// FindByIDForUser only returns uploads owned by userID.
func (r *CVUploadRepository) FindByIDForUser(ctx context.Context, id, userID string) (*model.CVUpload, error) {
	var upload model.CVUpload
	err := r.db.WithContext(ctx).First(&upload, "id = ? AND user_id = ?", id, userID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &upload, nil
}

func (r *CVUploadRepository) ListByUser(ctx context.Context, userID string, offset, limit int) ([]model.CVUpload, int64, error) {
	var (
		uploads []model.CVUpload
		total   int64
	)
	owned := func(db *gorm.DB) *gorm.DB {
		return db.Where("user_id = ?", userID)
	}
	if err := r.db.WithContext(ctx).Model(&model.CVUpload{}).Scopes(owned).Count(&total).Error; err != nil {
		return nil, 0, err
	}
	err := r.db.WithContext(ctx).Scopes(owned).Order("created_at DESC").Offset(offset).Limit(limit).Find(&uploads).Error
	return uploads, total, err
}
