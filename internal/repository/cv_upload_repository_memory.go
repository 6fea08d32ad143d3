package repository

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/fadilmartias/cv-optimizer/internal/model"
	"github.com/google/uuid"
)

// MemoryCVUploadRepository keeps uploads in process memory.
type MemoryCVUploadRepository struct {
	mu      sync.RWMutex
	uploads map[uuid.UUID]model.CVUpload
}

func NewMemoryCVUploadRepository() *MemoryCVUploadRepository {
	return &MemoryCVUploadRepository{uploads: make(map[uuid.UUID]model.CVUpload)}
}

func (r *MemoryCVUploadRepository) Create(ctx context.Context, upload *model.CVUpload) error {
	if upload.ID == uuid.Nil {
		upload.ID = uuid.New()
	}
	now := time.Now()
	if upload.CreatedAt.IsZero() {
		upload.CreatedAt = now
	}
	upload.UpdatedAt = now

	r.mu.Lock()
	defer r.mu.Unlock()
	r.uploads[upload.ID] = *upload
	return nil
}

func (r *MemoryCVUploadRepository) Update(ctx context.Context, upload *model.CVUpload) error {
	upload.UpdatedAt = time.Now()

	r.mu.Lock()
	defer r.mu.Unlock()
	r.uploads[upload.ID] = *upload
	return nil
}

func (r *MemoryCVUploadRepository) FindByIDForUser(ctx context.Context, id, userID string) (*model.CVUpload, error) {
	parsed, err := uuid.Parse(id)
	if err != nil {
		return nil, ErrNotFound
	}

	r.mu.RLock()
	defer r.mu.RUnlock()
	upload, ok := r.uploads[parsed]
	if !ok || upload.UserID != userID {
		return nil, ErrNotFound
	}
	return &upload, nil
}

func (r *MemoryCVUploadRepository) ListByUser(ctx context.Context, userID string, offset, limit int) ([]model.CVUpload, int64, error) {
	r.mu.RLock()
	owned := make([]model.CVUpload, 0)
	for _, u := range r.uploads {
		if u.UserID == userID {
			owned = append(owned, u)
		}
	}
	r.mu.RUnlock()

	sort.Slice(owned, func(i, j int) bool {
		return owned[i].CreatedAt.After(owned[j].CreatedAt)
	})

	total := int64(len(owned))
	if offset >= len(owned) {
		return []model.CVUpload{}, total, nil
	}
	end := offset + limit
	if end > len(owned) {
		end = len(owned)
	}
	return owned[offset:end], total, nil
}
