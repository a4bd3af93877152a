package store

import (
	"context"
	"fmt"

	"github.com/stadtwache/stadtwache-backend/internal/models"
	"gorm.io/gorm"
)

type GormBroadcastStore struct {
	db *gorm.DB
}

func NewBroadcastStore(db *gorm.DB) *GormBroadcastStore {
	return &GormBroadcastStore{db: db}
}

func (s *GormBroadcastStore) Create(ctx context.Context, broadcast *models.EmergencyBroadcast) error {
	if err := s.db.WithContext(ctx).Create(broadcast).Error; err != nil {
		return fmt.Errorf("failed to create emergency broadcast: %w", err)
	}
	return nil
}
