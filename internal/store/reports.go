package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/stadtwache/stadtwache-backend/internal/models"
	"gorm.io/gorm"
)

type GormReportStore struct {
	db *gorm.DB
}

func NewReportStore(db *gorm.DB) *GormReportStore {
	return &GormReportStore{db: db}
}

func (s *GormReportStore) Create(ctx context.Context, report *models.Report) error {
	if err := s.db.WithContext(ctx).Create(report).Error; err != nil {
		return fmt.Errorf("failed to create report: %w", err)
	}
	return nil
}

func (s *GormReportStore) GetByID(ctx context.Context, id uuid.UUID) (*models.Report, error) {
	var report models.Report
	if err := s.db.WithContext(ctx).First(&report, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &report, nil
}

func (s *GormReportStore) Update(ctx context.Context, id uuid.UUID, fields map[string]interface{}) error {
	result := s.db.WithContext(ctx).Model(&models.Report{}).Where("id = ?", id).Updates(fields)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *GormReportStore) ListAll(ctx context.Context, limit int) ([]models.Report, error) {
	var reports []models.Report
	if err := s.db.WithContext(ctx).Order("created_at DESC").Limit(limit).Find(&reports).Error; err != nil {
		return nil, err
	}
	return reports, nil
}

func (s *GormReportStore) ListByAuthor(ctx context.Context, authorID uuid.UUID, limit int) ([]models.Report, error) {
	var reports []models.Report
	if err := s.db.WithContext(ctx).Where("author_id = ?", authorID).
		Order("created_at DESC").Limit(limit).Find(&reports).Error; err != nil {
		return nil, err
	}
	return reports, nil
}
