package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/clinica/appointments-api/internal/domain/center"
	"github.com/clinica/appointments-api/internal/httperr"
	"github.com/clinica/appointments-api/internal/models"
)

type CenterGormRepository struct {
	db *gorm.DB
}

func NewCenterGormRepository(db *gorm.DB) *CenterGormRepository {
	return &CenterGormRepository{db: db}
}

func (r *CenterGormRepository) ListCenters(ctx context.Context) ([]models.Center, error) {
	var centers []models.Center
	if err := r.db.WithContext(ctx).Order("id ASC").Find(&centers).Error; err != nil {
		return nil, fmt.Errorf("list centers: %w", err)
	}
	return centers, nil
}

func (r *CenterGormRepository) GetCenterByName(ctx context.Context, name string) (*models.Center, error) {
	var c models.Center
	if err := r.db.WithContext(ctx).Where("name = ?", name).First(&c).Error; err != nil {
		return nil, notFound(err, httperr.CodeCenterNotFound)
	}
	return &c, nil
}

func (r *CenterGormRepository) SeedCenters(ctx context.Context, centers []models.Center) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&models.Center{}).Count(&count).Error; err != nil {
		return false, fmt.Errorf("count centers: %w", err)
	}
	if count > 0 || len(centers) == 0 {
		return false, nil
	}

	rows := make([]models.Center, len(centers))
	copy(rows, centers)
	if err := r.db.WithContext(ctx).Create(&rows).Error; err != nil {
		return false, fmt.Errorf("seed centers: %w", err)
	}
	return true, nil
}

var _ center.Repository = (*CenterGormRepository)(nil)
