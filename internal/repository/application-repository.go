package repository

import (
	"time"

	"github.com/GlobalPath/cms_service/internal/domain"
	"gorm.io/gorm"
)

type ApplicationRepository interface {
	Create(app *domain.Application) error
	FindByID(id uint) (*domain.Application, error)
	ListByUser(userID uint, limit, offset int) ([]domain.Application, error)
	List(status domain.ApplicationStatus, limit, offset int) ([]domain.Application, error)
	UpdateStatus(id uint, status domain.ApplicationStatus, reviewerID uint, note string) error
}

type applicationRepository struct {
	db *gorm.DB
}

func NewApplicationRepository(db *gorm.DB) ApplicationRepository {
	return &applicationRepository{db: db}
}

func (a *applicationRepository) Create(app *domain.Application) error {
	return a.db.Create(app).Error
}

func (a *applicationRepository) FindByID(id uint) (*domain.Application, error) {
	var app domain.Application
	if err := a.db.First(&app, id).Error; err != nil {
		return nil, err
	}
	return &app, nil
}

func (a *applicationRepository) ListByUser(userID uint, limit, offset int) ([]domain.Application, error) {
	var apps []domain.Application
	err := a.db.Where("user_id = ?", userID).
		Order("created_at DESC").Limit(limit).Offset(offset).
		Find(&apps).Error
	if err != nil {
		return nil, err
	}
	return apps, nil
}

func (a *applicationRepository) List(status domain.ApplicationStatus, limit, offset int) ([]domain.Application, error) {
	q := a.db.Order("created_at DESC").Limit(limit).Offset(offset)
	if status != "" {
		q = q.Where("status = ?", status)
	}

	var apps []domain.Application
	if err := q.Find(&apps).Error; err != nil {
		return nil, err
	}
	return apps, nil
}

func (a *applicationRepository) UpdateStatus(id uint, status domain.ApplicationStatus, reviewerID uint, note string) error {
	now := time.Now()
	return a.db.Model(&domain.Application{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"status":      status,
			"reviewed_by": reviewerID,
			"review_note": note,
			"reviewed_at": now,
		}).Error
}
