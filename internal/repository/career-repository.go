package repository

import (
	"github.com/GlobalPath/cms_service/internal/domain"
	"gorm.io/gorm"
)

type JobApplicationRepository interface {
	Create(app *domain.JobApplication) error
	FindByID(id uint) (*domain.JobApplication, error)
	ListByCareer(careerID uint, limit, offset int) ([]domain.JobApplication, error)
	List(status domain.ApplicationStatus, limit, offset int) ([]domain.JobApplication, error)
	SetStatus(id uint, status domain.ApplicationStatus, note string) error
}

type jobApplicationRepository struct {
	db *gorm.DB
}

func NewJobApplicationRepository(db *gorm.DB) JobApplicationRepository {
	return &jobApplicationRepository{db: db}
}

func (j *jobApplicationRepository) Create(app *domain.JobApplication) error {
	return j.db.Create(app).Error
}

func (j *jobApplicationRepository) FindByID(id uint) (*domain.JobApplication, error) {
	var app domain.JobApplication
	if err := j.db.First(&app, id).Error; err != nil {
		return nil, err
	}
	return &app, nil
}

func (j *jobApplicationRepository) ListByCareer(careerID uint, limit, offset int) ([]domain.JobApplication, error) {
	var apps []domain.JobApplication
	err := j.db.Where("career_id = ?", careerID).
		Order("created_at DESC").Limit(limit).Offset(offset).
		Find(&apps).Error
	if err != nil {
		return nil, err
	}
	return apps, nil
}

func (j *jobApplicationRepository) List(status domain.ApplicationStatus, limit, offset int) ([]domain.JobApplication, error) {
	q := j.db.Order("created_at DESC").Limit(limit).Offset(offset)
	if status != "" {
		q = q.Where("status = ?", status)
	}

	var apps []domain.JobApplication
	if err := q.Find(&apps).Error; err != nil {
		return nil, err
	}
	return apps, nil
}

func (j *jobApplicationRepository) SetStatus(id uint, status domain.ApplicationStatus, note string) error {
	return j.db.Model(&domain.JobApplication{}).
		Where("id = ?", id).
		Updates(map[string]any{"status": status, "review_note": note}).Error
}
