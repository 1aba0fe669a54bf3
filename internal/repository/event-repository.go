package repository

import (
	"github.com/GlobalPath/cms_service/internal/domain"
	"gorm.io/gorm"
)

type RegistrationRepository interface {
	Create(reg *domain.EventRegistration) error
	FindByID(id uint) (*domain.EventRegistration, error)
	ListByEvent(eventID uint, limit, offset int) ([]domain.EventRegistration, error)
	SetStatus(id uint, status domain.RegistrationStatus) error
}

type registrationRepository struct {
	db *gorm.DB
}

func NewRegistrationRepository(db *gorm.DB) RegistrationRepository {
	return &registrationRepository{db: db}
}

func (r *registrationRepository) Create(reg *domain.EventRegistration) error {
	return r.db.Create(reg).Error
}

func (r *registrationRepository) FindByID(id uint) (*domain.EventRegistration, error) {
	var reg domain.EventRegistration
	if err := r.db.First(&reg, id).Error; err != nil {
		return nil, err
	}
	return &reg, nil
}

func (r *registrationRepository) ListByEvent(eventID uint, limit, offset int) ([]domain.EventRegistration, error) {
	var regs []domain.EventRegistration
	err := r.db.Where("event_id = ?", eventID).
		Order("created_at ASC").Limit(limit).Offset(offset).
		Find(&regs).Error
	if err != nil {
		return nil, err
	}
	return regs, nil
}

func (r *registrationRepository) SetStatus(id uint, status domain.RegistrationStatus) error {
	return r.db.Model(&domain.EventRegistration{}).
		Where("id = ?", id).Update("status", status).Error
}
