package repository

import (
	"github.com/GlobalPath/cms_service/internal/domain"
	"gorm.io/gorm"
)

type ContactRepository interface {
	CreateContact(msg *domain.ContactMessage) error
	ListContacts(limit, offset int) ([]domain.ContactMessage, error)
	CreateCounselling(req *domain.CounsellingRequest) error
	ListCounselling(status domain.RegistrationStatus, limit, offset int) ([]domain.CounsellingRequest, error)
	FindCounselling(id uint) (*domain.CounsellingRequest, error)
	SetCounsellingStatus(id uint, status domain.RegistrationStatus) error
}

type contactRepository struct {
	db *gorm.DB
}

func NewContactRepository(db *gorm.DB) ContactRepository {
	return &contactRepository{db: db}
}

func (c *contactRepository) CreateContact(msg *domain.ContactMessage) error {
	return c.db.Create(msg).Error
}

func (c *contactRepository) ListContacts(limit, offset int) ([]domain.ContactMessage, error) {
	var out []domain.ContactMessage
	err := c.db.Order("created_at DESC").Limit(limit).Offset(offset).Find(&out).Error
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *contactRepository) CreateCounselling(req *domain.CounsellingRequest) error {
	return c.db.Create(req).Error
}

func (c *contactRepository) ListCounselling(status domain.RegistrationStatus, limit, offset int) ([]domain.CounsellingRequest, error) {
	q := c.db.Order("created_at DESC").Limit(limit).Offset(offset)
	if status != "" {
		q = q.Where("status = ?", status)
	}

	var out []domain.CounsellingRequest
	if err := q.Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (c *contactRepository) FindCounselling(id uint) (*domain.CounsellingRequest, error) {
	var req domain.CounsellingRequest
	if err := c.db.First(&req, id).Error; err != nil {
		return nil, err
	}
	return &req, nil
}

func (c *contactRepository) SetCounsellingStatus(id uint, status domain.RegistrationStatus) error {
	return c.db.Model(&domain.CounsellingRequest{}).
		Where("id = ?", id).Update("status", status).Error
}
