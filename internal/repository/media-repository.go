package repository

import (
	"github.com/GlobalPath/cms_service/internal/domain"
	"gorm.io/gorm"
)

type MediaRepository interface {
	Create(f *domain.MediaFile) error
	FindByID(id uint) (*domain.MediaFile, error)
	List(folder string, limit, offset int) ([]domain.MediaFile, error)
	Delete(id uint) error
}

type mediaRepository struct {
	db *gorm.DB
}

func NewMediaRepository(db *gorm.DB) MediaRepository {
	return &mediaRepository{db: db}
}

func (m *mediaRepository) Create(f *domain.MediaFile) error {
	return m.db.Create(f).Error
}

func (m *mediaRepository) FindByID(id uint) (*domain.MediaFile, error) {
	var f domain.MediaFile
	if err := m.db.First(&f, id).Error; err != nil {
		return nil, err
	}
	return &f, nil
}

func (m *mediaRepository) List(folder string, limit, offset int) ([]domain.MediaFile, error) {
	q := m.db.Order("created_at DESC").Limit(limit).Offset(offset)
	if folder != "" {
		q = q.Where("folder = ?", folder)
	}

	var files []domain.MediaFile
	if err := q.Find(&files).Error; err != nil {
		return nil, err
	}
	return files, nil
}

func (m *mediaRepository) Delete(id uint) error {
	return m.db.Unscoped().Delete(&domain.MediaFile{}, id).Error
}
