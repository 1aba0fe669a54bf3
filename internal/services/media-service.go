package services

import (
	"context"
	"errors"
	"fmt"
	"log"
	"path/filepath"
	"strings"

	"github.com/GlobalPath/cms_service/internal/domain"
	"github.com/GlobalPath/cms_service/internal/helper"
	"github.com/GlobalPath/cms_service/internal/interfaces"
	"github.com/GlobalPath/cms_service/internal/repository"
	"github.com/GlobalPath/cms_service/pkg/utils"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	imageMaxWidth   = 1600
	imageJPGQuality = 85
)

var videoConstraint = helper.FileConstraint{
	Field:      "file",
	MaxSize:    100 * 1024 * 1024,
	Extensions: []string{".mp4", ".mov", ".webm"},
}

type MediaService interface {
	Upload(ctx context.Context, uploaderID uint, folder, filename string, data []byte) (*domain.MediaFile, error)
	List(folder string, limit, offset int) ([]domain.MediaFile, error)
	Delete(ctx context.Context, id uint) error
}

type mediaService struct {
	repo     repository.MediaRepository
	uploader interfaces.Uploader
}

func NewMediaService(repo repository.MediaRepository, uploader interfaces.Uploader) MediaService {
	return &mediaService{
		repo:     repo,
		uploader: uploader,
	}
}

// Upload runs the two-phase workflow: validate, push the object to storage,
// then persist the metadata row. A storage failure aborts before any insert,
// so a URL that does not resolve is never persisted. If the insert fails
// after a successful upload, the orphaned object is deleted as the
// compensating step.
func (m *mediaService) Upload(ctx context.Context, uploaderID uint, folder, filename string, data []byte) (*domain.MediaFile, error) {
	if m.uploader == nil {
		return nil, errors.New("uploader is not configured")
	}

	folder = strings.Trim(strings.TrimSpace(folder), "/")
	if folder == "" {
		folder = "media"
	}

	fileType := detectFileType(filename)
	var constraint helper.FileConstraint
	switch fileType {
	case domain.MediaImage:
		constraint = helper.ImageConstraint
	case domain.MediaVideo:
		constraint = videoConstraint
	default:
		constraint = helper.DocumentConstraint
	}
	if errs := constraint.ValidateFile(filename, int64(len(data))); len(errs) > 0 {
		return nil, errors.New(firstMessage(errs))
	}

	if fileType == domain.MediaImage {
		norm, err := utils.NormalizeToJPG(data, imageMaxWidth, imageJPGQuality)
		if err != nil {
			return nil, fmt.Errorf("normalize image failed: %w", err)
		}
		data = norm
		filename = strings.TrimSuffix(filename, filepath.Ext(filename)) + ".jpg"
	}

	objectName := uuid.NewString() + strings.ToLower(filepath.Ext(filename))
	res, err := m.uploader.UploadBytes(ctx, folder, objectName, data)
	if err != nil {
		return nil, fmt.Errorf("storage upload failed: %w", err)
	}

	file := &domain.MediaFile{
		Filename:   filename,
		FileURL:    res.URL,
		PublicID:   res.PublicID,
		FileType:   fileType,
		FileSize:   int64(len(data)),
		Folder:     folder,
		UploadedBy: uploaderID,
	}

	if err := m.repo.Create(file); err != nil {
		// compensate: the object exists in storage but no row references it
		if derr := m.uploader.Delete(ctx, res.PublicID); derr != nil {
			log.Printf("orphan cleanup failed for %s: %v", res.PublicID, derr)
		}
		return nil, fmt.Errorf("persist media metadata failed: %w", err)
	}

	return file, nil
}

func (m *mediaService) List(folder string, limit, offset int) ([]domain.MediaFile, error) {
	return m.repo.List(folder, limit, offset)
}

// Delete removes the metadata row first, then attempts the storage object.
// The two are independent failure domains: a storage failure is logged and
// not rolled back.
func (m *mediaService) Delete(ctx context.Context, id uint) error {
	file, err := m.repo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}

	if err := m.repo.Delete(id); err != nil {
		return err
	}

	if err := m.uploader.Delete(ctx, file.PublicID); err != nil {
		log.Printf("storage delete failed for %s: %v", file.PublicID, err)
	}
	return nil
}

func firstMessage(errs map[string]string) string {
	for _, msg := range errs {
		return msg
	}
	return "invalid file"
}

func detectFileType(filename string) domain.MediaFileType {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".jpg", ".jpeg", ".png", ".webp":
		return domain.MediaImage
	case ".mp4", ".mov", ".webm":
		return domain.MediaVideo
	default:
		return domain.MediaDocument
	}
}
