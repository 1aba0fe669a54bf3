package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/GlobalPath/cms_service/internal/domain"
	"github.com/GlobalPath/cms_service/internal/dto"
	"github.com/GlobalPath/cms_service/internal/helper"
	"github.com/GlobalPath/cms_service/internal/interfaces"
	"github.com/GlobalPath/cms_service/internal/repository"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type CareerService interface {
	Apply(ctx context.Context, input dto.JobApplicationInput, cvFilename string, cv []byte) (*domain.JobApplication, error)
	ListApplications(status string, limit, offset int) ([]domain.JobApplication, error)
	ListByCareer(careerID uint, limit, offset int) ([]domain.JobApplication, error)
	Review(id uint, input dto.JobApplicationReview) (*domain.JobApplication, error)
}

type careerService struct {
	repo     repository.JobApplicationRepository
	catalog  repository.CatalogRepository
	uploader interfaces.Uploader
	producer interfaces.ProducerHandler
}

func NewCareerService(
	repo repository.JobApplicationRepository,
	catalog repository.CatalogRepository,
	uploader interfaces.Uploader,
	producer interfaces.ProducerHandler,
) CareerService {
	return &careerService{
		repo:     repo,
		catalog:  catalog,
		uploader: uploader,
		producer: producer,
	}
}

// Apply validates the form and the CV before touching storage. The CV is
// uploaded first and the application row persisted second, so a stored cv_url
// always points at a real object; a row insert failure deletes the orphan.
func (c *careerService) Apply(ctx context.Context, input dto.JobApplicationInput, cvFilename string, cv []byte) (*domain.JobApplication, error) {
	if errs := helper.ValidateStruct(input); len(errs) > 0 {
		return nil, errors.New(firstMessage(errs))
	}
	if errs := helper.CVConstraint.ValidateFile(cvFilename, int64(len(cv))); len(errs) > 0 {
		return nil, errors.New(firstMessage(errs))
	}

	var career domain.Career
	if err := c.catalog.FindByID(&career, input.CareerID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.New("career opening not found")
		}
		return nil, err
	}
	if !career.IsPublished {
		return nil, errors.New("career opening not found")
	}

	objectName := uuid.NewString() + strings.ToLower(filepath.Ext(cvFilename))
	res, err := c.uploader.UploadBytes(ctx, "cv", objectName, cv)
	if err != nil {
		return nil, fmt.Errorf("cv upload failed: %w", err)
	}

	app := &domain.JobApplication{
		CareerID:       input.CareerID,
		ApplicantName:  input.ApplicantName,
		ApplicantEmail: input.ApplicantEmail,
		Phone:          input.Phone,
		CoverLetter:    input.CoverLetter,
		CVURL:          res.URL,
		Status:         domain.ApplicationPending,
	}

	if err := c.repo.Create(app); err != nil {
		_ = c.uploader.Delete(ctx, res.PublicID)
		return nil, fmt.Errorf("persist job application failed: %w", err)
	}

	if c.producer != nil {
		payload, _ := json.Marshal(dto.JobApplicationEvent{
			JobApplicationID: app.ID,
			CareerID:         app.CareerID,
			ApplicantName:    app.ApplicantName,
			ApplicantEmail:   app.ApplicantEmail,
		})
		_ = c.producer.PublishMessage([]byte(dto.EventJobApplicationSent), payload)
	}

	return app, nil
}

func (c *careerService) ListApplications(status string, limit, offset int) ([]domain.JobApplication, error) {
	st := domain.ApplicationStatus(status)
	if status != "" && !domain.ValidApplicationStatus(st) {
		return nil, errors.New("invalid status filter")
	}
	return c.repo.List(st, limit, offset)
}

func (c *careerService) ListByCareer(careerID uint, limit, offset int) ([]domain.JobApplication, error) {
	return c.repo.ListByCareer(careerID, limit, offset)
}

func (c *careerService) Review(id uint, input dto.JobApplicationReview) (*domain.JobApplication, error) {
	app, err := c.repo.FindByID(id)
	if err != nil || app == nil {
		return nil, errors.New("job application not found")
	}

	to := domain.ApplicationStatus(input.Status)
	if !app.Status.CanTransition(to) {
		return nil, errors.New("invalid transition from " + string(app.Status) + " to " + string(to))
	}

	if err := c.repo.SetStatus(id, to, input.Note); err != nil {
		return nil, err
	}
	app.Status = to
	if input.Note != "" {
		app.ReviewNote = &input.Note
	}
	return app, nil
}
