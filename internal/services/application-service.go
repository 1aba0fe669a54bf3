package services

import (
	"encoding/json"
	"errors"

	"github.com/GlobalPath/cms_service/internal/domain"
	"github.com/GlobalPath/cms_service/internal/dto"
	"github.com/GlobalPath/cms_service/internal/interfaces"
	"github.com/GlobalPath/cms_service/internal/repository"
)

type ApplicationService interface {
	Create(userID uint, input dto.ApplicationCreateRequest) (*domain.Application, error)
	ListMine(userID uint, limit, offset int) ([]domain.Application, error)
	List(status string, limit, offset int) ([]domain.Application, error)
	Decide(id uint, reviewerID uint, input dto.ApplicationDecision) (*domain.Application, error)
	Override(id uint, reviewerID uint, input dto.ApplicationOverride) (*domain.Application, error)
}

type applicationService struct {
	repo     repository.ApplicationRepository
	userRepo repository.UserRepository
	producer interfaces.ProducerHandler
}

func NewApplicationService(
	repo repository.ApplicationRepository,
	userRepo repository.UserRepository,
	producer interfaces.ProducerHandler,
) ApplicationService {
	return &applicationService{
		repo:     repo,
		userRepo: userRepo,
		producer: producer,
	}
}

func (a *applicationService) Create(userID uint, input dto.ApplicationCreateRequest) (*domain.Application, error) {
	if userID == 0 {
		return nil, errors.New("invalid user id")
	}
	if input.CourseID == nil && input.UniversityID == nil && input.DestinationID == nil {
		return nil, errors.New("application must reference a course, university or destination")
	}

	user, err := a.userRepo.FindUserById(userID)
	if err != nil || user == nil {
		return nil, errors.New("user not found")
	}

	app := &domain.Application{
		UserID:        userID,
		StudentEmail:  user.Email,
		CourseID:      input.CourseID,
		UniversityID:  input.UniversityID,
		DestinationID: input.DestinationID,
		Status:        domain.ApplicationPending,
	}

	if err := a.repo.Create(app); err != nil {
		return nil, err
	}

	if a.producer != nil {
		payload, _ := json.Marshal(dto.ApplicationSubmittedEvent{
			ApplicationID: app.ID,
			UserID:        userID,
			StudentEmail:  user.Email,
		})
		_ = a.producer.PublishMessage([]byte(dto.EventApplicationSubmitted), payload)
	}

	return app, nil
}

func (a *applicationService) ListMine(userID uint, limit, offset int) ([]domain.Application, error) {
	if userID == 0 {
		return nil, errors.New("invalid user id")
	}
	return a.repo.ListByUser(userID, limit, offset)
}

func (a *applicationService) List(status string, limit, offset int) ([]domain.Application, error) {
	st := domain.ApplicationStatus(status)
	if status != "" && !domain.ValidApplicationStatus(st) {
		return nil, errors.New("invalid status filter")
	}
	return a.repo.List(st, limit, offset)
}

// Decide moves an application along the forward transition table. A failed
// transition leaves the stored status untouched.
func (a *applicationService) Decide(id uint, reviewerID uint, input dto.ApplicationDecision) (*domain.Application, error) {
	app, err := a.repo.FindByID(id)
	if err != nil || app == nil {
		return nil, errors.New("application not found")
	}

	to := domain.ApplicationStatus(input.Status)
	if !app.Status.CanTransition(to) {
		return nil, errors.New("invalid transition from " + string(app.Status) + " to " + string(to))
	}

	if err := a.repo.UpdateStatus(id, to, reviewerID, input.Note); err != nil {
		return nil, err
	}
	app.Status = to

	a.publishDecision(app, input.Note)
	return app, nil
}

// Override is the explicit admin path that bypasses the transition table,
// including backward moves. It is never triggered by a derived computation.
func (a *applicationService) Override(id uint, reviewerID uint, input dto.ApplicationOverride) (*domain.Application, error) {
	app, err := a.repo.FindByID(id)
	if err != nil || app == nil {
		return nil, errors.New("application not found")
	}

	to := domain.ApplicationStatus(input.Status)
	if !domain.ValidApplicationStatus(to) {
		return nil, errors.New("invalid status")
	}

	if err := a.repo.UpdateStatus(id, to, reviewerID, input.Note); err != nil {
		return nil, err
	}
	app.Status = to

	a.publishDecision(app, input.Note)
	return app, nil
}

func (a *applicationService) publishDecision(app *domain.Application, note string) {
	if a.producer == nil {
		return
	}
	payload, _ := json.Marshal(dto.ApplicationDecidedEvent{
		ApplicationID: app.ID,
		UserID:        app.UserID,
		Status:        string(app.Status),
		Note:          note,
	})
	_ = a.producer.PublishMessage([]byte(dto.EventApplicationDecided), payload)
}
