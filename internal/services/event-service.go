package services

import (
	"encoding/json"
	"errors"
	"strings"

	"github.com/GlobalPath/cms_service/internal/domain"
	"github.com/GlobalPath/cms_service/internal/dto"
	"github.com/GlobalPath/cms_service/internal/helper"
	"github.com/GlobalPath/cms_service/internal/interfaces"
	"github.com/GlobalPath/cms_service/internal/repository"
	"gorm.io/gorm"
)

type EventService interface {
	Register(eventID uint, input dto.EventRegistrationInput) (*domain.EventRegistration, error)
	ListRegistrations(eventID uint, limit, offset int) ([]domain.EventRegistration, error)
	SetRegistrationStatus(id uint, input dto.RegistrationStatusUpdate) (*domain.EventRegistration, error)
	ExportRegistrationsCSV(eventID uint) ([]byte, error)
}

type eventService struct {
	regs     repository.RegistrationRepository
	catalog  repository.CatalogRepository
	producer interfaces.ProducerHandler
}

func NewEventService(
	regs repository.RegistrationRepository,
	catalog repository.CatalogRepository,
	producer interfaces.ProducerHandler,
) EventService {
	return &eventService{
		regs:     regs,
		catalog:  catalog,
		producer: producer,
	}
}

func (e *eventService) Register(eventID uint, input dto.EventRegistrationInput) (*domain.EventRegistration, error) {
	if errs := helper.ValidateStruct(input); len(errs) > 0 {
		return nil, errors.New(firstMessage(errs))
	}

	var event domain.Event
	if err := e.catalog.FindByID(&event, eventID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.New("event not found")
		}
		return nil, err
	}
	if !event.IsPublished {
		return nil, errors.New("event not found")
	}

	reg := &domain.EventRegistration{
		EventID: eventID,
		Name:    input.Name,
		Email:   input.Email,
		Phone:   input.Phone,
		Message: input.Message,
		Status:  domain.RegistrationPending,
	}
	if err := e.regs.Create(reg); err != nil {
		return nil, err
	}

	if e.producer != nil {
		payload, _ := json.Marshal(dto.EventRegistrationEvent{
			RegistrationID: reg.ID,
			EventID:        eventID,
			Name:           reg.Name,
			Email:          reg.Email,
		})
		_ = e.producer.PublishMessage([]byte(dto.EventEventRegistration), payload)
	}

	return reg, nil
}

func (e *eventService) ListRegistrations(eventID uint, limit, offset int) ([]domain.EventRegistration, error) {
	return e.regs.ListByEvent(eventID, limit, offset)
}

func (e *eventService) SetRegistrationStatus(id uint, input dto.RegistrationStatusUpdate) (*domain.EventRegistration, error) {
	reg, err := e.regs.FindByID(id)
	if err != nil || reg == nil {
		return nil, errors.New("registration not found")
	}

	to := domain.RegistrationStatus(input.Status)
	if !reg.Status.CanTransition(to) {
		return nil, errors.New("invalid transition from " + string(reg.Status) + " to " + string(to))
	}

	if err := e.regs.SetStatus(id, to); err != nil {
		return nil, err
	}
	reg.Status = to
	return reg, nil
}

// ExportRegistrationsCSV renders one header row plus one row per
// registration. Commas inside field values are replaced with semicolons so
// every row keeps exactly one column per header.
func (e *eventService) ExportRegistrationsCSV(eventID uint) ([]byte, error) {
	regs, err := e.regs.ListByEvent(eventID, -1, 0)
	if err != nil {
		return nil, err
	}

	var b strings.Builder
	b.WriteString("Name,Email,Phone,Message,Status,Registered At\n")
	for _, r := range regs {
		row := []string{
			csvField(r.Name),
			csvField(r.Email),
			csvField(r.Phone),
			csvField(r.Message),
			csvField(string(r.Status)),
			r.CreatedAt.Format("2006-01-02 15:04"),
		}
		b.WriteString(strings.Join(row, ","))
		b.WriteByte('\n')
	}
	return []byte(b.String()), nil
}

func csvField(v string) string {
	return strings.ReplaceAll(v, ",", ";")
}
