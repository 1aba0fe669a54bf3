package services

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/GlobalPath/cms_service/internal/clients/recaptcha"
	"github.com/GlobalPath/cms_service/internal/domain"
	"github.com/GlobalPath/cms_service/internal/dto"
	"github.com/GlobalPath/cms_service/internal/helper"
	"github.com/GlobalPath/cms_service/internal/interfaces"
	"github.com/GlobalPath/cms_service/internal/repository"
)

type ContactService interface {
	SubmitContact(ctx context.Context, input dto.ContactRequest) (*domain.ContactMessage, error)
	ListContacts(limit, offset int) ([]domain.ContactMessage, error)
	SubmitCounselling(ctx context.Context, input dto.CounsellingRequestInput) (*domain.CounsellingRequest, error)
	ListCounselling(status string, limit, offset int) ([]domain.CounsellingRequest, error)
	SetCounsellingStatus(id uint, input dto.RegistrationStatusUpdate) (*domain.CounsellingRequest, error)
}

type contactService struct {
	repo      repository.ContactRepository
	recaptcha *recaptcha.Client
	producer  interfaces.ProducerHandler
}

func NewContactService(
	repo repository.ContactRepository,
	rc *recaptcha.Client,
	producer interfaces.ProducerHandler,
) ContactService {
	return &contactService{
		repo:      repo,
		recaptcha: rc,
		producer:  producer,
	}
}

// SubmitContact accepts a public contact form post. Validation and the
// recaptcha check both run before the insert, so a rejected post leaves no
// row behind.
func (c *contactService) SubmitContact(ctx context.Context, input dto.ContactRequest) (*domain.ContactMessage, error) {
	if errs := helper.ValidateStruct(input); len(errs) > 0 {
		return nil, errors.New(firstMessage(errs))
	}
	if err := c.verify(ctx, input.RecaptchaToken); err != nil {
		return nil, err
	}

	msg := &domain.ContactMessage{
		Name:    input.Name,
		Email:   input.Email,
		Phone:   input.Phone,
		Subject: input.Subject,
		Message: input.Message,
	}
	if err := c.repo.CreateContact(msg); err != nil {
		return nil, err
	}

	if c.producer != nil {
		payload, _ := json.Marshal(dto.ContactReceivedEvent{
			ContactID: msg.ID,
			Name:      msg.Name,
			Email:     msg.Email,
			Subject:   msg.Subject,
		})
		_ = c.producer.PublishMessage([]byte(dto.EventContactReceived), payload)
	}

	return msg, nil
}

func (c *contactService) ListContacts(limit, offset int) ([]domain.ContactMessage, error) {
	return c.repo.ListContacts(limit, offset)
}

func (c *contactService) SubmitCounselling(ctx context.Context, input dto.CounsellingRequestInput) (*domain.CounsellingRequest, error) {
	if errs := helper.ValidateStruct(input); len(errs) > 0 {
		return nil, errors.New(firstMessage(errs))
	}
	if err := c.verify(ctx, input.RecaptchaToken); err != nil {
		return nil, err
	}

	req := &domain.CounsellingRequest{
		Name:             input.Name,
		Email:            input.Email,
		Phone:            input.Phone,
		PreferredCountry: input.PreferredCountry,
		StudyLevel:       input.StudyLevel,
		Message:          input.Message,
		Status:           domain.RegistrationPending,
	}
	if err := c.repo.CreateCounselling(req); err != nil {
		return nil, err
	}

	if c.producer != nil {
		payload, _ := json.Marshal(dto.CounsellingRequestedEvent{
			RequestID:        req.ID,
			Name:             req.Name,
			Email:            req.Email,
			PreferredCountry: req.PreferredCountry,
		})
		_ = c.producer.PublishMessage([]byte(dto.EventCounsellingRequested), payload)
	}

	return req, nil
}

func (c *contactService) ListCounselling(status string, limit, offset int) ([]domain.CounsellingRequest, error) {
	st := domain.RegistrationStatus(status)
	if status != "" && st != domain.RegistrationPending &&
		st != domain.RegistrationConfirmed && st != domain.RegistrationCancelled {
		return nil, errors.New("invalid status filter")
	}
	return c.repo.ListCounselling(st, limit, offset)
}

func (c *contactService) SetCounsellingStatus(id uint, input dto.RegistrationStatusUpdate) (*domain.CounsellingRequest, error) {
	req, err := c.repo.FindCounselling(id)
	if err != nil || req == nil {
		return nil, errors.New("counselling request not found")
	}

	to := domain.RegistrationStatus(input.Status)
	if !req.Status.CanTransition(to) {
		return nil, errors.New("invalid transition from " + string(req.Status) + " to " + string(to))
	}

	if err := c.repo.SetCounsellingStatus(id, to); err != nil {
		return nil, err
	}
	req.Status = to
	return req, nil
}

func (c *contactService) verify(ctx context.Context, token string) error {
	return c.recaptcha.Verify(ctx, token)
}
