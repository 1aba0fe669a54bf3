package services

import (
	"errors"
	"fmt"
	"log"

	"github.com/GlobalPath/cms_service/internal/domain"
	"github.com/GlobalPath/cms_service/internal/dto"
	"github.com/GlobalPath/cms_service/internal/repository"
	"gorm.io/gorm"
)

var ErrNotificationForbidden = errors.New("notification does not belong to the viewer")

type NotificationService interface {
	List(viewerID uint, category string, unreadOnly bool, limit, offset int) ([]dto.NotificationResponse, error)
	ListAdmin(category string, limit, offset int) ([]dto.NotificationResponse, error)
	MarkRead(viewerID uint, id uint) error
	MarkAllRead(viewerID uint, allUsers bool) (*dto.MarkAllReadResponse, error)
	Remove(viewerID uint, id uint, isStaff bool) error
	Notify(n *domain.Notification) error
}

type notificationService struct {
	repo repository.NotificationRepository
}

func NewNotificationService(repo repository.NotificationRepository) NotificationService {
	return &notificationService{repo: repo}
}

func (s *notificationService) List(viewerID uint, category string, unreadOnly bool, limit, offset int) ([]dto.NotificationResponse, error) {
	if viewerID == 0 {
		return nil, errors.New("invalid viewer")
	}

	cat := domain.NotificationCategory(category)
	if category != "" && !domain.ValidNotificationCategory(cat) {
		return nil, errors.New("invalid category filter")
	}

	rows, err := s.repo.ListByUser(viewerID, cat, unreadOnly, limit, offset)
	if err != nil {
		return nil, err
	}
	return toNotificationResponses(rows, false), nil
}

// ListAdmin is the cross-user triage view: no viewer scoping, user_id
// included in each row.
func (s *notificationService) ListAdmin(category string, limit, offset int) ([]dto.NotificationResponse, error) {
	cat := domain.NotificationCategory(category)
	if category != "" && !domain.ValidNotificationCategory(cat) {
		return nil, errors.New("invalid category filter")
	}

	rows, err := s.repo.ListAll(cat, limit, offset)
	if err != nil {
		return nil, err
	}
	return toNotificationResponses(rows, true), nil
}

// MarkRead is idempotent: re-reading an already-read notification is a no-op
// success.
func (s *notificationService) MarkRead(viewerID uint, id uint) error {
	notif, err := s.repo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}
	if notif.UserID != viewerID {
		return ErrNotificationForbidden
	}
	if notif.IsRead {
		return nil
	}
	return s.repo.MarkRead(id)
}

// MarkAllRead updates every unread row for the viewer (or for all users in
// the admin variant). Rows that fail are collected and reported, not
// swallowed.
func (s *notificationService) MarkAllRead(viewerID uint, allUsers bool) (*dto.MarkAllReadResponse, error) {
	scope := viewerID
	if allUsers {
		scope = 0
	}

	ids, err := s.repo.ListUnreadIDs(scope)
	if err != nil {
		return nil, err
	}

	out := &dto.MarkAllReadResponse{}
	for _, id := range ids {
		if err := s.repo.MarkRead(id); err != nil {
			log.Printf("mark read %d failed: %v", id, err)
			out.Failed = append(out.Failed, id)
			continue
		}
		out.Updated++
	}

	if len(out.Failed) > 0 {
		return out, fmt.Errorf("%d of %d notifications could not be updated", len(out.Failed), len(ids))
	}
	return out, nil
}

// Remove deletes permanently; there is no undo.
func (s *notificationService) Remove(viewerID uint, id uint, isStaff bool) error {
	notif, err := s.repo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}
	if notif.UserID != viewerID && !isStaff {
		return ErrNotificationForbidden
	}
	return s.repo.Delete(id)
}

func (s *notificationService) Notify(n *domain.Notification) error {
	return s.repo.Create(n)
}

func toNotificationResponses(rows []domain.Notification, includeUser bool) []dto.NotificationResponse {
	out := make([]dto.NotificationResponse, 0, len(rows))
	for _, n := range rows {
		r := dto.NotificationResponse{
			ID:             n.ID,
			Title:          n.Title,
			Message:        n.Message,
			Type:           string(n.Type),
			Category:       string(n.Category),
			ReferenceID:    n.ReferenceID,
			ReferenceTable: n.ReferenceTable,
			IsRead:         n.IsRead,
			CreatedAt:      n.CreatedAt.Format("2006-01-02T15:04:05Z07:00"),
		}
		if includeUser {
			r.UserID = n.UserID
		}
		out = append(out, r)
	}
	return out
}
