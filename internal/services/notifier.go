package services

import (
	"encoding/json"
	"fmt"
	"log"

	"github.com/GlobalPath/cms_service/internal/domain"
	"github.com/GlobalPath/cms_service/internal/dto"
	"github.com/GlobalPath/cms_service/internal/repository"
)

// Notifier consumes domain events from the queue and materializes
// notification rows for their audience. It is the single writer of the
// notification feed; screens only read, mark read, or delete.
type Notifier struct {
	notifRepo repository.NotificationRepository
	userRepo  repository.UserRepository
}

func NewNotifier(notifRepo repository.NotificationRepository, userRepo repository.UserRepository) *Notifier {
	return &Notifier{
		notifRepo: notifRepo,
		userRepo:  userRepo,
	}
}

func (n *Notifier) HandleMessage(key, value string) error {
	switch key {
	case dto.EventUserRegistered:
		var ev dto.UserRegisteredEvent
		if err := json.Unmarshal([]byte(value), &ev); err != nil {
			return err
		}
		return n.notifRepo.Create(&domain.Notification{
			UserID:         ev.UserID,
			Title:          "Welcome to GlobalPath",
			Message:        "Your account was created. Complete your profile to get started.",
			Type:           domain.NotifSuccess,
			Category:       domain.CategorySystem,
			ReferenceID:    &ev.UserID,
			ReferenceTable: "users",
		})

	case dto.EventProfileSubmitted:
		var ev dto.ProfileSubmittedEvent
		if err := json.Unmarshal([]byte(value), &ev); err != nil {
			return err
		}
		return n.fanOutToStaff(
			"Student profile submitted",
			fmt.Sprintf("%s submitted their profile for review.", ev.Email),
			domain.NotifInfo, domain.CategoryApplication,
			&ev.UserID, "student_profiles",
		)

	case dto.EventApplicationSubmitted:
		var ev dto.ApplicationSubmittedEvent
		if err := json.Unmarshal([]byte(value), &ev); err != nil {
			return err
		}
		return n.fanOutToStaff(
			"New application",
			fmt.Sprintf("%s submitted a new application.", ev.StudentEmail),
			domain.NotifInfo, domain.CategoryApplication,
			&ev.ApplicationID, "applications",
		)

	case dto.EventApplicationDecided:
		var ev dto.ApplicationDecidedEvent
		if err := json.Unmarshal([]byte(value), &ev); err != nil {
			return err
		}
		typ := domain.NotifInfo
		switch ev.Status {
		case string(domain.ApplicationApproved):
			typ = domain.NotifSuccess
		case string(domain.ApplicationRejected):
			typ = domain.NotifError
		}
		msg := "Your application status changed to " + ev.Status + "."
		if ev.Note != "" {
			msg += " Note: " + ev.Note
		}
		return n.notifRepo.Create(&domain.Notification{
			UserID:         ev.UserID,
			Title:          "Application update",
			Message:        msg,
			Type:           typ,
			Category:       domain.CategoryApplication,
			ReferenceID:    &ev.ApplicationID,
			ReferenceTable: "applications",
		})

	case dto.EventContactReceived:
		var ev dto.ContactReceivedEvent
		if err := json.Unmarshal([]byte(value), &ev); err != nil {
			return err
		}
		return n.fanOutToStaff(
			"New contact message",
			fmt.Sprintf("%s (%s) sent a message: %s", ev.Name, ev.Email, ev.Subject),
			domain.NotifInfo, domain.CategoryContact,
			&ev.ContactID, "contact_messages",
		)

	case dto.EventCounsellingRequested:
		var ev dto.CounsellingRequestedEvent
		if err := json.Unmarshal([]byte(value), &ev); err != nil {
			return err
		}
		return n.fanOutToStaff(
			"Counselling request",
			fmt.Sprintf("%s requested counselling for %s.", ev.Name, ev.PreferredCountry),
			domain.NotifInfo, domain.CategoryCounselling,
			&ev.RequestID, "counselling_requests",
		)

	case dto.EventJobApplicationSent:
		var ev dto.JobApplicationEvent
		if err := json.Unmarshal([]byte(value), &ev); err != nil {
			return err
		}
		return n.fanOutToStaff(
			"New job application",
			fmt.Sprintf("%s applied for a position.", ev.ApplicantName),
			domain.NotifInfo, domain.CategoryJobApplication,
			&ev.JobApplicationID, "job_applications",
		)

	case dto.EventEventRegistration:
		var ev dto.EventRegistrationEvent
		if err := json.Unmarshal([]byte(value), &ev); err != nil {
			return err
		}
		return n.fanOutToStaff(
			"New event registration",
			fmt.Sprintf("%s registered for an event.", ev.Name),
			domain.NotifInfo, domain.CategoryGeneral,
			&ev.RegistrationID, "event_registrations",
		)

	default:
		log.Printf("notifier: unknown event key %q - skipped", key)
		return nil
	}
}

// fanOutToStaff writes one row per staff user. A failed row is logged and
// the fan-out continues; the first error is reported after the loop.
func (n *Notifier) fanOutToStaff(title, message string, typ domain.NotificationType, cat domain.NotificationCategory, refID *uint, refTable string) error {
	staff, err := n.userRepo.ListStaff()
	if err != nil {
		return err
	}

	var firstErr error
	for _, u := range staff {
		err := n.notifRepo.Create(&domain.Notification{
			UserID:         u.ID,
			Title:          title,
			Message:        message,
			Type:           typ,
			Category:       cat,
			ReferenceID:    refID,
			ReferenceTable: refTable,
		})
		if err != nil {
			log.Printf("notifier: create for user %d failed: %v", u.ID, err)
			if firstErr == nil {
				firstErr = err
			}
		}
	}
	return firstErr
}
