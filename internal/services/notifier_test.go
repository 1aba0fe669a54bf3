package services

import (
	"encoding/json"
	"testing"

	"github.com/GlobalPath/cms_service/internal/domain"
	"github.com/GlobalPath/cms_service/internal/dto"
	"github.com/GlobalPath/cms_service/internal/repository"
	"gorm.io/gorm"
)

func newNotifier(t *testing.T) (*Notifier, *gorm.DB) {
	db := newTestDB(t)
	return NewNotifier(
		repository.NewNotificationRepository(db),
		repository.NewUserRepository(db),
	), db
}

func seedStaff(t *testing.T, db *gorm.DB) []domain.User {
	t.Helper()
	users := []domain.User{
		{Email: "admin@globalpath.example", Role: domain.RoleAdmin},
		{Email: "counselor@globalpath.example", Role: domain.RoleCounselor},
		{Email: "student@globalpath.example", Role: domain.RoleStudent},
	}
	if err := db.Create(&users).Error; err != nil {
		t.Fatal(err)
	}
	return users
}

func TestNotifierWelcomesNewUser(t *testing.T) {
	notifier, db := newNotifier(t)

	payload, _ := json.Marshal(dto.UserRegisteredEvent{UserID: 42, Email: "amina@example.com", Role: "student"})
	if err := notifier.HandleMessage(dto.EventUserRegistered, string(payload)); err != nil {
		t.Fatal(err)
	}

	var n domain.Notification
	if err := db.Where("user_id = ?", 42).First(&n).Error; err != nil {
		t.Fatal(err)
	}
	if n.Category != domain.CategorySystem || n.Type != domain.NotifSuccess {
		t.Fatalf("category=%s type=%s", n.Category, n.Type)
	}
}

func TestNotifierFansContactOutToStaffOnly(t *testing.T) {
	notifier, db := newNotifier(t)
	seedStaff(t, db)

	payload, _ := json.Marshal(dto.ContactReceivedEvent{ContactID: 9, Name: "Karim", Email: "karim@example.com"})
	if err := notifier.HandleMessage(dto.EventContactReceived, string(payload)); err != nil {
		t.Fatal(err)
	}

	var rows []domain.Notification
	if err := db.Find(&rows).Error; err != nil {
		t.Fatal(err)
	}
	// one row per staff user; the student gets nothing
	if len(rows) != 2 {
		t.Fatalf("rows = %d, want 2", len(rows))
	}
	for _, n := range rows {
		if n.Category != domain.CategoryContact {
			t.Fatalf("category = %s", n.Category)
		}
	}
}

func TestNotifierRoutesDecisionToStudent(t *testing.T) {
	notifier, db := newNotifier(t)
	seedStaff(t, db)

	payload, _ := json.Marshal(dto.ApplicationDecidedEvent{
		ApplicationID: 3, UserID: 42, Status: "rejected", Note: "missing transcript",
	})
	if err := notifier.HandleMessage(dto.EventApplicationDecided, string(payload)); err != nil {
		t.Fatal(err)
	}

	var rows []domain.Notification
	if err := db.Find(&rows).Error; err != nil {
		t.Fatal(err)
	}
	if len(rows) != 1 || rows[0].UserID != 42 {
		t.Fatalf("decision should notify only the student: %+v", rows)
	}
	if rows[0].Type != domain.NotifError {
		t.Fatalf("rejected decision type = %s, want error", rows[0].Type)
	}
	if rows[0].Message != "Your application status changed to rejected. Note: missing transcript" {
		t.Fatalf("message = %q", rows[0].Message)
	}
}

func TestNotifierSkipsUnknownEvents(t *testing.T) {
	notifier, db := newNotifier(t)

	if err := notifier.HandleMessage("billing.invoice", "{}"); err != nil {
		t.Fatalf("unknown event should be skipped, got %v", err)
	}

	var count int64
	db.Model(&domain.Notification{}).Count(&count)
	if count != 0 {
		t.Fatal("unknown event created rows")
	}
}
