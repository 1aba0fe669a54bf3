package services

import (
	"strings"
	"testing"

	"github.com/GlobalPath/cms_service/internal/domain"
	"github.com/GlobalPath/cms_service/internal/dto"
	"github.com/GlobalPath/cms_service/internal/repository"
	"gorm.io/gorm"
)

func newEventSvc(t *testing.T) (EventService, *gorm.DB, *fakeProducer) {
	db := newTestDB(t)
	producer := &fakeProducer{}
	svc := NewEventService(
		repository.NewRegistrationRepository(db),
		repository.NewCatalogRepository(db),
		producer,
	)
	return svc, db, producer
}

func seedEvent(t *testing.T, db *gorm.DB, published bool) *domain.Event {
	t.Helper()
	ev := &domain.Event{Title: "Study Abroad Expo"}
	ev.Slug = Slug(ev.Title)
	ev.IsPublished = published
	if err := db.Create(ev).Error; err != nil {
		t.Fatal(err)
	}
	return ev
}

func TestRegisterOnPublishedEvent(t *testing.T) {
	svc, db, producer := newEventSvc(t)
	ev := seedEvent(t, db, true)

	reg, err := svc.Register(ev.ID, dto.EventRegistrationInput{
		Name:  "Karim Ahmed",
		Email: "karim@example.com",
	})
	if err != nil {
		t.Fatal(err)
	}
	if reg.Status != domain.RegistrationPending {
		t.Fatalf("new registration status = %s, want pending", reg.Status)
	}
	if !producer.published(dto.EventEventRegistration) {
		t.Fatal("event.registration event not published")
	}
}

func TestRegisterOnDraftEventRejected(t *testing.T) {
	svc, db, _ := newEventSvc(t)
	ev := seedEvent(t, db, false)

	if _, err := svc.Register(ev.ID, dto.EventRegistrationInput{
		Name:  "Karim Ahmed",
		Email: "karim@example.com",
	}); err == nil {
		t.Fatal("registering on a draft event should fail")
	}
}

func TestRegistrationStatusTransitions(t *testing.T) {
	svc, db, _ := newEventSvc(t)
	ev := seedEvent(t, db, true)

	reg, err := svc.Register(ev.ID, dto.EventRegistrationInput{Name: "Karim", Email: "karim@example.com"})
	if err != nil {
		t.Fatal(err)
	}

	if _, err := svc.SetRegistrationStatus(reg.ID, dto.RegistrationStatusUpdate{Status: "confirmed"}); err != nil {
		t.Fatal(err)
	}
	cancelled, err := svc.SetRegistrationStatus(reg.ID, dto.RegistrationStatusUpdate{Status: "cancelled"})
	if err != nil {
		t.Fatal(err)
	}
	if cancelled.Status != domain.RegistrationCancelled {
		t.Fatalf("status = %s, want cancelled", cancelled.Status)
	}

	// cancelled is terminal
	if _, err := svc.SetRegistrationStatus(reg.ID, dto.RegistrationStatusUpdate{Status: "confirmed"}); err == nil {
		t.Fatal("cancelled -> confirmed should be rejected")
	}
}

func TestExportRegistrationsCSV(t *testing.T) {
	svc, db, _ := newEventSvc(t)
	ev := seedEvent(t, db, true)

	for _, r := range []dto.EventRegistrationInput{
		{Name: "Alice, Jr", Email: "alice@example.com", Message: "please call, after 5pm"},
		{Name: "Bob", Email: "bob@example.com"},
		{Name: "Carol", Email: "carol@example.com", Message: "bringing a guest"},
	} {
		if _, err := svc.Register(ev.ID, r); err != nil {
			t.Fatal(err)
		}
	}

	out, err := svc.ExportRegistrationsCSV(ev.ID)
	if err != nil {
		t.Fatal(err)
	}

	lines := strings.Split(strings.TrimRight(string(out), "\n"), "\n")
	if len(lines) != 4 {
		t.Fatalf("csv has %d lines, want header + 3 rows", len(lines))
	}
	if lines[0] != "Name,Email,Phone,Message,Status,Registered At" {
		t.Fatalf("header = %q", lines[0])
	}
	// commas inside a field become semicolons so the column count is stable
	if !strings.HasPrefix(lines[1], "Alice; Jr,alice@example.com,,please call; after 5pm,") {
		t.Fatalf("row 1 = %q", lines[1])
	}
	if !strings.Contains(lines[3], ",bringing a guest,") {
		t.Fatalf("row 3 = %q", lines[3])
	}
	for i, line := range lines {
		if got := strings.Count(line, ","); got != 5 {
			t.Errorf("line %d has %d commas, want 5: %q", i, got, line)
		}
	}
}

func TestExportEmptyEventHasOnlyHeader(t *testing.T) {
	svc, db, _ := newEventSvc(t)
	ev := seedEvent(t, db, true)

	out, err := svc.ExportRegistrationsCSV(ev.ID)
	if err != nil {
		t.Fatal(err)
	}
	if string(out) != "Name,Email,Phone,Message,Status,Registered At\n" {
		t.Fatalf("empty export = %q", out)
	}
}
