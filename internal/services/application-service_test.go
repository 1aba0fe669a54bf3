package services

import (
	"testing"

	"github.com/GlobalPath/cms_service/internal/domain"
	"github.com/GlobalPath/cms_service/internal/dto"
	"github.com/GlobalPath/cms_service/internal/repository"
	"gorm.io/gorm"
)

func newApplicationSvc(t *testing.T) (ApplicationService, *gorm.DB, *domain.User, *fakeProducer) {
	db := newTestDB(t)
	user := seedStudent(t, db)
	producer := &fakeProducer{}
	svc := NewApplicationService(
		repository.NewApplicationRepository(db),
		repository.NewUserRepository(db),
		producer,
	)
	return svc, db, user, producer
}

func uintPtr(v uint) *uint { return &v }

func TestApplicationCreatePublishesEvent(t *testing.T) {
	svc, _, user, producer := newApplicationSvc(t)

	app, err := svc.Create(user.ID, dto.ApplicationCreateRequest{CourseID: uintPtr(3)})
	if err != nil {
		t.Fatal(err)
	}
	if app.Status != domain.ApplicationPending {
		t.Fatalf("new application status = %s, want pending", app.Status)
	}
	if app.StudentEmail != user.Email {
		t.Fatalf("student email = %s", app.StudentEmail)
	}
	if !producer.published(dto.EventApplicationSubmitted) {
		t.Fatal("application.submitted event not published")
	}
}

func TestApplicationCreateNeedsATarget(t *testing.T) {
	svc, _, user, _ := newApplicationSvc(t)

	if _, err := svc.Create(user.ID, dto.ApplicationCreateRequest{}); err == nil {
		t.Fatal("application without course/university/destination should fail")
	}
}

func TestDecideFollowsTransitionTable(t *testing.T) {
	svc, _, user, producer := newApplicationSvc(t)

	app, err := svc.Create(user.ID, dto.ApplicationCreateRequest{CourseID: uintPtr(3)})
	if err != nil {
		t.Fatal(err)
	}

	// skipping under_review is blocked
	if _, err := svc.Decide(app.ID, 99, dto.ApplicationDecision{Status: "approved"}); err == nil {
		t.Fatal("pending -> approved should be rejected")
	}

	if _, err := svc.Decide(app.ID, 99, dto.ApplicationDecision{Status: "under_review"}); err != nil {
		t.Fatal(err)
	}
	decided, err := svc.Decide(app.ID, 99, dto.ApplicationDecision{Status: "approved", Note: "strong IELTS"})
	if err != nil {
		t.Fatal(err)
	}
	if decided.Status != domain.ApplicationApproved {
		t.Fatalf("status = %s, want approved", decided.Status)
	}
	if !producer.published(dto.EventApplicationDecided) {
		t.Fatal("application.decided event not published")
	}
}

func TestFailedDecisionLeavesStatusUntouched(t *testing.T) {
	svc, db, user, _ := newApplicationSvc(t)

	app, err := svc.Create(user.ID, dto.ApplicationCreateRequest{CourseID: uintPtr(3)})
	if err != nil {
		t.Fatal(err)
	}
	if _, err := svc.Decide(app.ID, 99, dto.ApplicationDecision{Status: "rejected"}); err == nil {
		t.Fatal("pending -> rejected should be rejected")
	}

	var stored domain.Application
	if err := db.First(&stored, app.ID).Error; err != nil {
		t.Fatal(err)
	}
	if stored.Status != domain.ApplicationPending {
		t.Fatalf("stored status = %s, want pending", stored.Status)
	}
}

func TestOverrideMovesBackward(t *testing.T) {
	svc, _, user, _ := newApplicationSvc(t)

	app, err := svc.Create(user.ID, dto.ApplicationCreateRequest{UniversityID: uintPtr(8)})
	if err != nil {
		t.Fatal(err)
	}
	if _, err := svc.Decide(app.ID, 99, dto.ApplicationDecision{Status: "under_review"}); err != nil {
		t.Fatal(err)
	}
	if _, err := svc.Decide(app.ID, 99, dto.ApplicationDecision{Status: "rejected"}); err != nil {
		t.Fatal(err)
	}

	// the explicit admin path may reverse a decision
	reopened, err := svc.Override(app.ID, 99, dto.ApplicationOverride{
		Status: "under_review",
		Note:   "re-opened after appeal",
	})
	if err != nil {
		t.Fatal(err)
	}
	if reopened.Status != domain.ApplicationUnderReview {
		t.Fatalf("status = %s, want under_review", reopened.Status)
	}
}
