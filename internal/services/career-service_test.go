package services

import (
	"context"
	"testing"

	"github.com/GlobalPath/cms_service/internal/domain"
	"github.com/GlobalPath/cms_service/internal/dto"
	"github.com/GlobalPath/cms_service/internal/repository"
	"gorm.io/gorm"
)

func newCareerSvc(t *testing.T) (CareerService, *gorm.DB, *fakeUploader, *fakeProducer) {
	db := newTestDB(t)
	up := &fakeUploader{}
	producer := &fakeProducer{}
	svc := NewCareerService(
		repository.NewJobApplicationRepository(db),
		repository.NewCatalogRepository(db),
		up,
		producer,
	)
	return svc, db, up, producer
}

func seedCareer(t *testing.T, db *gorm.DB, published bool) *domain.Career {
	t.Helper()
	c := &domain.Career{Title: "Education Counselor"}
	c.Slug = Slug(c.Title)
	c.IsPublished = published
	if err := db.Create(c).Error; err != nil {
		t.Fatal(err)
	}
	return c
}

func validJobApplication(careerID uint) dto.JobApplicationInput {
	return dto.JobApplicationInput{
		CareerID:       careerID,
		ApplicantName:  "Karim Ahmed",
		ApplicantEmail: "karim@example.com",
	}
}

func TestApplyUploadsCVThenPersists(t *testing.T) {
	svc, db, up, producer := newCareerSvc(t)
	career := seedCareer(t, db, true)

	app, err := svc.Apply(context.Background(), validJobApplication(career.ID), "cv.pdf", []byte("%PDF-1.4"))
	if err != nil {
		t.Fatal(err)
	}
	if len(up.uploads) != 1 {
		t.Fatalf("cv uploads = %d, want 1", len(up.uploads))
	}
	if app.CVURL == "" {
		t.Fatal("persisted application has no cv_url")
	}
	if app.Status != domain.ApplicationPending {
		t.Fatalf("status = %s, want pending", app.Status)
	}
	if !producer.published(dto.EventJobApplicationSent) {
		t.Fatal("job_application.received event not published")
	}
}

func TestApplyInvalidCVNeverTouchesStorage(t *testing.T) {
	svc, db, up, _ := newCareerSvc(t)
	career := seedCareer(t, db, true)

	// wrong extension
	if _, err := svc.Apply(context.Background(), validJobApplication(career.ID), "cv.exe", []byte("MZ")); err == nil {
		t.Fatal("expected extension error")
	}
	// over the 5MB cap
	big := make([]byte, 6*1024*1024)
	if _, err := svc.Apply(context.Background(), validJobApplication(career.ID), "cv.pdf", big); err == nil {
		t.Fatal("expected size error")
	}
	// invalid form fields
	if _, err := svc.Apply(context.Background(), dto.JobApplicationInput{CareerID: career.ID}, "cv.pdf", []byte("%PDF")); err == nil {
		t.Fatal("expected form validation error")
	}

	if len(up.uploads) != 0 {
		t.Fatalf("storage called %d times for rejected submissions", len(up.uploads))
	}
	var count int64
	db.Model(&domain.JobApplication{}).Count(&count)
	if count != 0 {
		t.Fatalf("rows = %d, want 0", count)
	}
}

func TestApplyToUnpublishedCareerRejected(t *testing.T) {
	svc, db, up, _ := newCareerSvc(t)
	career := seedCareer(t, db, false)

	if _, err := svc.Apply(context.Background(), validJobApplication(career.ID), "cv.pdf", []byte("%PDF")); err == nil {
		t.Fatal("applying to a draft opening should fail")
	}
	if len(up.uploads) != 0 {
		t.Fatal("storage called for a rejected application")
	}
}

func TestReviewFollowsTransitionTable(t *testing.T) {
	svc, db, _, _ := newCareerSvc(t)
	career := seedCareer(t, db, true)

	app, err := svc.Apply(context.Background(), validJobApplication(career.ID), "cv.pdf", []byte("%PDF"))
	if err != nil {
		t.Fatal(err)
	}

	if _, err := svc.Review(app.ID, dto.JobApplicationReview{Status: "approved"}); err == nil {
		t.Fatal("pending -> approved should be rejected")
	}
	if _, err := svc.Review(app.ID, dto.JobApplicationReview{Status: "under_review"}); err != nil {
		t.Fatal(err)
	}
	reviewed, err := svc.Review(app.ID, dto.JobApplicationReview{Status: "rejected", Note: "role filled"})
	if err != nil {
		t.Fatal(err)
	}
	if reviewed.Status != domain.ApplicationRejected {
		t.Fatalf("status = %s, want rejected", reviewed.Status)
	}
}
