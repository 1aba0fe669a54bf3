package services

import (
	"encoding/json"
	"errors"
	"time"

	"github.com/GlobalPath/cms_service/internal/domain"
	"github.com/GlobalPath/cms_service/internal/dto"
	"github.com/GlobalPath/cms_service/internal/interfaces"
	"github.com/GlobalPath/cms_service/internal/repository"
	"gorm.io/gorm"
)

var ErrProfileLocked = errors.New("profile is locked after submission")

type StudentService interface {
	GetProfile(userID uint) (*domain.StudentProfile, error)
	SaveSections(userID uint, input dto.ProfileSectionUpdate) (*domain.StudentProfile, error)
	Status(userID uint) (*dto.ProfileStatusResponse, error)
	Submit(userID uint) (*dto.ProfileStatusResponse, error)
	AttachDocument(userID uint, docType, fileURL string) error
}

type studentService struct {
	repo     repository.StudentProfileRepository
	userRepo repository.UserRepository
	producer interfaces.ProducerHandler
}

func NewStudentService(
	repo repository.StudentProfileRepository,
	userRepo repository.UserRepository,
	producer interfaces.ProducerHandler,
) StudentService {
	return &studentService{
		repo:     repo,
		userRepo: userRepo,
		producer: producer,
	}
}

func (s *studentService) GetProfile(userID uint) (*domain.StudentProfile, error) {
	if userID == 0 {
		return nil, errors.New("invalid user id")
	}

	profile, err := s.repo.FindByUserID(userID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		// first visit: an empty invited profile
		profile = &domain.StudentProfile{UserID: userID, Status: domain.ProfileInvited}
		if err := s.repo.Create(profile); err != nil {
			return nil, err
		}
		return profile, nil
	}
	return profile, err
}

// SaveSections applies the non-nil section groups, then recomputes the
// derived status. The recompute can only move the status forward; once the
// profile is submitted every save is rejected (post-submission lock).
func (s *studentService) SaveSections(userID uint, input dto.ProfileSectionUpdate) (*domain.StudentProfile, error) {
	profile, err := s.GetProfile(userID)
	if err != nil {
		return nil, err
	}

	if profile.Status.Locked() {
		return nil, ErrProfileLocked
	}

	if p := input.Personal; p != nil {
		profile.FirstName = p.FirstName
		profile.LastName = p.LastName
		profile.DateOfBirth = p.DateOfBirth
		profile.Nationality = p.Nationality
	}
	if c := input.Contact; c != nil {
		profile.Phone = c.Phone
		profile.Address = c.Address
		profile.City = c.City
		profile.Country = c.Country
	}
	if pp := input.Passport; pp != nil {
		profile.PassportNumber = pp.PassportNumber
		profile.PassportExpiry = pp.PassportExpiry
	}
	if et := input.EnglishTest; et != nil {
		profile.EnglishTestType = et.TestType
		profile.EnglishTestScore = et.Score
		profile.EnglishTestDate = et.TestDate
	}
	if pr := input.Preferences; pr != nil {
		profile.PreferredCountry = pr.Country
		profile.PreferredCourse = pr.Course
		profile.PreferredIntake = pr.Intake
	}
	if sp := input.Sponsor; sp != nil {
		profile.SponsorName = sp.Name
		profile.SponsorRelation = sp.Relation
	}
	if em := input.Emergency; em != nil {
		profile.EmergencyName = em.Name
		profile.EmergencyPhone = em.Phone
	}

	if input.Education != nil {
		records := make([]domain.EducationRecord, 0, len(input.Education))
		for _, e := range input.Education {
			records = append(records, domain.EducationRecord{
				Institution:   e.Institution,
				Qualification: e.Qualification,
				YearCompleted: e.YearCompleted,
				Grade:         e.Grade,
			})
		}
		if err := s.repo.ReplaceEducation(profile.ID, records); err != nil {
			return nil, err
		}
		profile.Education = records
	}

	profile.Status = domain.NextProfileStatus(profile.Status, profile.CalculateProgress())

	if err := s.repo.Save(profile); err != nil {
		return nil, err
	}
	return profile, nil
}

func (s *studentService) Status(userID uint) (*dto.ProfileStatusResponse, error) {
	profile, err := s.GetProfile(userID)
	if err != nil {
		return nil, err
	}
	return &dto.ProfileStatusResponse{
		Status:      string(profile.Status),
		Progress:    profile.CalculateProgress(),
		Locked:      profile.Status.Locked(),
		SubmittedAt: profile.SubmittedAt,
	}, nil
}

// Submit is the only path into application_submitted. A second submit is a
// no-op; submitted_at is written once.
func (s *studentService) Submit(userID uint) (*dto.ProfileStatusResponse, error) {
	profile, err := s.GetProfile(userID)
	if err != nil {
		return nil, err
	}

	if profile.Status != domain.ProfileCompleted && !profile.Status.Locked() {
		return nil, errors.New("profile must be completed before submission")
	}

	now := time.Now()
	changed, err := s.repo.MarkSubmitted(userID, now)
	if err != nil {
		return nil, err
	}

	if changed > 0 {
		profile.Status = domain.ProfileApplicationSubmitted
		profile.SubmittedAt = &now

		if s.producer != nil {
			user, uerr := s.userRepo.FindUserById(userID)
			email := ""
			if uerr == nil && user != nil {
				email = user.Email
			}
			payload, _ := json.Marshal(dto.ProfileSubmittedEvent{UserID: userID, Email: email})
			_ = s.producer.PublishMessage([]byte(dto.EventProfileSubmitted), payload)
		}
	}

	return &dto.ProfileStatusResponse{
		Status:      string(profile.Status),
		Progress:    profile.CalculateProgress(),
		Locked:      true,
		SubmittedAt: profile.SubmittedAt,
	}, nil
}

func (s *studentService) AttachDocument(userID uint, docType, fileURL string) error {
	profile, err := s.GetProfile(userID)
	if err != nil {
		return err
	}
	if profile.Status.Locked() {
		return ErrProfileLocked
	}

	return s.repo.AddDocument(&domain.ProfileDocument{
		StudentProfileID: profile.ID,
		DocType:          docType,
		FileURL:          fileURL,
	})
}
