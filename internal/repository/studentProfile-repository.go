package repository

import (
	"time"

	"github.com/GlobalPath/cms_service/internal/domain"
	"gorm.io/gorm"
)

type StudentProfileRepository interface {
	FindByUserID(userID uint) (*domain.StudentProfile, error)
	Create(profile *domain.StudentProfile) error
	Save(profile *domain.StudentProfile) error
	ReplaceEducation(profileID uint, records []domain.EducationRecord) error
	AddDocument(doc *domain.ProfileDocument) error
	MarkSubmitted(userID uint, at time.Time) (int64, error)
}

type studentProfileRepository struct {
	db *gorm.DB
}

func NewStudentProfileRepository(db *gorm.DB) StudentProfileRepository {
	return &studentProfileRepository{db: db}
}

func (s *studentProfileRepository) FindByUserID(userID uint) (*domain.StudentProfile, error) {
	var profile domain.StudentProfile
	err := s.db.
		Preload("Education", func(db *gorm.DB) *gorm.DB { return db.Order("sort_order ASC") }).
		Preload("Documents").
		Where("user_id = ?", userID).
		First(&profile).Error
	if err != nil {
		return nil, err
	}
	return &profile, nil
}

func (s *studentProfileRepository) Create(profile *domain.StudentProfile) error {
	return s.db.Create(profile).Error
}

func (s *studentProfileRepository) Save(profile *domain.StudentProfile) error {
	// Omit associations: education rows are replaced explicitly so their
	// order is preserved.
	return s.db.Omit("Education", "Documents").Save(profile).Error
}

func (s *studentProfileRepository) ReplaceEducation(profileID uint, records []domain.EducationRecord) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("student_profile_id = ?", profileID).
			Delete(&domain.EducationRecord{}).Error; err != nil {
			return err
		}
		if len(records) == 0 {
			return nil
		}
		for i := range records {
			records[i].StudentProfileID = profileID
			records[i].SortOrder = i
		}
		return tx.Create(&records).Error
	})
}

func (s *studentProfileRepository) AddDocument(doc *domain.ProfileDocument) error {
	return s.db.Create(doc).Error
}

// MarkSubmitted flips the profile to application_submitted exactly once.
// The status guard in the WHERE clause makes the submit idempotent and keeps
// submitted_at immutable.
func (s *studentProfileRepository) MarkSubmitted(userID uint, at time.Time) (int64, error) {
	res := s.db.Model(&domain.StudentProfile{}).
		Where("user_id = ? AND status <> ?", userID, domain.ProfileApplicationSubmitted).
		Updates(map[string]any{
			"status":       domain.ProfileApplicationSubmitted,
			"submitted_at": at,
		})
	return res.RowsAffected, res.Error
}
