package services

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/GlobalPath/cms_service/internal/domain"
	"github.com/GlobalPath/cms_service/internal/interfaces"
	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}
	if err := db.AutoMigrate(
		&domain.User{},
		&domain.StudentProfile{},
		&domain.EducationRecord{},
		&domain.ProfileDocument{},
		&domain.Application{},
		&domain.Course{},
		&domain.University{},
		&domain.Destination{},
		&domain.Blog{},
		&domain.Scholarship{},
		&domain.ServicePage{},
		&domain.Career{},
		&domain.Event{},
		&domain.EventRegistration{},
		&domain.JobApplication{},
		&domain.Notification{},
		&domain.MediaFile{},
		&domain.ContactMessage{},
		&domain.CounsellingRequest{},
	); err != nil {
		t.Fatalf("migrate test db: %v", err)
	}
	return db
}

// fakeProducer records published events in order.
type fakeProducer struct {
	mu     sync.Mutex
	keys   []string
	values [][]byte
}

func (p *fakeProducer) PublishMessage(key, value []byte) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.keys = append(p.keys, string(key))
	p.values = append(p.values, value)
	return nil
}

func (p *fakeProducer) published(key string) bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	for _, k := range p.keys {
		if k == key {
			return true
		}
	}
	return false
}

var errStorageDown = errors.New("storage unavailable")

// fakeUploader records calls and can be told to fail.
type fakeUploader struct {
	uploads  []string // folder/filename
	deletes  []string // public ids
	failNext bool
}

func (u *fakeUploader) UploadBytes(_ context.Context, folder, filename string, _ []byte) (interfaces.UploadResult, error) {
	if u.failNext {
		u.failNext = false
		return interfaces.UploadResult{}, errStorageDown
	}
	path := folder + "/" + filename
	u.uploads = append(u.uploads, path)
	return interfaces.UploadResult{
		URL:      "https://cdn.example.com/" + path,
		PublicID: path,
	}, nil
}

func (u *fakeUploader) Delete(_ context.Context, publicID string) error {
	u.deletes = append(u.deletes, publicID)
	return nil
}
