package repository

import (
	"log"
	"time"

	"github.com/GlobalPath/cms_service/internal/domain"
	"gorm.io/gorm"
)

type NotificationRepository interface {
	Create(n *domain.Notification) error
	FindByID(id uint) (*domain.Notification, error)
	ListByUser(userID uint, category domain.NotificationCategory, unreadOnly bool, limit, offset int) ([]domain.Notification, error)
	ListAll(category domain.NotificationCategory, limit, offset int) ([]domain.Notification, error)
	ListUnreadIDs(userID uint) ([]uint, error) // userID 0 means all users (admin)
	MarkRead(id uint) error
	Delete(id uint) error
}

type notificationRepository struct {
	db *gorm.DB
}

func NewNotificationRepository(db *gorm.DB) NotificationRepository {
	return &notificationRepository{db: db}
}

func (n *notificationRepository) Create(notif *domain.Notification) error {
	if err := n.db.Create(notif).Error; err != nil {
		log.Printf("create notification error: %v", err)
		return err
	}
	return nil
}

func (n *notificationRepository) FindByID(id uint) (*domain.Notification, error) {
	var notif domain.Notification
	if err := n.db.First(&notif, id).Error; err != nil {
		return nil, err
	}
	return &notif, nil
}

func (n *notificationRepository) ListByUser(userID uint, category domain.NotificationCategory, unreadOnly bool, limit, offset int) ([]domain.Notification, error) {
	q := n.db.Where("user_id = ?", userID).
		Order("created_at DESC").Limit(limit).Offset(offset)
	if category != "" {
		q = q.Where("category = ?", category)
	}
	if unreadOnly {
		q = q.Where("is_read = ?", false)
	}

	var out []domain.Notification
	if err := q.Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (n *notificationRepository) ListAll(category domain.NotificationCategory, limit, offset int) ([]domain.Notification, error) {
	q := n.db.Order("created_at DESC").Limit(limit).Offset(offset)
	if category != "" {
		q = q.Where("category = ?", category)
	}

	var out []domain.Notification
	if err := q.Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (n *notificationRepository) ListUnreadIDs(userID uint) ([]uint, error) {
	q := n.db.Model(&domain.Notification{}).Where("is_read = ?", false)
	if userID != 0 {
		q = q.Where("user_id = ?", userID)
	}

	var ids []uint
	if err := q.Pluck("id", &ids).Error; err != nil {
		return nil, err
	}
	return ids, nil
}

// MarkRead is monotonic: the WHERE clause only matches unread rows, so a
// second call is a no-op success and is_read never flips back.
func (n *notificationRepository) MarkRead(id uint) error {
	now := time.Now()
	return n.db.Model(&domain.Notification{}).
		Where("id = ? AND is_read = ?", id, false).
		Updates(map[string]any{"is_read": true, "read_at": now}).Error
}

func (n *notificationRepository) Delete(id uint) error {
	return n.db.Unscoped().Delete(&domain.Notification{}, id).Error
}
