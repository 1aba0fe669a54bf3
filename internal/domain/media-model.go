package domain

import "gorm.io/gorm"

type MediaFileType string

const (
	MediaImage    MediaFileType = "image"
	MediaVideo    MediaFileType = "video"
	MediaDocument MediaFileType = "document"
)

type MediaFile struct {
	ID         uint          `gorm:"primaryKey" json:"id"`
	Filename   string        `gorm:"not null" json:"filename"`
	FileURL    string        `gorm:"not null" json:"file_url"`
	PublicID   string        `gorm:"not null" json:"public_id"` // storage path, needed for deletion
	FileType   MediaFileType `gorm:"type:varchar(10);not null" json:"file_type"`
	FileSize   int64         `json:"file_size"`
	Folder     string        `gorm:"index" json:"folder"`
	UploadedBy uint          `gorm:"index" json:"uploaded_by"`
	gorm.Model
}
