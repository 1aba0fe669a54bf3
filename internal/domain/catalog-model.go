package domain

import "gorm.io/gorm"

// Publishable carries the draft/published flag that gates every public read
// path, plus the independent featured flag. The two have no ordering
// constraint between them.
type Publishable struct {
	Slug        string `gorm:"uniqueIndex;not null" json:"slug"`
	IsPublished bool   `gorm:"not null;default:false;index" json:"is_published"`
	IsFeatured  bool   `gorm:"not null;default:false" json:"is_featured"`
}

type Course struct {
	ID           uint    `gorm:"primaryKey" json:"id"`
	Title        string  `gorm:"not null" json:"title"`
	Description  string  `gorm:"type:text" json:"description"`
	Level        string  `gorm:"type:varchar(30)" json:"level"` // diploma / bachelor / master / phd
	DurationTerm string  `json:"duration_term"`
	TuitionFee   *string `json:"tuition_fee,omitempty"`
	UniversityID *uint   `json:"university_id,omitempty"`
	ImageURL     string  `json:"image_url"`
	Publishable
	gorm.Model
}

type University struct {
	ID            uint   `gorm:"primaryKey" json:"id"`
	Name          string `gorm:"not null" json:"name"`
	Country       string `gorm:"index" json:"country"`
	City          string `json:"city"`
	Ranking       *int   `json:"ranking,omitempty"`
	Description   string `gorm:"type:text" json:"description"`
	LogoURL       string `json:"logo_url"`
	WebsiteURL    string `json:"website_url"`
	DestinationID *uint  `json:"destination_id,omitempty"`
	Publishable
	gorm.Model
}

type Destination struct {
	ID          uint   `gorm:"primaryKey" json:"id"`
	Country     string `gorm:"not null" json:"country"`
	Description string `gorm:"type:text" json:"description"`
	ImageURL    string `json:"image_url"`
	Publishable
	gorm.Model
}

type Blog struct {
	ID       uint   `gorm:"primaryKey" json:"id"`
	Title    string `gorm:"not null" json:"title"`
	Excerpt  string `json:"excerpt"`
	Content  string `gorm:"type:text" json:"content"`
	Author   string `json:"author"`
	ImageURL string `json:"image_url"`
	Publishable
	gorm.Model
}

type Scholarship struct {
	ID          uint    `gorm:"primaryKey" json:"id"`
	Title       string  `gorm:"not null" json:"title"`
	Provider    string  `json:"provider"`
	Amount      *string `json:"amount,omitempty"`
	Deadline    *string `json:"deadline,omitempty"`
	Description string  `gorm:"type:text" json:"description"`
	Publishable
	gorm.Model
}

type ServicePage struct {
	ID          uint   `gorm:"primaryKey" json:"id"`
	Title       string `gorm:"not null" json:"title"`
	Summary     string `json:"summary"`
	Content     string `gorm:"type:text" json:"content"`
	IconURL     string `json:"icon_url"`
	Publishable
	gorm.Model
}

func (p *Publishable) SetSlug(s string) { p.Slug = s }
func (p *Publishable) GetSlug() string  { return p.Slug }

// Sluggable is implemented by every catalog entity through the Publishable
// embed.
type Sluggable interface {
	SetSlug(string)
	GetSlug() string
}
