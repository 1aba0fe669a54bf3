package dto

// Shared create/update inputs for the publishable catalog entities. Publish
// and feature flags are toggled through their own endpoints, not here.

type CourseInput struct {
	Title        string  `json:"title" validate:"required,min=3"`
	Description  string  `json:"description"`
	Level        string  `json:"level" validate:"omitempty,oneof=diploma bachelor master phd"`
	DurationTerm string  `json:"duration_term"`
	TuitionFee   *string `json:"tuition_fee,omitempty"`
	UniversityID *uint   `json:"university_id,omitempty"`
	ImageURL     string  `json:"image_url" validate:"omitempty,url"`
}

type UniversityInput struct {
	Name          string `json:"name" validate:"required,min=2"`
	Country       string `json:"country" validate:"required"`
	City          string `json:"city"`
	Ranking       *int   `json:"ranking,omitempty"`
	Description   string `json:"description"`
	LogoURL       string `json:"logo_url" validate:"omitempty,url"`
	WebsiteURL    string `json:"website_url" validate:"omitempty,url"`
	DestinationID *uint  `json:"destination_id,omitempty"`
}

type DestinationInput struct {
	Country     string `json:"country" validate:"required"`
	Description string `json:"description"`
	ImageURL    string `json:"image_url" validate:"omitempty,url"`
}

type BlogInput struct {
	Title    string `json:"title" validate:"required,min=3"`
	Excerpt  string `json:"excerpt"`
	Content  string `json:"content" validate:"required"`
	Author   string `json:"author"`
	ImageURL string `json:"image_url" validate:"omitempty,url"`
}

type ScholarshipInput struct {
	Title       string  `json:"title" validate:"required,min=3"`
	Provider    string  `json:"provider"`
	Amount      *string `json:"amount,omitempty"`
	Deadline    *string `json:"deadline,omitempty"`
	Description string  `json:"description"`
}

type ServicePageInput struct {
	Title   string `json:"title" validate:"required,min=3"`
	Summary string `json:"summary"`
	Content string `json:"content" validate:"required"`
	IconURL string `json:"icon_url" validate:"omitempty,url"`
}

type CareerInput struct {
	Title       string `json:"title" validate:"required,min=3"`
	Department  string `json:"department"`
	Location    string `json:"location"`
	JobType     string `json:"job_type" validate:"omitempty,oneof=full_time part_time contract"`
	Description string `json:"description"`
}

type EventInput struct {
	Title       string `json:"title" validate:"required,min=3"`
	Description string `json:"description"`
	Venue       string `json:"venue"`
	StartsAt    string `json:"starts_at" validate:"omitempty,datetime=2006-01-02T15:04:05Z07:00"`
	EndsAt      string `json:"ends_at" validate:"omitempty,datetime=2006-01-02T15:04:05Z07:00"`
	ImageURL    string `json:"image_url" validate:"omitempty,url"`
}

type PublishToggle struct {
	Published bool `json:"published"`
}

type FeatureToggle struct {
	Featured bool `json:"featured"`
}
