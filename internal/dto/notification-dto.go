package dto

type NotificationResponse struct {
	ID             uint    `json:"id"`
	UserID         uint    `json:"user_id,omitempty"` // populated in the admin view only
	Title          string  `json:"title"`
	Message        string  `json:"message"`
	Type           string  `json:"type"`
	Category       string  `json:"category"`
	ReferenceID    *uint   `json:"reference_id,omitempty"`
	ReferenceTable string  `json:"reference_table,omitempty"`
	IsRead         bool    `json:"is_read"`
	CreatedAt      string  `json:"created_at"`
}

// MarkAllReadResponse reports partial failure instead of swallowing it:
// Failed carries the ids that could not be updated.
type MarkAllReadResponse struct {
	Updated int    `json:"updated"`
	Failed  []uint `json:"failed,omitempty"`
}
