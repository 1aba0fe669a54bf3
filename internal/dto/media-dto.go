package dto

type MediaFileResponse struct {
	ID       uint   `json:"id"`
	Filename string `json:"filename"`
	FileURL  string `json:"file_url"`
	FileType string `json:"file_type"`
	FileSize int64  `json:"file_size"`
	Folder   string `json:"folder"`
}
