package dto

// CourseCreateRequest is used for incoming course creation requests.
// Price, category, and level are stored as provided; there is no enum,
// positivity, or presence check on price — zero prices a free course.
type CourseCreateRequest struct {
	Title           string   `json:"title" validate:"required"`
	Description     string   `json:"description" validate:"required"`
	Price           float64  `json:"price"`
	Category        string   `json:"category" validate:"required"`
	Level           string   `json:"level" validate:"required"`
	MentorName      string   `json:"mentor_name" validate:"required"`
	VideoURL        string   `json:"video_url,omitempty"`
	PreviewVideoURL string   `json:"preview_video_url,omitempty"`
	Duration        string   `json:"duration" validate:"required"`
	Topics          []string `json:"topics"`
}
