package model

import "time"

// Course categories exposed by the catalog.
const (
	CategoryPersonalFinance = "personal_finance"
	CategoryStocks          = "stocks"
	CategoryCrypto          = "crypto"
	CategoryMutualFunds     = "mutual_funds"
)

type Course struct {
	ID              string    `bson:"id" json:"id"`
	Title           string    `bson:"title" json:"title"`
	Description     string    `bson:"description" json:"description"`
	Price           float64   `bson:"price" json:"price"`
	Category        string    `bson:"category" json:"category"`
	Level           string    `bson:"level" json:"level"`
	MentorName      string    `bson:"mentor_name" json:"mentor_name"`
	VideoURL        string    `bson:"video_url,omitempty" json:"video_url,omitempty"`
	PreviewVideoURL string    `bson:"preview_video_url,omitempty" json:"preview_video_url,omitempty"`
	Duration        string    `bson:"duration" json:"duration"`
	Topics          []string  `bson:"topics" json:"topics"`
	CreatedAt       time.Time `bson:"created_at" json:"created_at"`
	EnrolledCount   int       `bson:"enrolled_count" json:"enrolled_count"`
}
