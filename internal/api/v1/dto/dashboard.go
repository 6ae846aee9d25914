package dto

import "genmoney/internal/model"

// DashboardResponse is the aggregate payload for the user dashboard
type DashboardResponse struct {
	User            *model.User     `json:"user"`
	EnrolledCourses []model.Course  `json:"enrolled_courses"`
	PaymentHistory  []model.Payment `json:"payment_history"`
	Badges          []string        `json:"badges"`
	TotalSpent      float64         `json:"total_spent"`
}
