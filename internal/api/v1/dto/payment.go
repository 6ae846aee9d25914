package dto

// PurchaseRequest is used for incoming purchase requests. The payment
// method is a free-text tag; no gateway validation happens.
type PurchaseRequest struct {
	CourseID      string `json:"course_id" validate:"required"`
	PaymentMethod string `json:"payment_method" validate:"required"`
}

// PurchaseResponse confirms a completed purchase
type PurchaseResponse struct {
	Message     string `json:"message"`
	PaymentID   string `json:"payment_id"`
	CourseTitle string `json:"course_title"`
}
