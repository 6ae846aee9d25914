package model

import "time"

// PaymentCompleted is the only status the mock payment flow produces.
const PaymentCompleted = "completed"

// Payment is written once per successful purchase and never mutated.
type Payment struct {
	ID            string    `bson:"id" json:"id"`
	UserID        string    `bson:"user_id" json:"user_id"`
	CourseID      string    `bson:"course_id" json:"course_id"`
	Amount        float64   `bson:"amount" json:"amount"`
	PaymentMethod string    `bson:"payment_method" json:"payment_method"`
	Status        string    `bson:"status" json:"status"`
	CreatedAt     time.Time `bson:"created_at" json:"created_at"`
}
