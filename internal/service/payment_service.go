package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"genmoney/internal/model"
	"genmoney/internal/repository"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

var ErrAlreadyEnrolled = errors.New("already enrolled in this course")

// PurchaseResult is the confirmation payload for a successful purchase.
type PurchaseResult struct {
	PaymentID   string
	CourseTitle string
}

// PaymentService runs the mocked purchase flow: every payment method
// resolves instantly to a completed payment.
type PaymentService interface {
	Purchase(ctx context.Context, user *model.User, courseID, paymentMethod string) (*PurchaseResult, error)
}

type paymentService struct {
	paymentRepo repository.PaymentRepository
	userRepo    repository.UserRepository
	courseRepo  repository.CourseRepository
	logger      zerolog.Logger
}

func NewPaymentService(paymentRepo repository.PaymentRepository, userRepo repository.UserRepository, courseRepo repository.CourseRepository, logger zerolog.Logger) PaymentService {
	lg := logger.With().Str("service", "PaymentService").Logger()
	return &paymentService{paymentRepo: paymentRepo, userRepo: userRepo, courseRepo: courseRepo, logger: lg}
}

// Purchase records a payment, enrolls the user, and bumps the course
// counter. The store has no cross-collection transactions, so the
// enrollment write is guarded (it reports whether it landed) and a payment
// whose enrollment lost a race is deleted again.
func (s *paymentService) Purchase(ctx context.Context, user *model.User, courseID, paymentMethod string) (*PurchaseResult, error) {
	course, err := s.courseRepo.GetCourseByID(ctx, courseID)
	if err != nil {
		return nil, fmt.Errorf("lookup course: %w", err)
	}
	if course == nil {
		return nil, ErrCourseNotFound
	}

	if user.Enrolled(courseID) {
		return nil, ErrAlreadyEnrolled
	}

	// Amount is copied from the course price at purchase time.
	payment := &model.Payment{
		ID:            uuid.NewString(),
		UserID:        user.ID,
		CourseID:      courseID,
		Amount:        course.Price,
		PaymentMethod: paymentMethod,
		Status:        model.PaymentCompleted,
		CreatedAt:     time.Now().UTC(),
	}
	if err := s.paymentRepo.CreatePayment(ctx, payment); err != nil {
		return nil, fmt.Errorf("create payment: %w", err)
	}

	enrolled, err := s.userRepo.AppendEnrollment(ctx, user.ID, courseID)
	if err != nil {
		s.compensate(ctx, payment.ID)
		return nil, fmt.Errorf("append enrollment: %w", err)
	}
	if !enrolled {
		// A concurrent purchase of the same course won the enrollment
		// write; take the duplicate payment back out.
		s.compensate(ctx, payment.ID)
		return nil, ErrAlreadyEnrolled
	}

	if err := s.courseRepo.IncrementEnrolledCount(ctx, courseID); err != nil {
		// Enrollment already landed; surface the failure but leave the
		// records in place.
		s.logger.Error().Err(err).Str("course_id", courseID).Msg("Failed to increment enrolled count")
		return nil, fmt.Errorf("increment enrolled count: %w", err)
	}

	return &PurchaseResult{PaymentID: payment.ID, CourseTitle: course.Title}, nil
}

func (s *paymentService) compensate(ctx context.Context, paymentID string) {
	if err := s.paymentRepo.DeletePayment(ctx, paymentID); err != nil {
		s.logger.Error().Err(err).Str("payment_id", paymentID).Msg("Failed to delete orphaned payment")
	}
}
