package service

import (
	"context"
	"fmt"

	"genmoney/internal/model"
	"genmoney/internal/repository"
)

// Dashboard aggregates a user's enrollments and payment history. It is
// derived on every call; nothing here is cached.
type Dashboard struct {
	User            *model.User
	EnrolledCourses []model.Course
	PaymentHistory  []model.Payment
	Badges          []string
	TotalSpent      float64
}

type UserService interface {
	Dashboard(ctx context.Context, user *model.User) (*Dashboard, error)
}

type userService struct {
	courseRepo  repository.CourseRepository
	paymentRepo repository.PaymentRepository
}

func NewUserService(courseRepo repository.CourseRepository, paymentRepo repository.PaymentRepository) UserService {
	return &userService{courseRepo: courseRepo, paymentRepo: paymentRepo}
}

func (s *userService) Dashboard(ctx context.Context, user *model.User) (*Dashboard, error) {
	courses, err := s.courseRepo.ListCoursesByIDs(ctx, user.EnrolledCourses)
	if err != nil {
		return nil, fmt.Errorf("list enrolled courses: %w", err)
	}

	payments, err := s.paymentRepo.ListPaymentsByUserID(ctx, user.ID)
	if err != nil {
		return nil, fmt.Errorf("list payments: %w", err)
	}

	var total float64
	for _, p := range payments {
		total += p.Amount
	}

	return &Dashboard{
		User:            user,
		EnrolledCourses: courses,
		PaymentHistory:  payments,
		Badges:          user.Badges,
		TotalSpent:      total,
	}, nil
}
