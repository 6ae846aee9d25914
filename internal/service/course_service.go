package service

import (
	"context"
	"errors"
	"time"

	"genmoney/internal/model"
	"genmoney/internal/repository"

	"github.com/google/uuid"
)

var ErrCourseNotFound = errors.New("course not found")

// CourseService defines the interface for catalog operations
type CourseService interface {
	// List returns courses matching the optional category and level filters.
	List(ctx context.Context, category, level string) ([]model.Course, error)
	// Get retrieves a course by its ID
	Get(ctx context.Context, id string) (*model.Course, error)
	// Create inserts a new course. Caller authorization is enforced at the
	// route level; inputs are stored as-is.
	Create(ctx context.Context, c *model.Course) (*model.Course, error)
}

type courseService struct {
	repo repository.CourseRepository
}

func NewCourseService(repo repository.CourseRepository) CourseService {
	return &courseService{repo: repo}
}

func (s *courseService) List(ctx context.Context, category, level string) ([]model.Course, error) {
	return s.repo.ListCourses(ctx, category, level)
}

func (s *courseService) Get(ctx context.Context, id string) (*model.Course, error) {
	c, err := s.repo.GetCourseByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, ErrCourseNotFound
	}
	return c, nil
}

func (s *courseService) Create(ctx context.Context, c *model.Course) (*model.Course, error) {
	c.ID = uuid.NewString()
	c.CreatedAt = time.Now().UTC()
	c.EnrolledCount = 0
	if err := s.repo.CreateCourse(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}
