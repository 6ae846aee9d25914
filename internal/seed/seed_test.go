package seed

import (
	"context"
	"testing"

	"genmoney/internal/model"

	"github.com/rs/zerolog"
)

type memUserRepo struct {
	byEmail map[string]*model.User
	creates int
}

func (m *memUserRepo) CreateUser(ctx context.Context, u *model.User) error {
	m.byEmail[u.Email] = u
	m.creates++
	return nil
}

func (m *memUserRepo) GetUserByEmail(ctx context.Context, email string) (*model.User, error) {
	return m.byEmail[email], nil
}

func (m *memUserRepo) GetUserByID(ctx context.Context, id string) (*model.User, error) {
	return nil, nil
}

func (m *memUserRepo) AppendEnrollment(ctx context.Context, userID, courseID string) (bool, error) {
	return false, nil
}

type memCourseRepo struct {
	courses []model.Course
}

func (m *memCourseRepo) CreateCourse(ctx context.Context, c *model.Course) error {
	m.courses = append(m.courses, *c)
	return nil
}

func (m *memCourseRepo) GetCourseByID(ctx context.Context, id string) (*model.Course, error) {
	return nil, nil
}

func (m *memCourseRepo) ListCourses(ctx context.Context, category, level string) ([]model.Course, error) {
	return m.courses, nil
}

func (m *memCourseRepo) ListCoursesByIDs(ctx context.Context, ids []string) ([]model.Course, error) {
	return nil, nil
}

func (m *memCourseRepo) IncrementEnrolledCount(ctx context.Context, id string) error { return nil }

func (m *memCourseRepo) CountCourses(ctx context.Context) (int64, error) {
	return int64(len(m.courses)), nil
}

func TestRunIsIdempotent(t *testing.T) {
	users := &memUserRepo{byEmail: map[string]*model.User{}}
	courses := &memCourseRepo{}
	ctx := context.Background()

	if err := Run(ctx, users, courses, zerolog.Nop()); err != nil {
		t.Fatalf("first run failed: %v", err)
	}
	if err := Run(ctx, users, courses, zerolog.Nop()); err != nil {
		t.Fatalf("second run failed: %v", err)
	}

	if users.creates != 1 {
		t.Fatalf("expected admin created once, got %d creates", users.creates)
	}
	if len(courses.courses) != 3 {
		t.Fatalf("expected 3 sample courses, got %d", len(courses.courses))
	}

	admin := users.byEmail["admin@genmoney.com"]
	if admin == nil || !admin.IsAdmin {
		t.Fatalf("expected seeded admin account, got %+v", admin)
	}
	if admin.PasswordHash == "admin123" {
		t.Fatal("admin password must be stored hashed")
	}
}
