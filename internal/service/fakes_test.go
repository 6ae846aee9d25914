package service

import (
	"context"

	"genmoney/internal/model"
)

// In-memory repository fakes. Lookup semantics mirror the Mongo
// implementations: exact-match email, nil for missing documents, guarded
// enrollment append.

type fakeUserRepo struct {
	users map[string]*model.User
	// denyAppend simulates an enrollment write losing a concurrent race:
	// AppendEnrollment reports no write without touching state.
	denyAppend bool
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: map[string]*model.User{}}
}

func (f *fakeUserRepo) CreateUser(ctx context.Context, u *model.User) error {
	f.users[u.ID] = u
	return nil
}

func (f *fakeUserRepo) GetUserByEmail(ctx context.Context, email string) (*model.User, error) {
	for _, u := range f.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, nil
}

func (f *fakeUserRepo) GetUserByID(ctx context.Context, id string) (*model.User, error) {
	return f.users[id], nil
}

func (f *fakeUserRepo) AppendEnrollment(ctx context.Context, userID, courseID string) (bool, error) {
	if f.denyAppend {
		return false, nil
	}
	u, ok := f.users[userID]
	if !ok || u.Enrolled(courseID) {
		return false, nil
	}
	u.EnrolledCourses = append(u.EnrolledCourses, courseID)
	return true, nil
}

type fakeCourseRepo struct {
	courses map[string]*model.Course
	order   []string
}

func newFakeCourseRepo() *fakeCourseRepo {
	return &fakeCourseRepo{courses: map[string]*model.Course{}}
}

func (f *fakeCourseRepo) CreateCourse(ctx context.Context, c *model.Course) error {
	f.courses[c.ID] = c
	f.order = append(f.order, c.ID)
	return nil
}

func (f *fakeCourseRepo) GetCourseByID(ctx context.Context, id string) (*model.Course, error) {
	return f.courses[id], nil
}

func (f *fakeCourseRepo) ListCourses(ctx context.Context, category, level string) ([]model.Course, error) {
	var out []model.Course
	for _, id := range f.order {
		c := f.courses[id]
		if category != "" && c.Category != category {
			continue
		}
		if level != "" && c.Level != level {
			continue
		}
		out = append(out, *c)
	}
	return out, nil
}

func (f *fakeCourseRepo) ListCoursesByIDs(ctx context.Context, ids []string) ([]model.Course, error) {
	var out []model.Course
	for _, id := range ids {
		if c, ok := f.courses[id]; ok {
			out = append(out, *c)
		}
	}
	return out, nil
}

func (f *fakeCourseRepo) IncrementEnrolledCount(ctx context.Context, id string) error {
	if c, ok := f.courses[id]; ok {
		c.EnrolledCount++
	}
	return nil
}

func (f *fakeCourseRepo) CountCourses(ctx context.Context) (int64, error) {
	return int64(len(f.courses)), nil
}

type fakePaymentRepo struct {
	payments []model.Payment
}

func (f *fakePaymentRepo) CreatePayment(ctx context.Context, p *model.Payment) error {
	f.payments = append(f.payments, *p)
	return nil
}

func (f *fakePaymentRepo) ListPaymentsByUserID(ctx context.Context, userID string) ([]model.Payment, error) {
	var out []model.Payment
	for _, p := range f.payments {
		if p.UserID == userID {
			out = append(out, p)
		}
	}
	return out, nil
}

func (f *fakePaymentRepo) DeletePayment(ctx context.Context, id string) error {
	for i, p := range f.payments {
		if p.ID == id {
			f.payments = append(f.payments[:i], f.payments[i+1:]...)
			return nil
		}
	}
	return nil
}
