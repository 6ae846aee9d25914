package seed

import (
	"context"
	"fmt"
	"time"

	"genmoney/internal/model"
	"genmoney/internal/repository"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"
)

const (
	adminEmail    = "admin@genmoney.com"
	adminPassword = "admin123"
)

// Run seeds the admin account and sample courses on startup. Both checks
// are one-shot check-then-insert, so repeated startups are no-ops.
func Run(ctx context.Context, users repository.UserRepository, courses repository.CourseRepository, logger zerolog.Logger) error {
	if err := seedAdmin(ctx, users, logger); err != nil {
		return fmt.Errorf("seed admin: %w", err)
	}
	if err := seedCourses(ctx, courses, logger); err != nil {
		return fmt.Errorf("seed courses: %w", err)
	}
	return nil
}

func seedAdmin(ctx context.Context, users repository.UserRepository, logger zerolog.Logger) error {
	existing, err := users.GetUserByEmail(ctx, adminEmail)
	if err != nil {
		return err
	}
	if existing != nil {
		return nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(adminPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	admin := &model.User{
		ID:              uuid.NewString(),
		Email:           adminEmail,
		FullName:        "Admin GenMoney",
		PasswordHash:    string(hash),
		IsAdmin:         true,
		CreatedAt:       time.Now().UTC(),
		EnrolledCourses: []string{},
		Badges:          []string{},
		Progress:        map[string]interface{}{},
	}
	if err := users.CreateUser(ctx, admin); err != nil {
		return err
	}
	logger.Info().Str("email", adminEmail).Msg("Admin user created")
	return nil
}

func seedCourses(ctx context.Context, courses repository.CourseRepository, logger zerolog.Logger) error {
	count, err := courses.CountCourses(ctx)
	if err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	for _, c := range SampleCourses() {
		course := c
		if err := courses.CreateCourse(ctx, &course); err != nil {
			return err
		}
	}
	logger.Info().Int("count", len(SampleCourses())).Msg("Sample courses created")
	return nil
}

// SampleCourses returns the catalog inserted on first startup.
func SampleCourses() []model.Course {
	now := time.Now().UTC()
	return []model.Course{
		{
			ID:          uuid.NewString(),
			Title:       "Financial Planning 101: Gaji Gak Numpang Lewat",
			Description: "Belajar ngatur duit biar gak habis di awal bulan. Cocok banget buat yang baru kerja!",
			Price:       199000,
			Category:    model.CategoryPersonalFinance,
			Level:       "beginner",
			MentorName:  "Sarah Wijaya",
			Duration:    "2.5 jam",
			Topics:      []string{"Budgeting", "Emergency Fund", "Debt Management", "Savings Goals"},
			CreatedAt:   now,
		},
		{
			ID:          uuid.NewString(),
			Title:       "Saham untuk Pemula: Investasi Tanpa Drama",
			Description: "Mulai investasi saham dengan strategi yang proven. No FOMO, no stress!",
			Price:       299000,
			Category:    model.CategoryStocks,
			Level:       "beginner",
			MentorName:  "Rizky Pratama",
			Duration:    "3 jam",
			Topics:      []string{"Stock Basics", "Company Analysis", "Risk Management", "Portfolio Building"},
			CreatedAt:   now,
		},
		{
			ID:          uuid.NewString(),
			Title:       "Crypto 101: Blockchain Buat Gen Z",
			Description: "Pahami crypto dan blockchain technology. Investasi cerdas, bukan gambling!",
			Price:       249000,
			Category:    model.CategoryCrypto,
			Level:       "intermediate",
			MentorName:  "Alex Chen",
			Duration:    "2 jam",
			Topics:      []string{"Blockchain Basics", "DeFi", "NFTs", "Crypto Trading"},
			CreatedAt:   now,
		},
	}
}
