package repository

import (
	"context"

	"genmoney/internal/model"

	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// listCap bounds unpaginated catalog listings.
const listCap = 1000

// CourseRepository defines the interface for catalog operations
type CourseRepository interface {
	CreateCourse(ctx context.Context, c *model.Course) error
	// GetCourseByID returns nil when no course matches.
	GetCourseByID(ctx context.Context, id string) (*model.Course, error)
	// ListCourses applies optional equality filters on category and level.
	// Result order is store iteration order.
	ListCourses(ctx context.Context, category, level string) ([]model.Course, error)
	ListCoursesByIDs(ctx context.Context, ids []string) ([]model.Course, error)
	IncrementEnrolledCount(ctx context.Context, id string) error
	CountCourses(ctx context.Context) (int64, error)
}

type courseRepo struct {
	courses *mongo.Collection
	logger  zerolog.Logger
}

func NewCourseRepo(db *mongo.Database, logger zerolog.Logger) CourseRepository {
	return &courseRepo{courses: db.Collection("courses"), logger: logger}
}

func (r *courseRepo) CreateCourse(ctx context.Context, c *model.Course) error {
	_, err := r.courses.InsertOne(ctx, c)
	return err
}

func (r *courseRepo) GetCourseByID(ctx context.Context, id string) (*model.Course, error) {
	c := &model.Course{}
	err := r.courses.FindOne(ctx, bson.M{"id": id}).Decode(c)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, err
	}
	return c, nil
}

func (r *courseRepo) ListCourses(ctx context.Context, category, level string) ([]model.Course, error) {
	filter := bson.M{}
	if category != "" {
		filter["category"] = category
	}
	if level != "" {
		filter["level"] = level
	}
	return r.find(ctx, filter)
}

func (r *courseRepo) ListCoursesByIDs(ctx context.Context, ids []string) ([]model.Course, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	return r.find(ctx, bson.M{"id": bson.M{"$in": ids}})
}

func (r *courseRepo) find(ctx context.Context, filter bson.M) ([]model.Course, error) {
	cur, err := r.courses.Find(ctx, filter, options.Find().SetLimit(listCap))
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var courses []model.Course
	if err := cur.All(ctx, &courses); err != nil {
		r.logger.Error().Err(err).Msg("Failed to decode courses cursor")
		return nil, err
	}
	return courses, nil
}

func (r *courseRepo) IncrementEnrolledCount(ctx context.Context, id string) error {
	_, err := r.courses.UpdateOne(ctx,
		bson.M{"id": id},
		bson.M{"$inc": bson.M{"enrolled_count": 1}},
	)
	return err
}

func (r *courseRepo) CountCourses(ctx context.Context) (int64, error) {
	return r.courses.CountDocuments(ctx, bson.M{})
}
