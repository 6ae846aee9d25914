package repository

import (
	"context"

	"genmoney/internal/model"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

type UserRepository interface {
	CreateUser(ctx context.Context, u *model.User) error
	GetUserByEmail(ctx context.Context, email string) (*model.User, error)
	GetUserByID(ctx context.Context, id string) (*model.User, error)
	// AppendEnrollment adds courseID to the user's enrolled_courses exactly
	// once. It reports whether a write actually landed, so callers can tell
	// a fresh enrollment apart from a concurrent duplicate.
	AppendEnrollment(ctx context.Context, userID, courseID string) (bool, error)
}

type userRepo struct {
	users *mongo.Collection
}

func NewUserRepo(db *mongo.Database) UserRepository {
	return &userRepo{users: db.Collection("users")}
}

func (r *userRepo) CreateUser(ctx context.Context, u *model.User) error {
	_, err := r.users.InsertOne(ctx, u)
	return err
}

func (r *userRepo) GetUserByEmail(ctx context.Context, email string) (*model.User, error) {
	// Exact match, no case folding.
	return r.findOne(ctx, bson.M{"email": email})
}

func (r *userRepo) GetUserByID(ctx context.Context, id string) (*model.User, error) {
	return r.findOne(ctx, bson.M{"id": id})
}

func (r *userRepo) findOne(ctx context.Context, filter bson.M) (*model.User, error) {
	u := &model.User{}
	err := r.users.FindOne(ctx, filter).Decode(u)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, err
	}
	return u, nil
}

func (r *userRepo) AppendEnrollment(ctx context.Context, userID, courseID string) (bool, error) {
	res, err := r.users.UpdateOne(ctx,
		bson.M{"id": userID, "enrolled_courses": bson.M{"$ne": courseID}},
		bson.M{"$addToSet": bson.M{"enrolled_courses": courseID}},
	)
	if err != nil {
		return false, err
	}
	return res.ModifiedCount == 1, nil
}
