package repository

import (
	"context"

	"genmoney/internal/model"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type PaymentRepository interface {
	CreatePayment(ctx context.Context, p *model.Payment) error
	ListPaymentsByUserID(ctx context.Context, userID string) ([]model.Payment, error)
	// DeletePayment removes a payment record. Only used to compensate a
	// purchase whose enrollment write lost a race.
	DeletePayment(ctx context.Context, id string) error
}

type paymentRepo struct {
	payments *mongo.Collection
}

func NewPaymentRepo(db *mongo.Database) PaymentRepository {
	return &paymentRepo{payments: db.Collection("payments")}
}

func (r *paymentRepo) CreatePayment(ctx context.Context, p *model.Payment) error {
	_, err := r.payments.InsertOne(ctx, p)
	return err
}

func (r *paymentRepo) ListPaymentsByUserID(ctx context.Context, userID string) ([]model.Payment, error) {
	cur, err := r.payments.Find(ctx, bson.M{"user_id": userID}, options.Find().SetLimit(listCap))
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var payments []model.Payment
	if err := cur.All(ctx, &payments); err != nil {
		return nil, err
	}
	return payments, nil
}

func (r *paymentRepo) DeletePayment(ctx context.Context, id string) error {
	_, err := r.payments.DeleteOne(ctx, bson.M{"id": id})
	return err
}
