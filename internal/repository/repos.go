package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/Skotchmaster/bistro_backend/internal/models"
)

type Repositories struct {
	Menu     *MenuRepository
	Reviews  *ReviewRepository
	Carts    *CartRepository
	Users    *UserRepository
	Payments *PaymentRepository
}

func New(db *mongo.Database) *Repositories {
	return &Repositories{
		Menu:     &MenuRepository{NewCollection(db.Collection("menu"))},
		Reviews:  &ReviewRepository{NewCollection(db.Collection("reviews"))},
		Carts:    &CartRepository{NewCollection(db.Collection("carts"))},
		Users:    &UserRepository{NewCollection(db.Collection("users"))},
		Payments: &PaymentRepository{NewCollection(db.Collection("payments"))},
	}
}

type MenuRepository struct {
	Collection
}

func (r *MenuRepository) ListAll(ctx context.Context) ([]models.MenuItem, error) {
	items := []models.MenuItem{}
	err := r.Collection.ListAll(ctx, &items)
	return items, err
}

func (r *MenuRepository) Insert(ctx context.Context, item models.MenuItem) (primitive.ObjectID, error) {
	return r.InsertOne(ctx, item)
}

func (r *MenuRepository) DeleteByID(ctx context.Context, id primitive.ObjectID) (int64, error) {
	return r.DeleteOne(ctx, bson.M{"_id": id})
}

func (r *MenuRepository) Count(ctx context.Context) (int64, error) {
	return r.EstimatedCount(ctx)
}

type ReviewRepository struct {
	Collection
}

func (r *ReviewRepository) ListAll(ctx context.Context) ([]models.Review, error) {
	reviews := []models.Review{}
	err := r.Collection.ListAll(ctx, &reviews)
	return reviews, err
}

type CartRepository struct {
	Collection
}

func (r *CartRepository) ListByEmail(ctx context.Context, email string) ([]models.CartItem, error) {
	items := []models.CartItem{}
	err := r.FindBy(ctx, bson.M{"email": email}, &items)
	return items, err
}

func (r *CartRepository) Insert(ctx context.Context, item models.CartItem) (primitive.ObjectID, error) {
	return r.InsertOne(ctx, item)
}

func (r *CartRepository) DeleteByID(ctx context.Context, id primitive.ObjectID) (int64, error) {
	return r.DeleteOne(ctx, bson.M{"_id": id})
}

func (r *CartRepository) DeleteByIDs(ctx context.Context, ids []primitive.ObjectID) (int64, error) {
	return r.DeleteMany(ctx, bson.M{"_id": bson.M{"$in": ids}})
}

type UserRepository struct {
	Collection
}

func (r *UserRepository) ListAll(ctx context.Context) ([]models.User, error) {
	users := []models.User{}
	err := r.Collection.ListAll(ctx, &users)
	return users, err
}

// FindByEmail returns (nil, nil) when no user carries the email.
func (r *UserRepository) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	var user models.User
	found, err := r.FindOneBy(ctx, bson.M{"email": email}, &user)
	if err != nil || !found {
		return nil, err
	}
	return &user, nil
}

func (r *UserRepository) Insert(ctx context.Context, user models.User) (primitive.ObjectID, error) {
	return r.InsertOne(ctx, user)
}

func (r *UserRepository) PromoteToAdmin(ctx context.Context, id primitive.ObjectID) (int64, error) {
	return r.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": bson.M{"role": "admin"}})
}

func (r *UserRepository) Count(ctx context.Context) (int64, error) {
	return r.EstimatedCount(ctx)
}

type PaymentRepository struct {
	Collection
}

func (r *PaymentRepository) Insert(ctx context.Context, payment models.Payment) (primitive.ObjectID, error) {
	return r.InsertOne(ctx, payment)
}

func (r *PaymentRepository) Count(ctx context.Context) (int64, error) {
	return r.EstimatedCount(ctx)
}

// TotalRevenue sums price across all payments, 0 when the collection is empty.
func (r *PaymentRepository) TotalRevenue(ctx context.Context) (float64, error) {
	pipeline := mongo.Pipeline{
		{{Key: "$group", Value: bson.M{
			"_id":   nil,
			"total": bson.M{"$sum": "$price"},
		}}},
	}

	var result []struct {
		Total float64 `bson:"total"`
	}
	if err := r.Aggregate(ctx, pipeline, &result); err != nil {
		return 0, err
	}
	if len(result) == 0 {
		return 0, nil
	}
	return result[0].Total, nil
}
