package handlers

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/Skotchmaster/bistro_backend/internal/models"
)

// Store interfaces are the slices of the repositories each handler group
// consumes. internal/repository implements all of them over mongo; the tests
// substitute in-memory fakes.

type MenuStore interface {
	ListAll(ctx context.Context) ([]models.MenuItem, error)
	Insert(ctx context.Context, item models.MenuItem) (primitive.ObjectID, error)
	DeleteByID(ctx context.Context, id primitive.ObjectID) (int64, error)
	Count(ctx context.Context) (int64, error)
}

type ReviewStore interface {
	ListAll(ctx context.Context) ([]models.Review, error)
}

type CartStore interface {
	ListByEmail(ctx context.Context, email string) ([]models.CartItem, error)
	Insert(ctx context.Context, item models.CartItem) (primitive.ObjectID, error)
	DeleteByID(ctx context.Context, id primitive.ObjectID) (int64, error)
	DeleteByIDs(ctx context.Context, ids []primitive.ObjectID) (int64, error)
}

type UserStore interface {
	ListAll(ctx context.Context) ([]models.User, error)
	FindByEmail(ctx context.Context, email string) (*models.User, error)
	Insert(ctx context.Context, user models.User) (primitive.ObjectID, error)
	PromoteToAdmin(ctx context.Context, id primitive.ObjectID) (int64, error)
	Count(ctx context.Context) (int64, error)
}

type PaymentStore interface {
	Insert(ctx context.Context, payment models.Payment) (primitive.ObjectID, error)
	Count(ctx context.Context) (int64, error)
	TotalRevenue(ctx context.Context) (float64, error)
}
