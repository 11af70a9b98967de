package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/Skotchmaster/bistro_backend/internal/models"
	"github.com/Skotchmaster/bistro_backend/internal/service"
)

var testSecret = []byte("test_secret")

func newTokenService() *service.TokenService {
	return &service.TokenService{JWTSecret: testSecret}
}

func issueToken(t *testing.T, email string) string {
	t.Helper()
	token, err := newTokenService().Issue(jwt.MapClaims{"email": email})
	require.NoError(t, err)
	return token
}

func newContext(t *testing.T, method, target string, body interface{}, token string) (*httptest.ResponseRecorder, echo.Context) {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(data)
	} else {
		reader = bytes.NewReader(nil)
	}

	e := echo.New()
	req := httptest.NewRequest(method, target, reader)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	if token != "" {
		req.Header.Set(echo.HeaderAuthorization, "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	return rec, e.NewContext(req, rec)
}

func requireHTTPError(t *testing.T, err error, code int) {
	t.Helper()
	he, ok := err.(*echo.HTTPError)
	require.True(t, ok, "expected HTTPError, got %T", err)
	require.Equal(t, code, he.Code)
}

type fakeMenuStore struct {
	items []models.MenuItem
}

func (s *fakeMenuStore) ListAll(ctx context.Context) ([]models.MenuItem, error) {
	return append([]models.MenuItem{}, s.items...), nil
}

func (s *fakeMenuStore) Insert(ctx context.Context, item models.MenuItem) (primitive.ObjectID, error) {
	item.ID = primitive.NewObjectID()
	s.items = append(s.items, item)
	return item.ID, nil
}

func (s *fakeMenuStore) DeleteByID(ctx context.Context, id primitive.ObjectID) (int64, error) {
	for i, item := range s.items {
		if item.ID == id {
			s.items = append(s.items[:i], s.items[i+1:]...)
			return 1, nil
		}
	}
	return 0, nil
}

func (s *fakeMenuStore) Count(ctx context.Context) (int64, error) {
	return int64(len(s.items)), nil
}

type fakeReviewStore struct {
	reviews []models.Review
}

func (s *fakeReviewStore) ListAll(ctx context.Context) ([]models.Review, error) {
	return append([]models.Review{}, s.reviews...), nil
}

type fakeCartStore struct {
	items []models.CartItem
}

func (s *fakeCartStore) ListByEmail(ctx context.Context, email string) ([]models.CartItem, error) {
	matched := []models.CartItem{}
	for _, item := range s.items {
		if item.Email == email {
			matched = append(matched, item)
		}
	}
	return matched, nil
}

func (s *fakeCartStore) Insert(ctx context.Context, item models.CartItem) (primitive.ObjectID, error) {
	item.ID = primitive.NewObjectID()
	s.items = append(s.items, item)
	return item.ID, nil
}

func (s *fakeCartStore) DeleteByID(ctx context.Context, id primitive.ObjectID) (int64, error) {
	return s.DeleteByIDs(ctx, []primitive.ObjectID{id})
}

func (s *fakeCartStore) DeleteByIDs(ctx context.Context, ids []primitive.ObjectID) (int64, error) {
	wanted := map[primitive.ObjectID]bool{}
	for _, id := range ids {
		wanted[id] = true
	}

	var kept []models.CartItem
	var deleted int64
	for _, item := range s.items {
		if wanted[item.ID] {
			deleted++
			continue
		}
		kept = append(kept, item)
	}
	s.items = kept
	return deleted, nil
}

type fakeUserStore struct {
	users []models.User
}

func (s *fakeUserStore) ListAll(ctx context.Context) ([]models.User, error) {
	return append([]models.User{}, s.users...), nil
}

func (s *fakeUserStore) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	for i := range s.users {
		if s.users[i].Email == email {
			u := s.users[i]
			return &u, nil
		}
	}
	return nil, nil
}

func (s *fakeUserStore) Insert(ctx context.Context, user models.User) (primitive.ObjectID, error) {
	user.ID = primitive.NewObjectID()
	s.users = append(s.users, user)
	return user.ID, nil
}

func (s *fakeUserStore) PromoteToAdmin(ctx context.Context, id primitive.ObjectID) (int64, error) {
	for i := range s.users {
		if s.users[i].ID == id {
			s.users[i].Role = "admin"
			return 1, nil
		}
	}
	return 0, nil
}

func (s *fakeUserStore) Count(ctx context.Context) (int64, error) {
	return int64(len(s.users)), nil
}

type fakePaymentStore struct {
	payments []models.Payment
}

func (s *fakePaymentStore) Insert(ctx context.Context, payment models.Payment) (primitive.ObjectID, error) {
	payment.ID = primitive.NewObjectID()
	s.payments = append(s.payments, payment)
	return payment.ID, nil
}

func (s *fakePaymentStore) Count(ctx context.Context) (int64, error) {
	return int64(len(s.payments)), nil
}

func (s *fakePaymentStore) TotalRevenue(ctx context.Context) (float64, error) {
	var total float64
	for _, p := range s.payments {
		total += p.Price
	}
	return total, nil
}

type fakeGateway struct {
	amount   int64
	currency string
}

func (g *fakeGateway) CreateIntent(ctx context.Context, amount int64, currency string) (string, error) {
	g.amount = amount
	g.currency = currency
	return "pi_test_secret", nil
}
