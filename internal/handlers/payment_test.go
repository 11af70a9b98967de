package handlers

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/Skotchmaster/bistro_backend/internal/middleware/auth"
	"github.com/Skotchmaster/bistro_backend/internal/models"
)

func TestCreatePaymentIntent(t *testing.T) {
	gateway := &fakeGateway{}
	guard := &auth.Guard{Tokens: newTokenService(), Users: &fakeUserStore{}}
	h := &PaymentHandler{Gateway: gateway}

	rec, c := newContext(t, http.MethodPost, "/create-payment-intent",
		map[string]float64{"price": 10.5}, issueToken(t, "alice@example.com"))

	require.NoError(t, guard.RequireAuth(h.CreatePaymentIntent)(c))
	require.Equal(t, http.StatusOK, rec.Code)

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.Equal(t, "pi_test_secret", body["clientSecret"])
	require.EqualValues(t, 1050, gateway.amount)
	require.Equal(t, "usd", gateway.currency)
}

func TestCreatePaymentIntentWithoutToken(t *testing.T) {
	guard := &auth.Guard{Tokens: newTokenService(), Users: &fakeUserStore{}}
	h := &PaymentHandler{Gateway: &fakeGateway{}}

	rec, c := newContext(t, http.MethodPost, "/create-payment-intent", map[string]float64{"price": 10.5}, "")
	require.NoError(t, guard.RequireAuth(h.CreatePaymentIntent)(c))
	require.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestRecordPayment(t *testing.T) {
	carts := &fakeCartStore{}
	id1, err := carts.Insert(t.Context(), models.CartItem{Email: "alice@example.com", Name: "pasta"})
	require.NoError(t, err)
	id2, err := carts.Insert(t.Context(), models.CartItem{Email: "alice@example.com", Name: "salad"})
	require.NoError(t, err)
	_, err = carts.Insert(t.Context(), models.CartItem{Email: "bob@example.com", Name: "soup"})
	require.NoError(t, err)

	payments := &fakePaymentStore{}
	h := &PaymentHandler{Payments: payments, Carts: carts}

	payment := models.Payment{
		Email:         "alice@example.com",
		Price:         20,
		TransactionID: "tx_123",
		CartItemIDs:   []string{id1.Hex(), id2.Hex()},
		Status:        "pending",
	}
	rec, c := newContext(t, http.MethodPost, "/payments", payment, "")

	require.NoError(t, h.RecordPayment(c))
	require.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		InsertResult map[string]interface{} `json:"insertResult"`
		DeleteResult map[string]interface{} `json:"deleteResult"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.Len(t, body.InsertResult["insertedId"], 24)
	require.EqualValues(t, 2, body.DeleteResult["deletedCount"])

	require.Len(t, payments.payments, 1)
	require.Equal(t, "tx_123", payments.payments[0].TransactionID)

	// only the paid-for items are gone
	require.Len(t, carts.items, 1)
	require.Equal(t, "soup", carts.items[0].Name)
}

func TestRecordPaymentInvalidCartItemID(t *testing.T) {
	payments := &fakePaymentStore{}
	h := &PaymentHandler{Payments: payments, Carts: &fakeCartStore{}}

	payment := models.Payment{CartItemIDs: []string{"nope"}}
	_, c := newContext(t, http.MethodPost, "/payments", payment, "")

	err := h.RecordPayment(c)
	require.Error(t, err)
	requireHTTPError(t, err, http.StatusBadRequest)
	require.Empty(t, payments.payments)
}
