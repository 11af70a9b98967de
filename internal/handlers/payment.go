package handlers

import (
	"math"
	"net/http"

	"github.com/labstack/echo/v4"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/Skotchmaster/bistro_backend/internal/logging"
	"github.com/Skotchmaster/bistro_backend/internal/models"
	"github.com/Skotchmaster/bistro_backend/internal/mykafka"
	"github.com/Skotchmaster/bistro_backend/internal/stripegw"
)

type PaymentHandler struct {
	Payments PaymentStore
	Carts    CartStore
	Gateway  stripegw.Gateway
	Producer *mykafka.Producer
}

// CreatePaymentIntent converts price to minor currency units and asks the
// gateway for a card payment intent in USD.
func (h *PaymentHandler) CreatePaymentIntent(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "payment_intent")

	var req struct {
		Price float64 `json:"price"`
	}
	if err := c.Bind(&req); err != nil {
		l.Warn("payment_intent_failed", "status", 400, "error", err)
		return echo.NewHTTPError(http.StatusBadRequest, "invalid body")
	}

	amount := int64(math.Round(req.Price * 100))
	secret, err := h.Gateway.CreateIntent(ctx, amount, "usd")
	if err != nil {
		l.Error("payment_intent_failed", "status", 500, "reason", "gateway_error", "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	l.Info("payment_intent_success", "status", 200, "amount", amount)
	return c.JSON(http.StatusOK, echo.Map{"clientSecret": secret})
}

// RecordPayment inserts the payment document and then removes the purchased
// cart items. Two independent writes: if the cleanup fails after the insert
// succeeded, the payment stays recorded and the cart keeps its items.
func (h *PaymentHandler) RecordPayment(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "payment_record")

	var payment models.Payment
	if err := c.Bind(&payment); err != nil {
		l.Warn("record_payment_failed", "status", 400, "error", err)
		return echo.NewHTTPError(http.StatusBadRequest, "invalid body")
	}

	ids := make([]primitive.ObjectID, 0, len(payment.CartItemIDs))
	for _, raw := range payment.CartItemIDs {
		id, err := primitive.ObjectIDFromHex(raw)
		if err != nil {
			l.Warn("record_payment_failed", "status", 400, "reason", "invalid_cart_item_id", "error", err)
			return echo.NewHTTPError(http.StatusBadRequest, "invalid cart item id")
		}
		ids = append(ids, id)
	}

	insertedID, err := h.Payments.Insert(ctx, payment)
	if err != nil {
		l.Error("record_payment_failed", "status", 500, "reason", "db_error", "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	deleted, err := h.Carts.DeleteByIDs(ctx, ids)
	if err != nil {
		l.Error("record_payment_failed", "status", 500, "reason", "cart_cleanup_error", "paymentID", insertedID.Hex(), "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	publish(c, h.Producer, "payment_events", payment.Email, map[string]any{
		"type":          "payment_recorded",
		"paymentID":     insertedID.Hex(),
		"email":         payment.Email,
		"price":         payment.Price,
		"transactionId": payment.TransactionID,
	})

	l.Info("record_payment_success", "status", 200, "paymentID", insertedID.Hex(), "cartItemsDeleted", deleted)
	return c.JSON(http.StatusOK, echo.Map{
		"insertResult": echo.Map{"insertedId": insertedID.Hex()},
		"deleteResult": echo.Map{"deletedCount": deleted},
	})
}
