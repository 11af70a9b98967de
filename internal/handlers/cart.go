package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/Skotchmaster/bistro_backend/internal/logging"
	"github.com/Skotchmaster/bistro_backend/internal/middleware/auth"
	"github.com/Skotchmaster/bistro_backend/internal/models"
	"github.com/Skotchmaster/bistro_backend/internal/mykafka"
)

type CartHandler struct {
	Carts    CartStore
	Producer *mykafka.Producer
}

// GetCart lists cart items for the email in the query string. The query runs
// before the email checks.
func (h *CartHandler) GetCart(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "cart_get")

	email := c.QueryParam("email")
	items, err := h.Carts.ListByEmail(ctx, email)
	if err != nil {
		l.Error("get_cart_failed", "status", 500, "reason", "db_error", "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	if email == "" {
		return c.JSON(http.StatusOK, []models.CartItem{})
	}
	if email != auth.GetEmail(c) {
		l.Warn("get_cart_failed", "status", 403, "reason", "email_mismatch")
		return forbidden(c)
	}

	return c.JSON(http.StatusOK, items)
}

// AddToCart inserts the item as-is. The route carries no guard and no
// ownership check.
func (h *CartHandler) AddToCart(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "cart_add")

	var item models.CartItem
	if err := c.Bind(&item); err != nil {
		l.Warn("add_to_cart_failed", "status", 400, "error", err)
		return echo.NewHTTPError(http.StatusBadRequest, "invalid body")
	}

	id, err := h.Carts.Insert(ctx, item)
	if err != nil {
		l.Error("add_to_cart_failed", "status", 500, "reason", "db_error", "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	publish(c, h.Producer, "cart_events", item.Email, map[string]any{
		"type":   "cart_item_added",
		"itemID": id.Hex(),
		"email":  item.Email,
	})

	l.Info("add_to_cart_success", "status", 200, "itemID", id.Hex())
	return c.JSON(http.StatusOK, echo.Map{"insertedId": id.Hex()})
}

// DeleteCartItem deletes by id. Unguarded, like AddToCart.
func (h *CartHandler) DeleteCartItem(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "cart_delete")

	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		l.Warn("delete_cart_failed", "status", 400, "reason", "invalid_id", "error", err)
		return echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}

	deleted, err := h.Carts.DeleteByID(ctx, id)
	if err != nil {
		l.Error("delete_cart_failed", "status", 500, "reason", "db_error", "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	publish(c, h.Producer, "cart_events", id.Hex(), map[string]any{
		"type":   "cart_item_deleted",
		"itemID": id.Hex(),
	})

	return c.JSON(http.StatusOK, echo.Map{"deletedCount": deleted})
}
