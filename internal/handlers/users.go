package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/Skotchmaster/bistro_backend/internal/logging"
	"github.com/Skotchmaster/bistro_backend/internal/middleware/auth"
	"github.com/Skotchmaster/bistro_backend/internal/models"
)

type UserHandler struct {
	Users UserStore
}

func (h *UserHandler) GetUsers(c echo.Context) error {
	users, err := h.Users.ListAll(c.Request().Context())
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, users)
}

// CreateUser inserts the user unless the email is already taken. The existence
// check and the insert are two separate operations, so a concurrent duplicate
// can slip through.
func (h *UserHandler) CreateUser(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "user_create")

	var user models.User
	if err := c.Bind(&user); err != nil {
		l.Warn("create_user_failed", "status", 400, "error", err)
		return echo.NewHTTPError(http.StatusBadRequest, "invalid body")
	}

	existing, err := h.Users.FindByEmail(ctx, user.Email)
	if err != nil {
		l.Error("create_user_failed", "status", 500, "reason", "db_error", "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	if existing != nil {
		l.Warn("create_user_skipped", "reason", "user_exists", "email", user.Email)
		return c.JSON(http.StatusOK, echo.Map{"message": "user already exists"})
	}

	id, err := h.Users.Insert(ctx, user)
	if err != nil {
		l.Error("create_user_failed", "status", 500, "reason", "db_error", "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	l.Info("create_user_success", "status", 200, "userID", id.Hex())
	return c.JSON(http.StatusOK, echo.Map{"insertedId": id.Hex()})
}

// CheckAdmin answers {admin: true|false} for the path email. Any mismatch with
// the authenticated email is reported as admin=false, never as 403.
func (h *UserHandler) CheckAdmin(c echo.Context) error {
	ctx := c.Request().Context()

	email := c.Param("email")
	if email != auth.GetEmail(c) {
		return c.JSON(http.StatusOK, echo.Map{"admin": false})
	}

	user, err := h.Users.FindByEmail(ctx, email)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	isAdmin := user != nil && user.Role == "admin"
	return c.JSON(http.StatusOK, echo.Map{"admin": isAdmin})
}

// PromoteToAdmin sets role=admin for the given user id. The route is
// registered without any guard.
func (h *UserHandler) PromoteToAdmin(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "user_promote")

	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		l.Warn("promote_failed", "status", 400, "reason", "invalid_id", "error", err)
		return echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}

	modified, err := h.Users.PromoteToAdmin(ctx, id)
	if err != nil {
		l.Error("promote_failed", "status", 500, "reason", "db_error", "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	l.Info("promote_success", "status", 200, "userID", id.Hex())
	return c.JSON(http.StatusOK, echo.Map{"modifiedCount": modified})
}
