package httpserver

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/Skotchmaster/bistro_backend/internal/handlers"
	"github.com/Skotchmaster/bistro_backend/internal/middleware/auth"
)

type Deps struct {
	Guard          *auth.Guard
	JWTHandler     *handlers.JWTHandler
	MenuHandler    *handlers.MenuHandler
	ReviewHandler  *handlers.ReviewHandler
	CartHandler    *handlers.CartHandler
	UserHandler    *handlers.UserHandler
	PaymentHandler *handlers.PaymentHandler
	StatsHandler   *handlers.StatsHandler
	SearchHandler  *handlers.SearchHandler
}

func Register(e *echo.Echo, d *Deps) {
	e.GET("/", func(c echo.Context) error {
		return c.String(http.StatusOK, "Server is running...")
	})

	e.POST("/jwt", d.JWTHandler.IssueToken)

	e.GET("/menu", d.MenuHandler.GetMenu)
	e.GET("/menu/search", d.SearchHandler.Search)
	e.POST("/menu", d.MenuHandler.CreateMenuItem, d.Guard.RequireAuth, d.Guard.AdminOnly)
	e.DELETE("/menu/:id", d.MenuHandler.DeleteMenuItem, d.Guard.RequireAuth, d.Guard.AdminOnly)

	e.GET("/reviews", d.ReviewHandler.GetReviews)

	e.GET("/users", d.UserHandler.GetUsers, d.Guard.RequireAuth, d.Guard.AdminOnly)
	e.POST("/users", d.UserHandler.CreateUser)
	e.GET("/users/admin/:email", d.UserHandler.CheckAdmin, d.Guard.RequireAuth)
	// No guard: anyone can promote any user id to admin.
	e.PATCH("/users/admin/:id", d.UserHandler.PromoteToAdmin)

	e.GET("/carts", d.CartHandler.GetCart, d.Guard.RequireAuth)
	// No guard and no ownership check on cart writes.
	e.POST("/carts", d.CartHandler.AddToCart)
	e.DELETE("/carts/:id", d.CartHandler.DeleteCartItem)

	e.POST("/create-payment-intent", d.PaymentHandler.CreatePaymentIntent, d.Guard.RequireAuth)
	e.POST("/payments", d.PaymentHandler.RecordPayment)

	e.GET("/admin-stats", d.StatsHandler.AdminStats, d.Guard.RequireAuth, d.Guard.AdminOnly)
}
