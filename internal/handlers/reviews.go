package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

type ReviewHandler struct {
	Reviews ReviewStore
}

func (h *ReviewHandler) GetReviews(c echo.Context) error {
	reviews, err := h.Reviews.ListAll(c.Request().Context())
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, reviews)
}
