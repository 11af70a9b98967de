package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/Skotchmaster/bistro_backend/internal/logging"
	"github.com/Skotchmaster/bistro_backend/internal/mykafka"
)

func forbidden(c echo.Context) error {
	return c.JSON(http.StatusForbidden, echo.Map{
		"error":   true,
		"message": "forbidden access",
	})
}

// publish sends one domain event, logging failures instead of failing the
// request.
func publish(c echo.Context, producer *mykafka.Producer, topic, key string, event map[string]any) {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	if err := producer.PublishEvent(ctx, topic, key, event); err != nil {
		logging.FromContext(c.Request().Context()).Error("kafka_publish_failed", "topic", topic, "error", err)
	}
}
