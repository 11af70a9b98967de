package handlers

import (
	"net/http"

	"github.com/elastic/go-elasticsearch/v9"
	"github.com/labstack/echo/v4"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/Skotchmaster/bistro_backend/internal/logging"
	"github.com/Skotchmaster/bistro_backend/internal/models"
	"github.com/Skotchmaster/bistro_backend/internal/mykafka"
	"github.com/Skotchmaster/bistro_backend/internal/service/search"
)

type MenuHandler struct {
	Menu     MenuStore
	Producer *mykafka.Producer
	ES       *elasticsearch.Client
	ESIndex  string
}

func (h *MenuHandler) GetMenu(c echo.Context) error {
	items, err := h.Menu.ListAll(c.Request().Context())
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, items)
}

func (h *MenuHandler) CreateMenuItem(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "menu_create")

	var item models.MenuItem
	if err := c.Bind(&item); err != nil {
		l.Warn("create_menu_failed", "status", 400, "error", err)
		return echo.NewHTTPError(http.StatusBadRequest, "invalid body")
	}

	id, err := h.Menu.Insert(ctx, item)
	if err != nil {
		l.Error("create_menu_failed", "status", 500, "reason", "db_error", "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	item.ID = id
	h.indexItem(c, item)
	publish(c, h.Producer, "menu_events", id.Hex(), map[string]any{
		"type":   "menu_item_created",
		"itemID": id.Hex(),
		"name":   item.Name,
	})

	l.Info("create_menu_success", "status", 200, "itemID", id.Hex())
	return c.JSON(http.StatusOK, echo.Map{"insertedId": id.Hex()})
}

func (h *MenuHandler) DeleteMenuItem(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "menu_delete")

	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		l.Warn("delete_menu_failed", "status", 400, "reason", "invalid_id", "error", err)
		return echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}

	deleted, err := h.Menu.DeleteByID(ctx, id)
	if err != nil {
		l.Error("delete_menu_failed", "status", 500, "reason", "db_error", "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	h.dropFromIndex(c, id.Hex())
	publish(c, h.Producer, "menu_events", id.Hex(), map[string]any{
		"type":   "menu_item_deleted",
		"itemID": id.Hex(),
	})

	return c.JSON(http.StatusOK, echo.Map{"deletedCount": deleted})
}

// Index maintenance is best-effort: search lags the store rather than failing
// writes.
func (h *MenuHandler) indexItem(c echo.Context, item models.MenuItem) {
	if h.ES == nil {
		return
	}
	if err := search.IndexMenuItem(c.Request().Context(), h.ES, h.ESIndex, item); err != nil {
		logging.FromContext(c.Request().Context()).Error("es_index_failed", "itemID", item.ID.Hex(), "error", err)
	}
}

func (h *MenuHandler) dropFromIndex(c echo.Context, id string) {
	if h.ES == nil {
		return
	}
	if err := search.DeleteMenuItem(c.Request().Context(), h.ES, h.ESIndex, id); err != nil {
		logging.FromContext(c.Request().Context()).Error("es_delete_failed", "itemID", id, "error", err)
	}
}
