package handlers

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/Skotchmaster/bistro_backend/internal/middleware/auth"
	"github.com/Skotchmaster/bistro_backend/internal/models"
)

func TestGetMenu(t *testing.T) {
	store := &fakeMenuStore{items: []models.MenuItem{
		{Name: "pasta", Category: "dinner", Price: 12.5},
		{Name: "salad", Category: "salad", Price: 7},
	}}
	h := &MenuHandler{Menu: store}

	rec, c := newContext(t, http.MethodGet, "/menu", nil, "")
	require.NoError(t, h.GetMenu(c))
	require.Equal(t, http.StatusOK, rec.Code)

	var items []models.MenuItem
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &items))
	require.Len(t, items, 2)
	require.Equal(t, "pasta", items[0].Name)
}

func TestCreateMenuItemWithoutToken(t *testing.T) {
	users := &fakeUserStore{}
	guard := &auth.Guard{Tokens: newTokenService(), Users: users}
	h := &MenuHandler{Menu: &fakeMenuStore{}}

	rec, c := newContext(t, http.MethodPost, "/menu", models.MenuItem{Name: "pasta"}, "")
	require.NoError(t, guard.RequireAuth(guard.AdminOnly(h.CreateMenuItem))(c))
	require.Equal(t, http.StatusUnauthorized, rec.Code)

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.Equal(t, true, body["error"])
	require.Equal(t, "unauthorized access", body["message"])
}

func TestCreateMenuItemAsAdmin(t *testing.T) {
	users := &fakeUserStore{users: []models.User{
		{Email: "admin@example.com", Role: "admin"},
	}}
	guard := &auth.Guard{Tokens: newTokenService(), Users: users}
	store := &fakeMenuStore{}
	h := &MenuHandler{Menu: store}

	item := models.MenuItem{Name: "pasta", Category: "dinner", Price: 12.5}
	rec, c := newContext(t, http.MethodPost, "/menu", item, issueToken(t, "admin@example.com"))

	require.NoError(t, guard.RequireAuth(guard.AdminOnly(h.CreateMenuItem))(c))
	require.Equal(t, http.StatusOK, rec.Code)

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.Len(t, body["insertedId"], 24)
	require.Len(t, store.items, 1)
	require.Equal(t, "pasta", store.items[0].Name)
}

func TestCreateMenuItemAsNonAdmin(t *testing.T) {
	users := &fakeUserStore{users: []models.User{
		{Email: "bob@example.com"},
	}}
	guard := &auth.Guard{Tokens: newTokenService(), Users: users}
	store := &fakeMenuStore{}
	h := &MenuHandler{Menu: store}

	rec, c := newContext(t, http.MethodPost, "/menu", models.MenuItem{Name: "pasta"}, issueToken(t, "bob@example.com"))

	require.NoError(t, guard.RequireAuth(guard.AdminOnly(h.CreateMenuItem))(c))
	require.Equal(t, http.StatusForbidden, rec.Code)
	require.Empty(t, store.items)
}

func TestDeleteMenuItem(t *testing.T) {
	store := &fakeMenuStore{}
	h := &MenuHandler{Menu: store}

	id, err := store.Insert(t.Context(), models.MenuItem{Name: "pasta"})
	require.NoError(t, err)

	rec, c := newContext(t, http.MethodDelete, "/menu/"+id.Hex(), nil, "")
	c.SetParamNames("id")
	c.SetParamValues(id.Hex())

	require.NoError(t, h.DeleteMenuItem(c))
	require.Equal(t, http.StatusOK, rec.Code)

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.EqualValues(t, 1, body["deletedCount"])
	require.Empty(t, store.items)
}

func TestDeleteMenuItemInvalidID(t *testing.T) {
	h := &MenuHandler{Menu: &fakeMenuStore{}}

	_, c := newContext(t, http.MethodDelete, "/menu/nope", nil, "")
	c.SetParamNames("id")
	c.SetParamValues("nope")

	err := h.DeleteMenuItem(c)
	require.Error(t, err)
	requireHTTPError(t, err, http.StatusBadRequest)
}
