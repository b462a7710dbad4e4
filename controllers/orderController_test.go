package controllers_test

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/laibaafzal969/Bakery-BE/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func orderBody(productIds []uint) map[string]any {
	return map[string]any{
		"customerName": "Ayesha",
		"email":        "ayesha@bakery.test",
		"totalPrice":   12.5,
		"address":      "12 Mall Road",
		"productIds":   productIds,
	}
}

func TestCreateOrderSkipsMissingProducts(t *testing.T) {
	server, _ := setupTestRouter(t)
	p1 := createProduct(t, server, "Croissant", 2.5)
	p2 := createProduct(t, server, "Baguette", 1.8)

	recorder := performRequest(t, server, http.MethodPost, "/api/orders", orderBody([]uint{p1.ID, p2.ID, 9999}), "")
	require.Equal(t, http.StatusOK, recorder.Code)

	var order models.Order
	decodeBody(t, recorder, &order)
	require.NotZero(t, order.ID)
	assert.Equal(t, models.OrderStatusPending, order.Status)
	require.Len(t, order.Products, 2)

	linked := []uint{order.Products[0].ID, order.Products[1].ID}
	assert.ElementsMatch(t, []uint{p1.ID, p2.ID}, linked)
}

func TestCreateOrderDedupesProductIds(t *testing.T) {
	server, _ := setupTestRouter(t)
	p1 := createProduct(t, server, "Croissant", 2.5)

	recorder := performRequest(t, server, http.MethodPost, "/api/orders", orderBody([]uint{p1.ID, p1.ID, p1.ID}), "")
	require.Equal(t, http.StatusOK, recorder.Code)

	var order models.Order
	decodeBody(t, recorder, &order)
	assert.Len(t, order.Products, 1)

	list := performRequest(t, server, http.MethodGet, "/api/orders", nil, "")
	var orders []models.Order
	decodeBody(t, list, &orders)
	require.Len(t, orders, 1)
	assert.Len(t, orders[0].Products, 1)
}

func TestCreateOrderWithoutProducts(t *testing.T) {
	server, _ := setupTestRouter(t)

	recorder := performRequest(t, server, http.MethodPost, "/api/orders", orderBody(nil), "")
	require.Equal(t, http.StatusOK, recorder.Code)

	var order models.Order
	decodeBody(t, recorder, &order)
	assert.NotZero(t, order.ID)
	assert.Empty(t, order.Products)
}

func TestCreateOrderMissingFields(t *testing.T) {
	server, _ := setupTestRouter(t)

	recorder := performRequest(t, server, http.MethodPost, "/api/orders", map[string]any{
		"email": "ayesha@bakery.test",
	}, "")
	assert.Equal(t, http.StatusBadRequest, recorder.Code)
}

func TestGetOrdersIncludesProducts(t *testing.T) {
	server, _ := setupTestRouter(t)
	p1 := createProduct(t, server, "Croissant", 2.5)
	performRequest(t, server, http.MethodPost, "/api/orders", orderBody([]uint{p1.ID}), "")

	recorder := performRequest(t, server, http.MethodGet, "/api/orders", nil, "")
	require.Equal(t, http.StatusOK, recorder.Code)

	var orders []models.Order
	decodeBody(t, recorder, &orders)
	require.Len(t, orders, 1)
	require.Len(t, orders[0].Products, 1)
	assert.Equal(t, "Croissant", orders[0].Products[0].Name)
}

func TestUpdateOrderStatus(t *testing.T) {
	server, _ := setupTestRouter(t)

	create := performRequest(t, server, http.MethodPost, "/api/orders", orderBody(nil), "")
	var order models.Order
	decodeBody(t, create, &order)

	recorder := performRequest(t, server, http.MethodPut, fmt.Sprintf("/api/orders/%d", order.ID), map[string]any{
		"status": models.OrderStatusPreparing,
	}, validToken(t))
	require.Equal(t, http.StatusOK, recorder.Code)

	list := performRequest(t, server, http.MethodGet, "/api/orders", nil, "")
	var orders []models.Order
	decodeBody(t, list, &orders)
	require.Len(t, orders, 1)
	assert.Equal(t, models.OrderStatusPreparing, orders[0].Status)
}

func TestUpdateOrderStatusRejectsUnknownValue(t *testing.T) {
	server, _ := setupTestRouter(t)

	create := performRequest(t, server, http.MethodPost, "/api/orders", orderBody(nil), "")
	var order models.Order
	decodeBody(t, create, &order)

	recorder := performRequest(t, server, http.MethodPut, fmt.Sprintf("/api/orders/%d", order.ID), map[string]any{
		"status": "Baking",
	}, validToken(t))
	assert.Equal(t, http.StatusBadRequest, recorder.Code)
}

func TestUpdateOrderStatusRequiresAuth(t *testing.T) {
	server, _ := setupTestRouter(t)

	recorder := performRequest(t, server, http.MethodPut, "/api/orders/1", map[string]any{
		"status": models.OrderStatusDelivered,
	}, "")
	assert.Equal(t, http.StatusUnauthorized, recorder.Code)
}

func TestUpdateOrderStatusNotFound(t *testing.T) {
	server, _ := setupTestRouter(t)

	recorder := performRequest(t, server, http.MethodPut, "/api/orders/9999", map[string]any{
		"status": models.OrderStatusDelivered,
	}, validToken(t))
	assert.Equal(t, http.StatusNotFound, recorder.Code)
}
