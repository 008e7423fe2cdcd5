package controllers_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/lucabarone/trattoria-pos/models"
	"github.com/lucabarone/trattoria-pos/realtime"
	"github.com/lucabarone/trattoria-pos/repository"
	"github.com/lucabarone/trattoria-pos/router"
)

func setupServer(t *testing.T) (*gin.Engine, repository.Repository) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		DisableForeignKeyConstraintWhenMigrating: true,
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.Dish{}, &models.Order{}, &models.OrderItem{}))

	repo := repository.NewGormRepository(db)
	return router.SetupRouter(repo, realtime.NewHub()), repo
}

func doJSON(t *testing.T, r *gin.Engine, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var reader *bytes.Buffer
	if body != nil {
		payload, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewBuffer(payload)
	} else {
		reader = bytes.NewBuffer(nil)
	}

	req, err := http.NewRequest(method, path, reader)
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder, out interface{}) {
	t.Helper()
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), out))
}

func TestPing(t *testing.T) {
	r, _ := setupServer(t)
	w := doJSON(t, r, "GET", "/ping", nil)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestCreateDishValidation(t *testing.T) {
	r, _ := setupServer(t)

	// Missing price
	w := doJSON(t, r, "POST", "/api/dishes", map[string]interface{}{"name": "Pasta"})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	var resp struct {
		Message string `json:"message"`
		Errors  []struct {
			Field   string `json:"field"`
			Message string `json:"message"`
		} `json:"errors"`
	}
	decode(t, w, &resp)
	assert.Equal(t, "Dati non validi", resp.Message)
	require.NotEmpty(t, resp.Errors)
	assert.Equal(t, "Price", resp.Errors[0].Field)

	// Price with one fractional digit
	w = doJSON(t, r, "POST", "/api/dishes", map[string]interface{}{"name": "Pasta", "price": "8.0"})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// Unknown category
	w = doJSON(t, r, "POST", "/api/dishes", map[string]interface{}{
		"name": "Pasta", "price": "8.00", "category": "fritti",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestDishLifecycle(t *testing.T) {
	r, _ := setupServer(t)

	w := doJSON(t, r, "POST", "/api/dishes", map[string]interface{}{
		"name": "Pasta", "price": "8.00", "category": "primi",
	})
	require.Equal(t, http.StatusOK, w.Code)
	var dish models.Dish
	decode(t, w, &dish)
	require.NotEmpty(t, dish.ID)

	// Partial update: only the price changes.
	w = doJSON(t, r, "PUT", "/api/dishes/"+dish.ID, map[string]interface{}{"price": "9.00"})
	require.Equal(t, http.StatusOK, w.Code)
	var updated models.Dish
	decode(t, w, &updated)
	assert.Equal(t, "9.00", updated.Price)
	assert.Equal(t, "Pasta", updated.Name)

	w = doJSON(t, r, "PUT", "/api/dishes/no-such-id", map[string]interface{}{"price": "9.00"})
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = doJSON(t, r, "GET", "/api/dishes", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var dishes []models.Dish
	decode(t, w, &dishes)
	assert.Len(t, dishes, 1)

	w = doJSON(t, r, "DELETE", "/api/dishes/"+dish.ID, nil)
	assert.Equal(t, http.StatusOK, w.Code)
	w = doJSON(t, r, "DELETE", "/api/dishes/"+dish.ID, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestCreateOrderValidation(t *testing.T) {
	r, _ := setupServer(t)

	// No items array at all
	w := doJSON(t, r, "POST", "/api/orders", map[string]interface{}{
		"order": map[string]interface{}{
			"tableNumber": "7", "customerName": "Anna",
			"total": "8.00", "paymentMethod": "cash",
		},
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// Bad payment method
	w = doJSON(t, r, "POST", "/api/orders", map[string]interface{}{
		"order": map[string]interface{}{
			"tableNumber": "7", "customerName": "Anna",
			"total": "8.00", "paymentMethod": "card",
		},
		"items": []map[string]interface{}{
			{"dishId": "x", "quantity": 1, "price": "8.00"},
		},
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// Zero quantity on an item
	w = doJSON(t, r, "POST", "/api/orders", map[string]interface{}{
		"order": map[string]interface{}{
			"tableNumber": "7", "customerName": "Anna",
			"total": "8.00", "paymentMethod": "cash",
		},
		"items": []map[string]interface{}{
			{"dishId": "x", "quantity": 0, "price": "8.00"},
		},
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestOrderLifecycle(t *testing.T) {
	r, repo := setupServer(t)

	dish, err := repo.CreateDish(models.InsertDish{Name: "Pasta", Price: "8.00", Category: "primi"})
	require.NoError(t, err)

	w := doJSON(t, r, "POST", "/api/orders", map[string]interface{}{
		"order": map[string]interface{}{
			"tableNumber":   "A3",
			"customerName":  "Anna",
			"covers":        2,
			"total":         "24.00",
			"paymentMethod": "pos",
		},
		"items": []map[string]interface{}{
			{"dishId": dish.ID, "quantity": 3, "price": "8.00"},
		},
	})
	require.Equal(t, http.StatusOK, w.Code)

	var created models.OrderWithItems
	decode(t, w, &created)
	assert.Equal(t, "24.00", created.Total)
	assert.Equal(t, "A3", created.TableNumber)
	assert.Equal(t, 2, created.Covers)
	require.Len(t, created.Items, 1)
	require.NotNil(t, created.Items[0].Dish)
	assert.Equal(t, "Pasta", created.Items[0].Dish.Name)

	w = doJSON(t, r, "GET", "/api/orders/"+created.ID, nil)
	assert.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, r, "GET", "/api/orders/active", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var active []models.OrderWithItems
	decode(t, w, &active)
	require.Len(t, active, 1)

	w = doJSON(t, r, "PUT", "/api/orders/"+created.ID+"/complete", nil)
	assert.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, r, "PUT", "/api/orders/no-such-id/complete", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = doJSON(t, r, "GET", "/api/orders/active", nil)
	require.Equal(t, http.StatusOK, w.Code)
	active = nil
	decode(t, w, &active)
	assert.Empty(t, active)

	w = doJSON(t, r, "GET", "/api/orders/no-such-id", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestDailyStatsEndpoint(t *testing.T) {
	r, repo := setupServer(t)

	dish, err := repo.CreateDish(models.InsertDish{Name: "Pasta", Price: "8.00", Category: "primi"})
	require.NoError(t, err)
	_, err = repo.CreateOrder(models.InsertOrder{
		TableNumber: "1", CustomerName: "Mario", Total: "24.00", PaymentMethod: "cash",
	}, []models.InsertOrderItem{{DishID: dish.ID, Quantity: 3, Price: "8.00"}})
	require.NoError(t, err)

	w := doJSON(t, r, "GET", "/api/analytics/daily", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var stats models.DailyStats
	decode(t, w, &stats)
	assert.Equal(t, 1, stats.TotalOrders)
	assert.InDelta(t, 24.0, stats.TotalRevenue, 0.001)
	require.Len(t, stats.DishSales, 1)
	assert.Equal(t, "Pasta", stats.DishSales[0].Dish.Name)
	assert.Equal(t, 3, stats.DishSales[0].Quantity)
	assert.InDelta(t, 24.0, stats.DishSales[0].Revenue, 0.001)
	assert.InDelta(t, 100.0, stats.PaymentStats.Cash.Percentage, 0.001)
}

func TestClearAllDataEndpoint(t *testing.T) {
	r, repo := setupServer(t)

	dish, err := repo.CreateDish(models.InsertDish{Name: "Pasta", Price: "8.00", Category: "primi"})
	require.NoError(t, err)
	_, err = repo.CreateOrder(models.InsertOrder{
		TableNumber: "1", CustomerName: "Mario", Total: "8.00", PaymentMethod: "cash",
	}, []models.InsertOrderItem{{DishID: dish.ID, Quantity: 1, Price: "8.00"}})
	require.NoError(t, err)

	w := doJSON(t, r, "DELETE", "/api/data/clear-except-menu", nil)
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, r, "GET", "/api/orders", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var orders []models.Order
	decode(t, w, &orders)
	assert.Empty(t, orders)

	w = doJSON(t, r, "GET", "/api/dishes", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var dishes []models.Dish
	decode(t, w, &dishes)
	assert.Len(t, dishes, 1)
}
