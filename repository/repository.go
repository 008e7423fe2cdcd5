package repository

import "github.com/lucabarone/trattoria-pos/models"

// Repository is the single source of truth for dishes, orders and order
// items. "Not found" is reported with a nil/false result, never an
// error; errors are reserved for storage failures.
type Repository interface {
	// Dishes
	GetDishes() ([]models.Dish, error)
	GetDish(id string) (*models.Dish, error)
	CreateDish(in models.InsertDish) (*models.Dish, error)
	UpdateDish(id string, in models.UpdateDish) (*models.Dish, error)
	DeleteDish(id string) (bool, error)

	// Orders
	GetOrders() ([]models.Order, error)
	GetActiveOrders() ([]models.OrderWithItems, error)
	GetOrder(id string) (*models.OrderWithItems, error)
	CreateOrder(in models.InsertOrder, items []models.InsertOrderItem) (*models.OrderWithItems, error)
	CompleteOrder(id string) (bool, error)

	// Analytics
	GetDailyStats() (*models.DailyStats, error)

	// Data management
	ClearAllDataExceptMenu() error
}
