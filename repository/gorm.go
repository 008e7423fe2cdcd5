package repository

import (
	"errors"
	"strconv"
	"time"

	"gorm.io/gorm"

	"github.com/lucabarone/trattoria-pos/models"
)

type GormRepository struct {
	db *gorm.DB
}

var _ Repository = (*GormRepository)(nil)

func NewGormRepository(db *gorm.DB) *GormRepository {
	return &GormRepository{db: db}
}

func (r *GormRepository) GetDishes() ([]models.Dish, error) {
	var dishes []models.Dish
	if err := r.db.Find(&dishes).Error; err != nil {
		return nil, err
	}
	models.SortDishesByCategory(dishes)
	return dishes, nil
}

func (r *GormRepository) GetDish(id string) (*models.Dish, error) {
	var dish models.Dish
	if err := r.db.First(&dish, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &dish, nil
}

func (r *GormRepository) CreateDish(in models.InsertDish) (*models.Dish, error) {
	dish := models.Dish{
		Name:     in.Name,
		Price:    in.Price,
		Category: in.Category,
	}
	if dish.Category == "" {
		dish.Category = models.CategoryPrimi
	}
	if err := r.db.Create(&dish).Error; err != nil {
		return nil, err
	}
	return &dish, nil
}

func (r *GormRepository) UpdateDish(id string, in models.UpdateDish) (*models.Dish, error) {
	var dish models.Dish
	if err := r.db.First(&dish, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	if in.Name != nil {
		dish.Name = *in.Name
	}
	if in.Price != nil {
		dish.Price = *in.Price
	}
	if in.Category != nil {
		dish.Category = *in.Category
	}

	if err := r.db.Save(&dish).Error; err != nil {
		return nil, err
	}
	return &dish, nil
}

func (r *GormRepository) DeleteDish(id string) (bool, error) {
	res := r.db.Delete(&models.Dish{}, "id = ?", id)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

func (r *GormRepository) GetOrders() ([]models.Order, error) {
	var orders []models.Order
	if err := r.db.Find(&orders).Error; err != nil {
		return nil, err
	}
	return orders, nil
}

// GetActiveOrders returns the live order board: active orders only,
// most recent first, items joined with their current dish.
func (r *GormRepository) GetActiveOrders() ([]models.OrderWithItems, error) {
	var orders []models.Order
	if err := r.db.
		Where("status = ?", models.OrderStatusActive).
		Order("created_at desc").
		Find(&orders).Error; err != nil {
		return nil, err
	}
	return r.attachItems(orders)
}

func (r *GormRepository) GetOrder(id string) (*models.OrderWithItems, error) {
	var order models.Order
	if err := r.db.First(&order, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	views, err := r.attachItems([]models.Order{order})
	if err != nil {
		return nil, err
	}
	return &views[0], nil
}

// CreateOrder persists the order and all of its items in one
// transaction: no partial order is ever observable.
func (r *GormRepository) CreateOrder(in models.InsertOrder, items []models.InsertOrderItem) (*models.OrderWithItems, error) {
	order := models.Order{
		TableNumber:   in.TableNumber,
		CustomerName:  in.CustomerName,
		Covers:        in.Covers,
		Total:         in.Total,
		PaymentMethod: in.PaymentMethod,
		Status:        in.Status,
		CreatedAt:     time.Now(),
	}
	if order.Covers == 0 {
		order.Covers = 1
	}
	if order.Status == "" {
		order.Status = models.OrderStatusActive
	}

	orderItems := make([]models.OrderItem, len(items))

	err := r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&order).Error; err != nil {
			return err
		}
		for i, item := range items {
			orderItems[i] = models.OrderItem{
				OrderID:  order.ID,
				DishID:   item.DishID,
				Quantity: item.Quantity,
				Price:    item.Price,
			}
			if err := tx.Create(&orderItems[i]).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	view := models.OrderWithItems{
		Order: order,
		Items: make([]models.OrderItemWithDish, len(orderItems)),
	}
	for i, item := range orderItems {
		dish, err := r.GetDish(item.DishID)
		if err != nil {
			return nil, err
		}
		view.Items[i] = models.OrderItemWithDish{OrderItem: item, Dish: dish}
	}
	return &view, nil
}

// CompleteOrder transitions an order to completed. The transition is
// one-way and idempotent: completing an already completed order leaves
// it completed and still reports success.
func (r *GormRepository) CompleteOrder(id string) (bool, error) {
	var order models.Order
	if err := r.db.First(&order, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, nil
		}
		return false, err
	}

	if err := r.db.Model(&order).Update("status", models.OrderStatusCompleted).Error; err != nil {
		return false, err
	}
	return true, nil
}

// GetDailyStats aggregates every order created in the current local
// calendar day (midnight to midnight at call time), regardless of
// status.
func (r *GormRepository) GetDailyStats() (*models.DailyStats, error) {
	now := time.Now()
	start := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	end := start.AddDate(0, 0, 1)

	var orders []models.Order
	if err := r.db.
		Where("created_at >= ? AND created_at < ?", start, end).
		Find(&orders).Error; err != nil {
		return nil, err
	}

	stats := models.DailyStats{
		TotalOrders: len(orders),
		DishSales:   []models.DishSales{},
	}

	var cashAmount, posAmount float64
	for _, order := range orders {
		total := parseAmount(order.Total)
		stats.TotalRevenue += total
		switch order.PaymentMethod {
		case models.PaymentMethodCash:
			cashAmount += total
		case models.PaymentMethodPos:
			posAmount += total
		}
	}

	dishSales, err := r.dishSalesFor(orders)
	if err != nil {
		return nil, err
	}
	stats.DishSales = dishSales

	// Guard the division when nothing was sold yet today.
	if stats.TotalRevenue > 0 {
		stats.PaymentStats.Cash = models.PaymentBucket{
			Amount:     cashAmount,
			Percentage: cashAmount / stats.TotalRevenue * 100,
		}
		stats.PaymentStats.Pos = models.PaymentBucket{
			Amount:     posAmount,
			Percentage: posAmount / stats.TotalRevenue * 100,
		}
	} else {
		stats.PaymentStats.Cash = models.PaymentBucket{Amount: cashAmount}
		stats.PaymentStats.Pos = models.PaymentBucket{Amount: posAmount}
	}

	return &stats, nil
}

// ClearAllDataExceptMenu purges every order and order item in one
// transaction. Dishes are untouched. Irreversible.
func (r *GormRepository) ClearAllDataExceptMenu() error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("1 = 1").Delete(&models.OrderItem{}).Error; err != nil {
			return err
		}
		return tx.Where("1 = 1").Delete(&models.Order{}).Error
	})
}

// attachItems builds the denormalized OrderWithItems views for a batch
// of orders, preserving the order of the input slice.
func (r *GormRepository) attachItems(orders []models.Order) ([]models.OrderWithItems, error) {
	views := make([]models.OrderWithItems, len(orders))
	if len(orders) == 0 {
		return views, nil
	}

	orderIDs := make([]string, len(orders))
	for i, order := range orders {
		orderIDs[i] = order.ID
	}

	var items []models.OrderItem
	if err := r.db.Where("order_id IN ?", orderIDs).Find(&items).Error; err != nil {
		return nil, err
	}

	dishes, err := r.dishesByID(items)
	if err != nil {
		return nil, err
	}

	byOrder := make(map[string][]models.OrderItemWithDish, len(orders))
	for _, item := range items {
		byOrder[item.OrderID] = append(byOrder[item.OrderID], models.OrderItemWithDish{
			OrderItem: item,
			Dish:      dishes[item.DishID],
		})
	}

	for i, order := range orders {
		itemViews := byOrder[order.ID]
		if itemViews == nil {
			itemViews = []models.OrderItemWithDish{}
		}
		views[i] = models.OrderWithItems{Order: order, Items: itemViews}
	}
	return views, nil
}

// dishesByID resolves the dishes referenced by a set of items. A dish
// deleted after the order was taken simply has no entry in the map.
func (r *GormRepository) dishesByID(items []models.OrderItem) (map[string]*models.Dish, error) {
	if len(items) == 0 {
		return map[string]*models.Dish{}, nil
	}

	dishIDs := make([]string, 0, len(items))
	seen := make(map[string]bool, len(items))
	for _, item := range items {
		if !seen[item.DishID] {
			seen[item.DishID] = true
			dishIDs = append(dishIDs, item.DishID)
		}
	}

	var dishes []models.Dish
	if err := r.db.Where("id IN ?", dishIDs).Find(&dishes).Error; err != nil {
		return nil, err
	}

	byID := make(map[string]*models.Dish, len(dishes))
	for i := range dishes {
		byID[dishes[i].ID] = &dishes[i]
	}
	return byID, nil
}

// dishSalesFor groups the items of today's orders by dish, summing
// quantity and snapshot revenue. Rows whose dish no longer exists on
// the menu are silently dropped.
func (r *GormRepository) dishSalesFor(orders []models.Order) ([]models.DishSales, error) {
	if len(orders) == 0 {
		return []models.DishSales{}, nil
	}

	orderIDs := make([]string, len(orders))
	for i, order := range orders {
		orderIDs[i] = order.ID
	}

	var items []models.OrderItem
	if err := r.db.Where("order_id IN ?", orderIDs).Find(&items).Error; err != nil {
		return nil, err
	}

	dishes, err := r.dishesByID(items)
	if err != nil {
		return nil, err
	}

	type bucket struct {
		quantity int
		revenue  float64
	}
	buckets := make(map[string]*bucket)
	rowOrder := make([]string, 0)

	for _, item := range items {
		if dishes[item.DishID] == nil {
			continue
		}
		b := buckets[item.DishID]
		if b == nil {
			b = &bucket{}
			buckets[item.DishID] = b
			rowOrder = append(rowOrder, item.DishID)
		}
		b.quantity += item.Quantity
		b.revenue += parseAmount(item.Price) * float64(item.Quantity)
	}

	sales := make([]models.DishSales, 0, len(rowOrder))
	for _, dishID := range rowOrder {
		sales = append(sales, models.DishSales{
			Dish:     *dishes[dishID],
			Quantity: buckets[dishID].quantity,
			Revenue:  buckets[dishID].revenue,
		})
	}
	return sales, nil
}

// parseAmount reads a decimal amount column. Values come from the
// validation layer with two fractional digits, so a parse failure means
// a corrupt row; treat it as zero rather than poisoning the report.
func parseAmount(s string) float64 {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0
	}
	return v
}
