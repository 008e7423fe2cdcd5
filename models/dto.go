package models

// Request bodies accepted by the API. Prices are decimal strings with
// exactly two fractional digits ("8.00"); the custom `price` and
// `dishcategory` validators are registered with gin's binding engine at
// startup.

type InsertDish struct {
	Name     string `json:"name" binding:"required"`
	Price    string `json:"price" binding:"required,price"`
	Category string `json:"category" binding:"omitempty,dishcategory"`
}

// UpdateDish carries a partial dish update; nil fields are left as-is.
type UpdateDish struct {
	Name     *string `json:"name" binding:"omitempty"`
	Price    *string `json:"price" binding:"omitempty,price"`
	Category *string `json:"category" binding:"omitempty,dishcategory"`
}

type InsertOrder struct {
	TableNumber   string `json:"tableNumber" binding:"required"`
	CustomerName  string `json:"customerName" binding:"required"`
	Covers        int    `json:"covers" binding:"omitempty,min=1"`
	Total         string `json:"total" binding:"required,price"`
	PaymentMethod string `json:"paymentMethod" binding:"required,oneof=cash pos"`
	Status        string `json:"status" binding:"omitempty,oneof=active completed"`
}

type InsertOrderItem struct {
	DishID   string `json:"dishId" binding:"required"`
	Quantity int    `json:"quantity" binding:"required,min=1"`
	Price    string `json:"price" binding:"required,price"`
}

// CreateOrderRequest is the single atomic payload for order creation:
// the order and all of its items, created together or not at all.
type CreateOrderRequest struct {
	Order InsertOrder       `json:"order" binding:"required"`
	Items []InsertOrderItem `json:"items" binding:"required,dive"`
}
