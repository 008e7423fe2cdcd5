package models

// DishSales is one row of the daily report: how much of a dish was sold
// today and the revenue it produced. Dish is the current menu record,
// not the snapshot; rows for dishes deleted mid-day are dropped.
type DishSales struct {
	Dish     Dish    `json:"dish"`
	Quantity int     `json:"quantity"`
	Revenue  float64 `json:"revenue"`
}

type PaymentBucket struct {
	Amount     float64 `json:"amount"`
	Percentage float64 `json:"percentage"`
}

type PaymentStats struct {
	Cash PaymentBucket `json:"cash"`
	Pos  PaymentBucket `json:"pos"`
}

// DailyStats aggregates every order created in the current local
// calendar day, active and completed alike.
type DailyStats struct {
	TotalRevenue float64      `json:"totalRevenue"`
	TotalOrders  int          `json:"totalOrders"`
	DishSales    []DishSales  `json:"dishSales"`
	PaymentStats PaymentStats `json:"paymentStats"`
}
