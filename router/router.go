package router

import (
	"github.com/gin-gonic/gin"

	"github.com/lucabarone/trattoria-pos/controllers"
	"github.com/lucabarone/trattoria-pos/middlewares"
	"github.com/lucabarone/trattoria-pos/realtime"
	"github.com/lucabarone/trattoria-pos/repository"
)

// SetupRouter wires the HTTP API and the sync socket. The repository
// and the hub are constructed by the caller and injected here; nothing
// in the request path reaches for ambient globals.
func SetupRouter(repo repository.Repository, hub *realtime.Hub) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())

	r.Use(middlewares.SecurityHeaders())
	r.Use(middlewares.CORSMiddlewares())
	r.Use(middlewares.LoggerMiddleware())
	r.Use(middlewares.NewRateLimiter(50, 1).RateLimit())

	controllers.RegisterValidators()

	dishCtrl := controllers.NewDishController(repo)
	orderCtrl := controllers.NewOrderController(repo, hub)
	analyticsCtrl := controllers.NewAnalyticsController(repo)
	dataCtrl := controllers.NewDataController(repo, hub)
	syncCtrl := controllers.NewSyncController(repo, hub)

	r.GET("/ping", func(c *gin.Context) {
		c.JSON(200, gin.H{"message": "pong"})
	})

	api := r.Group("/api")
	{
		// MENU
		api.GET("/dishes", dishCtrl.GetAllDishes)
		api.POST("/dishes", dishCtrl.CreateDish)
		api.PUT("/dishes/:id", dishCtrl.UpdateDish)
		api.DELETE("/dishes/:id", dishCtrl.DeleteDish)

		// ORDERS
		api.GET("/orders", orderCtrl.GetAllOrders)
		api.GET("/orders/active", orderCtrl.GetActiveOrders)
		api.GET("/orders/:id", orderCtrl.GetOrderByID)
		api.POST("/orders", orderCtrl.CreateOrder)
		api.PUT("/orders/:id/complete", orderCtrl.CompleteOrder)

		// REPORTS
		api.GET("/analytics/daily", analyticsCtrl.GetDailyStats)

		// DATA MANAGEMENT (destructive, strict limit)
		api.DELETE("/data/clear-except-menu", middlewares.NewStrictRateLimiter(), dataCtrl.ClearAllData)
	}

	// Register sync socket
	r.GET("/ws", syncCtrl.Handle)

	return r
}
