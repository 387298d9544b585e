package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/kisahtegar/foodly-app-sub000/controllers"
	"github.com/kisahtegar/foodly-app-sub000/middleware"
)

func OrderRoutes(incomingRoutes *gin.Engine) {
	orders := incomingRoutes.Group("/api/orders")
	orders.POST("", middleware.Authorization("Client"), controllers.PlaceOrder())
	orders.GET("/userOrders", controllers.GetUserOrders())
	orders.GET("/orderslist/:id", middleware.Authorization("Vendor"), controllers.GetRestaurantOrders())
	orders.GET("/delivery/:status", middleware.Authorization("Driver"), controllers.GetNearbyOrders())
	orders.POST("/rate/:id", controllers.RateOrder())
	orders.POST("/status/:id", controllers.UpdateOrderStatus())
	orders.POST("/payment-status/:id", controllers.UpdatePaymentStatus())
	orders.PUT("/process/:id/:status", middleware.Authorization("Vendor"), controllers.ProcessOrder())
	orders.PUT("/picked-orders/:id/:driver", middleware.Authorization("Driver"), controllers.AddDriver())
	orders.GET("/picked/:status/:driver", middleware.Authorization("Driver"), controllers.GetPickedOrders())
	orders.PUT("/delivered/:id", middleware.Authorization("Driver"), controllers.MarkAsDelivered())
	orders.GET("/:id", controllers.GetOrder())
	orders.DELETE("/:id", controllers.DeleteOrder())
}
