package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/kisahtegar/foodly-app-sub000/controllers"
	"github.com/kisahtegar/foodly-app-sub000/middleware"
)

func DriverRoutes(incomingRoutes *gin.Engine) {
	drivers := incomingRoutes.Group("/api/drivers")
	drivers.PUT("/location", middleware.Authorization("Driver"), controllers.UpdateDriverLocation())
	drivers.PUT("/availability", middleware.Authorization("Driver"), controllers.UpdateDriverAvailability())
	drivers.GET("/:id/location", middleware.Authorization("Admin"), controllers.GetDriverLocation())
}
