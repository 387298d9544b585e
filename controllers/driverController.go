package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/kisahtegar/foodly-app-sub000/metrics"
	"github.com/kisahtegar/foodly-app-sub000/models"
)

// AddDriver lets a driver claim a ready order. Exactly one of two racing
// claims succeeds; the loser gets a 409.
func AddDriver() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := requestContext()
		defer cancel()

		order, err := assignmentService.AddDriver(ctx, c.Param("id"), c.Param("driver"))
		if err != nil {
			respondError(c, err)
			return
		}

		metrics.OrdersTotal.WithLabelValues(string(models.StatusOutForDelivery)).Inc()
		c.JSON(http.StatusOK, gin.H{"status": true, "message": "order picked up", "data": order})
	}
}

func GetPickedOrders() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := requestContext()
		defer cancel()

		orders, err := assignmentService.GetPickedOrders(ctx, c.Param("status"), c.Param("driver"))
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": true, "data": orders})
	}
}

// MarkAsDelivered settles the delivery for the authenticated driver.
func MarkAsDelivered() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := requestContext()
		defer cancel()

		order, err := settlementService.MarkAsDelivered(ctx, c.Param("id"), c.GetString("uid"))
		if err != nil {
			respondError(c, err)
			return
		}

		metrics.DeliveriesTotal.Inc()
		if order.OrderTotal != nil {
			metrics.SettlementAmount.Observe(*order.OrderTotal)
		}
		c.JSON(http.StatusOK, gin.H{"status": true, "message": "order delivered", "data": order})
	}
}

type locationRequest struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	Address   string  `json:"address"`
}

// UpdateDriverLocation stores the driver's live position in Redis and the
// last known position on the driver record.
func UpdateDriverLocation() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := requestContext()
		defer cancel()

		var req locationRequest
		if err := c.BindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"status": false, "message": err.Error()})
			return
		}

		driver, err := driverRepository.FindByUser(ctx, c.GetString("uid"))
		if err != nil {
			respondError(c, err)
			return
		}

		coords := models.Coords{Latitude: req.Latitude, Longitude: req.Longitude, Address: req.Address}
		if err := driverRepository.UpdateLocation(ctx, driver.DriverID, coords); err != nil {
			respondError(c, err)
			return
		}
		if locationStore != nil {
			if err := locationStore.Update(ctx, driver.DriverID, req.Latitude, req.Longitude); err != nil {
				respondError(c, err)
				return
			}
		}
		c.JSON(http.StatusOK, gin.H{"status": true, "message": "location updated"})
	}
}

type availabilityRequest struct {
	IsAvailable *bool `json:"isAvailable" binding:"required"`
}

func UpdateDriverAvailability() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := requestContext()
		defer cancel()

		var req availabilityRequest
		if err := c.BindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"status": false, "message": err.Error()})
			return
		}

		driver, err := driverRepository.FindByUser(ctx, c.GetString("uid"))
		if err != nil {
			respondError(c, err)
			return
		}

		if err := driverRepository.SetAvailability(ctx, driver.DriverID, *req.IsAvailable); err != nil {
			respondError(c, err)
			return
		}
		if locationStore != nil {
			if err := locationStore.SetAvailable(ctx, driver.DriverID, *req.IsAvailable); err != nil {
				respondError(c, err)
				return
			}
		}
		c.JSON(http.StatusOK, gin.H{"status": true, "message": "availability updated"})
	}
}

// GetDriverLocation reads the live Redis position for ops tooling.
func GetDriverLocation() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := requestContext()
		defer cancel()

		location, err := locationStore.Get(ctx, c.Param("id"))
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": true, "data": location})
	}
}
