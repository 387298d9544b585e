package controllers

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"

	"github.com/kisahtegar/foodly-app-sub000/metrics"
	"github.com/kisahtegar/foodly-app-sub000/models"
	"github.com/kisahtegar/foodly-app-sub000/repository"
	"github.com/kisahtegar/foodly-app-sub000/services"
)

var (
	orderService      *services.OrderService
	assignmentService *services.AssignmentService
	settlementService *services.SettlementService
	listingService    *services.ListingService
	driverRepository  repository.DriverRepository
	locationStore     *services.LocationStore
	hub               *services.Hub
)

// Setup wires the controllers to their services. Called once from main before
// routes are registered.
func Setup(
	orders *services.OrderService,
	assignments *services.AssignmentService,
	settlements *services.SettlementService,
	listings *services.ListingService,
	drivers repository.DriverRepository,
	locations *services.LocationStore,
	wsHub *services.Hub,
) {
	orderService = orders
	assignmentService = assignments
	settlementService = settlements
	listingService = listings
	driverRepository = drivers
	locationStore = locations
	hub = wsHub
}

func requestContext() (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), 100*time.Second)
}

// respondError maps service and repository errors onto the response envelope.
func respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, repository.ErrOrderNotFound),
		errors.Is(err, repository.ErrRestaurantNotFound),
		errors.Is(err, repository.ErrDriverNotFound),
		errors.Is(err, services.ErrLocationUnknown):
		c.JSON(http.StatusNotFound, gin.H{"status": false, "message": err.Error()})
	case errors.Is(err, repository.ErrOrderTaken):
		metrics.AssignmentConflicts.Inc()
		c.JSON(http.StatusConflict, gin.H{"status": false, "message": err.Error()})
	case errors.Is(err, repository.ErrOrderNotPickedUp),
		errors.Is(err, repository.ErrOrderNotDelivered),
		errors.Is(err, repository.ErrOrderAlreadyRated),
		errors.Is(err, services.ErrInvalidTransition):
		c.JSON(http.StatusConflict, gin.H{"status": false, "message": err.Error()})
	case errors.Is(err, services.ErrValidation),
		errors.Is(err, services.ErrInvalidStatus),
		errors.Is(err, services.ErrInvalidPaymentStatus),
		errors.Is(err, services.ErrInvalidRating):
		c.JSON(http.StatusBadRequest, gin.H{"status": false, "message": err.Error()})
	default:
		log.WithError(err).Error("Request failed")
		c.JSON(http.StatusInternalServerError, gin.H{"status": false, "message": "something went wrong"})
	}
}

func PlaceOrder() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := requestContext()
		defer cancel()

		var order models.Order
		if err := c.BindJSON(&order); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"status": false, "message": err.Error()})
			return
		}

		created, err := orderService.PlaceOrder(ctx, c.GetString("uid"), &order)
		if err != nil {
			respondError(c, err)
			return
		}

		metrics.OrdersTotal.WithLabelValues(string(models.StatusPlaced)).Inc()
		c.JSON(http.StatusCreated, gin.H{"status": true, "message": "order placed successfully", "data": created})
	}
}

func GetOrder() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := requestContext()
		defer cancel()

		order, err := orderService.GetOrderDetails(ctx, c.Param("id"))
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": true, "data": order})
	}
}

func DeleteOrder() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := requestContext()
		defer cancel()

		if err := orderService.DeleteOrder(ctx, c.Param("id")); err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": true, "message": "order deleted"})
	}
}

func GetUserOrders() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := requestContext()
		defer cancel()

		orders, err := orderService.GetUserOrders(ctx, c.GetString("uid"))
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": true, "data": orders})
	}
}

type rateOrderRequest struct {
	Rating   int    `json:"rating"`
	Feedback string `json:"feedback"`
}

func RateOrder() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := requestContext()
		defer cancel()

		var req rateOrderRequest
		if err := c.BindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"status": false, "message": err.Error()})
			return
		}

		if err := orderService.RateOrder(ctx, c.Param("id"), req.Rating, req.Feedback); err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": true, "message": "thank you for your feedback"})
	}
}

type updateStatusRequest struct {
	OrderStatus   string `json:"orderStatus"`
	PaymentStatus string `json:"paymentStatus"`
}

func UpdateOrderStatus() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := requestContext()
		defer cancel()

		var req updateStatusRequest
		if err := c.BindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"status": false, "message": err.Error()})
			return
		}

		if err := orderService.UpdateOrderStatus(ctx, c.Param("id"), req.OrderStatus); err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": true, "message": "order status updated"})
	}
}

func UpdatePaymentStatus() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := requestContext()
		defer cancel()

		var req updateStatusRequest
		if err := c.BindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"status": false, "message": err.Error()})
			return
		}

		if err := orderService.UpdatePaymentStatus(ctx, c.Param("id"), req.PaymentStatus); err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": true, "message": "payment status updated"})
	}
}

// ProcessOrder is the vendor entry point for moving an order through the
// state machine.
func ProcessOrder() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := requestContext()
		defer cancel()

		order, err := orderService.ProcessOrder(ctx, c.Param("id"), c.Param("status"))
		if err != nil {
			respondError(c, err)
			return
		}

		metrics.OrdersTotal.WithLabelValues(string(order.OrderStatus)).Inc()
		c.JSON(http.StatusOK, gin.H{"status": true, "message": "order processed", "data": order})
	}
}

func GetRestaurantOrders() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := requestContext()
		defer cancel()

		orders, err := listingService.GetRestaurantOrders(ctx, c.Param("id"), c.Query("status"))
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": true, "data": orders})
	}
}

func GetNearbyOrders() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := requestContext()
		defer cancel()

		orders, err := listingService.GetNearbyOrders(ctx, c.Param("status"))
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": true, "data": orders})
	}
}
