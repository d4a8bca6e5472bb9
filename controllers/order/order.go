package orderControllers

import (
	"errors"
	"net/http"

	"github.com/amandhingra1/charzdev-ev/models"
	"github.com/amandhingra1/charzdev-ev/store"
	"github.com/gin-gonic/gin"
)

// -------- Request Structs --------

type CreateOrderRequest struct {
	CustomerName string `json:"customerName"`
	Phone        string `json:"phone"`
	Product      string `json:"product"`
	Date         string `json:"date"`
	Status       string `json:"status"` // optional, defaults to pending
}

type UpdateOrderRequest struct {
	CustomerName *string `json:"customerName"`
	Phone        *string `json:"phone"`
	Product      *string `json:"product"`
	Date         *string `json:"date"`
	Status       *string `json:"status"`
}

type UpdateOrderStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// -------- Core Logic --------

// UpdateStatus maps status and applies it to the order.
func UpdateStatus(s *store.Store, orderID, status string) (models.Order, error) {
	newStatus, err := models.ParseOrderStatus(status)
	if err != nil {
		return models.Order{}, err
	}
	return s.UpdateOrder(orderID, models.OrderPatch{Status: &newStatus})
}

func (req UpdateOrderRequest) patch() (models.OrderPatch, error) {
	patch := models.OrderPatch{
		CustomerName: req.CustomerName,
		Phone:        req.Phone,
		Product:      req.Product,
		Date:         req.Date,
	}
	if req.Status != nil {
		status, err := models.ParseOrderStatus(*req.Status)
		if err != nil {
			return models.OrderPatch{}, err
		}
		patch.Status = &status
	}
	return patch, nil
}

// -------- Handlers --------

func GetAllOrdersHandler(s *store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, s.Orders())
	}
}

func GetOrderByIDHandler(s *store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		order, ok := s.Order(c.Param("orderID"))
		if !ok {
			c.JSON(http.StatusNotFound, gin.H{"error": "order not found"})
			return
		}
		c.JSON(http.StatusOK, order)
	}
}

func CreateOrderHandler(s *store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req CreateOrderRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		order := models.Order{
			CustomerName: req.CustomerName,
			Phone:        req.Phone,
			Product:      req.Product,
			Date:         req.Date,
		}
		if req.Status != "" {
			status, err := models.ParseOrderStatus(req.Status)
			if err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			order.Status = status
		}
		c.JSON(http.StatusCreated, s.AddOrder(order))
	}
}

func UpdateOrderHandler(s *store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req UpdateOrderRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		patch, err := req.patch()
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		order, err := s.UpdateOrder(c.Param("orderID"), patch)
		if errors.Is(err, store.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "order not found"})
			return
		}
		c.JSON(http.StatusOK, order)
	}
}

// Update order status
func UpdateOrderStatusHandler(s *store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req UpdateOrderStatusRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		order, err := UpdateStatus(s, c.Param("orderID"), req.Status)
		switch {
		case errors.Is(err, models.ErrInvalidStatus):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		case errors.Is(err, store.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "order not found"})
		default:
			c.JSON(http.StatusOK, order)
		}
	}
}

func DeleteOrderHandler(s *store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := s.DeleteOrder(c.Param("orderID")); errors.Is(err, store.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "order not found"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Order deleted successfully"})
	}
}
