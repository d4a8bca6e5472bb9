package models

import (
	"errors"
	"strings"
)

type OrderStatus string

const (
	OrderStatusPending   OrderStatus = "pending"   // Enquiry received
	OrderStatusConfirmed OrderStatus = "confirmed" // Confirmed with the customer
	OrderStatusDelivered OrderStatus = "delivered" // Vehicle handed over
)

var ErrInvalidStatus = errors.New("invalid order status")

// OrderStatuses lists every status in workflow order.
var OrderStatuses = []OrderStatus{OrderStatusPending, OrderStatusConfirmed, OrderStatusDelivered}

// ParseOrderStatus maps a string to an OrderStatus, ignoring case.
func ParseOrderStatus(status string) (OrderStatus, error) {
	switch strings.ToLower(strings.TrimSpace(status)) {
	case string(OrderStatusPending):
		return OrderStatusPending, nil
	case string(OrderStatusConfirmed):
		return OrderStatusConfirmed, nil
	case string(OrderStatusDelivered):
		return OrderStatusDelivered, nil
	default:
		return "", ErrInvalidStatus
	}
}

type Order struct {
	ID           string      `json:"id" yaml:"id"`
	CustomerName string      `json:"customerName" yaml:"customerName"`
	Phone        string      `json:"phone" yaml:"phone"`
	Product      string      `json:"product" yaml:"product"` // product name at order time
	Date         string      `json:"date" yaml:"date"`
	Status       OrderStatus `json:"status" yaml:"status"`
}

type OrderPatch struct {
	CustomerName *string      `json:"customerName"`
	Phone        *string      `json:"phone"`
	Product      *string      `json:"product"`
	Date         *string      `json:"date"`
	Status       *OrderStatus `json:"status"`
}

func (patch OrderPatch) Apply(o *Order) {
	if patch.CustomerName != nil {
		o.CustomerName = *patch.CustomerName
	}
	if patch.Phone != nil {
		o.Phone = *patch.Phone
	}
	if patch.Product != nil {
		o.Product = *patch.Product
	}
	if patch.Date != nil {
		o.Date = *patch.Date
	}
	if patch.Status != nil {
		o.Status = *patch.Status
	}
}
