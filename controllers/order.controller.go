package controllers

import (
	"context"
	"math"
	"net/http"
	"time"

	"zele-backend/models"
	"zele-backend/store"

	"github.com/gin-gonic/gin"
)

// moneyTolerance absorbs floating-point rounding on two-decimal currency
// amounts; differences up to and including a cent pass.
const moneyTolerance = 0.01

// CreateOrder handles placing an order. The client-claimed subtotal and
// total are checked against the item lines before anything is written.
func (ctrl *Controller) CreateOrder(c *gin.Context) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	var order models.Order
	if !ctrl.bindAndValidate(c, &order) {
		return
	}

	if math.Abs(order.ItemsSubtotal()-order.Subtotal) > moneyTolerance {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Subtotal mismatch"})
		return
	}
	if math.Abs(order.Subtotal+order.ShippingCost-order.Total) > moneyTolerance {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Total mismatch"})
		return
	}

	order.Normalize()
	id, err := ctrl.Store.InsertOne(ctx, models.CollectionOrder, order)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"id": store.FormatID(id), "status": "received"})
}
