package controllers

import (
	"context"
	"net/http"
	"time"

	"zele-backend/models"
	"zele-backend/store"

	"github.com/gin-gonic/gin"
)

// Contact handles storing a contact form message.
func (ctrl *Controller) Contact(c *gin.Context) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	var msg models.ContactMessage
	if !ctrl.bindAndValidate(c, &msg) {
		return
	}

	id, err := ctrl.Store.InsertOne(ctx, models.CollectionContactMessage, msg)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"status": "received", "id": store.FormatID(id)})
}
