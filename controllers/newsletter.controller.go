package controllers

import (
	"context"
	"errors"
	"net/http"
	"time"

	"zele-backend/models"
	"zele-backend/store"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
)

// Subscribe handles newsletter sign-up. Repeating an email is not an
// error; the existing subscription is reported instead of duplicated.
func (ctrl *Controller) Subscribe(c *gin.Context) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	var news models.Newsletter
	if !ctrl.bindAndValidate(c, &news) {
		return
	}

	var existing models.Newsletter
	err := ctrl.Store.FindOne(ctx, models.CollectionNewsletter, bson.M{"email": news.Email}, &existing)
	if err == nil {
		c.JSON(http.StatusOK, gin.H{"status": "already_subscribed"})
		return
	}
	if !errors.Is(err, store.ErrNotFound) {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	id, err := ctrl.Store.InsertOne(ctx, models.CollectionNewsletter, news)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"status": "subscribed", "id": store.FormatID(id)})
}
