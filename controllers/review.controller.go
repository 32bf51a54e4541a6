package controllers

import (
	"context"
	"net/http"
	"time"

	"zele-backend/models"
	"zele-backend/store"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
)

// GetReviews handles listing all reviews for a product. The product id is
// an opaque string copied from the client, so it is not decoded or checked
// against the product collection.
func (ctrl *Controller) GetReviews(c *gin.Context) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	// shared route segment with GET /api/products/:slug
	productID := c.Param("slug")

	reviews := []models.StoredReview{}
	if err := ctrl.Store.FindAll(ctx, models.CollectionReview, bson.M{"product_id": productID}, &reviews); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, reviews)
}

// AddReview handles creating a review; the body's product_id must match
// the one in the path.
func (ctrl *Controller) AddReview(c *gin.Context) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	productID := c.Param("slug")
	var review models.Review
	if !ctrl.bindAndValidate(c, &review) {
		return
	}

	if review.ProductID != productID {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Mismatched product_id"})
		return
	}

	id, err := ctrl.Store.InsertOne(ctx, models.CollectionReview, review)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"id": store.FormatID(id)})
}
