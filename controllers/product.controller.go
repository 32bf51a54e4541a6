package controllers

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"time"

	"zele-backend/models"
	"zele-backend/store"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// GetProducts handles listing products, optionally filtered by category
// (case-insensitive exact match) and featured flag.
func (ctrl *Controller) GetProducts(c *gin.Context) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	filter := bson.M{}
	if category := c.Query("category"); category != "" {
		filter["category"] = primitive.Regex{Pattern: "^" + category + "$", Options: "i"}
	}
	if raw := c.Query("featured"); raw != "" {
		featured, err := strconv.ParseBool(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid featured flag"})
			return
		}
		filter["is_featured"] = featured
	}

	productList := []models.Product{}
	if err := ctrl.Store.FindAll(ctx, models.CollectionProduct, filter, &productList); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, productList)
}

// CreateProduct handles creating a new product after checking the slug is free.
func (ctrl *Controller) CreateProduct(c *gin.Context) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	var product models.Product
	if !ctrl.bindAndValidate(c, &product) {
		return
	}

	var existing models.StoredProduct
	err := ctrl.Store.FindOne(ctx, models.CollectionProduct, bson.M{"slug": product.Slug}, &existing)
	if err == nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Slug already exists"})
		return
	}
	if !errors.Is(err, store.ErrNotFound) {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	product.Normalize()
	id, err := ctrl.Store.InsertOne(ctx, models.CollectionProduct, product)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"id": store.FormatID(id)})
}

// GetProductBySlug handles fetching one product by its slug.
func (ctrl *Controller) GetProductBySlug(c *gin.Context) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	slug := c.Param("slug")
	var product models.StoredProduct
	err := ctrl.Store.FindOne(ctx, models.CollectionProduct, bson.M{"slug": slug}, &product)
	if errors.Is(err, store.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, product)
}
