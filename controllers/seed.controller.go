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

// sampleProducts returns the canned catalog used to bootstrap an empty store.
func sampleProducts() []models.Product {
	return []models.Product{
		{
			Title:            "Cap-Toe Oxford in Nero",
			Slug:             "cap-toe-oxford-nero",
			Description:      "Handmade cap-toe Oxford crafted in premium full-grain calfskin. Goodyear welted for longevity and comfort.",
			ShortDescription: "Handmade cap-toe Oxford in black calfskin",
			Price:            495.0,
			Category:         "formal",
			Colors:           []string{"nero", "ebony"},
			Sizes:            []int{39, 40, 41, 42, 43, 44, 45},
			Images: []string{
				"https://images.unsplash.com/photo-1541099649105-f69ad21f3246?q=80&w=1200&auto=format&fit=crop",
				"https://images.unsplash.com/photo-1593032457861-1f1f86c52a3e?q=80&w=1200&auto=format&fit=crop",
			},
			Leather:       "Full-grain calfskin",
			Craftsmanship: "Goodyear welt • Hand-burnished",
			IsFeatured:    true,
		},
		{
			Title:            "Handstitched Loafer in Chestnut",
			Slug:             "handstitched-loafer-chestnut",
			Description:      "Classic penny loafer with meticulous hand-stitching and cushioned insole for all-day ease.",
			ShortDescription: "Handstitched chestnut loafer",
			Price:            425.0,
			Category:         "casual",
			Colors:           []string{"chestnut", "mahogany"},
			Sizes:            []int{39, 40, 41, 42, 43, 44, 45},
			Images: []string{
				"https://images.unsplash.com/photo-1598866594230-a7c12756260f?q=80&w=1200&auto=format&fit=crop",
				"https://images.unsplash.com/photo-1560365163-3e8d64e762ef?q=80&w=1200&auto=format&fit=crop",
			},
			Leather:       "Antiqued calf",
			Craftsmanship: "Hand-stitched apron • Blake construction",
			IsFeatured:    true,
		},
		{
			Title:            "Wholecut in Espresso",
			Slug:             "wholecut-espresso",
			Description:      "Sculpted from a single piece of leather. Minimal seams, maximal elegance.",
			ShortDescription: "Wholecut in deep espresso",
			Price:            545.0,
			Category:         "formal",
			Colors:           []string{"espresso"},
			Sizes:            []int{39, 40, 41, 42, 43, 44, 45},
			Images: []string{
				"https://images.unsplash.com/photo-1520975682031-c5815e43a916?q=80&w=1200&auto=format&fit=crop",
			},
			Leather:       "Museum calf",
			Craftsmanship: "Hand-dyed patina • Goodyear welt",
			IsFeatured:    false,
		},
	}
}

// Seed handles inserting the sample products, skipping slugs that already
// exist, and reports how many were actually written.
func (ctrl *Controller) Seed(c *gin.Context) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	created := 0
	for _, product := range sampleProducts() {
		var existing models.StoredProduct
		err := ctrl.Store.FindOne(ctx, models.CollectionProduct, bson.M{"slug": product.Slug}, &existing)
		if err == nil {
			continue
		}
		if !errors.Is(err, store.ErrNotFound) {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		if _, err := ctrl.Store.InsertOne(ctx, models.CollectionProduct, product); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		created++
	}
	c.JSON(http.StatusOK, gin.H{"seeded": created})
}
