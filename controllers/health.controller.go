package controllers

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// Root handles the landing route.
func (ctrl *Controller) Root(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"brand": "ZÈLE", "message": "Ecommerce backend running"})
}

// TestDatabase reports backend and store health. Every probe failure is
// rendered as a field value; this handler never returns an error status.
func (ctrl *Controller) TestDatabase(c *gin.Context) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	response := gin.H{
		"backend":           "✅ Running",
		"database":          "❌ Not Available",
		"database_url":      nil,
		"database_name":     nil,
		"connection_status": "Not Connected",
		"collections":       []string{},
	}

	if ctrl.Store == nil {
		response["database"] = "⚠️  Available but not initialized"
		c.JSON(http.StatusOK, response)
		return
	}

	response["database"] = "✅ Available"
	response["database_url"] = presenceFlag(ctrl.Cfg.DatabaseURLSet())
	response["database_name"] = presenceFlag(ctrl.Cfg.DatabaseNameSet())

	names, err := ctrl.Store.CollectionNames(ctx, 10)
	if err != nil {
		response["database"] = "⚠️  Connected but Error: " + truncate(err.Error(), 50)
	} else {
		response["collections"] = names
		response["database"] = "✅ Connected & Working"
		response["connection_status"] = "Connected"
	}

	c.JSON(http.StatusOK, response)
}

func presenceFlag(set bool) string {
	if set {
		return "✅ Set"
	}
	return "❌ Not Set"
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n]
}
