package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"techtonic/routes"
)

func HealthHandler(catalog *routes.Catalog, searches SearchRecorder) gin.HandlerFunc {
	return func(c *gin.Context) {
		dbStatus := "disabled"
		if searches != nil {
			dbStatus = "ok"
			if err := searches.Ping(c.Request.Context()); err != nil {
				dbStatus = "error: " + err.Error()
			}
		}

		c.JSON(http.StatusOK, gin.H{
			"status":   "ok",
			"service":  "TechTonic Travel API",
			"routes":   catalog.Len(),
			"database": dbStatus,
		})
	}
}
