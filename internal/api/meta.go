package api

import (
	"net/http"
	"sort"
	"time"

	"github.com/gin-gonic/gin"
)

// ===== META HANDLERS =====

// GET /api/meta — сводка по загруженному документу
func MetaHandler(storage *Storage) gin.HandlerFunc {
	return func(c *gin.Context) {
		doc := storage.Document()

		names := storage.CatalogNames()
		sort.Strings(names)

		c.JSON(http.StatusOK, gin.H{
			"schemes":   doc.Keys(),
			"count":     len(doc),
			"catalogs":  names,
			"source":    storage.DataFile(),
			"loaded_at": storage.LoadedAt().Format(time.RFC3339),
		})
	}
}

// GET /api/catalogs/:name
func CatalogHandler(storage *Storage) gin.HandlerFunc {
	return func(c *gin.Context) {
		name := c.Param("name")
		cat, ok := storage.Catalog(name)
		if !ok {
			c.JSON(http.StatusNotFound, gin.H{"error": "Catalog not found"})
			return
		}
		c.JSON(http.StatusOK, gin.H{
			"name":  name,
			"items": cat.Items,
		})
	}
}
