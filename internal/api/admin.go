package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// POST /api/admin/reload — перечитать документ и справочники с диска.
// Негодный документ живые данные не трогает: валидация идёт до подмены.
func AdminReloadHandler(storage *Storage) gin.HandlerFunc {
	return func(c *gin.Context) {
		count, errs, err := storage.Reload()
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "document load error", "details": err.Error()})
			return
		}
		if len(errs) > 0 {
			c.JSON(http.StatusBadRequest, gin.H{
				"error":  "document has blocking issues",
				"errors": errs,
				"hint":   "fix the document and retry",
			})
			return
		}

		logrus.WithField("component", "api").Infof("document reloaded: %d schemes", count)
		c.JSON(http.StatusOK, gin.H{
			"ok":      true,
			"schemes": count,
			"source":  storage.DataFile(),
		})
	}
}
