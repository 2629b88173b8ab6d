package api

import (
	"net/http"

	l "github.com/ahmetb/go-linq/v3"
	"github.com/gin-gonic/gin"
)

type schemeListItem struct {
	ID           string   `json:"id"`
	Name         string   `json:"name"`
	VehicleTypes []string `json:"vehicle_types,omitempty"`
}

// GET /api/schemes
// Опционально ?vehicle_type=Trucks — только схемы, затрагивающие категорию.
func ListSchemesHandler(storage *Storage) gin.HandlerFunc {
	return func(c *gin.Context) {
		doc := storage.Document()

		items := make([]schemeListItem, 0, len(doc))
		for _, id := range doc.Keys() {
			s := doc[id]
			items = append(items, schemeListItem{ID: id, Name: s.Name, VehicleTypes: s.VehicleTypes})
		}

		if vt := c.Query("vehicle_type"); vt != "" {
			l.From(items).WhereT(func(it schemeListItem) bool {
				return l.From(it.VehicleTypes).Contains(vt)
			}).ToSlice(&items)
		}

		c.JSON(http.StatusOK, gin.H{"schemes": items, "count": len(items)})
	}
}

// GET /api/schemes/:id
func GetSchemeHandler(storage *Storage) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id")
		s, ok := storage.Scheme(id)
		if !ok {
			c.JSON(http.StatusNotFound, gin.H{"error": "unknown scheme", "scheme": id})
			return
		}
		c.JSON(http.StatusOK, gin.H{"id": id, "scheme": s})
	}
}

// GET /api/schemes/:id/restriction-times
func RestrictionTimesHandler(storage *Storage) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id")
		s, ok := storage.Scheme(id)
		if !ok {
			c.JSON(http.StatusNotFound, gin.H{"error": "unknown scheme", "scheme": id})
			return
		}
		// отсутствующее поле — это 404, а не пустая карта: пустоту можно
		// принять за "ограничений нет", что неправда
		if s.RestrictionTimes == nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "scheme has no restriction_times", "scheme": id})
			return
		}
		c.JSON(http.StatusOK, gin.H{"scheme": id, "restriction_times": s.RestrictionTimes})
	}
}

// GET /api/schemes/:id/plates/:weekday
// Пример: /api/schemes/rodizio_municipal/plates/monday -> ["1","2"]
func PlatesHandler(storage *Storage) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id")
		weekday := c.Param("weekday")

		s, ok := storage.Scheme(id)
		if !ok {
			c.JSON(http.StatusNotFound, gin.H{"error": "unknown scheme", "scheme": id})
			return
		}
		if s.PlateRestrictions == nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "scheme has no plate_restrictions", "scheme": id})
			return
		}
		digits, ok := s.PlateRestrictions[weekday]
		if !ok {
			c.JSON(http.StatusNotFound, gin.H{
				"error": "no plate restriction for weekday", "scheme": id, "weekday": weekday,
			})
			return
		}
		c.JSON(http.StatusOK, gin.H{"scheme": id, "weekday": weekday, "digits": digits})
	}
}

// GET /api/validate — прогнать валидацию текущего документа
func ValidateHandler(storage *Storage) gin.HandlerFunc {
	return func(c *gin.Context) {
		doc := storage.Document()
		errs := ValidateDocument(doc, storage.Catalogs())
		if len(errs) > 0 {
			c.JSON(http.StatusUnprocessableEntity, gin.H{"ok": false, "errors": errs})
			return
		}
		c.JSON(http.StatusOK, gin.H{"ok": true, "schemes": len(doc)})
	}
}
