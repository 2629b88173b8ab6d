// api/router.go
package api

import (
	"github.com/gin-gonic/gin"
)

func NewRouter(storage *Storage) *gin.Engine {
	r := gin.Default()

	r.GET("/api/meta", MetaHandler(storage))
	r.GET("/api/validate", ValidateHandler(storage))
	r.GET("/api/catalogs/:name", CatalogHandler(storage))
	r.POST("/api/admin/reload", AdminReloadHandler(storage))

	apiGroup := r.Group("/api")
	{
		apiGroup.GET("/schemes", ListSchemesHandler(storage))
		apiGroup.GET("/schemes/:id", GetSchemeHandler(storage))
		apiGroup.GET("/schemes/:id/restriction-times", RestrictionTimesHandler(storage))
		apiGroup.GET("/schemes/:id/plates/:weekday", PlatesHandler(storage))
	}

	return r
}

func RunServer(addr string, storage *Storage) {
	r := NewRouter(storage)
	_ = r.Run(addr)
}
