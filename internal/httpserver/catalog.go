package httpserver

import (
	"errors"
	"log"
	"net/http"
	"strconv"

	"rocketshoes-cart/internal/domain"
	"github.com/gin-gonic/gin"
)

// registerCatalogRoutes serves the Catalog Service. Missing ids answer 404
// with an empty object, the way json-server does.
func registerCatalogRoutes(router *gin.Engine, products productReader, stock stockReader, logger *log.Logger) {
	router.GET("/products", func(c *gin.Context) {
		list, err := products.List(c.Request.Context())
		if err != nil {
			logger.Printf("catalog: list products error=%v", err)
			c.JSON(http.StatusInternalServerError, gin.H{})
			return
		}
		c.JSON(http.StatusOK, list)
	})

	router.GET("/products/:id", func(c *gin.Context) {
		id, ok := catalogID(c)
		if !ok {
			return
		}
		p, err := products.GetByID(c.Request.Context(), id)
		if err != nil {
			catalogError(c, logger, err)
			return
		}
		c.JSON(http.StatusOK, p)
	})

	router.GET("/stock/:id", func(c *gin.Context) {
		id, ok := catalogID(c)
		if !ok {
			return
		}
		s, err := stock.GetByProductID(c.Request.Context(), id)
		if err != nil {
			catalogError(c, logger, err)
			return
		}
		c.JSON(http.StatusOK, s)
	})
}

func catalogID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{})
		return 0, false
	}
	return id, true
}

func catalogError(c *gin.Context, logger *log.Logger, err error) {
	if errors.Is(err, domain.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{})
		return
	}
	logger.Printf("catalog: %s error=%v", c.Request.URL.Path, err)
	c.JSON(http.StatusInternalServerError, gin.H{})
}
