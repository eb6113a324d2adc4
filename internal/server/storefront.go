package server

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/metalprom/catalog/internal/calc"
	productdomain "github.com/metalprom/catalog/internal/product/domain"
)

const featuredProductLimit = 3

// Home returns the storefront landing payload: active promo slides plus a
// few featured products.
func (s *Server) Home(c *gin.Context) {
	ctx := c.Request.Context()

	slides, err := s.promoSvc.List(ctx, true)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	featured, err := s.productSvc.List(ctx, productdomain.ListRequest{
		Status:  string(productdomain.StatusInStock),
		SortBy:  "updated_at",
		OrderBy: "desc",
		Limit:   featuredProductLimit,
	})
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": gin.H{
		"slides":   slides,
		"featured": featured,
	}})
}

func (s *Server) Calculate(c *gin.Context) {
	var req calc.Request
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, ErrInvalidRequest)
		return
	}
	if req.LengthM < 0 || req.DiameterMM < 0 {
		AbortWithError(c, ErrInvalidRequest)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": calc.For(req)})
}
