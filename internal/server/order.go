package server

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	orderdomain "github.com/metalprom/catalog/internal/order/domain"
)

func (s *Server) ListOrders(c *gin.Context) {
	var query struct {
		Status string `form:"status"`
		Limit  int    `form:"limit"`
	}
	if err := c.ShouldBindQuery(&query); err != nil {
		AbortWithError(c, ErrInvalidRequest)
		return
	}

	resp, err := s.orderSvc.List(c.Request.Context(), orderdomain.ListRequest{
		Status: orderdomain.Status(strings.TrimSpace(query.Status)),
		Limit:  query.Limit,
	})
	if err != nil {
		AbortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": resp})
}

func (s *Server) Dashboard(c *gin.Context) {
	resp, err := s.dashboardSvc.Overview(c.Request.Context())
	if err != nil {
		AbortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": resp})
}
