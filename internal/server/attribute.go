package server

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	attributedomain "github.com/metalprom/catalog/internal/attribute/domain"
)

func (s *Server) ListAttributes(c *gin.Context) {
	resp, err := s.attributeSvc.List(c.Request.Context())
	if err != nil {
		AbortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": resp})
}

func (s *Server) CreateAttribute(c *gin.Context) {
	var req attributedomain.GlobalAttribute
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, ErrInvalidRequest)
		return
	}
	req.ID = ""

	resp, err := s.attributeSvc.Create(c.Request.Context(), req)
	if err != nil {
		AbortWithError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"data": resp})
}

type updateAttributeRequest struct {
	Name    *string               `json:"name"`
	Slug    *string               `json:"slug"`
	Type    *attributedomain.Type `json:"type"`
	Options *[]string             `json:"options"`
}

func (s *Server) UpdateAttribute(c *gin.Context) {
	var req updateAttributeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, ErrInvalidRequest)
		return
	}

	resp, err := s.attributeSvc.Update(c.Request.Context(), attributedomain.UpdateRequest{
		ID:      strings.TrimSpace(c.Param("id")),
		Name:    req.Name,
		Slug:    req.Slug,
		Type:    req.Type,
		Options: req.Options,
	})
	if err != nil {
		AbortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": resp})
}

func (s *Server) DeleteAttribute(c *gin.Context) {
	if err := s.attributeSvc.Delete(c.Request.Context(), strings.TrimSpace(c.Param("id"))); err != nil {
		AbortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "deleted"})
}
