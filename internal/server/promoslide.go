package server

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	promodomain "github.com/metalprom/catalog/internal/promoslide/domain"
)

func (s *Server) ListSlides(c *gin.Context) {
	activeOnly := false
	if raw := strings.TrimSpace(c.Query("active")); raw != "" {
		parsed, err := strconv.ParseBool(raw)
		if err != nil {
			AbortWithError(c, ErrInvalidRequest)
			return
		}
		activeOnly = parsed
	}

	resp, err := s.promoSvc.List(c.Request.Context(), activeOnly)
	if err != nil {
		AbortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": resp})
}

func (s *Server) CreateSlide(c *gin.Context) {
	var req promodomain.PromoSlide
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, ErrInvalidRequest)
		return
	}
	req.ID = ""

	resp, err := s.promoSvc.Create(c.Request.Context(), req)
	if err != nil {
		AbortWithError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"data": resp})
}

type updateSlideRequest struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
	Image       *string `json:"image"`
	ButtonText  *string `json:"buttonText"`
	Link        *string `json:"link"`
	IsActive    *bool   `json:"isActive"`
	SortOrder   *int    `json:"order"`
}

func (s *Server) UpdateSlide(c *gin.Context) {
	var req updateSlideRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, ErrInvalidRequest)
		return
	}

	resp, err := s.promoSvc.Update(c.Request.Context(), promodomain.UpdateRequest{
		ID:          strings.TrimSpace(c.Param("id")),
		Title:       req.Title,
		Description: req.Description,
		Image:       req.Image,
		ButtonText:  req.ButtonText,
		Link:        req.Link,
		IsActive:    req.IsActive,
		SortOrder:   req.SortOrder,
	})
	if err != nil {
		AbortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": resp})
}

func (s *Server) DeleteSlide(c *gin.Context) {
	if err := s.promoSvc.Delete(c.Request.Context(), strings.TrimSpace(c.Param("id"))); err != nil {
		AbortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "deleted"})
}
