package server

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	categorydomain "github.com/metalprom/catalog/internal/category/domain"
	productdomain "github.com/metalprom/catalog/internal/product/domain"
	"github.com/metalprom/catalog/internal/seo"
)

func (s *Server) ListCategories(c *gin.Context) {
	resp, err := s.categorySvc.List(c.Request.Context())
	if err != nil {
		AbortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": resp})
}

func (s *Server) ListCatalog(c *gin.Context) {
	resp, err := s.categorySvc.List(c.Request.Context())
	if err != nil {
		AbortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": resp})
}

// GetCategoryPage resolves a storefront category with its products and SEO.
func (s *Server) GetCategoryPage(c *gin.Context) {
	ctx := c.Request.Context()

	page, err := s.categorySvc.GetBySlug(ctx, strings.TrimSpace(c.Param("slug")))
	if err != nil {
		AbortWithError(c, err)
		return
	}

	products, err := s.productSvc.List(ctx, productdomain.ListRequest{
		Category: page.Category.Name,
	})
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": gin.H{
		"category": page.Category,
		"products": products,
		"seo":      page.SEO,
	}})
}

func (s *Server) CreateCategory(c *gin.Context) {
	var req categorydomain.Category
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, ErrInvalidRequest)
		return
	}
	req.ID = ""

	resp, err := s.categorySvc.Create(c.Request.Context(), req)
	if err != nil {
		AbortWithError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"data": resp})
}

type updateCategoryRequest struct {
	Name        *string         `json:"name"`
	Slug        *string         `json:"slug"`
	Image       *string         `json:"image"`
	Description *string         `json:"description"`
	SEO         *seo.Descriptor `json:"seo"`
	ParentID    *string         `json:"parentId"`
}

func (s *Server) UpdateCategory(c *gin.Context) {
	var req updateCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, ErrInvalidRequest)
		return
	}

	resp, err := s.categorySvc.Update(c.Request.Context(), categorydomain.UpdateRequest{
		ID:          strings.TrimSpace(c.Param("id")),
		Name:        req.Name,
		Slug:        req.Slug,
		Image:       req.Image,
		Description: req.Description,
		SEO:         req.SEO,
		ParentID:    req.ParentID,
	})
	if err != nil {
		AbortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": resp})
}

func (s *Server) DeleteCategory(c *gin.Context) {
	if err := s.categorySvc.Delete(c.Request.Context(), strings.TrimSpace(c.Param("id"))); err != nil {
		AbortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "deleted"})
}
