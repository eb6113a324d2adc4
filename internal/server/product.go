package server

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	productdomain "github.com/metalprom/catalog/internal/product/domain"
	"github.com/metalprom/catalog/internal/seo"
)

func (s *Server) ListProducts(c *gin.Context) {
	var query struct {
		Query    string  `form:"q"`
		Category string  `form:"category"`
		Status   string  `form:"status"`
		MaxPrice float64 `form:"max_price"`
		SortBy   string  `form:"sort_by"`
		OrderBy  string  `form:"order_by"`
		Limit    int     `form:"limit"`
	}
	if err := c.ShouldBindQuery(&query); err != nil {
		AbortWithError(c, ErrInvalidRequest)
		return
	}

	resp, err := s.productSvc.List(c.Request.Context(), productdomain.ListRequest{
		Query:          strings.TrimSpace(query.Query),
		Category:       strings.TrimSpace(query.Category),
		Status:         strings.TrimSpace(query.Status),
		MaxPricePerTon: query.MaxPrice,
		SortBy:         strings.TrimSpace(query.SortBy),
		OrderBy:        strings.TrimSpace(query.OrderBy),
		Limit:          query.Limit,
	})
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": resp})
}

func (s *Server) GetProduct(c *gin.Context) {
	resp, err := s.productSvc.Get(c.Request.Context(), strings.TrimSpace(c.Param("id")))
	if err != nil {
		AbortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": resp})
}

func (s *Server) GetProductPage(c *gin.Context) {
	resp, err := s.productSvc.GetBySlug(c.Request.Context(), strings.TrimSpace(c.Param("slug")))
	if err != nil {
		AbortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": resp})
}

func (s *Server) CreateProduct(c *gin.Context) {
	var req productdomain.Product
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, ErrInvalidRequest)
		return
	}
	req.ID = ""

	resp, err := s.productSvc.Create(c.Request.Context(), req)
	if err != nil {
		AbortWithError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"data": resp})
}

type updateProductRequest struct {
	Name          *string                       `json:"name"`
	Slug          *string                       `json:"slug"`
	Article       *string                       `json:"article"`
	Category      *string                       `json:"category"`
	Tags          *[]string                     `json:"tags"`
	PricePerTon   *float64                      `json:"pricePerTon"`
	PricePerMeter *float64                      `json:"pricePerMeter"`
	Pricing       *productdomain.Pricing        `json:"pricing"`
	Stock         *float64                      `json:"stock"`
	Status        *productdomain.Status         `json:"status"`
	SteelGrade    *string                       `json:"steelGrade"`
	Dimensions    *string                       `json:"dimensions"`
	Attributes    *[]productdomain.Attribute    `json:"attributes"`
	Image         *string                       `json:"image"`
	Description   *string                       `json:"description"`
	Documents     *[]productdomain.Document     `json:"documents"`
	SEO           *seo.Descriptor               `json:"seo"`
}

func (s *Server) UpdateProduct(c *gin.Context) {
	var req updateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, ErrInvalidRequest)
		return
	}

	resp, err := s.productSvc.Update(c.Request.Context(), productdomain.UpdateRequest{
		ID:            strings.TrimSpace(c.Param("id")),
		Name:          req.Name,
		Slug:          req.Slug,
		Article:       req.Article,
		Category:      req.Category,
		Tags:          req.Tags,
		PricePerTon:   req.PricePerTon,
		PricePerMeter: req.PricePerMeter,
		Pricing:       req.Pricing,
		Stock:         req.Stock,
		Status:        req.Status,
		SteelGrade:    req.SteelGrade,
		Dimensions:    req.Dimensions,
		Attributes:    req.Attributes,
		Image:         req.Image,
		Description:   req.Description,
		Documents:     req.Documents,
		SEO:           req.SEO,
	})
	if err != nil {
		AbortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": resp})
}

func (s *Server) DuplicateProduct(c *gin.Context) {
	resp, err := s.productSvc.Duplicate(c.Request.Context(), strings.TrimSpace(c.Param("id")))
	if err != nil {
		AbortWithError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"data": resp})
}

func (s *Server) DeleteProduct(c *gin.Context) {
	if err := s.productSvc.Delete(c.Request.Context(), strings.TrimSpace(c.Param("id"))); err != nil {
		AbortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "deleted"})
}
