package server

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/metalprom/catalog/internal/attribute"
	attributedomain "github.com/metalprom/catalog/internal/attribute/domain"
	"github.com/metalprom/catalog/internal/category"
	categorydomain "github.com/metalprom/catalog/internal/category/domain"
	"github.com/metalprom/catalog/internal/config"
	"github.com/metalprom/catalog/internal/dashboard"
	dashboarddomain "github.com/metalprom/catalog/internal/dashboard/domain"
	"github.com/metalprom/catalog/internal/order"
	orderdomain "github.com/metalprom/catalog/internal/order/domain"
	"github.com/metalprom/catalog/internal/product"
	productdomain "github.com/metalprom/catalog/internal/product/domain"
	"github.com/metalprom/catalog/internal/promoslide"
	promodomain "github.com/metalprom/catalog/internal/promoslide/domain"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

var Module = fx.Module("http.server",
	fx.Provide(NewHTTPMetrics),
	fx.Provide(NewEngine),
	product.Module,
	category.Module,
	attribute.Module,
	promoslide.Module,
	order.Module,
	dashboard.Module,
	fx.Invoke(NewServer),
	fx.Invoke(run),
)

func NewEngine(log *zap.Logger, metrics *HTTPMetrics) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(RequestID())
	r.Use(AccessLog(log))
	r.Use(MetricsMiddleware(metrics))
	r.Use(ErrorHandlingMiddleware())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	return r
}

func run(lc fx.Lifecycle, cfg config.Config, r *gin.Engine, log *zap.Logger) {
	srv := &http.Server{
		Addr:    cfg.HTTPAddr,
		Handler: r,
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
					log.Fatal("http server", zap.Error(err))
				}
			}()
			log.Info("http server listening", zap.String("addr", cfg.HTTPAddr))
			return nil
		},
		OnStop: func(ctx context.Context) error {
			shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
			defer cancel()
			return srv.Shutdown(shutdownCtx)
		},
	})
}

type Server struct {
	engine       *gin.Engine
	cfg          config.Config
	productSvc   productdomain.Service
	categorySvc  categorydomain.Service
	attributeSvc attributedomain.Service
	promoSvc     promodomain.Service
	orderSvc     orderdomain.Service
	dashboardSvc dashboarddomain.Service
}

type ServerParams struct {
	fx.In

	Gin          *gin.Engine
	Cfg          config.Config
	ProductSvc   productdomain.Service
	CategorySvc  categorydomain.Service
	AttributeSvc attributedomain.Service
	PromoSvc     promodomain.Service
	OrderSvc     orderdomain.Service
	DashboardSvc dashboarddomain.Service
}

func NewServer(p ServerParams) *Server {
	s := &Server{
		engine:       p.Gin,
		cfg:          p.Cfg,
		productSvc:   p.ProductSvc,
		categorySvc:  p.CategorySvc,
		attributeSvc: p.AttributeSvc,
		promoSvc:     p.PromoSvc,
		orderSvc:     p.OrderSvc,
		dashboardSvc: p.DashboardSvc,
	}

	s.registerStorefrontRoutes()
	s.registerAdminRoutes()

	return s
}

func (s *Server) Engine() *gin.Engine {
	return s.engine
}

func (s *Server) registerStorefrontRoutes() {
	api := s.engine.Group("/api/v1")

	api.GET("/home", s.Home)
	api.GET("/catalog", s.ListCatalog)
	api.GET("/catalog/:slug", s.GetCategoryPage)
	api.GET("/products/:slug", s.GetProductPage)
	api.POST("/calc", s.Calculate)
}

func (s *Server) registerAdminRoutes() {
	admin := s.engine.Group("/api/v1/admin")

	admin.GET("/products", s.ListProducts)
	admin.POST("/products", s.CreateProduct)
	admin.GET("/products/:id", s.GetProduct)
	admin.PUT("/products/:id", s.UpdateProduct)
	admin.DELETE("/products/:id", s.DeleteProduct)
	admin.POST("/products/:id/copy", s.DuplicateProduct)

	admin.GET("/categories", s.ListCategories)
	admin.POST("/categories", s.CreateCategory)
	admin.PUT("/categories/:id", s.UpdateCategory)
	admin.DELETE("/categories/:id", s.DeleteCategory)

	admin.GET("/attributes", s.ListAttributes)
	admin.POST("/attributes", s.CreateAttribute)
	admin.PUT("/attributes/:id", s.UpdateAttribute)
	admin.DELETE("/attributes/:id", s.DeleteAttribute)

	admin.GET("/slides", s.ListSlides)
	admin.POST("/slides", s.CreateSlide)
	admin.PUT("/slides/:id", s.UpdateSlide)
	admin.DELETE("/slides/:id", s.DeleteSlide)

	admin.GET("/orders", s.ListOrders)
	admin.GET("/dashboard", s.Dashboard)
}
