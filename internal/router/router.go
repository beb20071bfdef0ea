package router

import (
	"time"

	"github.com/gallegosdmz/pos-front-sub000/internal/cache"
	"github.com/gallegosdmz/pos-front-sub000/internal/checkout"
	"github.com/gallegosdmz/pos-front-sub000/internal/config"
	"github.com/gallegosdmz/pos-front-sub000/internal/handler"
	"github.com/gallegosdmz/pos-front-sub000/internal/infra"
	"github.com/gallegosdmz/pos-front-sub000/internal/middleware"
	"github.com/gallegosdmz/pos-front-sub000/internal/upstream"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

// New wires all dependencies and returns a configured Gin engine.
// Dependency graph: Handler ← Service ← Upstream client / Redis
func New(cfg *config.Config, rdb *redis.Client, upstreamCB *infra.CircuitBreaker, api *upstream.Client, catalogCache *cache.CatalogCache, catalogSource *cache.CatalogSource, checkoutSvc *checkout.Service) *gin.Engine {
	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()

	// Global middleware chain (order matters)
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger())
	r.Use(middleware.Recovery())
	r.Use(middleware.CORS())
	r.Use(middleware.ErrorHandler())
	r.Use(middleware.RateLimiter(1000, time.Minute)) // 1000 req/min per IP

	// ── Handlers ─────────────────────────────────────────────────────────────
	checkoutH := handler.NewCheckoutHandler(checkoutSvc)
	catalogH := handler.NewCatalogHandler(catalogSource)
	adminH := handler.NewAdminHandler(api, catalogCache)
	dashboardH := handler.NewDashboardHandler(api, catalogSource)

	// ── Routes ───────────────────────────────────────────────────────────────

	// Public
	r.GET("/health", handler.Health(rdb, upstreamCB))

	// Everything else forwards the caller's bearer token upstream
	v1 := r.Group("/v1", middleware.BearerAuth())
	{
		// Checkout sessions (new-sale screen)
		sessions := v1.Group("/checkout/sessions")
		{
			sessions.POST("", checkoutH.StartSession)
			sessions.GET("/:sessionId", checkoutH.GetSession)
			sessions.DELETE("/:sessionId", checkoutH.EndSession)
			sessions.POST("/:sessionId/scan", checkoutH.Scan)
			sessions.POST("/:sessionId/items", checkoutH.AddItem)
			sessions.PATCH("/:sessionId/items/:productId", checkoutH.UpdateItem)
			sessions.DELETE("/:sessionId/items/:productId", checkoutH.RemoveItem)
			sessions.POST("/:sessionId/payment", checkoutH.OpenPayment)
			sessions.DELETE("/:sessionId/payment", checkoutH.ClosePayment)
			sessions.POST("/:sessionId/payment/confirm", checkoutH.ConfirmPayment)
		}

		// Businesses and their scoped collections
		v1.GET("/businesses", adminH.ListBusinesses)
		v1.POST("/businesses", adminH.CreateBusiness)
		v1.PATCH("/businesses/:id", adminH.UpdateBusiness)
		v1.DELETE("/businesses/:id", adminH.DeleteBusiness)
		v1.GET("/businesses/:id/dashboard", dashboardH.Get)
		v1.GET("/businesses/:id/products", catalogH.ListProducts)
		v1.GET("/businesses/:id/products/lookup", catalogH.LookupProduct)
		v1.GET("/businesses/:id/categories", adminH.ListCategories)
		v1.GET("/businesses/:id/employees", adminH.ListEmployees)
		v1.GET("/businesses/:id/suppliers", adminH.ListSuppliers)
		v1.GET("/businesses/:id/expenses", adminH.ListExpenses)
		v1.GET("/businesses/:id/sales", adminH.ListSales)

		// Business owners
		v1.GET("/ceos", adminH.ListAdmins)
		v1.POST("/ceos", adminH.CreateAdmin)
		v1.PATCH("/ceos/:id", adminH.UpdateAdmin)
		v1.DELETE("/ceos/:id", adminH.DeleteAdmin)

		// Staff
		v1.POST("/employees", adminH.CreateEmployee)
		v1.PATCH("/employees/:id", adminH.UpdateEmployee)
		v1.DELETE("/employees/:id", adminH.DeleteEmployee)

		// Catalog writes (reads go through the cached per-business routes)
		v1.POST("/categories", adminH.CreateCategory)
		v1.PATCH("/categories/:id", adminH.UpdateCategory)
		v1.DELETE("/categories/:id", adminH.DeleteCategory)

		v1.POST("/products", adminH.CreateProduct)
		v1.PATCH("/products/:id", adminH.UpdateProduct)
		v1.DELETE("/products/:id", adminH.DeleteProduct)

		v1.POST("/suppliers", adminH.CreateSupplier)
		v1.PATCH("/suppliers/:id", adminH.UpdateSupplier)
		v1.DELETE("/suppliers/:id", adminH.DeleteSupplier)

		v1.POST("/expenses", adminH.CreateExpense)
		v1.PATCH("/expenses/:id", adminH.UpdateExpense)
		v1.DELETE("/expenses/:id", adminH.DeleteExpense)
	}

	// Swagger UI — only enabled outside production
	if cfg.Env != "production" {
		r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	return r
}
