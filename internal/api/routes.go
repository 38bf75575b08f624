package api

import (
	"net/http"

	"github.com/celerix-dev/gamingtech-store/internal/logging"
	"github.com/gin-gonic/gin"
)

func newEngine(logger logging.Logger) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), RequestLogger(logger), SecureHeaders(), CORS())
	r.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"message": MsgRouteNotFound})
	})
	return r
}

// NewAccountRouter builds the Account Service HTTP API.
func NewAccountRouter(svc AccountService, logger logging.Logger) *gin.Engine {
	if logger == nil {
		logger = logging.Nop()
	}
	h := &AccountHandler{Accounts: svc, Logger: logger}
	r := newEngine(logger)

	apiGroup := r.Group("/api")
	{
		apiGroup.POST("/auth/register", h.Register)
		apiGroup.POST("/auth/login", h.Login)
		apiGroup.POST("/auth/verify", h.Verify)
		apiGroup.GET("/users", h.Users)
		apiGroup.GET("/health", Health)
	}
	return r
}

// NewCatalogRouter builds the Catalog Service HTTP API.
func NewCatalogRouter(cat CatalogService, logger logging.Logger) *gin.Engine {
	if logger == nil {
		logger = logging.Nop()
	}
	h := &CatalogHandler{Catalog: cat, Logger: logger}
	r := newEngine(logger)

	apiGroup := r.Group("/api")
	{
		apiGroup.GET("/products", h.Products)
		apiGroup.GET("/products/:id", h.Product)
		apiGroup.GET("/components", h.Components)
		apiGroup.GET("/components/:type", h.ComponentsOf)
		apiGroup.POST("/contact", h.Contact)
		apiGroup.POST("/build-pc", h.BuildPC)
		apiGroup.GET("/health", Health)
	}
	return r
}
