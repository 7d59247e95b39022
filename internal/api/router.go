package api

import (
	"time" // CORS preflight cache

	"web3_portal/internal/domain"     // Importing domain models
	"web3_portal/internal/middleware" // Custom package for middleware
	"web3_portal/internal/payment"    // Payment gateway
	"web3_portal/internal/storage"    // Blob storage

	"github.com/gin-contrib/cors" // CORS for the website origin
	"github.com/gin-gonic/gin"    // Gin web framework
	"gorm.io/gorm"                // GORM ORM library
)

// Deps are the collaborators the routes need
type Deps struct {
	DB             *gorm.DB                // Database
	Cache          *Cache                  // Response cache
	Blobs          storage.Store           // Uploaded files
	Gateway        payment.Gateway         // Checkout provider
	JWTSecret      string                  // Token verification secret
	ContactLimiter *middleware.RateLimiter // Contact form throttle
	MaxUploadBytes int64                   // Upload size limit
	CORSOrigins    []string                // Allowed browser origins
	Version        string                  // Reported by /health
}

// NewRouter builds the gin engine with every route of the site
func NewRouter(d Deps) *gin.Engine {
	r := gin.New()                                          // Gin router instance
	r.Use(gin.Recovery(), middleware.RequestLogger())       // Recover panics and log requests
	_ = r.SetTrustedProxies([]string{"127.0.0.1"})          // Only trust the local reverse proxy
	r.MaxMultipartMemory = d.MaxUploadBytes + 64<<10        // Uploads are small images
	if len(d.CORSOrigins) > 0 {
		r.Use(cors.New(cors.Config{
			AllowOrigins:     d.CORSOrigins,
			AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
			AllowHeaders:     []string{"Origin", "Content-Type", "Authorization", "X-Request-Id"},
			ExposeHeaders:    []string{"X-Request-Id", "Content-Disposition"},
			AllowCredentials: true,
			MaxAge:           12 * time.Hour,
		}))
	}

	optionalAuth := middleware.OptionalAuthMiddleware(d.JWTSecret) // Anonymous callers allowed
	requireAuth := middleware.JWTAuthMiddleware(d.JWTSecret)       // Token required
	limiter := d.ContactLimiter
	if limiter == nil {
		limiter = middleware.NewRateLimiter(5)
	}

	r.GET("/health", HealthHandler(d.DB, d.Cache.Client(), d.Version)) // Liveness and store status

	// Public content
	r.GET("/products", ListProductsHandler(d.DB, d.Cache))
	r.GET("/translations", ListTextsHandler[domain.Translation](d.DB, d.Cache, translationResource))
	r.GET("/translations/:key", GetTextHandler[domain.Translation](d.DB, d.Cache, translationResource))
	r.GET("/rodo", ListTextsHandler[domain.RodoContent](d.DB, d.Cache, rodoResource))
	r.GET("/rodo/:key", GetTextHandler[domain.RodoContent](d.DB, d.Cache, rodoResource))
	r.GET("/web3-cards", ListCardsHandler(d.DB, d.Cache))
	r.GET("/files", ListFilesHandler(d.DB, d.Cache))
	r.GET("/blobs/*path", BlobHandler(d.Blobs))
	r.POST("/contact", limiter.Middleware(), SubmitContactHandler(d.DB))

	// Checkout, open to guests; a token ties the session to the caller
	checkout := r.Group("/checkout", optionalAuth)
	checkout.GET("/configured", StripeConfiguredHandler(d.DB))
	checkout.POST("/sessions", CreateCheckoutHandler(d.DB, d.Gateway))
	checkout.GET("/sessions/:id", CheckoutStatusHandler(d.DB, d.Gateway))

	// Caller identity, anonymous callers are guests
	r.GET("/me/role", optionalAuth, CallerRoleHandler(d.DB))
	r.GET("/me/admin", optionalAuth, IsCallerAdminHandler(d.DB))
	me := r.Group("/me", requireAuth)
	me.GET("", CallerStatusHandler(d.DB))
	me.POST("/init", InitializeAccessHandler(d.DB))
	me.GET("/profile", CallerProfileHandler(d.DB))
	me.PUT("/profile", middleware.RegisteredOnlyMiddleware(d.DB), SaveCallerProfileHandler(d.DB))
	r.GET("/users/:principal/profile", requireAuth, UserProfileHandler(d.DB))

	// Admin routes (protected, admin only)
	admin := r.Group("/admin", requireAuth, middleware.AdminOnlyMiddleware(d.DB))
	admin.POST("/roles", AssignRoleHandler(d.DB))

	admin.POST("/products", AddProductHandler(d.DB, d.Cache))
	admin.PUT("/products/:id", UpdateProductHandler(d.DB, d.Cache))
	admin.DELETE("/products/:id", DeleteProductHandler(d.DB, d.Cache))

	admin.POST("/translations/:key", AddTextHandler[domain.Translation](d.DB, d.Cache, translationResource))
	admin.PUT("/translations/:key", UpdateTextHandler[domain.Translation](d.DB, d.Cache, translationResource))
	admin.DELETE("/translations/:key", DeleteTextHandler[domain.Translation](d.DB, d.Cache, translationResource))

	admin.POST("/rodo/:key", AddTextHandler[domain.RodoContent](d.DB, d.Cache, rodoResource))
	admin.PUT("/rodo/:key", UpdateTextHandler[domain.RodoContent](d.DB, d.Cache, rodoResource))
	admin.DELETE("/rodo/:key", DeleteTextHandler[domain.RodoContent](d.DB, d.Cache, rodoResource))

	admin.POST("/web3-cards", AddCardHandler(d.DB, d.Cache))
	admin.PUT("/web3-cards/:id", UpdateCardHandler(d.DB, d.Cache))
	admin.DELETE("/web3-cards/:id", DeleteCardHandler(d.DB, d.Cache))
	admin.POST("/web3-cards/preview", CardPreviewHandler())

	admin.GET("/messages", ListContactMessagesHandler(d.DB))
	admin.GET("/messages/export", ExportContactMessagesHandler(d.DB))
	admin.DELETE("/messages/:id", DeleteContactMessageHandler(d.DB))

	admin.POST("/files", RegisterFileHandler(d.DB, d.Cache))
	admin.DELETE("/files", DropFileHandler(d.DB, d.Cache, d.Blobs))
	admin.POST("/uploads", UploadHandler(d.DB, d.Cache, d.Blobs, d.MaxUploadBytes))

	admin.PUT("/stripe", SetStripeConfigHandler(d.DB))

	return r
}
