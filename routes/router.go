package routes

import (
	"fmt"
	"net/http"
	"time"

	"instituteapi/handler"
	"instituteapi/middleware"
	"instituteapi/model"
	"instituteapi/services"
	"instituteapi/utils"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Limits are the three fixed-window tiers
type Limits struct {
	General middleware.RateLimitTier
	Auth    middleware.RateLimitTier
	Write   middleware.RateLimitTier
}

// DefaultLimits mirrors the production budgets: 100/5/30 requests per window
func DefaultLimits(window time.Duration) Limits {
	return Limits{
		General: middleware.RateLimitTier{Name: "general", Limit: 100, Window: window},
		Auth:    middleware.RateLimitTier{Name: "auth", Limit: 5, Window: window},
		Write:   middleware.RateLimitTier{Name: "write", Limit: 30, Window: window},
	}
}

type Deps struct {
	Tokens       *services.TokenService
	Revoker      services.TokenRevoker
	LimitStore   services.RateLimitStore
	Limits       Limits
	CORSOrigins  []string
	MaxBodyBytes int64

	// TrustedProxies lists the proxy CIDRs whose X-Forwarded-For is honoured.
	// Empty means the socket address is the client IP.
	TrustedProxies []string

	Events          *handler.EventHandler
	News            *handler.NewsHandler
	Publications    *handler.PublicationHandler
	JournalArticles *handler.JournalArticleHandler
	JournalVolumes  *handler.JournalVolumeHandler
	JournalContent  *handler.JournalContentHandler
	HomeContent     *handler.HomeContentHandler
	Staff           *handler.StaffHandler
	ResourcePersons *handler.ResourcePersonHandler
	Dashboard       *handler.DashboardHandler
	Auth            *handler.AuthHandler
	Documents       *handler.DocumentHandler
	Health          *handler.HealthHandler
}

// Setup builds the engine with every route registered
func Setup(d Deps) (*gin.Engine, error) {
	router := gin.New()
	var proxies []string
	if len(d.TrustedProxies) > 0 {
		proxies = d.TrustedProxies
	}
	if err := router.SetTrustedProxies(proxies); err != nil {
		return nil, fmt.Errorf("invalid trusted proxies: %w", err)
	}
	router.HandleMethodNotAllowed = true
	router.NoRoute(func(c *gin.Context) { utils.NotFound(c, "Route not found") })
	router.NoMethod(func(c *gin.Context) {
		c.AbortWithStatusJSON(http.StatusMethodNotAllowed, utils.Response{Message: "Method not allowed"})
	})

	router.Use(
		middleware.Recovery(),
		middleware.RequestID(),
		middleware.RequestLogger(),
		middleware.MetricsMiddleware(),
		middleware.CORSMiddleware(d.CORSOrigins),
		middleware.SecurityHeaders(),
		middleware.RequestSizeLimiter(d.MaxBodyBytes),
	)

	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	api := router.Group("/api")
	api.Use(middleware.RateLimit(d.LimitStore, d.Limits.General))

	authenticated := middleware.Authenticate(d.Tokens, d.Revoker)
	adminOnly := []gin.HandlerFunc{
		authenticated,
		middleware.RequireRoles(model.RoleAdmin),
		middleware.NoStore(),
		middleware.RateLimit(d.LimitStore, d.Limits.Write),
		middleware.RequireJSON(),
	}
	admin := func(h gin.HandlerFunc) []gin.HandlerFunc {
		return append(append([]gin.HandlerFunc{}, adminOnly...), h)
	}
	cached := middleware.CacheControl(5 * time.Minute)

	if d.Health != nil {
		api.GET("/health", d.Health.Health)
	}

	users := api.Group("/users")
	{
		authLimit := middleware.RateLimit(d.LimitStore, d.Limits.Auth)
		users.POST("/register", authLimit, middleware.RequireJSON(), d.Auth.Register)
		users.POST("/login", authLimit, middleware.RequireJSON(), d.Auth.Login)

		self := users.Group("", authenticated, middleware.NoStore())
		self.GET("/me", d.Auth.Me)
		self.POST("/logout", d.Auth.Logout)
		self.POST("/2fa/setup", d.Auth.SetupTwoFactor)
		self.POST("/2fa/enable", middleware.RequireJSON(), d.Auth.EnableTwoFactor)
		self.POST("/2fa/disable", middleware.RequireJSON(), d.Auth.DisableTwoFactor)
		self.GET("", middleware.RequireRoles(model.RoleAdmin), d.Auth.List)
	}

	events := api.Group("/events")
	{
		events.GET("", d.Events.List)
		events.GET("/latest", d.Events.Latest)
		events.GET("/:id", d.Events.Get)
		events.POST("", admin(d.Events.Create)...)
		events.PATCH("/:id", admin(d.Events.Update)...)
		events.PATCH("/:id/status", admin(d.Events.UpdateStatus)...)
		events.DELETE("/:id", admin(d.Events.Delete)...)
	}

	news := api.Group("/news-blogs")
	{
		news.GET("", d.News.List)
		news.GET("/latest", d.News.Latest)
		news.GET("/categories", cached, d.News.Categories)
		news.GET("/category/:category", d.News.ByCategory)
		news.GET("/:id", d.News.Get)
		news.POST("", admin(d.News.Create)...)
		news.PATCH("/:id", admin(d.News.Update)...)
		news.DELETE("/:id", admin(d.News.Delete)...)
	}

	publications := api.Group("/publications")
	{
		publications.GET("", d.Publications.List)
		publications.GET("/latest", d.Publications.Latest)
		publications.GET("/categories", cached, d.Publications.Categories)
		publications.GET("/category/:category", d.Publications.ByCategory)
		publications.GET("/stream/pdf", d.Documents.StreamPDF)
		publications.GET("/:id", d.Publications.Get)
		publications.POST("", admin(d.Publications.Create)...)
		publications.PATCH("/:id", admin(d.Publications.Update)...)
		publications.DELETE("/:id", admin(d.Publications.Delete)...)
	}

	articles := api.Group("/journal-articles")
	{
		articles.GET("", d.JournalArticles.List)
		articles.GET("/latest", d.JournalArticles.Latest)
		articles.GET("/categories", cached, d.JournalArticles.Categories)
		articles.GET("/category/:category", d.JournalArticles.ByCategory)
		articles.GET("/volume/:volume/issue/:issue", d.JournalArticles.ByVolumeIssue)
		articles.GET("/stats", cached, d.JournalArticles.Stats)
		articles.GET("/stream/pdf", d.Documents.StreamPDF)
		articles.GET("/:id", d.JournalArticles.Get)
		articles.POST("", admin(d.JournalArticles.Create)...)
		articles.PATCH("/:id", admin(d.JournalArticles.Update)...)
		articles.DELETE("/:id", admin(d.JournalArticles.Delete)...)
	}

	volumes := api.Group("/journal-volumes")
	{
		volumes.GET("", d.JournalVolumes.List)
		volumes.GET("/latest", d.JournalVolumes.Latest)
		volumes.GET("/:id", d.JournalVolumes.Get)
		volumes.POST("", admin(d.JournalVolumes.Create)...)
		volumes.PATCH("/:id", admin(d.JournalVolumes.Update)...)
		volumes.DELETE("/:id", admin(d.JournalVolumes.Delete)...)
	}

	journalContent := api.Group("/journal-content")
	{
		journalContent.GET("", d.JournalContent.Get)
		journalContent.PUT("", admin(d.JournalContent.Save)...)
		journalContent.PATCH("", admin(d.JournalContent.Save)...)
	}

	homeContent := api.Group("/home-content")
	{
		homeContent.GET("", d.HomeContent.Get)
		homeContent.PUT("", admin(d.HomeContent.Save)...)
		homeContent.PATCH("", admin(d.HomeContent.Save)...)
	}

	staff := api.Group("/staff")
	{
		staff.GET("", d.Staff.List)
		staff.GET("/:id", d.Staff.Get)
		staff.POST("", admin(d.Staff.Create)...)
		staff.PATCH("/:id", admin(d.Staff.Update)...)
		staff.DELETE("/:id", admin(d.Staff.Delete)...)
	}

	people := api.Group("/resource-persons")
	{
		people.GET("", d.ResourcePersons.List)
		people.GET("/:id", d.ResourcePersons.Get)
		people.POST("", admin(d.ResourcePersons.Create)...)
		people.PATCH("/:id", admin(d.ResourcePersons.Update)...)
		people.DELETE("/:id", admin(d.ResourcePersons.Delete)...)
	}

	api.GET("/dashboard/stats", authenticated, middleware.RequireRoles(model.RoleAdmin), middleware.NoStore(), d.Dashboard.Stats)

	return router, nil
}
