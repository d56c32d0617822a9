package routes

import (
	"net/http"
	"time"

	"restaurant-web/config"
	"restaurant-web/handlers"
	"restaurant-web/middleware"
	"restaurant-web/models"
	"restaurant-web/storage"
	"restaurant-web/web"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// Deps are the long-lived resources the router is built from.
type Deps struct {
	Config  *config.Config
	DB      *gorm.DB
	Log     *logrus.Logger
	Images  storage.ImageStore
	Metrics *middleware.Metrics
	Limiter *middleware.RateLimiter
}

// NewRouter wires global middleware and every route of the site.
func NewRouter(d Deps) (*gin.Engine, error) {
	if d.Metrics == nil {
		d.Metrics = middleware.NewMetrics()
	}
	if d.Limiter == nil {
		d.Limiter = middleware.NewRateLimiter(d.Config.LoginRatePerMinute, d.Config.LoginBurst, d.Log)
	}

	tmpl, err := web.Templates()
	if err != nil {
		return nil, err
	}

	r := gin.New()
	r.SetHTMLTemplate(tmpl)
	r.Use(middleware.RequestLogger(d.Log), gin.Recovery(), d.Metrics.Middleware())
	if len(d.Config.CORSOrigins) > 0 {
		r.Use(middleware.CORS(d.Config.CORSOrigins))
	}

	sessions := middleware.NewSessions(d.Config.SessionSecret, d.Config.SessionTTL, d.Config.SecureCookies)
	h := handlers.New(d.DB, d.Config.AdminUsername, sessions, d.Images, d.Log)
	r.Use(sessions.LoadUser(func(c *gin.Context, id uint) (*models.User, error) {
		return h.Auth.UserByID(c.Request.Context(), id)
	}))

	r.GET("/health", health(d.DB))
	r.GET("/metrics", d.Metrics.Handler())
	if local, ok := d.Images.(*storage.LocalStore); ok {
		r.Static(local.URLPrefix, local.Dir)
	}

	SetupRoutes(r, h, d.Limiter)
	return r, nil
}

// SetupRoutes registers every page on r.
func SetupRoutes(r *gin.Engine, h *handlers.Handler, limiter *middleware.RateLimiter) {
	// ── Public routes ──────────────────────────────────────────────
	r.GET("/", h.Index)
	r.GET("/dish/:id", h.Dish)
	r.GET("/reserve", h.ReservePage)
	r.POST("/reserve", h.Reserve)
	r.GET("/logout", h.Logout)
	r.POST("/logout", h.Logout)

	// ── Account routes (throttled) ─────────────────────────────────
	account := r.Group("/")
	account.Use(limiter.Handler())
	{
		account.GET("/register", h.RegisterPage)
		account.POST("/register", h.Register)
		account.GET("/login", h.LoginPage)
		account.POST("/login", h.Login)
	}

	// ── Customer routes ────────────────────────────────────────────
	customer := r.Group("/")
	customer.Use(middleware.AuthRequired())
	{
		customer.GET("/dashboard", h.Dashboard)
		customer.GET("/menu", h.Menu)
		customer.POST("/add_to_cart/:id", h.AddToCart)
		customer.GET("/cart", h.Cart)
	}

	// ── Admin routes ───────────────────────────────────────────────
	admin := r.Group("/admin")
	admin.Use(middleware.AdminRequired(h.Auth.IsAdmin))
	{
		admin.GET("", h.AdminPanel)
		admin.GET("/orders", h.AdminOrders)
		admin.GET("/users", h.AdminUsers)
		admin.GET("/reservations", h.AdminReservations)
		admin.GET("/dishes", h.AdminDishes)
		admin.POST("/dishes", h.AdminCreateDish)

		admin.POST("/delete_order/:id", h.AdminDeleteOrder)
		admin.POST("/delete_user/:id", h.AdminDeleteUser)
		admin.POST("/delete_reservation/:id", h.AdminDeleteReservation)
		admin.POST("/delete_dish/:id", h.AdminDeleteDish)
	}
}

func health(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		status, code := "healthy", http.StatusOK
		if sqlDB, err := db.DB(); err != nil || sqlDB.PingContext(c.Request.Context()) != nil {
			status, code = "unavailable", http.StatusServiceUnavailable
		}
		c.JSON(code, gin.H{
			"status":  status,
			"service": "restaurant-web",
			"time":    time.Now().UTC().Format(time.RFC3339),
		})
	}
}
