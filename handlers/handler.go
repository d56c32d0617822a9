package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"restaurant-web/middleware"
	"restaurant-web/models"
	"restaurant-web/services"
	"restaurant-web/storage"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// Handler serves every page. Pages are HTML by default and JSON when the
// client sends Accept: application/json.
type Handler struct {
	Auth         *services.AuthService
	Catalog      *services.CatalogService
	Carts        *services.CartService
	Reservations *services.ReservationService
	Admin        *services.AdminService

	Sessions      *middleware.Sessions
	Images        storage.ImageStore
	Log           *logrus.Logger
	AdminUsername string
}

// New builds the services over db and returns the handler set.
func New(db *gorm.DB, adminUsername string, sessions *middleware.Sessions, images storage.ImageStore, log *logrus.Logger) *Handler {
	return &Handler{
		Auth:          services.NewAuthService(db, adminUsername),
		Catalog:       services.NewCatalogService(db),
		Carts:         services.NewCartService(db),
		Reservations:  services.NewReservationService(db),
		Admin:         services.NewAdminService(db, adminUsername),
		Sessions:      sessions,
		Images:        images,
		Log:           log,
		AdminUsername: adminUsername,
	}
}

func (h *Handler) render(c *gin.Context, status int, name string, data gin.H) {
	page := gin.H{"adminUsername": h.AdminUsername}
	for k, v := range data {
		page[k] = v
	}
	if user, ok := middleware.CurrentUser(c); ok {
		page["user"] = user
		page["isAdmin"] = h.Auth.IsAdmin(user)
	}
	if data == nil {
		data = gin.H{}
	}
	c.Negotiate(status, gin.Negotiate{
		Offered:  []string{binding.MIMEHTML, binding.MIMEJSON},
		HTMLName: name,
		HTMLData: page,
		JSONData: data,
	})
}

func (h *Handler) fail(c *gin.Context, status int, msg string) {
	h.render(c, status, "error.html", gin.H{"status": status, "error": msg})
	c.Abort()
}

// abortWithError maps service errors onto responses.
func (h *Handler) abortWithError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrNotFound):
		h.fail(c, http.StatusNotFound, "Not found")
	case errors.Is(err, services.ErrMissingFields),
		errors.Is(err, services.ErrInvalidQuantity),
		errors.Is(err, services.ErrInvalidPrice),
		errors.Is(err, storage.ErrNotImage):
		h.fail(c, http.StatusBadRequest, err.Error())
	case errors.Is(err, services.ErrProtectedAccount):
		c.AbortWithStatus(http.StatusForbidden)
	default:
		_ = c.Error(err)
		h.fail(c, http.StatusInternalServerError, "Something went wrong")
	}
}

// paramID parses :id. Malformed ids are treated as unknown.
func (h *Handler) paramID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id == 0 {
		h.fail(c, http.StatusNotFound, "Not found")
		return 0, false
	}
	return uint(id), true
}

func (h *Handler) currentUser(c *gin.Context) *models.User {
	user, _ := middleware.CurrentUser(c)
	return user
}
