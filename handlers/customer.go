package handlers

import (
	"net/http"
	"strconv"
	"strings"

	"restaurant-web/services"

	"github.com/gin-gonic/gin"
)

// Dashboard is the landing page after login.
func (h *Handler) Dashboard(c *gin.Context) {
	h.render(c, http.StatusOK, "dashboard.html", gin.H{"title": "Dashboard", "user": h.currentUser(c)})
}

// Menu returns every dish grouped by category.
func (h *Handler) Menu(c *gin.Context) {
	menu, err := h.Catalog.Menu(c.Request.Context())
	if err != nil {
		h.abortWithError(c, err)
		return
	}
	h.render(c, http.StatusOK, "menu.html", gin.H{"title": "Menu", "menu": menu})
}

// AddToCart adds the posted quantity of a dish to the caller's cart.
func (h *Handler) AddToCart(c *gin.Context) {
	id, ok := h.paramID(c)
	if !ok {
		return
	}
	qty, err := strconv.Atoi(strings.TrimSpace(c.PostForm("quantity")))
	if err != nil {
		h.abortWithError(c, services.ErrInvalidQuantity)
		return
	}

	user := h.currentUser(c)
	if err := h.Carts.Add(c.Request.Context(), user.ID, id, qty); err != nil {
		h.abortWithError(c, err)
		return
	}
	c.Redirect(http.StatusSeeOther, "/menu")
}

// Cart lists the caller's cart items with the total.
func (h *Handler) Cart(c *gin.Context) {
	cart, err := h.Carts.Cart(c.Request.Context(), h.currentUser(c).ID)
	if err != nil {
		h.abortWithError(c, err)
		return
	}
	h.render(c, http.StatusOK, "cart.html", gin.H{"title": "Cart", "cart": cart})
}
