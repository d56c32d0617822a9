package handlers

import (
	"errors"
	"math"
	"net/http"
	"strconv"
	"strings"

	"restaurant-web/models"
	"restaurant-web/services"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// Every handler in this file sits behind middleware.AdminRequired.

// AdminPanel shows the row counts.
func (h *Handler) AdminPanel(c *gin.Context) {
	summary, err := h.Admin.Summary(c.Request.Context())
	if err != nil {
		h.abortWithError(c, err)
		return
	}
	h.render(c, http.StatusOK, "admin_panel.html", gin.H{"title": "Admin", "summary": summary})
}

// AdminOrders lists every cart item with its user and dish.
func (h *Handler) AdminOrders(c *gin.Context) {
	orders, err := h.Admin.Orders(c.Request.Context())
	if err != nil {
		h.abortWithError(c, err)
		return
	}
	h.render(c, http.StatusOK, "admin_orders.html", gin.H{"title": "Orders", "count": len(orders), "orders": orders})
}

// AdminUsers lists every account.
func (h *Handler) AdminUsers(c *gin.Context) {
	users, err := h.Admin.Users(c.Request.Context())
	if err != nil {
		h.abortWithError(c, err)
		return
	}
	h.render(c, http.StatusOK, "admin_users.html", gin.H{"title": "Users", "count": len(users), "users": users})
}

// AdminReservations lists every reservation.
func (h *Handler) AdminReservations(c *gin.Context) {
	reservations, err := h.Reservations.List(c.Request.Context())
	if err != nil {
		h.abortWithError(c, err)
		return
	}
	h.render(c, http.StatusOK, "admin_reservations.html", gin.H{
		"title":        "Reservations",
		"count":        len(reservations),
		"reservations": reservations,
	})
}

// AdminDishes lists dishes and the create form.
func (h *Handler) AdminDishes(c *gin.Context) {
	dishes, err := h.Admin.Dishes(c.Request.Context())
	if err != nil {
		h.abortWithError(c, err)
		return
	}
	h.render(c, http.StatusOK, "admin_dishes.html", gin.H{"title": "Dishes", "count": len(dishes), "dishes": dishes})
}

// maxUploadBytes bounds the whole dish form, image included.
const maxUploadBytes = 5 << 20

// AdminCreateDish adds a dish from a (multipart) form with an optional image.
func (h *Handler) AdminCreateDish(c *gin.Context) {
	ctx := c.Request.Context()
	if c.Request.ContentLength > maxUploadBytes {
		h.fail(c, http.StatusRequestEntityTooLarge, "Upload too large")
		return
	}
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxUploadBytes)
	if err := c.Request.ParseMultipartForm(maxUploadBytes); err != nil && !errors.Is(err, http.ErrNotMultipart) {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			h.fail(c, http.StatusRequestEntityTooLarge, "Upload too large")
			return
		}
		h.fail(c, http.StatusBadRequest, err.Error())
		return
	}

	price, err := strconv.ParseFloat(strings.TrimSpace(c.PostForm("price")), 64)
	if err != nil || math.IsNaN(price) || math.IsInf(price, 0) {
		h.abortWithError(c, services.ErrInvalidPrice)
		return
	}
	dish := models.Dish{
		Name:        c.PostForm("name"),
		Description: strings.TrimSpace(c.PostForm("description")),
		Category:    c.PostForm("category"),
		Price:       price,
	}

	fh, err := c.FormFile("image")
	switch {
	case err == nil:
		f, err := fh.Open()
		if err != nil {
			h.abortWithError(c, err)
			return
		}
		defer f.Close()
		dish.Image, err = h.Images.Save(ctx, fh.Filename, fh.Header.Get("Content-Type"), f)
		if err != nil {
			h.abortWithError(c, err)
			return
		}
	case errors.Is(err, http.ErrMissingFile), errors.Is(err, http.ErrNotMultipart):
	default:
		h.fail(c, http.StatusBadRequest, err.Error())
		return
	}

	if err := h.Admin.CreateDish(ctx, &dish); err != nil {
		if dish.Image != "" {
			if derr := h.Images.Delete(ctx, dish.Image); derr != nil {
				h.Log.WithError(derr).WithField("image", dish.Image).Warn("remove orphaned image")
			}
		}
		h.abortWithError(c, err)
		return
	}
	h.Log.WithFields(logrus.Fields{"dish_id": dish.ID, "name": dish.Name}).Info("dish created")
	c.Redirect(http.StatusSeeOther, "/admin/dishes")
}

// AdminDeleteOrder removes a cart item.
func (h *Handler) AdminDeleteOrder(c *gin.Context) {
	id, ok := h.paramID(c)
	if !ok {
		return
	}
	if err := h.Admin.DeleteOrder(c.Request.Context(), id); err != nil {
		h.abortWithError(c, err)
		return
	}
	c.Redirect(http.StatusSeeOther, "/admin/orders")
}

// AdminDeleteUser refuses the admin account with an empty 403.
func (h *Handler) AdminDeleteUser(c *gin.Context) {
	id, ok := h.paramID(c)
	if !ok {
		return
	}
	if err := h.Admin.DeleteUser(c.Request.Context(), id); err != nil {
		h.abortWithError(c, err)
		return
	}
	h.Log.WithField("user_id", id).Info("user deleted")
	c.Redirect(http.StatusSeeOther, "/admin/users")
}

// AdminDeleteReservation removes a reservation.
func (h *Handler) AdminDeleteReservation(c *gin.Context) {
	id, ok := h.paramID(c)
	if !ok {
		return
	}
	if err := h.Reservations.Delete(c.Request.Context(), id); err != nil {
		h.abortWithError(c, err)
		return
	}
	c.Redirect(http.StatusSeeOther, "/admin/reservations")
}

// AdminDeleteDish removes a dish, its cart items and its image.
func (h *Handler) AdminDeleteDish(c *gin.Context) {
	id, ok := h.paramID(c)
	if !ok {
		return
	}
	dish, err := h.Admin.DeleteDish(c.Request.Context(), id)
	if err != nil {
		h.abortWithError(c, err)
		return
	}
	if dish.Image != "" {
		if err := h.Images.Delete(c.Request.Context(), dish.Image); err != nil {
			h.Log.WithError(err).WithField("image", dish.Image).Warn("remove dish image")
		}
	}
	c.Redirect(http.StatusSeeOther, "/admin/dishes")
}
