package handlers

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"restaurant-web/models"
	"restaurant-web/services"

	"github.com/gin-gonic/gin"
)

// Index is the public home page.
func (h *Handler) Index(c *gin.Context) {
	h.render(c, http.StatusOK, "index.html", gin.H{"title": "Welcome"})
}

// Dish shows a single dish. It needs no login.
func (h *Handler) Dish(c *gin.Context) {
	id, ok := h.paramID(c)
	if !ok {
		return
	}
	dish, err := h.Catalog.Dish(c.Request.Context(), id)
	if err != nil {
		h.abortWithError(c, err)
		return
	}
	h.render(c, http.StatusOK, "dish_detail.html", gin.H{"title": dish.Name, "dish": dish})
}

type reservationForm struct {
	Name        string `form:"name" json:"name"`
	PeopleCount string `form:"people_count" json:"people_count"`
	Date        string `form:"date" json:"date"`
	Time        string `form:"time" json:"time"`
	Phone       string `form:"phone" json:"phone"`
}

func (f reservationForm) complete() bool {
	for _, v := range []string{f.Name, f.PeopleCount, f.Date, f.Time, f.Phone} {
		if strings.TrimSpace(v) == "" {
			return false
		}
	}
	return true
}

const missingReservationFields = "Please fill in all the fields"

// ReservePage shows the reservation form.
func (h *Handler) ReservePage(c *gin.Context) {
	h.render(c, http.StatusOK, "reserve.html", gin.H{"title": "Reserve a table"})
}

// Reserve books a table. Validation failures answer with plain text.
func (h *Handler) Reserve(c *gin.Context) {
	var form reservationForm
	if err := c.ShouldBind(&form); err != nil {
		c.String(http.StatusBadRequest, err.Error())
		return
	}
	if !form.complete() {
		c.String(http.StatusBadRequest, missingReservationFields)
		return
	}
	people, err := strconv.Atoi(strings.TrimSpace(form.PeopleCount))
	if err != nil || people < 1 {
		c.String(http.StatusBadRequest, "Number of guests must be a positive whole number")
		return
	}

	r := models.Reservation{
		Name:        form.Name,
		PeopleCount: people,
		Date:        form.Date,
		Time:        form.Time,
		Phone:       form.Phone,
	}
	err = h.Reservations.Create(c.Request.Context(), &r)
	switch {
	case errors.Is(err, services.ErrMissingFields):
		c.String(http.StatusBadRequest, missingReservationFields)
		return
	case err != nil:
		h.abortWithError(c, err)
		return
	}
	h.Log.WithField("reservation_id", r.ID).Info("table reserved")
	c.Redirect(http.StatusSeeOther, "/dashboard")
}
