package handlers

import (
	"errors"
	"net/http"

	"restaurant-web/services"

	"github.com/gin-gonic/gin"
)

type credentialsForm struct {
	Username string `form:"username" json:"username"`
	Password string `form:"password" json:"password"`
}

// RegisterPage shows the registration form.
func (h *Handler) RegisterPage(c *gin.Context) {
	h.render(c, http.StatusOK, "register.html", gin.H{"title": "Register"})
}

// Register creates an account. Duplicate or blank usernames send the user
// back to the form.
func (h *Handler) Register(c *gin.Context) {
	var form credentialsForm
	if err := c.ShouldBind(&form); err != nil {
		h.fail(c, http.StatusBadRequest, err.Error())
		return
	}

	_, err := h.Auth.Register(c.Request.Context(), form.Username, form.Password)
	switch {
	case errors.Is(err, services.ErrUsernameTaken), errors.Is(err, services.ErrMissingFields):
		c.Redirect(http.StatusSeeOther, "/register")
		return
	case err != nil:
		h.abortWithError(c, err)
		return
	}
	h.Log.WithField("username", form.Username).Info("user registered")
	c.Redirect(http.StatusSeeOther, "/login")
}

// LoginPage shows the login form.
func (h *Handler) LoginPage(c *gin.Context) {
	h.render(c, http.StatusOK, "login.html", gin.H{"title": "Log in", "username": "", "error": ""})
}

// Login starts a session on valid credentials, otherwise shows the form again.
func (h *Handler) Login(c *gin.Context) {
	var form credentialsForm
	if err := c.ShouldBind(&form); err != nil {
		h.fail(c, http.StatusBadRequest, err.Error())
		return
	}

	user, err := h.Auth.Login(c.Request.Context(), form.Username, form.Password)
	if errors.Is(err, services.ErrInvalidCredentials) {
		h.render(c, http.StatusUnauthorized, "login.html", gin.H{
			"title":    "Log in",
			"username": form.Username,
			"error":    "Invalid username or password",
		})
		return
	}
	if err != nil {
		h.abortWithError(c, err)
		return
	}

	if err := h.Sessions.Start(c, user); err != nil {
		h.abortWithError(c, err)
		return
	}
	c.Redirect(http.StatusSeeOther, "/dashboard")
}

// Logout clears the session and returns to the login page.
func (h *Handler) Logout(c *gin.Context) {
	h.Sessions.End(c)
	c.Redirect(http.StatusSeeOther, "/login")
}
