package handlers

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"

	"github.com/hiyoko-dev/crm-web/internal/constants"
	apierrors "github.com/hiyoko-dev/crm-web/internal/errors"
	"github.com/hiyoko-dev/crm-web/internal/services"
)

// AuthHandler coordinates the login, logout and registration pages.
type AuthHandler struct {
	authService *services.AuthService
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(authService *services.AuthService) *AuthHandler {
	return &AuthHandler{
		authService: authService,
	}
}

// LoginPage renders the login form.
func (h *AuthHandler) LoginPage(c *gin.Context) {
	render(c, http.StatusOK, "login.html", nil)
}

// Login authenticates the submitted credentials and initializes the session.
// Failures re-render the form with a message; there is no redirect.
func (h *AuthHandler) Login(c *gin.Context) {
	username := c.PostForm("username")
	password := c.PostForm("password")

	user, err := h.authService.Login(services.LoginInput{
		Username: username,
		Password: password,
	})
	if err != nil {
		if errors.Is(err, services.ErrInvalidCredentials) {
			render(c, http.StatusOK, "login.html", gin.H{
				"error":    "Invalid username or password.",
				"username": username,
			})
			return
		}
		apierrors.ServerError(c, err)
		return
	}

	session := sessions.Default(c)
	session.Set(constants.ContextKeyUserID, user.ID)
	if err := session.Save(); err != nil {
		apierrors.ServerError(c, err)
		return
	}

	c.Redirect(http.StatusFound, "/")
}

// Logout terminates the session and returns to the login page.
func (h *AuthHandler) Logout(c *gin.Context) {
	session := sessions.Default(c)
	session.Clear()
	session.AddFlash("You have been logged out successfully.")
	if err := session.Save(); err != nil {
		apierrors.ServerError(c, err)
		return
	}

	c.Redirect(http.StatusFound, "/login/")
}

// RegisterPage renders the registration form.
func (h *AuthHandler) RegisterPage(c *gin.Context) {
	render(c, http.StatusOK, "register.html", nil)
}

// Register creates a new account. Success redirects to the login page without
// authenticating the new user.
func (h *AuthHandler) Register(c *gin.Context) {
	username := c.PostForm("username")

	user, err := h.authService.Register(services.RegisterInput{
		Username:        username,
		Password:        c.PostForm("password1"),
		PasswordConfirm: c.PostForm("password2"),
	})
	if err != nil {
		switch {
		case errors.Is(err, services.ErrUsernameTaken),
			errors.Is(err, services.ErrPasswordMismatch):
			render(c, http.StatusOK, "register.html", gin.H{
				"error":    err.Error(),
				"username": username,
			})
		case errors.Is(err, services.ErrPasswordTooShort):
			render(c, http.StatusOK, "register.html", gin.H{
				"error":    fmt.Sprintf("Password must be at least %d characters.", constants.MinPasswordLength),
				"username": username,
			})
		default:
			apierrors.ServerError(c, err)
		}
		return
	}

	addFlash(c, fmt.Sprintf("Account created for %s!", user.Username))
	c.Redirect(http.StatusFound, "/login/")
}
