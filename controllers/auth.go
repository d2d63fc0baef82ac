package controllers

import (
	"errors"
	"net/http"

	"hotelhub-backend/logger"
	"hotelhub-backend/metrics"
	"hotelhub-backend/services"
	"hotelhub-backend/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// AuthController handles the admin login form and the session cookie.
type AuthController struct {
	auth     *services.AuthService
	sessions *utils.SessionManager
	metrics  *metrics.HTTPMetrics
}

func NewAuthController(auth *services.AuthService, sessions *utils.SessionManager, m *metrics.HTTPMetrics) *AuthController {
	return &AuthController{auth: auth, sessions: sessions, metrics: m}
}

func (ac *AuthController) LoginPage(c *gin.Context) {
	c.HTML(http.StatusOK, "login.html", gin.H{
		"Flash": utils.PopFlash(c),
		"Email": c.Query("email"),
	})
}

func (ac *AuthController) Login(c *gin.Context) {
	email := c.PostForm("email")
	password := c.PostForm("password")

	session, err := ac.auth.Authenticate(email, password)
	if err != nil {
		if errors.Is(err, services.ErrInvalidCredentials) {
			ac.observe("failure")
			utils.SetFlash(c, "Invalid credentials")
		} else {
			ac.observe("error")
			logger.FromGin(c).Error("login error", zap.Error(err))
			utils.SetFlash(c, "Login failed")
		}
		c.Redirect(http.StatusFound, "/admin")
		return
	}

	if err := ac.sessions.Start(c, *session); err != nil {
		ac.observe("error")
		logger.FromGin(c).Error("failed to start session", zap.Error(err))
		utils.SetFlash(c, "Login failed")
		c.Redirect(http.StatusFound, "/admin")
		return
	}

	ac.observe("success")
	logger.FromGin(c).Info("admin logged in",
		zap.Uint("hotel_id", session.TenantID),
		zap.String("admin_email", session.AdminEmail),
	)
	c.Redirect(http.StatusFound, "/admin/dashboard")
}

func (ac *AuthController) Logout(c *gin.Context) {
	ac.sessions.Clear(c)
	c.Redirect(http.StatusFound, "/")
}

func (ac *AuthController) observe(outcome string) {
	if ac.metrics != nil {
		ac.metrics.ObserveLogin(outcome)
	}
}
